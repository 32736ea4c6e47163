package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/festivize/festivize/models"
	"github.com/go-resty/resty/v2"
)

// HTTPClientConfig holds the settings for the REST gateway.
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpServerGateway struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPServerGateway builds a [ServerGateway] backed by a resty client.
// Defaults: BaseURL http://localhost:8080, timeout 15s.
func NewHTTPServerGateway(cfg HTTPClientConfig) ServerGateway {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpServerGateway{client: cli}
}

func (h *httpServerGateway) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerGateway) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerGateway) ClearToken() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = ""
}

func (h *httpServerGateway) Login(ctx context.Context, email, password string) (string, string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.LoginRequest{Email: email, Password: password}).
		Post("/login")
	if err != nil {
		return "", "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", "", err
	}

	var lr models.LoginResponse
	if err = json.Unmarshal(resp.Body(), &lr); err != nil {
		return "", "", fmt.Errorf("decode login response: %w", err)
	}

	return lr.AccessToken, lr.Message, nil
}

func (h *httpServerGateway) Register(ctx context.Context, name, email, password, role string) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.RegisterRequest{Name: name, Email: email, Password: password, Role: role}).
		Post("/register")
	if err != nil {
		return "", fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var mr models.MessageResponse
	if err = json.Unmarshal(resp.Body(), &mr); err != nil {
		return "", fmt.Errorf("decode register response: %w", err)
	}

	return mr.Message, nil
}

func (h *httpServerGateway) GetYears(ctx context.Context) ([]models.YearRecord, error) {
	resp, err := h.authedRequest(ctx).Get("/years")
	if err != nil {
		return nil, fmt.Errorf("get years request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var yr models.YearsResponse
	if err = json.Unmarshal(resp.Body(), &yr); err != nil {
		return nil, fmt.Errorf("decode years response: %w", err)
	}
	return yr.Data, nil
}

func (h *httpServerGateway) CreateYear(ctx context.Context, year int) (models.YearRecord, string, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.YearRecord{Year: year}).
		Post("/years")
	if err != nil {
		return models.YearRecord{}, "", fmt.Errorf("create year request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.YearRecord{}, "", err
	}

	var yr models.YearResponse
	if err = json.Unmarshal(resp.Body(), &yr); err != nil {
		return models.YearRecord{}, "", fmt.Errorf("decode create year response: %w", err)
	}
	return yr.Data, yr.Message, nil
}

func (h *httpServerGateway) UpdateYearStatus(ctx context.Context, year int, isClosed bool) (bool, string, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.YearStatusRequest{IsClosed: isClosed}).
		Put(fmt.Sprintf("/years/%d/status", year))
	if err != nil {
		return false, "", fmt.Errorf("update year status request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return false, "", err
	}

	var sr models.YearStatusResponse
	if err = json.Unmarshal(resp.Body(), &sr); err != nil {
		return false, "", fmt.Errorf("decode year status response: %w", err)
	}
	return sr.Data.IsClosed, sr.Message, nil
}

func (h *httpServerGateway) GetContributions(ctx context.Context, year int) ([]models.Contribution, error) {
	req := h.authedRequest(ctx)
	if year != 0 {
		req.SetQueryParam("year", fmt.Sprint(year))
	}
	resp, err := req.Get("/receiveditems")
	if err != nil {
		return nil, fmt.Errorf("get contributions request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var cr models.ContributionsResponse
	if err = json.Unmarshal(resp.Body(), &cr); err != nil {
		return nil, fmt.Errorf("decode contributions response: %w", err)
	}
	return cr.Data, nil
}

func (h *httpServerGateway) AddContribution(ctx context.Context, c models.Contribution) (models.Contribution, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(c).
		Post("/receiveditem")
	if err != nil {
		return models.Contribution{}, fmt.Errorf("add contribution request: %w", err)
	}
	return decodeContribution(resp)
}

func (h *httpServerGateway) UpdateContribution(ctx context.Context, c models.Contribution) (models.Contribution, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(c).
		Put("/receiveditem/" + c.ID)
	if err != nil {
		return models.Contribution{}, fmt.Errorf("update contribution request: %w", err)
	}
	return decodeContribution(resp)
}

func (h *httpServerGateway) DeleteContribution(ctx context.Context, id string) error {
	resp, err := h.authedRequest(ctx).Delete("/receiveditem/" + id)
	if err != nil {
		return fmt.Errorf("delete contribution request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerGateway) GetExpenditures(ctx context.Context, year int) ([]models.Expenditure, error) {
	req := h.authedRequest(ctx)
	if year != 0 {
		req.SetQueryParam("year", fmt.Sprint(year))
	}
	resp, err := req.Get("/expenditure")
	if err != nil {
		return nil, fmt.Errorf("get expenditures request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var er models.ExpendituresResponse
	if err = json.Unmarshal(resp.Body(), &er); err != nil {
		return nil, fmt.Errorf("decode expenditures response: %w", err)
	}
	return er.Data, nil
}

func (h *httpServerGateway) AddExpenditure(ctx context.Context, e models.Expenditure) (models.Expenditure, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(e).
		Post("/expenditure")
	if err != nil {
		return models.Expenditure{}, fmt.Errorf("add expenditure request: %w", err)
	}
	return decodeExpenditure(resp)
}

func (h *httpServerGateway) UpdateExpenditure(ctx context.Context, e models.Expenditure) (models.Expenditure, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(e).
		Put("/expenditure/" + e.ID)
	if err != nil {
		return models.Expenditure{}, fmt.Errorf("update expenditure request: %w", err)
	}
	return decodeExpenditure(resp)
}

func (h *httpServerGateway) DeleteExpenditure(ctx context.Context, id string) error {
	resp, err := h.authedRequest(ctx).Delete("/expenditure/" + id)
	if err != nil {
		return fmt.Errorf("delete expenditure request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerGateway) GetImages(ctx context.Context) ([]models.Image, error) {
	resp, err := h.authedRequest(ctx).Get("/images")
	if err != nil {
		return nil, fmt.Errorf("get images request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var ir models.ImagesResponse
	if err = json.Unmarshal(resp.Body(), &ir); err != nil {
		return nil, fmt.Errorf("decode images response: %w", err)
	}
	return ir.Data, nil
}

func (h *httpServerGateway) UploadImage(ctx context.Context, fileName string, content []byte) (models.Image, error) {
	resp, err := h.authedRequest(ctx).
		SetFileReader("file", fileName, bytes.NewReader(content)).
		Post("/upload")
	if err != nil {
		return models.Image{}, fmt.Errorf("upload image request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Image{}, err
	}

	var ir models.ImageResponse
	if err = json.Unmarshal(resp.Body(), &ir); err != nil {
		return models.Image{}, fmt.Errorf("decode upload response: %w", err)
	}
	return ir.Data, nil
}

func (h *httpServerGateway) HomeMessage(ctx context.Context) (string, error) {
	resp, err := h.authedRequest(ctx).Get("/home")
	if err != nil {
		return "", fmt.Errorf("home request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var mr models.MessageResponse
	if err = json.Unmarshal(resp.Body(), &mr); err != nil {
		return "", fmt.Errorf("decode home response: %w", err)
	}
	return mr.Message, nil
}

// authedRequest builds a request carrying the bearer token when one is
// present. Requests made with no token omit the Authorization header
// entirely; an empty header is never sent.
func (h *httpServerGateway) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func decodeContribution(resp *resty.Response) (models.Contribution, error) {
	if err := mapHTTPError(resp); err != nil {
		return models.Contribution{}, err
	}
	var cr models.ContributionResponse
	if err := json.Unmarshal(resp.Body(), &cr); err != nil {
		return models.Contribution{}, fmt.Errorf("decode contribution response: %w", err)
	}
	return cr.Data, nil
}

func decodeExpenditure(resp *resty.Response) (models.Expenditure, error) {
	if err := mapHTTPError(resp); err != nil {
		return models.Expenditure{}, err
	}
	var er models.ExpenditureResponse
	if err := json.Unmarshal(resp.Body(), &er); err != nil {
		return models.Expenditure{}, fmt.Errorf("decode expenditure response: %w", err)
	}
	return er.Data, nil
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	var mr models.MessageResponse
	_ = json.Unmarshal(resp.Body(), &mr)

	if resp.StatusCode() == http.StatusUnauthorized {
		if mr.Message != "" {
			return fmt.Errorf("%w: %s", ErrUnauthorized, mr.Message)
		}
		return ErrUnauthorized
	}

	if mr.Message != "" {
		return &APIError{Status: resp.StatusCode(), Message: mr.Message}
	}

	return &APIError{Status: resp.StatusCode()}
}
