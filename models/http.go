package models

// Wire types for the REST API. Every response uses the {message, data}
// envelope the original deployment established; clients decode the variant
// matching the endpoint they called.

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the body of POST /register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// LoginResponse is returned by POST /login. AccessToken is empty when the
// login was rejected.
type LoginResponse struct {
	AccessToken string `json:"accessToken,omitempty"`
	Message     string `json:"message"`
}

// MessageResponse is the minimal envelope used for registration results and
// all error responses.
type MessageResponse struct {
	Message string `json:"message"`
}

// YearsResponse is returned by GET /years.
type YearsResponse struct {
	Data []YearRecord `json:"data"`
}

// YearResponse is returned by POST /years.
type YearResponse struct {
	Data    YearRecord `json:"data"`
	Message string     `json:"message"`
}

// YearStatusRequest is the body of PUT /years/{year}/status.
type YearStatusRequest struct {
	IsClosed bool `json:"isClosed"`
}

// YearStatusResponse is returned by PUT /years/{year}/status.
type YearStatusResponse struct {
	Data    YearStatusRequest `json:"data"`
	Message string            `json:"message"`
}

// ContributionsResponse is returned by GET /receiveditems.
type ContributionsResponse struct {
	Data []Contribution `json:"data"`
}

// ContributionResponse is returned by the single-record contribution
// endpoints.
type ContributionResponse struct {
	Data    Contribution `json:"data"`
	Message string       `json:"message"`
}

// ExpendituresResponse is returned by GET /expenditure.
type ExpendituresResponse struct {
	Data []Expenditure `json:"data"`
}

// ExpenditureResponse is returned by the single-record expenditure endpoints.
type ExpenditureResponse struct {
	Data    Expenditure `json:"data"`
	Message string      `json:"message"`
}

// ImagesResponse is returned by GET /images.
type ImagesResponse struct {
	Data []Image `json:"data"`
}

// ImageResponse is returned by POST /upload.
type ImageResponse struct {
	Data    Image  `json:"data"`
	Message string `json:"message"`
}
