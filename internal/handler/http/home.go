package http

import (
	"net/http"

	"github.com/festivize/festivize/internal/utils"
	"github.com/festivize/festivize/models"
)

// home is a lightweight authenticated endpoint the client uses to verify its
// token is still accepted.
func (h *HTTPHandler) home(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, models.MessageResponse{Message: "welcome to festivize"}, http.StatusOK)
}
