package http

import (
	"io"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/festivize/festivize/internal/logger"
	"github.com/festivize/festivize/internal/utils"
	"github.com/festivize/festivize/models"
	"github.com/go-chi/chi/v5"
)

// uploadFormLimit bounds the multipart form parse.
const uploadFormLimit = 12 << 20

func (h *HTTPHandler) listImages(w http.ResponseWriter, r *http.Request) {
	images, err := h.services.Gallery.ListImages(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if images == nil {
		images = []models.Image{}
	}
	_, _ = utils.WriteJSON(w, models.ImagesResponse{Data: images}, http.StatusOK)
}

// uploadImage accepts a multipart form with a single "file" part.
func (h *HTTPHandler) uploadImage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := r.ParseMultipartForm(uploadFormLimit); err != nil {
		writeMessage(w, "invalid upload form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeMessage(w, "missing file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		log.Err(err).Str("func", "*HTTPHandler.uploadImage").Msg("error: read error")
		writeMessage(w, "failed to read file", http.StatusInternalServerError)
		return
	}

	image, err := h.services.Gallery.UploadImage(r.Context(), header.Filename, content)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.ImageResponse{
		Data:    image,
		Message: "image uploaded",
	}, http.StatusCreated)
}

// serveImage streams a stored file. Public so that rendered galleries can
// reference the URL directly.
func (h *HTTPHandler) serveImage(w http.ResponseWriter, r *http.Request) {
	content, fileName, err := h.services.Gallery.OpenImage(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	contentType := mime.TypeByExtension(filepath.Ext(fileName))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(content)
}
