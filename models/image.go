package models

import "time"

// Image is a gallery photo uploaded for a festival year.
type Image struct {
	// ID is the server-assigned identifier of the image.
	ID string `json:"id"`

	// FileName is the sanitized original file name.
	FileName string `json:"fileName"`

	// URL is the path under which the stored file is served.
	URL string `json:"url"`

	// UploadedAt is the upload timestamp.
	UploadedAt time.Time `json:"uploadedAt"`
}
