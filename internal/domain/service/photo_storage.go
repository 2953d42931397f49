package service

import "context"

// PhotoStorage is the object store holding listing photos.
type PhotoStorage interface {
	// Upload writes data under key and returns the stored path.
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)

	// PublicURL turns a stored path into the URL clients load the photo from.
	PublicURL(path string) string
}
