package service

import "context"

// ImageStore uploads product images to blob storage and returns their public
// URLs. The rest of the system only ever sees the URL.
type ImageStore interface {
	Upload(ctx context.Context, data []byte, filename, contentType string) (string, error)
}
