package repositories

import "context"

// BlobStore is the boundary for binary assets (logos). Implementations own
// key layout and visibility; callers only keep the returned public URL.
type BlobStore interface {
	// Upload stores the object and returns its public URL.
	Upload(ctx context.Context, ownerUserID, filename, contentType string, data []byte) (string, error)

	// Delete removes a previously uploaded object by its public URL. Unknown
	// URLs are not an error.
	Delete(ctx context.Context, publicURL string) error
}
