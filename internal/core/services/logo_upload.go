package services

import (
	"fmt"
	"io"

	"github.com/h2non/filetype"

	"github.com/invoicecraft/invoice_craft_app/internal/apperrors"
)

// readLogoImage reads an uploaded logo, enforcing the size ceiling for its
// surface and confirming the bytes are a recognized image format. The
// declared size is checked before any bytes are read so oversized uploads
// are rejected cheaply.
func readLogoImage(reader io.Reader, declaredSize, maxBytes int64) (data []byte, mimeType string, err error) {
	if declaredSize > maxBytes {
		return nil, "", apperrors.NewValidationError(
			fmt.Sprintf("logo exceeds the %d byte limit", maxBytes), "logo")
	}

	data, err = io.ReadAll(io.LimitReader(reader, maxBytes+1))
	if err != nil {
		return nil, "", fmt.Errorf("failed to read logo upload: %w", err)
	}
	if int64(len(data)) > maxBytes {
		return nil, "", apperrors.NewValidationError(
			fmt.Sprintf("logo exceeds the %d byte limit", maxBytes), "logo")
	}

	kind, err := filetype.Match(data)
	if err != nil || !filetype.IsImage(data) {
		return nil, "", apperrors.NewValidationError("logo must be an image file", "logo")
	}
	return data, kind.MIME.Value, nil
}
