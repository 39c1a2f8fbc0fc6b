package objectstore

import "context"

// Result is the metadata returned by a successful upload.
type Result struct {
	ExternalID string
	URL        string
	Width      int
	Height     int
	ByteSize   int
}

// Client stores binary image payloads under opaque identifiers.
type Client interface {
	// Upload stores data under the given folder and returns the object
	// identifier, delivery URL and image metadata.
	Upload(ctx context.Context, data []byte, folder, ext string) (*Result, error)

	// Delete removes a previously uploaded object.
	Delete(ctx context.Context, externalID string) error
}
