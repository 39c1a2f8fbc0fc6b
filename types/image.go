package types

// ReorderImagesRequest assigns order_index by position in ImageIDs.
type ReorderImagesRequest struct {
	ImageIDs []int64 `json:"image_ids" binding:"required,min=1"`
}

const (
	// MaxImagesPerBatch bounds one upload call.
	MaxImagesPerBatch = 10
	// MaxImageSize is the per-file payload ceiling.
	MaxImageSize = 10 << 20 // 10 MiB
)
