package dtos

// Content limits are checked by the service after normalisation.
type CreatePostRequest struct {
	Content string `json:"content"`
}

type UpdatePostRequest struct {
	Content string `json:"content"`
	Version *int64 `json:"version" validate:"required"`
}
