package dto

// ErrorResponse is the uniform error body returned by all controllers.
type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// MessageResponse is a simple acknowledgment body.
type MessageResponse struct {
	Message string `json:"message"`
}
