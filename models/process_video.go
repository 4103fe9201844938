package models

// ProcessVideoRequest is the body of POST /process_video.
type ProcessVideoRequest struct {
	URL      string `json:"url" validate:"required"`
	Question string `json:"question,omitempty"`
}

// ProcessVideoResponse is the success payload. Answer is present only when
// the request carried a question.
type ProcessVideoResponse struct {
	Summary string `json:"summary"`
	Answer  string `json:"answer,omitempty"`
}

// ErrorResponse is the client-facing error payload.
type ErrorResponse struct {
	Error string `json:"error"`
}
