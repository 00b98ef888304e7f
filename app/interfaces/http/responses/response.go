package responses

// ErrorResponse is the uniform failure body: every failed request answers
// with a single error string plus an optional machine code.
type ErrorResponse struct {
	Error         string `json:"error"`
	Code          string `json:"code,omitempty"`
	ErrorInstance error  `json:"-"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
