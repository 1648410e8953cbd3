package response

// Envelope is the error body shape shared by handlers and middleware.
type Envelope struct {
	Status  string `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func Error(code, message string, data any) Envelope {
	return Envelope{
		Status:  "error",
		Code:    code,
		Message: message,
		Data:    data,
	}
}
