package dto

// ErrorResponse is the body of every non-webhook error.
type ErrorResponse struct {
	Detail    string             `json:"detail"`
	Code      string             `json:"code,omitempty"`
	RequestID string             `json:"request_id,omitempty"`
	Details   []ValidationDetail `json:"details,omitempty"`
}

// ValidationDetail describes one invalid request field
type ValidationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// NewErrorResponse creates an error response
func NewErrorResponse(code, detail, requestID string) ErrorResponse {
	return ErrorResponse{
		Detail:    detail,
		Code:      code,
		RequestID: requestID,
	}
}

// NewValidationErrorResponse creates a validation error response with field details
func NewValidationErrorResponse(detail, requestID string, details []ValidationDetail) ErrorResponse {
	return ErrorResponse{
		Detail:    detail,
		Code:      ErrCodeValidation,
		RequestID: requestID,
		Details:   details,
	}
}

// StatusResponse is the service health body.
type StatusResponse struct {
	Status  string `json:"status" example:"ok"`
	Service string `json:"service" example:"Voice AI Restaurant Agent"`
}
