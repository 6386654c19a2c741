package handler

import "addressbook-api/internal/apperrors"

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Message    string                `json:"message"`
	Error      string                `json:"error"`
	RequestID  any                   `json:"request_id,omitempty"`
	Violations []apperrors.Violation `json:"violations,omitempty"`
	Detail     string                `json:"detail,omitempty"`
}

// MessageResponse is a bare confirmation body.
type MessageResponse struct {
	Message string `json:"message"`
}
