package handlers

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps the go-playground/validator library to implement Echo's Validator interface.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new CustomValidator.
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate implements the echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// SwitchViewerRequest is the DTO of the viewer switch form. An empty id
// signs out and returns to a guest session.
type SwitchViewerRequest struct {
	ViewerID string `form:"viewer_id" validate:"omitempty,max=64,alphanumunicode"`
}
