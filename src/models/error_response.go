package models

// ErrorResponse โครงสร้างมาตรฐานสำหรับการส่ง Error
type ErrorResponse struct {
	Status  int    `json:"status"`         // HTTP Status Code
	Message string `json:"message"`        // รายละเอียดของ Error
	Code    string `json:"code,omitempty"` // machine-readable reason
}

// FieldError is one violated constraint on one input field.
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// ValidationErrorResponse is returned with 400 when a form fails its schema.
type ValidationErrorResponse struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors"`
}
