package dto

// DetailResponse cuerpo de error o confirmación con mensaje fijo.
// Es la forma histórica del API: {"detail": "..."}.
type DetailResponse struct {
	Detail string `json:"detail"`
}

// FieldError error de validación de un campo del cuerpo.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// ValidationErrorResponse cuerpo 422 con el detalle por campo.
type ValidationErrorResponse struct {
	Detail []FieldError `json:"detail"`
}
