package dtos

type HealthCheckResponse struct {
	Status string `json:"status"`
}

// ValidationErrorDetail is one failed field, returned in the details of a
// validation_error response.
type ValidationErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}
