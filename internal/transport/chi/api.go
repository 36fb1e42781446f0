package chi

// ErrorCode is a machine-readable error identifier returned in ErrorResponse.
type ErrorCode string

// Error codes.
const (
	ErrorCodeBadRequest       ErrorCode = "bad_request"
	ErrorCodeUnauthorized     ErrorCode = "unauthorized"
	ErrorCodeValidationFailed ErrorCode = "validation_failed"
	ErrorCodeInternalError    ErrorCode = "internal_error"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// SearchRequest is the body of POST /v1/search and POST /v1/instructions.
type SearchRequest struct {
	Query string `json:"query"`
	TopK  int    `json:"top_k,omitempty"`
}

// Hit is a ranked product.
type Hit struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Score       float64 `json:"score"`
}

// SearchResponse is the body of a POST /v1/search response.
// Reason is set when the search could not run and Hits is empty.
type SearchResponse struct {
	Hits   []Hit  `json:"hits"`
	Reason string `json:"reason,omitempty"`
}

// InstructionsResponse is the body of a POST /v1/instructions response.
type InstructionsResponse struct {
	Hits         []Hit  `json:"hits"`
	Instructions string `json:"instructions"`
	Reason       string `json:"reason,omitempty"`
}

// HealthResponse is the body of a GET /health response.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}
