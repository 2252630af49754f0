package api

// Error codes returned in the error envelope. The set is closed: every
// failure a handler can surface maps to exactly one of these.
const (
	CodeEmailTaken         = "EMAIL_TAKEN"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeValidationError    = "VALIDATION_ERROR"
	CodeNoAuthHeader       = "NO_AUTH_HEADER"
	CodeInvalidAuthFormat  = "INVALID_AUTH_FORMAT"
	CodeInvalidToken       = "INVALID_TOKEN"
	CodeRateLimited        = "RATE_LIMITED"
	CodeInternalError      = "INTERNAL_ERROR"
)

// DataResponse is the success envelope: {"data": <result>}.
type DataResponse struct {
	Data any `json:"data"`
}

// ErrorBody carries a machine-readable code and a human-readable message.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the failure envelope: {"error": {"code", "message"}}.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// NewErrorResponse builds the failure envelope for the given code and message.
func NewErrorResponse(code, message string) ErrorResponse {
	return ErrorResponse{Error: ErrorBody{Code: code, Message: message}}
}

// UserResponse is the public projection of a user. It never carries the
// password hash.
type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// TokenResponse wraps the JWT issued on login.
type TokenResponse struct {
	Token string `json:"token"`
}

// ServiceResponse is the wire form of an appointment service record.
type ServiceResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Price       int     `json:"price"`
	ShowTime    *int    `json:"showTime"`
	Order       int     `json:"order"`
	IsRemove    bool    `json:"isRemove"`
	IsPublic    bool    `json:"isPublic"`
	ShopID      *string `json:"shopId"`
}

// DeletedResponse confirms a soft delete: {"data": {"id": <id>}}.
type DeletedResponse struct {
	ID string `json:"id"`
}
