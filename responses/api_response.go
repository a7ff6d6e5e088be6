package responses

import "github.com/gofiber/fiber/v2"

// ApiResponse is the envelope every endpoint returns. Code carries a
// machine-readable error code where the client branches on it.
type ApiResponse struct {
	Status  int        `json:"status"`
	Code    string     `json:"code,omitempty"`
	Message string     `json:"message"`
	Result  *fiber.Map `json:"result,omitempty"`
}

// Error codes surfaced to the client.
const (
	CodeMissingFields      = "MISSING_FIELDS"
	CodeUserExists         = "USER_EXISTS"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeAccountDisabled    = "ACCOUNT_DISABLED"
	CodeEmailNotVerified   = "EMAIL_NOT_VERIFIED"
	CodeInvalidToken       = "INVALID_TOKEN"
	CodeUserNotFound       = "USER_NOT_FOUND"
	CodeServerError        = "SERVER_ERROR"
)
