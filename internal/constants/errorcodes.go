// Package constants provides shared constant values used throughout the application.
//
// The errorcodes.go file defines constants related to error handling and
// messaging. User-facing messages are informative without revealing
// implementation details.
package constants

// Error Types define the categories of errors that can occur in the application.
const (
	// ErrorNotFound indicates that a requested resource could not be found.
	ErrorNotFound = "resource not found"

	// ErrorUnauthorized indicates that authentication is required but was not provided.
	ErrorUnauthorized = "unauthorized access"

	// ErrorForbidden indicates that the requester lacks sufficient permissions.
	ErrorForbidden = "forbidden access"

	// ErrorBadRequest indicates that the request was malformed or invalid.
	ErrorBadRequest = "invalid request"

	// ErrorInternalServer indicates an unexpected internal error.
	ErrorInternalServer = "internal server error"

	// ErrorValidation indicates that input validation failed.
	ErrorValidation = "validation error"

	// ErrorDuplicate indicates an attempt to create a resource that already exists.
	ErrorDuplicate = "duplicate resource"

	// ErrorInvalidCredentials indicates that authentication credentials are incorrect.
	ErrorInvalidCredentials = "invalid credentials"

	// ErrorExpiredToken indicates that an authentication token has expired.
	ErrorExpiredToken = "expired token"

	// ErrorInvalidToken indicates that an authentication token is malformed or invalid.
	ErrorInvalidToken = "invalid token"
)

// User-Facing Error Messages.
const (
	// MsgAuthRequired indicates that the user must authenticate to access the resource.
	MsgAuthRequired = "Authentication required"

	// MsgInvalidCredentials is returned for both an unknown email and a wrong password.
	MsgInvalidCredentials = "Invalid email or password"

	// MsgAccessDenied indicates that the user lacks permission for the requested action.
	MsgAccessDenied = "You don't have permission to access this resource"

	// MsgInternalServerError provides a generic server error message.
	MsgInternalServerError = "An internal server error occurred"

	// MsgRequestTimeout is returned when a store call exceeds the request deadline.
	MsgRequestTimeout = "The request took too long to complete"

	// MsgTokenExpired indicates that the user's authentication token has expired.
	MsgTokenExpired = "Authentication token has expired"

	// MsgInvalidToken indicates that the provided token is invalid.
	MsgInvalidToken = "Invalid token"

	// MsgRequestBodyTooLarge indicates that the request payload exceeds size limits.
	MsgRequestBodyTooLarge = "Request body too large"

	// MsgEmptyRequestBody indicates that a request body was expected but not provided.
	MsgEmptyRequestBody = "Request body must not be empty"

	// MsgMalformedJSON indicates that the request body contains invalid JSON.
	MsgMalformedJSON = "Request body contains malformed JSON"

	// MsgResourceNotFound indicates that the requested resource does not exist.
	MsgResourceNotFound = "The requested resource could not be found"

	// MsgResourceAlreadyExists indicates a duplicate resource conflict.
	MsgResourceAlreadyExists = "A resource with the same unique identifier already exists"

	// MsgServiceUnhealthy is returned by the health endpoint when the database is unreachable.
	MsgServiceUnhealthy = "Service is not healthy"

	// MsgMethodNotAllowed indicates that the HTTP method is not supported for the endpoint.
	MsgMethodNotAllowed = "This method is not allowed for this resource"

	// MsgInvalidPhone is the first-error message for a phone failing the Israeli mobile pattern.
	MsgInvalidPhone = "The phone number must be an Israeli phone number starting with 05 and max digits is 9-10"

	// MsgWeakLoginPassword is the first-error message for a login password lacking complexity.
	MsgWeakLoginPassword = "Password must contain at least one lowercase letter, one uppercase letter, one digit, and one special character"
)

// Domain messages returned on success or on domain conflicts.
const (
	MsgUserCreated           = "User has been created successfully"
	MsgUserExists            = "User already exists try another email"
	MsgUserDeleted           = "User deleted successfully"
	MsgBusinessStatusChanged = "Is business status have been changed"
	MsgCardExists            = "The card already exists"
	MsgCardDeleted           = "The card has been deleted successfully"
	MsgCreateCardDenied      = "Only business or admin accounts can add cards"
	MsgUpdateCardDenied      = "Only owner or admin users can update the card"
	MsgDeleteCardDenied      = "You do not have permission to delete this card"
	MsgAdminOnly             = "Only admin users can access this resource"
	MsgUpdateUserDenied      = "Only the account owner or an admin can change this user"
	MsgBizNumberExhausted    = "Could not allocate a unique business number"
)

// Logger Constants define values used for structured logging.
const (
	// LogCategoryUser is the log category for user-related events.
	LogCategoryUser = "user"

	// LogCategoryCard is the log category for card-related events.
	LogCategoryCard = "card"

	// LogCategoryAuth is the log category for authentication-related events.
	LogCategoryAuth = "auth"

	// LogEventLogin is the log event type for user login.
	LogEventLogin = "login"

	// LogEventRegister is the log event type for user registration.
	LogEventRegister = "register"

	// LogRedactedValue is used to replace sensitive values in logs.
	LogRedactedValue = "[REDACTED]"
)
