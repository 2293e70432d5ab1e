// Package constants provides shared constant values used throughout the application.
//
// The httpcodes.go file defines HTTP status codes, response codes and header
// names used in API responses.
package constants

// HTTP Status Codes used by the API.
const (
	StatusOK                  = 200
	StatusCreated             = 201
	StatusNoContent           = 204
	StatusBadRequest          = 400
	StatusUnauthorized        = 401
	StatusForbidden           = 403
	StatusNotFound            = 404
	StatusMethodNotAllowed    = 405
	StatusConflict            = 409
	StatusInternalServerError = 500
	StatusServiceUnavailable  = 503
)

// Response Codes are the machine-readable codes carried in the error envelope.
const (
	// ResponseSuccess marks a successful envelope.
	ResponseSuccess = true

	// ResponseFailure marks a failed envelope.
	ResponseFailure = false

	// CodeBadRequest indicates the request was malformed.
	CodeBadRequest = "bad_request"

	// CodeUnauthorized indicates authentication is required.
	CodeUnauthorized = "unauthorized"

	// CodeForbidden indicates the principal lacks the role or ownership required.
	CodeForbidden = "forbidden"

	// CodeNotFound indicates the requested resource does not exist.
	CodeNotFound = "not_found"

	// CodeMethodNotAllowed indicates the HTTP method is not allowed for the endpoint.
	CodeMethodNotAllowed = "method_not_allowed"

	// CodeConflict indicates a duplicate unique field.
	CodeConflict = "conflict"

	// CodeInternalError indicates an unexpected server error.
	CodeInternalError = "internal_error"

	// CodeServiceUnavailable indicates a dependency such as the database is down.
	CodeServiceUnavailable = "service_unavailable"

	// CodeValidationError indicates request validation failed.
	CodeValidationError = "validation_error"

	// CodeInvalidCredentials indicates login credentials are incorrect.
	CodeInvalidCredentials = "invalid_credentials"

	// CodeTokenExpired indicates an authentication token has expired.
	CodeTokenExpired = "token_expired"

	// CodeTokenInvalid indicates an authentication token is malformed or invalid.
	CodeTokenInvalid = "token_invalid"
)

// HTTP Header Names.
const (
	HeaderContentType           = "Content-Type"
	HeaderAuthorization         = "Authorization"
	HeaderXRequestID            = "X-Request-ID"
	HeaderXContentTypeOptions   = "X-Content-Type-Options"
	HeaderXFrameOptions         = "X-Frame-Options"
	HeaderXXSSProtection        = "X-XSS-Protection"
	HeaderReferrerPolicy        = "Referrer-Policy"
	HeaderContentSecurityPolicy = "Content-Security-Policy"
	HeaderCacheControl          = "Cache-Control"
)

// Header values.
const (
	ContentTypeJSON = "application/json"

	FrameOptionsDeny           = "DENY"
	XSSProtectionModeBlock     = "1; mode=block"
	ContentTypeOptionsNoSniff  = "nosniff"
	ReferrerPolicyStrictOrigin = "strict-origin-when-cross-origin"
	CSPDefaultSrc              = "default-src 'self'"
	CacheControlNoStore        = "no-cache, no-store, must-revalidate"
)
