package constants

// Route paths.
const (
	APIBasePath = "/api"
	HealthPath  = "/health"
	VersionPath = "/version"
	MetricsPath = "/metrics"

	UsersBasePath = "/api/users"
	CardsBasePath = "/api/cards"

	UserLoginPath = "/login"
	MyCardsPath   = "/my-cards"
)

// URL parameter names.
const (
	ParamID = "id"
)

// Token sources.
const (
	// HeaderXAuthToken is an alternate header carrying a raw token.
	HeaderXAuthToken = "x-auth-token"
)
