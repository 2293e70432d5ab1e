// Package constants provides shared constant values used throughout the application.
//
// The defaults.go file defines default values and limits. Changes to these
// values may significantly impact application behavior and security.
package constants

// Default Configuration Values define fallback settings when not specified in configuration.
const (
	// DefaultServerPort is the default HTTP server port.
	DefaultServerPort = 8001

	// DefaultDBDriver is the database driver used when none is configured.
	DefaultDBDriver = DriverPostgres

	// DefaultDBHost is the default database host.
	DefaultDBHost = "localhost"

	// DefaultPostgresPort is the default port for the postgres and pgx drivers.
	DefaultPostgresPort = 5432

	// DefaultMySQLPort is the default port for the mysql driver.
	DefaultMySQLPort = 3306

	// DefaultDBName is the default database name.
	DefaultDBName = "bizcards"

	// DefaultDBSSLMode is the default sslmode for postgres connections.
	DefaultDBSSLMode = "disable"

	// DefaultDBMaxConnections is the default maximum number of database connections.
	DefaultDBMaxConnections = 20

	// DefaultDBMinConnections is the default number of idle database connections kept open.
	DefaultDBMinConnections = 5

	// DefaultLogLevel is the default logging verbosity level.
	DefaultLogLevel = "info"

	// DefaultLogFormat is the default logging output format.
	DefaultLogFormat = "json"

	// DefaultAppName is the default application name.
	DefaultAppName = "bizcards-api"
)

// Environment Types define the recognized application running environments.
const (
	// EnvDevelopment identifies a development environment with debugging features enabled.
	EnvDevelopment = "development"

	// EnvTesting identifies a testing environment for automated tests.
	EnvTesting = "testing"

	// EnvProduction identifies a production environment with optimized settings.
	EnvProduction = "production"
)

// File Size Limits define the maximum allowed sizes for request bodies.
const (
	// MaxRequestBodySize is the maximum size in bytes for HTTP request bodies.
	MaxRequestBodySize = 1048576 // 1MB in bytes
)

// Default Password Hash Settings define the parameters for Argon2id hashing.
const (
	// DefaultPasswordHashMemory is the memory cost parameter for Argon2id hashing.
	DefaultPasswordHashMemory = 64 * 1024

	// DefaultPasswordHashIterations is the number of iterations for Argon2id hashing.
	DefaultPasswordHashIterations = 3

	// DefaultPasswordHashParallelism is the degree of parallelism for Argon2id hashing.
	DefaultPasswordHashParallelism = 2

	// DefaultPasswordHashSaltLength is the length in bytes of the random salt.
	DefaultPasswordHashSaltLength = 16

	// DefaultPasswordHashKeyLength is the length in bytes of the generated hash.
	DefaultPasswordHashKeyLength = 32

	// DevPasswordHashMemory is a reduced memory setting for development environments.
	DevPasswordHashMemory = 16 * 1024

	// DevPasswordHashIterations is a reduced iteration count for development environments.
	DevPasswordHashIterations = 1
)

// Auth Constants define values related to token handling.
const (
	// DefaultJWTIssuer is the issuer claim value for JWT tokens.
	DefaultJWTIssuer = "bizcards-api"

	// BearerTokenPrefix is the prefix for Authorization header bearer tokens.
	BearerTokenPrefix = "Bearer "
)

// Card and user defaults.
const (
	// DefaultUserImageURL is the placeholder profile image.
	DefaultUserImageURL = "https://images.unsplash.com/photo-1744762561513-6691932920fb?q=80&w=1287&auto=format&fit=crop&ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D"

	// DefaultUserImageAlt is the alt text used when a profile image has none.
	DefaultUserImageAlt = "profile"

	// DefaultCardState is stored when a card address has no state.
	DefaultCardState = "not defined"

	// DefaultCardZip is stored when a card address has no zip.
	DefaultCardZip = "00000"

	// BizNumberUpperBound is the exclusive upper bound of generated business numbers.
	BizNumberUpperBound = 1000000

	// MaxBizNumberAttempts bounds the insert retries on a business number collision.
	MaxBizNumberAttempts = 10

	// TimestampLayout renders timestamps the way the he-IL locale does.
	TimestampLayout = "2.1.2006, 15:04:05"
)
