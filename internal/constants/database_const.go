// Package constants provides shared constant values used throughout the application.
//
// The database_const.go file defines table names, constraint names and query
// limits. Constraint names matter: the repositories use them to tell which
// unique column a conflict came from.
package constants

// Table Names define the names of database tables used in the application.
const (
	// TableUsers is the name of the table storing user accounts.
	TableUsers = "users"

	// TableCards is the name of the table storing business cards.
	TableCards = "cards"

	// TableCardLikes is the join table recording which user liked which card.
	TableCardLikes = "card_likes"

	// TableMigrations tracks which schema bootstrap steps have run.
	TableMigrations = "migrations"

	// TableSeeds tracks which seed steps have run.
	TableSeeds = "seeds"
)

// Unique constraint names.
const (
	ConstraintUsersEmail     = "uq_users_email"
	ConstraintCardsEmail     = "uq_cards_email"
	ConstraintCardsBizNumber = "uq_cards_biz_number"
)

// Supported database/sql driver names.
const (
	// DriverPostgres uses github.com/lib/pq.
	DriverPostgres = "postgres"

	// DriverPgx uses the database/sql adapter of github.com/jackc/pgx/v5.
	DriverPgx = "pgx"

	// DriverMySQL uses github.com/go-sql-driver/mysql.
	DriverMySQL = "mysql"
)

// Database Error Types define constants for recognizing database-specific errors.
const (
	// DBErrorDuplicateKey is the PostgreSQL error message for unique constraint violations.
	DBErrorDuplicateKey = "duplicate key value violates unique constraint"

	// PGErrorDuplicateConstraint is the PostgreSQL error code for unique constraint violations.
	PGErrorDuplicateConstraint = "23505"

	// PGErrorForeignKeyConstraint is the PostgreSQL error code for foreign key violations.
	PGErrorForeignKeyConstraint = "23503"

	// PGErrorNotNullConstraint is the PostgreSQL error code for not-null constraint violations.
	PGErrorNotNullConstraint = "23502"

	// MySQLErrorDuplicateEntry is the MySQL error number for "Duplicate entry".
	MySQLErrorDuplicateEntry = 1062
)
