package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/yasinhessnawi1/BizCards_Backend/internal/constants"
	"github.com/yasinhessnawi1/BizCards_Backend/internal/database"
	"github.com/yasinhessnawi1/BizCards_Backend/internal/models"
	"github.com/yasinhessnawi1/BizCards_Backend/internal/utils"
)

// UserRepository defines methods for interacting with user data
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	Update(ctx context.Context, user *models.User) error
	SetBusiness(ctx context.Context, id string, isBusiness bool, updatedAt string) error
	Delete(ctx context.Context, id string) error
}

// SQLUserRepository is the database/sql implementation of UserRepository
type SQLUserRepository struct {
	db *database.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *database.Pool) UserRepository {
	return &SQLUserRepository{
		db: db,
	}
}

// Create adds a new user to the database
func (r *SQLUserRepository) Create(ctx context.Context, user *models.User) error {
	startTime := time.Now()

	query := fmt.Sprintf(`
        INSERT INTO users (%s)
        VALUES (%s)
    `, userColumns, database.Placeholders(1, 20))

	args := []interface{}{
		user.ID,
		user.Name.First,
		user.Name.Middle,
		user.Name.Last,
		user.IsBusiness,
		user.IsAdmin,
		user.Phone,
		user.Email,
		user.PasswordHash,
		user.Salt,
		user.Address.State,
		user.Address.Country,
		user.Address.City,
		user.Address.Street,
		intValue(user.Address.HouseNumber),
		user.Address.Zip.String(),
		user.Image.URL,
		user.Image.Alt,
		user.CreatedAt,
		user.UpdatedAt,
	}

	_, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...)

	utils.LogDBQuery(query, args, time.Since(startTime), err)

	if err != nil {
		if constraint, ok := utils.UniqueViolation(err); ok && (constraint == "" || constraint == constants.ConstraintUsersEmail) {
			return utils.NewConflictError("email", constants.MsgUserExists)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	log.Info().
		Str("category", constants.LogCategoryUser).
		Str("user_id", user.ID).
		Str("email", utils.MaskEmail(user.Email)).
		Msg("User created")

	return nil
}

// GetByID retrieves a user by ID
func (r *SQLUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	startTime := time.Now()

	query := fmt.Sprintf(`
        SELECT %s
        FROM users
        WHERE user_id = $1
    `, userColumns)

	user, err := scanUser(r.db.QueryRowContext(ctx, r.db.Rebind(query), id))

	utils.LogDBQuery(query, []interface{}{id}, time.Since(startTime), err)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.NewNotFoundError("User", id)
		}
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}

	return user, nil
}

// GetByEmail retrieves a user by email
func (r *SQLUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	startTime := time.Now()

	query := fmt.Sprintf(`
        SELECT %s
        FROM users
        WHERE email = $1
    `, userColumns)

	user, err := scanUser(r.db.QueryRowContext(ctx, r.db.Rebind(query), email))

	utils.LogDBQuery(query, []interface{}{email}, time.Since(startTime), err)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.NewNotFoundError("User", fmt.Sprintf("email=%s", utils.MaskEmail(email)))
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

// List returns every user
func (r *SQLUserRepository) List(ctx context.Context) ([]*models.User, error) {
	startTime := time.Now()

	query := fmt.Sprintf(`
        SELECT %s
        FROM users
    `, userColumns)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		utils.LogDBQuery(query, nil, time.Since(startTime), err)
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := []*models.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, user)
	}

	err = rows.Err()
	utils.LogDBQuery(query, nil, time.Since(startTime), err)
	if err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}

	return users, nil
}

// Update replaces the stored profile, password and flags of a user
func (r *SQLUserRepository) Update(ctx context.Context, user *models.User) error {
	startTime := time.Now()

	query := `
        UPDATE users
        SET first_name = $1, middle_name = $2, last_name = $3, is_business = $4,
            is_admin = $5, phone = $6, email = $7, password_hash = $8, salt = $9,
            state = $10, country = $11, city = $12, street = $13, house_number = $14,
            zip = $15, image_url = $16, image_alt = $17, updated_at = $18
        WHERE user_id = $19
    `

	args := []interface{}{
		user.Name.First,
		user.Name.Middle,
		user.Name.Last,
		user.IsBusiness,
		user.IsAdmin,
		user.Phone,
		user.Email,
		user.PasswordHash,
		user.Salt,
		user.Address.State,
		user.Address.Country,
		user.Address.City,
		user.Address.Street,
		intValue(user.Address.HouseNumber),
		user.Address.Zip.String(),
		user.Image.URL,
		user.Image.Alt,
		user.UpdatedAt,
		user.ID,
	}

	result, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...)

	utils.LogDBQuery(query, args, time.Since(startTime), err)

	if err != nil {
		if constraint, ok := utils.UniqueViolation(err); ok && (constraint == "" || constraint == constants.ConstraintUsersEmail) {
			return utils.NewConflictError("email", constants.MsgUserExists)
		}
		return fmt.Errorf("failed to update user: %w", err)
	}

	if database.RowsAffected(result) == 0 {
		return utils.NewNotFoundError("User", user.ID)
	}

	log.Info().
		Str("category", constants.LogCategoryUser).
		Str("user_id", user.ID).
		Msg("User updated")

	return nil
}

// SetBusiness stores the business flag of a user
func (r *SQLUserRepository) SetBusiness(ctx context.Context, id string, isBusiness bool, updatedAt string) error {
	startTime := time.Now()

	query := `
        UPDATE users
        SET is_business = $1, updated_at = $2
        WHERE user_id = $3
    `

	args := []interface{}{isBusiness, updatedAt, id}
	result, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...)

	utils.LogDBQuery(query, args, time.Since(startTime), err)

	if err != nil {
		return fmt.Errorf("failed to update business flag: %w", err)
	}

	if database.RowsAffected(result) == 0 {
		return utils.NewNotFoundError("User", id)
	}

	return nil
}

// Delete removes a user and the likes they gave. Cards they own are kept.
func (r *SQLUserRepository) Delete(ctx context.Context, id string) error {
	startTime := time.Now()

	return r.db.Transaction(ctx, func(tx *sql.Tx) error {
		likesQuery := "DELETE FROM card_likes WHERE user_id = $1"
		_, err := tx.ExecContext(ctx, r.db.Rebind(likesQuery), id)
		utils.LogDBQuery(likesQuery, []interface{}{id}, time.Since(startTime), err)
		if err != nil {
			return fmt.Errorf("failed to delete user likes: %w", err)
		}

		userQuery := "DELETE FROM users WHERE user_id = $1"
		result, err := tx.ExecContext(ctx, r.db.Rebind(userQuery), id)
		utils.LogDBQuery(userQuery, []interface{}{id}, time.Since(startTime), err)
		if err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}

		if database.RowsAffected(result) == 0 {
			return utils.NewNotFoundError("User", id)
		}

		log.Info().
			Str("category", constants.LogCategoryUser).
			Str("user_id", id).
			Msg("User deleted")

		return nil
	})
}

func scanUser(row rowScanner) (*models.User, error) {
	var (
		user        models.User
		houseNumber int
		zip         string
	)

	err := row.Scan(
		&user.ID,
		&user.Name.First,
		&user.Name.Middle,
		&user.Name.Last,
		&user.IsBusiness,
		&user.IsAdmin,
		&user.Phone,
		&user.Email,
		&user.PasswordHash,
		&user.Salt,
		&user.Address.State,
		&user.Address.Country,
		&user.Address.City,
		&user.Address.Street,
		&houseNumber,
		&zip,
		&user.Image.URL,
		&user.Image.Alt,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	user.Address.HouseNumber = &houseNumber
	user.Address.Zip = models.NumericString(zip)

	return &user, nil
}
