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

// CardRepository defines methods for interacting with cards and their likes
type CardRepository interface {
	Create(ctx context.Context, card *models.Card) error
	GetByID(ctx context.Context, id string) (*models.Card, error)
	List(ctx context.Context) ([]*models.Card, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*models.Card, error)
	Update(ctx context.Context, card *models.Card) error
	ToggleLike(ctx context.Context, cardID, userID, updatedAt string) (bool, error)
	Delete(ctx context.Context, id string) error
}

// SQLCardRepository is the database/sql implementation of CardRepository
type SQLCardRepository struct {
	db *database.Pool
}

// NewCardRepository creates a new CardRepository
func NewCardRepository(db *database.Pool) CardRepository {
	return &SQLCardRepository{
		db: db,
	}
}

// Create inserts a card. A business number collision yields
// ErrBizNumberTaken, a card email collision a 409 AppError.
func (r *SQLCardRepository) Create(ctx context.Context, card *models.Card) error {
	startTime := time.Now()

	query := fmt.Sprintf(`
        INSERT INTO cards (%s)
        VALUES (%s)
    `, cardColumns, database.Placeholders(1, 20))

	args := []interface{}{
		card.ID,
		card.UserID,
		card.Title,
		card.Subtitle,
		card.Description,
		card.Phone,
		card.Email,
		card.Web,
		card.Image.URL,
		card.Image.Alt,
		card.Address.State,
		card.Address.Country,
		card.Address.City,
		card.Address.Street,
		intValue(card.Address.HouseNumber),
		card.Address.Zip.String(),
		card.BizNumber,
		card.Version,
		card.CreatedAt,
		card.UpdatedAt,
	}

	_, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...)

	utils.LogDBQuery(query, args, time.Since(startTime), err)

	if err != nil {
		return classifyCardWriteError(err, "failed to create card")
	}

	log.Info().
		Str("category", constants.LogCategoryCard).
		Str("card_id", card.ID).
		Str("user_id", card.UserID).
		Int("biz_number", card.BizNumber).
		Msg("Card created")

	return nil
}

// GetByID retrieves a card and its likes
func (r *SQLCardRepository) GetByID(ctx context.Context, id string) (*models.Card, error) {
	startTime := time.Now()

	query := fmt.Sprintf(`
        SELECT %s
        FROM cards
        WHERE card_id = $1
    `, cardColumns)

	card, err := scanCard(r.db.QueryRowContext(ctx, r.db.Rebind(query), id))

	utils.LogDBQuery(query, []interface{}{id}, time.Since(startTime), err)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.NewNotFoundError("Card", id)
		}
		return nil, fmt.Errorf("failed to get card by ID: %w", err)
	}

	likesQuery := `
        SELECT card_id, user_id
        FROM card_likes
        WHERE card_id = $1
        ORDER BY liked_at, user_id
    `
	likes, err := r.loadLikes(ctx, likesQuery, id)
	if err != nil {
		return nil, err
	}

	if ids, ok := likes[card.ID]; ok {
		card.Likes = ids
	}

	return card, nil
}

// List returns every card
func (r *SQLCardRepository) List(ctx context.Context) ([]*models.Card, error) {
	query := fmt.Sprintf(`
        SELECT %s
        FROM cards
    `, cardColumns)

	likesQuery := `
        SELECT card_id, user_id
        FROM card_likes
        ORDER BY liked_at, user_id
    `

	return r.listCards(ctx, query, likesQuery)
}

// ListByOwner returns the cards of one user
func (r *SQLCardRepository) ListByOwner(ctx context.Context, ownerID string) ([]*models.Card, error) {
	query := fmt.Sprintf(`
        SELECT %s
        FROM cards
        WHERE user_id = $1
    `, cardColumns)

	likesQuery := `
        SELECT l.card_id, l.user_id
        FROM card_likes l
        JOIN cards c ON c.card_id = l.card_id
        WHERE c.user_id = $1
        ORDER BY l.liked_at, l.user_id
    `

	return r.listCards(ctx, query, likesQuery, ownerID)
}

// Update stores the editable fields, version and updatedAt of a card
func (r *SQLCardRepository) Update(ctx context.Context, card *models.Card) error {
	startTime := time.Now()

	query := `
        UPDATE cards
        SET title = $1, subtitle = $2, description = $3, phone = $4, email = $5,
            web = $6, image_url = $7, image_alt = $8, state = $9, country = $10,
            city = $11, street = $12, house_number = $13, zip = $14, version = $15,
            updated_at = $16
        WHERE card_id = $17
    `

	args := []interface{}{
		card.Title,
		card.Subtitle,
		card.Description,
		card.Phone,
		card.Email,
		card.Web,
		card.Image.URL,
		card.Image.Alt,
		card.Address.State,
		card.Address.Country,
		card.Address.City,
		card.Address.Street,
		intValue(card.Address.HouseNumber),
		card.Address.Zip.String(),
		card.Version,
		card.UpdatedAt,
		card.ID,
	}

	result, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...)

	utils.LogDBQuery(query, args, time.Since(startTime), err)

	if err != nil {
		return classifyCardWriteError(err, "failed to update card")
	}

	if database.RowsAffected(result) == 0 {
		return utils.NewNotFoundError("Card", card.ID)
	}

	log.Info().
		Str("category", constants.LogCategoryCard).
		Str("card_id", card.ID).
		Int("version", card.Version).
		Msg("Card updated")

	return nil
}

// ToggleLike removes the like of userID when present and adds it otherwise.
// It reports whether the card is liked by userID afterwards.
func (r *SQLCardRepository) ToggleLike(ctx context.Context, cardID, userID, updatedAt string) (bool, error) {
	startTime := time.Now()
	liked := false

	err := r.db.Transaction(ctx, func(tx *sql.Tx) error {
		touchQuery := "UPDATE cards SET version = version + 1, updated_at = $1 WHERE card_id = $2"
		result, err := tx.ExecContext(ctx, r.db.Rebind(touchQuery), updatedAt, cardID)
		utils.LogDBQuery(touchQuery, []interface{}{updatedAt, cardID}, time.Since(startTime), err)
		if err != nil {
			return fmt.Errorf("failed to touch card: %w", err)
		}
		if database.RowsAffected(result) == 0 {
			return utils.NewNotFoundError("Card", cardID)
		}

		unlikeQuery := "DELETE FROM card_likes WHERE card_id = $1 AND user_id = $2"
		result, err = tx.ExecContext(ctx, r.db.Rebind(unlikeQuery), cardID, userID)
		utils.LogDBQuery(unlikeQuery, []interface{}{cardID, userID}, time.Since(startTime), err)
		if err != nil {
			return fmt.Errorf("failed to remove like: %w", err)
		}
		if database.RowsAffected(result) > 0 {
			return nil
		}

		likeQuery := "INSERT INTO card_likes (card_id, user_id, liked_at) VALUES ($1, $2, $3)"
		likedAt := time.Now().UTC()
		_, err = tx.ExecContext(ctx, r.db.Rebind(likeQuery), cardID, userID, likedAt)
		utils.LogDBQuery(likeQuery, []interface{}{cardID, userID, likedAt}, time.Since(startTime), err)
		if err != nil {
			return fmt.Errorf("failed to add like: %w", err)
		}

		liked = true
		return nil
	})
	if err != nil {
		return false, err
	}

	log.Info().
		Str("category", constants.LogCategoryCard).
		Str("card_id", cardID).
		Str("user_id", userID).
		Bool("liked", liked).
		Msg("Card like toggled")

	return liked, nil
}

// Delete removes a card and its likes
func (r *SQLCardRepository) Delete(ctx context.Context, id string) error {
	startTime := time.Now()

	return r.db.Transaction(ctx, func(tx *sql.Tx) error {
		likesQuery := "DELETE FROM card_likes WHERE card_id = $1"
		_, err := tx.ExecContext(ctx, r.db.Rebind(likesQuery), id)
		utils.LogDBQuery(likesQuery, []interface{}{id}, time.Since(startTime), err)
		if err != nil {
			return fmt.Errorf("failed to delete card likes: %w", err)
		}

		cardQuery := "DELETE FROM cards WHERE card_id = $1"
		result, err := tx.ExecContext(ctx, r.db.Rebind(cardQuery), id)
		utils.LogDBQuery(cardQuery, []interface{}{id}, time.Since(startTime), err)
		if err != nil {
			return fmt.Errorf("failed to delete card: %w", err)
		}

		if database.RowsAffected(result) == 0 {
			return utils.NewNotFoundError("Card", id)
		}

		log.Info().
			Str("category", constants.LogCategoryCard).
			Str("card_id", id).
			Msg("Card deleted")

		return nil
	})
}

func (r *SQLCardRepository) listCards(ctx context.Context, query, likesQuery string, args ...interface{}) ([]*models.Card, error) {
	startTime := time.Now()

	rows, err := r.db.QueryContext(ctx, r.db.Rebind(query), args...)
	if err != nil {
		utils.LogDBQuery(query, args, time.Since(startTime), err)
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	defer rows.Close()

	cards := []*models.Card{}
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan card row: %w", err)
		}
		cards = append(cards, card)
	}

	err = rows.Err()
	utils.LogDBQuery(query, args, time.Since(startTime), err)
	if err != nil {
		return nil, fmt.Errorf("error iterating card rows: %w", err)
	}

	if len(cards) == 0 {
		return cards, nil
	}

	likes, err := r.loadLikes(ctx, likesQuery, args...)
	if err != nil {
		return nil, err
	}

	for _, card := range cards {
		if ids, ok := likes[card.ID]; ok {
			card.Likes = ids
		}
	}

	return cards, nil
}

// loadLikes runs a query returning (card_id, user_id) pairs and groups them by card.
func (r *SQLCardRepository) loadLikes(ctx context.Context, query string, args ...interface{}) (map[string][]string, error) {
	startTime := time.Now()

	rows, err := r.db.QueryContext(ctx, r.db.Rebind(query), args...)
	if err != nil {
		utils.LogDBQuery(query, args, time.Since(startTime), err)
		return nil, fmt.Errorf("failed to load card likes: %w", err)
	}
	defer rows.Close()

	likes := make(map[string][]string)
	for rows.Next() {
		var cardID, userID string
		if err := rows.Scan(&cardID, &userID); err != nil {
			return nil, fmt.Errorf("failed to scan card like: %w", err)
		}
		likes[cardID] = append(likes[cardID], userID)
	}

	err = rows.Err()
	utils.LogDBQuery(query, args, time.Since(startTime), err)
	if err != nil {
		return nil, fmt.Errorf("error iterating card likes: %w", err)
	}

	return likes, nil
}

// classifyCardWriteError maps unique violations of the cards table.
func classifyCardWriteError(err error, action string) error {
	if constraint, ok := utils.UniqueViolation(err); ok {
		switch constraint {
		case constants.ConstraintCardsBizNumber:
			return fmt.Errorf("%s: %w", action, ErrBizNumberTaken)
		case constants.ConstraintCardsEmail, "":
			return utils.NewConflictError("email", constants.MsgCardExists)
		}
	}
	return fmt.Errorf("%s: %w", action, err)
}

func scanCard(row rowScanner) (*models.Card, error) {
	var (
		card        models.Card
		houseNumber int
		zip         string
	)

	err := row.Scan(
		&card.ID,
		&card.UserID,
		&card.Title,
		&card.Subtitle,
		&card.Description,
		&card.Phone,
		&card.Email,
		&card.Web,
		&card.Image.URL,
		&card.Image.Alt,
		&card.Address.State,
		&card.Address.Country,
		&card.Address.City,
		&card.Address.Street,
		&houseNumber,
		&zip,
		&card.BizNumber,
		&card.Version,
		&card.CreatedAt,
		&card.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	card.Address.HouseNumber = &houseNumber
	card.Address.Zip = models.NumericString(zip)
	card.Likes = []string{}

	return &card, nil
}
