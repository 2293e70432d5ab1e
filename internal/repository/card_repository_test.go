package repository_test

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yasinhessnawi1/BizCards_Backend/internal/constants"
	"github.com/yasinhessnawi1/BizCards_Backend/internal/database"
	"github.com/yasinhessnawi1/BizCards_Backend/internal/models"
	"github.com/yasinhessnawi1/BizCards_Backend/internal/repository"
	"github.com/yasinhessnawi1/BizCards_Backend/internal/utils"
)

var cardColumns = []string{
	"card_id", "user_id", "title", "subtitle", "description", "phone", "email", "web",
	"image_url", "image_alt", "state", "country", "city", "street", "house_number", "zip",
	"biz_number", "version", "created_at", "updated_at",
}

func setupCardRepositoryTest(t *testing.T, driver string) (repository.CardRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return repository.NewCardRepository(database.NewPool(db, driver)), mock
}

func testCard() *models.Card {
	return &models.Card{
		ID:       "card-1",
		UserID:   "owner-1",
		Title:    "Levi Plumbing",
		Subtitle: "Pipes",
		Phone:    "0521234567",
		Email:    "plumbing@example.com",
		Image:    models.CardImage{URL: "https://example.com/logo.png", Alt: "logo"},
		Address: models.CardAddress{
			State:       constants.DefaultCardState,
			Country:     "Israel",
			City:        "Tel Aviv",
			Street:      "Dizengoff",
			HouseNumber: intPtr(50),
			Zip:         constants.DefaultCardZip,
		},
		BizNumber: 123456,
		Likes:     []string{},
		CreatedAt: "1.2.2026, 10:00:00",
		UpdatedAt: "1.2.2026, 10:00:00",
	}
}

func addCardRow(rows *sqlmock.Rows, c *models.Card) *sqlmock.Rows {
	return rows.AddRow(
		c.ID, c.UserID, c.Title, c.Subtitle, c.Description, c.Phone, c.Email, c.Web,
		c.Image.URL, c.Image.Alt, c.Address.State, c.Address.Country, c.Address.City,
		c.Address.Street, *c.Address.HouseNumber, string(c.Address.Zip),
		c.BizNumber, c.Version, c.CreatedAt, c.UpdatedAt,
	)
}

func TestCardRepository_Create(t *testing.T) {
	repo, mock := setupCardRepositoryTest(t, constants.DriverPostgres)
	card := testCard()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO cards")).
		WithArgs(card.ID, card.UserID, card.Title, card.Subtitle, "", card.Phone, card.Email, "",
			card.Image.URL, card.Image.Alt, "not defined", "Israel", "Tel Aviv", "Dizengoff", 50, "00000",
			123456, 0, card.CreatedAt, card.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Create(context.Background(), card))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCardRepository_Create_UniqueViolations(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantBizRetry bool
	}{
		{"pq biz number", &pq.Error{Code: "23505", Constraint: constants.ConstraintCardsBizNumber}, true},
		{"pgx biz number", &pgconn.PgError{Code: "23505", ConstraintName: constants.ConstraintCardsBizNumber}, true},
		{"mysql biz number", &mysql.MySQLError{Number: 1062, Message: "Duplicate entry '1' for key 'cards.uq_cards_biz_number'"}, true},
		{"pq email", &pq.Error{Code: "23505", Constraint: constants.ConstraintCardsEmail}, false},
		{"mysql email", &mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'a' for key 'cards.uq_cards_email'"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := setupCardRepositoryTest(t, constants.DriverPostgres)
			mock.ExpectExec("INSERT INTO cards").WillReturnError(tt.err)

			err := repo.Create(context.Background(), testCard())

			require.Error(t, err)
			if tt.wantBizRetry {
				assert.ErrorIs(t, err, repository.ErrBizNumberTaken)
				return
			}
			assert.NotErrorIs(t, err, repository.ErrBizNumberTaken)
			appErr := utils.ParseError(err)
			assert.Equal(t, 409, appErr.StatusCode)
			assert.Equal(t, constants.MsgCardExists, appErr.Message)
		})
	}
}

func TestCardRepository_GetByID(t *testing.T) {
	repo, mock := setupCardRepositoryTest(t, constants.DriverPostgres)
	card := testCard()

	mock.ExpectQuery(regexp.QuoteMeta("FROM cards")).
		WithArgs("card-1").
		WillReturnRows(addCardRow(sqlmock.NewRows(cardColumns), card))
	mock.ExpectQuery(regexp.QuoteMeta("FROM card_likes")).
		WithArgs("card-1").
		WillReturnRows(sqlmock.NewRows([]string{"card_id", "user_id"}).AddRow("card-1", "u1").AddRow("card-1", "u2"))

	got, err := repo.GetByID(context.Background(), "card-1")

	require.NoError(t, err)
	assert.Equal(t, []string{"u1", "u2"}, got.Likes)
	assert.Equal(t, 123456, got.BizNumber)
	assert.Equal(t, 50, *got.Address.HouseNumber)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCardRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := setupCardRepositoryTest(t, constants.DriverPostgres)
	mock.ExpectQuery("FROM cards").WithArgs("nope").WillReturnError(sql.ErrNoRows)

	got, err := repo.GetByID(context.Background(), "nope")

	assert.Nil(t, got)
	assert.True(t, utils.IsNotFoundError(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCardRepository_List(t *testing.T) {
	repo, mock := setupCardRepositoryTest(t, constants.DriverPostgres)
	first := testCard()
	second := testCard()
	second.ID = "card-2"

	mock.ExpectQuery("FROM cards").
		WillReturnRows(addCardRow(addCardRow(sqlmock.NewRows(cardColumns), first), second))
	mock.ExpectQuery("FROM card_likes").
		WillReturnRows(sqlmock.NewRows([]string{"card_id", "user_id"}).AddRow("card-2", "u9"))

	cards, err := repo.List(context.Background())

	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, []string{}, cards[0].Likes)
	assert.Equal(t, []string{"u9"}, cards[1].Likes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCardRepository_List_EmptySkipsLikes(t *testing.T) {
	repo, mock := setupCardRepositoryTest(t, constants.DriverPostgres)
	mock.ExpectQuery("FROM cards").WillReturnRows(sqlmock.NewRows(cardColumns))

	cards, err := repo.List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, cards)
	assert.Empty(t, cards)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCardRepository_ListByOwner(t *testing.T) {
	repo, mock := setupCardRepositoryTest(t, constants.DriverMySQL)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE user_id = ?")).
		WithArgs("owner-1").
		WillReturnRows(addCardRow(sqlmock.NewRows(cardColumns), testCard()))
	mock.ExpectQuery(regexp.QuoteMeta("WHERE c.user_id = ?")).
		WithArgs("owner-1").
		WillReturnRows(sqlmock.NewRows([]string{"card_id", "user_id"}))

	cards, err := repo.ListByOwner(context.Background(), "owner-1")

	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "owner-1", cards[0].UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCardRepository_Update(t *testing.T) {
	repo, mock := setupCardRepositoryTest(t, constants.DriverPostgres)
	card := testCard()
	card.Version = 3

	mock.ExpectExec(regexp.QuoteMeta("UPDATE cards")).
		WithArgs(card.Title, card.Subtitle, "", card.Phone, card.Email, "", card.Image.URL, card.Image.Alt,
			"not defined", "Israel", "Tel Aviv", "Dizengoff", 50, "00000", 3, card.UpdatedAt, card.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Update(context.Background(), card))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCardRepository_Update_Errors(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		repo, mock := setupCardRepositoryTest(t, constants.DriverPostgres)
		mock.ExpectExec("UPDATE cards").WillReturnResult(sqlmock.NewResult(0, 0))

		assert.True(t, utils.IsNotFoundError(repo.Update(context.Background(), testCard())))
	})

	t.Run("email taken", func(t *testing.T) {
		repo, mock := setupCardRepositoryTest(t, constants.DriverPostgres)
		mock.ExpectExec("UPDATE cards").WillReturnError(&pq.Error{Code: "23505", Constraint: constants.ConstraintCardsEmail})

		assert.True(t, utils.IsDuplicateError(repo.Update(context.Background(), testCard())))
	})
}

func TestCardRepository_ToggleLike(t *testing.T) {
	const updatedAt = "3.2.2026, 12:00:00"

	t.Run("adds a missing like", func(t *testing.T) {
		repo, mock := setupCardRepositoryTest(t, constants.DriverPostgres)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("UPDATE cards SET version = version + 1")).
			WithArgs(updatedAt, "card-1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM card_likes WHERE card_id = $1 AND user_id = $2")).
			WithArgs("card-1", "u1").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO card_likes")).
			WithArgs("card-1", "u1", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		liked, err := repo.ToggleLike(context.Background(), "card-1", "u1", updatedAt)

		require.NoError(t, err)
		assert.True(t, liked)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("removes an existing like", func(t *testing.T) {
		repo, mock := setupCardRepositoryTest(t, constants.DriverPostgres)

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE cards").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("DELETE FROM card_likes").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		liked, err := repo.ToggleLike(context.Background(), "card-1", "u1", updatedAt)

		require.NoError(t, err)
		assert.False(t, liked)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing card", func(t *testing.T) {
		repo, mock := setupCardRepositoryTest(t, constants.DriverPostgres)

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE cards").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		_, err := repo.ToggleLike(context.Background(), "nope", "u1", updatedAt)

		assert.True(t, utils.IsNotFoundError(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insert failure rolls back", func(t *testing.T) {
		repo, mock := setupCardRepositoryTest(t, constants.DriverPostgres)

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE cards").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("DELETE FROM card_likes").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("INSERT INTO card_likes").WillReturnError(errors.New("disk full"))
		mock.ExpectRollback()

		_, err := repo.ToggleLike(context.Background(), "card-1", "u1", updatedAt)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to add like")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCardRepository_Delete(t *testing.T) {
	repo, mock := setupCardRepositoryTest(t, constants.DriverPostgres)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM card_likes WHERE card_id = $1")).
		WithArgs("card-1").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM cards WHERE card_id = $1")).
		WithArgs("card-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	assert.NoError(t, repo.Delete(context.Background(), "card-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCardRepository_Delete_NotFound(t *testing.T) {
	repo, mock := setupCardRepositoryTest(t, constants.DriverPostgres)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM card_likes").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM cards").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	assert.True(t, utils.IsNotFoundError(repo.Delete(context.Background(), "nope")))
	assert.NoError(t, mock.ExpectationsWereMet())
}
