package models

import (
	"github.com/google/uuid"

	"github.com/yasinhessnawi1/BizCards_Backend/internal/utils"
)

// Card is a business card listing owned by a user.
type Card struct {
	ID          string      `json:"_id"`
	Title       string      `json:"title"`
	Subtitle    string      `json:"subtitle"`
	Description string      `json:"description"`
	Phone       string      `json:"phone"`
	Email       string      `json:"email"`
	Web         string      `json:"web"`
	Image       CardImage   `json:"image"`
	Address     CardAddress `json:"address"`
	BizNumber   int         `json:"bizNumber"`
	Likes       []string    `json:"likes"`
	UserID      string      `json:"user_id"`
	CreatedAt   string      `json:"createdAt"`
	UpdatedAt   string      `json:"updatedAt"`
	Version     int         `json:"__v"`
}

// NewCard creates a card owned by ownerID from input. The business number is
// assigned by the caller before insert.
func NewCard(ownerID string, input *CardInput) *Card {
	now := Now()
	card := &Card{
		ID:        uuid.NewString(),
		UserID:    ownerID,
		Likes:     []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	card.applyInput(input)
	return card
}

// TableName returns the database table name for the Card model.
func (c *Card) TableName() string {
	return "cards"
}

// Replace overwrites the editable fields with input. Owner, business number
// and likes are server-owned and kept.
func (c *Card) Replace(input *CardInput) {
	c.applyInput(input)
	c.Touch()
}

// Touch refreshes updatedAt and bumps the version counter.
func (c *Card) Touch() {
	c.UpdatedAt = Now()
	c.Version++
}

// LikedBy reports whether userID has liked the card.
func (c *Card) LikedBy(userID string) bool {
	return utils.ContainsString(c.Likes, userID)
}

func (c *Card) applyInput(input *CardInput) {
	address := input.Address
	address.ApplyDefaults()

	c.Title = input.Title
	c.Subtitle = input.Subtitle
	c.Description = input.Description
	c.Phone = input.Phone
	c.Email = input.Email
	c.Web = input.Web
	c.Image = input.Image
	c.Address = address
}

// CardInput is the body of POST /api/cards and PUT /api/cards/{id}.
// The output-only fields are accepted so a fetched card can be sent back as
// is, but they are never applied.
type CardInput struct {
	ID          string      `json:"_id"`
	Title       string      `json:"title" validate:"required"`
	Subtitle    string      `json:"subtitle" validate:"required"`
	Description string      `json:"description"`
	Phone       string      `json:"phone" validate:"required,min=9,max=10,israeli_phone"`
	Email       string      `json:"email" validate:"required,email,min=5"`
	Web         string      `json:"web"`
	Image       CardImage   `json:"image"`
	Address     CardAddress `json:"address"`
	BizNumber   *int        `json:"bizNumber"`
	Likes       []string    `json:"likes"`
	UserID      string      `json:"user_id"`
	CreatedAt   string      `json:"createdAt"`
	UpdatedAt   string      `json:"updatedAt"`
	Version     *int        `json:"__v"`
}
