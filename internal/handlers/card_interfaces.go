package handlers

import (
	"context"

	"github.com/yasinhessnawi1/BizCards_Backend/internal/models"
)

// CardServiceInterface defines the methods required from CardService
type CardServiceInterface interface {
	ListCards(ctx context.Context) ([]*models.Card, error)
	ListMyCards(ctx context.Context, principal *models.Principal) ([]*models.Card, error)
	GetCard(ctx context.Context, id string) (*models.Card, error)
	CreateCard(ctx context.Context, principal *models.Principal, input *models.CardInput) (*models.Card, error)
	UpdateCard(ctx context.Context, principal *models.Principal, id string, input *models.CardInput) (*models.Card, error)
	ToggleLike(ctx context.Context, principal *models.Principal, id string) (*models.Card, error)
	DeleteCard(ctx context.Context, principal *models.Principal, id string) error
}
