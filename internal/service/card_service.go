package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/yasinhessnawi1/BizCards_Backend/internal/constants"
	"github.com/yasinhessnawi1/BizCards_Backend/internal/models"
	"github.com/yasinhessnawi1/BizCards_Backend/internal/policy"
	"github.com/yasinhessnawi1/BizCards_Backend/internal/repository"
	"github.com/yasinhessnawi1/BizCards_Backend/internal/utils"
)

// CardService handles card listing, authoring and likes
type CardService struct {
	cardRepo   repository.CardRepository
	bizNumbers BizNumberGenerator
}

// NewCardService creates a new CardService. A nil generator falls back to
// the random one.
func NewCardService(cardRepo repository.CardRepository, bizNumbers BizNumberGenerator) *CardService {
	if bizNumbers == nil {
		bizNumbers = NewBizNumberGenerator()
	}
	return &CardService{
		cardRepo:   cardRepo,
		bizNumbers: bizNumbers,
	}
}

// ListCards returns every card
func (s *CardService) ListCards(ctx context.Context) ([]*models.Card, error) {
	return s.cardRepo.List(ctx)
}

// ListMyCards returns the cards owned by principal
func (s *CardService) ListMyCards(ctx context.Context, principal *models.Principal) ([]*models.Card, error) {
	if err := policy.Evaluate(principal, "", policy.ActionViewOwnCards); err != nil {
		return nil, err
	}
	return s.cardRepo.ListByOwner(ctx, principal.ID)
}

// GetCard returns card id
func (s *CardService) GetCard(ctx context.Context, id string) (*models.Card, error) {
	return s.cardRepo.GetByID(ctx, id)
}

// CreateCard stores a new card owned by principal under a fresh business
// number. Collisions on the business number are retried with a new candidate.
func (s *CardService) CreateCard(ctx context.Context, principal *models.Principal, input *models.CardInput) (*models.Card, error) {
	if err := policy.Evaluate(principal, "", policy.ActionCreateCard); err != nil {
		return nil, err
	}

	card := models.NewCard(principal.ID, input)

	for attempt := 1; attempt <= constants.MaxBizNumberAttempts; attempt++ {
		bizNumber, err := s.bizNumbers.Next()
		if err != nil {
			return nil, err
		}
		card.BizNumber = bizNumber

		err = s.cardRepo.Create(ctx, card)
		if err == nil {
			return card, nil
		}
		if !errors.Is(err, repository.ErrBizNumberTaken) {
			return nil, err
		}

		log.Debug().
			Str("category", constants.LogCategoryCard).
			Int("biz_number", bizNumber).
			Int("attempt", attempt).
			Msg("Business number taken, retrying")
	}

	log.Error().
		Str("category", constants.LogCategoryCard).
		Str("user_id", principal.ID).
		Int("attempts", constants.MaxBizNumberAttempts).
		Msg("Business number allocation exhausted")

	return nil, utils.New(utils.ErrInternalServer, http.StatusInternalServerError, constants.MsgBizNumberExhausted)
}

// UpdateCard replaces the editable fields of card id
func (s *CardService) UpdateCard(ctx context.Context, principal *models.Principal, id string, input *models.CardInput) (*models.Card, error) {
	if principal == nil {
		return nil, policy.Evaluate(nil, "", policy.ActionUpdateCard)
	}

	card, err := s.cardRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := policy.Evaluate(principal, card.UserID, policy.ActionUpdateCard); err != nil {
		return nil, err
	}

	card.Replace(input)

	if err := s.cardRepo.Update(ctx, card); err != nil {
		return nil, err
	}

	return card, nil
}

// ToggleLike adds the like of principal to card id or removes it when present
func (s *CardService) ToggleLike(ctx context.Context, principal *models.Principal, id string) (*models.Card, error) {
	if err := policy.Evaluate(principal, "", policy.ActionLikeCard); err != nil {
		return nil, err
	}

	card, err := s.cardRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	card.Touch()

	liked, err := s.cardRepo.ToggleLike(ctx, id, principal.ID, card.UpdatedAt)
	if err != nil {
		return nil, err
	}

	// Mirror the stored state on the card fetched above
	switch {
	case liked && !card.LikedBy(principal.ID):
		card.Likes = append(card.Likes, principal.ID)
	case !liked:
		card.Likes = utils.RemoveString(card.Likes, principal.ID)
	}

	return card, nil
}

// DeleteCard removes card id and its likes
func (s *CardService) DeleteCard(ctx context.Context, principal *models.Principal, id string) error {
	if principal == nil {
		return policy.Evaluate(nil, "", policy.ActionDeleteCard)
	}

	card, err := s.cardRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := policy.Evaluate(principal, card.UserID, policy.ActionDeleteCard); err != nil {
		return err
	}

	if err := s.cardRepo.Delete(ctx, id); err != nil {
		if utils.IsNotFoundError(err) {
			return err
		}
		return fmt.Errorf("failed to delete card: %w", err)
	}

	return nil
}
