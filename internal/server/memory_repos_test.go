package server

import (
	"context"
	"sync"

	"github.com/yasinhessnawi1/BizCards_Backend/internal/constants"
	"github.com/yasinhessnawi1/BizCards_Backend/internal/models"
	"github.com/yasinhessnawi1/BizCards_Backend/internal/repository"
	"github.com/yasinhessnawi1/BizCards_Backend/internal/utils"
)

// memoryUsers is an in-memory UserRepository enforcing email uniqueness
type memoryUsers struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{users: make(map[string]*models.User)}
}

func (m *memoryUsers) Create(ctx context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.users {
		if existing.Email == user.Email {
			return utils.NewConflictError("email", constants.MsgUserExists)
		}
	}
	copied := *user
	m.users[user.ID] = &copied
	return nil
}

func (m *memoryUsers) GetByID(ctx context.Context, id string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[id]
	if !ok {
		return nil, utils.NewNotFoundError("User", id)
	}
	copied := *user
	return &copied, nil
}

func (m *memoryUsers) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, user := range m.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, utils.NewNotFoundError("User", email)
}

func (m *memoryUsers) List(ctx context.Context) ([]*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	users := []*models.User{}
	for _, user := range m.users {
		copied := *user
		users = append(users, &copied)
	}
	return users, nil
}

func (m *memoryUsers) Update(ctx context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[user.ID]; !ok {
		return utils.NewNotFoundError("User", user.ID)
	}
	copied := *user
	m.users[user.ID] = &copied
	return nil
}

func (m *memoryUsers) SetBusiness(ctx context.Context, id string, isBusiness bool, updatedAt string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[id]
	if !ok {
		return utils.NewNotFoundError("User", id)
	}
	user.IsBusiness = isBusiness
	user.UpdatedAt = updatedAt
	return nil
}

func (m *memoryUsers) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[id]; !ok {
		return utils.NewNotFoundError("User", id)
	}
	delete(m.users, id)
	return nil
}

// memoryCards is an in-memory CardRepository enforcing email and bizNumber uniqueness
type memoryCards struct {
	mu    sync.Mutex
	cards map[string]*models.Card
}

func newMemoryCards() *memoryCards {
	return &memoryCards{cards: make(map[string]*models.Card)}
}

func cloneCard(card *models.Card) *models.Card {
	copied := *card
	copied.Likes = append([]string{}, card.Likes...)
	return &copied
}

func (m *memoryCards) Create(ctx context.Context, card *models.Card) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.cards {
		if existing.BizNumber == card.BizNumber {
			return repository.ErrBizNumberTaken
		}
		if existing.Email == card.Email {
			return utils.NewConflictError("email", constants.MsgCardExists)
		}
	}
	m.cards[card.ID] = cloneCard(card)
	return nil
}

func (m *memoryCards) GetByID(ctx context.Context, id string) (*models.Card, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	card, ok := m.cards[id]
	if !ok {
		return nil, utils.NewNotFoundError("Card", id)
	}
	return cloneCard(card), nil
}

func (m *memoryCards) List(ctx context.Context) ([]*models.Card, error) {
	return m.filter(func(*models.Card) bool { return true }), nil
}

func (m *memoryCards) ListByOwner(ctx context.Context, ownerID string) ([]*models.Card, error) {
	return m.filter(func(c *models.Card) bool { return c.UserID == ownerID }), nil
}

func (m *memoryCards) filter(keep func(*models.Card) bool) []*models.Card {
	m.mu.Lock()
	defer m.mu.Unlock()
	cards := []*models.Card{}
	for _, card := range m.cards {
		if keep(card) {
			cards = append(cards, cloneCard(card))
		}
	}
	return cards
}

func (m *memoryCards) Update(ctx context.Context, card *models.Card) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.cards[card.ID]; !ok {
		return utils.NewNotFoundError("Card", card.ID)
	}
	m.cards[card.ID] = cloneCard(card)
	return nil
}

func (m *memoryCards) ToggleLike(ctx context.Context, cardID, userID, updatedAt string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	card, ok := m.cards[cardID]
	if !ok {
		return false, utils.NewNotFoundError("Card", cardID)
	}
	card.Version++
	card.UpdatedAt = updatedAt
	if utils.ContainsString(card.Likes, userID) {
		card.Likes = utils.RemoveString(card.Likes, userID)
		return false, nil
	}
	card.Likes = append(card.Likes, userID)
	return true, nil
}

func (m *memoryCards) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.cards[id]; !ok {
		return utils.NewNotFoundError("Card", id)
	}
	delete(m.cards, id)
	return nil
}

var (
	_ repository.UserRepository = (*memoryUsers)(nil)
	_ repository.CardRepository = (*memoryCards)(nil)
)
