package service

import (
	"context"
	"sync"

	"github.com/yasinhessnawi1/BizCards_Backend/internal/auth"
	"github.com/yasinhessnawi1/BizCards_Backend/internal/constants"
	"github.com/yasinhessnawi1/BizCards_Backend/internal/models"
	"github.com/yasinhessnawi1/BizCards_Backend/internal/repository"
	"github.com/yasinhessnawi1/BizCards_Backend/internal/utils"
)

// Mock implementations for testing
type MockUserRepository struct {
	mu           sync.Mutex
	users        map[string]*models.User
	usersByEmail map[string]*models.User
	createCalls  int
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users:        make(map[string]*models.User),
		usersByEmail: make(map[string]*models.User),
	}
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.createCalls++
	if _, ok := m.usersByEmail[user.Email]; ok {
		return utils.NewConflictError("email", constants.MsgUserExists)
	}

	stored := *user
	m.users[user.ID] = &stored
	m.usersByEmail[user.Email] = &stored
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[id]
	if !ok {
		return nil, utils.NewNotFoundError("User", id)
	}
	copied := *user
	return &copied, nil
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.usersByEmail[email]
	if !ok {
		return nil, utils.NewNotFoundError("User", email)
	}
	copied := *user
	return &copied, nil
}

func (m *MockUserRepository) List(ctx context.Context) ([]*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	users := []*models.User{}
	for _, user := range m.users {
		copied := *user
		users = append(users, &copied)
	}
	return users, nil
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	old, ok := m.users[user.ID]
	if !ok {
		return utils.NewNotFoundError("User", user.ID)
	}
	if other, taken := m.usersByEmail[user.Email]; taken && other.ID != user.ID {
		return utils.NewConflictError("email", constants.MsgUserExists)
	}

	delete(m.usersByEmail, old.Email)
	stored := *user
	m.users[user.ID] = &stored
	m.usersByEmail[user.Email] = &stored
	return nil
}

func (m *MockUserRepository) SetBusiness(ctx context.Context, id string, isBusiness bool, updatedAt string) error {
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

func (m *MockUserRepository) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[id]
	if !ok {
		return utils.NewNotFoundError("User", id)
	}
	delete(m.usersByEmail, user.Email)
	delete(m.users, id)
	return nil
}

type MockCardRepository struct {
	mu          sync.Mutex
	cards       map[string]*models.Card
	takenBiz    map[int]bool
	createCalls int
}

func NewMockCardRepository() *MockCardRepository {
	return &MockCardRepository{
		cards:    make(map[string]*models.Card),
		takenBiz: make(map[int]bool),
	}
}

func (m *MockCardRepository) clone(card *models.Card) *models.Card {
	copied := *card
	copied.Likes = append([]string{}, card.Likes...)
	return &copied
}

func (m *MockCardRepository) Create(ctx context.Context, card *models.Card) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.createCalls++
	if m.takenBiz[card.BizNumber] {
		return repository.ErrBizNumberTaken
	}
	for _, existing := range m.cards {
		if existing.Email == card.Email {
			return utils.NewConflictError("email", constants.MsgCardExists)
		}
	}

	m.takenBiz[card.BizNumber] = true
	m.cards[card.ID] = m.clone(card)
	return nil
}

func (m *MockCardRepository) GetByID(ctx context.Context, id string) (*models.Card, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	card, ok := m.cards[id]
	if !ok {
		return nil, utils.NewNotFoundError("Card", id)
	}
	return m.clone(card), nil
}

func (m *MockCardRepository) List(ctx context.Context) ([]*models.Card, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cards := []*models.Card{}
	for _, card := range m.cards {
		cards = append(cards, m.clone(card))
	}
	return cards, nil
}

func (m *MockCardRepository) ListByOwner(ctx context.Context, ownerID string) ([]*models.Card, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cards := []*models.Card{}
	for _, card := range m.cards {
		if card.UserID == ownerID {
			cards = append(cards, m.clone(card))
		}
	}
	return cards, nil
}

func (m *MockCardRepository) Update(ctx context.Context, card *models.Card) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.cards[card.ID]; !ok {
		return utils.NewNotFoundError("Card", card.ID)
	}
	m.cards[card.ID] = m.clone(card)
	return nil
}

func (m *MockCardRepository) ToggleLike(ctx context.Context, cardID, userID, updatedAt string) (bool, error) {
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

func (m *MockCardRepository) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	card, ok := m.cards[id]
	if !ok {
		return utils.NewNotFoundError("Card", id)
	}
	delete(m.takenBiz, card.BizNumber)
	delete(m.cards, id)
	return nil
}

// sequenceBizNumbers replays a fixed list of candidates, repeating the last
type sequenceBizNumbers struct {
	values []int
	calls  int
}

func (s *sequenceBizNumbers) Next() (int, error) {
	idx := s.calls
	if idx >= len(s.values) {
		idx = len(s.values) - 1
	}
	s.calls++
	return s.values[idx], nil
}

type mockTokenIssuer struct {
	lastUser *models.User
	err      error
}

func (m *mockTokenIssuer) GenerateToken(user *models.User) (string, string, error) {
	if m.err != nil {
		return "", "", m.err
	}
	m.lastUser = user
	return "token-for-" + user.ID, "jti-" + user.ID, nil
}

var (
	_ repository.UserRepository = (*MockUserRepository)(nil)
	_ repository.CardRepository = (*MockCardRepository)(nil)
	_ auth.TokenIssuer          = (*mockTokenIssuer)(nil)
)

// fastPasswordConfig keeps argon2 cheap in tests
func fastPasswordConfig() *auth.PasswordConfig {
	return &auth.PasswordConfig{
		Memory:      constants.DevPasswordHashMemory,
		Iterations:  constants.DevPasswordHashIterations,
		Parallelism: 1,
		SaltLength:  16,
		KeyLength:   32,
	}
}

func intPtr(v int) *int { return &v }

func testRegistration(email string) *models.UserRegistration {
	return &models.UserRegistration{
		Name:     models.Name{First: "Dana", Last: "Levi"},
		Email:    email,
		Password: "Secret123!",
		Phone:    "0501234567",
		Address: models.Address{
			Country:     "Israel",
			City:        "Haifa",
			Street:      "Herzl",
			HouseNumber: intPtr(4),
			Zip:         "3303000",
		},
	}
}

func testCardInput(email string) *models.CardInput {
	return &models.CardInput{
		Title:    "Levi Plumbing",
		Subtitle: "Pipes and more",
		Phone:    "0521234567",
		Email:    email,
		Image:    models.CardImage{URL: "https://example.com/logo.png", Alt: "logo"},
		Address: models.CardAddress{
			Country:     "Israel",
			City:        "Tel Aviv",
			Street:      "Dizengoff",
			HouseNumber: intPtr(50),
		},
	}
}
