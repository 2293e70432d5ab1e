package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yasinhessnawi1/BizCards_Backend/internal/auth"
	"github.com/yasinhessnawi1/BizCards_Backend/internal/constants"
	"github.com/yasinhessnawi1/BizCards_Backend/internal/models"
	"github.com/yasinhessnawi1/BizCards_Backend/internal/utils"
)

// CardHandler handles card routes
type CardHandler struct {
	cardService CardServiceInterface
}

// NewCardHandler creates a new CardHandler
func NewCardHandler(cardService CardServiceInterface) *CardHandler {
	if cardService == nil {
		panic("cardService cannot be nil")
	}
	return &CardHandler{
		cardService: cardService,
	}
}

// ListCards returns every card. Public.
func (h *CardHandler) ListCards(w http.ResponseWriter, r *http.Request) {
	cards, err := h.cardService.ListCards(r.Context())
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, constants.StatusOK, cards)
}

// MyCards returns the cards owned by the caller
func (h *CardHandler) MyCards(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.GetPrincipal(r)
	if !ok {
		utils.Unauthorized(w, constants.MsgAuthRequired)
		return
	}

	cards, err := h.cardService.ListMyCards(r.Context(), principal)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, constants.StatusOK, cards)
}

// GetCard returns one card. Public.
func (h *CardHandler) GetCard(w http.ResponseWriter, r *http.Request) {
	card, err := h.cardService.GetCard(r.Context(), chi.URLParam(r, constants.ParamID))
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, constants.StatusOK, card)
}

// CreateCard stores a card owned by the caller
func (h *CardHandler) CreateCard(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.GetPrincipal(r)
	if !ok {
		utils.Unauthorized(w, constants.MsgAuthRequired)
		return
	}

	var input models.CardInput
	if err := utils.DecodeAndValidate(r, &input); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	card, err := h.cardService.CreateCard(r.Context(), principal, &input)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, constants.StatusCreated, card)
}

// UpdateCard replaces the editable fields of the card in the path
func (h *CardHandler) UpdateCard(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.GetPrincipal(r)
	if !ok {
		utils.Unauthorized(w, constants.MsgAuthRequired)
		return
	}

	var input models.CardInput
	if err := utils.DecodeAndValidate(r, &input); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	card, err := h.cardService.UpdateCard(r.Context(), principal, chi.URLParam(r, constants.ParamID), &input)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, constants.StatusOK, card)
}

// ToggleLike adds or removes the caller's like on the card in the path
func (h *CardHandler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.GetPrincipal(r)
	if !ok {
		utils.Unauthorized(w, constants.MsgAuthRequired)
		return
	}

	card, err := h.cardService.ToggleLike(r.Context(), principal, chi.URLParam(r, constants.ParamID))
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, constants.StatusOK, card)
}

// DeleteCard removes the card in the path
func (h *CardHandler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.GetPrincipal(r)
	if !ok {
		utils.Unauthorized(w, constants.MsgAuthRequired)
		return
	}

	if err := h.cardService.DeleteCard(r.Context(), principal, chi.URLParam(r, constants.ParamID)); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.Message(w, constants.StatusOK, constants.MsgCardDeleted)
}
