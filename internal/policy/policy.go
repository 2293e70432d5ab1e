// Package policy holds the role and ownership rules of the API. Services
// call Evaluate once per protected operation before writing to the store.
package policy

import (
	"github.com/yasinhessnawi1/BizCards_Backend/internal/constants"
	"github.com/yasinhessnawi1/BizCards_Backend/internal/models"
	"github.com/yasinhessnawi1/BizCards_Backend/internal/utils"
)

// Action identifies a protected operation.
type Action string

const (
	ActionCreateCard     Action = "card:create"
	ActionUpdateCard     Action = "card:update"
	ActionLikeCard       Action = "card:like"
	ActionDeleteCard     Action = "card:delete"
	ActionViewOwnCards   Action = "card:list-own"
	ActionListUsers      Action = "user:list"
	ActionUpdateUser     Action = "user:update"
	ActionToggleBusiness Action = "user:toggle-business"
	ActionDeleteUser     Action = "user:delete"
)

// denyMessages are returned with the 403 of each action.
var denyMessages = map[Action]string{
	ActionCreateCard:     constants.MsgCreateCardDenied,
	ActionUpdateCard:     constants.MsgUpdateCardDenied,
	ActionDeleteCard:     constants.MsgDeleteCardDenied,
	ActionListUsers:      constants.MsgAdminOnly,
	ActionDeleteUser:     constants.MsgAdminOnly,
	ActionUpdateUser:     constants.MsgUpdateUserDenied,
	ActionToggleBusiness: constants.MsgUpdateUserDenied,
}

// Evaluate decides whether principal may perform action on a resource owned
// by ownerID. For user actions ownerID is the target user id. It returns nil
// to allow, a 401 AppError when no principal is present and a 403 AppError
// on denial.
func Evaluate(principal *models.Principal, ownerID string, action Action) error {
	if principal == nil || principal.ID == "" {
		return utils.NewUnauthorizedError(constants.MsgAuthRequired)
	}

	if allowed(principal, ownerID, action) {
		return nil
	}

	return utils.NewForbiddenError(denyMessages[action])
}

func allowed(p *models.Principal, ownerID string, action Action) bool {
	isOwner := ownerID != "" && p.ID == ownerID

	switch action {
	case ActionCreateCard:
		return p.IsBusiness || p.IsAdmin
	case ActionUpdateCard, ActionDeleteCard, ActionUpdateUser, ActionToggleBusiness:
		return isOwner || p.IsAdmin
	case ActionLikeCard, ActionViewOwnCards:
		return true
	case ActionListUsers, ActionDeleteUser:
		return p.IsAdmin
	default:
		return false
	}
}
