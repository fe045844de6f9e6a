// internal/authz/policy.go

// Package authz is the single place permission decisions are made. Services
// pass the caller identity and the resource owner in explicitly; nothing here
// reads ambient request state.
package authz

import (
	"github.com/google/uuid"

	"github.com/digibay/digibay-backend/internal/apperrors"
	"github.com/digibay/digibay-backend/internal/models"
)

// Caller is the authenticated actor a decision is evaluated against. The zero
// value means "no identity".
type Caller struct {
	ID   uuid.UUID
	Role models.UserRole
}

func (c Caller) IsAdmin() bool {
	return c.Role == models.UserRoleAdmin
}

type Action string

const (
	ActionProductRead    Action = "product:read"
	ActionProductUpdate  Action = "product:update"
	ActionProductApprove Action = "product:approve"
	ActionProductDelete  Action = "product:delete"
	ActionProductListAll Action = "product:list_all"
	ActionOrderListAll   Action = "order:list_all"
	ActionUserManage     Action = "user:manage"
)

type rule int

const (
	public rule = iota
	ownerOnly
	adminOnly
	ownerOrAdmin
)

var rules = map[Action]rule{
	ActionProductRead:    public,
	ActionProductUpdate:  ownerOnly,
	ActionProductApprove: adminOnly,
	ActionProductDelete:  ownerOrAdmin,
	ActionProductListAll: adminOnly,
	ActionOrderListAll:   adminOnly,
	ActionUserManage:     adminOnly,
}

// Authorize returns nil when caller may perform action on a resource owned by
// ownerID, apperrors.ErrForbidden otherwise. Unknown actions are denied.
func Authorize(action Action, caller Caller, ownerID uuid.UUID) error {
	r, ok := rules[action]
	if !ok {
		return apperrors.Forbiddenf("unknown action %s", action)
	}

	switch r {
	case public:
		return nil
	case ownerOnly:
		if caller.ID == ownerID && caller.ID != uuid.Nil {
			return nil
		}
	case adminOnly:
		if caller.IsAdmin() {
			return nil
		}
	case ownerOrAdmin:
		if (caller.ID == ownerID && caller.ID != uuid.Nil) || caller.IsAdmin() {
			return nil
		}
	}

	return apperrors.Forbiddenf("not authorized to %s", action)
}
