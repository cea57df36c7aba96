// Package authz holds the single role policy consulted by every protected
// route. Handlers never branch on role names themselves.
package authz

import "strings"

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleDirector Role = "diretor"
	RoleUser     Role = "user"
)

// ParseRole normalises a role claim. Unknown values yield ok=false.
func ParseRole(raw string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(raw))) {
	case RoleAdmin:
		return RoleAdmin, true
	case RoleDirector:
		return RoleDirector, true
	case RoleUser:
		return RoleUser, true
	}
	return "", false
}

// Principal is the authenticated caller.
type Principal struct {
	UserID string
	Role   Role
	Email  string
	Name   string
}

type Action string

const (
	ActionQuoteCalculate           Action = "quote:calculate"
	ActionPriceTableRead           Action = "pricetable:read"
	ActionPriceTableEdit           Action = "pricetable:edit"
	ActionProposalRead             Action = "proposal:read"
	ActionProposalReadAll          Action = "proposal:read-all"
	ActionProposalWrite            Action = "proposal:write"
	ActionProposalDelete           Action = "proposal:delete"
	ActionProposalNegotiate        Action = "proposal:negotiate"
	ActionProposalDirectorDiscount Action = "proposal:director-discount"
	ActionPaymentCreate            Action = "payment:create"
)

var everyone = []Role{RoleAdmin, RoleDirector, RoleUser}

var policy = map[Action][]Role{
	ActionQuoteCalculate:           everyone,
	ActionPriceTableRead:           everyone,
	ActionPriceTableEdit:           {RoleAdmin},
	ActionProposalRead:             everyone,
	ActionProposalReadAll:          {RoleAdmin, RoleDirector},
	ActionProposalWrite:            everyone,
	ActionProposalDelete:           {RoleAdmin},
	ActionProposalNegotiate:        everyone,
	ActionProposalDirectorDiscount: {RoleDirector},
	ActionPaymentCreate:            {RoleAdmin, RoleDirector},
}

// Can reports whether p may perform action. Unknown actions are denied.
func Can(p Principal, action Action) bool {
	for _, r := range policy[action] {
		if p.Role == r {
			return true
		}
	}
	return false
}

// OwnsOrOversees reports whether p may see a resource created by ownerID.
func OwnsOrOversees(p Principal, ownerID string) bool {
	if Can(p, ActionProposalReadAll) {
		return true
	}
	return p.UserID != "" && p.UserID == ownerID
}
