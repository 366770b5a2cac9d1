package auth

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
)

// PrincipalHeader is the request header the hosting platform populates with
// the caller's identity, base64 encoded JSON.
const PrincipalHeader = "x-ms-client-principal"

// AdminRole grants write access regardless of allowlist membership.
const AdminRole = "admin"

// Principal is the platform-asserted identity of the current caller.
type Principal struct {
	Email string
	Roles []string
}

type principalClaim struct {
	Typ  string `json:"typ"`
	Type string `json:"type"`
	Val  string `json:"val"`
}

type principalPayload struct {
	Claims      []principalClaim `json:"claims"`
	UserRoles   []string         `json:"userRoles"`
	UserDetails string           `json:"userDetails"`
}

// Email claim types in resolution order.
var emailClaimTypes = []string{"emails", "email", "preferred_username"}

// DecodePrincipal parses the base64 JSON principal injected by the platform.
// The email is resolved by claim priority (emails, email, preferred_username)
// falling back to the top-level userDetails field, and lowercased.
func DecodePrincipal(encoded string) (*Principal, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("decode principal header: %w", err)
	}

	var payload principalPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("parse principal payload: %w", err)
	}

	email := ""
	for _, claimType := range emailClaimTypes {
		if val := findClaim(payload.Claims, claimType); val != "" {
			email = val
			break
		}
	}
	if email == "" {
		email = payload.UserDetails
	}

	return &Principal{
		Email: strings.ToLower(strings.TrimSpace(email)),
		Roles: payload.UserRoles,
	}, nil
}

func findClaim(claims []principalClaim, claimType string) string {
	for _, claim := range claims {
		if claim.Typ == claimType || claim.Type == claimType {
			return claim.Val
		}
	}
	return ""
}

// HasRole reports whether the principal carries the given role.
func (p *Principal) HasRole(role string) bool {
	if p == nil {
		return false
	}
	for _, r := range p.Roles {
		if strings.EqualFold(r, role) {
			return true
		}
	}
	return false
}

// Authorized is the single write-access policy: the principal's email is on
// the allowlist, or the principal carries the admin role.
func Authorized(p *Principal, allowlist []string) bool {
	if p == nil {
		return false
	}
	if p.HasRole(AdminRole) {
		return true
	}
	if p.Email == "" {
		return false
	}
	for _, allowed := range allowlist {
		if p.Email == strings.ToLower(strings.TrimSpace(allowed)) {
			return true
		}
	}
	return false
}
