package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Principal is the identity an asset is created by or owned by.
type Principal string

const userPrincipalPrefix = "user:"

// UserPrincipal returns the principal for a user account. Account IDs are
// never reused, so a deleted account's assets cannot be inherited.
func UserPrincipal(userID int64) Principal {
	return Principal(userPrincipalPrefix + strconv.FormatInt(userID, 10))
}

// UserID extracts the account ID from a user principal.
func (p Principal) UserID() (int64, error) {
	s, ok := strings.CutPrefix(string(p), userPrincipalPrefix)
	if !ok {
		return 0, fmt.Errorf("not a user principal: %q", p)
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing user principal %q: %w", p, err)
	}
	return id, nil
}

// Identity is the authenticated caller of a single operation.
type Identity struct {
	Principal Principal
	Username  string
	Role      string
}

// IsAdmin reports whether the caller holds the admin role.
func (id Identity) IsAdmin() bool {
	return RoleAtLeast(id.Role, RoleAdmin)
}
