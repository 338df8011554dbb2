package station

import "strings"

// Authorizer decides whether caller may run privileged operations.
type Authorizer interface {
	IsOwner(caller string) bool
}

// OwnerAuthorizer grants privileges to a single hex address.
type OwnerAuthorizer struct {
	Owner string
}

func (a OwnerAuthorizer) IsOwner(caller string) bool {
	owner := NormalizeAddress(a.Owner)
	return owner != "" && owner == NormalizeAddress(caller)
}

// NormalizeAddress lowercases addr and ensures the 0x prefix.
func NormalizeAddress(addr string) string {
	s := strings.TrimSpace(strings.ToLower(addr))
	if s == "" {
		return ""
	}
	if !strings.HasPrefix(s, "0x") {
		s = "0x" + s
	}
	return s
}
