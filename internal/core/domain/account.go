package domain

import "strings"

// Account identifies a party on the value ledger: an organizer, a
// contributor or any caller of a lifecycle operation. The core treats it as
// an opaque identity and never derives it from ambient state; every
// operation receives the caller explicitly.
type Account string

// Valid reports whether the account carries a non-blank identity.
func (a Account) Valid() bool {
	return strings.TrimSpace(string(a)) != ""
}

func (a Account) String() string {
	return string(a)
}
