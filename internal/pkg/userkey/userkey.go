// Package userkey derives the storage key that scopes a persisted cart to
// one shopper identity. Authenticated users and anonymous guests live in
// disjoint key spaces so carts never mix across identities.
package userkey

import "github.com/google/uuid"

const (
	userPrefix  = "user:"
	guestPrefix = "guest:"
)

// ForUser keys the cart of an authenticated user.
func ForUser(userID uuid.UUID) string {
	return userPrefix + userID.String()
}

// ForGuest keys the cart of an anonymous session.
func ForGuest(guestID uuid.UUID) string {
	return guestPrefix + guestID.String()
}

// IsGuest reports whether the key belongs to an anonymous session.
func IsGuest(key string) bool {
	return len(key) >= len(guestPrefix) && key[:len(guestPrefix)] == guestPrefix
}
