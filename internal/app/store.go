package app

import "context"

// KeyValueStore abstracts the durable string-keyed storage the progression
// state lives in (in-memory, Redis, etc). Get returns an empty string with a
// nil error when the key is absent.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// Storage keys shared with the profile surface.
const (
	keyTriviaPoints   = "triviaPoints"
	keyVisitedPlaces  = "visitedPlaces"
	keyUnlockedTitles = "unlockedTitles"
	keyAvatar         = "avatar"
	keyNickname       = "nickname"
	keyDescription    = "description"
)
