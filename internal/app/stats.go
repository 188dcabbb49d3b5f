package app

import (
	"context"
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"

	"alpenquest-service/internal/domain"
)

// StatsAccumulator maintains the cumulative profile counters and the profile
// identity fields stored alongside them. Reads treat missing or unparseable
// values as zero; writes are best effort and not atomic across keys.
type StatsAccumulator struct {
	store KeyValueStore
}

func NewStatsAccumulator(store KeyValueStore) *StatsAccumulator {
	return &StatsAccumulator{store: store}
}

// RecordCompletion adds the quest's coins to triviaPoints and counts one
// more visited place. The two keys are written separately; a crash in
// between leaves them inconsistent, which is accepted. The returned channel
// reports the outcome and yields nil on success; callers may drop it.
func (a *StatsAccumulator) RecordCompletion(coinsEarned int) <-chan error {
	done := make(chan error, 1)
	go func() {
		defer close(done)
		ctx := context.Background()

		points := a.readCounter(ctx, keyTriviaPoints)
		visited := a.readCounter(ctx, keyVisitedPlaces)

		if err := a.store.Set(ctx, keyTriviaPoints, strconv.Itoa(points+coinsEarned)); err != nil {
			logrus.WithError(err).Warn("stats: persist trivia points failed")
			done <- err
			return
		}
		if err := a.store.Set(ctx, keyVisitedPlaces, strconv.Itoa(visited+1)); err != nil {
			logrus.WithError(err).Warn("stats: persist visited places failed")
			done <- err
			return
		}
	}()
	return done
}

// Stats returns the current counters, defaulting to zero on any read issue.
func (a *StatsAccumulator) Stats(ctx context.Context) domain.ProfileStats {
	return domain.ProfileStats{
		TriviaPoints:  a.readCounter(ctx, keyTriviaPoints),
		VisitedPlaces: a.readCounter(ctx, keyVisitedPlaces),
	}
}

// Profile returns identity fields plus the counters.
func (a *StatsAccumulator) Profile(ctx context.Context) domain.Profile {
	return domain.Profile{
		Nickname:     a.readString(ctx, keyNickname),
		Description:  a.readString(ctx, keyDescription),
		Avatar:       a.readString(ctx, keyAvatar),
		ProfileStats: a.Stats(ctx),
	}
}

// SaveIdentity persists the editable profile fields.
func (a *StatsAccumulator) SaveIdentity(ctx context.Context, nickname, description, avatar string) error {
	if err := a.store.Set(ctx, keyNickname, nickname); err != nil {
		return fmt.Errorf("save nickname: %w", err)
	}
	if err := a.store.Set(ctx, keyDescription, description); err != nil {
		return fmt.Errorf("save description: %w", err)
	}
	if err := a.store.Set(ctx, keyAvatar, avatar); err != nil {
		return fmt.Errorf("save avatar: %w", err)
	}
	return nil
}

// Reset clears both counters and the identity fields. Confirmation happens
// at the UI boundary, not here.
func (a *StatsAccumulator) Reset(ctx context.Context) error {
	for _, key := range []string{keyAvatar, keyNickname, keyDescription, keyTriviaPoints, keyVisitedPlaces} {
		if err := a.store.Remove(ctx, key); err != nil {
			return fmt.Errorf("reset %s: %w", key, err)
		}
	}
	return nil
}

func (a *StatsAccumulator) readCounter(ctx context.Context, key string) int {
	raw, err := a.store.Get(ctx, key)
	if err != nil {
		logrus.WithError(err).WithField("key", key).Warn("stats: read failed, using zero")
		return 0
	}
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func (a *StatsAccumulator) readString(ctx context.Context, key string) string {
	raw, err := a.store.Get(ctx, key)
	if err != nil {
		logrus.WithError(err).WithField("key", key).Warn("stats: read failed, using empty")
		return ""
	}
	return raw
}
