package app_test

import (
	"context"
	"testing"

	"alpenquest-service/internal/app"
)

func TestRecordCompletionAccumulates(t *testing.T) {
	ctx := context.Background()
	store := newCountingStore()
	_ = store.Set(ctx, "triviaPoints", "5")
	_ = store.Set(ctx, "visitedPlaces", "2")

	stats := app.NewStatsAccumulator(store)
	if err := <-stats.RecordCompletion(10); err != nil {
		t.Fatalf("record completion: %v", err)
	}

	got := stats.Stats(ctx)
	if got.TriviaPoints != 15 || got.VisitedPlaces != 3 {
		t.Fatalf("expected 15/3, got %+v", got)
	}
}

func TestRecordCompletionDefaultsMissingToZero(t *testing.T) {
	ctx := context.Background()
	store := newCountingStore()

	stats := app.NewStatsAccumulator(store)
	if err := <-stats.RecordCompletion(7); err != nil {
		t.Fatalf("record completion: %v", err)
	}

	got := stats.Stats(ctx)
	if got.TriviaPoints != 7 || got.VisitedPlaces != 1 {
		t.Fatalf("expected 7/1, got %+v", got)
	}
}

func TestRecordCompletionTreatsUnparseableAsZero(t *testing.T) {
	ctx := context.Background()
	store := newCountingStore()
	_ = store.Set(ctx, "triviaPoints", "not a number")

	stats := app.NewStatsAccumulator(store)
	if err := <-stats.RecordCompletion(4); err != nil {
		t.Fatalf("record completion: %v", err)
	}

	if got := stats.Stats(ctx); got.TriviaPoints != 4 {
		t.Fatalf("expected 4 points after unparseable base, got %d", got.TriviaPoints)
	}
}

func TestResetClearsCountersAndIdentity(t *testing.T) {
	ctx := context.Background()
	store := newCountingStore()

	stats := app.NewStatsAccumulator(store)
	if err := stats.SaveIdentity(ctx, "Heidi", "Explorer of the Alps", "assets/avatar1.png"); err != nil {
		t.Fatalf("save identity: %v", err)
	}
	if err := <-stats.RecordCompletion(10); err != nil {
		t.Fatalf("record completion: %v", err)
	}

	if err := stats.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	profile := stats.Profile(ctx)
	if profile.Nickname != "" || profile.Description != "" || profile.Avatar != "" {
		t.Fatalf("expected identity cleared, got %+v", profile)
	}
	if profile.TriviaPoints != 0 || profile.VisitedPlaces != 0 {
		t.Fatalf("expected counters cleared, got %+v", profile)
	}
}
