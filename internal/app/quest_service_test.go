package app_test

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"
	"time"

	"alpenquest-service/internal/app"
	"alpenquest-service/internal/domain"
	"alpenquest-service/internal/infra/memory"
)

func TestFullQuestAwardsCoinsAndPersists(t *testing.T) {
	ctx := context.Background()
	store := newCountingStore()
	registry, stats, service := newTestService(t, store)

	session, err := service.StartQuest(ctx, "Lake Lucerne")
	if err != nil {
		t.Fatalf("start quest: %v", err)
	}

	coins := answerAllCorrectly(t, session)
	if coins != 10 {
		t.Fatalf("expected 10 coins, got %d", coins)
	}
	if !session.Completed() {
		t.Fatalf("expected session completed")
	}

	waitForValue(t, store, "triviaPoints", "10")
	waitForValue(t, store, "visitedPlaces", "1")
	if got := stats.Stats(ctx); got.TriviaPoints != 10 || got.VisitedPlaces != 1 {
		t.Fatalf("expected stats 10/1, got %+v", got)
	}

	if !registry.IsUnlocked("Lake Lucerne") {
		t.Fatalf("expected Lake Lucerne unlocked")
	}
	raw, _ := store.Get(ctx, "unlockedTitles")
	var titles []string
	if err := json.Unmarshal([]byte(raw), &titles); err != nil {
		t.Fatalf("persisted titles not valid JSON: %v (%q)", err, raw)
	}
	if len(titles) != 1 || titles[0] != "Lake Lucerne" {
		t.Fatalf("expected persisted [Lake Lucerne], got %v", titles)
	}
}

func TestWrongAnswerResetsWithoutPersistence(t *testing.T) {
	ctx := context.Background()
	store := newCountingStore()
	_, _, service := newTestService(t, store)

	session, err := service.StartQuest(ctx, "")
	if err != nil {
		t.Fatalf("start quest: %v", err)
	}
	answers := answerKey()

	first := session.Progress()
	if _, ok := session.Submit(answers[first.Prompt]); !ok {
		t.Fatalf("first answer rejected")
	}
	second := session.Progress()
	result, ok := session.Submit(wrongOption(second.Options, answers[second.Prompt]))
	if !ok {
		t.Fatalf("second answer rejected")
	}
	if result.Correct || !result.Reset {
		t.Fatalf("expected reset result, got %+v", result)
	}

	progress := session.Progress()
	if progress.QuestionIndex != 0 || progress.Coins != 0 {
		t.Fatalf("expected quest back at start with 0 coins, got %+v", progress)
	}
	if progress.Prompt != first.Prompt {
		t.Fatalf("expected same first question after reset, got %q want %q", progress.Prompt, first.Prompt)
	}
	if n := store.writeCount(); n != 0 {
		t.Fatalf("expected no persistence writes on reset, got %d", n)
	}
}

func TestStandaloneQuestSkipsUnlock(t *testing.T) {
	ctx := context.Background()
	store := newCountingStore()
	registry, _, service := newTestService(t, store)

	session, err := service.StartQuest(ctx, "")
	if err != nil {
		t.Fatalf("start quest: %v", err)
	}
	answerAllCorrectly(t, session)

	waitForValue(t, store, "visitedPlaces", "1")
	if titles := registry.Titles(); len(titles) != 0 {
		t.Fatalf("expected no unlocks for standalone quest, got %v", titles)
	}
}

func TestStartQuestUnknownAttraction(t *testing.T) {
	store := newCountingStore()
	_, _, service := newTestService(t, store)

	if _, err := service.StartQuest(context.Background(), "Atlantis"); err != domain.ErrAttractionNotFound {
		t.Fatalf("expected ErrAttractionNotFound, got %v", err)
	}
}

func newTestService(t *testing.T, store app.KeyValueStore) (*app.UnlockRegistry, *app.StatsAccumulator, *app.QuestService) {
	t.Helper()
	banks := memory.NewBankRepository(memory.NewStaticBankLoader(map[string]domain.QuestionBank{
		domain.DefaultBankID: domain.SwissTriviaBank(),
	}), 5*time.Minute)
	registry := app.NewUnlockRegistry(store)
	registry.Load(context.Background())
	stats := app.NewStatsAccumulator(store)
	service := app.NewQuestService(banks, registry, stats, app.QuestConfig{RevealDelaySet: true})
	return registry, stats, service
}

// answerKey maps prompts to correct answers for the built-in bank.
func answerKey() map[string]string {
	key := make(map[string]string)
	for _, q := range domain.SwissTriviaBank().Questions {
		key[q.Prompt] = q.Answer
	}
	return key
}

func answerAllCorrectly(t *testing.T, session *app.Session) int {
	t.Helper()
	answers := answerKey()
	coins := 0
	for i := 0; i < 100; i++ {
		progress := session.Progress()
		result, ok := session.Submit(answers[progress.Prompt])
		if !ok {
			t.Fatalf("submission rejected at index %d", progress.QuestionIndex)
		}
		if !result.Correct {
			t.Fatalf("expected correct answer for %q", progress.Prompt)
		}
		coins = result.Coins
		if result.Completed {
			return coins
		}
	}
	t.Fatalf("quest never completed")
	return coins
}

func wrongOption(options []string, answer string) string {
	for _, opt := range options {
		if opt != answer {
			return opt
		}
	}
	return "definitely wrong"
}

// countingStore is an in-memory KeyValueStore that counts writes per key.
type countingStore struct {
	mu     sync.Mutex
	data   map[string]string
	writes map[string]int
}

func newCountingStore() *countingStore {
	return &countingStore{
		data:   make(map[string]string),
		writes: make(map[string]int),
	}
}

func (s *countingStore) Get(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data[key], nil
}

func (s *countingStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	s.writes[key]++
	return nil
}

func (s *countingStore) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

func (s *countingStore) writeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, n := range s.writes {
		total += n
	}
	return total
}

func (s *countingStore) writesTo(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes[key]
}

func waitForValue(t *testing.T, store *countingStore, key, want string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if got, _ := store.Get(context.Background(), key); got == want {
			return
		}
		time.Sleep(time.Millisecond)
	}
	got, _ := store.Get(context.Background(), key)
	if !strings.EqualFold(got, want) {
		t.Fatalf("timed out waiting for %s=%q, last value %q", key, want, got)
	}
}
