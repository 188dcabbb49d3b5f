package app

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"alpenquest-service/internal/domain"
)

// DefaultQuestLength is how many questions a quest draws from the bank.
const DefaultQuestLength = 10

// DefaultRevealDelay matches the answer-reveal pause shown to the player.
// It is purely cosmetic; the engine is correct with a zero delay.
const DefaultRevealDelay = 800 * time.Millisecond

// QuestConfig tunes quest creation. Zero values pick the defaults, except
// RevealDelaySet which allows an explicit zero delay.
type QuestConfig struct {
	BankID         string
	Length         int
	RevealDelay    time.Duration
	RevealDelaySet bool
}

// QuestService creates quest sessions and wires their completion into the
// unlock registry and the stats accumulator.
type QuestService struct {
	banks    BankRepository
	registry *UnlockRegistry
	stats    *StatsAccumulator

	bankID      string
	questLength int
	revealDelay time.Duration

	mu  sync.Mutex
	rnd *rand.Rand
}

func NewQuestService(banks BankRepository, registry *UnlockRegistry, stats *StatsAccumulator, cfg QuestConfig) *QuestService {
	if cfg.BankID == "" {
		cfg.BankID = domain.DefaultBankID
	}
	if cfg.Length <= 0 {
		cfg.Length = DefaultQuestLength
	}
	if !cfg.RevealDelaySet && cfg.RevealDelay == 0 {
		cfg.RevealDelay = DefaultRevealDelay
	}
	return &QuestService{
		banks:       banks,
		registry:    registry,
		stats:       stats,
		bankID:      cfg.BankID,
		questLength: cfg.Length,
		revealDelay: cfg.RevealDelay,
		rnd:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// StartQuest draws a fresh session. An empty attraction name starts a
// standalone quest, which skips the unlock path on completion and only
// updates the profile stats.
func (s *QuestService) StartQuest(ctx context.Context, attractionName string) (*Session, error) {
	var attraction *domain.Attraction
	if attractionName != "" {
		a, ok := domain.FindAttraction(attractionName)
		if !ok {
			return nil, domain.ErrAttractionNotFound
		}
		attraction = &a
	}

	bank, err := s.banks.GetBank(ctx, s.bankID)
	if err != nil {
		return nil, err
	}
	if len(bank.Questions) == 0 {
		return nil, domain.ErrBankEmpty
	}

	s.mu.Lock()
	questions := drawQuestions(bank, s.questLength, s.rnd)
	s.mu.Unlock()

	return newSession(questions, attraction, s.revealDelay, s.handleCompletion), nil
}

// handleCompletion runs once per completed session. The persistence results
// are dropped here; the registry and accumulator log their own failures.
func (s *QuestService) handleCompletion(coinsEarned int, attraction *domain.Attraction) {
	if attraction != nil {
		_ = s.registry.Unlock(attraction.Name)
	}
	_ = s.stats.RecordCompletion(coinsEarned)
}
