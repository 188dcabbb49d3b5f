package app

import (
	"context"
	"math/rand"

	"alpenquest-service/internal/domain"
)

// BankRepository loads question banks (from cache/backing store).
type BankRepository interface {
	GetBank(ctx context.Context, bankID string) (domain.QuestionBank, error)
}

// drawQuestions samples n distinct questions uniformly at random from the
// bank, shuffle-then-slice, clamping n to the bank size. Each drawn
// question's options are independently shuffled for display; the stored
// answer is untouched since evaluation compares by value.
func drawQuestions(bank domain.QuestionBank, n int, rnd *rand.Rand) []domain.Question {
	if n > len(bank.Questions) {
		n = len(bank.Questions)
	}
	shuffled := make([]domain.Question, len(bank.Questions))
	copy(shuffled, bank.Questions)
	rnd.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	drawn := shuffled[:n]
	for i := range drawn {
		drawn[i].Options = shuffleOptions(drawn[i].Options, rnd)
	}
	return drawn
}

func shuffleOptions(options []string, rnd *rand.Rand) []string {
	out := make([]string, len(options))
	copy(out, options)
	rnd.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
