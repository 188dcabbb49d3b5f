package app

import (
	"sync"
	"time"

	"alpenquest-service/internal/domain"
)

// WrongAnswerNotice is surfaced to the client before a reset applies.
const WrongAnswerNotice = "Wrong Answer! You must start again from the beginning."

// standaloneTitle labels a quest launched without attraction context.
const standaloneTitle = "Random Quiz"

// Session drives one quest attempt: a fixed drawn sequence of questions,
// answered strictly in order. A correct answer advances and awards a coin; a
// wrong answer resets the whole attempt in place without redrawing. The
// session is owned by a single connection and is destroyed with it.
//
// Transitions triggered by a submission apply after the reveal delay; the
// locked flag serializes submissions during that window. A zero delay applies
// transitions synchronously, which keeps tests deterministic.
type Session struct {
	mu          sync.Mutex
	questions   []domain.Question
	attraction  *domain.Attraction
	revealDelay time.Duration
	onComplete  func(coinsEarned int, attraction *domain.Attraction)

	index       int
	coins       int
	locked      bool
	completed   bool
	closed      bool
	subscribers map[chan domain.QuestUpdate]struct{}
}

func newSession(questions []domain.Question, attraction *domain.Attraction, revealDelay time.Duration, onComplete func(int, *domain.Attraction)) *Session {
	return &Session{
		questions:   questions,
		attraction:  attraction,
		revealDelay: revealDelay,
		onComplete:  onComplete,
		subscribers: make(map[chan domain.QuestUpdate]struct{}),
	}
}

// Title is the attraction name, or a generic label for standalone quests.
func (s *Session) Title() string {
	if s.attraction != nil {
		return s.attraction.Name
	}
	return standaloneTitle
}

// Progress returns the current question view.
func (s *Session) Progress() domain.QuestProgress {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.progressLocked()
}

// Completed reports whether the final question has been answered correctly.
func (s *Session) Completed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.completed
}

// Submit evaluates an answer against the current question. It reports false
// when the submission is ignored: an answer is still pending reveal, the
// session is completed or closed, or the index is out of range. The returned
// result reflects the transition that will apply once the delay elapses.
func (s *Session) Submit(option string) (domain.AnswerResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.locked || s.completed || s.closed || s.index >= len(s.questions) {
		return domain.AnswerResult{}, false
	}
	s.locked = true

	question := s.questions[s.index]
	result := domain.AnswerResult{QuestionIndex: s.index}

	if option == question.Answer {
		s.coins++
		result.Correct = true
		result.Coins = s.coins
		if s.index == len(s.questions)-1 {
			result.Completed = true
			s.scheduleLocked(s.applyCompleteLocked)
		} else {
			s.scheduleLocked(s.applyAdvanceLocked)
		}
		return result, true
	}

	result.Coins = s.coins
	result.Reset = true
	result.Notice = WrongAnswerNotice
	s.scheduleLocked(s.applyResetLocked)
	return result, true
}

// Subscribe returns a channel receiving quest updates, primed with the
// current progress. The caller must invoke cancel to avoid leaks.
func (s *Session) Subscribe() (<-chan domain.QuestUpdate, func()) {
	ch := make(chan domain.QuestUpdate, 8)

	s.mu.Lock()
	s.subscribers[ch] = struct{}{}
	initial := s.progressLocked()
	s.mu.Unlock()

	ch <- domain.QuestUpdate{Progress: &initial}

	cancel := func() {
		s.mu.Lock()
		if _, ok := s.subscribers[ch]; ok {
			delete(s.subscribers, ch)
			close(ch)
		}
		s.mu.Unlock()
	}
	return ch, cancel
}

// Close destroys the session. Pending reveal timers become no-ops and all
// subscriber channels are closed.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	for ch := range s.subscribers {
		close(ch)
	}
	s.subscribers = make(map[chan domain.QuestUpdate]struct{})
}

func (s *Session) scheduleLocked(apply func()) {
	if s.revealDelay <= 0 {
		apply()
		return
	}
	time.AfterFunc(s.revealDelay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.closed {
			return
		}
		apply()
	})
}

func (s *Session) applyAdvanceLocked() {
	s.index++
	s.locked = false
	progress := s.progressLocked()
	s.broadcastLocked(domain.QuestUpdate{Progress: &progress})
}

func (s *Session) applyResetLocked() {
	s.index = 0
	s.coins = 0
	s.locked = false
	progress := s.progressLocked()
	s.broadcastLocked(domain.QuestUpdate{Progress: &progress})
}

func (s *Session) applyCompleteLocked() {
	s.completed = true
	s.locked = false
	event := s.completionEventLocked()
	s.broadcastLocked(domain.QuestUpdate{Completion: &event})
	if s.onComplete != nil {
		s.onComplete(s.coins, s.attraction)
	}
}

func (s *Session) completionEventLocked() domain.CompletionEvent {
	event := domain.CompletionEvent{
		QuestCompleted: true,
		CoinsEarned:    s.coins,
	}
	if s.attraction != nil {
		event.Title = s.attraction.Name
		event.Address = s.attraction.Address
		event.Lat = s.attraction.Lat
		event.Lng = s.attraction.Lng
		event.Image = s.attraction.Image
		event.Description = s.attraction.Description
		event.SecretSpots = s.attraction.SecretSpots
		event.SecretUnlockedCount = domain.SecretSpotTarget
		event.UnlockedCardName = s.attraction.Name
	}
	return event
}

func (s *Session) progressLocked() domain.QuestProgress {
	progress := domain.QuestProgress{
		Title:          s.Title(),
		QuestionIndex:  s.index,
		TotalQuestions: len(s.questions),
		Coins:          s.coins,
	}
	if s.index < len(s.questions) {
		progress.Prompt = s.questions[s.index].Prompt
		progress.Options = s.questions[s.index].Options
	}
	return progress
}

func (s *Session) broadcastLocked(update domain.QuestUpdate) {
	for ch := range s.subscribers {
		select {
		case ch <- update:
		default:
			// Drop the oldest update so a slow client never blocks the quest.
			select {
			case <-ch:
			default:
			}
			ch <- update
		}
	}
}
