package domain

// Question is a single trivia item. Options hold the three display choices;
// Answer is one of them and is compared by value, never by position, so the
// display order of Options can be shuffled freely.
type Question struct {
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
	Answer  string   `json:"answer"`
}

// QuestionBank is the full catalog a quest draws from.
type QuestionBank struct {
	ID        string     `json:"id"`
	Questions []Question `json:"questions"`
}

// SecretSpot is a hidden point of interest tied to an attraction, gated
// behind quest completion.
type SecretSpot struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	Description string `json:"description"`
}

// Attraction is a point of interest a quest can be launched from.
// Name doubles as the join key into the collectible card catalog.
type Attraction struct {
	Name        string       `json:"name"`
	Address     string       `json:"address"`
	Lat         float64      `json:"lat"`
	Lng         float64      `json:"lng"`
	Image       string       `json:"image"`
	Description string       `json:"description"`
	SecretSpots []SecretSpot `json:"secretSpots"`
}

// Card is a collectible gallery card. Back-side content is only shown once
// the card's title has been unlocked.
type Card struct {
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Image       string `json:"image"`
	Description string `json:"description"`
	Fact        string `json:"fact"`
	DidYouKnow  string `json:"didYouKnow"`
}

// AnswerResult summarizes the immediate outcome of a submission.
// Reset and Completed report the transition that will apply once the reveal
// delay elapses.
type AnswerResult struct {
	Correct       bool   `json:"correct"`
	Coins         int    `json:"coins"`
	QuestionIndex int    `json:"questionIndex"`
	Reset         bool   `json:"reset"`
	Completed     bool   `json:"completed"`
	Notice        string `json:"notice,omitempty"`
}

// QuestProgress is the client-facing view of the question currently being
// answered. Options are in display order.
type QuestProgress struct {
	Title          string   `json:"title"`
	QuestionIndex  int      `json:"questionIndex"`
	TotalQuestions int      `json:"totalQuestions"`
	Coins          int      `json:"coins"`
	Prompt         string   `json:"prompt"`
	Options        []string `json:"options"`
}

// CompletionEvent is emitted exactly once when the final question is answered
// correctly. The attraction fields are empty for a standalone quest.
type CompletionEvent struct {
	Title               string       `json:"title,omitempty"`
	Address             string       `json:"address,omitempty"`
	Lat                 float64      `json:"lat,omitempty"`
	Lng                 float64      `json:"lng,omitempty"`
	Image               string       `json:"image,omitempty"`
	Description         string       `json:"description,omitempty"`
	SecretSpots         []SecretSpot `json:"secretSpots,omitempty"`
	QuestCompleted      bool         `json:"questCompleted"`
	SecretUnlockedCount int          `json:"secretUnlockedCount"`
	UnlockedCardName    string       `json:"unlockedCardName,omitempty"`
	CoinsEarned         int          `json:"coinsEarned"`
}

// QuestUpdate is what quest subscribers receive: either a progress snapshot
// after an advance/reset applies, or the completion event.
type QuestUpdate struct {
	Progress   *QuestProgress   `json:"progress,omitempty"`
	Completion *CompletionEvent `json:"completion,omitempty"`
}

// ProfileStats are the cumulative counters shown on the profile screen.
type ProfileStats struct {
	TriviaPoints  int `json:"triviaPoints"`
	VisitedPlaces int `json:"visitedPlaces"`
}

// Profile combines identity fields with the accumulated stats.
type Profile struct {
	Nickname    string `json:"nickname"`
	Description string `json:"description"`
	Avatar      string `json:"avatar"`
	ProfileStats
}
