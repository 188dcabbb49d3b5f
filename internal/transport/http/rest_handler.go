package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"

	"alpenquest-service/internal/app"
	"alpenquest-service/internal/domain"
)

// RESTHandler serves the read-mostly surfaces around the quest: attraction
// catalog with the secret-spot gate, the card gallery, and the profile.
type RESTHandler struct {
	registry *app.UnlockRegistry
	stats    *app.StatsAccumulator
}

func NewRESTHandler(registry *app.UnlockRegistry, stats *app.StatsAccumulator) *RESTHandler {
	return &RESTHandler{registry: registry, stats: stats}
}

// Register wires the REST routes onto the mux.
func (h *RESTHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /attractions", h.listAttractions)
	mux.HandleFunc("GET /attractions/{name}", h.getAttraction)
	mux.HandleFunc("GET /attractions/{name}/spots/{spot}", h.getSecretSpot)
	mux.HandleFunc("GET /cards", h.listCards)
	mux.HandleFunc("GET /profile", h.getProfile)
	mux.HandleFunc("PUT /profile", h.putProfile)
	mux.HandleFunc("POST /profile/reset", h.resetProfile)
}

type attractionSummary struct {
	Name        string  `json:"name"`
	Address     string  `json:"address"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
	SecretSpots int     `json:"secretSpots"`
}

func (h *RESTHandler) listAttractions(w http.ResponseWriter, r *http.Request) {
	attractions := domain.Attractions()
	out := make([]attractionSummary, 0, len(attractions))
	for _, a := range attractions {
		out = append(out, attractionSummary{
			Name:        a.Name,
			Address:     a.Address,
			Lat:         a.Lat,
			Lng:         a.Lng,
			Image:       a.Image,
			Description: a.Description,
			SecretSpots: len(a.SecretSpots),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

type secretSpotView struct {
	Name        string `json:"name"`
	Address     string `json:"address,omitempty"`
	Description string `json:"description,omitempty"`
	Locked      bool   `json:"locked"`
}

type attractionDetail struct {
	domain.Attraction
	SecretSpots      []secretSpotView `json:"secretSpots"`
	AllSpotsUnlocked bool             `json:"allSpotsUnlocked"`
}

// getAttraction renders an attraction the way the attraction view mounts it:
// the gate is re-derived from the completion signal passed by the caller
// (`secretUnlockedCount` query parameter) and is never persisted, so without
// the signal the spots render locked again.
func (h *RESTHandler) getAttraction(w http.ResponseWriter, r *http.Request) {
	attraction, ok := domain.FindAttraction(r.PathValue("name"))
	if !ok {
		writeJSON(w, http.StatusNotFound, errorPayload{Message: domain.ErrAttractionNotFound.Error()})
		return
	}

	unlocked := domain.AllSpotsUnlocked(queryInt(r, "secretUnlockedCount"))
	detail := attractionDetail{
		Attraction:       attraction,
		AllSpotsUnlocked: unlocked,
		SecretSpots:      make([]secretSpotView, 0, len(attraction.SecretSpots)),
	}
	for _, spot := range attraction.SecretSpots {
		view := secretSpotView{Name: spot.Name, Locked: !unlocked}
		if unlocked {
			view.Address = spot.Address
			view.Description = spot.Description
		}
		detail.SecretSpots = append(detail.SecretSpots, view)
	}
	writeJSON(w, http.StatusOK, detail)
}

func (h *RESTHandler) getSecretSpot(w http.ResponseWriter, r *http.Request) {
	attraction, ok := domain.FindAttraction(r.PathValue("name"))
	if !ok {
		writeJSON(w, http.StatusNotFound, errorPayload{Message: domain.ErrAttractionNotFound.Error()})
		return
	}
	if !domain.AllSpotsUnlocked(queryInt(r, "secretUnlockedCount")) {
		writeJSON(w, http.StatusForbidden, errorPayload{Message: "Locked! Complete the quiz first to unlock all secret spots!"})
		return
	}
	for _, spot := range attraction.SecretSpots {
		if spot.Name == r.PathValue("spot") {
			writeJSON(w, http.StatusOK, spot)
			return
		}
	}
	writeJSON(w, http.StatusNotFound, errorPayload{Message: domain.ErrSpotNotFound.Error()})
}

type cardView struct {
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Image       string `json:"image"`
	Unlocked    bool   `json:"unlocked"`
	Description string `json:"description,omitempty"`
	Fact        string `json:"fact,omitempty"`
	DidYouKnow  string `json:"didYouKnow,omitempty"`
}

func (h *RESTHandler) listCards(w http.ResponseWriter, r *http.Request) {
	cards := domain.CollectibleCards()
	out := make([]cardView, 0, len(cards))
	for _, card := range cards {
		view := cardView{
			Title:    card.Title,
			Subtitle: card.Subtitle,
			Image:    card.Image,
			Unlocked: h.registry.IsUnlocked(card.Title),
		}
		if view.Unlocked {
			view.Description = card.Description
			view.Fact = card.Fact
			view.DidYouKnow = card.DidYouKnow
		}
		out = append(out, view)
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *RESTHandler) getProfile(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.stats.Profile(r.Context()))
}

type profileUpdate struct {
	Nickname    string `json:"nickname"`
	Description string `json:"description"`
	Avatar      string `json:"avatar"`
}

func (h *RESTHandler) putProfile(w http.ResponseWriter, r *http.Request) {
	var update profileUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeJSON(w, http.StatusBadRequest, errorPayload{Message: "invalid profile payload"})
		return
	}
	if err := h.stats.SaveIdentity(r.Context(), update.Nickname, update.Description, update.Avatar); err != nil {
		logrus.WithError(err).Warn("profile save failed")
		writeJSON(w, http.StatusInternalServerError, errorPayload{Message: "failed to save profile"})
		return
	}
	writeJSON(w, http.StatusOK, h.stats.Profile(r.Context()))
}

func (h *RESTHandler) resetProfile(w http.ResponseWriter, r *http.Request) {
	if err := h.stats.Reset(r.Context()); err != nil {
		logrus.WithError(err).Warn("profile reset failed")
		writeJSON(w, http.StatusInternalServerError, errorPayload{Message: "failed to reset profile"})
		return
	}
	writeJSON(w, http.StatusOK, h.stats.Profile(r.Context()))
}

func queryInt(r *http.Request, name string) int {
	n, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return 0
	}
	return n
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.WithError(err).Warn("write response failed")
	}
}
