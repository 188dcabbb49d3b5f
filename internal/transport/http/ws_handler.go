package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"alpenquest-service/internal/app"
	"alpenquest-service/internal/domain"
)

// WSHandler runs quest sessions over websockets. One connection owns one
// session; closing the connection destroys it, matching the screen-dismissal
// semantics of the client.
type WSHandler struct {
	quests   *app.QuestService
	upgrader websocket.Upgrader
}

func NewWSHandler(quests *app.QuestService) *WSHandler {
	return &WSHandler{
		quests: quests,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type answerPayload struct {
	Option string `json:"option"`
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

type errorPayload struct {
	Message string `json:"message"`
}

// ServeWS upgrades the request and drives a quest. The optional `attraction`
// query parameter ties the quest to that attraction; without it the quest is
// standalone and only updates the profile stats on completion.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	attractionName := r.URL.Query().Get("attraction")

	session, err := h.quests.StartQuest(r.Context(), attractionName)
	if err == domain.ErrAttractionNotFound {
		http.Error(w, "unknown attraction", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "failed to start quest", http.StatusInternalServerError)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logrus.WithError(err).Warn("ws upgrade failed")
		session.Close()
		return
	}
	defer conn.Close()
	defer session.Close()

	updates, cancel := session.Subscribe()
	defer cancel()

	send := make(chan outboundMessage[any], 16)
	closeSignals := make(chan struct{})
	writerDone := make(chan struct{})
	updatesDone := make(chan struct{})

	go func() {
		defer close(writerDone)
		for msg := range send {
			if err := conn.WriteJSON(msg); err != nil {
				logrus.WithError(err).Warn("ws write error")
				return
			}
		}
	}()

	go func() {
		defer close(updatesDone)
		for {
			select {
			case update, ok := <-updates:
				if !ok {
					return
				}
				msg := outboundMessage[any]{Type: "question", Payload: update.Progress}
				if update.Completion != nil {
					msg = outboundMessage[any]{Type: "completed", Payload: update.Completion}
				}
				select {
				case send <- msg:
				case <-closeSignals:
					return
				}
			case <-closeSignals:
				return
			}
		}
	}()

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			break
		}
		switch inbound.Type {
		case "answer":
			var payload answerPayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: "invalid answer payload"}}
				continue
			}
			result, accepted := session.Submit(payload.Option)
			if !accepted {
				// Submission while locked or after completion is a silent no-op.
				continue
			}
			send <- outboundMessage[any]{Type: "answerResult", Payload: result}
		default:
			send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: "unsupported message type"}}
		}
	}

	close(closeSignals)
	<-updatesDone
	close(send)
	<-writerDone
}
