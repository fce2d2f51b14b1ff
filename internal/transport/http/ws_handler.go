package http

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/websocket"

	"github.com/ChristianRemschi/QuizApp/internal/app"
	"github.com/ChristianRemschi/QuizApp/internal/domain"
)

// WSHandler runs one play session per websocket connection: the server
// sends the sampled questions, the client answers them and finishes, the
// server replies with the score and any badges earned.
type WSHandler struct {
	play     *app.PlayService
	upgrader websocket.Upgrader
}

func NewWSHandler(play *app.PlayService) *WSHandler {
	return &WSHandler{
		play: play,
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

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

type errorPayload struct {
	Message string `json:"message"`
}

type answerPayload struct {
	QuestionID int64 `json:"questionId"`
	AnswerID   int64 `json:"answerId"`
}

type answerAck struct {
	QuestionID int64 `json:"questionId"`
	Answered   int   `json:"answered"`
	Total      int   `json:"total"`
}

// answerView and questionView strip the correct flags before questions
// leave the server.
type answerView struct {
	ID   int64  `json:"id"`
	Text string `json:"text"`
}

type questionView struct {
	ID      int64        `json:"id"`
	Text    string       `json:"text"`
	Answers []answerView `json:"answers"`
}

type questionsPayload struct {
	SessionID string         `json:"sessionId"`
	QuizID    int64          `json:"quizId"`
	QuizName  string         `json:"quizName"`
	Total     int            `json:"total"`
	Questions []questionView `json:"questions"`
}

// ServeWS upgrades the request and drives the session until the client
// finishes or disconnects. An abandoned connection leaves the session to
// expire in its store; nothing is scored.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	personID, err := strconv.ParseInt(r.URL.Query().Get("personId"), 10, 64)
	if err != nil {
		http.Error(w, "missing or invalid personId", http.StatusBadRequest)
		return
	}
	quizID, err := strconv.ParseInt(r.URL.Query().Get("quizId"), 10, 64)
	if err != nil {
		http.Error(w, "missing or invalid quizId", http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	send := make(chan outboundMessage[any], 16)
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		for msg := range send {
			if err := conn.WriteJSON(msg); err != nil {
				log.Printf("ws write error: %v", err)
				return
			}
		}
	}()

	session, err := h.play.Start(r.Context(), personID, quizID)
	if err != nil {
		send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: err.Error()}}
		close(send)
		<-writerDone
		return
	}

	send <- outboundMessage[any]{Type: "questions", Payload: sessionQuestions(session)}

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
			updated, err := h.play.Answer(r.Context(), session.ID, payload.QuestionID, payload.AnswerID)
			if err != nil {
				send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: err.Error()}}
				continue
			}
			send <- outboundMessage[any]{Type: "answerAck", Payload: answerAck{
				QuestionID: payload.QuestionID,
				Answered:   len(updated.Selections),
				Total:      len(updated.Questions),
			}}
		case "finish":
			result, err := h.play.Finish(r.Context(), session.ID)
			if err != nil {
				send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: err.Error()}}
				continue
			}
			send <- outboundMessage[any]{Type: "result", Payload: result}
			close(send)
			<-writerDone
			return
		default:
			send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: "unsupported message type"}}
		}
	}

	close(send)
	<-writerDone
}

func sessionQuestions(session *domain.PlaySession) questionsPayload {
	questions := make([]questionView, 0, len(session.Questions))
	for _, q := range session.Questions {
		answers := make([]answerView, 0, len(q.Answers))
		for _, a := range q.Answers {
			answers = append(answers, answerView{ID: a.ID, Text: a.Text})
		}
		questions = append(questions, questionView{ID: q.ID, Text: q.Text, Answers: answers})
	}
	return questionsPayload{
		SessionID: session.ID,
		QuizID:    session.QuizID,
		QuizName:  session.QuizName,
		Total:     len(session.Questions),
		Questions: questions,
	}
}
