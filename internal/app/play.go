package app

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"time"

	"github.com/ChristianRemschi/QuizApp/internal/domain"
)

// DefaultSampleSize is how many questions a session draws from the pool.
const DefaultSampleSize = 5

// PlayService runs play sessions: sample questions, record selections,
// score the result and hand it to the badge policy.
type PlayService struct {
	sessions   SessionRepository
	quizzes    QuizContentRepository
	scores     ScoreRepository
	badges     *BadgeService
	sampleSize int
	now        func() time.Time
}

func NewPlayService(sessions SessionRepository, quizzes QuizContentRepository, scores ScoreRepository, badges *BadgeService, sampleSize int) *PlayService {
	if sampleSize <= 0 {
		sampleSize = DefaultSampleSize
	}
	return &PlayService{
		sessions:   sessions,
		quizzes:    quizzes,
		scores:     scores,
		badges:     badges,
		sampleSize: sampleSize,
		now:        time.Now,
	}
}

// Start samples min(sampleSize, available) questions uniformly at random
// without replacement and pins them for the session's lifetime.
func (s *PlayService) Start(ctx context.Context, personID, quizID int64) (*domain.PlaySession, error) {
	quiz, err := s.quizzes.GetQuizWithQuestions(ctx, quizID)
	if err != nil {
		return nil, err
	}
	if len(quiz.Questions) == 0 {
		return nil, domain.ErrNoQuestions
	}

	session := &domain.PlaySession{
		ID:         newSessionID(),
		PersonID:   personID,
		QuizID:     quiz.ID,
		QuizName:   quiz.Name,
		Questions:  sampleQuestions(quiz.Questions, s.sampleSize),
		Selections: make(map[int64]int64),
		CreatedAt:  s.now(),
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Answer records one selection. Last write wins: re-answering a question
// overwrites the previous choice.
func (s *PlayService) Answer(ctx context.Context, sessionID string, questionID, answerID int64) (*domain.PlaySession, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Finished {
		return nil, domain.ErrSessionFinished
	}

	question, ok := session.Question(questionID)
	if !ok {
		return nil, domain.ErrQuestionNotFound
	}
	valid := false
	for _, a := range question.Answers {
		if a.ID == answerID {
			valid = true
			break
		}
	}
	if !valid {
		return nil, domain.ErrAnswerNotFound
	}

	if session.Selections == nil {
		session.Selections = make(map[int64]int64)
	}
	session.Selections[questionID] = answerID
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Finish scores the session, records the score and evaluates badge rules.
// Completeness is not re-validated: finishing early scores only the answered
// questions, matching the observed contract where the caller gates submission.
func (s *PlayService) Finish(ctx context.Context, sessionID string) (*domain.PlayResult, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Finished {
		return nil, domain.ErrSessionFinished
	}

	score := scoreSession(session)
	total := len(session.Questions)

	// Score first, badges second. A crash in between loses only the grant,
	// and the rules are idempotent so the next finished session repairs it.
	if err := s.scores.Insert(ctx, &domain.Score{
		PersonID:  session.PersonID,
		QuizID:    session.QuizID,
		Score:     score,
		CreatedAt: s.now(),
	}); err != nil {
		return nil, err
	}

	grants, err := s.badges.Evaluate(ctx, session.PersonID, score, total)
	if err != nil && !errors.Is(err, domain.ErrPersonNotFound) {
		return nil, err
	}

	session.Finished = true
	_ = s.sessions.Delete(ctx, session.ID)

	return &domain.PlayResult{
		SessionID: session.ID,
		QuizID:    session.QuizID,
		Score:     score,
		Total:     total,
		Grants:    grants,
	}, nil
}

// scoreSession counts questions whose recorded selection is the answer
// flagged correct. No partial credit, no negative scoring.
func scoreSession(session *domain.PlaySession) int {
	score := 0
	for _, q := range session.Questions {
		correctID, ok := q.CorrectAnswerID()
		if !ok {
			continue
		}
		if selected, answered := session.Selections[q.ID]; answered && selected == correctID {
			score++
		}
	}
	return score
}

// sampleQuestions shuffles a copy of the pool and takes the head.
func sampleQuestions(pool []domain.Question, size int) []domain.Question {
	shuffled := make([]domain.Question, len(pool))
	copy(shuffled, pool)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if size > len(shuffled) {
		size = len(shuffled)
	}
	return shuffled[:size]
}

func newSessionID() string {
	const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	const length = 12

	var builder strings.Builder
	builder.Grow(len("ps_") + length)
	builder.WriteString("ps_")
	for idx := 0; idx < length; idx++ {
		builder.WriteByte(alphabet[rand.Intn(len(alphabet))])
	}
	return builder.String()
}
