package domain

import (
	"time"

	"github.com/uptrace/bun"
)

// Quiz is a named collection of questions. Name, description and the
// completion flag are editable; everything else is fixed at creation.
type Quiz struct {
	bun.BaseModel `bun:"table:quizzes,alias:q"`

	ID          int64  `bun:"id,pk,autoincrement" json:"id"`
	Name        string `bun:"name,notnull" json:"name"`
	Description string `bun:"description,notnull" json:"description"`
	ImageURI    string `bun:"image_uri" json:"imageUri,omitempty"`
	Complete    bool   `bun:"complete,notnull,default:false" json:"complete"`

	Questions []Question `bun:"rel:has-many,join:id=quiz_id" json:"questions,omitempty"`
}

// Question belongs to exactly one quiz.
type Question struct {
	bun.BaseModel `bun:"table:questions,alias:qu"`

	ID     int64  `bun:"id,pk,autoincrement" json:"id"`
	QuizID int64  `bun:"quiz_id,notnull" json:"quizId"`
	Text   string `bun:"question_text,notnull" json:"text"`

	Answers []Answer `bun:"rel:has-many,join:id=question_id" json:"answers,omitempty"`
}

// CorrectAnswerID returns the id of the answer flagged correct, or false if
// no answer is flagged. A question without a correct answer can never score.
func (q Question) CorrectAnswerID() (int64, bool) {
	for _, a := range q.Answers {
		if a.Correct {
			return a.ID, true
		}
	}
	return 0, false
}

// Answer is one selectable option of a question.
type Answer struct {
	bun.BaseModel `bun:"table:answers,alias:a"`

	ID         int64  `bun:"id,pk,autoincrement" json:"id"`
	QuestionID int64  `bun:"question_id,notnull" json:"questionId"`
	Text       string `bun:"answer_text,notnull" json:"text"`
	Correct    bool   `bun:"correct,notnull,default:false" json:"correct"`
}

// Person is a user account. The name doubles as the login username.
type Person struct {
	bun.BaseModel `bun:"table:people,alias:p"`

	ID           int64  `bun:"id,pk,autoincrement" json:"id"`
	Name         string `bun:"name,notnull,unique" json:"name"`
	PasswordHash string `bun:"password_hash,notnull" json:"-"`
	Photo        string `bun:"photo" json:"photo,omitempty"`
	Biography    string `bun:"biography" json:"biography,omitempty"`
}

// Score is one immutable recorded outcome of a finished play session.
// Rows are append-only; there is no update or delete path.
type Score struct {
	bun.BaseModel `bun:"table:scores,alias:s"`

	ID        int64     `bun:"id,pk,autoincrement" json:"id"`
	PersonID  int64     `bun:"person_id,notnull" json:"personId"`
	QuizID    int64     `bun:"quiz_id,notnull" json:"quizId"`
	Score     int       `bun:"score,notnull" json:"score"`
	CreatedAt time.Time `bun:"created_at,notnull,nullzero,default:current_timestamp" json:"createdAt"`
}

// Badge is a named achievement a person can earn at most once.
type Badge struct {
	bun.BaseModel `bun:"table:badges,alias:b"`

	ID          int64  `bun:"id,pk,autoincrement" json:"id"`
	Name        string `bun:"name,notnull,unique" json:"name"`
	Description string `bun:"description,notnull" json:"description"`
	IconURI     string `bun:"icon_uri" json:"iconUri,omitempty"`
}

// PersonBadge records that a person holds a badge. Unique per pair; insert
// conflicts are ignored.
type PersonBadge struct {
	bun.BaseModel `bun:"table:person_badges,alias:pb"`

	ID       int64 `bun:"id,pk,autoincrement"`
	PersonID int64 `bun:"person_id,notnull,unique:person_badge"`
	BadgeID  int64 `bun:"badge_id,notnull,unique:person_badge"`
}

// FavoriteQuiz marks a person's favorite quiz. Toggled, never accumulated.
type FavoriteQuiz struct {
	bun.BaseModel `bun:"table:favorite_quizzes,alias:f"`

	ID       int64 `bun:"id,pk,autoincrement"`
	PersonID int64 `bun:"person_id,notnull,unique:person_quiz"`
	QuizID   int64 `bun:"quiz_id,notnull,unique:person_quiz"`
}

// QuizWithFavorite is a catalog row joined with the per-person favorite flag.
type QuizWithFavorite struct {
	Quiz     `bun:",extend"`
	Favorite bool `bun:"favorite,scanonly" json:"favorite"`
}

// ScoredQuiz pairs a score with the quiz it was earned on.
type ScoredQuiz struct {
	Quiz  Quiz  `json:"quiz"`
	Score Score `json:"score"`
}

// PlaySession is one in-flight play-through of a sampled question subset.
// Sessions are ephemeral; they live in a session store, not in SQL.
type PlaySession struct {
	ID         string          `json:"id"`
	PersonID   int64           `json:"personId"`
	QuizID     int64           `json:"quizId"`
	QuizName   string          `json:"quizName"`
	Questions  []Question      `json:"questions"`
	Selections map[int64]int64 `json:"selections"`
	Finished   bool            `json:"finished"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// Question returns the sampled question with the given id, if present.
func (s *PlaySession) Question(questionID int64) (Question, bool) {
	for _, q := range s.Questions {
		if q.ID == questionID {
			return q, true
		}
	}
	return Question{}, false
}

// BadgeGrant is one badge newly awarded by a finished session.
type BadgeGrant struct {
	Badge Badge  `json:"badge"`
	Rule  string `json:"rule"`
}

// PlayResult summarizes a finished session.
type PlayResult struct {
	SessionID string       `json:"sessionId"`
	QuizID    int64        `json:"quizId"`
	Score     int          `json:"score"`
	Total     int          `json:"total"`
	Grants    []BadgeGrant `json:"grants"`
}

// SeriesStats are reduce-style statistics over one group of scores.
type SeriesStats struct {
	Count   int     `json:"count"`
	Sum     int     `json:"sum"`
	Average float64 `json:"average"`
	Max     int     `json:"max"`
	Min     int     `json:"min"`
}

// ScoreDistribution buckets scores the way the original stats screen does.
type ScoreDistribution struct {
	Excellent int `json:"excellent"` // score >= 8
	Good      int `json:"good"`      // 5..7
	Poor      int `json:"poor"`      // < 5
}

// StatsReport is the full statistics view for one person. ByQuiz is keyed by
// quiz name: two quizzes sharing a name aggregate together.
type StatsReport struct {
	Overall      SeriesStats            `json:"overall"`
	ByQuiz       map[string]SeriesStats `json:"byQuiz"`
	Distribution ScoreDistribution      `json:"distribution"`
}
