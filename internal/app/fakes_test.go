package app_test

import (
	"context"
	"sort"

	"github.com/ChristianRemschi/QuizApp/internal/domain"
)

// staticQuizzes serves quiz trees from a map (no cache in the way).
type staticQuizzes struct {
	quizzes map[int64]domain.Quiz
}

func (s *staticQuizzes) GetQuizWithQuestions(_ context.Context, quizID int64) (domain.Quiz, error) {
	if quiz, ok := s.quizzes[quizID]; ok {
		return quiz, nil
	}
	return domain.Quiz{}, domain.ErrQuizNotFound
}

type fakeScores struct {
	rows   []domain.Score
	nextID int64
}

func (f *fakeScores) Insert(_ context.Context, score *domain.Score) error {
	f.nextID++
	score.ID = f.nextID
	f.rows = append(f.rows, *score)
	return nil
}

func (f *fakeScores) ListForPerson(_ context.Context, personID int64) ([]domain.Score, error) {
	var out []domain.Score
	for _, row := range f.rows {
		if row.PersonID == personID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (f *fakeScores) BestForPerson(_ context.Context, personID int64, limit int) ([]domain.Score, error) {
	out, _ := f.ListForPerson(nil, personID)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakePeople struct {
	people map[int64]domain.Person
	nextID int64
}

func newFakePeople(people ...domain.Person) *fakePeople {
	f := &fakePeople{people: make(map[int64]domain.Person)}
	for _, p := range people {
		if p.ID > f.nextID {
			f.nextID = p.ID
		}
		f.people[p.ID] = p
	}
	return f
}

func (f *fakePeople) GetByID(_ context.Context, id int64) (*domain.Person, error) {
	if p, ok := f.people[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (f *fakePeople) GetByName(_ context.Context, name string) (*domain.Person, error) {
	for _, p := range f.people {
		if p.Name == name {
			return &p, nil
		}
	}
	return nil, nil
}

func (f *fakePeople) Insert(_ context.Context, person *domain.Person) error {
	f.nextID++
	person.ID = f.nextID
	f.people[person.ID] = *person
	return nil
}

func (f *fakePeople) Update(_ context.Context, person *domain.Person) error {
	f.people[person.ID] = *person
	return nil
}

type grantKey struct {
	personID int64
	badgeID  int64
}

type fakeBadges struct {
	badges  map[string]domain.Badge
	grants  map[grantKey]bool
	granted []grantKey // insertion order, duplicates ignored
	nextID  int64
}

func newFakeBadges() *fakeBadges {
	return &fakeBadges{
		badges: make(map[string]domain.Badge),
		grants: make(map[grantKey]bool),
	}
}

func (f *fakeBadges) CreateIfAbsent(_ context.Context, badge *domain.Badge) error {
	if existing, ok := f.badges[badge.Name]; ok {
		*badge = existing
		return nil
	}
	f.nextID++
	badge.ID = f.nextID
	f.badges[badge.Name] = *badge
	return nil
}

func (f *fakeBadges) Grant(_ context.Context, personID, badgeID int64) error {
	key := grantKey{personID, badgeID}
	if f.grants[key] {
		return nil
	}
	f.grants[key] = true
	f.granted = append(f.granted, key)
	return nil
}

func (f *fakeBadges) ListForPerson(_ context.Context, personID int64) ([]domain.Badge, error) {
	var out []domain.Badge
	for _, key := range f.granted {
		if key.personID != personID {
			continue
		}
		for _, badge := range f.badges {
			if badge.ID == key.badgeID {
				out = append(out, badge)
			}
		}
	}
	return out, nil
}

type favKey struct {
	personID int64
	quizID   int64
}

type fakeFavorites struct {
	rows map[favKey]bool
}

func newFakeFavorites() *fakeFavorites {
	return &fakeFavorites{rows: make(map[favKey]bool)}
}

func (f *fakeFavorites) Exists(_ context.Context, personID, quizID int64) (bool, error) {
	return f.rows[favKey{personID, quizID}], nil
}

func (f *fakeFavorites) Insert(_ context.Context, personID, quizID int64) error {
	f.rows[favKey{personID, quizID}] = true
	return nil
}

func (f *fakeFavorites) Delete(_ context.Context, personID, quizID int64) error {
	delete(f.rows, favKey{personID, quizID})
	return nil
}

type fakeCatalog struct {
	quizzes map[int64]domain.Quiz
}

func (f *fakeCatalog) ListQuizzes(_ context.Context) ([]domain.Quiz, error) {
	var out []domain.Quiz
	for _, q := range f.quizzes {
		out = append(out, q)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeCatalog) ListWithFavorites(_ context.Context, _ int64) ([]domain.QuizWithFavorite, error) {
	return nil, nil
}

func (f *fakeCatalog) GetQuiz(_ context.Context, id int64) (*domain.Quiz, error) {
	if q, ok := f.quizzes[id]; ok {
		return &q, nil
	}
	return nil, nil
}

func (f *fakeCatalog) UpsertQuiz(_ context.Context, quiz *domain.Quiz) error {
	if quiz.ID == 0 {
		quiz.ID = int64(len(f.quizzes) + 1)
	}
	f.quizzes[quiz.ID] = *quiz
	return nil
}

func (f *fakeCatalog) DeleteQuiz(_ context.Context, id int64) error {
	delete(f.quizzes, id)
	return nil
}

// sampleQuiz builds a quiz where every question has three answers and the
// second one is correct.
func sampleQuiz(quizID int64, questionCount int) domain.Quiz {
	quiz := domain.Quiz{ID: quizID, Name: "Sample", Description: "sample quiz"}
	var nextAnswerID int64 = quizID * 1000
	for i := 0; i < questionCount; i++ {
		questionID := quizID*100 + int64(i) + 1
		question := domain.Question{ID: questionID, QuizID: quizID, Text: "Select the right option"}
		for j := 0; j < 3; j++ {
			nextAnswerID++
			question.Answers = append(question.Answers, domain.Answer{
				ID:         nextAnswerID,
				QuestionID: questionID,
				Text:       "option",
				Correct:    j == 1,
			})
		}
		quiz.Questions = append(quiz.Questions, question)
	}
	return quiz
}
