package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/uptrace/bun"

	"github.com/ChristianRemschi/QuizApp/internal/domain"
	"github.com/ChristianRemschi/QuizApp/internal/infra/store"
)

func openTestDB(t *testing.T) *bun.DB {
	t.Helper()
	db, err := store.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := store.Migrate(context.Background(), db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestSeedIfEmpty(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	seeded, err := store.SeedIfEmpty(ctx, db)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if !seeded {
		t.Fatalf("empty store should seed")
	}

	quizzes := store.NewQuizStore(db)
	count, err := quizzes.CountQuizzes(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 6 {
		t.Fatalf("expected 6 sample quizzes, got %d", count)
	}

	seeded, err = store.SeedIfEmpty(ctx, db)
	if err != nil {
		t.Fatalf("second seed: %v", err)
	}
	if seeded {
		t.Fatalf("non-empty store must not re-seed")
	}
}

func TestQuizTree(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	if _, err := store.SeedIfEmpty(ctx, db); err != nil {
		t.Fatalf("seed: %v", err)
	}
	quizzes := store.NewQuizStore(db)

	list, err := quizzes.ListQuizzes(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 6 {
		t.Fatalf("expected 6 quizzes, got %d", len(list))
	}
	// Ordered by name: Ancient History first.
	if list[0].Name != "Ancient History" {
		t.Fatalf("expected name ordering, got %q first", list[0].Name)
	}

	var mathID int64
	for _, q := range list {
		if q.Name == "Basic Math" {
			mathID = q.ID
		}
	}
	quiz, err := quizzes.GetQuizWithQuestions(ctx, mathID)
	if err != nil {
		t.Fatalf("tree: %v", err)
	}
	if len(quiz.Questions) != 10 {
		t.Fatalf("expected 10 questions, got %d", len(quiz.Questions))
	}
	for _, q := range quiz.Questions {
		if len(q.Answers) != 3 {
			t.Fatalf("question %q has %d answers", q.Text, len(q.Answers))
		}
		if _, ok := q.CorrectAnswerID(); !ok {
			t.Fatalf("question %q has no correct answer", q.Text)
		}
	}
}

func TestGetQuizWithQuestionsMissing(t *testing.T) {
	db := openTestDB(t)
	quizzes := store.NewQuizStore(db)

	_, err := quizzes.GetQuizWithQuestions(context.Background(), 4242)
	if err != domain.ErrQuizNotFound {
		t.Fatalf("expected ErrQuizNotFound, got %v", err)
	}

	quiz, err := quizzes.GetQuiz(context.Background(), 4242)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if quiz != nil {
		t.Fatalf("expected nil for missing quiz, got %+v", quiz)
	}
}

func TestDeleteQuizCascades(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	quizzes := store.NewQuizStore(db)
	favorites := store.NewFavoriteStore(db)

	quiz := &domain.Quiz{Name: "Doomed", Description: "to be deleted"}
	if err := quizzes.UpsertQuiz(ctx, quiz); err != nil {
		t.Fatalf("insert quiz: %v", err)
	}
	question := &domain.Question{QuizID: quiz.ID, Text: "gone soon?"}
	if err := quizzes.InsertQuestion(ctx, question); err != nil {
		t.Fatalf("insert question: %v", err)
	}
	if err := quizzes.InsertAnswer(ctx, &domain.Answer{QuestionID: question.ID, Text: "yes", Correct: true}); err != nil {
		t.Fatalf("insert answer: %v", err)
	}
	if err := favorites.Insert(ctx, 1, quiz.ID); err != nil {
		t.Fatalf("insert favorite: %v", err)
	}

	if err := quizzes.DeleteQuiz(ctx, quiz.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	got, err := quizzes.GetQuiz(ctx, quiz.ID)
	if err != nil || got != nil {
		t.Fatalf("quiz should be gone, got %+v err %v", got, err)
	}
	marked, err := favorites.Exists(ctx, 1, quiz.ID)
	if err != nil {
		t.Fatalf("favorite exists: %v", err)
	}
	if marked {
		t.Fatalf("favorite marker survived the delete")
	}
}

func TestListWithFavorites(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	quizzes := store.NewQuizStore(db)
	favorites := store.NewFavoriteStore(db)
	people := store.NewPersonStore(db)

	for _, name := range []string{"Alpha", "Beta"} {
		if err := quizzes.UpsertQuiz(ctx, &domain.Quiz{Name: name}); err != nil {
			t.Fatalf("insert %s: %v", name, err)
		}
	}
	person := &domain.Person{Name: "ada", PasswordHash: "x"}
	if err := people.Insert(ctx, person); err != nil {
		t.Fatalf("insert person: %v", err)
	}

	list, err := quizzes.ListWithFavorites(ctx, person.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 || list[0].Favorite || list[1].Favorite {
		t.Fatalf("expected two unmarked quizzes, got %+v", list)
	}

	if err := favorites.Insert(ctx, person.ID, list[1].ID); err != nil {
		t.Fatalf("favorite: %v", err)
	}
	// A second insert is a conflict-ignore, not an error.
	if err := favorites.Insert(ctx, person.ID, list[1].ID); err != nil {
		t.Fatalf("duplicate favorite: %v", err)
	}

	list, err = quizzes.ListWithFavorites(ctx, person.ID)
	if err != nil {
		t.Fatalf("relist: %v", err)
	}
	if list[0].Favorite || !list[1].Favorite {
		t.Fatalf("favorite flag wrong: %+v", list)
	}

	// Another person sees their own flags only.
	other, err := quizzes.ListWithFavorites(ctx, person.ID+1)
	if err != nil {
		t.Fatalf("other list: %v", err)
	}
	if other[0].Favorite || other[1].Favorite {
		t.Fatalf("favorites leaked across people: %+v", other)
	}
}

func TestBadgeGrantIdempotent(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	badges := store.NewBadgeStore(db)
	people := store.NewPersonStore(db)

	person := &domain.Person{Name: "ada", PasswordHash: "x"}
	if err := people.Insert(ctx, person); err != nil {
		t.Fatalf("insert person: %v", err)
	}

	badge := &domain.Badge{Name: "Quiz Finisher", Description: "done", IconURI: "icons/badge_finish.png"}
	if err := badges.CreateIfAbsent(ctx, badge); err != nil {
		t.Fatalf("create: %v", err)
	}
	firstID := badge.ID
	if firstID == 0 {
		t.Fatalf("badge id not assigned")
	}

	again := &domain.Badge{Name: "Quiz Finisher", Description: "other text"}
	if err := badges.CreateIfAbsent(ctx, again); err != nil {
		t.Fatalf("re-create: %v", err)
	}
	if again.ID != firstID {
		t.Fatalf("duplicate definition created: %d vs %d", again.ID, firstID)
	}

	if err := badges.Grant(ctx, person.ID, firstID); err != nil {
		t.Fatalf("grant: %v", err)
	}
	if err := badges.Grant(ctx, person.ID, firstID); err != nil {
		t.Fatalf("re-grant: %v", err)
	}
	held, err := badges.ListForPerson(ctx, person.ID)
	if err != nil {
		t.Fatalf("list held: %v", err)
	}
	if len(held) != 1 {
		t.Fatalf("expected one held badge, got %d", len(held))
	}
	if held[0].Name != "Quiz Finisher" {
		t.Fatalf("unexpected badge %+v", held[0])
	}
}

func TestScoreOrdering(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	scores := store.NewScoreStore(db)
	people := store.NewPersonStore(db)

	person := &domain.Person{Name: "ada", PasswordHash: "x"}
	if err := people.Insert(ctx, person); err != nil {
		t.Fatalf("insert person: %v", err)
	}

	base := time.Now().UTC().Truncate(time.Second)
	for i, value := range []int{4, 9, 7} {
		err := scores.Insert(ctx, &domain.Score{
			PersonID:  person.ID,
			QuizID:    1,
			Score:     value,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("insert score %d: %v", value, err)
		}
	}

	history, err := scores.ListForPerson(ctx, person.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("expected 3 scores, got %d", len(history))
	}
	if history[0].Score != 4 || history[1].Score != 9 || history[2].Score != 7 {
		t.Fatalf("history not in recorded order: %+v", history)
	}

	best, err := scores.BestForPerson(ctx, person.ID, 2)
	if err != nil {
		t.Fatalf("best: %v", err)
	}
	if len(best) != 2 || best[0].Score != 9 || best[1].Score != 7 {
		t.Fatalf("best not ordered by score: %+v", best)
	}
}

func TestPersonRoundTrip(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	people := store.NewPersonStore(db)

	person := &domain.Person{Name: "ada", PasswordHash: "hash", Biography: "pioneer"}
	if err := people.Insert(ctx, person); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if person.ID == 0 {
		t.Fatalf("id not assigned")
	}

	byName, err := people.GetByName(ctx, "ada")
	if err != nil {
		t.Fatalf("get by name: %v", err)
	}
	if byName == nil || byName.ID != person.ID {
		t.Fatalf("lookup by name failed: %+v", byName)
	}

	missing, err := people.GetByID(ctx, 4242)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for missing person, got %+v", missing)
	}

	person.Biography = "countess of lovelace"
	if err := people.Update(ctx, person); err != nil {
		t.Fatalf("update: %v", err)
	}
	updated, err := people.GetByID(ctx, person.ID)
	if err != nil {
		t.Fatalf("get updated: %v", err)
	}
	if updated.Biography != "countess of lovelace" {
		t.Fatalf("update not persisted: %+v", updated)
	}
}
