package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ChristianRemschi/QuizApp/internal/app"
	"github.com/ChristianRemschi/QuizApp/internal/domain"
)

func TestRegisterAndLogin(t *testing.T) {
	people := newFakePeople()
	service := app.NewAuthService(people)
	ctx := context.Background()

	person, err := service.Register(ctx, "ada", "hunter2", "photo.png", "first programmer")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if person.ID == 0 {
		t.Fatalf("registered person has no id")
	}
	if person.PasswordHash == "hunter2" || person.PasswordHash == "" {
		t.Fatalf("password stored in the clear or not at all")
	}

	logged, err := service.Login(ctx, "ada", "hunter2")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if logged.ID != person.ID {
		t.Fatalf("login returned a different person: %d vs %d", logged.ID, person.ID)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	people := newFakePeople()
	service := app.NewAuthService(people)
	ctx := context.Background()

	if _, err := service.Register(ctx, "ada", "hunter2", "", ""); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := service.Login(ctx, "ada", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	service := app.NewAuthService(newFakePeople())

	if _, err := service.Login(context.Background(), "nobody", "pw"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestRegisterDuplicateName(t *testing.T) {
	service := app.NewAuthService(newFakePeople())
	ctx := context.Background()

	if _, err := service.Register(ctx, "ada", "pw1", "", ""); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := service.Register(ctx, "ada", "pw2", "", ""); !errors.Is(err, domain.ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
	// Whitespace around the name does not dodge the uniqueness check.
	if _, err := service.Register(ctx, "  ada  ", "pw3", "", ""); !errors.Is(err, domain.ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken for trimmed duplicate, got %v", err)
	}
}

func TestRegisterRejectsBlankInput(t *testing.T) {
	service := app.NewAuthService(newFakePeople())
	ctx := context.Background()

	if _, err := service.Register(ctx, "   ", "pw", "", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for blank name, got %v", err)
	}
	if _, err := service.Register(ctx, "ada", "", "", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for empty password, got %v", err)
	}
}
