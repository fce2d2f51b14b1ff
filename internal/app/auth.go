package app

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/ChristianRemschi/QuizApp/internal/domain"
)

// AuthService handles account registration and login. Passwords are stored
// as bcrypt hashes; the login success boundary is unchanged from the
// plaintext contract (exact username, matching password).
type AuthService struct {
	people PersonRepository
}

func NewAuthService(people PersonRepository) *AuthService {
	return &AuthService{people: people}
}

// Register creates a new account with a unique username.
func (a *AuthService) Register(ctx context.Context, name, password, photo, biography string) (*domain.Person, error) {
	name = strings.TrimSpace(name)
	if name == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	existing, err := a.people.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	person := &domain.Person{
		Name:         name,
		PasswordHash: string(hash),
		Photo:        photo,
		Biography:    biography,
	}
	if err := a.people.Insert(ctx, person); err != nil {
		return nil, err
	}
	return person, nil
}

// Login succeeds iff a person with that exact name exists and the password
// matches. Unknown user and wrong password are indistinguishable.
func (a *AuthService) Login(ctx context.Context, username, password string) (*domain.Person, error) {
	person, err := a.people.GetByName(ctx, strings.TrimSpace(username))
	if err != nil {
		return nil, err
	}
	if person == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(person.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	return person, nil
}
