package domain

import "errors"

var (
	// ErrQuizNotFound indicates the quiz content could not be loaded.
	ErrQuizNotFound = errors.New("quiz not found")
	// ErrQuestionNotFound indicates a question id outside the session's sampled set.
	ErrQuestionNotFound = errors.New("question not found")
	// ErrAnswerNotFound indicates an answer id that does not belong to the question.
	ErrAnswerNotFound = errors.New("answer not found")
	// ErrPersonNotFound indicates an unknown person id.
	ErrPersonNotFound = errors.New("person not found")
	// ErrSessionNotFound is returned when a play session does not exist or expired.
	ErrSessionNotFound = errors.New("play session not found")
	// ErrSessionFinished rejects answers and repeat finishes on a finalized session.
	ErrSessionFinished = errors.New("play session already finished")
	// ErrNoQuestions is returned when a quiz has no questions to sample from.
	ErrNoQuestions = errors.New("quiz has no questions")
	// ErrInvalidCredentials covers both unknown username and wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUsernameTaken is returned on registration with an existing name.
	ErrUsernameTaken = errors.New("username already taken")
)
