package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/ChristianRemschi/QuizApp/internal/app"
	"github.com/ChristianRemschi/QuizApp/internal/domain"
)

// API exposes the application's use cases as JSON endpoints.
type API struct {
	auth    *app.AuthService
	catalog *app.CatalogService
	profile *app.ProfileService
	stats   *app.StatsService
}

func NewAPI(auth *app.AuthService, catalog *app.CatalogService, profile *app.ProfileService, stats *app.StatsService) *API {
	return &API{auth: auth, catalog: catalog, profile: profile, stats: stats}
}

// Register wires the routes into the mux.
func (a *API) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/register", a.handleRegister)
	mux.HandleFunc("POST /api/login", a.handleLogin)

	mux.HandleFunc("GET /api/quizzes", a.handleListQuizzes)
	mux.HandleFunc("POST /api/quizzes", a.handleUpsertQuiz)
	mux.HandleFunc("GET /api/quizzes/{id}", a.handleGetQuiz)
	mux.HandleFunc("DELETE /api/quizzes/{id}", a.handleDeleteQuiz)
	mux.HandleFunc("POST /api/quizzes/{id}/complete", a.handleToggleComplete)
	mux.HandleFunc("POST /api/quizzes/{id}/favorite", a.handleToggleFavorite)

	mux.HandleFunc("GET /api/people/{id}", a.handleGetPerson)
	mux.HandleFunc("PUT /api/people/{id}", a.handleUpdatePerson)
	mux.HandleFunc("GET /api/people/{id}/scores", a.handleScores)
	mux.HandleFunc("GET /api/people/{id}/scores/best", a.handleBestScores)
	mux.HandleFunc("GET /api/people/{id}/badges", a.handleBadges)
	mux.HandleFunc("GET /api/people/{id}/stats", a.handleStats)
}

type credentialsRequest struct {
	Name      string `json:"name"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	Photo     string `json:"photo"`
	Biography string `json:"biography"`
}

func (a *API) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if !readJSON(w, r, &req) {
		return
	}
	name := req.Name
	if name == "" {
		name = req.Username
	}
	person, err := a.auth.Register(r.Context(), name, req.Password, req.Photo, req.Biography)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, person)
}

func (a *API) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if !readJSON(w, r, &req) {
		return
	}
	username := req.Username
	if username == "" {
		username = req.Name
	}
	person, err := a.auth.Login(r.Context(), username, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, person)
}

func (a *API) handleListQuizzes(w http.ResponseWriter, r *http.Request) {
	if raw := r.URL.Query().Get("personId"); raw != "" {
		personID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			http.Error(w, "invalid personId", http.StatusBadRequest)
			return
		}
		quizzes, err := a.catalog.ListForPerson(r.Context(), personID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, quizzes)
		return
	}

	quizzes, err := a.catalog.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, quizzes)
}

func (a *API) handleGetQuiz(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	quiz, err := a.catalog.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, quiz)
}

func (a *API) handleUpsertQuiz(w http.ResponseWriter, r *http.Request) {
	var quiz domain.Quiz
	if !readJSON(w, r, &quiz) {
		return
	}
	if err := a.catalog.Upsert(r.Context(), &quiz); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, quiz)
}

func (a *API) handleDeleteQuiz(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := a.catalog.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) handleToggleComplete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	quiz, err := a.catalog.ToggleComplete(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, quiz)
}

type favoriteRequest struct {
	PersonID int64 `json:"personId"`
}

type favoriteResponse struct {
	QuizID   int64 `json:"quizId"`
	Favorite bool  `json:"favorite"`
}

func (a *API) handleToggleFavorite(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req favoriteRequest
	if !readJSON(w, r, &req) {
		return
	}
	favorite, err := a.catalog.ToggleFavorite(r.Context(), req.PersonID, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, favoriteResponse{QuizID: id, Favorite: favorite})
}

func (a *API) handleGetPerson(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	person, err := a.profile.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, person)
}

type profileRequest struct {
	Name      string `json:"name"`
	Biography string `json:"biography"`
	Photo     string `json:"photo"`
}

func (a *API) handleUpdatePerson(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req profileRequest
	if !readJSON(w, r, &req) {
		return
	}
	person, err := a.profile.Update(r.Context(), id, req.Name, req.Biography, req.Photo)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, person)
}

func (a *API) handleScores(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	history, err := a.profile.History(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, history)
}

func (a *API) handleBestScores(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	limit := 3
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	best, err := a.profile.Best(r.Context(), id, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, best)
}

func (a *API) handleBadges(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	badges, err := a.profile.Badges(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, badges)
}

func (a *API) handleStats(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	report, err := a.stats.Aggregate(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func readJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, domain.ErrUsernameTaken):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, domain.ErrQuizNotFound),
		errors.Is(err, domain.ErrPersonNotFound),
		errors.Is(err, domain.ErrSessionNotFound),
		errors.Is(err, domain.ErrQuestionNotFound),
		errors.Is(err, domain.ErrAnswerNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, domain.ErrSessionFinished),
		errors.Is(err, domain.ErrNoQuestions):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
