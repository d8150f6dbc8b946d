package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"recipehub/internal/app"
	"recipehub/internal/auth"
	"recipehub/internal/mealplan"
)

// Server exposes the meal plan derivation engine over HTTP.
type Server struct {
	app      *app.App
	planRepo *mealplan.Repository
	verifier *auth.Verifier
	dataPath string
}

// NewServer creates a Server.
func NewServer(application *app.App, planRepo *mealplan.Repository, verifier *auth.Verifier, dataPath string) *Server {
	return &Server{
		app:      application,
		planRepo: planRepo,
		verifier: verifier,
		dataPath: dataPath,
	}
}

// Handler builds the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /meal-plans", s.withAuth(s.handleCreateMealPlan))
	mux.HandleFunc("GET /meal-plans", s.withAuth(s.handleListMealPlans))
	mux.HandleFunc("GET /meal-plans/{id}", s.withAuth(s.handleGetMealPlan))
	mux.HandleFunc("PUT /meal-plans/{id}", s.withAuth(s.handleUpdateMealPlan))
	mux.HandleFunc("DELETE /meal-plans/{id}", s.withAuth(s.handleDeleteMealPlan))
	mux.HandleFunc("POST /meal-plans/{id}/meals", s.withAuth(s.handleAddPlannedMeal))
	mux.HandleFunc("GET /meal-plans/{id}/meals", s.withAuth(s.handleListPlannedMeals))
	mux.HandleFunc("PUT /planned-meals/{id}", s.withAuth(s.handleUpdatePlannedMeal))
	mux.HandleFunc("DELETE /planned-meals/{id}", s.withAuth(s.handleDeletePlannedMeal))
	mux.HandleFunc("POST /meal-plans/{id}/shopping-list", s.withAuth(s.handleGenerateShoppingList))
	mux.HandleFunc("GET /meal-plans/{id}/shopping-list", s.withAuth(s.handleGetShoppingList))
	mux.HandleFunc("PATCH /shopping-items/{id}/purchase", s.withAuth(s.handleSetItemPurchased))
	mux.HandleFunc("GET /meal-plans/{id}/nutrition", s.withAuth(s.handleNutritionSummary))
	mux.HandleFunc("GET /health", s.handleHealth)

	return withRequestID(mux)
}

// ListenAndServe runs the HTTP server until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: s.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
