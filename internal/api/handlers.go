package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"recipehub/internal/auth"
	"recipehub/internal/mealplan"
	"recipehub/internal/metrics"
	"recipehub/internal/shopping"
)

type createMealPlanRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	IsPublic    bool   `json:"is_public"`
}

type createPlannedMealRequest struct {
	RecipeID string `json:"recipe_id"`
	MealDate string `json:"meal_date"`
	MealType string `json:"meal_type"`
	Servings int    `json:"servings"`
	Notes    string `json:"notes"`
}

type shoppingListResponse struct {
	*shopping.ShoppingList
	SkippedMealIDs []int64 `json:"skipped_meal_ids"`
}

type nutritionResponse struct {
	TotalCalories  float64 `json:"total_calories"`
	TotalProtein   float64 `json:"total_protein"`
	TotalCarbs     float64 `json:"total_carbs"`
	TotalFat       float64 `json:"total_fat"`
	MealsCount     int     `json:"meals_count"`
	SkippedMealIDs []int64 `json:"skipped_meal_ids"`
}

func (s *Server) handleCreateMealPlan(w http.ResponseWriter, r *http.Request) {
	creds, _ := auth.FromContext(r.Context())

	var req createMealPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	plan, err := s.planRepo.Create(r.Context(), &mealplan.MealPlan{
		UserID:      creds.UserID,
		Name:        req.Name,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		IsPublic:    req.IsPublic,
	})
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, plan)
}

func (s *Server) handleListMealPlans(w http.ResponseWriter, r *http.Request) {
	creds, _ := auth.FromContext(r.Context())

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	plans, err := s.planRepo.List(r.Context(), creds.UserID, limit, offset)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, plans)
}

func (s *Server) handleGetMealPlan(w http.ResponseWriter, r *http.Request) {
	creds, _ := auth.FromContext(r.Context())
	planID, ok := pathID(w, r)
	if !ok {
		return
	}

	plan, err := s.planRepo.Get(r.Context(), planID, creds.UserID)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

func (s *Server) handleUpdateMealPlan(w http.ResponseWriter, r *http.Request) {
	creds, _ := auth.FromContext(r.Context())
	planID, ok := pathID(w, r)
	if !ok {
		return
	}

	var upd mealplan.PlanUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	plan, err := s.planRepo.Update(r.Context(), planID, creds.UserID, upd)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

func (s *Server) handleDeleteMealPlan(w http.ResponseWriter, r *http.Request) {
	creds, _ := auth.FromContext(r.Context())
	planID, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := s.planRepo.Delete(r.Context(), planID, creds.UserID); err != nil {
		s.writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAddPlannedMeal(w http.ResponseWriter, r *http.Request) {
	creds, _ := auth.FromContext(r.Context())
	planID, ok := pathID(w, r)
	if !ok {
		return
	}

	var req createPlannedMealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	meal, err := s.planRepo.AddMeal(r.Context(), planID, creds.UserID, &mealplan.PlannedMeal{
		RecipeID: req.RecipeID,
		MealDate: req.MealDate,
		MealType: mealplan.MealType(req.MealType),
		Servings: req.Servings,
		Notes:    req.Notes,
	})
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, meal)
}

func (s *Server) handleListPlannedMeals(w http.ResponseWriter, r *http.Request) {
	creds, _ := auth.FromContext(r.Context())
	planID, ok := pathID(w, r)
	if !ok {
		return
	}

	plan, err := s.planRepo.Get(r.Context(), planID, creds.UserID)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, plan.PlannedMeals)
}

func (s *Server) handleUpdatePlannedMeal(w http.ResponseWriter, r *http.Request) {
	creds, _ := auth.FromContext(r.Context())
	mealID, ok := pathID(w, r)
	if !ok {
		return
	}

	var upd mealplan.MealUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	meal, err := s.planRepo.UpdateMeal(r.Context(), mealID, creds.UserID, upd)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, meal)
}

func (s *Server) handleDeletePlannedMeal(w http.ResponseWriter, r *http.Request) {
	creds, _ := auth.FromContext(r.Context())
	mealID, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := s.planRepo.DeleteMeal(r.Context(), mealID, creds.UserID); err != nil {
		s.writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGenerateShoppingList(w http.ResponseWriter, r *http.Request) {
	creds, _ := auth.FromContext(r.Context())
	planID, ok := pathID(w, r)
	if !ok {
		return
	}

	result, err := s.app.GenerateShoppingList(r.Context(), planID, creds.UserID)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, shoppingListResponse{
		ShoppingList:   result.List,
		SkippedMealIDs: emptyIfNil(result.SkippedMealIDs),
	})
}

func (s *Server) handleGetShoppingList(w http.ResponseWriter, r *http.Request) {
	creds, _ := auth.FromContext(r.Context())
	planID, ok := pathID(w, r)
	if !ok {
		return
	}

	list, err := s.app.GetShoppingList(r.Context(), planID, creds.UserID)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleSetItemPurchased(w http.ResponseWriter, r *http.Request) {
	creds, _ := auth.FromContext(r.Context())
	itemID, ok := pathID(w, r)
	if !ok {
		return
	}

	purchased, err := strconv.ParseBool(r.URL.Query().Get("is_purchased"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "is_purchased must be true or false")
		return
	}

	item, err := s.app.SetItemPurchased(r.Context(), itemID, creds.UserID, purchased)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (s *Server) handleNutritionSummary(w http.ResponseWriter, r *http.Request) {
	creds, _ := auth.FromContext(r.Context())
	planID, ok := pathID(w, r)
	if !ok {
		return
	}

	result, err := s.app.NutritionSummary(r.Context(), planID, creds.UserID)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nutritionResponse{
		TotalCalories:  result.Summary.TotalCalories,
		TotalProtein:   result.Summary.TotalProtein,
		TotalCarbs:     result.Summary.TotalCarbs,
		TotalFat:       result.Summary.TotalFat,
		MealsCount:     result.Summary.MealsCount,
		SkippedMealIDs: emptyIfNil(result.SkippedMealIDs),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"sys":    metrics.GetSysHealth(s.dataPath),
	})
}

// writeDomainError maps the error taxonomy onto HTTP statuses.
func (s *Server) writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, mealplan.ErrInvalid):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, mealplan.ErrNotFound), errors.Is(err, shopping.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, shopping.ErrConflict):
		writeError(w, http.StatusConflict, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

func emptyIfNil(ids []int64) []int64 {
	if ids == nil {
		return []int64{}
	}
	return ids
}
