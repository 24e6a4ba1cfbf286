package schedule

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/fitplanner/internal/telemetry/tracing"
	"github.com/2beens/fitplanner/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=schedule_test

type scheduleService interface {
	GenerateSchedule(ctx context.Context, params GenerateParams) ([]DayPlan, error)
	GetUserSchedules(ctx context.Context, userID int) ([]Entry, error)
	GetSchedule(ctx context.Context, id int) (*Entry, error)
	DeleteSchedule(ctx context.Context, id int) error
	DeleteUserSchedules(ctx context.Context, userID int) (int64, error)
	CountUserSchedules(ctx context.Context, userID int) (int, error)
}

// GenerateRequest is the POST /schedule/generate body.
// Age and gender are accepted for profile completeness but do not shape the plan.
type GenerateRequest struct {
	UserID          int    `json:"userId" validate:"required,gt=0"`
	Goal            string `json:"goal" validate:"required"`
	AvailableDays   int    `json:"availableDays" validate:"required,min=1,max=7"`
	AvailableTime   int    `json:"availableTime" validate:"gte=0"`
	ExperienceLevel string `json:"experienceLevel" validate:"required"`
	Age             int    `json:"age,omitempty" validate:"omitempty,gt=0"`
	Gender          string `json:"gender,omitempty"`
}

type GenerateResponse struct {
	Message  string    `json:"message"`
	Schedule []DayPlan `json:"schedule"`
}

type DeleteUserSchedulesResponse struct {
	Message string `json:"message"`
	Deleted int64  `json:"deleted"`
}

type CountResponse struct {
	Count int `json:"count"`
}

const missingGenerateFieldsMsg = "userId, goal, availableDays, and experienceLevel are required"

type Handler struct {
	service  scheduleService
	validate *validator.Validate
}

func NewHandler(service scheduleService) *Handler {
	return &Handler{
		service:  service,
		validate: pkg.NewValidator(),
	}
}

// SetupRoutes registers schedule routes on a /schedule subrouter.
// generateMiddlewares wrap only the generate route (rate limiting).
func (h *Handler) SetupRoutes(router *mux.Router, generateMiddlewares ...mux.MiddlewareFunc) {
	var generate http.Handler = http.HandlerFunc(h.HandleGenerate)
	for i := len(generateMiddlewares) - 1; i >= 0; i-- {
		generate = generateMiddlewares[i](generate)
	}
	router.Handle("/generate", generate).Methods("POST", "OPTIONS").Name("schedule-generate")

	router.HandleFunc("/user/{userId}", h.HandleGetUserSchedules).Methods("GET", "OPTIONS").Name("schedule-user")
	router.HandleFunc("/user/{userId}", h.HandleDeleteUserSchedules).Methods("DELETE", "OPTIONS").Name("schedule-user-delete")
	router.HandleFunc("/user/{userId}/count", h.HandleCountUserSchedules).Methods("GET", "OPTIONS").Name("schedule-user-count")
	router.HandleFunc("/{id}", h.HandleGet).Methods("GET", "OPTIONS").Name("schedule-get")
	router.HandleFunc("/{id}", h.HandleDelete).Methods("DELETE", "OPTIONS").Name("schedule-delete")
}

func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.schedule.generate")
	defer span.End()

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("generate schedule, unmarshal json params: %s", err)
		pkg.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Debugf("generate schedule, invalid request: %s", err)
		pkg.WriteJSONError(w, pkg.ValidationMessage(err, missingGenerateFieldsMsg), http.StatusBadRequest)
		return
	}

	plan, err := h.service.GenerateSchedule(ctx, GenerateParams{
		UserID:          req.UserID,
		Goal:            req.Goal,
		AvailableDays:   req.AvailableDays,
		AvailableTime:   req.AvailableTime,
		ExperienceLevel: req.ExperienceLevel,
	})
	if err != nil {
		writeServiceError(w, "generate schedule", err)
		return
	}

	pkg.WriteJSON(w, GenerateResponse{
		Message:  "Schedule generated successfully",
		Schedule: plan,
	}, http.StatusCreated)
}

func (h *Handler) HandleGetUserSchedules(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.schedule.user")
	defer span.End()

	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}

	entries, err := h.service.GetUserSchedules(ctx, userID)
	if err != nil {
		writeServiceError(w, "get user schedules", err)
		return
	}

	pkg.WriteJSON(w, entries, http.StatusOK)
}

func (h *Handler) HandleDeleteUserSchedules(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.schedule.user.delete")
	defer span.End()

	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}

	deleted, err := h.service.DeleteUserSchedules(ctx, userID)
	if err != nil {
		writeServiceError(w, "delete user schedules", err)
		return
	}

	pkg.WriteJSON(w, DeleteUserSchedulesResponse{
		Message: "Schedules deleted successfully",
		Deleted: deleted,
	}, http.StatusOK)
}

func (h *Handler) HandleCountUserSchedules(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.schedule.user.count")
	defer span.End()

	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}

	count, err := h.service.CountUserSchedules(ctx, userID)
	if err != nil {
		writeServiceError(w, "count user schedules", err)
		return
	}

	pkg.WriteJSON(w, CountResponse{Count: count}, http.StatusOK)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.schedule.get")
	defer span.End()

	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	entry, err := h.service.GetSchedule(ctx, id)
	if err != nil {
		writeServiceError(w, "get schedule", err)
		return
	}

	pkg.WriteJSON(w, entry, http.StatusOK)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.schedule.delete")
	defer span.End()

	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteSchedule(ctx, id); err != nil {
		writeServiceError(w, "delete schedule", err)
		return
	}

	pkg.WriteJSONMessage(w, "Schedule deleted successfully", http.StatusOK)
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := mux.Vars(r)[name]
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		pkg.WriteJSONError(w, "invalid "+name, http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func writeServiceError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, ErrInvalidGoal), errors.Is(err, ErrInvalidSchedule):
		log.Debugf("%s: %s", op, err)
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrScheduleNotFound):
		pkg.WriteJSONError(w, "schedule not found", http.StatusNotFound)
	default:
		log.Errorf("%s: %s", op, err)
		pkg.WriteJSONError(w, op+" failed", http.StatusInternalServerError)
	}
}
