package progress

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/fitplanner/internal/telemetry/tracing"
	"github.com/2beens/fitplanner/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=progress_test

type progressService interface {
	LogProgress(ctx context.Context, entry Entry) (int, error)
	GetProgress(ctx context.Context, id int) (*Entry, error)
	GetUserProgress(ctx context.Context, userID int) ([]Entry, error)
	GetProgressByDateRange(ctx context.Context, userID int, start, end time.Time) ([]Entry, error)
	UpdateProgress(ctx context.Context, id int, update Update) error
	DeleteProgress(ctx context.Context, id int) error
	GetProgressForCharts(ctx context.Context, userID int) (*ChartData, error)
	GetProgressStats(ctx context.Context, userID int) (*Stats, error)
}

type LogRequest struct {
	UserID   int      `json:"userId" validate:"required,gt=0"`
	Date     string   `json:"date" validate:"required"`
	Weight   *float64 `json:"weight" validate:"omitempty,gte=0"`
	LiftData LiftData `json:"liftData"`
	Notes    string   `json:"notes"`
}

type UpdateRequest struct {
	Weight   *float64 `json:"weight" validate:"omitempty,gte=0"`
	LiftData LiftData `json:"liftData"`
	Notes    string   `json:"notes"`
}

type LogResponse struct {
	Message    string `json:"message"`
	ProgressID int    `json:"progressId"`
}

const missingLogFieldsMsg = "userId and date are required"

type Handler struct {
	service  progressService
	validate *validator.Validate
}

func NewHandler(service progressService) *Handler {
	return &Handler{
		service:  service,
		validate: pkg.NewValidator(),
	}
}

func (h *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("", h.HandleLog).Methods("POST", "OPTIONS").Name("progress-log")
	router.HandleFunc("/user/{userId}", h.HandleGetUserProgress).Methods("GET", "OPTIONS").Name("progress-user")
	router.HandleFunc("/user/{userId}/range", h.HandleGetByDateRange).Methods("GET", "OPTIONS").Name("progress-user-range")
	router.HandleFunc("/charts/{userId}", h.HandleCharts).Methods("GET", "OPTIONS").Name("progress-charts")
	router.HandleFunc("/stats/{userId}", h.HandleStats).Methods("GET", "OPTIONS").Name("progress-stats")
	router.HandleFunc("/{id}", h.HandleGet).Methods("GET", "OPTIONS").Name("progress-get")
	router.HandleFunc("/{id}", h.HandleUpdate).Methods("PUT", "OPTIONS").Name("progress-update")
	router.HandleFunc("/{id}", h.HandleDelete).Methods("DELETE", "OPTIONS").Name("progress-delete")
}

func (h *Handler) HandleLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.log")
	defer span.End()

	var req LogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("log progress, unmarshal json params: %s", err)
		pkg.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Debugf("log progress, invalid request: %s", err)
		pkg.WriteJSONError(w, pkg.ValidationMessage(err, missingLogFieldsMsg), http.StatusBadRequest)
		return
	}

	date, err := ParseDate(req.Date)
	if err != nil {
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	id, err := h.service.LogProgress(ctx, Entry{
		UserID:   req.UserID,
		Date:     date,
		Weight:   req.Weight,
		LiftData: req.LiftData,
		Notes:    req.Notes,
	})
	if err != nil {
		writeServiceError(w, "log progress", err)
		return
	}

	pkg.WriteJSON(w, LogResponse{
		Message:    "Progress logged successfully",
		ProgressID: id,
	}, http.StatusCreated)
}

func (h *Handler) HandleGetUserProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.user")
	defer span.End()

	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}

	entries, err := h.service.GetUserProgress(ctx, userID)
	if err != nil {
		writeServiceError(w, "get user progress", err)
		return
	}

	pkg.WriteJSON(w, entries, http.StatusOK)
}

func (h *Handler) HandleGetByDateRange(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.range")
	defer span.End()

	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}

	startParam := r.URL.Query().Get("start")
	endParam := r.URL.Query().Get("end")
	if startParam == "" || endParam == "" {
		pkg.WriteJSONError(w, "start and end are required", http.StatusBadRequest)
		return
	}
	start, err := ParseDate(startParam)
	if err != nil {
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	end, err := ParseDate(endParam)
	if err != nil {
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	entries, err := h.service.GetProgressByDateRange(ctx, userID, start, end)
	if err != nil {
		writeServiceError(w, "get progress by date range", err)
		return
	}

	pkg.WriteJSON(w, entries, http.StatusOK)
}

func (h *Handler) HandleCharts(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.charts")
	defer span.End()

	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}

	chart, err := h.service.GetProgressForCharts(ctx, userID)
	if err != nil {
		writeServiceError(w, "get progress charts", err)
		return
	}

	pkg.WriteJSON(w, chart, http.StatusOK)
}

func (h *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.stats")
	defer span.End()

	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}

	stats, err := h.service.GetProgressStats(ctx, userID)
	if err != nil {
		writeServiceError(w, "get progress stats", err)
		return
	}

	pkg.WriteJSON(w, stats, http.StatusOK)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.get")
	defer span.End()

	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	entry, err := h.service.GetProgress(ctx, id)
	if err != nil {
		writeServiceError(w, "get progress", err)
		return
	}

	pkg.WriteJSON(w, entry, http.StatusOK)
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.update")
	defer span.End()

	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("update progress, unmarshal json params: %s", err)
		pkg.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		pkg.WriteJSONError(w, pkg.ValidationMessage(err, "invalid update"), http.StatusBadRequest)
		return
	}

	if err := h.service.UpdateProgress(ctx, id, Update{
		Weight:   req.Weight,
		LiftData: req.LiftData,
		Notes:    req.Notes,
	}); err != nil {
		writeServiceError(w, "update progress", err)
		return
	}

	pkg.WriteJSONMessage(w, "Progress updated successfully", http.StatusOK)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.delete")
	defer span.End()

	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteProgress(ctx, id); err != nil {
		writeServiceError(w, "delete progress", err)
		return
	}

	pkg.WriteJSONMessage(w, "Progress deleted successfully", http.StatusOK)
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)[name])
	if err != nil || id <= 0 {
		pkg.WriteJSONError(w, "invalid "+name, http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func writeServiceError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, ErrInvalidProgress):
		log.Debugf("%s: %s", op, err)
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrProgressNotFound):
		pkg.WriteJSONError(w, "progress not found", http.StatusNotFound)
	default:
		log.Errorf("%s: %s", op, err)
		pkg.WriteJSONError(w, op+" failed", http.StatusInternalServerError)
	}
}
