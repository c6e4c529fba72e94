package reminders

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/mkovacic/fitbeat/internal/telemetry/tracing"
	"github.com/mkovacic/fitbeat/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=reminders_test

type lifecycleRunner interface {
	Run(ctx context.Context, now time.Time) (*RunResult, error)
}

type remindersCatalog interface {
	ListPage(ctx context.Context, subjectKey string, page, size int) (_ []Reminder, total int, err error)
	UpdateStatus(ctx context.Context, id, subjectKey, status string) error
}

type ListResponse struct {
	Reminders []Reminder `json:"reminders"`
	Total     int        `json:"total"`
}

type DismissRequest struct {
	ID string `json:"id"`
}

type DismissResponse struct {
	Ok bool `json:"ok"`
}

type Handler struct {
	manager lifecycleRunner
	catalog remindersCatalog
}

func NewHandler(manager lifecycleRunner, catalog remindersCatalog) *Handler {
	return &Handler{
		manager: manager,
		catalog: catalog,
	}
}

// HandleTrainingCheck runs one lifecycle check. Wired behind the cron
// auth, but harmless to trigger manually since creation is idempotent
// per day.
func (handler *Handler) HandleTrainingCheck(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.reminders.trainingCheck")
	defer span.End()

	result, err := handler.manager.Run(ctx, time.Now())
	if err != nil {
		log.Errorf("training check failed: %s", err)
		http.Error(w, "training check failed", http.StatusInternalServerError)
		return
	}

	pkg.SendJsonResponse(w, http.StatusOK, result)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.reminders.list")
	defer span.End()

	vars := mux.Vars(r)
	page, err := strconv.Atoi(vars["page"])
	if err != nil {
		log.Tracef("handle list reminders, from <page> param: %s", err)
		http.Error(w, "parse form error, parameter <page>", http.StatusBadRequest)
		return
	}
	size, err := strconv.Atoi(vars["size"])
	if err != nil {
		log.Tracef("handle list reminders, from <size> param: %s", err)
		http.Error(w, "parse form error, parameter <size>", http.StatusBadRequest)
		return
	}

	if page < 1 {
		http.Error(w, "invalid page (has to be non-zero value)", http.StatusBadRequest)
		return
	}
	if size < 1 {
		http.Error(w, "invalid size (has to be non-zero value)", http.StatusBadRequest)
		return
	}

	foundReminders, total, err := handler.catalog.ListPage(ctx, DefaultSubjectKey, page, size)
	if err != nil {
		log.Errorf("failed to list reminders: %s", err)
		http.Error(w, "failed to list reminders", http.StatusInternalServerError)
		return
	}
	if foundReminders == nil {
		foundReminders = []Reminder{}
	}

	pkg.SendJsonResponse(w, http.StatusOK, ListResponse{
		Reminders: foundReminders,
		Total:     total,
	})
}

func (handler *Handler) HandleDismiss(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.reminders.dismiss")
	defer span.End()

	var dismissRequest DismissRequest
	if err := json.NewDecoder(r.Body).Decode(&dismissRequest); err != nil {
		log.Tracef("dismiss reminder, unmarshal json params: %s", err)
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	if dismissRequest.ID == "" {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	err := handler.catalog.UpdateStatus(ctx, dismissRequest.ID, DefaultSubjectKey, StatusDismissed)
	if errors.Is(err, ErrReminderNotFound) {
		http.Error(w, "reminder not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("failed to dismiss reminder %s: %s", dismissRequest.ID, err)
		http.Error(w, "failed to dismiss reminder", http.StatusInternalServerError)
		return
	}

	log.Printf("reminder dismissed: %s", dismissRequest.ID)
	pkg.SendJsonResponse(w, http.StatusOK, DismissResponse{Ok: true})
}
