package workouts

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/mkovacic/fitbeat/internal/telemetry/tracing"
	"github.com/mkovacic/fitbeat/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=workouts_mocks_test.go -package=workouts_test

type workoutsRepo interface {
	List(ctx context.Context, page, size int) (_ []Workout, total int, err error)
	CategoryCounts(ctx context.Context) (map[Category]int, error)
	CountTrainingSince(ctx context.Context, since time.Time) (int, error)
	CountByCategorySince(ctx context.Context, category Category, since time.Time) (int, error)
}

type ListResponse struct {
	Workouts []Workout `json:"workouts"`
	Total    int       `json:"total"`
}

type StatsResponse struct {
	WorkoutsPerCategory map[Category]int `json:"workoutsPerCategory"`
	TrainingLast7Days   int              `json:"trainingLast7Days"`
	StrengthLast7Days   int              `json:"strengthLast7Days"`
	CardioLast7Days     int              `json:"cardioLast7Days"`
}

type Handler struct {
	repo workoutsRepo
}

func NewHandler(repo workoutsRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	vars := mux.Vars(r)
	pageStr := vars["page"]
	page, err := strconv.Atoi(pageStr)
	if err != nil {
		log.Tracef("handle list workouts, from <page> param: %s", err)
		http.Error(w, "parse form error, parameter <page>", http.StatusBadRequest)
		return
	}
	sizeStr := vars["size"]
	size, err := strconv.Atoi(sizeStr)
	if err != nil {
		log.Tracef("handle list workouts, from <size> param: %s", err)
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

	workouts, total, err := handler.repo.List(ctx, page, size)
	if err != nil {
		log.Errorf("failed to list workouts: %s", err)
		http.Error(w, "failed to list workouts", http.StatusInternalServerError)
		return
	}
	if workouts == nil {
		workouts = []Workout{}
	}

	listResponseJson, err := json.Marshal(ListResponse{
		Workouts: workouts,
		Total:    total,
	})
	if err != nil {
		log.Errorf("failed to marshal workouts list response: %s", err)
		http.Error(w, "failed to list workouts", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, listResponseJson)
}

func (handler *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.stats")
	defer span.End()

	counts, err := handler.repo.CategoryCounts(ctx)
	if err != nil {
		log.Errorf("failed to get workout category counts: %s", err)
		http.Error(w, "failed to get workout stats", http.StatusInternalServerError)
		return
	}

	weekAgo := time.Now().AddDate(0, 0, -7)
	trainingLastWeek, err := handler.repo.CountTrainingSince(ctx, weekAgo)
	if err != nil {
		log.Errorf("failed to count training workouts: %s", err)
		http.Error(w, "failed to get workout stats", http.StatusInternalServerError)
		return
	}
	strengthLastWeek, err := handler.repo.CountByCategorySince(ctx, CategoryStrength, weekAgo)
	if err != nil {
		log.Errorf("failed to count strength workouts: %s", err)
		http.Error(w, "failed to get workout stats", http.StatusInternalServerError)
		return
	}
	cardioLastWeek, err := handler.repo.CountByCategorySince(ctx, CategoryCardio, weekAgo)
	if err != nil {
		log.Errorf("failed to count cardio workouts: %s", err)
		http.Error(w, "failed to get workout stats", http.StatusInternalServerError)
		return
	}

	statsJson, err := json.Marshal(StatsResponse{
		WorkoutsPerCategory: counts,
		TrainingLast7Days:   trainingLastWeek,
		StrengthLast7Days:   strengthLastWeek,
		CardioLast7Days:     cardioLastWeek,
	})
	if err != nil {
		log.Errorf("failed to marshal workout stats: %s", err)
		http.Error(w, "failed to get workout stats", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, statsJson)
}
