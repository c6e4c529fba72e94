package fitbit

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/mkovacic/fitbeat/internal/telemetry/tracing"
	"github.com/mkovacic/fitbeat/internal/workouts"
	"github.com/mkovacic/fitbeat/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=fitbit_test

const backfillBatchSize = 200

type oauthClient interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*Token, error)
}

type syncRunner interface {
	Run(ctx context.Context) (*SyncResult, error)
}

type handlerAuthRepo interface {
	GetAuth(ctx context.Context, userID string) (*Auth, error)
	UpsertAuth(ctx context.Context, auth Auth) error
	DeleteAuth(ctx context.Context, userID string) error
	SyncRunCountInRange(ctx context.Context, userID string, from, to time.Time) (int, error)
}

type workoutsCatalog interface {
	CategoryCounts(ctx context.Context) (map[workouts.Category]int, error)
	ListUnclassified(ctx context.Context, batchSize int) ([]workouts.Workout, error)
	UpdateClassification(ctx context.Context, id int, category workouts.Category, isTraining bool) error
}

type StatusResponse struct {
	Connected           bool                      `json:"connected"`
	FitbitUserID        string                    `json:"fitbitUserId,omitempty"`
	Scope               string                    `json:"scope,omitempty"`
	ExpiresAt           *time.Time                `json:"expiresAt,omitempty"`
	WorkoutsPerCategory map[workouts.Category]int `json:"workoutsPerCategory,omitempty"`
}

type SyncResponse struct {
	Ok             bool      `json:"ok"`
	SyncedWorkouts int       `json:"syncedWorkouts"`
	SyncedAt       time.Time `json:"syncedAt"`
	SyncCountToday int       `json:"syncCountToday"`
}

type BackfillResponse struct {
	Ok      bool `json:"ok"`
	Updated int  `json:"updated"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type Handler struct {
	client             oauthClient
	syncer             syncRunner
	authRepo           handlerAuthRepo
	workoutsCatalog    workoutsCatalog
	dailySyncLimit     int
	randStateGenerator func() string
	state              string
}

func NewHandler(
	client oauthClient,
	syncer syncRunner,
	authRepo handlerAuthRepo,
	workoutsCatalog workoutsCatalog,
	dailySyncLimit int,
	randStateGenerator func() string,
) *Handler {
	return &Handler{
		client:             client,
		syncer:             syncer,
		authRepo:           authRepo,
		workoutsCatalog:    workoutsCatalog,
		dailySyncLimit:     dailySyncLimit,
		randStateGenerator: randStateGenerator,
	}
}

func GenerateStateString() string {
	b := make([]byte, 16)
	rand.Read(b)
	return base64.URLEncoding.EncodeToString(b)
}

// HandleConnect redirects to the fitbit authorize page with a fresh state.
func (h *Handler) HandleConnect(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.fitbit.connect")
	defer span.End()

	h.state = h.randStateGenerator()
	redirectURL := h.client.AuthCodeURL(h.state)
	http.Redirect(w, r, redirectURL, http.StatusFound)
}

// HandleCallback finishes the OAuth flow: verifies the state, trades the
// code for tokens and stores them, then kicks off a first sync.
func (h *Handler) HandleCallback(w http.ResponseWriter, r *http.Request) {
	var err error
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.fitbit.callback")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	code := r.URL.Query().Get("code")
	state := r.URL.Query().Get("state")
	if code == "" || state == "" || h.state == "" || state != h.state {
		log.Errorf("fitbit callback: invalid state or missing code")
		http.Error(w, "invalid oauth state or missing code", http.StatusBadRequest)
		return
	}
	h.state = ""

	token, err := h.client.Exchange(ctx, code)
	if err != nil {
		log.Errorf("fitbit callback: code exchange failed: %s", err)
		http.Error(w, "code exchange failed", http.StatusForbidden)
		return
	}

	if err = h.authRepo.UpsertAuth(ctx, Auth{
		UserID:       DefaultUserID,
		FitbitUserID: token.FitbitUserID,
		Scope:        token.Scope,
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		ExpiresAt:    token.ExpiresAt,
	}); err != nil {
		log.Errorf("fitbit callback: failed to store auth: %s", err)
		http.Error(w, "failed to store auth", http.StatusInternalServerError)
		return
	}

	log.Printf("fitbit connected for user %s", token.FitbitUserID)

	// redirect to the main page
	http.Redirect(w, r, "/", http.StatusFound)

	// let the request finish, the first sync runs in a new goroutine
	go func() {
		var err error
		innerCtx, innerSpan := tracing.GlobalTracer.Start(
			context.WithoutCancel(ctx),
			"handler.fitbit.callback.initialSync",
		)
		defer func() {
			tracing.EndSpanWithErrCheck(innerSpan, err)
		}()

		result, err := h.syncer.Run(innerCtx)
		if err != nil {
			log.Errorf("fitbit initial sync failed: %s", err)
			return
		}
		log.Debugf("fitbit initial sync done, %d workouts synced", result.Synced)
	}()
}

func (h *Handler) HandleDisconnect(w http.ResponseWriter, r *http.Request) {
	var err error
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.fitbit.disconnect")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err = h.authRepo.DeleteAuth(ctx, DefaultUserID); err != nil {
		log.Errorf("fitbit disconnect failed: %s", err)
		http.Error(w, "disconnect failed", http.StatusInternalServerError)
		return
	}

	pkg.SendJsonResponse(w, http.StatusOK, StatusResponse{Connected: false})
}

func (h *Handler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	var err error
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.fitbit.status")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	auth, err := h.authRepo.GetAuth(ctx, DefaultUserID)
	if errors.Is(err, ErrNotConnected) {
		err = nil
		pkg.SendJsonResponse(w, http.StatusOK, StatusResponse{Connected: false})
		return
	}
	if err != nil {
		log.Errorf("fitbit status: failed to get auth: %s", err)
		http.Error(w, "failed to get status", http.StatusInternalServerError)
		return
	}

	counts, err := h.workoutsCatalog.CategoryCounts(ctx)
	if err != nil {
		log.Errorf("fitbit status: failed to get workout counts: %s", err)
		http.Error(w, "failed to get status", http.StatusInternalServerError)
		return
	}

	pkg.SendJsonResponse(w, http.StatusOK, StatusResponse{
		Connected:           true,
		FitbitUserID:        auth.FitbitUserID,
		Scope:               auth.Scope,
		ExpiresAt:           &auth.ExpiresAt,
		WorkoutsPerCategory: counts,
	})
}

// HandleSync triggers a manual sync, capped per reference-zone calendar
// day by counting earlier runs.
func (h *Handler) HandleSync(w http.ResponseWriter, r *http.Request) {
	var err error
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.fitbit.sync")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	now := time.Now()
	startOfToday := pkg.StartOfReferenceDay(now)
	startOfTomorrow := pkg.NextStartOfReferenceDay(now)

	syncCountToday, err := h.authRepo.SyncRunCountInRange(ctx, DefaultUserID, startOfToday, startOfTomorrow)
	if err != nil {
		log.Errorf("fitbit sync: failed to count sync runs: %s", err)
		http.Error(w, "sync failed", http.StatusInternalServerError)
		return
	}

	if syncCountToday >= h.dailySyncLimit {
		pkg.SendJsonResponse(w, http.StatusTooManyRequests, ErrorResponse{
			Error: fmt.Sprintf("daily sync limit reached (%d/day)", h.dailySyncLimit),
		})
		return
	}

	result, err := h.syncer.Run(ctx)
	if errors.Is(err, ErrNotConnected) {
		err = nil
		pkg.SendJsonResponse(w, http.StatusBadRequest, ErrorResponse{Error: "fitbit is not connected"})
		return
	}
	if err != nil {
		log.Errorf("fitbit manual sync failed: %s", err)
		http.Error(w, "sync failed", http.StatusInternalServerError)
		return
	}

	pkg.SendJsonResponse(w, http.StatusOK, SyncResponse{
		Ok:             true,
		SyncedWorkouts: result.Synced,
		SyncedAt:       result.RanAt,
		SyncCountToday: syncCountToday + 1,
	})
}

// HandleBackfill reclassifies stored workouts that are missing a
// category, in batches. The classifier is pure so reruns are harmless.
func (h *Handler) HandleBackfill(w http.ResponseWriter, r *http.Request) {
	var err error
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.fitbit.backfill")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	updated := 0
	var batch []workouts.Workout
	for {
		batch, err = h.workoutsCatalog.ListUnclassified(ctx, backfillBatchSize)
		if err != nil {
			log.Errorf("fitbit backfill: failed to list unclassified workouts: %s", err)
			http.Error(w, "backfill failed", http.StatusInternalServerError)
			return
		}
		if len(batch) == 0 {
			break
		}

		for _, workout := range batch {
			category, isTraining := workouts.Classify(workout.ActivityName)
			if err := h.workoutsCatalog.UpdateClassification(ctx, workout.ID, category, isTraining); err != nil {
				log.Errorf("fitbit backfill: failed to update workout %d: %s", workout.ID, err)
				http.Error(w, "backfill failed", http.StatusInternalServerError)
				return
			}
			updated++
		}

		if len(batch) < backfillBatchSize {
			break
		}
	}

	log.Debugf("fitbit backfill done, %d workouts reclassified", updated)
	pkg.SendJsonResponse(w, http.StatusOK, BackfillResponse{
		Ok:      true,
		Updated: updated,
	})
}
