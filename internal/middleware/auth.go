package middleware

import (
	"net/http"
	"strings"

	"github.com/mkovacic/fitbeat/internal/auth"
	"github.com/mkovacic/fitbeat/internal/telemetry/tracing"
	"github.com/mkovacic/fitbeat/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

type AuthMiddlewareHandler struct {
	cronSecret           string
	loginChecker         *auth.LoginChecker
	allowedPaths         map[string]bool
	allowedPathsPrefixes []string
}

func NewAuthMiddlewareHandler(
	cronSecret string,
	loginChecker *auth.LoginChecker,
) *AuthMiddlewareHandler {
	return &AuthMiddlewareHandler{
		cronSecret:   cronSecret,
		loginChecker: loginChecker,
		allowedPaths: map[string]bool{
			// fitbit handler:
			"/fitbit/connect":  true,
			"/fitbit/callback": true,
			"/fitbit/status":   true,

			// misc:
			"/":        true,
			"/version": true,

			// login-logout:
			"/a/login":  true,
			"/a/logout": true,
		},
		allowedPathsPrefixes: []string{
			"/reminders/list/",
			"/workouts/list/",
		},
	}
}

func (h *AuthMiddlewareHandler) pathIsAlwaysAllowed(path string) bool {
	if h.allowedPaths[path] {
		return true
	}
	for _, prefix := range h.allowedPathsPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			if r.Method == http.MethodOptions {
				w.Header().Add("Allow", "GET, POST, OPTIONS")
				w.WriteHeader(http.StatusOK)
				span.SetStatus(codes.Ok, "options-ok")
				return
			}

			if h.pathIsAlwaysAllowed(r.URL.Path) {
				span.SetStatus(codes.Ok, "ok")
				next.ServeHTTP(w, r)
				return
			}

			// scheduled trigger endpoints: the scheduler authenticates with
			// a shared secret, not a login session
			if strings.HasPrefix(r.URL.Path, "/cron/") {
				if !h.cronRequestIsAuthorized(r) {
					reqIp, _ := pkg.ReadUserIP(r)
					log.Errorf("unauthorized cron request for %s detected from %s", r.URL.Path, reqIp)
					http.Error(w, "no can do", http.StatusUnauthorized)
					span.SetStatus(codes.Error, "cron-unauthorized")
					return
				}
				span.SetStatus(codes.Ok, "ok")
				next.ServeHTTP(w, r)
				return
			}

			authToken := r.Header.Get("X-FITBEAT-TOKEN")
			if authToken == "" {
				log.Tracef("[missing token] [auth middleware] unauthorized => %s", r.URL.Path)
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "missing-auth-token")
				return
			}

			isLogged, err := h.loginChecker.IsLogged(ctx, authToken)
			if err != nil {
				log.Errorf("[failed login check] => %s: %s", r.URL.Path, err)
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "check-logged-err")
				span.RecordError(err)
				return
			}
			if !isLogged {
				log.Tracef("[invalid token] [auth middleware] unauthorized => %s", r.URL.Path)
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "not-logged")
				return
			}

			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r)
		})
	}
}

func (h *AuthMiddlewareHandler) cronRequestIsAuthorized(r *http.Request) bool {
	if h.cronSecret == "" {
		return false
	}

	if r.Header.Get("X-Cron-Secret") == h.cronSecret {
		return true
	}

	authHeader := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(authHeader, " ")
	if !found {
		return false
	}
	return strings.EqualFold(scheme, "bearer") && token == h.cronSecret
}
