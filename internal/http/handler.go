package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"activity-signup-service/internal/model"
	"activity-signup-service/internal/service"
)

// ActivityService описывает бизнес-операции, которые нужны HTTP-слою.
type ActivityService interface {
	ListActivities(ctx context.Context) (model.Catalog, error)
	Signup(ctx context.Context, activityName, email string) (string, error)
	Unregister(ctx context.Context, activityName, email string) (string, error)
}

// Config задаёт окружение роутера: статику, CORS и ручку метрик.
type Config struct {
	StaticDir      string
	AllowedOrigins []string
	Metrics        http.Handler
}

type Handler struct {
	Activities ActivityService
	Log        *slog.Logger
	cfg        Config
}

func NewHandler(activities ActivityService, log *slog.Logger, cfg Config) *Handler {
	return &Handler{
		Activities: activities,
		Log:        log,
		cfg:        cfg,
	}
}

func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.allowedOrigins(),
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/", h.handleRoot)
	r.Get("/health", h.handleHealth)
	if h.cfg.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", h.cfg.Metrics)
	}
	if h.cfg.StaticDir != "" {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(h.cfg.StaticDir))))
	}

	r.Route("/activities", func(r chi.Router) {
		r.Get("/", h.handleActivitiesList)
		r.Post("/{"+activityNameParam+"}/signup", h.handleSignup)
		r.Post("/{"+activityNameParam+"}/unregister", h.handleUnregister)
	})

	return r
}

func (h *Handler) allowedOrigins() []string {
	if len(h.cfg.AllowedOrigins) == 0 {
		return []string{"*"}
	}
	return h.cfg.AllowedOrigins
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, handlerName string, err error) {
	appErr := service.AsAppError(err)

	level := slog.LevelWarn
	if appErr.Status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	h.Log.Log(r.Context(), level, "handler error",
		slog.String("request_id", middleware.GetReqID(r.Context())),
		slog.String("handler", handlerName),
		slog.String("code", appErr.Code),
		slog.String("message", appErr.Message),
		slog.Any("err", appErr.Err),
	)

	writeJSON(w, appErr.Status, errorResponse{Detail: appErr.Message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (h *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}

// logRequests пишет в slog одну строку на запрос.
func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		h.Log.Info("http request",
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Int("bytes", ww.BytesWritten()),
			slog.Duration("duration", time.Since(start)),
		)
	})
}
