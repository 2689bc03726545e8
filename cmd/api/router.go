package main

import (
	"log/slog"
	"net/http"

	"github.com/crucial707/todo-api/internal/config"
	"github.com/crucial707/todo-api/internal/handlers"
	"github.com/crucial707/todo-api/internal/middleware"
	"github.com/crucial707/todo-api/internal/repo"
	"github.com/crucial707/todo-api/internal/response"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// newRouter wires the routes. Background upkeep such as the rate limiter
// sweep is registered on jobs when it is non-nil.
func newRouter(gdb *gorm.DB, cfg config.Config, jobs *cron.Cron) http.Handler {
	msgs := response.For(cfg.Locale)
	secret := []byte(cfg.JWTSecret)

	userRepo := repo.NewUserRepo(gdb)
	todoRepo := repo.NewTodoRepo(gdb)

	userHandler := &handlers.UserHandler{Repo: userRepo, Messages: msgs}
	todoHandler := &handlers.TodoHandler{Repo: todoRepo, Messages: msgs}
	authHandler := &handlers.AuthHandler{
		UserRepo: userRepo,
		Secret:   secret,
		TokenTTL: cfg.TokenTTL(),
		Messages: msgs,
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog)
	r.Use(middleware.Recoverer(msgs))
	r.Use(middleware.Prometheus)
	r.Use(middleware.SecurityHeaders(cfg.IsProd()))
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	// Health (no auth)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(middleware.MaxBytes(cfg.MaxBodyBytes, msgs))

		// Public
		r.Group(func(r chi.Router) {
			if cfg.RateLimitEnabled {
				limiter := middleware.SignupRateLimiter(msgs)
				if jobs != nil {
					if _, err := limiter.ScheduleSweep(jobs, cfg.RateLimitSweep, cfg.RateLimitIdle); err != nil {
						slog.Error("rate limiter sweep not scheduled", "spec", cfg.RateLimitSweep, "error", err)
					}
				}
				r.Use(limiter.Middleware)
			}
			r.Post("/users", userHandler.Register)
			r.Post("/auth/login", authHandler.Login)
		})

		// Todos; authenticated and owner-checked only when enforced
		r.Group(func(r chi.Router) {
			deleteTodo := http.Handler(http.HandlerFunc(todoHandler.DeleteTodo))
			if cfg.EnforceTodoOwnership {
				r.Use(middleware.Authenticate(secret, userRepo, msgs))
				deleteTodo = middleware.RequireTodoOwner(todoRepo, msgs)(deleteTodo)
			}
			r.Post("/todos", todoHandler.CreateTodo)
			r.Method(http.MethodDelete, "/todos/{id}", deleteTodo)
		})
	})

	return r
}
