package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dwikurnia/forum-api/internal/middleware/metrics"
	"github.com/dwikurnia/forum-api/internal/setup"
)

// New wires all routes. Mutating forum routes require authentication;
// thread detail is public, matching the original route guards.
func New(deps *setup.Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: deps.Config.Public.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}))

	h := deps.Handler
	needAuth := deps.AuthMiddleware.NeedAuth()

	r.Get("/health", h.Health)
	r.Method("GET", "/metrics", promhttp.Handler())

	r.Post("/users", h.PostUser)
	r.Post("/authentications", h.PostAuthentication)
	r.Put("/authentications", h.PutAuthentication)
	r.Delete("/authentications", h.DeleteAuthentication)

	r.Route("/threads", func(r chi.Router) {
		r.Get("/{threadId}", h.GetThread)

		r.Group(func(r chi.Router) {
			r.Use(needAuth)
			r.Post("/", h.PostThread)
			r.Post("/{threadId}/comments", h.PostComment)
			r.Delete("/{threadId}/comments/{commentId}", h.DeleteComment)
			r.Post("/{threadId}/comments/{commentId}/replies", h.PostReply)
			r.Delete("/{threadId}/comments/{commentId}/replies/{replyId}", h.DeleteReply)
			r.Put("/{threadId}/comments/{commentId}/likes", h.PutCommentLike)
		})
	})

	return r
}
