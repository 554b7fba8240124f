// Package api exposes the media backend over HTTP using chi.
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/jwtauth"
	"github.com/go-chi/render"

	"github.com/tendant/media-backend/pkg/mediabackend"
)

// tokenTTL is how long a login token stays valid.
const tokenTTL = 24 * time.Hour

// Server wires the domain service into HTTP routes.
type Server struct {
	service   mediabackend.Service
	tokenAuth *jwtauth.JWTAuth
	origins   []string
}

// NewServer creates an HTTP server wrapper around the service. The
// jwtSecret signs login tokens; origins configures CORS.
func NewServer(service mediabackend.Service, jwtSecret string, origins []string) *Server {
	return &Server{
		service:   service,
		tokenAuth: jwtauth.New("HS256", []byte(jwtSecret), nil),
		origins:   origins,
	}
}

// Routes builds the router.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", s.handleHealth)

	// Ads are served at the root, not under /api.
	r.Route("/ads", func(r chi.Router) {
		r.Post("/", s.handleCreateAd)
		r.Get("/", s.handleListAds)
		r.Get("/{id}", s.handleGetAd)
		r.Put("/{id}", s.handleUpdateAd)
		r.Delete("/{id}", s.handleDeleteAd)
	})

	r.Route("/api", func(r chi.Router) {
		// Articles
		r.Post("/articles", s.handleCreateArticle)
		r.Get("/articles", s.handleListArticles)
		r.Get("/articles/trending", s.handleListTrendingArticles)
		r.Get("/articles/{id}", s.handleGetArticle)
		r.Put("/articles/{id}", s.handleUpdateArticle)
		r.Delete("/articles/{id}", s.handleDeleteArticle)

		// About info
		r.Post("/about", s.handleReplaceAbout)
		r.Get("/about", s.handleGetAbout)
		r.Put("/about/{id}", s.handleUpdateAbout)

		// Live stream
		r.Post("/live", s.handleCreateLiveStream)
		r.Get("/live", s.handleGetActiveLiveStream)
		r.Put("/live/{id}", s.handleUpdateLiveStream)
		r.Delete("/live/{id}", s.handleDeleteLiveStream)

		// Inquiries
		r.Post("/hire-studio-request", s.handleCreateHireRequest)
		r.Get("/hire-studio-requests", s.handleListHireRequests)
		r.Post("/ads-quote-inquiry", s.handleCreateAdsInquiry)
		r.Get("/ads-quote-inquiries", s.handleListAdsInquiries)

		// Accounts
		r.Post("/register", s.handleRegister)
		r.Post("/login", s.handleLogin)
		r.Get("/user/{id}", s.handleGetUser)
		r.Put("/user/{id}", s.handleUpdateUser)

		// Token-protected
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(s.tokenAuth))
			r.Use(jwtauth.Authenticator)
			r.Get("/users", s.handleListUsers)
		})
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, envelope{"status": "healthy"})
}
