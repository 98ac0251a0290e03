package web

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter wires the admin console routes
func NewRouter(h *Handlers) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("healthy"))
	})

	// Public auth routes
	r.Get("/signin", h.SigninPage)
	r.Post("/signin", h.Signin)
	r.Get("/logout", h.Logout)
	r.Get("/signup", h.SignupPage)
	r.Post("/signup", h.Signup)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/signin", http.StatusSeeOther)
	})

	// Admin console, gated behind a valid admin session
	r.Route("/admin", func(r chi.Router) {
		r.Use(RequireAdmin(h.sessions))

		r.Get("/", h.Dashboard)
		r.Get("/edit-user/{id}", h.EditUserPage)
		r.Post("/edit-user/{id}", h.EditUser)
		r.Get("/delete-account/{id}", h.DeleteAccount)
		r.Get("/deposit", h.DepositPage)
		r.Post("/deposit", h.Deposit)
		r.Post("/credit-account", h.CreditAccount)
		r.Get("/change-password", h.ChangePasswordPage)
		r.Post("/change-password", h.ChangePassword)
		r.Get("/site-settings", h.SiteSettingsPage)
		r.Post("/site-settings", h.SiteSettings)
	})

	return r
}
