package web

import (
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/godwinide/peakedge/service"
)

// SigninPage renders the signin form
func (h *Handlers) SigninPage(w http.ResponseWriter, r *http.Request) {
	render(w, "signin.html", map[string]interface{}{
		"Flash": popFlash(w, r),
	})
}

// Signin verifies credentials and opens a session
func (h *Handlers) Signin(w http.ResponseWriter, r *http.Request) {
	email := r.FormValue("email")
	password := r.FormValue("password")

	account, err := h.accounts.Authenticate(r.Context(), email, password)
	if err != nil {
		if !errors.Is(err, service.ErrInvalidCredentials) {
			log.WithError(err).Error("Signin failed")
		}
		flashError(w, "Invalid email or password")
		http.Redirect(w, r, "/signin", http.StatusSeeOther)
		return
	}

	if err := h.sessions.Issue(w, account.ID, account.IsAdmin); err != nil {
		log.WithError(err).Error("Failed to issue session")
		flashError(w, "Something went wrong, please try again")
		http.Redirect(w, r, "/signin", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// Logout ends the session
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(w)
	http.Redirect(w, r, "/signin", http.StatusSeeOther)
}

// SignupPage renders the customer registration form
func (h *Handlers) SignupPage(w http.ResponseWriter, r *http.Request) {
	render(w, "signup.html", map[string]interface{}{
		"Flash": popFlash(w, r),
		"Form":  service.RegisterInput{},
	})
}

// Signup registers a new customer account. Validation failures re-render the
// form with the submitted values so the customer does not retype everything.
func (h *Handlers) Signup(w http.ResponseWriter, r *http.Request) {
	input := service.RegisterInput{
		Username:         r.FormValue("username"),
		FullName:         r.FormValue("fullname"),
		Email:            r.FormValue("email"),
		Phone:            r.FormValue("phone"),
		Gender:           r.FormValue("gender"),
		Country:          r.FormValue("country"),
		Currency:         r.FormValue("currency"),
		SecurityQuestion: r.FormValue("security_question"),
		SecurityAnswer:   r.FormValue("security_answer"),
		Password:         r.FormValue("password"),
		ConfirmPassword:  r.FormValue("password2"),
		RegisteredIP:     clientIP(r),
	}

	_, err := h.accounts.Register(r.Context(), input)
	if err != nil {
		message := "Registration failed, please try again"
		if errors.Is(err, service.ErrValidation) {
			message = err.Error()
		} else {
			log.WithError(err).Error("Signup failed")
		}
		render(w, "signup.html", map[string]interface{}{
			"Flash": Flash{Error: message},
			"Form":  input,
		})
		return
	}

	flashSuccess(w, "Account created, you can now sign in")
	http.Redirect(w, r, "/signin", http.StatusSeeOther)
}
