package web

import (
	"encoding/base64"
	"net/http"
)

// Flash message cookie names. Each is consumed on the first read.
const (
	flashErrorCookie   = "error_msg"
	flashSuccessCookie = "success_msg"
)

// Flash carries one-shot feedback from a redirect to the next page render
type Flash struct {
	Error   string
	Success string
}

func setFlashCookie(w http.ResponseWriter, name, message string) {
	http.SetCookie(w, &http.Cookie{
		Name:  name,
		Value: base64.URLEncoding.EncodeToString([]byte(message)),
		Path:  "/",
		// One navigation is enough; the cookie is also cleared on read
		MaxAge:   60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// flashError queues an error message for the next rendered page
func flashError(w http.ResponseWriter, message string) {
	setFlashCookie(w, flashErrorCookie, message)
}

// flashSuccess queues a success message for the next rendered page
func flashSuccess(w http.ResponseWriter, message string) {
	setFlashCookie(w, flashSuccessCookie, message)
}

func popFlashCookie(w http.ResponseWriter, r *http.Request, name string) string {
	cookie, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	decoded, err := base64.URLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return ""
	}
	return string(decoded)
}

// popFlash reads and clears both flash cookies
func popFlash(w http.ResponseWriter, r *http.Request) Flash {
	return Flash{
		Error:   popFlashCookie(w, r, flashErrorCookie),
		Success: popFlashCookie(w, r, flashSuccessCookie),
	}
}
