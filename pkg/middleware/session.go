package middleware

import (
	"net/http"
	"time"

	"movie-reviews/pkg/utils"

	"go.uber.org/zap"
)

// SessionCookie names the cookie carrying the form session id.
const SessionCookie = "movie_reviews_session"

// Session makes sure every request carries a session id, issuing a new
// cookie when the request has none or an unparseable one. The id is put on
// the request context.
func Session(ttl time.Duration, log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var sessionID string
			if c, err := r.Cookie(SessionCookie); err == nil && utils.IsSessionID(c.Value) {
				sessionID = c.Value
			} else {
				sessionID = utils.GenerateSessionID()
				log.Debug("New session issued", zap.String("session_id", sessionID))
			}

			http.SetCookie(w, &http.Cookie{
				Name:     SessionCookie,
				Value:    sessionID,
				Path:     "/",
				MaxAge:   int(ttl.Seconds()),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})

			next.ServeHTTP(w, r.WithContext(utils.SetSessionContext(r.Context(), sessionID)))
		})
	}
}
