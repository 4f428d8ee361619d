package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

const (
	SessionCookieName = "abc_session"
	ContextSessionID  = "session_id"
)

func NewCookieStore(secret string, idleTimeout time.Duration, secure bool) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(idleTimeout.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

// SessionMiddleware gives every browser a signed session id cookie; the
// session state itself lives server-side under that id.
func SessionMiddleware(store sessions.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := store.Get(c.Request, SessionCookieName)
		if err != nil {
			zap.S().Debugw("replacing unreadable session cookie", "error", err)
		}

		sid, ok := session.Values["sid"].(string)
		if !ok || sid == "" {
			sid = uuid.NewString()
			session.Values["sid"] = sid
		}

		if err := session.Save(c.Request, c.Writer); err != nil {
			zap.S().Errorw("failed to save session cookie", "error", err)
		}

		c.Set(ContextSessionID, sid)
		c.Next()
	}
}

func SessionID(c *gin.Context) string {
	return c.GetString(ContextSessionID)
}
