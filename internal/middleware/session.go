package middleware

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/session"
)

type CtxKey int

const (
	CtxSession CtxKey = iota
)

// Session attaches the caller's game session to the request context,
// creating one (and its cookie) when the cookie is missing, invalid or
// refers to a session that has been swept. Cookies past half their
// lifetime are re-issued.
func Session(log logrus.FieldLogger, cookies *config.Cookies, store *session.Store) Middleware {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var sess *session.Session

			claims, err := cookies.ParseSessionClaims(r)
			if err == nil {
				sess, err = store.Get(claims.SessionId)
			}
			switch {
			case err != nil:
				log.WithError(err).Debug("issuing new session")
				if sess, err = store.Create(); err != nil {
					log.WithError(err).Error("unable to create session")
					w.WriteHeader(http.StatusInternalServerError)
					return
				}
				if err := cookies.Refresh(w, sess.ID()); err != nil {
					store.Delete(sess.ID())
					cookies.Clear(w)
					log.WithError(err).Error("unable to sign session cookie")
					w.WriteHeader(http.StatusInternalServerError)
					return
				}
			case cookies.Stale(claims):
				if err := cookies.Refresh(w, sess.ID()); err != nil {
					log.WithField("session", sess.ID()).WithError(err).Warn("unable to refresh session cookie")
				}
			}

			ctx := context.WithValue(r.Context(), CtxSession, sess)
			h.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func SessionFrom(ctx context.Context) (*session.Session, bool) {
	sess, ok := ctx.Value(CtxSession).(*session.Session)
	return sess, ok
}
