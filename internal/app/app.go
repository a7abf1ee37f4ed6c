package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/middleware"
	"github.com/vancomm/minesweeper/internal/session"
)

type App struct {
	log     *logrus.Logger
	config  *config.Config
	router  *http.ServeMux
	store   *session.Store
	cookies *config.Cookies
	ws      *config.WebSocket
}

func New(c *config.Config, log *logrus.Logger) (*App, error) {
	j, err := config.NewJWT(c)
	if err != nil {
		return nil, err
	}

	app := &App{
		log:     log,
		config:  c,
		router:  http.NewServeMux(),
		store:   session.NewStore(session.NewRand(), log),
		cookies: config.NewCookies(c, j),
		ws:      config.NewWebSocket(c),
	}
	app.loadRoutes()

	return app, nil
}

func (a *App) Handler() http.Handler {
	return middleware.Wrap(
		a.router,
		middleware.Cors(a.config.AllowedOrigins),
		middleware.Logging(a.log),
	)
}

// Start serves until ctx is done, then shuts the server down.
func (a *App) Start(ctx context.Context) error {
	server := &http.Server{
		Addr:    a.config.Addr,
		Handler: a.Handler(),
		BaseContext: func(l net.Listener) context.Context {
			return ctx
		},
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.log.Infof("ready to serve @ %s", a.config.Addr)
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to listen and serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		sCtx, cancel := context.WithTimeout(context.Background(), time.Second*15)
		defer cancel()
		return server.Shutdown(sCtx)
	})
	g.Go(func() error {
		a.sweep(gCtx)
		return nil
	})

	return g.Wait()
}

// sweep drops idle sessions until ctx is done.
func (a *App) sweep(ctx context.Context) {
	ttl := a.config.Session.TTL.Duration
	ticker := time.NewTicker(max(ttl/4, time.Second))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			a.store.Sweep(now.Add(-ttl))
		}
	}
}
