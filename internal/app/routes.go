package app

import (
	"net/http"

	"github.com/vancomm/minesweeper/internal/handlers"
	"github.com/vancomm/minesweeper/internal/middleware"
)

func (a *App) loadRoutes() {
	game := handlers.NewGameHandler(a.log, a.ws)
	withSession := middleware.Session(a.log, a.cookies, a.store)

	a.router.Handle("GET /", handlers.Static())
	a.router.Handle("GET /game", withSession(http.HandlerFunc(game.Fetch)))
	a.router.Handle("POST /game/open", withSession(http.HandlerFunc(game.Open)))
	a.router.Handle("POST /game/restart", withSession(http.HandlerFunc(game.Restart)))
	a.router.Handle("POST /game/cheat", withSession(http.HandlerFunc(game.Cheat)))
	a.router.Handle("GET /game/connect", withSession(http.HandlerFunc(game.ConnectWS)))
}
