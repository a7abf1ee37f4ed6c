package config

import (
	"net/http"
	"net/url"
	"slices"

	"github.com/gorilla/websocket"
)

type WebSocket struct {
	Upgrader websocket.Upgrader
}

// NewWebSocket accepts same-origin connections and those from
// AllowedOrigins; development mode accepts any origin.
func NewWebSocket(c *Config) *WebSocket {
	development := c.Development()
	allowed := c.AllowedOrigins

	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			if development {
				return true
			}
			origin := r.Header.Get("Origin")
			if origin == "" {
				return true
			}
			if slices.Contains(allowed, origin) {
				return true
			}
			u, err := url.Parse(origin)
			return err == nil && u.Host == r.Host
		},
	}

	return &WebSocket{Upgrader: upgrader}
}
