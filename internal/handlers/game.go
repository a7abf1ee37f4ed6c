package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/middleware"
	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/session"
)

type GameHandler struct {
	log logrus.FieldLogger
	ws  *config.WebSocket
}

func NewGameHandler(log logrus.FieldLogger, ws *config.WebSocket) *GameHandler {
	return &GameHandler{log: log, ws: ws}
}

func (g GameHandler) session(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	sess, ok := middleware.SessionFrom(r.Context())
	if !ok {
		w.WriteHeader(http.StatusInternalServerError)
		g.log.Error("request reached game handler without a session")
	}
	return sess, ok
}

func (g GameHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	sess, ok := g.session(w, r)
	if !ok {
		return
	}
	sendJSONOrLog(w, g.log, sess.Frame())
}

func (g GameHandler) Open(w http.ResponseWriter, r *http.Request) {
	sess, ok := g.session(w, r)
	if !ok {
		return
	}

	pos, err := ParsePositionDTO(r.URL.Query())
	if err != nil {
		sendErrorOrLog(w, g.log, http.StatusBadRequest, err)
		return
	}

	frame, err := sess.OnCellClicked(pos.Row, pos.Col)
	if errors.Is(err, mines.ErrOutOfBounds) {
		sendErrorOrLog(w, g.log, http.StatusBadRequest, err)
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.log.WithError(err).Error("unable to open cell")
		return
	}

	sendJSONOrLog(w, g.log, frame)
}

func (g GameHandler) Restart(w http.ResponseWriter, r *http.Request) {
	sess, ok := g.session(w, r)
	if !ok {
		return
	}
	sendJSONOrLog(w, g.log, sess.OnRestartRequested())
}

func (g GameHandler) Cheat(w http.ResponseWriter, r *http.Request) {
	sess, ok := g.session(w, r)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		sendErrorOrLog(w, g.log, http.StatusBadRequest, err)
		return
	}
	dto, err := ParseCheatDTO(r.PostForm)
	if err != nil {
		sendErrorOrLog(w, g.log, http.StatusBadRequest, err)
		return
	}

	sendJSONOrLog(w, g.log, sess.OnCheatAttempt(dto.Password))
}

// ConnectWS reads newline-separated commands and answers each message with
// the reply to its last command.
func (g GameHandler) ConnectWS(w http.ResponseWriter, r *http.Request) {
	sess, ok := g.session(w, r)
	if !ok {
		return
	}

	c, err := g.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.log.WithError(err).Error("unable to upgrade")
		return
	}
	defer c.Close()

	log := g.log.WithField("session", sess.ID())

	for {
		mt, message, err := c.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.WithError(err).Warn("abnormal ws break")
			}
			break
		}
		if mt != websocket.TextMessage {
			break
		}

		text := string(message)
		log.Debugf("\t> %s", strings.TrimSpace(text))

		reply := session.Reply{Frame: sess.Frame()}
		var cmdErr error
		for _, line := range session.ByLine(text) {
			if strings.TrimSpace(line) == "" {
				continue
			}
			if reply, cmdErr = sess.Execute(line); cmdErr != nil {
				break
			}
		}

		var out any = reply
		if cmdErr != nil {
			out = wrapError(cmdErr)
		}
		if err := c.WriteJSON(out); err != nil {
			log.WithError(err).Error("unable to write json")
			break
		}
		log.Debug("\t< <frame>")
	}
}
