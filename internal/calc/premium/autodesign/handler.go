package autodesign

import (
	"context"
	"errors"
	"net/http"
	"time"

	"Millcalc/internal/auth"
	"Millcalc/internal/catalog/material"
	"Millcalc/internal/httpx"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	Runner *Runner
}

// Response is the synchronous generation result.
type Response struct {
	Requirements Requirements       `json:"requirements"`
	Material     *material.Material `json:"material,omitempty"`
	Baseline     Baseline           `json:"baseline"`
	Weights      Weights            `json:"weights"`
	Options      []Option           `json:"options"`
	Recommended  string             `json:"recommended"`
	// Ranking lists option ids best first; Options keep archetype order.
	Ranking []string `json:"ranking"`
}

// Build normalizes req, resolves its material and returns ranked options.
func Build(req Requirements, d Defaults) (Response, error) {
	req = req.Normalize(d)
	m, err := material.Lookup(req.Material)
	if err != nil {
		return Response{}, err
	}
	options, err := Generate(req, m)
	if err != nil {
		return Response{}, err
	}
	Rank(options, req)
	best, _ := Recommended(options)
	ranking := make([]string, 0, len(options))
	for _, o := range ByScore(options) {
		ranking = append(ranking, o.ID)
	}
	return Response{
		Requirements: req,
		Material:     m,
		Baseline:     baseline(req, m),
		Weights:      WeightsFor(req),
		Options:      options,
		Recommended:  best.ID,
		Ranking:      ranking,
	}, nil
}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var req Requirements
	if !httpx.Decode(w, r, &req) {
		return
	}
	resp, err := Build(req, h.Runner.Defaults)
	if err != nil {
		writeError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, resp)
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

const writeWait = 10 * time.Second

// Stream runs generation over a websocket. Every Requirements message
// starts a task; a message arriving mid-task supersedes the running one.
func (h *Handler) Stream(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Warn("websocket upgrade failed")
		return
	}
	defer conn.Close()

	owner := ownerKey(r)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	// Only this connection's task is cancelled; a task started by another
	// connection of the same owner keeps running.
	var taskID string
	defer func() { h.Runner.Cancel(owner, taskID) }()

	reqs := make(chan Requirements)
	go func() {
		defer close(reqs)
		for {
			var req Requirements
			if err := conn.ReadJSON(&req); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					log.WithError(err).Warn("design stream read failed")
				}
				return
			}
			select {
			case reqs <- req:
			case <-ctx.Done():
				return
			}
		}
	}()

	var events <-chan Event
	for {
		select {
		case req, ok := <-reqs:
			if !ok {
				return
			}
			m, err := material.Lookup(req.Material)
			if err == nil {
				var id string
				id, events, err = h.Runner.Start(ctx, owner, req, m)
				if err == nil {
					taskID = id
				}
			}
			if err != nil {
				events = nil
				if !send(conn, Event{Done: true, Error: err.Error()}) {
					return
				}
			}
		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			if !send(conn, ev) {
				return
			}
		}
	}
}

func send(conn *websocket.Conn, ev Event) bool {
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteJSON(ev); err != nil {
		log.WithError(err).Warn("design stream write failed")
		return false
	}
	return true
}

func ownerKey(r *http.Request) string {
	if login, ok := auth.Login(r.Context()); ok {
		return "user:" + login
	}
	return "addr:" + r.RemoteAddr
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidRequirements):
		log.WithError(err).Warn("rejected design requirements")
		httpx.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, material.ErrNotFound):
		httpx.Error(w, http.StatusNotFound, err.Error())
	default:
		log.WithError(err).Error("design generation failed")
		httpx.Error(w, http.StatusInternalServerError, "Internal error")
	}
}
