package autodesign

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"Millcalc/internal/auth"

	"github.com/gorilla/websocket"
)

func TestHandlerGenerate(t *testing.T) {
	h := &Handler{Runner: NewRunner(0, DefaultDefaults())}
	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"defaults", `{}`, http.StatusOK},
		{"with material", `{"material":"hematite","priority":"cost"}`, http.StatusOK},
		{"bad sizes", `{"feed_size":100,"product_size":200}`, http.StatusBadRequest},
		{"capacity overflow", `{"capacity":1.5e308}`, http.StatusBadRequest},
		{"unknown material", `{"material":"unobtainium"}`, http.StatusNotFound},
		{"malformed", `{`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/tools/design/generate", strings.NewReader(tt.body))
			h.Generate(rec, req)
			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d: %s", rec.Code, tt.status, rec.Body)
			}
			if tt.status != http.StatusOK {
				return
			}
			var resp Response
			if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if len(resp.Options) != 4 || resp.Recommended == "" {
				t.Errorf("response = %+v", resp)
			}
			if len(resp.Ranking) != 4 || resp.Ranking[0] != resp.Recommended {
				t.Errorf("ranking = %v, recommended %q", resp.Ranking, resp.Recommended)
			}
		})
	}
}

func TestHandlerStream(t *testing.T) {
	h := &Handler{Runner: NewRunner(time.Millisecond, DefaultDefaults())}
	srv := httptest.NewServer(http.HandlerFunc(h.Stream))
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	if err := conn.WriteJSON(Requirements{Capacity: 10, FeedSize: 10, ProductSize: 20}); err != nil {
		t.Fatalf("write: %v", err)
	}
	var ev Event
	if err := conn.ReadJSON(&ev); err != nil {
		t.Fatalf("read: %v", err)
	}
	if !ev.Done || ev.Error == "" {
		t.Fatalf("invalid requirements produced %+v", ev)
	}

	if err := conn.WriteJSON(Requirements{Priority: PriorityReliability}); err != nil {
		t.Fatalf("write: %v", err)
	}
	var phases int
	for {
		var ev Event
		if err := conn.ReadJSON(&ev); err != nil {
			t.Fatalf("read: %v", err)
		}
		if !ev.Done {
			phases++
			continue
		}
		if ev.Error != "" || len(ev.Options) != 4 {
			t.Fatalf("final event = %+v", ev)
		}
		break
	}
	if phases != len(Phases) {
		t.Errorf("saw %d phase events, want %d", phases, len(Phases))
	}
}

func dialStream(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(url, "http"), nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	return conn
}

func readUntilDone(t *testing.T, conn *websocket.Conn) Event {
	t.Helper()
	for {
		var ev Event
		if err := conn.ReadJSON(&ev); err != nil {
			t.Fatalf("read: %v", err)
		}
		if ev.Done {
			return ev
		}
	}
}

func TestHandlerStreamSameUserConnections(t *testing.T) {
	h := &Handler{Runner: NewRunner(100*time.Millisecond, DefaultDefaults())}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.Stream(w, r.WithContext(auth.WithUser(r.Context(), 7, "alice")))
	}))
	defer srv.Close()

	first := dialStream(t, srv.URL)
	defer first.Close()
	second := dialStream(t, srv.URL)
	defer second.Close()

	if err := first.WriteJSON(Requirements{}); err != nil {
		t.Fatalf("write: %v", err)
	}
	var ev Event
	if err := first.ReadJSON(&ev); err != nil || ev.Done {
		t.Fatalf("first event = %+v, err %v", ev, err)
	}

	if err := second.WriteJSON(Requirements{Priority: PriorityCost}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := readUntilDone(t, first); got.Error != ErrSuperseded.Error() {
		t.Fatalf("first connection final event = %+v", got)
	}
	first.Close()

	got := readUntilDone(t, second)
	if got.Error != "" || len(got.Options) != 4 {
		t.Fatalf("closing a sibling connection disturbed the live task: %+v", got)
	}
}
