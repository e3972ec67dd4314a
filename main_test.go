package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"Millcalc/internal/config"

	"github.com/gorilla/mux"
)

type noUsers struct{}

func (noUsers) CreateUser(context.Context, string, string, string) (int, error) { return 1, nil }
func (noUsers) GetByLogin(context.Context, string) (int, string, error)       { return 0, "", nil }

func newServer(t *testing.T) http.Handler {
	t.Helper()
	cfg, err := config.FromIni([]byte("[limits]\nrate = 1000\nburst = 1000\n"))
	if err != nil {
		t.Fatal(err)
	}
	cfg.TokenKey = "k"
	router := mux.NewRouter()
	HandleList(router, cfg, noUsers{})
	return CORS(router)
}

func TestRoutes(t *testing.T) {
	h := newServer(t)
	ref := `{"D":3,"L":4,"Wi":15,"F80":2000,"darsad_bar":40,"chegali_golole":7.8,"takhalkhol":40,"Sg":2.7,"k":400,"Cs":72}`
	tests := []struct {
		method, path, body string
		status             int
	}{
		{"GET", "/api/materials", "", http.StatusOK},
		{"GET", "/api/materials/hematite", "", http.StatusOK},
		{"GET", "/api/materials/categories", "", http.StatusOK},
		{"GET", "/api/distributions/hard-ores", "", http.StatusOK},
		{"POST", "/api/tools/mill/calc", ref, http.StatusOK},
		{"POST", "/api/tools/mill/charge", ref, http.StatusOK},
		{"POST", "/api/tools/mill/economics", ref, http.StatusOK},
		{"POST", "/api/user/tools/design/generate", `{}`, http.StatusUnauthorized},
		{"POST", "/api/user/tools/report/pdf", `{}`, http.StatusUnauthorized},
		{"OPTIONS", "/api/tools/mill/calc", "", http.StatusNoContent},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body)))
		if rec.Code != tt.status {
			t.Errorf("%s %s = %d, want %d: %s", tt.method, tt.path, rec.Code, tt.status, rec.Body)
		}
	}
}
