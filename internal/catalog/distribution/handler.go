package distribution

import (
	"errors"
	"net/http"

	"Millcalc/internal/httpx"

	"github.com/gorilla/mux"
)

type Handler struct{}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, All())
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	t, err := Get(mux.Vars(r)["key"])
	if errors.Is(err, ErrNotFound) {
		httpx.Error(w, http.StatusNotFound, err.Error())
		return
	}
	httpx.JSON(w, http.StatusOK, struct {
		Template
		Points []Point `json:"points"`
	}{t, t.Points()})
}
