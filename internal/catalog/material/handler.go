package material

import (
	"errors"
	"net/http"

	"Millcalc/internal/httpx"

	"github.com/gorilla/mux"
)

type Handler struct{}

type entry struct {
	Material
	Stars         int    `json:"stars"`
	CapacityClass string `json:"capacity_class"`
	Complexity    string `json:"complexity"`
}

func view(m Material) entry {
	return entry{Material: m, Stars: m.Stars(), CapacityClass: m.CapacityClass(), Complexity: m.Complexity()}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	all := All()
	out := make([]entry, 0, len(all))
	for _, m := range all {
		out = append(out, view(m))
	}
	httpx.JSON(w, http.StatusOK, out)
}

// Categories lists the distinct ore categories, for filtering the catalog.
func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, Categories())
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	m, err := Get(mux.Vars(r)["key"])
	if errors.Is(err, ErrNotFound) {
		httpx.Error(w, http.StatusNotFound, err.Error())
		return
	}
	httpx.JSON(w, http.StatusOK, view(m))
}
