package charge

import (
	"net/http"

	"Millcalc/internal/calc/mill"
	"Millcalc/internal/httpx"
)

type Handler struct{}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var raw map[string]any
	if !httpx.Decode(w, r, &raw) {
		return
	}
	p, err := mill.ParseInput(raw)
	if err != nil {
		mill.WriteError(w, err)
		return
	}
	key, _ := raw["material"].(string)
	base, err := mill.Evaluate(p, key)
	if err != nil {
		mill.WriteError(w, err)
		return
	}
	res, err := Calculate(p, base.Result)
	if err != nil {
		mill.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, struct {
		Mill   mill.Response `json:"mill"`
		Charge Result        `json:"charge"`
	}{base, res})
}
