package economics

import (
	"net/http"

	"Millcalc/internal/calc/mill"
	"Millcalc/internal/httpx"
)

type Handler struct {
	Assumptions Assumptions
}

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
	res, err := Analyze(p, base.Result.BallMass, h.Assumptions)
	if err != nil {
		mill.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, struct {
		Mill        mill.Response `json:"mill"`
		Assumptions Assumptions   `json:"assumptions"`
		Economics   Result        `json:"economics"`
	}{base, h.Assumptions, res})
}
