package batch

import (
	"errors"
	"net/http"
	"strconv"

	"Millcalc/internal/calc/mill"
	"Millcalc/internal/httpx"
)

type Handler struct{}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if !httpx.Decode(w, r, &input) {
		return
	}
	res, err := Calculate(input)
	if err != nil {
		var ie *ItemError
		if errors.As(err, &ie) {
			w.Header().Set("X-Failed-Item", strconv.Itoa(ie.Index))
		}
		if errors.Is(err, ErrEmpty) {
			httpx.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		mill.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, res)
}
