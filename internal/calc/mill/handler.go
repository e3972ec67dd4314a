package mill

import (
	"errors"
	"net/http"

	"Millcalc/internal/catalog/material"
	"Millcalc/internal/httpx"

	log "github.com/sirupsen/logrus"
)

type Handler struct{}

type Response struct {
	Params   Params             `json:"params"`
	Material *material.Material `json:"material,omitempty"`
	Result   Result             `json:"result"`
	Display  Display            `json:"display"`
}

// Evaluate looks up the optional material and runs Calculate.
func Evaluate(p Params, materialKey string) (Response, error) {
	m, err := material.Lookup(materialKey)
	if err != nil {
		return Response{}, err
	}
	res, err := Calculate(p, m)
	if err != nil {
		return Response{}, err
	}
	return Response{Params: p, Material: m, Result: res, Display: res.Display()}, nil
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var raw map[string]any
	if !httpx.Decode(w, r, &raw) {
		return
	}
	p, err := ParseInput(raw)
	if err != nil {
		WriteError(w, err)
		return
	}
	key, _ := raw["material"].(string)
	resp, err := Evaluate(p, key)
	if err != nil {
		WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, resp)
}

// WriteError maps engine and catalog errors onto HTTP responses.
func WriteError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		log.WithError(err).Warn("rejected mill parameters")
		issues := Issues(err)
		fields := make([]httpx.FieldError, len(issues))
		for i, is := range issues {
			fields[i] = httpx.FieldError{Field: is.Field, Reason: is.Reason}
		}
		httpx.Error(w, http.StatusBadRequest, "Calculation error", fields...)
	case errors.Is(err, material.ErrNotFound):
		httpx.Error(w, http.StatusNotFound, err.Error())
	default:
		log.WithError(err).Error("mill calculation failed")
		httpx.Error(w, http.StatusInternalServerError, "Internal error")
	}
}
