package recommend

import (
	"errors"
	"net/http"

	"Millcalc/internal/calc/mill"
	"Millcalc/internal/calc/premium/autodesign"
	"Millcalc/internal/httpx"

	log "github.com/sirupsen/logrus"
)

type Handler struct {
	Defaults autodesign.Defaults
}

func (h *Handler) Apply(w http.ResponseWriter, r *http.Request) {
	var input ApplyInput
	if !httpx.Decode(w, r, &input) {
		return
	}
	res, err := Apply(input, h.Defaults)
	switch {
	case err == nil:
		httpx.JSON(w, http.StatusOK, res)
	case errors.Is(err, autodesign.ErrInvalidRequirements), errors.Is(err, ErrUnknownOption):
		log.WithError(err).Warn("rejected design apply")
		httpx.Error(w, http.StatusBadRequest, err.Error())
	default:
		mill.WriteError(w, err)
	}
}
