package importer

import (
	"errors"
	"net/http"

	"Millcalc/internal/httpx"

	log "github.com/sirupsen/logrus"
)

const maxUpload = 10 << 20

type Handler struct{}

func (h *Handler) Mill(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUpload)
	file, _, err := r.FormFile("file")
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "File required")
		return
	}
	defer file.Close()

	res, err := Import(file)
	if err != nil {
		if !errors.Is(err, ErrEmptySheet) {
			log.WithError(err).Warn("xlsx import failed")
		}
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	httpx.JSON(w, http.StatusOK, res)
}
