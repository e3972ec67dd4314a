package report

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	"Millcalc/internal/calc/mill"
	"Millcalc/internal/httpx"

	log "github.com/sirupsen/logrus"
)

type Input struct {
	Meta
	Params   map[string]any `json:"params"`
	Material string         `json:"material"`
}

type Handler struct {
	Now func() time.Time
}

func (h *Handler) PDF(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, "application/pdf", "pdf", WritePDF)
}

func (h *Handler) CSV(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, "text/csv; charset=utf-8", "csv", func(w io.Writer, rep Report) error {
		return WriteCSV(w, rep.Rows())
	})
}

func (h *Handler) XLSX(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "xlsx", WriteXLSX)
}

func (h *Handler) serve(w http.ResponseWriter, r *http.Request, contentType, ext string, write func(io.Writer, Report) error) {
	var input Input
	if !httpx.Decode(w, r, &input) {
		return
	}
	p, err := mill.ParseInput(input.Params)
	if err != nil {
		mill.WriteError(w, err)
		return
	}
	resp, err := mill.Evaluate(p, input.Material)
	if err != nil {
		mill.WriteError(w, err)
		return
	}
	now := time.Now
	if h.Now != nil {
		now = h.Now
	}
	rep := New(resp, input.Meta, now())

	// render fully before writing headers so failures can still answer 500
	var buf bytes.Buffer
	if err := write(&buf, rep); err != nil {
		log.WithError(err).WithField("format", ext).Error("report generation failed")
		httpx.Error(w, http.StatusInternalServerError, "Report generation error")
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "mill-report-"+rep.ID+"."+ext))
	w.Write(buf.Bytes())
}
