package batch

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"Millcalc/internal/calc/mill"
)

func reference() Item {
	return Item{
		"D": 3.0, "L": 4.0, "Wi": 15.0, "F80": 2000.0, "darsad_bar": 40.0,
		"chegali_golole": 7.8, "takhalkhol": 40.0, "Sg": 2.7, "k": 400.0, "Cs": 72.0,
	}
}

func TestCalculate(t *testing.T) {
	second := reference()
	second["D"] = 4.0
	second["material"] = "magnetite"

	res, err := Calculate(Input{Items: []Item{reference(), second}})
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	if res.Count != 2 {
		t.Fatalf("count = %d", res.Count)
	}
	if res.Results[0].Display.MillVolume != "28.274" {
		t.Errorf("first volume = %s", res.Results[0].Display.MillVolume)
	}
	if res.Results[1].Material == nil || res.Results[1].Material.Key != "magnetite" {
		t.Errorf("second material = %+v", res.Results[1].Material)
	}
}

func TestCalculateStopsAtFirstBadItem(t *testing.T) {
	bad := reference()
	delete(bad, "Cs")
	worse := reference()
	worse["D"] = -1.0

	_, err := Calculate(Input{Items: []Item{reference(), bad, worse}})
	var ie *ItemError
	if !errors.As(err, &ie) {
		t.Fatalf("err = %v, want *ItemError", err)
	}
	if ie.Index != 1 {
		t.Errorf("index = %d, want 1", ie.Index)
	}
	if !errors.Is(err, mill.ErrInvalidInput) {
		t.Errorf("cause %v does not match ErrInvalidInput", ie.Err)
	}
}

func TestCalculateEmpty(t *testing.T) {
	if _, err := Calculate(Input{}); !errors.Is(err, ErrEmpty) {
		t.Errorf("err = %v, want ErrEmpty", err)
	}
}

func TestHandler(t *testing.T) {
	h := &Handler{}
	tests := []struct {
		body   string
		status int
		failed string
	}{
		{`{"items":[{"D":3,"L":4,"Wi":15,"F80":2000,"darsad_bar":40,"chegali_golole":7.8,"takhalkhol":40,"Sg":2.7,"k":400,"Cs":72}]}`, http.StatusOK, ""},
		{`{"items":[]}`, http.StatusBadRequest, ""},
		{`{"items":[{"D":3}]}`, http.StatusBadRequest, "0"},
		{`{"items":[{"D":3,"L":4,"Wi":15,"F80":2000,"darsad_bar":40,"chegali_golole":7.8,"takhalkhol":40,"Sg":2.7,"k":400,"Cs":72,"material":"nope"}]}`, http.StatusNotFound, "0"},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		h.Calc(rec, httptest.NewRequest(http.MethodPost, "/tools/mill/batch", strings.NewReader(tt.body)))
		if rec.Code != tt.status {
			t.Errorf("%s: status = %d, want %d", tt.body, rec.Code, tt.status)
		}
		if got := rec.Header().Get("X-Failed-Item"); got != tt.failed {
			t.Errorf("%s: failed item = %q, want %q", tt.body, got, tt.failed)
		}
	}
}
