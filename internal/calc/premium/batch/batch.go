// Package batch runs the mill calculation over a list of parameter sets.
package batch

import (
	"errors"
	"fmt"

	"Millcalc/internal/calc/mill"
)

var ErrEmpty = errors.New("no items")

// Item is one flat parameter object with an optional "material" key, the
// same shape the single calculation endpoint accepts.
type Item map[string]any

type Input struct {
	Items []Item `json:"items"`
}

type Result struct {
	Count   int             `json:"count"`
	Results []mill.Response `json:"results"`
}

// ItemError names the failing item by its zero-based index.
type ItemError struct {
	Index int
	Err   error
}

func (e *ItemError) Error() string { return fmt.Sprintf("item %d: %v", e.Index, e.Err) }
func (e *ItemError) Unwrap() error { return e.Err }

// Calculate stops at the first invalid item.
func Calculate(in Input) (Result, error) {
	if len(in.Items) == 0 {
		return Result{}, ErrEmpty
	}
	out := Result{Results: make([]mill.Response, 0, len(in.Items))}
	for i, item := range in.Items {
		p, err := mill.ParseInput(item)
		if err != nil {
			return Result{}, &ItemError{Index: i, Err: err}
		}
		key, _ := item["material"].(string)
		resp, err := mill.Evaluate(p, key)
		if err != nil {
			return Result{}, &ItemError{Index: i, Err: err}
		}
		out.Results = append(out.Results, resp)
	}
	out.Count = len(out.Results)
	return out, nil
}
