package autodesign

import (
	"context"
	"errors"
	"sync"
	"time"

	"Millcalc/internal/catalog/material"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// ErrSuperseded ends a task whose owner started a newer one.
var ErrSuperseded = errors.New("design generation superseded by a newer request")

// Phases label the progress steps of a generation task.
var Phases = []string{
	"Analyzing requirements",
	"Checking material database",
	"Computing engineering parameters",
	"Generating design options",
	"Optimizing performance",
	"Economic evaluation",
	"Risk and reliability analysis",
	"Preparing recommendations",
}

// Event is one progress update. The last event of a task has Done set and
// carries either the ranked options or an error.
type Event struct {
	TaskID   string   `json:"task_id"`
	Phase    int      `json:"phase"`
	Label    string   `json:"label,omitempty"`
	Progress float64  `json:"progress"`
	Done     bool     `json:"done"`
	Options  []Option `json:"options,omitempty"`
	Error    string   `json:"error,omitempty"`
}

type task struct {
	id     string
	cancel context.CancelCauseFunc
}

// Runner paces generation through Phases. Each owner key has at most one
// live task; starting another cancels the previous one.
type Runner struct {
	Interval time.Duration
	Defaults Defaults

	mu    sync.Mutex
	tasks map[string]task
}

func NewRunner(interval time.Duration, d Defaults) *Runner {
	return &Runner{Interval: interval, Defaults: d, tasks: make(map[string]task)}
}

// Start validates req and computes the options before returning, so bad
// input fails synchronously. The returned channel is buffered for every
// event of the task and is closed after the final one.
func (r *Runner) Start(ctx context.Context, owner string, req Requirements, m *material.Material) (string, <-chan Event, error) {
	req = req.Normalize(r.Defaults)
	options, err := Generate(req, m)
	if err != nil {
		return "", nil, err
	}
	Rank(options, req)

	id := uuid.NewString()
	tctx, cancel := context.WithCancelCause(ctx)

	r.mu.Lock()
	if r.tasks == nil {
		r.tasks = make(map[string]task)
	}
	if prev, ok := r.tasks[owner]; ok {
		prev.cancel(ErrSuperseded)
	}
	r.tasks[owner] = task{id: id, cancel: cancel}
	r.mu.Unlock()

	events := make(chan Event, len(Phases)+1)
	go r.run(tctx, owner, id, options, events)
	return id, events, nil
}

// Cancel stops the owner's live task when it is still task id. A task that
// was already superseded by another of the owner's connections is left alone.
func (r *Runner) Cancel(owner, id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.tasks[owner]; ok && t.id == id {
		t.cancel(context.Canceled)
		delete(r.tasks, owner)
	}
}

func (r *Runner) run(ctx context.Context, owner, id string, options []Option, events chan<- Event) {
	defer close(events)
	defer r.release(owner, id)

	var timer *time.Timer
	if r.Interval > 0 {
		timer = time.NewTimer(r.Interval)
		defer timer.Stop()
	}

	for i, label := range Phases {
		if timer != nil {
			select {
			case <-ctx.Done():
				r.abort(ctx, id, i, events)
				return
			case <-timer.C:
				timer.Reset(r.Interval)
			}
		} else if ctx.Err() != nil {
			r.abort(ctx, id, i, events)
			return
		}
		events <- Event{
			TaskID:   id,
			Phase:    i + 1,
			Label:    label,
			Progress: float64(i+1) / float64(len(Phases)) * 100,
		}
	}
	events <- Event{TaskID: id, Phase: len(Phases), Progress: 100, Done: true, Options: options}
	log.WithFields(log.Fields{"task": id, "owner": owner}).Debug("design generation finished")
}

func (r *Runner) abort(ctx context.Context, id string, phase int, events chan<- Event) {
	cause := context.Cause(ctx)
	log.WithFields(log.Fields{"task": id, "phase": phase}).Debugf("design generation stopped: %v", cause)
	events <- Event{
		TaskID:   id,
		Phase:    phase,
		Progress: float64(phase) / float64(len(Phases)) * 100,
		Done:     true,
		Error:    cause.Error(),
	}
}

func (r *Runner) release(owner, id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.tasks[owner]; ok && t.id == id {
		t.cancel(nil)
		delete(r.tasks, owner)
	}
}
