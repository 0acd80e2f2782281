// Package wizard tracks the user's position in the fixed linear sequence of
// resume-builder steps and persists it across sessions.
package wizard

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/jonathan/resume-builder/internal/storage"
	"github.com/jonathan/resume-builder/internal/types"
)

// SnapshotKey is the storage key for the persisted current-step pointer.
const SnapshotKey = "currentStep"

// Wizard holds the current step and persists it on every transition. It is
// safe for concurrent use.
type Wizard struct {
	mu      sync.Mutex
	current types.Step
	backend *storage.Store
}

// Load rehydrates the wizard position from storage, defaulting to the first
// step when the snapshot is absent or names an unknown step. A discarded
// snapshot is removed from storage so later loads start clean.
func Load(backend *storage.Store) (*Wizard, error) {
	if backend == nil {
		return nil, fmt.Errorf("storage backend is required")
	}

	w := &Wizard{current: types.StepOrder[0], backend: backend}

	var step types.Step
	if err := backend.Get(SnapshotKey, &step); err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Printf("[WIZARD] discarding unreadable step snapshot: %v", err)
			discardSnapshot(backend)
		}
		return w, nil
	}
	if types.StepIndex(step) < 0 {
		log.Printf("[WIZARD] discarding unknown step %q", step)
		discardSnapshot(backend)
		return w, nil
	}
	w.current = step
	return w, nil
}

// discardSnapshot removes a step snapshot that failed to load.
func discardSnapshot(backend *storage.Store) {
	if err := backend.Delete(SnapshotKey); err != nil {
		log.Printf("[WIZARD] failed to remove discarded step snapshot: %v", err)
	}
}

// Current returns the current step.
func (w *Wizard) Current() types.Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.current
}

// Next advances one step. At the final step it is a no-op.
func (w *Wizard) Next() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	idx := types.StepIndex(w.current)
	if idx >= len(types.StepOrder)-1 {
		return nil
	}
	return w.set(types.StepOrder[idx+1])
}

// Prev retreats one step. At the first step it is a no-op.
func (w *Wizard) Prev() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	idx := types.StepIndex(w.current)
	if idx <= 0 {
		return nil
	}
	return w.set(types.StepOrder[idx-1])
}

// GoTo jumps directly to a named step. Prior steps need not be complete.
func (w *Wizard) GoTo(step types.Step) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if types.StepIndex(step) < 0 {
		return fmt.Errorf("unknown step %q", step)
	}
	return w.set(step)
}

// set persists then records the new step. Callers must hold mu.
func (w *Wizard) set(step types.Step) error {
	if err := w.backend.Put(SnapshotKey, step); err != nil {
		return fmt.Errorf("failed to persist current step: %w", err)
	}
	w.current = step
	return nil
}
