package statemachine

import (
	"context"
	"errors"
	"fmt"

	"github.com/looplab/fsm"
)

// Draft states
const (
	DraftEditing    = "editing"
	DraftSubmitting = "submitting"
	DraftCreated    = "created"
	DraftAbandoned  = "abandoned"
)

// Draft events
const (
	EventSubmit  = "submit"
	EventSucceed = "succeed"
	EventFail    = "fail"
	EventAbandon = "abandon"
	EventReopen  = "reopen"
)

// ErrTransition is wrapped by every refused transition
var ErrTransition = errors.New("invalid draft transition")

// DraftFSM tracks the lifecycle of a contract draft session
type DraftFSM struct {
	fsm *fsm.FSM
}

// NewDraftFSM creates a draft state machine starting in editing
func NewDraftFSM() *DraftFSM {
	return &DraftFSM{
		fsm: fsm.NewFSM(
			DraftEditing,
			fsm.Events{
				// editing → submitting (contract request in flight)
				{Name: EventSubmit, Src: []string{DraftEditing}, Dst: DraftSubmitting},

				// submitting → created
				{Name: EventSucceed, Src: []string{DraftSubmitting}, Dst: DraftCreated},

				// submitting → editing (request failed, draft kept for resubmission)
				{Name: EventFail, Src: []string{DraftSubmitting}, Dst: DraftEditing},

				// editing/created → abandoned
				{Name: EventAbandon, Src: []string{DraftEditing, DraftCreated}, Dst: DraftAbandoned},

				// created → editing (desk starts the next contract on the same session)
				{Name: EventReopen, Src: []string{DraftCreated}, Dst: DraftEditing},
			},
			fsm.Callbacks{},
		),
	}
}

// Fire applies an event
func (d *DraftFSM) Fire(ctx context.Context, event string) error {
	if !d.fsm.Can(event) {
		return fmt.Errorf("%w: cannot %s while %s", ErrTransition, event, d.fsm.Current())
	}
	if err := d.fsm.Event(ctx, event); err != nil {
		return fmt.Errorf("%w: %v", ErrTransition, err)
	}
	return nil
}

// Current returns the current state
func (d *DraftFSM) Current() string {
	return d.fsm.Current()
}

// Can checks if a transition is possible
func (d *DraftFSM) Can(event string) bool {
	return d.fsm.Can(event)
}

// Editable reports whether the draft accepts form and ledger changes
func (d *DraftFSM) Editable() bool {
	return d.fsm.Current() == DraftEditing
}
