package profile

import (
	"errors"
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/cx-tal-miterani/bluesky-booking/shared/models"
)

var ErrNotEditing = errors.New("profile is not being edited")

type State string

const (
	StateViewing State = "viewing"
	StateEditing State = "editing"
)

// Editor holds the canonical profile and a draft that is only committed on Save.
type Editor struct {
	state     State
	canonical models.UserProfile
	draft     models.UserProfile
}

func NewEditor(p models.UserProfile) *Editor {
	return &Editor{state: StateViewing, canonical: p, draft: p}
}

func (e *Editor) State() State {
	return e.state
}

func (e *Editor) Profile() models.UserProfile {
	return e.canonical
}

func (e *Editor) Draft() models.UserProfile {
	return e.draft
}

// BeginEdit snapshots the canonical record into the draft.
func (e *Editor) BeginEdit() {
	e.draft = e.canonical
	e.state = StateEditing
}

// Apply decodes fields onto the draft. Keys are the JSON field names; unknown
// keys are rejected.
func (e *Editor) Apply(fields map[string]any) error {
	if e.state != StateEditing {
		return ErrNotEditing
	}
	draft := e.draft
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &draft,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("failed to build profile decoder: %w", err)
	}
	if err := dec.Decode(fields); err != nil {
		return fmt.Errorf("invalid profile fields: %w", err)
	}
	e.draft = draft
	return nil
}

// Save commits the draft.
func (e *Editor) Save() error {
	if e.state != StateEditing {
		return ErrNotEditing
	}
	e.canonical = e.draft
	e.state = StateViewing
	return nil
}

// Cancel discards the draft.
func (e *Editor) Cancel() {
	e.draft = e.canonical
	e.state = StateViewing
}
