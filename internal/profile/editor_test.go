package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditor_BeginEditCancelRoundTrip(t *testing.T) {
	e := NewEditor(DemoProfile())
	before := e.Profile()

	e.BeginEdit()
	require.NoError(t, e.Apply(map[string]any{"name": "Wang Wu", "phone": "137****0000"}))
	e.Cancel()

	assert.Equal(t, before, e.Profile())
	assert.Equal(t, before, e.Draft())
	assert.Equal(t, StateViewing, e.State())
}

func TestEditor_Save(t *testing.T) {
	e := NewEditor(DemoProfile())

	e.BeginEdit()
	assert.Equal(t, StateEditing, e.State())
	require.NoError(t, e.Apply(map[string]any{"emergencyContact": "Zhao Liu"}))
	assert.Equal(t, "Li Si", e.Profile().EmergencyContact, "canonical must not change before save")

	require.NoError(t, e.Save())
	assert.Equal(t, "Zhao Liu", e.Profile().EmergencyContact)
	assert.Equal(t, StateViewing, e.State())
}

func TestEditor_ApplyRequiresEditing(t *testing.T) {
	e := NewEditor(DemoProfile())

	assert.ErrorIs(t, e.Apply(map[string]any{"name": "x"}), ErrNotEditing)
	assert.ErrorIs(t, e.Save(), ErrNotEditing)
}

func TestEditor_ApplyRejectsUnknownFields(t *testing.T) {
	e := NewEditor(DemoProfile())
	e.BeginEdit()

	err := e.Apply(map[string]any{"salary": "1"})

	assert.Error(t, err)
	assert.Equal(t, DemoProfile(), e.Draft())
}

func TestEditor_BeginEditResnapshotsDraft(t *testing.T) {
	e := NewEditor(DemoProfile())
	e.BeginEdit()
	require.NoError(t, e.Apply(map[string]any{"company": "Other"}))
	e.Cancel()

	e.BeginEdit()

	assert.Equal(t, DemoProfile().Company, e.Draft().Company)
}
