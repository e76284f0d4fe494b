package statemachine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraftFSM_SubmitSucceed(t *testing.T) {
	ctx := context.Background()
	d := NewDraftFSM()
	assert.True(t, d.Editable())

	require.NoError(t, d.Fire(ctx, EventSubmit))
	assert.Equal(t, DraftSubmitting, d.Current())
	assert.False(t, d.Editable())

	require.NoError(t, d.Fire(ctx, EventSucceed))
	assert.Equal(t, DraftCreated, d.Current())

	require.NoError(t, d.Fire(ctx, EventReopen))
	assert.Equal(t, DraftEditing, d.Current())
}

func TestDraftFSM_FailReturnsToEditing(t *testing.T) {
	ctx := context.Background()
	d := NewDraftFSM()

	require.NoError(t, d.Fire(ctx, EventSubmit))
	require.NoError(t, d.Fire(ctx, EventFail))
	assert.Equal(t, DraftEditing, d.Current())
}

func TestDraftFSM_RefusesDoubleSubmit(t *testing.T) {
	ctx := context.Background()
	d := NewDraftFSM()

	require.NoError(t, d.Fire(ctx, EventSubmit))
	err := d.Fire(ctx, EventSubmit)
	assert.ErrorIs(t, err, ErrTransition)
	assert.Equal(t, DraftSubmitting, d.Current())
}

func TestDraftFSM_AbandonIsTerminal(t *testing.T) {
	ctx := context.Background()
	d := NewDraftFSM()

	require.NoError(t, d.Fire(ctx, EventAbandon))
	assert.Equal(t, DraftAbandoned, d.Current())

	for _, ev := range []string{EventSubmit, EventSucceed, EventFail, EventReopen, EventAbandon} {
		assert.ErrorIs(t, d.Fire(ctx, ev), ErrTransition, ev)
	}
}

func TestDraftFSM_CannotAbandonWhileSubmitting(t *testing.T) {
	ctx := context.Background()
	d := NewDraftFSM()

	require.NoError(t, d.Fire(ctx, EventSubmit))
	assert.False(t, d.Can(EventAbandon))
	assert.ErrorIs(t, d.Fire(ctx, EventAbandon), ErrTransition)
}
