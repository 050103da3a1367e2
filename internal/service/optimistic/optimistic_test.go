package optimistic

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBeginAppliesImmediately(t *testing.T) {
	applied := false
	update := Begin(
		func() { applied = true },
		func(context.Context) error { return nil },
		func() {},
	)

	require.NotNil(t, update)
	assert.True(t, applied, "apply must run before commit is even attempted")
}

func TestCommitSuccessSkipsRollback(t *testing.T) {
	rolledBack := false
	update := Begin(
		func() {},
		func(context.Context) error { return nil },
		func() { rolledBack = true },
	)

	require.NoError(t, update.Commit(context.Background()))
	assert.False(t, rolledBack)
}

func TestCommitFailureRollsBack(t *testing.T) {
	boom := errors.New("remote rejected")
	rolledBack := false
	update := Begin(
		func() {},
		func(context.Context) error { return boom },
		func() { rolledBack = true },
	)

	err := update.Commit(context.Background())
	require.ErrorIs(t, err, boom)
	assert.True(t, rolledBack)
}

func TestSnapshotCopies(t *testing.T) {
	original := []int{1, 2, 3}
	copied := Snapshot(original)

	copied[0] = 99
	assert.Equal(t, 1, original[0])
	assert.Len(t, copied, 3)
}
