// Package optimistic implements the update pattern shared by the view-model
// services: apply a tentative change to local state immediately, attempt the
// remote commit afterwards, and restore the captured prior state when the
// commit fails.
package optimistic

import "context"

// Update is an in-flight optimistic state change. The local mutation has
// already happened by the time an Update exists; Commit settles it against
// the remote side.
type Update struct {
	commit   func(context.Context) error
	rollback func()
}

// Begin applies the tentative change and returns the handle used to commit
// it. The rollback closure must restore the exact state captured before
// apply ran.
func Begin(apply func(), commit func(context.Context) error, rollback func()) *Update {
	apply()
	return &Update{commit: commit, rollback: rollback}
}

// Commit attempts the remote write. On failure the prior state is restored
// before the error is returned for surfacing.
func (u *Update) Commit(ctx context.Context) error {
	if err := u.commit(ctx); err != nil {
		u.rollback()
		return err
	}
	return nil
}

// Snapshot returns an element-wise copy of list suitable for later restore.
// Elements are copied by value; callers must not mutate nested slices of the
// live elements in place.
func Snapshot[T any](list []T) []T {
	out := make([]T, len(list))
	copy(out, list)
	return out
}
