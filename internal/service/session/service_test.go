package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeIdentity struct {
	sessionErr error
	signInErr  error
	signOutErr error
}

func (f *fakeIdentity) CurrentSession(context.Context) error { return f.sessionErr }

func (f *fakeIdentity) SignIn(context.Context, string, string) error { return f.signInErr }

func (f *fakeIdentity) SignOut(context.Context) error { return f.signOutErr }

func TestCheckSessionSwallowsFailures(t *testing.T) {
	svc := NewService(&fakeIdentity{sessionErr: errors.New("network down")}, nil)

	ok := svc.CheckSession(context.Background())
	assert.False(t, ok)
	assert.False(t, svc.Authenticated())
}

func TestCheckSessionSuccess(t *testing.T) {
	svc := NewService(&fakeIdentity{}, nil)

	assert.True(t, svc.CheckSession(context.Background()))
	assert.True(t, svc.Authenticated())
}

func TestSignInSurfacesProviderErrorVerbatim(t *testing.T) {
	provider := errors.New("Incorrect username or password.")
	svc := NewService(&fakeIdentity{signInErr: provider}, nil)

	err := svc.SignIn(context.Background(), "user", "pw")
	require.Error(t, err)
	assert.Equal(t, "Incorrect username or password.", err.Error())
	assert.False(t, svc.Authenticated())
}

func TestSignInSuccessFlipsFlag(t *testing.T) {
	svc := NewService(&fakeIdentity{}, nil)

	require.NoError(t, svc.SignIn(context.Background(), "user", "pw"))
	assert.True(t, svc.Authenticated())
}

func TestSignOutFailureLeavesFlagUnchanged(t *testing.T) {
	idp := &fakeIdentity{}
	svc := NewService(idp, nil)
	require.NoError(t, svc.SignIn(context.Background(), "user", "pw"))

	idp.signOutErr = errors.New("provider unavailable")
	svc.SignOut(context.Background())

	assert.True(t, svc.Authenticated(), "failed sign-out keeps the signed-in state")
}

func TestSignOutSuccess(t *testing.T) {
	svc := NewService(&fakeIdentity{}, nil)
	require.NoError(t, svc.SignIn(context.Background(), "user", "pw"))

	svc.SignOut(context.Background())
	assert.False(t, svc.Authenticated())
}
