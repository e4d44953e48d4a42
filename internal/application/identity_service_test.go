package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-blog-clean-architecture/pkg/helpers"
)

func newTestIdentityService() (*IdentityService, *memUserRepo, *memSessionStore) {
	users := newMemUserRepo()
	sessions := newMemSessionStore()
	tokens := helpers.NewTokenManager("test-secret", time.Hour)
	return NewIdentityService(users, sessions, tokens, testLogger()), users, sessions
}

func TestRegisterThenAuthenticate(t *testing.T) {
	svc, users, _ := newTestIdentityService()
	ctx := context.Background()

	u, tok, err := svc.Register(ctx, "alice@example.com", "s3cretpass", "Alice")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.NotZero(t, u.ID)
	assert.NotEmpty(t, tok.Value)
	assert.True(t, tok.ExpiresAt.After(time.Now()))
	assert.Equal(t, 1, users.count())

	// stored password is hashed, never the plaintext
	stored, err := users.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cretpass", stored.Password)

	again, loginTok, err := svc.Authenticate(ctx, "alice@example.com", "s3cretpass")
	require.NoError(t, err)
	assert.Equal(t, u.ID, again.ID)
	assert.NotEmpty(t, loginTok.Value)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, users, _ := newTestIdentityService()
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "alice@example.com", "s3cretpass", "Alice")
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, "alice@example.com", "otherpass1", "Alice Again")
	assert.ErrorIs(t, err, ErrDuplicateEmail)
	assert.Equal(t, 1, users.count(), "a rejected registration must not leave a record behind")
}

func TestAuthenticateUnknownEmail(t *testing.T) {
	svc, _, _ := newTestIdentityService()

	_, _, err := svc.Authenticate(context.Background(), "nobody@example.com", "whatever12")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAuthenticateWrongPassword(t *testing.T) {
	svc, _, sessions := newTestIdentityService()
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "alice@example.com", "s3cretpass", "Alice")
	require.NoError(t, err)
	before := len(sessions.sessions)

	_, _, err = svc.Authenticate(ctx, "alice@example.com", "wrongpass1")
	assert.ErrorIs(t, err, ErrBadCredential)
	assert.Len(t, sessions.sessions, before, "a failed login must not open a session")
}

func TestCurrentActorLifecycle(t *testing.T) {
	svc, _, _ := newTestIdentityService()
	ctx := context.Background()

	u, tok, err := svc.Register(ctx, "alice@example.com", "s3cretpass", "Alice")
	require.NoError(t, err)

	actor := svc.CurrentActor(ctx, tok.Value)
	assert.True(t, actor.Authenticated)
	assert.Equal(t, u.ID, actor.ID)
	assert.Equal(t, "alice@example.com", actor.Email)
	assert.Equal(t, "Alice", actor.Name)
	assert.False(t, actor.Admin)

	require.NoError(t, svc.EndSession(ctx, tok.Value))

	after := svc.CurrentActor(ctx, tok.Value)
	assert.False(t, after.Authenticated)
	assert.Equal(t, Anonymous, after)
}

func TestCurrentActorRejectsBadTokens(t *testing.T) {
	svc, _, _ := newTestIdentityService()
	ctx := context.Background()

	assert.Equal(t, Anonymous, svc.CurrentActor(ctx, ""))
	assert.Equal(t, Anonymous, svc.CurrentActor(ctx, "not-a-jwt"))

	// token signed with a different secret
	other := helpers.NewTokenManager("other-secret", time.Hour)
	forged, _, err := other.Generate(1, "some-session")
	require.NoError(t, err)
	assert.Equal(t, Anonymous, svc.CurrentActor(ctx, forged))
}

func TestEndSessionWithGarbageToken(t *testing.T) {
	svc, _, _ := newTestIdentityService()
	assert.NoError(t, svc.EndSession(context.Background(), "not-a-jwt"))
}
