package session

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/xyz-asif/hazardwatch/internal/pkg/logger"
	"github.com/xyz-asif/hazardwatch/pkg/errors"
)

func testCredentials(t *testing.T) Credentials {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)
	return Credentials{Username: "admin", PasswordHash: hash}
}

func quietLogger() *logger.Logger {
	return logger.NewWithWriter(logger.ERROR, io.Discard)
}

type failingStorage struct{}

func (failingStorage) GetItem(context.Context, string) (string, bool, error) {
	return "", false, fmt.Errorf("disk on fire")
}
func (failingStorage) SetItem(context.Context, string, string) error { return fmt.Errorf("disk on fire") }
func (failingStorage) RemoveItem(context.Context, string) error      { return fmt.Errorf("disk on fire") }

func TestGate_StartsLoggedOut(t *testing.T) {
	g := NewGate(context.Background(), NewMemoryStorage(), testCredentials(t), quietLogger())
	require.False(t, g.IsAuthenticated())
	require.Equal(t, State{}, g.State())
	require.Empty(t, g.SessionID())
}

func TestGate_LoginPersists(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStorage()
	g := NewGate(ctx, store, testCredentials(t), quietLogger())

	state, id, err := g.Login(ctx, "admin", "admin123")
	require.NoError(t, err)
	require.Equal(t, State{IsAuthenticated: true, User: &User{Username: "admin"}}, state)
	require.True(t, g.IsAuthenticated())
	require.NotEmpty(t, id)
	require.Equal(t, id, g.SessionID())
	require.True(t, g.Valid(id))
	require.Contains(t, persisted(t, store), id)

	raw, ok, err := store.GetItem(ctx, StorageKey)
	require.NoError(t, err)
	require.True(t, ok)
	require.Contains(t, raw, `"isAuthenticated":true`)
	require.Contains(t, raw, `"user":{"username":"admin"}`)
}

func TestGate_WrongCredentialsLeaveStateUntouched(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStorage()
	g := NewGate(ctx, store, testCredentials(t), quietLogger())

	for _, tc := range []struct{ user, pass string }{
		{"admin", "wrong"},
		{"Admin", "admin123"},
		{"", ""},
		{"admin ", "admin123"},
	} {
		_, _, err := g.Login(ctx, tc.user, tc.pass)
		require.True(t, errors.Is(err, errors.ErrInvalidCredentials), "%q/%q", tc.user, tc.pass)
	}
	require.False(t, g.IsAuthenticated())
	_, ok, _ := store.GetItem(ctx, StorageKey)
	require.False(t, ok)

	_, _, err := g.Login(ctx, "admin", "admin123")
	require.NoError(t, err)
	before := g.SessionID()

	_, _, err = g.Login(ctx, "admin", "nope")
	require.Error(t, err)
	require.True(t, g.IsAuthenticated())
	require.Equal(t, before, g.SessionID())
}

func TestGate_Logout(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStorage()
	g := NewGate(ctx, store, testCredentials(t), quietLogger())

	_, _, err := g.Login(ctx, "admin", "admin123")
	require.NoError(t, err)
	id := g.SessionID()

	require.NoError(t, g.Logout(ctx))
	require.False(t, g.IsAuthenticated())
	require.Nil(t, g.State().User)
	require.False(t, g.Valid(id))

	_, ok, _ := store.GetItem(ctx, StorageKey)
	require.False(t, ok)

	// logging out twice is harmless
	require.NoError(t, g.Logout(ctx))
}

func TestGate_RestoresPersistedSession(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStorage()
	first := NewGate(ctx, store, testCredentials(t), quietLogger())
	_, _, err := first.Login(ctx, "admin", "admin123")
	require.NoError(t, err)

	second := NewGate(ctx, store, testCredentials(t), quietLogger())
	require.True(t, second.IsAuthenticated())
	require.Equal(t, "admin", second.State().User.Username)
	require.Equal(t, first.SessionID(), second.SessionID())
}

func TestGate_RestoresBlobWithoutSessionID(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStorage()
	require.NoError(t, store.SetItem(ctx, StorageKey, `{"isAuthenticated":true,"user":{"username":"admin"}}`))

	g := NewGate(ctx, store, testCredentials(t), quietLogger())
	require.True(t, g.IsAuthenticated())
	require.NotEmpty(t, g.SessionID())
}

func TestGate_CorruptBlobFailsOpen(t *testing.T) {
	ctx := context.Background()

	for name, blob := range map[string]string{
		"not json":         "{isAuthenticated",
		"missing user":     `{"isAuthenticated":true,"user":null}`,
		"blank username":   `{"isAuthenticated":true,"user":{"username":"  "}}`,
		"explicit logout":  `{"isAuthenticated":false,"user":null}`,
		"wrong value type": `{"isAuthenticated":"yes"}`,
	} {
		t.Run(name, func(t *testing.T) {
			store := NewMemoryStorage()
			require.NoError(t, store.SetItem(ctx, StorageKey, blob))

			var buf bytes.Buffer
			g := NewGate(ctx, store, testCredentials(t), logger.NewWithWriter(logger.DEBUG, &buf))
			require.False(t, g.IsAuthenticated())
			require.Equal(t, State{}, g.State())
		})
	}
}

func TestGate_CorruptBlobIsLogged(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStorage()
	require.NoError(t, store.SetItem(ctx, StorageKey, "garbage"))

	var buf bytes.Buffer
	NewGate(ctx, store, testCredentials(t), logger.NewWithWriter(logger.DEBUG, &buf))
	require.Contains(t, buf.String(), "corrupt session blob")
}

func TestGate_StorageFailures(t *testing.T) {
	ctx := context.Background()
	g := NewGate(ctx, failingStorage{}, testCredentials(t), quietLogger())
	require.False(t, g.IsAuthenticated())

	// a session that cannot be persisted is still live in memory
	_, _, err := g.Login(ctx, "admin", "admin123")
	require.NoError(t, err)
	require.True(t, g.IsAuthenticated())

	require.Error(t, g.Logout(ctx))
	require.False(t, g.IsAuthenticated())
}

func TestGate_Valid(t *testing.T) {
	ctx := context.Background()
	g := NewGate(ctx, NewMemoryStorage(), testCredentials(t), quietLogger())
	require.False(t, g.Valid(""))

	_, _, err := g.Login(ctx, "admin", "admin123")
	require.NoError(t, err)
	old := g.SessionID()
	require.True(t, g.Valid(old))
	require.False(t, g.Valid(""))

	_, _, err = g.Login(ctx, "admin", "admin123")
	require.NoError(t, err)
	require.False(t, g.Valid(old))
	require.True(t, g.Valid(g.SessionID()))
}

func TestNewCredentials(t *testing.T) {
	creds, err := NewCredentials("admin", "admin123")
	require.NoError(t, err)
	require.Equal(t, "admin", creds.Username)
	require.NoError(t, bcrypt.CompareHashAndPassword(creds.PasswordHash, []byte("admin123")))
}

func persisted(t *testing.T, store Storage) string {
	t.Helper()
	raw, ok, err := store.GetItem(context.Background(), StorageKey)
	require.NoError(t, err)
	require.True(t, ok)
	return raw
}

func TestGate_EachLoginMintsItsOwnSession(t *testing.T) {
	ctx := context.Background()
	g := NewGate(ctx, NewMemoryStorage(), testCredentials(t), quietLogger())

	_, first, err := g.Login(ctx, "admin", "admin123")
	require.NoError(t, err)
	_, second, err := g.Login(ctx, "admin", "admin123")
	require.NoError(t, err)

	require.NotEqual(t, first, second)
	require.False(t, g.Valid(first))
	require.True(t, g.Valid(second))
}
