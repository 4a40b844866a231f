package credential

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatic(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	key, err := Static(" abc ").Resolve(ctx)
	require.NoError(t, err)
	assert.Equal(t, "abc", key)

	_, err = Static("   ").Resolve(ctx)
	assert.ErrorIs(t, err, ErrMissing)
}

func TestEnv(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	vars := map[string]string{"SECOND": "from-second", "BLANK": " "}
	env := &Env{
		Names: []string{"FIRST", "BLANK", "SECOND"},
		Lookup: func(name string) (string, bool) {
			v, ok := vars[name]
			return v, ok
		},
	}

	key, err := env.Resolve(ctx)
	require.NoError(t, err)
	assert.Equal(t, "from-second", key)

	// Re-read on every call.
	vars["FIRST"] = "from-first"
	key, err = env.Resolve(ctx)
	require.NoError(t, err)
	assert.Equal(t, "from-first", key)

	_, err = (&Env{Names: []string{"NOPE"}, Lookup: func(string) (string, bool) { return "", false }}).Resolve(ctx)
	assert.ErrorIs(t, err, ErrMissing)
}

func TestEnvDefaultsToProcessEnvironment(t *testing.T) {
	t.Setenv("IDEASPARK_CREDENTIAL_TEST_KEY", "process-key")

	key, err := NewEnv("IDEASPARK_CREDENTIAL_TEST_KEY").Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "process-key", key)
}

type failingSource struct{ err error }

func (f failingSource) Resolve(context.Context) (string, error) { return "", f.err }

func TestChain(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store := NewStore()
	chain := Chain{store, Static(""), Static("from-config")}

	key, err := chain.Resolve(ctx)
	require.NoError(t, err)
	assert.Equal(t, "from-config", key)

	require.NoError(t, store.RequestCredential(ctx, "from-store"))
	key, err = chain.Resolve(ctx)
	require.NoError(t, err)
	assert.Equal(t, "from-store", key)

	_, err = Chain{Static("")}.Resolve(ctx)
	assert.ErrorIs(t, err, ErrMissing)

	boom := errors.New("keychain locked")
	_, err = Chain{failingSource{boom}, Static("never")}.Resolve(ctx)
	assert.ErrorIs(t, err, boom)
}

func TestConfigured(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	assert.False(t, Configured(ctx, Static("")))
	assert.True(t, Configured(ctx, Static("k")))
}

func TestStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s := NewStore()
	_, err := s.Resolve(ctx)
	assert.ErrorIs(t, err, ErrMissing)

	assert.ErrorIs(t, s.RequestCredential(ctx, "  "), ErrMissing)

	require.NoError(t, s.RequestCredential(ctx, " key-1 "))
	key, err := s.Resolve(ctx)
	require.NoError(t, err)
	assert.Equal(t, "key-1", key)

	s.Clear()
	_, err = s.Resolve(ctx)
	assert.ErrorIs(t, err, ErrMissing)
}

func TestStoreConcurrentAccess(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = s.RequestCredential(ctx, "k")
		}()
		go func() {
			defer wg.Done()
			_, _ = s.Resolve(ctx)
		}()
	}
	wg.Wait()

	key, err := s.Resolve(ctx)
	require.NoError(t, err)
	assert.Equal(t, "k", key)
}
