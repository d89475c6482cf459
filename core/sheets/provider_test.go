package sheets

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCachedProvider(t *testing.T) {
	cfg := Config{CredentialsJSON: serviceAccount}

	t.Run("BuildsOnce", func(t *testing.T) {
		var builds int32
		mem := NewMemoryStore()
		p := NewProviderWithFactory(cfg, zap.NewNop(), func(context.Context, *Credentials, Config) (Store, error) {
			atomic.AddInt32(&builds, 1)
			return mem, nil
		})

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				s, err := p.Store(context.Background())
				assert.NoError(t, err)
				assert.Same(t, mem, s)
			}()
		}
		wg.Wait()

		_, err := p.Store(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int32(1), atomic.LoadInt32(&builds))
	})

	t.Run("RetriesAfterFailure", func(t *testing.T) {
		calls := 0
		p := NewProviderWithFactory(cfg, zap.NewNop(), func(context.Context, *Credentials, Config) (Store, error) {
			calls++
			if calls == 1 {
				return nil, errors.New("boom")
			}
			return NewMemoryStore(), nil
		})

		_, err := p.Store(context.Background())
		assert.Error(t, err)
		_, err = p.Store(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("MissingCredentials", func(t *testing.T) {
		p := NewProviderWithFactory(Config{}, zap.NewNop(), func(context.Context, *Credentials, Config) (Store, error) {
			t.Fatal("factory must not run without credentials")
			return nil, nil
		})

		_, err := p.Store(context.Background())
		assert.ErrorIs(t, err, ErrCredentials)
	})
}

func TestStatic(t *testing.T) {
	mem := NewMemoryStore()
	s, err := Static(mem).Store(context.Background())
	require.NoError(t, err)
	assert.Same(t, mem, s)
}
