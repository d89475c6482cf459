package sheets

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Factory builds a Store from loaded credentials.
type Factory func(ctx context.Context, creds *Credentials, cfg Config) (Store, error)

// GoogleFactory is the default Factory.
func GoogleFactory(ctx context.Context, creds *Credentials, cfg Config) (Store, error) {
	return NewGoogleStore(ctx, creds, cfg)
}

// CachedProvider loads credentials and builds the API client on first use.
// Concurrent first calls share one build. Only the client is cached, never
// table contents. A failed build is retried on the next call.
type CachedProvider struct {
	cfg     Config
	logger  *zap.Logger
	factory Factory

	group singleflight.Group
	mu    sync.RWMutex
	store Store
}

// NewProvider returns a CachedProvider backed by the Google Sheets API.
func NewProvider(cfg Config, logger *zap.Logger) *CachedProvider {
	return NewProviderWithFactory(cfg, logger, GoogleFactory)
}

// NewProviderWithFactory returns a CachedProvider using factory to build the Store.
func NewProviderWithFactory(cfg Config, logger *zap.Logger, factory Factory) *CachedProvider {
	return &CachedProvider{cfg: cfg, logger: logger, factory: factory}
}

// Store returns the cached Store, building it when needed.
func (p *CachedProvider) Store(ctx context.Context) (Store, error) {
	p.mu.RLock()
	s := p.store
	p.mu.RUnlock()
	if s != nil {
		return s, nil
	}

	v, err, _ := p.group.Do("store", func() (any, error) {
		creds, err := LoadCredentials(p.cfg)
		if err != nil {
			return nil, err
		}
		store, err := p.factory(ctx, creds, p.cfg)
		if err != nil {
			return nil, err
		}

		p.mu.Lock()
		p.store = store
		p.mu.Unlock()

		p.logger.Info("Sheets client ready",
			zap.String("source", creds.Source),
			zap.String("client_email", creds.ClientEmail()),
		)
		return store, nil
	})
	if err != nil {
		p.logger.Error("Failed to initialise sheets client", zap.Error(err))
		return nil, err
	}
	return v.(Store), nil
}
