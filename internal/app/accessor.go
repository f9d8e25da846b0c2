// Package app implements the application layer for appinfo.
package app

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"

	"go.trai.ch/appinfo/internal/core/domain"
	"go.trai.ch/appinfo/internal/core/ports"
)

// fetchKey coalesces all first-call fetches into one backend invocation.
const fetchKey = "metadata.fetch"

// Accessor provides memoized access to the host application metadata.
//
// It owns a single cached value and a reference to the injected backend.
// The first successful Fetch populates the cache; every later call returns
// the cached value without touching the backend again.
type Accessor struct {
	backend ports.Backend
	logger  ports.Logger
	tracer  ports.Tracer

	group  singleflight.Group
	mu     sync.RWMutex
	cached *domain.PackageMetadata
}

// New creates a new Accessor with the given backend.
func New(backend ports.Backend, logger ports.Logger, tracer ports.Tracer) *Accessor {
	return &Accessor{
		backend: backend,
		logger:  logger,
		tracer:  tracer,
	}
}

// Fetch returns the application metadata.
//
// On the first call it retrieves the metadata through the backend and caches
// the result. Once the cache is populated, baseURL is ignored entirely, even
// when it differs from the hint a previous call passed. Concurrent first
// calls are coalesced so the backend runs at most once.
//
// Backend errors are returned unchanged, with no retry. A failed fetch
// leaves the cache empty, so the next call invokes the backend again.
func (a *Accessor) Fetch(ctx context.Context, baseURL string) (domain.PackageMetadata, error) {
	if meta, ok := a.lookup(); ok {
		return meta, nil
	}

	v, err, _ := a.group.Do(fetchKey, func() (any, error) {
		// A concurrent caller or Override may have populated the cache
		// while this call waited on the flight group.
		if meta, ok := a.lookup(); ok {
			return meta, nil
		}

		a.logger.Info("fetching application metadata from backend")

		ctx, span := a.tracer.Start(ctx, "metadata.fetch")
		defer span.End()

		data, err := a.backend.Retrieve(ctx, baseURL)
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
		if data == nil {
			span.RecordError(domain.ErrNoPlatformData)
			return nil, domain.ErrNoPlatformData
		}

		meta := domain.FromPlatformData(*data)
		span.SetAttribute("package_name", meta.PackageName())
		span.SetAttribute("version", meta.Version())

		a.store(meta)
		return meta, nil
	})
	if err != nil {
		return domain.PackageMetadata{}, err
	}
	return v.(domain.PackageMetadata), nil
}

// Override replaces any cached value with the given metadata, bypassing the
// backend entirely. It exists for test environments; later Fetch calls
// return exactly the overridden value.
func (a *Accessor) Override(meta domain.PackageMetadata) {
	a.store(meta)
}

func (a *Accessor) lookup() (domain.PackageMetadata, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.cached == nil {
		return domain.PackageMetadata{}, false
	}
	return *a.cached, true
}

func (a *Accessor) store(meta domain.PackageMetadata) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.cached = &meta
}
