// Package location wraps the host platform's positioning capability in a
// single-shot, timeout-bounded acquisition call.
package location

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/helphub/helphub/internal/domain"
)

// ErrPositionUnavailable covers every acquisition failure class: no
// positioning capability, denial, and timeout. Callers treat it as
// recoverable and fall back to a default location or proceed without one.
var ErrPositionUnavailable = errors.New("position unavailable")

// Provider is a platform positioning source. Implementations should
// honour ctx cancellation and may take arbitrarily long otherwise.
type Provider interface {
	CurrentPosition(ctx context.Context) (domain.Location, error)
}

// Options configure acquisition, mirroring the platform's positioning
// parameters.
type Options struct {
	// HighAccuracy asks the provider for its best fix. Advisory;
	// providers without accuracy tiers ignore it.
	HighAccuracy bool
	// Timeout bounds a single acquisition attempt.
	Timeout time.Duration
	// MaximumAge is how old a cached fix may be and still be served
	// without re-querying the provider.
	MaximumAge time.Duration
}

// DefaultOptions are the standard acquisition parameters: high accuracy,
// a 10-second timeout, and cached fixes accepted up to 10 minutes old.
func DefaultOptions() Options {
	return Options{
		HighAccuracy: true,
		Timeout:      10 * time.Second,
		MaximumAge:   10 * time.Minute,
	}
}

// Acquirer performs one-shot position lookups against a Provider,
// serving a sufficiently fresh cached fix without re-querying.
type Acquirer struct {
	provider Provider
	opts     Options
	clock    clockwork.Clock

	mu      sync.Mutex
	lastFix *domain.Location
	fixedAt time.Time
}

// NewAcquirer builds an Acquirer over the given provider.
func NewAcquirer(provider Provider, opts Options) *Acquirer {
	return &Acquirer{
		provider: provider,
		opts:     opts,
		clock:    clockwork.NewRealClock(),
	}
}

// WithClock swaps the time source, for tests.
func (a *Acquirer) WithClock(c clockwork.Clock) *Acquirer {
	a.clock = c
	return a
}

// CurrentLocation returns the caller's current coordinates. A cached fix
// newer than MaximumAge is returned immediately. Otherwise the provider
// is queried once under the configured timeout; any failure is reported
// as ErrPositionUnavailable.
func (a *Acquirer) CurrentLocation(ctx context.Context) (domain.Location, error) {
	a.mu.Lock()
	if a.lastFix != nil && a.opts.MaximumAge > 0 &&
		a.clock.Since(a.fixedAt) <= a.opts.MaximumAge {
		fix := *a.lastFix
		a.mu.Unlock()
		return fix, nil
	}
	a.mu.Unlock()

	if a.provider == nil {
		return domain.Location{}, fmt.Errorf("%w: no positioning capability", ErrPositionUnavailable)
	}

	if a.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.opts.Timeout)
		defer cancel()
	}

	loc, err := a.provider.CurrentPosition(ctx)
	if err != nil {
		return domain.Location{}, fmt.Errorf("%w: %v", ErrPositionUnavailable, err)
	}
	if err := loc.Validate(); err != nil {
		return domain.Location{}, fmt.Errorf("%w: %v", ErrPositionUnavailable, err)
	}

	a.mu.Lock()
	a.lastFix = &loc
	a.fixedAt = a.clock.Now()
	a.mu.Unlock()

	return loc, nil
}

// StaticProvider serves a fixed coordinate, used when the deployment has
// a configured site location instead of live positioning.
type StaticProvider struct {
	Location domain.Location
}

// CurrentPosition returns the configured coordinate.
func (p StaticProvider) CurrentPosition(ctx context.Context) (domain.Location, error) {
	if err := ctx.Err(); err != nil {
		return domain.Location{}, err
	}
	return p.Location, nil
}

// UnsupportedProvider always fails, modeling a host without positioning.
type UnsupportedProvider struct{}

// CurrentPosition reports the missing capability.
func (UnsupportedProvider) CurrentPosition(context.Context) (domain.Location, error) {
	return domain.Location{}, errors.New("positioning not supported on this host")
}
