// Package solver runs the integer root finder behind a result cache.
//
// The CLI and the HTTP API both go through a [Runner] so they share caching,
// logging and observability behavior. A Runner is stateless apart from its
// cache and logger; multiple goroutines may use the same Runner.
package solver

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"

	"github.com/polyroots/polyroots/pkg/cache"
	"github.com/polyroots/polyroots/pkg/observability"
	"github.com/polyroots/polyroots/pkg/poly"
)

// DefaultTTL is how long cached root lists are kept when Options.TTL is zero.
const DefaultTTL = 7 * 24 * time.Hour

// cacheKeyType labels cache hooks emitted by the runner.
const cacheKeyType = "roots"

// Options tune a single Roots call.
type Options struct {
	// Refresh skips the cache read but still stores the fresh result.
	Refresh bool
	// TTL for the stored result; zero means DefaultTTL.
	TTL time.Duration
}

// Result is the outcome of a root search.
type Result struct {
	Coefficients []int64       `json:"coefficients"`
	Polynomial   string        `json:"polynomial"`
	Degree       int           `json:"degree"`
	Roots        []int64       `json:"roots"`
	Duration     time.Duration `json:"-"`
}

// Runner finds integer roots with caching.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner.
// A nil cache disables caching, a nil keyer means cache.DefaultKeyer and a
// nil logger means log.Default().
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Roots returns the integer roots of p and whether they came from the cache.
// Cache failures are logged and otherwise ignored. The search stops with
// ctx.Err() when ctx is done; nothing is cached in that case.
func (r *Runner) Roots(ctx context.Context, p poly.Polynomial, opts Options) (*Result, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	coeffs := p.Coefficients()
	key := r.Keyer.RootsKey(coeffs)

	if !opts.Refresh {
		if res, ok := r.lookup(ctx, key); ok {
			observability.Cache().OnCacheHit(ctx, cacheKeyType)
			r.Logger.Debug("roots from cache", "polynomial", res.Polynomial, "roots", len(res.Roots))
			return res, true, nil
		}
		observability.Cache().OnCacheMiss(ctx, cacheKeyType)
	}

	hooks := observability.Solver()
	hooks.OnSolveStart(ctx, p.Degree())
	start := time.Now()
	roots, err := p.IntegerRootsContext(ctx)
	if err != nil {
		elapsed := time.Since(start)
		hooks.OnSolveComplete(ctx, p.Degree(), 0, elapsed, err)
		r.Logger.Debug("root search stopped", "polynomial", p.String(), "after", elapsed, "err", err)
		return nil, false, err
	}
	res := &Result{
		Coefficients: coeffs,
		Polynomial:   p.String(),
		Degree:       p.Degree(),
		Roots:        roots,
		Duration:     time.Since(start),
	}
	hooks.OnSolveComplete(ctx, res.Degree, len(roots), res.Duration, nil)

	r.Logger.Debug("computed roots",
		"polynomial", res.Polynomial,
		"roots", len(roots),
		"duration", res.Duration)

	r.store(ctx, key, res, opts.TTL)
	return res, false, nil
}

func (r *Runner) lookup(ctx context.Context, key string) (*Result, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "err", err)
		return nil, false
	}
	if !hit {
		return nil, false
	}

	var res Result
	if err := json.Unmarshal(data, &res); err != nil {
		r.Logger.Debug("discarding unreadable cache entry", "err", err)
		_ = r.Cache.Delete(ctx, key)
		return nil, false
	}
	if res.Roots == nil {
		res.Roots = []int64{}
	}
	return &res, true
}

func (r *Runner) store(ctx context.Context, key string, res *Result, ttl time.Duration) {
	if ttl == 0 {
		ttl = DefaultTTL
	}
	data, err := json.Marshal(res)
	if err != nil {
		r.Logger.Warn("encode cache entry failed", "err", err)
		return
	}
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		r.Logger.Warn("cache write failed", "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, cacheKeyType, len(data))
}
