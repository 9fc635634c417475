// Package pkg provides the core libraries for polyroots, an integer root
// finder for polynomials with integer coefficients.
//
// # Overview
//
// A polynomial is given as its coefficients, highest power first, so
// [1, -5, 6] is x^2 - 5x + 6. Any integer root divides the constant term,
// which bounds the search to the divisors of one number. The pkg directory
// is organized into these areas:
//
//  1. [poly] - Domain logic (validation, evaluation, divisor search)
//  2. [solver] - Orchestration (cache lookup, search, cache write)
//  3. [cache] - Result caching (file, Redis, no-op)
//  4. [stats] - Averages of integer lists
//  5. [crlf] - In-place CRLF to LF conversion
//
// # Architecture
//
// The typical data flow for a root search:
//
//	Coefficients (CLI args, stdin prompt, HTTP body)
//	         ↓
//	    [poly] package (parse + validate)
//	         ↓
//	    [solver] package (cache key → hit, or search + store)
//	         ↓
//	    text, table or JSON output
//
// # Quick Start
//
//	p, err := poly.New(1, -5, 6)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(p.IntegerRoots()) // [2 3]
//
// With caching:
//
//	c, _ := cache.NewFileCache(dir)
//	runner := solver.NewRunner(c, cache.NewDefaultKeyer(), logger)
//	res, cached, err := runner.Roots(ctx, p, solver.Options{TTL: 24 * time.Hour})
//
// # Main Packages
//
// [poly] - The [poly.Polynomial] type. Construction rejects a zero leading
// coefficient and math.MinInt64. [poly.Polynomial.Value] evaluates exactly
// with math/big; [poly.Polynomial.Evaluate] reports OVERFLOW when the value
// does not fit in an int64.
//
// [solver] - [solver.Runner] wraps the search with a [cache.Cache]. Cache
// failures are logged and never fail a search.
//
// [cache] - The [cache.Cache] interface with FileCache (CLI default),
// RedisCache (shared between CLI and server) and NullCache. Keys come from a
// [cache.Keyer]; [cache.ScopedKeyer] separates namespaces.
//
// [stats] - Averages over integer lists read from files or arguments.
//
// [crlf] - Strips carriage returns from files while keeping their mode.
//
// ## Infrastructure
//
// [errors] - Coded errors shared by every package. [errors.UserMessage]
// renders them for the CLI; the server maps client codes to HTTP 400.
//
// [observability] - Hooks for cache, solve and API events. The CLI registers
// logging hooks in verbose mode.
//
// [buildinfo] - Version information set at build time.
//
// [poly]: https://pkg.go.dev/github.com/polyroots/polyroots/pkg/poly
// [solver]: https://pkg.go.dev/github.com/polyroots/polyroots/pkg/solver
// [cache]: https://pkg.go.dev/github.com/polyroots/polyroots/pkg/cache
// [stats]: https://pkg.go.dev/github.com/polyroots/polyroots/pkg/stats
// [crlf]: https://pkg.go.dev/github.com/polyroots/polyroots/pkg/crlf
// [errors]: https://pkg.go.dev/github.com/polyroots/polyroots/pkg/errors
// [observability]: https://pkg.go.dev/github.com/polyroots/polyroots/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/polyroots/polyroots/pkg/buildinfo
package pkg
