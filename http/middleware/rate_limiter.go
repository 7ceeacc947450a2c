package middleware

import (
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	// DefaultRate is the number of requests per second a visitor may sustain.
	DefaultRate = 5

	// DefaultBurst is the number of requests a visitor may make at once.
	DefaultBurst = 20

	visitorTTL      = 60 * time.Minute
	cleanupInterval = time.Minute
)

// A Visitor tracks a rate limiter and last seen time.
type Visitor struct {
	LastSeen time.Time
	Limiter  *rate.Limiter
}

// A Visitors maps a Visitor to an IP address.
type Visitors struct {
	burst       int
	limit       rate.Limit
	lastCleanup time.Time
	val         map[string]Visitor
	sync.Mutex
}

// A VisitorsOpt configures the limiters Visitors hands out.
type VisitorsOpt func(*Visitors)

// WithLimit sets how many requests per second each visitor may sustain
// and how many may arrive at once.
// Non-positive values leave the defaults in place.
func WithLimit(perSecond float64, burst int) VisitorsOpt {
	return func(vs *Visitors) {
		if perSecond > 0 {
			vs.limit = rate.Limit(perSecond)
		}

		if burst > 0 {
			vs.burst = burst
		}
	}
}

// NewVisitors constructs a *Visitors limiting each visitor to DefaultRate
// with bursts of up to DefaultBurst, unless opts say otherwise.
func NewVisitors(opts ...VisitorsOpt) *Visitors {
	vs := &Visitors{
		burst:       DefaultBurst,
		limit:       DefaultRate,
		lastCleanup: time.Now(),
		val:         make(map[string]Visitor),
	}

	for _, opt := range opts {
		opt(vs)
	}

	return vs
}

// Fetch retrieves the Visitor for the given ip creating a new Visitor if not seen.
func (vs *Visitors) Fetch(ip string) Visitor {
	vs.Lock()
	defer vs.Unlock()

	v, ok := vs.val[ip]
	if !ok {
		v = Visitor{Limiter: rate.NewLimiter(vs.limit, vs.burst)}
	}

	v.LastSeen = time.Now().UTC()
	vs.val[ip] = v
	return v
}

// Len reports how many visitors are tracked.
func (vs *Visitors) Len() int {
	vs.Lock()
	defer vs.Unlock()

	return len(vs.val)
}

// cleanup deletes every Visitor not seen in over an hour.
// It sweeps at most once per cleanupInterval.
func (vs *Visitors) cleanup() {
	vs.Lock()
	defer vs.Unlock()

	if time.Since(vs.lastCleanup) < cleanupInterval {
		return
	}

	vs.lastCleanup = time.Now()
	for ip, v := range vs.val {
		if time.Since(v.LastSeen) > visitorTTL {
			delete(vs.val, ip)
		}
	}
}

// RateLimit encloses the Visitors map and serves the http.Handler,
// responding with 429 to visitors exceeding their limiter.
//
// NOTE: implementation found here:
// https://www.alexedwards.net/blog/how-to-rate-limit-http-requests
func RateLimit(visitors *Visitors) Adapter {
	if visitors == nil {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !visitors.Fetch(IPAddress(r)).Limiter.Allow() {
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}

			visitors.cleanup()
			h.ServeHTTP(w, r)
		})
	}
}
