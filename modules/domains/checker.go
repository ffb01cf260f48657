package domains

import (
	"context"
	"log/slog"
	"math/rand"
	"net"
	"sync"
	"time"
)

// tlds is the fixed set of suffixes probed for every candidate label.
var tlds = []string{".com", ".net", ".org", ".co", ".io", ".sa", ".ae"}

// prices are static yearly price-range annotations per suffix, attached to
// available results only.
var prices = map[string]string{
	".com": "12-15 USD/year",
	".net": "13-16 USD/year",
	".org": "12-14 USD/year",
	".co":  "30-35 USD/year",
	".io":  "50-60 USD/year",
	".sa":  "25-30 USD/year",
	".ae":  "40-50 USD/year",
}

const fallbackPrice = "15-25 USD/year"

// Result is the availability estimate for one candidate domain.
type Result struct {
	Domain    string `json:"domain"`
	Available bool   `json:"available"`
	Price     string `json:"price,omitempty"`
}

// Resolver resolves hostnames. Satisfied by *net.Resolver.
type Resolver interface {
	LookupHost(ctx context.Context, host string) ([]string, error)
}

// Checker probes candidate domains over DNS.
type Checker struct {
	resolver Resolver
	timeout  time.Duration
	log      *slog.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

// Option configures the checker.
type Option func(*Checker)

// WithResolver replaces the DNS resolver. Useful for tests.
func WithResolver(r Resolver) Option {
	return func(c *Checker) {
		if r != nil {
			c.resolver = r
		}
	}
}

// WithLookupTimeout bounds each individual DNS lookup.
func WithLookupTimeout(d time.Duration) Option {
	return func(c *Checker) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithRandSource replaces the random source used for synthetic labels.
func WithRandSource(src rand.Source) Option {
	return func(c *Checker) {
		if src != nil {
			c.rng = rand.New(src)
		}
	}
}

// WithLogger supplies a logger; nil keeps logging silent.
func WithLogger(log *slog.Logger) Option {
	return func(c *Checker) {
		if log != nil {
			c.log = log
		}
	}
}

// NewChecker returns a checker backed by the system resolver.
func NewChecker(opts ...Option) *Checker {
	c := &Checker{
		resolver: net.DefaultResolver,
		timeout:  5 * time.Second,
		log:      slog.New(slog.DiscardHandler),
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Check normalizes the candidate name and probes every fixed suffix,
// returning the label and one result per suffix in fixed order.
//
// Resolution success means the domain exists and is reported as taken.
// Any lookup failure is reported as available: this is the intended
// fail-open heuristic, not registry truth.
func (c *Checker) Check(ctx context.Context, name string) (string, []Result) {
	label := c.Normalize(name)

	results := make([]Result, len(tlds))
	var wg sync.WaitGroup
	for i, tld := range tlds {
		wg.Add(1)
		go func(idx int, suffix string) {
			defer wg.Done()
			results[idx] = c.probe(ctx, label+suffix, suffix)
		}(i, tld)
	}
	wg.Wait()

	return label, results
}

func (c *Checker) probe(ctx context.Context, domain, tld string) Result {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	result := Result{Domain: domain}

	if _, err := c.resolver.LookupHost(ctx, domain); err != nil {
		result.Available = true
		price, ok := prices[tld]
		if !ok {
			price = fallbackPrice
		}
		result.Price = price
		return result
	}

	return result
}

func (c *Checker) intn(n int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rng.Intn(n)
}
