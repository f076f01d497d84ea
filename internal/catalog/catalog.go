package catalog

import (
	"log/slog"
	"sync"

	"libris/internal/fuzzy"
	"libris/internal/logging"
	"libris/internal/sentiment"
)

// Catalog holds every book and borrower of one library.
type Catalog struct {
	mu sync.Mutex

	books         map[string]*bookRecord
	bookOrder     []string
	borrowers     map[string]*borrowerRecord
	borrowerOrder []string

	matcher fuzzy.Matcher
	scorer  sentiment.Scorer
	logger  *slog.Logger
}

// Option customizes a Catalog at construction.
type Option func(*Catalog)

// WithScorer replaces the built-in VADER scorer.
func WithScorer(scorer sentiment.Scorer) Option {
	return func(c *Catalog) {
		if scorer != nil {
			c.scorer = scorer
		}
	}
}

// WithLogger attaches a logger; catalog entries carry component=catalog.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Catalog) {
		c.logger = logging.NewComponentLogger(logger, "catalog")
	}
}

// WithMaxDistance sets the edit distance tolerated by search and resolution.
func WithMaxDistance(maxDistance int) Option {
	return func(c *Catalog) {
		c.matcher = fuzzy.NewMatcher(maxDistance)
	}
}

// New returns an empty catalog.
func New(opts ...Option) *Catalog {
	c := &Catalog{
		books:     make(map[string]*bookRecord),
		borrowers: make(map[string]*borrowerRecord),
		matcher:   fuzzy.NewMatcher(fuzzy.DefaultMaxDistance),
		logger:    logging.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.scorer == nil {
		c.scorer = sentiment.Default()
	}
	return c
}

// MaxDistance reports the matching threshold in effect.
func (c *Catalog) MaxDistance() int {
	return c.matcher.MaxDistance
}
