package hibp

import (
	"context"

	"go.uber.org/zap"
)

// RangeFetcher is the part of Fetcher the Checker depends on.
type RangeFetcher interface {
	Fetch(ctx context.Context, prefix string) (string, error)
	Mode() Mode
	Padding() bool
}

// Checker runs the k-anonymity lookup for one password at a time. It holds
// no state between calls.
type Checker struct {
	fetcher RangeFetcher
	log     *zap.Logger
}

func NewChecker(fetcher RangeFetcher, log *zap.Logger) *Checker {
	if log == nil {
		log = zap.NewNop()
	}
	return &Checker{fetcher: fetcher, log: log}
}

// Result is the outcome of one lookup.
type Result struct {
	Count int
}

// Found reports whether the password appears in the corpus at all.
func (r Result) Found() bool { return r.Count > 0 }

// Check returns how many times password appears in the breach corpus. Only
// the digest prefix leaves the process.
func (c *Checker) Check(ctx context.Context, password string) (Result, error) {
	prefix, suffix := c.fetcher.Mode().Split(password)

	body, err := c.fetcher.Fetch(ctx, prefix)
	if err != nil {
		return Result{}, err
	}

	count, err := Count(body, suffix, c.fetcher.Padding())
	if err != nil {
		c.log.Warn("unable to parse range response", zap.String("prefix", prefix), zap.Error(err))
		return Result{}, err
	}
	c.log.Debug("range lookup complete", zap.String("prefix", prefix))
	return Result{Count: count}, nil
}
