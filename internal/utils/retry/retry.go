package retry

import (
	"context"
	"time"
)

var defaultDelays = []time.Duration{
	1 * time.Second,
	3 * time.Second,
	5 * time.Second,
}

type Retrier struct {
	delays      []time.Duration
	isRetryable func(error) bool
}

func New(isRetryable func(error) bool) *Retrier {
	return &Retrier{
		delays:      defaultDelays,
		isRetryable: isRetryable,
	}
}

// WithDelays overrides the pauses between attempts. len(delays)+1 attempts
// are made in total.
func (r *Retrier) WithDelays(delays ...time.Duration) *Retrier {
	r.delays = delays
	return r
}

func (r *Retrier) Do(
	ctx context.Context,
	op func(ctx context.Context) error,
) error {
	err := op(ctx)
	for _, d := range r.delays {
		if err == nil || !r.isRetryable(err) {
			return err
		}

		t := time.NewTimer(d)
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}

		err = op(ctx)
	}

	return err
}
