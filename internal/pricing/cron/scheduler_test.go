package cronjob

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubWarmer struct {
	calls int
	err   error
	ctxOK bool
}

func (s *stubWarmer) Warm(ctx context.Context) error {
	s.calls++
	_, s.ctxOK = ctx.Deadline()
	return s.err
}

func TestRunOnce(t *testing.T) {
	t.Run("invokes the warmer with a deadline", func(t *testing.T) {
		w := &stubWarmer{}
		NewScheduler(w).RunOnce()

		require.Equal(t, 1, w.calls)
		assert.True(t, w.ctxOK)
	})

	t.Run("a failing warmer does not panic", func(t *testing.T) {
		w := &stubWarmer{err: errors.New("throttled")}
		NewScheduler(w).RunOnce()
		assert.Equal(t, 1, w.calls)
	})
}
