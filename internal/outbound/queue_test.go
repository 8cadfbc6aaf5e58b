package outbound

import (
	"context"
	"errors"
	"io"
	"log"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func quiet(q *Queue) *Queue {
	q.SetLogger(log.New(io.Discard, "", 0))
	return q
}

func TestQueueOrder(t *testing.T) {
	q := quiet(New(float64(rate.Inf), 1, 8))

	q.Send("NICK kylef")
	q.Send("USER kyle 0 * :Kyle")
	q.Send("JOIN #test")
	assert.Equal(t, 3, q.Len())

	var (
		mu      sync.Mutex
		written []string
	)
	done := make(chan struct{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		defer close(done)
		_ = q.Run(ctx, func(line string) error {
			mu.Lock()
			defer mu.Unlock()
			written = append(written, line)
			return nil
		})
	}()

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(written) == 3
	}, time.Second, time.Millisecond)

	cancel()
	<-done

	assert.Equal(t, []string{"NICK kylef", "USER kyle 0 * :Kyle", "JOIN #test"}, written)
}

func TestQueueDropsWhenFull(t *testing.T) {
	q := quiet(New(1, 1, 2))

	q.Send("one")
	q.Send("two")
	q.Send("three")

	assert.Equal(t, 2, q.Len())
	assert.Equal(t, "one", <-q.out)
	assert.Equal(t, "two", <-q.out)
}

func TestQueueRunStops(t *testing.T) {
	q := quiet(New(1, 1, 0))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := q.Run(ctx, func(string) error { return nil })
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestQueueWriteErrorKeepsRunning(t *testing.T) {
	q := quiet(New(float64(rate.Inf), 1, 4))
	q.Send("first")
	q.Send("second")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	seen := make(chan string, 2)
	go func() {
		_ = q.Run(ctx, func(line string) error {
			seen <- line
			return errors.New("broken pipe")
		})
	}()

	assert.Equal(t, "first", <-seen)
	assert.Equal(t, "second", <-seen)
}
