// Package outbound paces the lines a client writes to its server.
package outbound

import (
	"context"
	"log"

	"golang.org/x/time/rate"
)

// DefaultSize is the number of lines a Queue buffers when no size is given.
const DefaultSize = 64

// Queue buffers outgoing lines and writes them out no faster than its
// limiter allows. It satisfies irc.Sink.
type Queue struct {
	out    chan string
	limit  *rate.Limiter
	logger *log.Logger
}

// New returns a queue releasing perSecond lines per second after an initial
// burst.
func New(perSecond float64, burst, size int) *Queue {
	if size <= 0 {
		size = DefaultSize
	}
	if burst <= 0 {
		burst = 1
	}
	return &Queue{
		out:    make(chan string, size),
		limit:  rate.NewLimiter(rate.Limit(perSecond), burst),
		logger: log.Default(),
	}
}

func (q *Queue) SetLogger(l *log.Logger) {
	q.logger = l
}

// Send enqueues line. It never blocks: when the buffer is full the line is
// dropped.
func (q *Queue) Send(line string) {
	select {
	case q.out <- line:
	default:
		q.logger.Printf("Outbound queue full, dropping %q", line)
	}
}

// Len returns the number of lines waiting to be written.
func (q *Queue) Len() int {
	return len(q.out)
}

// Run writes queued lines with write until ctx is done.
func (q *Queue) Run(ctx context.Context, write func(line string) error) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line := <-q.out:
			if err := q.limit.Wait(ctx); err != nil {
				return err
			}
			if err := write(line); err != nil {
				q.logger.Printf("Failed to write %q: %v", line, err)
			}
		}
	}
}
