package kafka

import (
	"context"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Handler returns nil only when the message was processed and its offset may
// be committed.
type Handler func(ctx context.Context, m kafka.Message) error

const (
	DefaultRetryFor     = 2 * time.Minute
	defaultRetryInitial = 200 * time.Millisecond
	defaultRetryMax     = 10 * time.Second
)

// Consumer fans messages out to a fixed set of workers. A partition always
// maps to the same worker, so its offsets are handled and committed in order.
// A failing message is retried in place; the partition never moves past it.
// When retries run out Start returns the error with the offset uncommitted,
// and the group redelivers it after the restart.
type Consumer struct {
	r       *kafka.Reader
	workers int
	log     *zap.Logger

	RetryFor     time.Duration
	RetryInitial time.Duration
}

func NewConsumer(brokers []string, group, topic string, workers int, log *zap.Logger) *Consumer {
	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        brokers,
		GroupID:        group,
		Topic:          topic,
		MinBytes:       1,
		MaxBytes:       10e6,
		CommitInterval: 0, // manual commit
	})
	if workers <= 0 {
		workers = 1
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Consumer{r: r, workers: workers, log: log, RetryFor: DefaultRetryFor, RetryInitial: defaultRetryInitial}
}

func (c *Consumer) lane(partition int) int {
	if partition < 0 {
		partition = -partition
	}
	return partition % c.workers
}

func (c *Consumer) Start(ctx context.Context, h Handler) error {
	defer c.r.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lanes := make([]chan kafka.Message, c.workers)
	fatal := make(chan error, c.workers)

	var wg sync.WaitGroup
	for i := range lanes {
		lanes[i] = make(chan kafka.Message, 128)
		wg.Add(1)
		go func(id int, in <-chan kafka.Message) {
			defer wg.Done()
			for m := range in {
				if ctx.Err() != nil {
					return
				}
				if err := c.handle(ctx, h, m); err != nil {
					if ctx.Err() == nil {
						c.log.Error("giving up on message",
							zap.Int("worker", id), zap.Int("partition", m.Partition), zap.Int64("offset", m.Offset), zap.Error(err))
						fatal <- err
						cancel()
					}
					return
				}
				if err := c.r.CommitMessages(ctx, m); err != nil {
					if ctx.Err() == nil {
						fatal <- errors.Wrapf(err, "commit partition %d offset %d", m.Partition, m.Offset)
						cancel()
					}
					return
				}
			}
		}(i, lanes[i])
	}
	defer func() {
		cancel()
		for _, l := range lanes {
			close(l)
		}
		wg.Wait()
	}()

	for {
		m, err := c.r.FetchMessage(ctx)
		if err != nil {
			select {
			case ferr := <-fatal:
				return ferr
			default:
			}
			if ctx.Err() != nil {
				return nil
			}
			return errors.Wrap(err, "fetch message")
		}
		select {
		case lanes[c.lane(m.Partition)] <- m:
		case <-ctx.Done():
		}
	}
}

// handle runs h until it succeeds, the retry window closes or ctx ends.
func (c *Consumer) handle(ctx context.Context, h Handler, m kafka.Message) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.RetryInitial
	b.MaxInterval = defaultRetryMax

	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		return struct{}{}, h(ctx, m)
	},
		backoff.WithBackOff(b),
		backoff.WithMaxElapsedTime(c.RetryFor),
		backoff.WithNotify(func(err error, wait time.Duration) {
			c.log.Warn("handler failed, retrying",
				zap.Int("partition", m.Partition), zap.Int64("offset", m.Offset),
				zap.Duration("wait", wait), zap.Error(err))
		}),
	)
	return errors.Wrapf(err, "partition %d offset %d", m.Partition, m.Offset)
}
