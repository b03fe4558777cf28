package workers

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-door-keeper/internal/adapter"
	"github.com/MKhiriev/go-door-keeper/internal/config"
	"github.com/MKhiriev/go-door-keeper/internal/logger"
)

type job struct {
	name string
	ctx  context.Context
	call func(ctx context.Context) error
}

// ActuatorQueue is an [adapter.DoorActuator] that queues every call for a
// pool of goroutines. Enqueueing never blocks: when the buffer is full the
// call is dropped with [ErrQueueFull]. Queued calls keep the request
// context values, trace id and logger included, but not its cancellation.
type ActuatorQueue struct {
	target adapter.DoorActuator
	jobs   chan job
	count  int
	logger *logger.Logger

	mu     sync.RWMutex
	closed bool
}

// NewActuatorQueue wraps target. cfg.Count goroutines are started by Run.
func NewActuatorQueue(target adapter.DoorActuator, cfg config.Workers, logger *logger.Logger) *ActuatorQueue {
	count := cfg.Count
	if count < 1 {
		count = 1
	}
	return &ActuatorQueue{
		target: target,
		jobs:   make(chan job, cfg.QueueSize),
		count:  count,
		logger: logger,
	}
}

func (q *ActuatorQueue) OpenDoor(ctx context.Context, deviceID, uid string) error {
	return q.enqueue(ctx, "open_door", func(ctx context.Context) error {
		return q.target.OpenDoor(ctx, deviceID, uid)
	})
}

func (q *ActuatorQueue) CloseDoor(ctx context.Context, deviceID, uid string) error {
	return q.enqueue(ctx, "close_door", func(ctx context.Context) error {
		return q.target.CloseDoor(ctx, deviceID, uid)
	})
}

func (q *ActuatorQueue) ToggleDoor(ctx context.Context, deviceID, uid string) error {
	return q.enqueue(ctx, "toggle_door", func(ctx context.Context) error {
		return q.target.ToggleDoor(ctx, deviceID, uid)
	})
}

func (q *ActuatorQueue) NotifyUnknownTag(ctx context.Context, deviceID, uid string) error {
	return q.enqueue(ctx, "notify_unknown_tag", func(ctx context.Context) error {
		return q.target.NotifyUnknownTag(ctx, deviceID, uid)
	})
}

func (q *ActuatorQueue) NotifyClonedTag(ctx context.Context, deviceID, uid, keyName string) error {
	return q.enqueue(ctx, "notify_cloned_tag", func(ctx context.Context) error {
		return q.target.NotifyClonedTag(ctx, deviceID, uid, keyName)
	})
}

func (q *ActuatorQueue) enqueue(ctx context.Context, name string, call func(context.Context) error) error {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		return ErrQueueClosed
	}

	select {
	case q.jobs <- job{name: name, ctx: context.WithoutCancel(ctx), call: call}:
		return nil
	default:
		logger.FromContext(ctx).Warn().Str("job", name).Msg("actuator queue full, dropping call")
		return ErrQueueFull
	}
}

// Run processes calls until ctx is done, then stops accepting new calls and
// drains what is already queued.
func (q *ActuatorQueue) Run(ctx context.Context) {
	q.logger.Info().Int("workers", q.count).Int("queue_size", cap(q.jobs)).Msg("actuator queue started")

	var wg sync.WaitGroup
	for range q.count {
		wg.Add(1)
		go func() {
			defer wg.Done()
			q.consume(ctx)
		}()
	}
	<-ctx.Done()

	q.mu.Lock()
	q.closed = true
	close(q.jobs)
	q.mu.Unlock()

	wg.Wait()
	q.logger.Info().Msg("actuator queue stopped")
}

func (q *ActuatorQueue) consume(ctx context.Context) {
	for {
		select {
		case j, ok := <-q.jobs:
			if !ok {
				return
			}
			q.exec(j)
		case <-ctx.Done():
			// drain after close
			for j := range q.jobs {
				q.exec(j)
			}
			return
		}
	}
}

func (q *ActuatorQueue) exec(j job) {
	if err := j.call(j.ctx); err != nil {
		log := logger.FromContext(j.ctx)
		if log.GetLevel() == zerolog.Disabled {
			log = q.logger
		}
		log.Err(err).Str("job", j.name).Msg("actuator call failed")
	}
}
