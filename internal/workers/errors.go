package workers

import "errors"

var (
	ErrQueueFull   = errors.New("actuator queue is full")
	ErrQueueClosed = errors.New("actuator queue is closed")
)
