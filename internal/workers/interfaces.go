// Package workers runs the background loops of the server. The only loop
// today is [ActuatorQueue], which moves door and notification calls off the
// request path.
package workers

import "context"

// Worker is a background loop. Run blocks until ctx is done and the worker
// has released its resources.
type Worker interface {
	Run(ctx context.Context)
}
