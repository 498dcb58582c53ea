package opengl

import (
	"context"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-forward/common"
)

// taskQueue is the worker pool's submission queue size.
const taskQueue = 256

// decoder runs image decodes on a worker pool and parks finished results until the render
// thread collects them. Workers never wait on the render thread, so any number of textures
// can be requested before the first frame.
type decoder struct {
	pool   worker.DynamicWorkerPool
	taskID int

	mu       sync.Mutex
	finished []decoded
}

func newDecoder(workers int) *decoder {
	return &decoder{
		pool: worker.NewDynamicWorkerPool(workers, taskQueue, 1*time.Second),
	}
}

// submit queues decode for t. Only the render thread calls it.
func (q *decoder) submit(ctx context.Context, t *texture, decode func(ctx context.Context) ([]common.TextureStagingData, error)) {
	id := q.taskID
	q.taskID++
	q.pool.SubmitTask(worker.Task{
		ID: id,
		Do: func() (any, error) {
			faces, err := decode(ctx)
			q.mu.Lock()
			q.finished = append(q.finished, decoded{tex: t, faces: faces, err: err})
			q.mu.Unlock()
			return nil, nil
		},
	})
}

// drain hands over every result finished so far, in completion order.
func (q *decoder) drain() []decoded {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.finished
	q.finished = nil
	return out
}
