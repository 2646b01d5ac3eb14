package grid

// Scheduler runs work after the current event handler returns.
type Scheduler interface {
	Defer(fn func())
}

// Queue is a FIFO Scheduler drained explicitly by the host loop. Work deferred
// while a drain is running waits for the next drain, so deferred callbacks
// never nest inside one another.
type Queue struct {
	tasks []func()
}

// NewQueue returns an empty queue
func NewQueue() *Queue {
	return &Queue{}
}

// Defer appends fn to the queue
func (q *Queue) Defer(fn func()) {
	q.tasks = append(q.tasks, fn)
}

// Pending returns the number of queued tasks
func (q *Queue) Pending() int {
	return len(q.tasks)
}

// Drain runs the tasks that were queued when it was called and returns how
// many ran.
func (q *Queue) Drain() int {
	batch := q.tasks
	q.tasks = nil
	for _, fn := range batch {
		fn()
	}
	return len(batch)
}
