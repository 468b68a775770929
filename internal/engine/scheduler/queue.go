package scheduler

import (
	"container/heap"
	"sync"

	"go.trai.ch/fractile/internal/core/ports"
)

// Task is a unit of work waiting in the queue.
type Task struct {
	Priority int
	Work     ports.Fillable
	seq      uint64
}

// Queue is a max-priority queue. Equal priorities leave in submission order.
// It is safe for concurrent use.
type Queue struct {
	mu    sync.Mutex
	tasks taskHeap
	seq   uint64
}

// NewQueue returns an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Push adds work at the given priority.
func (q *Queue) Push(priority int, work ports.Fillable) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.seq++
	heap.Push(&q.tasks, Task{Priority: priority, Work: work, seq: q.seq})
}

// Pop removes the most urgent task.
func (q *Queue) Pop() (Task, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.tasks) == 0 {
		return Task{}, false
	}
	return heap.Pop(&q.tasks).(Task), true
}

// Len returns the number of queued tasks.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.tasks)
}

// Drain removes and returns every queued task.
func (q *Queue) Drain() []Task {
	q.mu.Lock()
	defer q.mu.Unlock()

	tasks := make([]Task, len(q.tasks))
	copy(tasks, q.tasks)
	clear(q.tasks)
	q.tasks = q.tasks[:0]
	return tasks
}

type taskHeap []Task

var _ heap.Interface = (*taskHeap)(nil)

func (h taskHeap) Len() int { return len(h) }

func (h taskHeap) Less(i, j int) bool {
	if h[i].Priority != h[j].Priority {
		return h[i].Priority > h[j].Priority
	}
	return h[i].seq < h[j].seq
}

func (h taskHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *taskHeap) Push(x any) { *h = append(*h, x.(Task)) }

func (h *taskHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = Task{}
	*h = old[:n-1]
	return t
}
