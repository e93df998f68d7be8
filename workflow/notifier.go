package workflow

import "sync"

// Notification levels.
const (
	LevelSuccess = "success"
	LevelError   = "error"
)

// Notification is one user-visible, non-blocking message. Every success and
// failure in the workflow funnels through these instead of propagating.
type Notification struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// Notifier receives workflow outcome messages.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// Queue is a thread-safe Notifier that buffers notifications until the next
// response drains them, the way the web client queued toasts.
type Queue struct {
	mu      sync.Mutex
	pending []Notification
}

// NewQueue creates an empty notification queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Success enqueues a success notification.
func (q *Queue) Success(message string) {
	q.push(LevelSuccess, message)
}

// Error enqueues an error notification.
func (q *Queue) Error(message string) {
	q.push(LevelError, message)
}

func (q *Queue) push(level, message string) {
	if message == "" {
		return
	}
	q.mu.Lock()
	q.pending = append(q.pending, Notification{Level: level, Message: message})
	q.mu.Unlock()
}

// Drain returns all pending notifications and clears the queue.
func (q *Queue) Drain() []Notification {
	q.mu.Lock()
	defer q.mu.Unlock()
	drained := q.pending
	q.pending = nil
	return drained
}
