package app

import "sync"

// Queue collects tasks posted from loader goroutines and runs them on the
// frame loop, in the order they were posted.
type Queue struct {
	mu    sync.Mutex
	tasks []func()
}

func (q *Queue) Post(task func()) {
	if task == nil {
		return
	}
	q.mu.Lock()
	q.tasks = append(q.tasks, task)
	q.mu.Unlock()
}

// Drain runs every task queued so far and returns how many ran. Tasks
// posted while draining wait for the next call.
func (q *Queue) Drain() int {
	q.mu.Lock()
	tasks := q.tasks
	q.tasks = nil
	q.mu.Unlock()

	for _, task := range tasks {
		task()
	}
	return len(tasks)
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.tasks)
}
