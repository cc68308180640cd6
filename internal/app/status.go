package app

import (
	"fmt"

	"showroom/internal/assets"
)

// loadStatus records the state of each tracked load for the debug panel.
// It is only touched on the frame loop.
type loadStatus struct {
	order []string
	state map[string]string
}

func newLoadStatus() *loadStatus {
	return &loadStatus{state: make(map[string]string)}
}

func (s *loadStatus) set(name, state string) {
	if _, ok := s.state[name]; !ok {
		s.order = append(s.order, name)
	}
	s.state[name] = state
}

func (s *loadStatus) Get(name string) string {
	return s.state[name]
}

func (s *loadStatus) Lines() []string {
	lines := make([]string, 0, len(s.order))
	for _, name := range s.order {
		lines = append(lines, fmt.Sprintf("%-10s %s", name, s.state[name]))
	}
	return lines
}

// track marks name as loading and updates it through d when f resolves.
func track[T any](s *loadStatus, d assets.Dispatcher, name string, f *assets.Future[T]) {
	s.set(name, "loading")
	f.Then(d, func(_ T, err error) {
		if err != nil {
			s.set(name, "failed")
			return
		}
		s.set(name, "ready")
	})
}
