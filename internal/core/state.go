package core

import (
	"sync"

	"github.com/Rorical/nextword/internal/models"
)

// State is the whole decision state of the controller.
type State struct {
	Connected  bool
	Requesting bool
}

// SubmitEnabled reports whether a new prediction may start.
func (s State) SubmitEnabled() bool {
	return s.Connected && !s.Requesting
}

func (s State) Controls() models.Controls {
	return models.Controls{
		Loading:       s.Requesting,
		SubmitEnabled: s.SubmitEnabled(),
	}
}

type StateEvent int

const (
	ProbeSucceeded StateEvent = iota
	ProbeFailed
	RequestStarted
	RequestFinished
)

// Transition is the only way State changes.
func Transition(s State, ev StateEvent) State {
	switch ev {
	case ProbeSucceeded:
		s.Connected = true
	case ProbeFailed:
		s.Connected = false
	case RequestStarted:
		s.Requesting = true
	case RequestFinished:
		s.Requesting = false
	}
	return s
}

// stateStore serializes transitions coming from probe and submit goroutines.
type stateStore struct {
	mu    sync.Mutex
	state State
}

func (st *stateStore) Get() State {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.state
}

func (st *stateStore) Apply(ev StateEvent) State {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.state = Transition(st.state, ev)
	return st.state
}

// beginRequest moves to Requesting only if no request is in flight.
// It returns the state observed and whether the transition happened.
func (st *stateStore) beginRequest() (State, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.state.Requesting {
		return st.state, false
	}
	if !st.state.Connected {
		return st.state, false
	}
	st.state = Transition(st.state, RequestStarted)
	return st.state, true
}
