package ui

import (
	"paddock/internal/domain"
	"paddock/internal/eventbus"
	"paddock/internal/state"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// teamsLoadedMsg contains the result of a fetch-all
type teamsLoadedMsg struct {
	teams []domain.Team
	err   error
}

// requestDoneMsg finishes a tracked request. apply is the outcome, applied
// after Loading has been cleared.
type requestDoneMsg struct {
	op    string
	apply func(state.Screen) state.Screen
}

// pagerClosedMsg contains the result of a pager command
type pagerClosedMsg struct {
	what string
	err  error
}

// pauseRenderingMsg signals that an external pager owns the terminal
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals that the pager has exited
type resumeRenderingMsg struct{}
