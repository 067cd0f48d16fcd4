// Package state holds the team browser screen state. Every transition is a
// value method that returns a new Screen and never shares slices with its
// receiver, so each step can be checked without a terminal.
package state

import (
	"strings"

	"paddock/internal/domain"
)

// Screen contains everything the team browser renders
type Screen struct {
	AllTeams       []domain.Team // last successful fetch-all
	DisplayedTeams []domain.Team // AllTeams, or the single search hit
	SearchQuery    string

	ErrorMessage string
	HasError     bool
	Suggestion   string // closest known name after a failed search

	Loading bool // a search or driver fetch is in flight

	SelectedTeam *domain.Team // non-nil while the driver modal is open
	Drivers      []domain.Driver
}

// New returns the state of a freshly mounted screen
func New() Screen {
	return Screen{
		AllTeams:       []domain.Team{},
		DisplayedTeams: []domain.Team{},
		Drivers:        []domain.Driver{},
	}
}

// ModalOpen reports whether the driver modal is visible
func (s Screen) ModalOpen() bool {
	return s.SelectedTeam != nil
}

// WithQuery binds the search input
func (s Screen) WithQuery(q string) Screen {
	s.SearchQuery = q
	return s
}

// SearchTerm returns the term to search for. ok is false when the query is
// blank or a request is already running, in which case nothing is sent.
func (s Screen) SearchTerm() (term string, ok bool) {
	term = strings.TrimSpace(s.SearchQuery)
	if term == "" || s.Loading {
		return "", false
	}
	return term, true
}

// FindTeam looks a team up by id in the full list
func (s Screen) FindTeam(id string) (domain.Team, bool) {
	for _, t := range s.AllTeams {
		if t.ID == id {
			return t, true
		}
	}
	return domain.Team{}, false
}

// BeginReload prepares for a fetch-all. Loading is not touched.
func (s Screen) BeginReload() Screen {
	return s.clearError()
}

// TeamsLoaded replaces both lists with a fresh fetch-all result
func (s Screen) TeamsLoaded(teams []domain.Team) Screen {
	s.AllTeams = cloneTeams(teams)
	s.DisplayedTeams = cloneTeams(teams)
	return s
}

// TeamsFailed records a failed fetch-all; the lists stay as they were
func (s Screen) TeamsFailed(msg string) Screen {
	return s.withError(msg)
}

// BeginRequest marks a search or driver fetch as in flight and drops any
// stale error from an earlier attempt
func (s Screen) BeginRequest() Screen {
	s = s.clearError()
	s.Loading = true
	return s
}

// Settle finishes an in-flight request. Loading is cleared before the
// outcome is applied, whatever the outcome is.
func (s Screen) Settle(outcome func(Screen) Screen) Screen {
	s.Loading = false
	if outcome == nil {
		return s
	}
	return outcome(s)
}

// SearchSucceeded shows only the team the backend returned
func (s Screen) SearchSucceeded(team domain.Team) Screen {
	s.DisplayedTeams = []domain.Team{team}
	return s
}

// SearchFailed records a failed search; the displayed list is unchanged
func (s Screen) SearchFailed(msg, suggestion string) Screen {
	s = s.withError(msg)
	s.Suggestion = suggestion
	return s
}

// DriversLoaded stores the drivers and opens the modal for teamID. A team
// missing from AllTeams leaves the modal closed while the drivers are still
// stored.
func (s Screen) DriversLoaded(teamID string, drivers []domain.Driver) Screen {
	s.Drivers = cloneDrivers(drivers)
	if team, ok := s.FindTeam(teamID); ok {
		s.SelectedTeam = &team
	} else {
		s.SelectedTeam = nil
	}
	return s
}

// DriversFailed records a failed driver fetch
func (s Screen) DriversFailed(msg string) Screen {
	return s.withError(msg)
}

// CloseModal clears the selected team and its drivers together
func (s Screen) CloseModal() Screen {
	s.SelectedTeam = nil
	s.Drivers = []domain.Driver{}
	return s
}

// ClearSearch empties the query and shows every team again, without a request
func (s Screen) ClearSearch() Screen {
	s.SearchQuery = ""
	s.Suggestion = ""
	s.DisplayedTeams = cloneTeams(s.AllTeams)
	return s
}

func (s Screen) withError(msg string) Screen {
	s.ErrorMessage = msg
	s.HasError = true
	return s
}

func (s Screen) clearError() Screen {
	s.ErrorMessage = ""
	s.HasError = false
	s.Suggestion = ""
	return s
}

func cloneTeams(in []domain.Team) []domain.Team {
	out := make([]domain.Team, len(in))
	copy(out, in)
	return out
}

func cloneDrivers(in []domain.Driver) []domain.Driver {
	out := make([]domain.Driver, len(in))
	copy(out, in)
	return out
}
