package ui

import (
	"context"
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"paddock/internal/api"
	"paddock/internal/domain"
	"paddock/internal/state"
)

// Roster is what the team browser needs from the backend
type Roster interface {
	Teams(ctx context.Context) ([]domain.Team, error)
	TeamByName(ctx context.Context, name string) (domain.Team, error)
	Drivers(ctx context.Context, teamID string) ([]domain.Driver, error)
	TeamLogoURL(logo string) string
	BannerURL() string
}

type outcome = func(state.Screen) state.Screen

// loadTeamsCmd fetches every team. It is not tracked: Loading stays as is.
func loadTeamsCmd(ctx context.Context, roster Roster) tea.Cmd {
	return func() (msg tea.Msg) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("Loading teams panicked: %v", r)
				msg = teamsLoadedMsg{err: fmt.Errorf("load teams: %v", r)}
			}
		}()
		teams, err := roster.Teams(ctx)
		return teamsLoadedMsg{teams: teams, err: err}
	}
}

// track runs fetch off the update loop and always delivers exactly one
// requestDoneMsg. A panicking fetch settles with onPanic.
func track(op string, onPanic outcome, fetch func() outcome) tea.Cmd {
	return func() (msg tea.Msg) {
		done := requestDoneMsg{op: op}
		defer func() {
			if r := recover(); r != nil {
				log.Printf("Request %s panicked: %v", op, r)
				done.apply = onPanic
			}
			msg = done
		}()
		done.apply = fetch()
		return done
	}
}

// searchCmd looks a team up by name. The error shown is the transport
// message when there is one.
func searchCmd(ctx context.Context, roster Roster, msgs Messages, term string) tea.Cmd {
	onPanic := func(s state.Screen) state.Screen {
		return s.SearchFailed(msgs.SearchTeam, "")
	}
	return track("search", onPanic, func() outcome {
		team, err := roster.TeamByName(ctx, term)
		if err != nil {
			text := msgs.SearchTeam
			if reqErr, ok := api.AsRequestError(err); ok {
				text = reqErr.Message()
			}
			return func(s state.Screen) state.Screen {
				return s.SearchFailed(text, s.Suggest(term))
			}
		}
		return func(s state.Screen) state.Screen {
			return s.SearchSucceeded(team)
		}
	})
}

// selectTeamCmd fetches the drivers of teamID
func selectTeamCmd(ctx context.Context, roster Roster, msgs Messages, teamID string) tea.Cmd {
	fail := func(s state.Screen) state.Screen {
		return s.DriversFailed(msgs.FetchDrivers)
	}
	return track("drivers", fail, func() outcome {
		drivers, err := roster.Drivers(ctx, teamID)
		if err != nil {
			return fail
		}
		return func(s state.Screen) state.Screen {
			return s.DriversLoaded(teamID, drivers)
		}
	})
}
