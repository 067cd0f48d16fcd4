package roster

import (
	"context"
	"log"

	"paddock/internal/api"
	"paddock/internal/domain"
	"paddock/internal/eventbus"
)

// Backend is the subset of the API client the service relies on
type Backend interface {
	Teams(ctx context.Context) ([]domain.Team, error)
	TeamByName(ctx context.Context, name string) (domain.Team, error)
	Drivers(ctx context.Context, teamID string) ([]domain.Driver, error)
	TeamLogoURL(logo string) string
	BannerURL() string
}

// Service fronts the backend for the UI and reports every failed call on
// the event bus
type Service struct {
	backend Backend
	bus     eventbus.EventBus
}

// NewService creates a roster service. bus may be nil.
func NewService(backend Backend, bus eventbus.EventBus) *Service {
	return &Service{backend: backend, bus: bus}
}

// Teams fetches every team
func (s *Service) Teams(ctx context.Context) ([]domain.Team, error) {
	teams, err := s.backend.Teams(ctx)
	if err != nil {
		s.reportFailure("teams", err)
		return nil, err
	}
	log.Printf("Fetched %d teams", len(teams))
	return teams, nil
}

// TeamByName searches a team by exact name
func (s *Service) TeamByName(ctx context.Context, name string) (domain.Team, error) {
	team, err := s.backend.TeamByName(ctx, name)
	if err != nil {
		s.reportFailure("team by name", err)
		return domain.Team{}, err
	}
	return team, nil
}

// Drivers fetches the drivers of a team
func (s *Service) Drivers(ctx context.Context, teamID string) ([]domain.Driver, error) {
	drivers, err := s.backend.Drivers(ctx, teamID)
	if err != nil {
		s.reportFailure("drivers", err)
		return nil, err
	}
	return drivers, nil
}

// TeamLogoURL resolves a team logo reference
func (s *Service) TeamLogoURL(logo string) string {
	return s.backend.TeamLogoURL(logo)
}

// BannerURL is the API logo address
func (s *Service) BannerURL() string {
	return s.backend.BannerURL()
}

func (s *Service) reportFailure(op string, err error) {
	event := eventbus.RequestFailedEvent{Op: op, Err: err}
	if reqErr, ok := api.AsRequestError(err); ok {
		event.RequestID = reqErr.RequestID
	}
	if s.bus == nil {
		log.Printf("Request %s failed: %v", op, err)
		return
	}
	s.bus.Publish(event)
}
