package api

import "paddock/internal/domain"

type teamsResponse struct {
	Teams []domain.Team `json:"teams"`
}

type teamResponse struct {
	Team *domain.Team `json:"team"`
}

type driversResponse struct {
	Drivers []domain.Driver `json:"drivers"`
}
