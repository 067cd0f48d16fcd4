package api

const (
	defaultBaseURL  = "http://localhost:4000"
	maxErrorBody    = 512
	maxImageBytes   = 4 << 20
	requestIDHeader = "X-Request-ID"

	teamsPath      = "/teams"
	teamByNamePath = "/team/name/"
	teamPath       = "/team/"
	staticTeams    = "/static/teams/"
	bannerPath     = "/static/logo.png"
)
