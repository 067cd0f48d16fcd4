package ui

import "strings"

// Messages holds every user-visible string of the team browser
type Messages struct {
	Title             string
	LoadTeams         string // fetch-all failed
	SearchTeam        string // search failed without a transport message
	FetchDrivers      string // driver fetch failed
	SearchPlaceholder string
	SearchButton      string
	Searching         string
	Close             string
	NoTeams           string
	NoDrivers         string
	Suggestion        string // format, takes the suggested name
	ModalHint         string
	HelpTitle         string
	RosterTitle       string // format, takes the team name
}

var catalog = map[string]Messages{
	"pt-BR": {
		Title:             "Equipes",
		LoadTeams:         "Erro ao buscar dados das equipes.",
		SearchTeam:        "Erro ao buscar equipe.",
		FetchDrivers:      "Erro ao buscar pilotos.",
		SearchPlaceholder: "Buscar equipe...",
		SearchButton:      "Pesquisar",
		Searching:         "Buscando...",
		Close:             "Fechar",
		NoTeams:           "Nenhuma equipe.",
		NoDrivers:         "Nenhum piloto.",
		Suggestion:        "Você quis dizer %q?",
		ModalHint:         "↑/↓ rolar • p paginador • esc fechar",
		HelpTitle:         "Ajuda",
		RosterTitle:       "Pilotos da %s",
	},
	"en": {
		Title:             "Teams",
		LoadTeams:         "Failed to fetch team data.",
		SearchTeam:        "Failed to fetch team.",
		FetchDrivers:      "Failed to fetch drivers.",
		SearchPlaceholder: "Search team...",
		SearchButton:      "Search",
		Searching:         "Searching...",
		Close:             "Close",
		NoTeams:           "No teams.",
		NoDrivers:         "No drivers.",
		Suggestion:        "Did you mean %q?",
		ModalHint:         "↑/↓ scroll • p pager • esc close",
		HelpTitle:         "Help",
		RosterTitle:       "%s drivers",
	},
}

// MessagesFor returns the catalogue for locale. Matching ignores case and
// "_" vs "-"; unknown locales fall back to pt-BR.
func MessagesFor(locale string) Messages {
	normalized := strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
	for name, msgs := range catalog {
		if strings.EqualFold(name, normalized) {
			return msgs
		}
	}
	return catalog["pt-BR"]
}
