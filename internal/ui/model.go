package ui

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"paddock/internal/config"
	"paddock/internal/eventbus"
	"paddock/internal/logo"
	"paddock/internal/state"
	"paddock/internal/ui/logic"
	"paddock/internal/ui/views"
)

type focusArea int

const (
	focusList focusArea = iota
	focusSearch
)

// Model is the team browser
type Model struct {
	ctx    context.Context
	bus    eventbus.EventBus
	config *config.Config
	roster Roster
	msgs   Messages
	screen state.Screen

	// Thumbnails by image URL, filled from LogoLoaded events
	logos  map[string]string
	banner string

	width       int
	height      int
	focus       focusArea
	loaded      bool // first fetch-all finished
	inPagerMode bool
	e2e         bool

	search    textinput.Model
	spinner   spinner.Model
	help      help.Model
	keys      keyMap
	teamNav   *logic.Navigator
	driverNav *logic.Navigator
	renderer  *views.Renderer
	pager     *PagerOps

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model. bus may be nil, in which case no logos
// are requested.
func NewModel(ctx context.Context, bus eventbus.EventBus, cfg *config.Config, roster Roster) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	msgs := MessagesFor(cfg.UISettings.Locale)

	ti := textinput.New()
	ti.Placeholder = msgs.SearchPlaceholder
	ti.Prompt = "⌕ "
	ti.CharLimit = 64

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))

	m := &Model{
		ctx:       ctx,
		bus:       bus,
		config:    cfg,
		roster:    roster,
		msgs:      msgs,
		screen:    state.New(),
		logos:     make(map[string]string),
		search:    ti,
		spinner:   sp,
		help:      help.New(),
		keys:      newKeyMap(),
		teamNav:   logic.NewNavigator(2),
		driverNav: logic.NewNavigator(1),
		renderer:  views.NewRenderer(),
		e2e:       os.Getenv("PADDOCK_E2E_TEST") == "1",
	}
	m.teamNav.SetItemHeight(m.itemHeight())
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager = NewPagerOps(p)
}

// Screen returns the current screen state
func (m *Model) Screen() state.Screen {
	return m.screen
}

// Init starts the one-off fetch-all and the spinner
func (m *Model) Init() tea.Cmd {
	m.requestLogo(m.roster.BannerURL(), m.bannerWidth())
	return tea.Batch(loadTeamsCmd(m.ctx, m.roster), m.spinner.Tick)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.search.Width = msg.Width - 24

	case tea.KeyMsg:
		cmd = m.handleKey(msg)

	case teamsLoadedMsg:
		m.loaded = true
		if msg.err != nil {
			log.Printf("Loading teams failed: %v", msg.err)
			m.screen = m.screen.TeamsFailed(m.msgs.LoadTeams)
			break
		}
		m.screen = m.screen.TeamsLoaded(msg.teams)
		m.teamNav.Reset()
		m.requestTeamLogos()

	case requestDoneMsg:
		m.screen = m.screen.Settle(msg.apply)
		switch msg.op {
		case "search":
			m.teamNav.Reset()
			m.requestTeamLogos()
		case "drivers":
			m.driverNav.Reset()
		}

	case EventMsg:
		m.handleEvent(msg.Event)

	case spinner.TickMsg:
		if m.inPagerMode {
			return m, nil
		}
		m.spinner, cmd = m.spinner.Update(msg)

	case pagerClosedMsg:
		if msg.err != nil {
			log.Printf("%s pager failed: %v", msg.what, msg.err)
		}

	case pauseRenderingMsg:
		m.inPagerMode = true

	case resumeRenderingMsg:
		m.inPagerMode = false
		cmd = m.spinner.Tick

	default:
		// Cursor blink and other text input messages
		if m.focus == focusSearch {
			m.search, cmd = m.search.Update(msg)
		}
	}

	m.syncLayout()
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}

	if m.screen.ModalOpen() {
		return m.handleModalKey(msg)
	}
	if m.focus == focusSearch {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.teamNav.Move(-1)
	case key.Matches(msg, m.keys.Down):
		m.teamNav.Move(1)
	case key.Matches(msg, m.keys.PageUp):
		m.teamNav.PageUp()
	case key.Matches(msg, m.keys.PageDown):
		m.teamNav.PageDown()
	case key.Matches(msg, m.keys.Home):
		m.teamNav.Home()
	case key.Matches(msg, m.keys.End):
		m.teamNav.End()
	case key.Matches(msg, m.keys.Select):
		return m.selectCurrent()
	case key.Matches(msg, m.keys.Search):
		m.focus = focusSearch
		return m.search.Focus()
	case key.Matches(msg, m.keys.Reload):
		m.screen = m.screen.BeginReload()
		return loadTeamsCmd(m.ctx, m.roster)
	case key.Matches(msg, m.keys.Help):
		return m.pagerCmd("help", renderHelpContent(m.msgs.HelpTitle, m.keys))
	}
	return nil
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		return m.submitSearch()
	case "esc":
		m.search.SetValue("")
		m.screen = m.screen.ClearSearch()
		m.teamNav.Reset()
		return nil
	case "tab", "down":
		m.focus = focusList
		m.search.Blur()
		return nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.screen = m.screen.WithQuery(m.search.Value())
	return cmd
}

func (m *Model) handleModalKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "enter", "q":
		m.screen = m.screen.CloseModal()
	case "up", "k":
		m.driverNav.Move(-1)
	case "down", "j":
		m.driverNav.Move(1)
	case "pgup":
		m.driverNav.PageUp()
	case "pgdown":
		m.driverNav.PageDown()
	case "p":
		team := m.screen.SelectedTeam
		title := fmt.Sprintf(m.msgs.RosterTitle, team.Name)
		return m.pagerCmd("roster", renderRosterContent(title, m.screen.Drivers))
	}
	return nil
}

// submitSearch starts a search unless the query is blank or a request is
// already running
func (m *Model) submitSearch() tea.Cmd {
	term, ok := m.screen.SearchTerm()
	if !ok {
		return nil
	}
	m.screen = m.screen.BeginRequest()
	return searchCmd(m.ctx, m.roster, m.msgs, term)
}

// selectCurrent fetches the drivers of the team under the cursor
func (m *Model) selectCurrent() tea.Cmd {
	idx := m.teamNav.GetSelectedIndex()
	if idx < 0 || idx >= len(m.screen.DisplayedTeams) {
		return nil
	}
	team := m.screen.DisplayedTeams[idx]
	m.screen = m.screen.BeginRequest()
	return selectTeamCmd(m.ctx, m.roster, m.msgs, team.ID)
}

// pagerCmd returns a command that shows content in the ov pager, pausing
// rendering while it runs
func (m *Model) pagerCmd(what, content string) tea.Cmd {
	program := m.program
	pager := m.pager
	return func() tea.Msg {
		if program != nil {
			program.Send(pauseRenderingMsg{})
		}

		err := pager.Show(content)

		if program != nil {
			program.Send(resumeRenderingMsg{})
		}
		return pagerClosedMsg{what: what, err: err}
	}
}

func (m *Model) handleEvent(event eventbus.DomainEvent) {
	if e, ok := event.(eventbus.LogoLoadedEvent); ok {
		m.logos[e.URL] = e.Thumbnail
		if e.URL == m.roster.BannerURL() {
			m.banner = e.Thumbnail
		}
	}
}

func (m *Model) logoWidth() int {
	if !m.config.UISettings.ShowLogos {
		return 0
	}
	return m.config.UISettings.LogoWidth
}

func (m *Model) bannerWidth() int {
	return 2 * m.logoWidth()
}

// itemHeight is the height of a team card: name and link, or the logo
func (m *Model) itemHeight() int {
	h := 2
	if w := m.logoWidth(); w > 0 && logo.Rows(w) > h {
		h = logo.Rows(w)
	}
	return h
}

func (m *Model) requestLogo(url string, width int) {
	if m.bus == nil || width == 0 || url == "" {
		return
	}
	m.bus.Publish(eventbus.LogoRequestedEvent{URL: url, Width: width})
}

func (m *Model) requestTeamLogos() {
	for _, t := range m.screen.DisplayedTeams {
		if t.LogoURL == "" {
			continue
		}
		m.requestLogo(m.roster.TeamLogoURL(t.LogoURL), m.logoWidth())
	}
}

func (m *Model) bannerRows() int {
	if m.banner == "" {
		return 0
	}
	return lipgloss.Height(m.banner)
}

// modalVisible is how many driver names fit in the modal
func (m *Model) modalVisible() int {
	v := m.height - 12
	if v < 3 {
		v = 3
	}
	return v
}

// syncLayout keeps both navigators in step with the screen and window size
func (m *Model) syncLayout() {
	if m.height > 0 {
		m.teamNav.SetHeight(views.ListHeight(m.height, m.bannerRows()))
	}
	m.teamNav.SetCount(len(m.screen.DisplayedTeams))

	m.driverNav.SetHeight(m.modalVisible() + 2)
	m.driverNav.SetCount(len(m.screen.Drivers))
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}

	button := m.msgs.SearchButton
	if m.screen.Loading {
		button = m.msgs.Searching
	}

	st := views.ViewState{
		Width:          m.width,
		Height:         m.height,
		Title:          m.msgs.Title,
		Banner:         m.banner,
		SearchView:     m.search.View(),
		SearchFocused:  m.focus == focusSearch,
		ButtonLabel:    button,
		Loading:        m.screen.Loading,
		SpinnerView:    m.spinner.View(),
		LoadingLabel:   m.msgs.Searching,
		SelectedIndex:  m.teamNav.GetSelectedIndex(),
		ViewportOffset: m.teamNav.GetViewportOffset(),
		Visible:        m.teamNav.Visible(),
		ItemHeight:     m.itemHeight(),
		LogoWidth:      m.logoWidth(),
		EmptyLabel:     m.msgs.NoTeams,
		HelpView:       m.help.View(m.keys),
		Ready:          m.e2e && m.loaded,
	}
	if m.screen.HasError {
		st.ErrorMessage = m.screen.ErrorMessage
	}
	if m.screen.Suggestion != "" {
		st.Suggestion = fmt.Sprintf(m.msgs.Suggestion, m.screen.Suggestion)
	}

	for _, t := range m.screen.DisplayedTeams {
		url := m.roster.TeamLogoURL(t.LogoURL)
		thumb, ok := m.logos[url]
		if !ok && st.LogoWidth > 0 {
			thumb = logo.Blank(st.LogoWidth)
		}
		st.Teams = append(st.Teams, views.TeamRow{
			Name:      t.Name,
			LogoURL:   url,
			Thumbnail: thumb,
		})
	}

	if team := m.screen.SelectedTeam; team != nil {
		names := make([]string, len(m.screen.Drivers))
		for i, d := range m.screen.Drivers {
			names[i] = d.Name
		}
		st.Modal = &views.ModalState{
			Title:      team.Name,
			Drivers:    names,
			Offset:     m.driverNav.GetViewportOffset(),
			Visible:    m.modalVisible(),
			CloseLabel: m.msgs.Close,
			EmptyLabel: m.msgs.NoDrivers,
			Hint:       m.msgs.ModalHint,
		}
	}

	return m.renderer.Render(st)
}
