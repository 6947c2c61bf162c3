package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"forkful/internal/model"
)

var screenTabs = []struct {
	screen model.Screen
	label  string
}{
	{model.ScreenBrowse, "Browse"},
	{model.ScreenSearch, "Search"},
	{model.ScreenFavorites, "Favorites"},
	{model.ScreenPlanner, "Planner"},
}

// Model is the root Bubble Tea model.
type Model struct {
	stores Stores
	keys   KeyMap

	screen     model.Screen
	lastScreen model.Screen // where Back from the detail screen returns

	width  int
	height int

	info        string
	showingHelp bool

	browse    BrowseModel
	search    SearchModel
	favorites FavoritesModel
	planner   PlannerModel
	detail    DetailModel
}

// New creates the root model over the given stores.
func New(stores Stores) Model {
	keys := DefaultKeyMap()
	return Model{
		stores:    stores,
		keys:      keys,
		screen:    model.ScreenBrowse,
		browse:    NewBrowseModel(stores, keys),
		search:    NewSearchModel(stores, keys),
		favorites: NewFavoritesModel(stores, keys),
		planner:   NewPlannerModel(stores, keys),
		detail:    NewDetailModel(stores, keys),
	}
}

// Init kicks off the catalog and metadata loads.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		initCatalogCmd(m.stores.Catalog),
		initMetadataCmd(m.stores.Metadata),
	)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case model.CatalogUpdatedMsg:
		m.browse.Clamp()
		return m, nil

	case model.MetadataUpdatedMsg:
		var cmd tea.Cmd
		m.planner, cmd = m.planner.MetadataReady()
		return m, cmd

	case model.SearchDoneMsg, model.DetailFetchedMsg, model.SuggestionsUpdatedMsg:
		// Views read the stores directly; nothing to carry over.
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// Screens with focused text entry get every key except ctrl+c.
	if m.editing() {
		return m.routeKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showingHelp = !m.showingHelp
		return m, nil

	case key.Matches(msg, m.keys.NextScreen), key.Matches(msg, m.keys.PrevScreen):
		if m.showingHelp {
			return m, nil
		}
		return m.cycleScreen(key.Matches(msg, m.keys.NextScreen)), nil
	}

	if m.showingHelp {
		if key.Matches(msg, m.keys.Back) || key.Matches(msg, m.keys.Help) {
			m.showingHelp = false
		}
		return m, nil
	}

	return m.routeKey(msg)
}

func (m Model) routeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.info = ""

	switch m.screen {
	case model.ScreenBrowse:
		var open string
		m.browse, cmd, open = m.browse.Update(msg)
		if open != "" {
			return m.openDetail(open)
		}

	case model.ScreenSearch:
		var open string
		m.search, cmd, open = m.search.Update(msg)
		if open != "" {
			return m.openDetail(open)
		}

	case model.ScreenFavorites:
		var open string
		m.favorites, cmd, open = m.favorites.Update(msg)
		if open != "" {
			return m.openDetail(open)
		}

	case model.ScreenPlanner:
		m.planner, cmd = m.planner.Update(msg)

	case model.ScreenDetail:
		if key.Matches(msg, m.keys.Back) {
			m.screen = m.lastScreen
			return m, nil
		}
		m.detail, cmd = m.detail.Update(msg)
	}

	return m, cmd
}

func (m Model) cycleScreen(forward bool) Model {
	if m.screen == model.ScreenDetail {
		m.screen = m.lastScreen
	}
	for i, tab := range screenTabs {
		if tab.screen != m.screen {
			continue
		}
		step := 1
		if !forward {
			step = len(screenTabs) - 1
		}
		m.screen = screenTabs[(i+step)%len(screenTabs)].screen
		break
	}
	return m
}

func (m Model) openDetail(id string) (tea.Model, tea.Cmd) {
	m.lastScreen = m.screen
	m.screen = model.ScreenDetail
	m.detail = m.detail.Open(id)
	return m, fetchDetailCmd(m.stores.Details, id)
}

// editing reports whether the active screen holds keyboard focus for
// text entry.
func (m Model) editing() bool {
	switch m.screen {
	case model.ScreenSearch:
		return m.search.Editing()
	case model.ScreenPlanner:
		return m.planner.Editing()
	}
	return false
}

// View renders the app.
func (m Model) View() string {
	if m.showingHelp {
		return m.helpView()
	}

	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteString("\n")

	switch m.screen {
	case model.ScreenBrowse:
		b.WriteString(m.browse.View(m.width))
	case model.ScreenSearch:
		b.WriteString(m.search.View(m.width))
	case model.ScreenFavorites:
		b.WriteString(m.favorites.View(m.width))
	case model.ScreenPlanner:
		b.WriteString(m.planner.View(m.width))
	case model.ScreenDetail:
		b.WriteString(m.detail.View(m.width))
	}

	if m.info != "" {
		b.WriteString("\n" + SuccessStyle.Render(m.info))
	}
	b.WriteString("\n" + m.footerView())
	return b.String()
}

func (m Model) headerView() string {
	var tabs []string
	active := m.screen
	if active == model.ScreenDetail {
		active = m.lastScreen
	}
	for _, tab := range screenTabs {
		if tab.screen == active {
			tabs = append(tabs, ActiveTabStyle.Render(tab.label))
		} else {
			tabs = append(tabs, TabStyle.Render(tab.label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		TitleStyle.Render("forkful"),
		" ",
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
	)
}

func (m Model) footerView() string {
	return FooterStyle.Render("tab: switch screen · ?: help · q: quit")
}
