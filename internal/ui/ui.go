package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/mixtape/internal/controllers"
)

// Tab identifies the visible tab in the TUI.
type Tab int

const (
	HomeTab Tab = iota
	LibraryTab
)

type homeStateMsg controllers.HomeState

type libraryStateMsg controllers.LibraryState

// Model represents the TUI application state.
type Model struct {
	home    *controllers.Home
	library *controllers.Library

	tab     Tab
	width   int
	height  int
	built   bool
	songs   list.Model
	homeSt  controllers.HomeState
	libSt   controllers.LibraryState
	help    help.Model
	keys    keyMap
}

// NewModel creates a new TUI model with the provided controllers.
func NewModel(home *controllers.Home, library *controllers.Library) *Model {
	return &Model{
		home:    home,
		library: library,
		help:    help.New(),
		keys:    newKeyMap(),
	}
}

// Init kicks off the initial state reads for both tabs.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.readHome(), m.readLibrary())
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.built {
			m.songs.SetSize(msg.Width-4, msg.Height-8)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeys(msg)

	case homeStateMsg:
		m.homeSt = controllers.HomeState(msg)
		m.rebuildSongList()
		return m, nil

	case libraryStateMsg:
		m.libSt = controllers.LibraryState(msg)
		return m, nil
	}

	if m.tab == HomeTab && m.built {
		var cmd tea.Cmd
		m.songs, cmd = m.songs.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the UI for the active tab.
func (m *Model) View() string {
	header := m.renderTabs()

	var body string
	switch m.tab {
	case HomeTab:
		body = m.renderHome()
	case LibraryTab:
		body = m.renderLibrary()
	}

	helpView := m.help.ShortHelpView([]key.Binding{m.keys.toggle, m.keys.tab, m.keys.refresh, m.keys.quit})
	return fmt.Sprintf("%s\n%s\n\n%s", header, body, helpView)
}

func (m *Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		if m.tab == HomeTab && m.built && m.songs.FilterState() == list.Filtering {
			break
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.tab):
		if m.tab == HomeTab {
			m.tab = LibraryTab
			// Re-derive favorites from the latest catalog snapshot on activation.
			return m, m.readLibrary()
		}
		m.tab = HomeTab
		return m, m.readHome()

	case key.Matches(msg, m.keys.refresh):
		if m.tab == LibraryTab {
			return m, m.readLibrary()
		}
		return m, m.readHome()

	case key.Matches(msg, m.keys.toggle):
		if m.tab == HomeTab && m.built {
			if item, ok := m.songs.SelectedItem().(songItem); ok {
				return m, m.toggleFavorite(item.song.ID)
			}
		}
	}

	if m.tab == HomeTab && m.built {
		var cmd tea.Cmd
		m.songs, cmd = m.songs.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) readHome() tea.Cmd {
	return func() tea.Msg {
		m.home.Load()
		return homeStateMsg(m.home.State())
	}
}

func (m *Model) readLibrary() tea.Cmd {
	return func() tea.Msg {
		m.library.Refresh()
		return libraryStateMsg(m.library.State())
	}
}

func (m *Model) toggleFavorite(songID string) tea.Cmd {
	return func() tea.Msg {
		m.home.ToggleFavorite(songID)
		return homeStateMsg(m.home.State())
	}
}

// rebuildSongList rebuilds the flattened song list from the current home
// state, keeping the selection in place across republishes.
func (m *Model) rebuildSongList() {
	if m.homeSt.Phase != controllers.Ready {
		return
	}

	items := []list.Item{}
	for _, category := range m.homeSt.Categories {
		for _, song := range category.Songs {
			items = append(items, songItem{song: song, category: category.Name})
		}
	}

	if !m.built {
		m.songs = list.New(items, list.NewDefaultDelegate(), 0, 0)
		m.songs.Title = "Home"
		m.songs.SetSize(m.width-4, m.height-8)
		m.built = true
		return
	}

	selected := m.songs.Index()
	m.songs.SetItems(items)
	m.songs.Select(selected)
}

func (m *Model) renderTabs() string {
	home := styles.tab.Render("Home")
	library := styles.tab.Render("Library")
	if m.tab == HomeTab {
		home = styles.activeTab.Render("Home")
	} else {
		library = styles.activeTab.Render("Library")
	}
	return home + library
}

func (m *Model) renderHome() string {
	switch m.homeSt.Phase {
	case controllers.Loading:
		return styles.help.Render("Loading catalog...")
	case controllers.Failed:
		return styles.err.Render(fmt.Sprintf("Error: %s", m.homeSt.Message))
	}

	if !m.built {
		return styles.help.Render("Loading catalog...")
	}
	return m.songs.View()
}

func (m *Model) renderLibrary() string {
	switch m.libSt.Phase {
	case controllers.Loading:
		return styles.help.Render("Loading library...")
	case controllers.Failed:
		return styles.err.Render(fmt.Sprintf("Error: %s", m.libSt.Message))
	}

	var b strings.Builder

	b.WriteString(styles.title.Render("Playlists"))
	b.WriteString("\n")
	for _, playlist := range m.libSt.Playlists {
		dot := NewStyle(string(TintFor(playlist.ColorSeed))).Render("●")
		b.WriteString(fmt.Sprintf("%s %s  %s\n", dot, playlist.Name,
			styles.help.Render(fmt.Sprintf("%d songs • %s", playlist.SongCount, playlist.Description))))
	}

	b.WriteString("\n")
	b.WriteString(styles.title.Render("Favorites"))
	b.WriteString("\n")
	if len(m.libSt.FavoriteSongs) == 0 {
		b.WriteString(styles.help.Render("No favorites yet. Toggle songs on the Home tab with 'f'."))
		b.WriteString("\n")
	} else {
		for _, song := range m.libSt.FavoriteSongs {
			heart := styles.ok.Render("♥")
			b.WriteString(fmt.Sprintf("%s %s  %s\n", heart, song.Title, styles.help.Render(song.Artist)))
		}
	}

	return b.String()
}
