package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/todo/internal/app"
	"github.com/idilsaglam/todo/internal/model"
	"github.com/idilsaglam/todo/internal/ui"
)

const (
	title = "TODO LIST"

	defaultWidth  = 80
	defaultHeight = 24
	progressWidth = 28
)

type mode int

const (
	modeBrowse mode = iota
	modeAdd
	modeSearch
)

// listItem adapts model.Item to bubbles/list.Item
type listItem struct{ model.Item }

func (i listItem) Title() string       { return i.Text }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.Text }

// Custom delegate to control how items render (single line)
type itemDelegate struct{ theme ui.Theme }

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	t := d.theme

	box := t.Muted.Render(t.BoxUnchecked)
	text := t.Base.Render(it.Text)
	if it.Done {
		box = t.Success.Render(t.BoxChecked)
		text = t.Done.Render(it.Text)
	}

	prefix := t.Base.Render("  ")
	if index == m.Index() {
		prefix = t.Selected.Render("> ")
	}
	fmt.Fprint(w, prefix+box+t.Base.Render(" ")+text)
}

// Model is the Bubble Tea model. All item and theme state lives on the
// shared *app.App; the model only keeps widget state.
type Model struct {
	app  *app.App
	keys keyMap
	mode mode

	list   list.Model
	input  textinput.Model // new item text
	search textinput.Model
	help   help.Model

	width, height int
}

// New builds the model for a; charLimit bounds the text inputs.
func New(a *app.App, charLimit int) Model {
	l := list.New(nil, itemDelegate{theme: ui.ForMode(a.Dark)}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(true)
	l.SetFilteringEnabled(false)
	l.SetStatusBarItemName("item", "items")
	l.DisableQuitKeybindings()

	in := textinput.New()
	in.Prompt = "> "
	in.Placeholder = "New item..."
	in.CharLimit = charLimit

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "search..."
	search.CharLimit = charLimit
	search.SetValue(a.Search)

	m := Model{
		app:    a,
		keys:   newKeyMap(),
		list:   l,
		input:  in,
		search: search,
		help:   help.New(),
		width:  defaultWidth,
		height: defaultHeight,
	}
	m.applyTheme()
	m.refresh()
	m.resize()
	return m
}

// Run starts the program on the alternate screen and blocks until quit.
func Run(a *app.App, charLimit int) error {
	p := tea.NewProgram(New(a, charLimit), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Force) {
			return m, tea.Quit
		}
		switch m.mode {
		case modeAdd:
			return m.updateAdd(msg)
		case modeSearch:
			return m.updateSearch(msg)
		}
		return m.updateBrowse(msg)
	}

	var cmd tea.Cmd
	switch m.mode {
	case modeAdd:
		m.input, cmd = m.input.Update(msg)
	case modeSearch:
		m.search, cmd = m.search.Update(msg)
	default:
		m.list, cmd = m.list.Update(msg)
	}
	return m, cmd
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Add):
		m.mode = modeAdd
		m.input.SetValue("")
		m.resize()
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.Search):
		m.mode = modeSearch
		m.search.CursorEnd()
		return m, m.search.Focus()
	case key.Matches(msg, m.keys.Toggle):
		if m.app.ToggleVisible(m.list.Index()) {
			m.refresh()
		}
		return m, nil
	case key.Matches(msg, m.keys.Remove):
		if m.app.RemoveVisible(m.list.Index()) {
			m.refresh()
		}
		return m, nil
	case key.Matches(msg, m.keys.Theme):
		m.app.ToggleTheme()
		m.applyTheme()
		return m, nil
	case key.Matches(msg, m.keys.Cancel) && m.app.Search != "":
		m.clearSearch()
		return m, nil
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		// blank text is ignored and the input stays open
		if !m.app.AddItem(m.input.Value()) {
			return m, nil
		}
		m.refresh()
		m.closeAdd()
		return m, nil
	case key.Matches(msg, m.keys.Cancel):
		m.closeAdd()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		m.mode = modeBrowse
		m.search.Blur()
		return m, nil
	case key.Matches(msg, m.keys.Cancel):
		m.clearSearch()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if v := m.search.Value(); v != m.app.Search {
		m.app.SetSearch(v)
		m.refresh()
	}
	return m, cmd
}

func (m *Model) closeAdd() {
	m.mode = modeBrowse
	m.input.SetValue("")
	m.input.Blur()
	m.resize()
}

func (m *Model) clearSearch() {
	m.mode = modeBrowse
	m.search.SetValue("")
	m.search.Blur()
	m.app.SetSearch("")
	m.refresh()
}

// refresh rebuilds the list rows from the filtered view.
func (m *Model) refresh() {
	vis := m.app.Visible()
	rows := make([]list.Item, 0, len(vis))
	for _, it := range vis {
		rows = append(rows, listItem{it})
	}
	idx := m.list.Index()
	m.list.SetItems(rows)
	if idx >= len(rows) {
		idx = len(rows) - 1
	}
	if idx < 0 {
		idx = 0
	}
	m.list.Select(idx)
}

func (m *Model) applyTheme() {
	t := ui.ForMode(m.app.Dark)
	m.list.SetDelegate(itemDelegate{theme: t})
	m.list.Styles.NoItems = t.Muted
	m.list.Styles.PaginationStyle = t.Help
	m.help.Styles.ShortKey = t.Accent
	m.help.Styles.ShortDesc = t.Help
	m.help.Styles.ShortSeparator = t.Help
	m.input.PromptStyle = t.Accent
	m.input.TextStyle = t.Base
	m.search.PromptStyle = t.Accent
	m.search.TextStyle = t.Base
}

// chrome is the number of rows taken by everything except the list.
func (m Model) chrome() int {
	// panel border (2) + header + progress + blank + search + blank + help
	n := 8
	if m.mode == modeAdd {
		n += 4
	}
	return n
}

func (m *Model) resize() {
	w := m.width - 4
	if w < 10 {
		w = 10
	}
	h := m.height - m.chrome()
	if h < 1 {
		h = 1
	}
	m.list.SetSize(w, h)
	m.help.Width = w
}

func (m Model) View() string {
	t := ui.ForMode(m.app.Dark)
	done, pending := m.app.Store.Stats()

	var b strings.Builder
	b.WriteString(ui.Header(t, title, done, pending))
	b.WriteString("\n")
	b.WriteString(t.Muted.Render(ui.ProgressBar(done, done+pending, progressWidth)))
	b.WriteString("\n\n")

	switch {
	case m.mode == modeSearch:
		b.WriteString(m.search.View())
	case m.app.Search != "":
		b.WriteString(t.Accent.Render("/ ") + t.Base.Render(m.app.Search) +
			t.Muted.Render(fmt.Sprintf("  (%d of %d)", len(m.list.Items()), done+pending)))
	default:
		b.WriteString(t.Muted.Render("/ search..."))
	}
	b.WriteString("\n")

	b.WriteString(m.list.View())
	b.WriteString("\n")

	if m.mode == modeAdd {
		box := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1)
		b.WriteString(box.Render(t.Title.Render("Add new item") + "\n" + m.input.View()))
		b.WriteString("\n")
	}

	if m.mode == modeBrowse {
		b.WriteString(m.help.ShortHelpView(m.keys.browseHelp()))
	} else {
		b.WriteString(m.help.ShortHelpView(m.keys.inputHelp()))
	}

	out := ui.Panel(t, b.String(), m.width-2)
	if t.Dark {
		return lipgloss.Place(m.width, m.height, lipgloss.Left, lipgloss.Top, out,
			lipgloss.WithWhitespaceBackground(t.Base.GetBackground()))
	}
	return out
}
