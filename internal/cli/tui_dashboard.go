package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/worklog/internal/analytics"
	"github.com/alexanderramin/worklog/internal/cli/formatter"
	"github.com/alexanderramin/worklog/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// ── tabs ─────────────────────────────────────────────────────────────────────

type dashboardTab int

const (
	tabOverview dashboardTab = iota
	tabEntries
	tabCategories
	tabWorkers
	tabTrend
	tabCount
)

func (t dashboardTab) String() string {
	switch t {
	case tabOverview:
		return "Overview"
	case tabEntries:
		return "Entries"
	case tabCategories:
		return "Categories"
	case tabWorkers:
		return "Workers"
	case tabTrend:
		return "Trend"
	default:
		return "?"
	}
}

// ── keys ─────────────────────────────────────────────────────────────────────

type dashboardKeyMap struct {
	Next, Prev, Worker, Category, Clear, Refresh, Quit key.Binding
}

func newDashboardKeyMap() dashboardKeyMap {
	return dashboardKeyMap{
		Next:     key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next")),
		Prev:     key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("shift+tab", "prev")),
		Worker:   key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "worker")),
		Category: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "category")),
		Clear:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear filters")),
		Refresh:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k dashboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Worker, k.Category, k.Clear, k.Refresh, k.Quit}
}

// ── messages ─────────────────────────────────────────────────────────────────

// dashboardLoadedMsg carries everything one refresh loads.
type dashboardLoadedMsg struct {
	resp       *service.DashboardResponse
	list       *service.EntryList
	workers    []string
	categories []string
	err        error
}

// ── model ────────────────────────────────────────────────────────────────────

// dashboardModel is the live dashboard: tabbed views over the same filtered
// collection, recomputed from the store on every filter change or refresh.
type dashboardModel struct {
	app  *App
	keys dashboardKeyMap

	tab    dashboardTab
	filter analytics.Filter

	loading    bool
	err        error
	resp       *service.DashboardResponse
	list       *service.EntryList
	workers    []string
	categories []string

	vp     viewport.Model
	width  int
	height int
}

const dashboardChromeLines = 5 // title, tabs, filter line, separator, status bar

func newDashboardModel(app *App) dashboardModel {
	return dashboardModel{
		app:     app,
		keys:    newDashboardKeyMap(),
		loading: true,
		vp:      viewport.New(80, 20),
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return m.load()
}

func (m dashboardModel) load() tea.Cmd {
	app := m.app
	filter := m.filter
	return func() tea.Msg {
		ctx := context.Background()
		now := app.now()

		resp, err := app.Dashboard.Dashboard(ctx, service.DashboardRequest{Now: &now, Filter: filter})
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}
		list, err := app.Entries.List(ctx, filter)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}
		workers, err := app.Entries.Workers(ctx)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}
		categories, err := app.Entries.Categories(ctx)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}
		return dashboardLoadedMsg{resp: resp, list: list, workers: workers, categories: categories}
	}
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.vp.Width = msg.Width
		m.vp.Height = max(msg.Height-dashboardChromeLines, 3)
		m.syncContent()
		return m, nil

	case dashboardLoadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.resp, m.list = msg.resp, msg.list
			m.workers, m.categories = msg.workers, msg.categories
		}
		m.syncContent()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.tab = (m.tab + 1) % tabCount
			m.syncContent()
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.tab = (m.tab + tabCount - 1) % tabCount
			m.syncContent()
			return m, nil
		case key.Matches(msg, m.keys.Worker):
			m.filter.Worker = cycle(m.workers, m.filter.Worker)
			return m.reload()
		case key.Matches(msg, m.keys.Category):
			m.filter.Category = cycle(m.categories, m.filter.Category)
			return m.reload()
		case key.Matches(msg, m.keys.Clear):
			m.filter = analytics.Filter{}
			return m.reload()
		case key.Matches(msg, m.keys.Refresh):
			return m.reload()
		}
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m dashboardModel) reload() (tea.Model, tea.Cmd) {
	m.loading = true
	return m, m.load()
}

// cycle steps through "" (no filter) followed by each option in order.
func cycle(options []string, current string) string {
	if len(options) == 0 {
		return ""
	}
	if current == "" {
		return options[0]
	}
	for i, o := range options {
		if o == current {
			if i+1 < len(options) {
				return options[i+1]
			}
			return ""
		}
	}
	return ""
}

func (m *dashboardModel) syncContent() {
	m.vp.SetContent(m.tabContent())
	m.vp.GotoTop()
}

func (m dashboardModel) tabContent() string {
	if m.err != nil {
		return formatter.StyleRed.Render("Error: " + m.err.Error())
	}
	if m.resp == nil {
		return formatter.Dim("Loading…")
	}

	switch m.tab {
	case tabEntries:
		return formatter.FormatEntryTable(m.list.Entries, m.list.Total, m.resp.Today)
	case tabCategories:
		return formatter.FormatDistribution(m.resp.Distribution)
	case tabWorkers:
		return formatter.FormatRanking(m.resp.Ranking)
	case tabTrend:
		return formatter.FormatSeries(m.resp.Series)
	default:
		var b strings.Builder
		b.WriteString(formatter.FormatMetrics(m.resp.Metrics))
		fmt.Fprintf(&b, "\n%s  %s\n", formatter.Dim("Total hours   "), fmt.Sprintf("%.2fh", analytics.Round2(m.resp.TotalHours)))
		fmt.Fprintf(&b, "%s  %d of %d\n", formatter.Dim("Entries       "), m.resp.FilteredCount, m.resp.EntryCount)
		return b.String()
	}
}

func (m dashboardModel) View() string {
	width := max(m.width, 20)
	var b strings.Builder

	title := formatter.StyleHeader.Render("WORKLOG")
	if m.resp != nil {
		title += formatter.Dim("  week from " + m.resp.WeekFrom + " · today " + m.resp.Today)
	}
	if m.loading {
		title += formatter.Dim("  (loading)")
	}
	b.WriteString(title + "\n")

	tabs := make([]string, 0, tabCount)
	for t := dashboardTab(0); t < tabCount; t++ {
		if t == m.tab {
			tabs = append(tabs, formatter.StyleBold.Render("["+t.String()+"]"))
		} else {
			tabs = append(tabs, formatter.Dim(" "+t.String()+" "))
		}
	}
	b.WriteString(strings.Join(tabs, " ") + "\n")
	b.WriteString(m.filterLine() + "\n")
	b.WriteString(formatter.Dim(strings.Repeat("─", width)) + "\n")
	b.WriteString(m.vp.View() + "\n")

	hints := make([]string, 0, len(m.keys.ShortHelp()))
	for _, k := range m.keys.ShortHelp() {
		hints = append(hints, formatter.Dim(k.Help().Key+": "+k.Help().Desc))
	}
	b.WriteString(strings.Join(hints, "  "))
	return b.String()
}

func (m dashboardModel) filterLine() string {
	if m.filter.IsEmpty() {
		return formatter.Dim("filter: none")
	}
	var parts []string
	if m.filter.Worker != "" {
		parts = append(parts, "worker: "+formatter.Bold(m.filter.Worker))
	}
	if m.filter.Category != "" {
		parts = append(parts, "category: "+formatter.StylePurple.Render(m.filter.Category))
	}
	return formatter.Dim("filter: ") + strings.Join(parts, formatter.Dim(", "))
}
