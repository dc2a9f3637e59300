package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/jonathan/trail-guidebook/internal/catalog"
	"github.com/jonathan/trail-guidebook/internal/links"
	"github.com/jonathan/trail-guidebook/internal/navigation"
	"go.uber.org/zap"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	// chrome is the tab bar, a blank line, the status line and help.
	chrome = 4
)

// Options configures the browser.
type Options struct {
	// GlamourStyle is a glamour standard style name, or "auto" to
	// detect from the terminal.
	GlamourStyle string
	Logger       *zap.Logger
}

// openedMsg reports the result of handing a URL to the Opener.
type openedMsg struct {
	url string
	err error
}

// Model is the bubbletea model for the browser. Each tab keeps its own
// cursor; drilling into a highlight pushes a detail view that esc pops.
// A case study detail pushes its used methods on top of itself.
type Model struct {
	repo   *catalog.Repository
	opener links.Opener
	logger *zap.Logger

	styles Styles
	keys   keyMap
	help   help.Model

	tab     navigation.Tab
	rows    map[navigation.Tab][]row
	cursors map[navigation.Tab]int
	stack   []navigation.ResolvedTarget

	viewport     viewport.Model
	glamourStyle string
	renderer     *glamour.TermRenderer
	width        int
	height       int

	status    string
	statusErr bool
}

// New returns a browser over repo. opener receives org URLs.
func New(repo *catalog.Repository, opener links.Opener, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.GlamourStyle == "" {
		opts.GlamourStyle = "auto"
	}

	m := Model{
		repo:         repo,
		opener:       opener,
		logger:       opts.Logger,
		styles:       DefaultStyles(),
		keys:         defaultKeyMap(),
		help:         help.New(),
		tab:          navigation.TabHome,
		rows:         buildRows(repo),
		cursors:      make(map[navigation.Tab]int),
		glamourStyle: opts.GlamourStyle,
	}
	for _, t := range navigation.Tabs {
		m.cursors[t] = firstSelectable(m.rows[t], 0)
	}
	m.resize(defaultWidth, defaultHeight)
	return m
}

// Run starts the browser on the alternate screen and blocks until it exits.
func Run(ctx context.Context, m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case openedMsg:
		if msg.err != nil {
			m.logger.Warn("open url failed", zap.String("url", msg.url), zap.Error(msg.err))
			m.setStatus(fmt.Sprintf("無法開啟 %s", msg.url), true)
		} else {
			m.setStatus(fmt.Sprintf("已開啟 %s", msg.url), false)
		}
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if len(m.stack) > 0 {
			return m.updateDetail(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Back) {
		m.stack = m.stack[:len(m.stack)-1]
		m.refreshDetail()
		return m, nil
	}
	if key.Matches(msg, m.keys.Method) {
		if target, ok := m.usedMethod(msg.String()); ok {
			m.show(target)
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// usedMethod maps a number key pressed on a case study detail to the
// method at that position in its list.
func (m Model) usedMethod(pressed string) (navigation.ShowMethod, bool) {
	cs, ok := m.stack[len(m.stack)-1].(navigation.ShowCaseStudy)
	if !ok || len(pressed) != 1 {
		return navigation.ShowMethod{}, false
	}
	i := int(pressed[0] - '1')
	if i < 0 || i >= len(cs.CaseStudy.UsedMethods) {
		return navigation.ShowMethod{}, false
	}
	return navigation.ShowMethod{Method: cs.CaseStudy.UsedMethods[i]}, true
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := m.rows[m.tab]
	cursor := m.cursors[m.tab]

	switch {
	case key.Matches(msg, m.keys.Up):
		m.cursors[m.tab] = step(rows, cursor, -1)
	case key.Matches(msg, m.keys.Down):
		m.cursors[m.tab] = step(rows, cursor, 1)
	case key.Matches(msg, m.keys.NextTab):
		m.switchTab(m.tab.Next())
	case key.Matches(msg, m.keys.PrevTab):
		m.switchTab(m.tab.Prev())
	case key.Matches(msg, m.keys.Enter):
		if cursor >= 0 && rows[cursor].target != nil {
			m.show(rows[cursor].target)
		}
	case key.Matches(msg, m.keys.Website):
		cmd := m.openAction(links.ActionWebsite)
		return m, cmd
	case key.Matches(msg, m.keys.Social):
		cmd := m.openAction(links.ActionSocial)
		return m, cmd
	}
	return m, nil
}

// show navigates to target. The participate directory is a tab of its
// own, so it switches tabs instead of pushing a detail view.
func (m *Model) show(target navigation.ResolvedTarget) {
	if _, ok := target.(navigation.ShowParticipateDirectory); ok {
		m.switchTab(navigation.TargetTab(target))
		return
	}
	m.stack = append(m.stack, target)
	m.refreshDetail()
}

func (m *Model) switchTab(t navigation.Tab) {
	m.tab = t
	m.status = ""
}

func (m *Model) setStatus(s string, isErr bool) {
	m.status = s
	m.statusErr = isErr
}

// openAction hands the selected org's URL of the given kind to the opener.
func (m *Model) openAction(kind links.ActionKind) tea.Cmd {
	if m.tab != navigation.TabParticipate || m.opener == nil {
		return nil
	}
	cursor := m.cursors[m.tab]
	if cursor < 0 {
		return nil
	}
	org := m.rows[m.tab][cursor].org
	action, ok := links.Find(org, kind)
	if !ok {
		m.setStatus("沒有可開啟的連結", true)
		return nil
	}
	opener := m.opener
	return func() tea.Msg {
		return openedMsg{url: action.URL, err: opener.Open(context.Background(), action.URL)}
	}
}

func (m *Model) resize(w, h int) {
	m.width, m.height = w, h
	m.help.Width = w
	m.viewport = viewport.New(w, max(h-chrome, 1))

	var styleOpt glamour.TermRendererOption
	if m.glamourStyle == "auto" {
		styleOpt = glamour.WithAutoStyle()
	} else {
		styleOpt = glamour.WithStandardStyle(m.glamourStyle)
	}
	r, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(max(w-4, 20)))
	if err != nil {
		m.logger.Warn("markdown renderer unavailable", zap.Error(err))
		r = nil
	}
	m.renderer = r
	m.refreshDetail()
}

// refreshDetail renders the top of the stack into the viewport.
func (m *Model) refreshDetail() {
	if len(m.stack) == 0 {
		return
	}
	md := detailMarkdown(m.stack[len(m.stack)-1], m.repo.Orgs())
	content := md
	if m.renderer != nil {
		if out, err := m.renderer.Render(md); err == nil {
			content = out
		}
	}
	m.viewport.SetContent(content)
	m.viewport.GotoTop()
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.tabBar())
	b.WriteString("\n")

	if len(m.stack) > 0 {
		b.WriteString(m.viewport.View())
	} else {
		b.WriteString(m.listView())
	}

	b.WriteString("\n")
	if m.status != "" {
		style := m.styles.Status
		if m.statusErr {
			style = m.styles.Error
		}
		b.WriteString(style.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render(m.help.ShortHelpView(m.helpKeys())))
	return b.String()
}

func (m Model) helpKeys() []key.Binding {
	switch {
	case len(m.stack) > 0:
		if _, ok := m.stack[len(m.stack)-1].(navigation.ShowCaseStudy); ok {
			return m.keys.caseStudyHelp()
		}
		return m.keys.detailHelp()
	case m.tab == navigation.TabParticipate:
		return m.keys.orgHelp()
	default:
		return m.keys.listHelp()
	}
}

func (m Model) tabBar() string {
	tabs := make([]string, 0, len(navigation.Tabs))
	for _, t := range navigation.Tabs {
		style := m.styles.Tab
		if t == m.tab {
			style = m.styles.ActiveTab
		}
		tabs = append(tabs, style.Render(t.Title()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) listView() string {
	rows := m.rows[m.tab]
	cursor := m.cursors[m.tab]

	var lines []string
	cursorAt := 0
	add := func(rendered string) {
		lines = append(lines, strings.Split(rendered, "\n")...)
	}
	for i, r := range rows {
		switch r.kind {
		case rowHeader:
			add(m.styles.Header.Render(r.title))
		case rowEmpty:
			add(m.styles.Empty.Render(r.title))
		case rowItem:
			if i == cursor {
				cursorAt = len(lines)
				add(m.styles.Selected.Render(r.title))
			} else {
				add(m.styles.Item.Render(r.title))
			}
			if r.subtitle != "" {
				add(m.styles.Subtitle.Render(r.subtitle))
			}
		}
	}

	// keep the cursor on screen
	visible := max(m.height-chrome, 1)
	if len(lines) > visible {
		start := 0
		if cursorAt >= visible {
			start = cursorAt - visible + 2
		}
		lines = lines[start:min(start+visible, len(lines))]
	}
	return strings.Join(lines, "\n")
}
