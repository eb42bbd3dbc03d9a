package tui

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/solidbots/internal/app/lessons"
)

type screen int

const (
	screenHome screen = iota
	screenLesson
)

// outputLines bounds the narration shown in the lesson card.
const outputLines = 30

type lessonItem struct {
	lesson lessons.Lesson
}

func (i lessonItem) Title() string { return i.lesson.Title }
func (i lessonItem) Description() string {
	return i.lesson.Principle + " · " + clampString(i.lesson.Summary, 72)
}
func (i lessonItem) FilterValue() string { return i.lesson.ID + " " + i.lesson.Title }

type model struct {
	theme Theme
	deps  Deps

	scr    screen
	menu   list.Model
	active lessons.Lesson

	running bool
	runSeq  int
	output  string
	took    time.Duration
	toast   string
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	items := make([]list.Item, 0, len(deps.Lessons))
	for _, l := range deps.Lessons {
		items = append(items, lessonItem{lesson: l})
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Lessons"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	return model{
		theme: DefaultTheme(),
		deps:  deps,
		scr:   screenHome,
		menu:  l,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.menu.SetSize(msg.Width-4, msg.Height-10)
		return m, nil

	case lessonDoneMsg:
		if msg.id != m.active.ID || msg.seq != m.runSeq {
			return m, nil
		}
		m.running = false
		m.output = msg.output
		m.took = msg.took
		m.toast = userMessage(msg.err)
		return m, nil

	case tea.KeyMsg:
		if m.scr == screenHome && m.menu.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.scr == screenHome {
				return m, tea.Quit
			}
			return m.home(), nil

		case "esc", "b":
			if m.scr != screenHome {
				return m.home(), nil
			}

		case "enter", "r":
			if m.scr == screenHome && msg.String() == "enter" {
				it, ok := m.menu.SelectedItem().(lessonItem)
				if !ok {
					return m, nil
				}
				m.scr = screenLesson
				m.active = it.lesson
				return m.start()
			}
			if m.scr == screenLesson && !m.running {
				return m.start()
			}
		}
	}

	if m.scr == screenHome {
		var cmd tea.Cmd
		m.menu, cmd = m.menu.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) start() (tea.Model, tea.Cmd) {
	m.runSeq++
	m.running = true
	m.output = ""
	m.took = 0
	m.toast = ""
	if m.deps.Debug {
		m.deps.Logger.Debug("lesson.started", "id", m.active.ID, "run", m.runSeq)
	}
	return m, cmdRunLesson(m.active, m.runSeq, m.deps.Logger)
}

func (m model) home() model {
	m.scr = screenHome
	m.active = lessons.Lesson{}
	m.running = false
	m.output = ""
	m.took = 0
	m.toast = ""
	return m
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("solidbots") + "\n" +
		m.theme.Subtitle.Render("Object-oriented design, one robot at a time") + "\n"

	switch m.scr {
	case screenHome:
		help := m.theme.Help.Render("↑/↓ navigate • enter run • / search • q quit")
		if m.toast != "" {
			help = m.theme.Toast.Render(m.toast) + "\n" + help
		}
		return wrap.Render(header + "\n" + m.theme.Card.Render(m.menu.View()) + "\n" + help)

	case screenLesson:
		body := tailLines(m.output, outputLines)
		if m.running {
			body = "Running…"
		} else if m.deps.Debug && m.took > 0 {
			body += "\n\n" + m.theme.Help.Render(fmt.Sprintf("run #%d took %s", m.runSeq, m.took.Round(time.Millisecond)))
		}
		if m.toast != "" {
			body += "\n\n" + m.theme.Toast.Render(m.toast)
		}
		card := m.theme.Card.Render(
			fmt.Sprintf("%s\n%s\n\n%s\n\n%s",
				m.theme.Title.Render(m.active.Title),
				m.theme.Subtitle.Render(m.active.Principle),
				body,
				m.theme.Help.Render("r rerun • esc/b back • q home"),
			),
		)
		return wrap.Render(header + "\n" + card)

	default:
		return wrap.Render(header + "\n" + "unknown state")
	}
}
