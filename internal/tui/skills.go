// Package tui is the interactive skill-confidence view: every extracted
// keyword can be reclassified know/practice, with the live score recomputed
// and persisted on each toggle.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/amishk599/prepkit/internal/model"
	"github.com/amishk599/prepkit/internal/taxonomy"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			Padding(1, 0, 1, 2)

	categoryStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("245")).
			Padding(0, 0, 0, 2)

	itemStyle = lipgloss.NewStyle().
			Padding(0, 0, 0, 4)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true).
			Padding(0, 0, 0, 2)

	knowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")) // green

	practiceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // amber

	statusBarStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Padding(1, 0, 0, 2)
)

// Reserved lines around the viewport (title, status bar, hint).
const chromeHeight = 6

type skillsModel struct {
	entry    model.Entry
	store    model.HistoryStore
	keywords []string // toggleable rows, taxonomy order
	cursor   int
	viewport viewport.Model
	ready    bool
	status   string
	err      error
}

func newSkillsModel(entry model.Entry, store model.HistoryStore) skillsModel {
	return skillsModel{
		entry:    entry,
		store:    store,
		keywords: taxonomy.MatchedKeywords(entry.ExtractedSkills),
	}
}

func (m skillsModel) Init() tea.Cmd {
	return nil
}

func (m skillsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-chromeHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - chromeHeight
		}
		m.viewport.SetContent(m.renderList())

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.keywords)-1 {
				m.cursor++
			}
		case " ", "enter":
			m.toggle()
		}
		if m.ready {
			m.viewport.SetContent(m.renderList())
		}
	}

	return m, nil
}

// toggle flips the confidence of the keyword under the cursor and persists
// it. The store recomputes and stores the live score; the returned entry
// replaces ours so the display always reflects durable state.
func (m *skillsModel) toggle() {
	if len(m.keywords) == 0 {
		return
	}
	kw := m.keywords[m.cursor]

	next := model.ConfidenceKnow
	if m.entry.SkillConfidenceMap[kw] == model.ConfidenceKnow {
		next = model.ConfidencePractice
	}

	updated, err := m.store.UpdateSkillConfidence(m.entry.ID, kw, next)
	if err != nil {
		m.err = err
		m.status = fmt.Sprintf("save failed: %v", err)
		return
	}
	m.entry = updated
	m.status = fmt.Sprintf("%s → %s", kw, next)
}

func (m skillsModel) renderList() string {
	var s string
	idx := 0
	for _, c := range taxonomy.Categories {
		matched := m.entry.ExtractedSkills[c.Key]
		if len(matched) == 0 {
			continue
		}
		s += categoryStyle.Render(c.Label) + "\n"
		for _, kw := range matched {
			badge := practiceStyle.Render("[needs practice]")
			if m.entry.SkillConfidenceMap[kw] == model.ConfidenceKnow {
				badge = knowStyle.Render("[know]")
			}
			line := fmt.Sprintf("%s %s", kw, badge)
			if idx == m.cursor {
				s += selectedStyle.Render("> "+line) + "\n"
			} else {
				s += itemStyle.Render(line) + "\n"
			}
			idx++
		}
	}
	if idx == 0 {
		s = itemStyle.Render("No skills were extracted for this entry.") + "\n"
	}
	return s
}

func (m skillsModel) View() string {
	if !m.ready {
		return "loading..."
	}

	title := titleStyle.Render(fmt.Sprintf("Skill confidence: %s", describe(m.entry)))
	status := statusBarStyle.Render(fmt.Sprintf("score %d/100 (base %d)  %s",
		m.entry.FinalScore, m.entry.BaseScore, m.status))
	hint := hintStyle.Render("↑/↓/j/k navigate  space toggle  q quit")

	return title + "\n" + m.viewport.View() + "\n" + status + hint
}

func describe(entry model.Entry) string {
	switch {
	case entry.Company != "" && entry.Role != "":
		return entry.Company + " / " + entry.Role
	case entry.Company != "":
		return entry.Company
	case entry.Role != "":
		return entry.Role
	default:
		return entry.ID
	}
}

// RunSkillToggle shows the interactive toggle list for entry and returns
// the entry as of the last persisted toggle.
func RunSkillToggle(entry model.Entry, store model.HistoryStore) (model.Entry, error) {
	p := tea.NewProgram(newSkillsModel(entry, store), tea.WithAltScreen())
	result, err := p.Run()
	if err != nil {
		return entry, err
	}

	final := result.(skillsModel)
	if final.err != nil {
		return final.entry, final.err
	}
	return final.entry, nil
}
