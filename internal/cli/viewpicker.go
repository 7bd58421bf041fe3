package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// viewerArtifacts are the generated documents the picker offers, in
// display order.
var viewerArtifacts = []struct {
	label string
	file  string
}{
	{"Dashboard", "dashboard.html"},
	{"Overview", "overview.html"},
	{"Message viewer", "messages.html"},
}

type pickerItem struct {
	label string
	path  string
}

type pickerModel struct {
	items  []pickerItem
	cursor int
	choice string
}

var (
	pickerTitleStyle    = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	pickerSelectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("62")).Bold(true)
	pickerHelpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1)
)

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.choice = ""
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down", "j":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
			return m, nil
		case "enter":
			m.choice = m.items[m.cursor].path
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m pickerModel) View() string {
	s := pickerTitleStyle.Render("Open which document?") + "\n"
	for i, item := range m.items {
		line := fmt.Sprintf("  %s", item.label)
		if i == m.cursor {
			line = pickerSelectedStyle.Render(fmt.Sprintf("> %s", item.label))
		}
		s += line + "\n"
	}
	s += pickerHelpStyle.Render("up/down: move | enter: open | q: cancel")
	return s
}

// pickArtifact lists the generated documents present in the project and
// lets the user choose one. Returns "" when the user cancels. When only
// one document exists it is returned without showing the picker.
func pickArtifact() (string, error) {
	var items []pickerItem
	for _, a := range viewerArtifacts {
		if path, ok := Projects.FindFile(a.file); ok {
			items = append(items, pickerItem{label: a.label, path: path})
		}
	}

	if len(items) == 0 {
		fmt.Println("No generated documents found. Run `mango generate` first.")
		return "", nil
	}
	if len(items) == 1 {
		return items[0].path, nil
	}

	p := tea.NewProgram(pickerModel{items: items})
	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("running picker: %w", err)
	}

	m, ok := final.(pickerModel)
	if !ok {
		return "", fmt.Errorf("unexpected picker model type")
	}
	return m.choice, nil
}
