package tui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"phostamp/internal/domain"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Phase represents the current state of the TUI
type Phase int

const (
	PhaseScanning Phase = iota
	PhaseConfirm
	PhaseApplying
	PhaseDone
	PhaseError
)

// Messages for the TUI
type (
	PlanReadyMsg struct {
		Plan domain.Plan
	}
	ApplyProgressMsg struct {
		Current int
		Total   int
		File    string
		At      time.Time
	}
	ApplyDoneMsg struct{}
	ErrorMsg     struct {
		Err error
	}
	ConfirmMsg struct{ Confirmed bool }
	tickMsg    time.Time
)

// ApplyFunc starts the timestamp run in a goroutine and reports back through
// ApplyProgressMsg / ApplyDoneMsg / ErrorMsg.
type ApplyFunc func(plan domain.Plan) tea.Cmd

// Config for the TUI
type Config struct {
	Folder string
	DryRun bool
	Apply  ApplyFunc
}

// Model is the main TUI model
type Model struct {
	config        Config
	Phase         Phase
	Plan          domain.Plan
	spinner       spinner.Model
	progress      progress.Model
	applyProgress int
	applyTotal    int
	currentFile   string
	currentAt     time.Time
	confirmYes    bool
	Err           error
	Quitting      bool
	width         int
	height        int
}

// NewModel creates a new TUI model
func NewModel(cfg Config) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	p := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(50),
		progress.WithoutPercentage(),
	)

	return Model{
		config:     cfg,
		Phase:      PhaseScanning,
		spinner:    s,
		progress:   p,
		confirmYes: false, // default to No
		width:      80,
		height:     24,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = min(msg.Width-20, 60)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.Quitting = true
			return m, tea.Quit
		case "left", "h", "y", "Y":
			if m.Phase == PhaseConfirm {
				m.confirmYes = true
			}
		case "right", "l", "n", "N":
			if m.Phase == PhaseConfirm {
				m.confirmYes = false
			}
		case "enter":
			if m.Phase == PhaseConfirm {
				return m, func() tea.Msg {
					return ConfirmMsg{Confirmed: m.confirmYes}
				}
			}
			if m.Phase == PhaseDone || m.Phase == PhaseError {
				return m, tea.Quit
			}
		}

	case PlanReadyMsg:
		m.Plan = msg.Plan
		if m.config.DryRun || len(m.Plan.Items) == 0 {
			m.Phase = PhaseDone
		} else {
			m.Phase = PhaseConfirm
		}
		return m, nil

	case ConfirmMsg:
		if !msg.Confirmed {
			m.Quitting = true
			return m, tea.Quit
		}
		m.Phase = PhaseApplying
		m.applyTotal = len(m.Plan.Items)
		if m.config.Apply != nil {
			return m, tea.Batch(tickCmd(), m.config.Apply(m.Plan))
		}
		return m, nil

	case ApplyProgressMsg:
		m.applyProgress = msg.Current
		m.applyTotal = msg.Total
		m.currentFile = msg.File
		m.currentAt = msg.At
		return m, nil

	case ApplyDoneMsg:
		m.Phase = PhaseDone
		return m, nil

	case ErrorMsg:
		m.Phase = PhaseError
		m.Err = msg.Err
		return m, nil

	case spinner.TickMsg:
		if m.Phase == PhaseScanning || m.Phase == PhaseApplying {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		return m, cmd

	case tickMsg:
		if m.Phase == PhaseApplying {
			var cmds []tea.Cmd
			if m.applyTotal > 0 {
				cmds = append(cmds, m.progress.SetPercent(float64(m.applyProgress)/float64(m.applyTotal)))
			}
			cmds = append(cmds, tickCmd(), m.spinner.Tick)
			return m, tea.Batch(cmds...)
		}
	}

	return m, nil
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Millisecond*100, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) View() string {
	if m.Quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	switch m.Phase {
	case PhaseScanning:
		b.WriteString(fmt.Sprintf("%s Scanning images...", m.spinner.View()))
	case PhaseConfirm:
		b.WriteString(m.renderPreview())
		b.WriteString("\n")
		b.WriteString(m.renderConfirmPrompt())
	case PhaseApplying:
		b.WriteString(m.renderPreview())
		b.WriteString("\n")
		b.WriteString(m.renderApplying())
	case PhaseDone:
		b.WriteString(m.renderPreview())
		if !m.config.DryRun && len(m.Plan.Items) > 0 {
			b.WriteString("\n")
			b.WriteString(m.renderCompletion())
		}
	case PhaseError:
		b.WriteString(m.renderError())
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelp())

	return b.String()
}

func (m Model) renderHeader() string {
	title := titleStyle.Render("🕑 Phostamp")
	subtitle := subtitleStyle.Render("Filename order becomes time order")

	dimStyle := lipgloss.NewStyle().Foreground(dimTextColor)

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		subtitle,
		"",
		dimStyle.Render(fmt.Sprintf("%s Folder: %s", iconFolder, shortenPath(m.config.Folder))),
	)
}

func (m Model) renderPreview() string {
	var b strings.Builder

	b.WriteString(sectionStyle.Render("Planned Timestamps"))
	b.WriteString("\n\n")

	if len(m.Plan.Items) == 0 {
		dimStyle := lipgloss.NewStyle().Foreground(dimTextColor)
		b.WriteString(dimStyle.Render("  No image files found"))
		b.WriteString("\n")
		return b.String()
	}

	for _, line := range formatAssignmentList(m.Plan.Items, 4) {
		b.WriteString("  ")
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderSummary())

	return b.String()
}

func (m Model) renderSummary() string {
	var b strings.Builder

	b.WriteString(sectionStyle.Render("Summary"))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("  %s  %s\n",
		statLabelStyle.Render("Files:"),
		statValueStyle.Render(fmt.Sprintf("%d", len(m.Plan.Items))),
	))
	b.WriteString(fmt.Sprintf("  %s  %s\n",
		statLabelStyle.Render("Start:"),
		dateStyle.Render(m.Plan.Start.Format("2006-01-02 15:04:05")),
	))
	b.WriteString(fmt.Sprintf("  %s  %s\n",
		statLabelStyle.Render("Increment:"),
		dateStyle.Render(fmt.Sprintf("%d minutes", int(m.Plan.Increment.Minutes()))),
	))

	if m.config.DryRun {
		b.WriteString("\n")
		b.WriteString(highlightBoxStyle.Render("🔍 Dry Run - No timestamps were changed"))
	}

	return b.String()
}

func (m Model) renderConfirmPrompt() string {
	prompt := confirmPromptStyle.Render(fmt.Sprintf("Rewrite timestamps of %d files?", len(m.Plan.Items)))

	var yesBtn, noBtn string
	if m.confirmYes {
		yesBtn = highlightBoxStyle.
			Background(lipgloss.Color("#2D5A27")).
			Render(" Yes ")
		noBtn = boxStyle.Render(" No ")
	} else {
		yesBtn = boxStyle.Render(" Yes ")
		noBtn = highlightBoxStyle.
			Background(lipgloss.Color("#5A2727")).
			Render(" No ")
	}

	buttons := lipgloss.JoinHorizontal(lipgloss.Center, yesBtn, "  ", noBtn)

	return lipgloss.JoinVertical(lipgloss.Left, prompt, "", buttons)
}

func (m Model) renderApplying() string {
	var b strings.Builder

	b.WriteString(sectionStyle.Render("Updating Timestamps"))
	b.WriteString("\n\n")

	percent := 0.0
	if m.applyTotal > 0 {
		percent = float64(m.applyProgress) / float64(m.applyTotal)
	}

	b.WriteString(fmt.Sprintf("  %s Updating...\n\n", m.spinner.View()))
	b.WriteString(fmt.Sprintf("  %s\n", m.progress.ViewAs(percent)))

	countStyle := lipgloss.NewStyle().Foreground(primaryColor).Bold(true)
	percentStyle := lipgloss.NewStyle().Foreground(dimTextColor)

	b.WriteString(fmt.Sprintf("  %s %s\n",
		countStyle.Render(fmt.Sprintf("%d/%d files", m.applyProgress, m.applyTotal)),
		percentStyle.Render(fmt.Sprintf("(%.0f%%)", percent*100)),
	))

	if m.currentFile != "" {
		b.WriteString(fmt.Sprintf("\n  %s %s %s\n",
			iconArrow,
			fileNameStyle.Render(m.currentFile),
			dateStyle.Render(m.currentAt.Format("2006-01-02 15:04:05")),
		))
	}

	return b.String()
}

func (m Model) renderCompletion() string {
	var b strings.Builder

	b.WriteString(sectionStyle.Render("Done"))
	b.WriteString("\n\n")

	icon := successStyle.Render(iconSuccess)
	msg := successStyle.Render(fmt.Sprintf("Updated %d files.", len(m.Plan.Items)))
	b.WriteString(fmt.Sprintf("  %s %s\n", icon, msg))

	return b.String()
}

func (m Model) renderError() string {
	icon := errorStyle.Render(iconError)
	msg := errorStyle.Render(fmt.Sprintf("Error: %s", m.Err.Error()))

	return highlightBoxStyle.
		BorderForeground(errorColor).
		Render(fmt.Sprintf("%s %s", icon, msg))
}

func (m Model) renderHelp() string {
	var help string
	switch m.Phase {
	case PhaseScanning:
		help = "Press q to quit"
	case PhaseConfirm:
		help = "← → or y/n to select • Enter to confirm • q to quit"
	case PhaseApplying:
		help = "Updating timestamps... Please wait"
	case PhaseDone:
		help = "Press Enter to exit"
	case PhaseError:
		help = "Press Enter or q to exit"
	}
	return helpStyle.Render(help)
}

// formatAssignmentList formats planned assignments for display
func formatAssignmentList(items []domain.Assignment, maxItems int) []string {
	if len(items) == 0 {
		return []string{}
	}

	lines := make([]string, 0, min(len(items), maxItems+1))

	if len(items) > maxItems {
		half := maxItems / 2
		for i := 0; i < half; i++ {
			lines = append(lines, formatAssignmentItem(items[i]))
		}
		dimStyle := lipgloss.NewStyle().Foreground(dimTextColor)
		lines = append(lines, dimStyle.Render(fmt.Sprintf("... %d more files ...", len(items)-maxItems)))
		for i := len(items) - half; i < len(items); i++ {
			lines = append(lines, formatAssignmentItem(items[i]))
		}
	} else {
		for i := 0; i < len(items); i++ {
			lines = append(lines, formatAssignmentItem(items[i]))
		}
	}

	return lines
}

func formatAssignmentItem(item domain.Assignment) string {
	name := fileNameStyle.Render(item.Entry.Name)
	date := dateStyle.Render(item.At.Format("2006-01-02 15:04:05"))
	return fmt.Sprintf("%s %s  %s", iconImage, name, date)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// shortenPath replaces the home directory prefix with ~ for display
func shortenPath(path string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if strings.HasPrefix(path, home) {
		return "~" + path[len(home):]
	}
	return path
}
