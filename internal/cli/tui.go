package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/polyroots/polyroots/pkg/errors"
	"github.com/polyroots/polyroots/pkg/poly"
	"github.com/polyroots/polyroots/pkg/solver"
)

var (
	promptStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	inputStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	cursorStyle  = lipgloss.NewStyle().Foreground(colorCyan)
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// maxHistory bounds how many past results the prompt keeps on screen.
const maxHistory = 5

func (c *CLI) interactiveCommand() *cobra.Command {
	var noCache bool

	cmd := &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"tui"},
		Short:   "Find roots interactively",
		Long: `Open a prompt that finds integer roots as you go. Type coefficients
separated by spaces or commas, highest power first, and press Enter.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			runner, closeCache, err := c.newRunner(ctx, noCache, nil)
			if err != nil {
				return err
			}
			defer closeCache()

			m := NewPromptModel(ctx, runner, c.solveOptions(false))
			p := tea.NewProgram(m,
				tea.WithContext(ctx),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()))
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the result cache")
	return cmd
}

// =============================================================================
// PromptModel - interactive root finding
// =============================================================================

// solvedMsg carries the outcome of one root search back to the model.
type solvedMsg struct {
	input  string
	result *solver.Result
	cached bool
	err    error
}

type historyEntry struct {
	input  string
	result *solver.Result
	cached bool
}

// PromptModel is the bubbletea model for the interactive prompt.
type PromptModel struct {
	ctx     context.Context
	runner  *solver.Runner
	opts    solver.Options
	Input   string
	History []historyEntry
	Err     error
	Busy    bool
}

// NewPromptModel creates a prompt backed by runner.
func NewPromptModel(ctx context.Context, runner *solver.Runner, opts solver.Options) PromptModel {
	return PromptModel{ctx: ctx, runner: runner, opts: opts}
}

func (m PromptModel) Init() tea.Cmd {
	return nil
}

func (m PromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			input := strings.TrimSpace(m.Input)
			if input == "" || m.Busy {
				return m, nil
			}
			m.Busy = true
			return m, m.solve(input)
		case tea.KeyBackspace:
			if n := len(m.Input); n > 0 {
				m.Input = m.Input[:n-1]
			}
		case tea.KeyCtrlU:
			m.Input = ""
		case tea.KeySpace:
			m.Input += " "
		case tea.KeyRunes:
			m.Input += string(msg.Runes)
		}

	case solvedMsg:
		m.Busy = false
		if msg.err != nil {
			m.Err = msg.err
			return m, nil
		}
		m.Err = nil
		m.Input = ""
		m.History = append(m.History, historyEntry{input: msg.input, result: msg.result, cached: msg.cached})
		if len(m.History) > maxHistory {
			m.History = m.History[len(m.History)-maxHistory:]
		}
	}
	return m, nil
}

// solve runs the root search off the UI goroutine.
func (m PromptModel) solve(input string) tea.Cmd {
	return func() tea.Msg {
		p, err := poly.ParseString(input)
		if err != nil {
			return solvedMsg{input: input, err: err}
		}
		res, cached, err := m.runner.Roots(m.ctx, p, m.opts)
		return solvedMsg{input: input, result: res, cached: cached, err: err}
	}
}

func (m PromptModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Integer roots"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("coefficients, highest power first  ⏎ solve  ctrl+u clear  esc quit"))
	b.WriteString("\n\n")

	for _, h := range m.History {
		b.WriteString(StyleValue.Render(h.result.Polynomial))
		b.WriteString("\n")
		b.WriteString("  " + formatRoots(h.result.Roots))
		b.WriteString("\n")
		status, style := iconFresh, styleComputed
		if h.cached {
			status, style = iconCached, styleCached
		}
		b.WriteString("  " + listDimStyle.Render(fmt.Sprintf("degree %d · ", h.result.Degree)) + style.Render(status))
		b.WriteString("\n\n")
	}

	if m.Err != nil {
		b.WriteString(StyleError.Render("✗ " + errors.UserMessage(m.Err)))
		b.WriteString("\n\n")
	}

	b.WriteString(promptStyle.Render("> "))
	b.WriteString(inputStyle.Render(m.Input))
	if m.Busy {
		b.WriteString(listDimStyle.Render(" …"))
	} else {
		b.WriteString(cursorStyle.Render("█"))
	}
	b.WriteString("\n")

	return b.String()
}

func formatRoots(roots []int64) string {
	if len(roots) == 0 {
		return listDimStyle.Render("no integer roots")
	}
	parts := make([]string, len(roots))
	for i, r := range roots {
		parts[i] = StyleNumber.Render(strconv.FormatInt(r, 10))
	}
	return strings.Join(parts, listDimStyle.Render(", "))
}
