// Package tui provides the Bubble Tea strength meter.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/verte-zerg/genpass/internal/analyzer"
	"github.com/verte-zerg/genpass/internal/generator"
	"github.com/verte-zerg/genpass/internal/model"
	"github.com/verte-zerg/genpass/internal/render"
)

const meterWidth = 30

// Recorder persists analysis metadata.
type Recorder interface {
	InsertAnalysis(ctx context.Context, rec model.AnalysisRecord) (int64, error)
}

// Options configures the meter.
type Options struct {
	Password   model.GenerationConfig
	Passphrase model.PassphraseConfig
	// Recorder is nil when history recording is disabled.
	Recorder Recorder
	Logger   *zap.Logger
}

// Model implements the Bubble Tea strength meter UI.
type Model struct {
	opts  Options
	gen   *generator.Generator
	input textinput.Model

	width  int
	height int

	report   model.Report
	source   model.Source
	revealed bool
	status   string
	now      func() time.Time
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	filledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	emptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#4A4A4A"))
	weakStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
)

// maxInputRunes bounds the input field; generated values are truncated to it.
const maxInputRunes = 256

// NewModel constructs a strength meter model.
func NewModel(gen *generator.Generator, opts Options) *Model {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	ti := textinput.New()
	ti.Placeholder = "type a password"
	ti.Prompt = "> "
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'
	ti.CharLimit = maxInputRunes
	ti.Focus()

	m := &Model{
		opts:   opts,
		gen:    gen,
		input:  ti,
		source: model.SourceEntered,
		now:    time.Now,
	}
	m.report = analyzer.Analyze("")
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(10, min(msg.Width-4, 60))
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyCtrlG:
			m.fill(m.gen.Password(m.opts.Password))
			return m, nil
		case tea.KeyCtrlP:
			m.fill(m.gen.Passphrase(m.opts.Passphrase))
			return m, nil
		case tea.KeyCtrlR:
			m.toggleReveal()
			return m, nil
		case tea.KeyEnter:
			m.record()
			return m, nil
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if value := m.input.Value(); value != before {
		m.source = model.SourceEntered
		m.status = ""
		m.report = analyzer.Analyze(value)
	}
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	content := m.renderBody()
	if m.width == 0 || m.height == 0 {
		return content + "\n" + m.renderFooter()
	}
	footer := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, m.renderFooter())
	body := lipgloss.Place(m.width, max(1, m.height-1), lipgloss.Center, lipgloss.Center, content)
	return body + "\n" + footer
}

func (m *Model) fill(value string, err error) {
	if err != nil {
		m.opts.Logger.Debug("generate failed", zap.Error(err))
		m.status = "generate failed: " + err.Error()
		return
	}
	m.input.SetValue(value)
	m.input.CursorEnd()
	m.source = model.SourceGenerated
	m.report = analyzer.Analyze(m.input.Value())
	m.status = "generated"
	if len([]rune(value)) > maxInputRunes {
		m.status = fmt.Sprintf("generated, truncated to %d characters", maxInputRunes)
	}
}

func (m *Model) toggleReveal() {
	m.revealed = !m.revealed
	if m.revealed {
		m.input.EchoMode = textinput.EchoNormal
		return
	}
	m.input.EchoMode = textinput.EchoPassword
}

func (m *Model) record() {
	if m.opts.Recorder == nil {
		m.status = "history is disabled (use --record)"
		return
	}
	if m.input.Value() == "" {
		return
	}
	rec := model.NewAnalysisRecord(m.report, m.source, m.now())
	if _, err := m.opts.Recorder.InsertAnalysis(context.Background(), rec); err != nil {
		m.opts.Logger.Error("failed to record analysis", zap.Error(err))
		m.status = "failed to record"
		return
	}
	m.status = fmt.Sprintf("recorded (%d/100)", m.report.Score)
}

func (m *Model) renderBody() string {
	r := m.report
	lines := []string{
		titleStyle.Render("genpass strength meter"),
		"",
		m.input.View(),
		"",
		renderMeter(r.Score, meterWidth) + " " + fmt.Sprintf("%3d/100 ", r.Score) + render.TierStyle(r.Tier).Render(r.Tier.Label()),
		fmt.Sprintf("%.1f bits · %d chars · %s", r.EntropyBits, r.Length, classList(r.Classes)),
	}
	if len(r.CrackTimes) > 0 {
		slowest, fastest := r.CrackTimes[0], r.CrackTimes[len(r.CrackTimes)-1]
		lines = append(lines, fmt.Sprintf("crack: %s %s · %s %s", slowest.Scenario, slowest.Display, fastest.Scenario, fastest.Display))
	}
	if r.Length > 0 && len(r.Weaknesses) > 0 {
		msgs := make([]string, len(r.Weaknesses))
		for i, w := range r.Weaknesses {
			msgs[i] = w.Message
		}
		for _, line := range wrapWords(strings.Join(msgs, "; "), m.contentWidth()) {
			lines = append(lines, weakStyle.Render(line))
		}
	}
	if m.status != "" {
		lines = append(lines, "", statusStyle.Render(m.status))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderFooter() string {
	segments := []string{"ctrl+g password", "ctrl+p passphrase", "ctrl+r reveal", "enter record", "esc quit"}
	return footerStyle.Render(strings.Join(segments, "  "))
}

func (m *Model) contentWidth() int {
	if m.width == 0 {
		return 60
	}
	return max(20, int(float64(m.width)*0.70))
}

// renderMeter draws a fixed-width bar filled in proportion to score.
func renderMeter(score, width int) string {
	filled := score * width / 100
	filled = max(0, min(filled, width))
	return filledStyle.Render(strings.Repeat("█", filled)) + emptyStyle.Render(strings.Repeat("░", width-filled))
}

func classList(classes []model.CharClass) string {
	if len(classes) == 0 {
		return "no classes"
	}
	parts := make([]string, len(classes))
	for i, c := range classes {
		parts[i] = string(c)
	}
	return strings.Join(parts, ", ")
}
