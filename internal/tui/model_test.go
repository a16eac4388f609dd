package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/genpass/internal/generator"
	"github.com/verte-zerg/genpass/internal/model"
)

type fakeRecorder struct {
	records []model.AnalysisRecord
}

func (f *fakeRecorder) InsertAnalysis(_ context.Context, rec model.AnalysisRecord) (int64, error) {
	f.records = append(f.records, rec)
	return int64(len(f.records)), nil
}

func testOptions(rec Recorder) Options {
	return Options{
		Password:   model.GenerationConfig{Length: 20, UseLowercase: true, UseUppercase: true, UseDigits: true, UseSymbols: true},
		Passphrase: model.PassphraseConfig{WordCount: 5, Separator: "-"},
		Recorder:   rec,
	}
}

func TestTypingUpdatesReport(t *testing.T) {
	m := NewModel(generator.New(), testOptions(nil))
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("password")})
	if m.report.Length != 8 {
		t.Fatalf("expected length 8, got %d", m.report.Length)
	}
	if !m.report.HasWeakness(model.WeaknessCommon) {
		t.Fatalf("expected common weakness, got %+v", m.report.Weaknesses)
	}
	if m.source != model.SourceEntered {
		t.Fatalf("expected entered source, got %s", m.source)
	}
	if strings.Contains(m.input.View(), "password") {
		t.Fatalf("masked input leaked into view")
	}
}

func TestGenerateAndRecord(t *testing.T) {
	rec := &fakeRecorder{}
	m := NewModel(generator.New(), testOptions(rec))

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlG})
	if got := len([]rune(m.input.Value())); got != 20 {
		t.Fatalf("expected generated password of 20 runes, got %d", got)
	}
	if m.source != model.SourceGenerated {
		t.Fatalf("expected generated source, got %s", m.source)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if len(rec.records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(rec.records))
	}
	if rec.records[0].Source != model.SourceGenerated || rec.records[0].Length != 20 {
		t.Fatalf("unexpected record: %+v", rec.records[0])
	}
	if !strings.Contains(m.status, "recorded") {
		t.Fatalf("unexpected status %q", m.status)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlP})
	if parts := strings.Split(m.input.Value(), "-"); len(parts) != 5 {
		t.Fatalf("expected 5 passphrase words, got %q", m.input.Value())
	}
}

func TestGenerateLongerThanInputLimit(t *testing.T) {
	rec := &fakeRecorder{}
	opts := testOptions(rec)
	opts.Password.Length = maxInputRunes + 44
	m := NewModel(generator.New(), opts)

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlG})
	if got := len([]rune(m.input.Value())); got != maxInputRunes {
		t.Fatalf("expected input truncated to %d runes, got %d", maxInputRunes, got)
	}
	if m.report.Length != maxInputRunes {
		t.Fatalf("report must describe the shown value, got length %d", m.report.Length)
	}
	if !strings.Contains(m.status, "truncated") {
		t.Fatalf("unexpected status %q", m.status)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if len(rec.records) != 1 || rec.records[0].Length != maxInputRunes {
		t.Fatalf("unexpected record: %+v", rec.records)
	}
}

func TestRecordDisabled(t *testing.T) {
	m := NewModel(generator.New(), testOptions(nil))
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("abc")})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !strings.Contains(m.status, "disabled") {
		t.Fatalf("expected disabled notice, got %q", m.status)
	}
}

func TestQuitKeys(t *testing.T) {
	m := NewModel(generator.New(), testOptions(nil))
	for _, key := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		_, cmd := m.Update(tea.KeyMsg{Type: key})
		if cmd == nil {
			t.Fatalf("expected quit command for %v", key)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("expected quit message for %v", key)
		}
	}
}

func TestRenderMeter(t *testing.T) {
	for score, want := range map[int]int{0: 0, 50: 10, 100: 20, 150: 20} {
		out := renderMeter(score, 20)
		if got := strings.Count(out, "█"); got != want {
			t.Fatalf("score %d: expected %d filled cells, got %d", score, want, got)
		}
		if got := strings.Count(out, "█") + strings.Count(out, "░"); got != 20 {
			t.Fatalf("score %d: expected 20 cells, got %d", score, got)
		}
	}
}

func TestRenderFooterListsKeys(t *testing.T) {
	m := NewModel(generator.New(), testOptions(nil))
	out := m.renderFooter()
	for _, want := range []string{"ctrl+g password", "ctrl+p passphrase", "enter record", "esc quit"} {
		if !strings.Contains(out, want) {
			t.Fatalf("footer missing %q: %s", want, out)
		}
	}
}
