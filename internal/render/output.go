package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"

	"github.com/verte-zerg/genpass/internal/model"
)

// Format selects the output encoding.
type Format string

// Supported formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", model.InvalidConfigf("unknown format %q (expected text, json or yaml)", s)
	}
}

// Options controls report rendering.
type Options struct {
	Format Format
	Color  bool
	// ShowInput prints the analysed string instead of masking it.
	ShowInput bool
}

// Entry is one generated value with its optional analysis.
type Entry struct {
	Value  string        `json:"value" yaml:"value"`
	Report *model.Report `json:"report,omitempty" yaml:"report,omitempty"`
}

// WriteEntries writes generated values. Plain text lists print one value per line.
func WriteEntries(w io.Writer, entries []Entry, opts Options) error {
	entries = stripInputs(entries)
	switch opts.Format {
	case FormatJSON:
		return writeJSON(w, entries)
	case FormatYAML:
		return writeYAML(w, entries)
	}

	analysed := len(entries) > 0 && entries[0].Report != nil
	if !analysed {
		for _, e := range entries {
			if _, err := fmt.Fprintln(w, e.Value); err != nil {
				return err
			}
		}
		return nil
	}
	headers := []string{"Value", "Score", "Tier", "Entropy"}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			e.Value,
			fmt.Sprintf("%d", e.Report.Score),
			e.Report.Tier.Label(),
			fmt.Sprintf("%.1f bits", e.Report.EntropyBits),
		})
	}
	return writeLines(w, Table(headers, rows, map[int]bool{1: true, 3: true}))
}

func stripInputs(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	for i, e := range entries {
		if e.Report != nil {
			r := *e.Report
			r.Input = ""
			e.Report = &r
		}
		out[i] = e
	}
	return out
}

// WriteReport writes one analysis report.
func WriteReport(w io.Writer, r model.Report, opts Options) error {
	if !opts.ShowInput {
		r.Input = ""
	}
	switch opts.Format {
	case FormatJSON:
		return writeJSON(w, r)
	case FormatYAML:
		return writeYAML(w, r)
	}
	return writeReportText(w, r, opts)
}

// WriteReports writes several reports. JSON and YAML produce a single list.
func WriteReports(w io.Writer, reports []model.Report, opts Options) error {
	if opts.Format == FormatJSON || opts.Format == FormatYAML {
		out := make([]model.Report, len(reports))
		for i, r := range reports {
			if !opts.ShowInput {
				r.Input = ""
			}
			out[i] = r
		}
		if opts.Format == FormatJSON {
			return writeJSON(w, out)
		}
		return writeYAML(w, out)
	}
	for i, r := range reports {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := WriteReport(w, r, opts); err != nil {
			return err
		}
	}
	return nil
}

func writeReportText(w io.Writer, r model.Report, opts Options) error {
	input := strings.Repeat("*", r.Length)
	if opts.ShowInput {
		input = r.Input
	}
	classes := make([]string, len(r.Classes))
	for i, c := range r.Classes {
		classes[i] = string(c)
	}
	if len(classes) == 0 {
		classes = []string{"none"}
	}

	summary := [][]string{
		{"Password:", input},
		{"Length:", fmt.Sprintf("%d", r.Length)},
		{"Classes:", strings.Join(classes, ", ")},
		{"Entropy:", fmt.Sprintf("%.1f bits", r.EntropyBits)},
		{"Score:", fmt.Sprintf("%d/100 %s", r.Score, TierLabel(r.Tier, opts.Color))},
	}
	lines := Table(nil, summary, nil)

	lines = append(lines, "", heading("Weaknesses", opts.Color))
	if len(r.Weaknesses) == 0 {
		lines = append(lines, muted("none", opts.Color))
	} else {
		rows := make([][]string, 0, len(r.Weaknesses))
		for _, wk := range r.Weaknesses {
			rows = append(rows, []string{string(wk.Code), fmt.Sprintf("-%d", wk.Penalty), wk.Message})
		}
		lines = append(lines, Table([]string{"Code", "Penalty", "Detail"}, rows, map[int]bool{1: true})...)
	}

	lines = append(lines, "", heading("Time to crack", opts.Color))
	rows := make([][]string, 0, len(r.CrackTimes))
	for _, ct := range r.CrackTimes {
		rows = append(rows, []string{ct.Scenario, FormatRate(ct.GuessesPerSecond), ct.Display})
	}
	lines = append(lines, Table([]string{"Scenario", "Guesses/s", "Time"}, rows, map[int]bool{1: true})...)

	if c := r.Compliance; c != nil {
		lines = append(lines, "", heading(fmt.Sprintf("Preset %s", c.Preset), opts.Color))
		rows := make([][]string, 0, len(c.Checks))
		for _, check := range c.Checks {
			status := "ok"
			if !check.Passed {
				status = "FAIL"
			}
			rows = append(rows, []string{check.Name, status})
		}
		lines = append(lines, Table([]string{"Check", "Status"}, rows, nil)...)
	}

	if len(r.Recommendations) > 0 {
		lines = append(lines, "", heading("Recommendations", opts.Color))
		for _, rec := range r.Recommendations {
			lines = append(lines, "- "+rec)
		}
	}
	return writeLines(w, lines)
}

// FormatRate renders a guess rate with thousands separators.
func FormatRate(rate float64) string {
	return humanize.Comma(int64(rate))
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func writeLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
