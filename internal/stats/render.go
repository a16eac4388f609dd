package stats

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/verte-zerg/genpass/internal/model"
	"github.com/verte-zerg/genpass/internal/render"
)

// trendLabelWidth is the width of the "score " and "avgNN " prefixes.
const trendLabelWidth = 6

// RenderAll prints every history section of a report. width is the terminal
// width the trend lines must fit in; zero leaves them unbounded.
func RenderAll(w io.Writer, rep Report, window, width int, color bool, now time.Time) error {
	if err := RenderSummary(w, rep.Records, now); err != nil {
		return err
	}
	if len(rep.Records) == 0 {
		return nil
	}
	if err := RenderTierTable(w, rep.Records, color); err != nil {
		return err
	}
	if err := RenderWeaknessTable(w, "Weaknesses (all)", rep.WeaknessesAll, len(rep.Records)); err != nil {
		return err
	}
	if len(rep.WindowIDs) < len(rep.Records) {
		title := fmt.Sprintf("Weaknesses (last %d)", len(rep.WindowIDs))
		if err := RenderWeaknessTable(w, title, rep.WeaknessesWindow, len(rep.WindowIDs)); err != nil {
			return err
		}
	}
	if err := RenderClassCoverage(w, rep.Records); err != nil {
		return err
	}
	return RenderTrend(w, rep.Records, window, width)
}

// RenderSummary prints a summary block for recorded analyses.
func RenderSummary(w io.Writer, records []model.AnalysisRecord, now time.Time) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, "No analyses recorded.")
		return err
	}
	s := Summarize(records)
	last := records[len(records)-1].CreatedAt
	rows := [][]string{
		{"Analyses:", fmt.Sprintf("%d (%d generated, %d entered)", s.Count, s.Generated, s.Entered)},
		{"Avg score:", fmt.Sprintf("%.1f", s.AvgScore)},
		{"Best score:", fmt.Sprintf("%d", s.BestScore)},
		{"Worst score:", fmt.Sprintf("%d", s.WorstScore)},
		{"Avg entropy:", fmt.Sprintf("%.1f bits", s.AvgEntropy)},
		{"Avg length:", fmt.Sprintf("%.1f", s.AvgLength)},
		{"Last recorded:", humanize.RelTime(last, now, "ago", "from now")},
	}
	lines := append([]string{"Summary"}, render.Table(nil, rows, nil)...)
	return writeSection(w, lines)
}

// RenderTierTable prints the tier distribution.
func RenderTierTable(w io.Writer, records []model.AnalysisRecord, color bool) error {
	total := len(records)
	rows := make([][]string, 0, len(model.AllTiers))
	for _, tc := range TierDistribution(records) {
		rows = append(rows, []string{
			render.TierLabel(tc.Tier, color),
			fmt.Sprintf("%d", tc.Count),
			percent(tc.Count, total),
		})
	}
	lines := append([]string{"Tiers"}, render.Table([]string{"Tier", "Count", "Share"}, rows, map[int]bool{1: true, 2: true})...)
	return writeSection(w, lines)
}

// RenderWeaknessTable prints weakness frequencies over total analyses.
func RenderWeaknessTable(w io.Writer, title string, counts []model.WeaknessCount, total int) error {
	if len(counts) == 0 {
		return writeSection(w, []string{title, "none"})
	}
	rows := make([][]string, 0, len(counts))
	for _, wc := range TopWeaknesses(counts, len(counts)) {
		rows = append(rows, []string{string(wc.Code), fmt.Sprintf("%d", wc.Count), percent(wc.Count, total)})
	}
	lines := append([]string{title}, render.Table([]string{"Weakness", "Count", "Share"}, rows, map[int]bool{1: true, 2: true})...)
	return writeSection(w, lines)
}

// RenderClassCoverage prints how often each class was used, rarest first.
func RenderClassCoverage(w io.Writer, records []model.AnalysisRecord) error {
	rows := [][]string{}
	for _, cc := range WeakestClasses(records) {
		rows = append(rows, []string{string(cc.Class), fmt.Sprintf("%.1f%%", cc.Share*100)})
	}
	lines := append([]string{"Class usage"}, render.Table([]string{"Class", "Used"}, rows, map[int]bool{1: true})...)
	return writeSection(w, lines)
}

// RenderTrend prints the score sparkline and its moving average, bucketed
// to fit width.
func RenderTrend(w io.Writer, records []model.AnalysisRecord, window, width int) error {
	scores := Scores(records)
	spark := 0
	if width > 0 {
		spark = max(1, width-trendLabelWidth)
	}
	lines := []string{
		"Score trend",
		"score " + Sparkline(scores, spark),
	}
	if window > 1 && len(scores) > 1 {
		lines = append(lines, fmt.Sprintf("avg%-2d %s", window, Sparkline(MovingAverage(scores, window), spark)))
	}
	return writeSection(w, lines)
}

func percent(n, total int) string {
	if total == 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", float64(n)/float64(total)*100)
}

func writeSection(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}
