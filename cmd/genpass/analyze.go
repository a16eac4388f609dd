package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/verte-zerg/genpass/internal/analyzer"
	"github.com/verte-zerg/genpass/internal/model"
	"github.com/verte-zerg/genpass/internal/render"
)

var (
	analyzeShow       bool
	analyzeMinEntropy float64
	analyzePreset     string
)

func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [password]",
		Short: "Analyze password strength",
		Long: "Analyze password strength.\n\n" +
			"Without an argument the password is read from the terminal without echo,\n" +
			"or one password per line when stdin is piped.",
		Args: cobra.MaximumNArgs(1),
		RunE: runAnalyzeCmd,
	}
	cmd.Flags().StringVar(&outFormat, "format", string(render.FormatText), "output format: text, json or yaml")
	cmd.Flags().BoolVar(&outRecord, "record", false, "record analysis metadata to history")
	cmd.Flags().BoolVar(&analyzeShow, "show", false, "print the analysed password instead of masking it")
	cmd.Flags().Float64Var(&analyzeMinEntropy, "min-entropy", 0, "fail when a password has fewer bits of entropy")
	cmd.Flags().StringVar(&analyzePreset, "preset", "", "check compliance with a preset policy")
	return cmd
}

func runAnalyzeCmd(cmd *cobra.Command, args []string) error {
	fileCfg, err := loadFileConfig()
	if err != nil {
		return err
	}
	format, err := render.ParseFormat(outFormat)
	if err != nil {
		return err
	}
	var preset *model.Preset
	if analyzePreset != "" {
		p, err := model.LookupPreset(analyzePreset)
		if err != nil {
			return errors.WithHint(err, "list presets with `genpass presets`")
		}
		preset = &p
	}

	var inputs []string
	if len(args) == 1 {
		log.Warn("passwords given as arguments may end up in shell history")
		inputs = args
	} else {
		inputs, err = readPasswords(cmd.InOrStdin(), cmd.ErrOrStderr())
		if err != nil {
			return err
		}
	}
	if len(inputs) == 0 {
		return errors.WithHint(model.InvalidConfigf("no password to analyze"), "pass a password argument or pipe one per line")
	}

	reports := make([]model.Report, len(inputs))
	for i, in := range inputs {
		reports[i] = analyzer.Analyze(in)
		if preset != nil {
			c := analyzer.CheckCompliance(in, *preset)
			reports[i].Compliance = &c
		}
	}

	if historyEnabled(cmd, fileCfg) {
		if err := recordReports(cmd.Context(), reports, model.SourceEntered); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	opts := render.Options{
		Format:    format,
		Color:     render.ShouldUseColor(out, forceColor),
		ShowInput: analyzeShow,
	}
	if err := render.WriteReports(out, reports, opts); err != nil {
		return errors.Wrap(err, "failed to write report")
	}
	if err := checkMinEntropy(reports, analyzeMinEntropy); err != nil {
		return err
	}
	return checkCompliance(reports)
}

// readPasswords prompts without echo on a terminal, otherwise reads one password per line.
func readPasswords(in io.Reader, prompt io.Writer) ([]string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if _, err := fmt.Fprint(prompt, "Password: "); err != nil {
			return nil, errors.Wrap(err, "failed to write prompt")
		}
		raw, err := term.ReadPassword(int(f.Fd()))
		if _, perr := fmt.Fprintln(prompt); perr != nil {
			_ = perr
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to read password")
		}
		return []string{string(raw)}, nil
	}

	var out []string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read stdin")
	}
	log.Debug("read passwords from stdin", zap.Int("count", len(out)))
	return out, nil
}

func checkMinEntropy(reports []model.Report, minBits float64) error {
	if minBits <= 0 {
		return nil
	}
	failed := 0
	for _, r := range reports {
		if r.EntropyBits < minBits {
			failed++
		}
	}
	if failed == 0 {
		return nil
	}
	return errors.WithHint(
		errors.Newf("%d of %d passwords below %.1f bits of entropy", failed, len(reports), minBits),
		"generate a longer password with `genpass password --length 16`",
	)
}

func checkCompliance(reports []model.Report) error {
	failed := 0
	var preset string
	for _, r := range reports {
		if r.Compliance == nil {
			continue
		}
		preset = r.Compliance.Preset
		if !r.Compliance.Compliant {
			failed++
		}
	}
	if failed == 0 {
		return nil
	}
	return errors.WithHint(
		errors.Newf("%d of %d passwords do not comply with preset %s", failed, len(reports), preset),
		fmt.Sprintf("generate a compliant password with `genpass password --preset %s`", preset),
	)
}
