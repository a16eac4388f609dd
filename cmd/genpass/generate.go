package main

import (
	"context"
	"io"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/verte-zerg/genpass/internal/analyzer"
	"github.com/verte-zerg/genpass/internal/config"
	"github.com/verte-zerg/genpass/internal/generator"
	"github.com/verte-zerg/genpass/internal/model"
	"github.com/verte-zerg/genpass/internal/render"
	"github.com/verte-zerg/genpass/internal/wordlist"
)

const (
	defaultLength    = 12
	defaultWords     = 6
	defaultSeparator = "-"
	defaultCount     = 1
)

var (
	pwLength           int
	pwCount            int
	pwNoLower          bool
	pwNoUpper          bool
	pwNoDigits         bool
	pwNoSymbols        bool
	pwExcludeAmbiguous bool
	pwExcludeSimilar   bool
	pwMinPerClass      int
	pwPreset           string

	ppWords        int
	ppCount        int
	ppSeparator    string
	ppNoCapitalize bool
	ppNoNumbers    bool
	ppAddSymbols   bool
	ppWordList     string

	outFormat  string
	outAnalyze bool
	outRecord  bool
	outPath    string
)

func newPasswordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "password",
		Short: "Generate random passwords",
		Args:  cobra.NoArgs,
		RunE:  runPasswordCmd,
	}
	cmd.Flags().IntVarP(&pwLength, "length", "l", defaultLength, "password length")
	cmd.Flags().IntVarP(&pwCount, "count", "c", defaultCount, "number of passwords")
	cmd.Flags().BoolVar(&pwNoLower, "no-lower", false, "exclude lowercase letters")
	cmd.Flags().BoolVar(&pwNoUpper, "no-upper", false, "exclude uppercase letters")
	cmd.Flags().BoolVar(&pwNoDigits, "no-digits", false, "exclude digits")
	cmd.Flags().BoolVar(&pwNoSymbols, "no-symbols", false, "exclude symbols")
	cmd.Flags().BoolVar(&pwExcludeAmbiguous, "exclude-ambiguous", false, "exclude ambiguous characters (0, O, 1, l, I)")
	cmd.Flags().BoolVar(&pwExcludeSimilar, "exclude-similar", false, "exclude look-alike characters (i, l, 1, L, o, 0, O)")
	cmd.Flags().IntVar(&pwMinPerClass, "min-per-class", 1, "minimum characters from each enabled class")
	cmd.Flags().StringVar(&pwPreset, "preset", "", "complexity preset (see `genpass presets`)")
	addOutputFlags(cmd)
	return cmd
}

func newPassphraseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "passphrase",
		Short: "Generate passphrases from a word list",
		Args:  cobra.NoArgs,
		RunE:  runPassphraseCmd,
	}
	cmd.Flags().IntVarP(&ppWords, "words", "w", defaultWords, "number of words")
	cmd.Flags().IntVarP(&ppCount, "count", "c", defaultCount, "number of passphrases")
	cmd.Flags().StringVarP(&ppSeparator, "separator", "s", defaultSeparator, "word separator")
	cmd.Flags().BoolVar(&ppNoCapitalize, "no-capitalize", false, "do not capitalize words")
	cmd.Flags().BoolVar(&ppNoNumbers, "no-numbers", false, "do not append a number")
	cmd.Flags().BoolVar(&ppAddSymbols, "add-symbols", false, "append symbols")
	cmd.Flags().StringVar(&ppWordList, "wordlist", "", "word list name or path (one word per line)")
	addOutputFlags(cmd)
	return cmd
}

func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&outFormat, "format", string(render.FormatText), "output format: text, json or yaml")
	cmd.Flags().BoolVar(&outAnalyze, "analyze", false, "include a strength report for each value")
	cmd.Flags().BoolVar(&outRecord, "record", false, "record analysis metadata to history")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "write output to a file instead of stdout")
}

func runPasswordCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := loadFileConfig()
	if err != nil {
		return err
	}
	cfg, err := resolvePasswordConfig(cmd, fileCfg.Password)
	if err != nil {
		return err
	}
	applyIntConfig(cmd, "count", &pwCount, fileCfg.Password.Count)

	gen := generator.New()
	log.Debug("generating passwords",
		zap.Int("length", cfg.Length),
		zap.Int("count", pwCount),
		zap.Int("per_class", cfg.PerClass()),
		zap.Bool("exclude_ambiguous", cfg.ExcludeAmbiguous),
		zap.Bool("exclude_similar", cfg.ExcludeSimilar),
	)
	values, err := gen.PasswordBatch(cfg, pwCount)
	if err != nil {
		return withConfigHint(err)
	}
	return emitGenerated(cmd, fileCfg, values)
}

func runPassphraseCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := loadFileConfig()
	if err != nil {
		return err
	}
	cfg := resolvePassphraseConfig(cmd, fileCfg.Passphrase)
	applyIntConfig(cmd, "count", &ppCount, fileCfg.Passphrase.Count)
	applyStringConfig(cmd, "wordlist", &ppWordList, fileCfg.Passphrase.WordList)

	gen, err := newGenerator(ppWordList)
	if err != nil {
		return err
	}
	log.Debug("generating passphrases",
		zap.Int("words", cfg.WordCount),
		zap.Int("count", ppCount),
		zap.Int("wordlist_size", gen.Words()),
	)
	values, err := gen.PassphraseBatch(cfg, ppCount)
	if err != nil {
		return withConfigHint(err)
	}
	return emitGenerated(cmd, fileCfg, values)
}

// resolvePasswordConfig layers defaults, the config file, a preset and flags.
// A preset replaces the file's length and class settings; changed flags win over both.
func resolvePasswordConfig(cmd *cobra.Command, fc config.PasswordConfig) (model.GenerationConfig, error) {
	cfg := model.GenerationConfig{
		Length:       defaultLength,
		UseLowercase: true,
		UseUppercase: true,
		UseDigits:    true,
		UseSymbols:   true,
	}

	preset := ""
	if fc.Preset != nil {
		preset = *fc.Preset
	}
	if cmd.Flags().Changed("preset") {
		preset = pwPreset
	}
	if preset != "" {
		p, err := model.LookupPreset(preset)
		if err != nil {
			return model.GenerationConfig{}, err
		}
		cfg = p.Config
	} else {
		setFromConfig(&cfg.Length, fc.Length)
		setFromConfig(&cfg.UseLowercase, fc.Lowercase)
		setFromConfig(&cfg.UseUppercase, fc.Uppercase)
		setFromConfig(&cfg.UseDigits, fc.Digits)
		setFromConfig(&cfg.UseSymbols, fc.Symbols)
		setFromConfig(&cfg.ExcludeAmbiguous, fc.ExcludeAmbiguous)
		setFromConfig(&cfg.ExcludeSimilar, fc.ExcludeSimilar)
		setFromConfig(&cfg.MinPerClass, fc.MinPerClass)
	}

	if cmd.Flags().Changed("length") {
		cfg.Length = pwLength
	}
	applyNegatedFlag(cmd, "no-lower", pwNoLower, &cfg.UseLowercase)
	applyNegatedFlag(cmd, "no-upper", pwNoUpper, &cfg.UseUppercase)
	applyNegatedFlag(cmd, "no-digits", pwNoDigits, &cfg.UseDigits)
	applyNegatedFlag(cmd, "no-symbols", pwNoSymbols, &cfg.UseSymbols)
	if cmd.Flags().Changed("exclude-ambiguous") {
		cfg.ExcludeAmbiguous = pwExcludeAmbiguous
	}
	if cmd.Flags().Changed("exclude-similar") {
		cfg.ExcludeSimilar = pwExcludeSimilar
	}
	if cmd.Flags().Changed("min-per-class") {
		cfg.MinPerClass = pwMinPerClass
	}
	return cfg, nil
}

// resolvePassphraseConfig layers defaults, the config file and flags.
func resolvePassphraseConfig(cmd *cobra.Command, fc config.PassphraseConfig) model.PassphraseConfig {
	cfg := model.PassphraseConfig{
		WordCount:  defaultWords,
		Separator:  defaultSeparator,
		Capitalize: true,
		AddNumbers: true,
	}
	setFromConfig(&cfg.WordCount, fc.Words)
	setFromConfig(&cfg.Separator, fc.Separator)
	setFromConfig(&cfg.Capitalize, fc.Capitalize)
	setFromConfig(&cfg.AddNumbers, fc.Numbers)
	setFromConfig(&cfg.AddSymbols, fc.Symbols)

	if cmd.Flags().Changed("words") {
		cfg.WordCount = ppWords
	}
	if cmd.Flags().Changed("separator") {
		cfg.Separator = ppSeparator
	}
	applyNegatedFlag(cmd, "no-capitalize", ppNoCapitalize, &cfg.Capitalize)
	applyNegatedFlag(cmd, "no-numbers", ppNoNumbers, &cfg.AddNumbers)
	if cmd.Flags().Changed("add-symbols") {
		cfg.AddSymbols = ppAddSymbols
	}
	return cfg
}

func emitGenerated(cmd *cobra.Command, fileCfg config.FileConfig, values []string) error {
	format, err := render.ParseFormat(outFormat)
	if err != nil {
		return err
	}
	record := historyEnabled(cmd, fileCfg)
	entries := make([]render.Entry, len(values))
	reports := make([]model.Report, 0, len(values))
	for i, v := range values {
		entries[i] = render.Entry{Value: v}
		if !outAnalyze && !record {
			continue
		}
		report := analyzer.Analyze(v)
		reports = append(reports, report)
		if outAnalyze {
			entries[i].Report = &report
		}
	}

	if record {
		if err := recordReports(cmd.Context(), reports, model.SourceGenerated); err != nil {
			return err
		}
	}

	opts := render.Options{Format: format}
	if outPath != "" {
		if err := writeOutputFile(outPath, func(w io.Writer) error {
			return render.WriteEntries(w, entries, opts)
		}); err != nil {
			return err
		}
		log.Info("wrote output", zap.String("path", outPath), zap.Int("count", len(entries)))
		return nil
	}
	opts.Color = render.ShouldUseColor(cmd.OutOrStdout(), forceColor)
	if err := render.WriteEntries(cmd.OutOrStdout(), entries, opts); err != nil {
		return errors.Wrap(err, "failed to write output")
	}
	return nil
}

func loadWordList(name string) ([]string, error) {
	path := config.ResolveWordListPath(name)
	words, err := wordlist.LoadWords(path, wordlist.FilterForList(name))
	if err != nil {
		return nil, errors.WithHint(
			errors.Wrapf(err, "failed to load word list %q", name),
			"word lists hold one word per line; named lists live in "+config.DefaultWordListDir(),
		)
	}
	log.Debug("loaded word list", zap.String("path", path), zap.Int("words", len(words)))
	return words, nil
}

func withConfigHint(err error) error {
	switch {
	case errors.Is(err, model.ErrEmptyPool):
		return errors.WithHint(err, "enable at least one character class or drop --exclude-ambiguous")
	case errors.Is(err, model.ErrInvalidConfig):
		return errors.WithHint(err, "lengths, word counts and counts must be at least 1")
	default:
		return err
	}
}

func recordReports(ctx context.Context, reports []model.Report, source model.Source) error {
	if len(reports) == 0 {
		return nil
	}
	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)
	now := time.Now()
	recs := make([]model.AnalysisRecord, len(reports))
	for i, r := range reports {
		recs[i] = model.NewAnalysisRecord(r, source, now)
	}
	if _, err := st.InsertAnalyses(ctx, recs); err != nil {
		return errors.Wrap(err, "failed to record analyses")
	}
	log.Debug("recorded analyses", zap.Int("count", len(reports)), zap.String("db", dbPath))
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

// applyNegatedFlag sets target to the inverse of a --no-* flag when it was given.
func applyNegatedFlag(cmd *cobra.Command, name string, negated bool, target *bool) {
	if cmd.Flags().Changed(name) {
		*target = !negated
	}
}

func setFromConfig[T any](target, value *T) {
	if value != nil {
		*target = *value
	}
}
