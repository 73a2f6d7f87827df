// Package main provides the CLI entrypoint for readometer.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/readometer/internal/analyzer"
	"github.com/verte-zerg/readometer/internal/config"
	"github.com/verte-zerg/readometer/internal/content"
	"github.com/verte-zerg/readometer/internal/model"
	"github.com/verte-zerg/readometer/internal/report"
	"github.com/verte-zerg/readometer/internal/store"
	"github.com/verte-zerg/readometer/internal/tui"
	"github.com/verte-zerg/readometer/internal/wordlist"
)

const (
	defaultTopLimit    = 10
	defaultHistoryLast = 20
)

var (
	inputPath string
	verbose   bool
	wpm       int
	record    bool

	wordcountUnique bool

	topLimit     int
	topStopwords string
	topSkipShort int

	historyLast int
	historyPath string

	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "readometer [file]",
		Short:             "Estimate reading time and word count of text and markdown files",
		Args:              cobra.MaximumNArgs(1),
		SilenceUsage:      true,
		SilenceErrors:     false,
		PersistentPreRunE: setupLogger,
		RunE:              runEstimateCmd,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&inputPath, "input", "i", "", "path to the input file (.txt or .md)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "print status messages")
	flags.IntVar(&wpm, "wpm", analyzer.DefaultWPM, "reading speed in words per minute")
	flags.BoolVar(&record, "record", false, "store the analysis in history")

	rootCmd.AddCommand(newEstimateCmd())
	rootCmd.AddCommand(newWordcountCmd())
	rootCmd.AddCommand(newTopCmd())
	rootCmd.AddCommand(newBrowseCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func setupLogger(cmd *cobra.Command, _ []string) error {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	return nil
}

func newEstimateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "estimate [file]",
		Short: "Estimate reading time",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runEstimateCmd,
	}
}

func runEstimateCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	ref, res, err := analyze(cmd, args, cfg, "Estimating reading time for '%s'")
	if err != nil {
		return err
	}
	if err := recordAnalysis(cmd.Context(), cfg, ref, res); err != nil {
		return err
	}
	return report.WriteEstimate(cmd.OutOrStdout(), res.ReadingMinutes)
}

func newWordcountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wordcount [file]",
		Short: "Count words",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runWordcountCmd,
	}
	cmd.Flags().BoolVar(&wordcountUnique, "unique", false, "also print the number of distinct words")
	return cmd
}

func runWordcountCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	ref, res, err := analyze(cmd, args, cfg, "Calculating word count for '%s'")
	if err != nil {
		return err
	}
	if err := recordAnalysis(cmd.Context(), cfg, ref, res); err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if err := report.WriteWordCount(out, res.Words); err != nil {
		return err
	}
	if wordcountUnique {
		return report.WriteUniqueCount(out, res.Unique)
	}
	return nil
}

func newTopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "top [file]",
		Short: "Show the most frequent words",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runTopCmd,
	}
	addFilterFlags(cmd)
	cmd.Flags().IntVarP(&topLimit, "limit", "n", defaultTopLimit, "number of words to show (0 = all)")
	return cmd
}

func runTopCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	keep, err := buildFilter(cfg)
	if err != nil {
		return err
	}
	_, res, err := analyze(cmd, args, cfg, "Counting word frequencies for '%s'")
	if err != nil {
		return err
	}
	entries := analyzer.Top(res.Frequencies, cfg.Limit, keep)
	return report.RenderTop(cmd.OutOrStdout(), entries, res.Words, outputWidth(cmd))
}

func newBrowseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse [file]",
		Short: "Browse word frequencies interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runBrowseCmd,
	}
	addFilterFlags(cmd)
	return cmd
}

func runBrowseCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	var keep wordlist.FilterFunc
	if cfg.Stopwords != "" || cfg.SkipShort > 0 {
		if keep, err = buildFilter(cfg); err != nil {
			return err
		}
	}
	ref, res, err := analyze(cmd, args, cfg, "Loading '%s'")
	if err != nil {
		return err
	}
	if err := recordAnalysis(cmd.Context(), cfg, ref, res); err != nil {
		return err
	}
	program := tea.NewProgram(tui.NewModel(ref, res, keep), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&topStopwords, "stopwords", "", "file with words to leave out, one per line")
	cmd.Flags().IntVar(&topSkipShort, "skip-short", 0, "leave out words shorter than N characters")
}

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded analyses",
		Args:  cobra.NoArgs,
		RunE:  runHistoryCmd,
	}
	cmd.Flags().IntVar(&historyLast, "last", defaultHistoryLast, "limit to last N analyses (0 = all)")
	cmd.Flags().StringVar(&historyPath, "path", "", "only show analyses of this file")
	return cmd
}

func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	if historyLast < 0 {
		return fmt.Errorf("--last must be >= 0")
	}
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer closeStore(st)

	filterPath := historyPath
	if filterPath != "" {
		filterPath = absPath(filterPath)
	}
	records, err := st.ListAnalyses(cmd.Context(), model.HistoryConfig{Path: filterPath, Last: historyLast})
	if err != nil {
		return fmt.Errorf("failed to list analyses: %w", err)
	}
	return report.RenderHistory(cmd.OutOrStdout(), records, time.Now())
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := writeDefaultConfig(path); err != nil {
		return err
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func writeDefaultConfig(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}
	return nil
}

// analyze resolves the input path, loads it and computes metrics. status is
// printed to stdout in verbose mode once the file is loaded.
func analyze(cmd *cobra.Command, args []string, cfg model.Config, status string) (model.FileReference, model.Result, error) {
	path := resolveInputPath(args)
	ref, text, err := content.LoadReference(path)
	if err != nil {
		return model.FileReference{}, model.Result{}, err
	}
	logger.Debug("loaded file", "path", ref.Path, "kind", ref.Kind.String(), "chars", len(text))
	if cfg.Verbose {
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), status+"\n", path); err != nil {
			return model.FileReference{}, model.Result{}, fmt.Errorf("failed to write output: %w", err)
		}
	}
	res := analyzer.Analyze(text, cfg.WPM)
	logger.Debug("analyzed file", "words", res.Words, "unique", res.Unique, "minutes", res.ReadingMinutes, "wpm", res.WPM)
	return ref, res, nil
}

// resolveInputPath prefers the positional argument over --input.
func resolveInputPath(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return inputPath
}

func recordAnalysis(ctx context.Context, cfg model.Config, ref model.FileReference, res model.Result) error {
	if !cfg.Record {
		return nil
	}
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer closeStore(st)

	id, err := st.InsertAnalysis(ctx, model.AnalysisRecord{
		AnalyzedAt:     time.Now(),
		Path:           absPath(ref.Path),
		Kind:           ref.Kind.String(),
		Words:          res.Words,
		Unique:         res.Unique,
		ReadingMinutes: res.ReadingMinutes,
		WPM:            res.WPM,
	})
	if err != nil {
		return fmt.Errorf("failed to record analysis: %w", err)
	}
	logger.Debug("recorded analysis", "id", id)
	return nil
}

func closeStore(st *store.Store) {
	if cerr := st.Close(); cerr != nil {
		logger.Warn("failed to close db", "error", cerr)
	}
}

func buildFilter(cfg model.Config) (wordlist.FilterFunc, error) {
	filters := []wordlist.FilterFunc{wordlist.MinLength(cfg.SkipShort)}
	if cfg.Stopwords != "" {
		words, err := wordlist.LoadWords(cfg.Stopwords)
		if err != nil {
			return nil, fmt.Errorf("failed to load stopwords '%s': %w", cfg.Stopwords, err)
		}
		filters = append(filters, wordlist.ExcludeWords(words))
	}
	return wordlist.All(filters...), nil
}

func outputWidth(cmd *cobra.Command) int {
	if f, ok := cmd.OutOrStdout().(*os.File); ok && f == os.Stdout {
		return report.TerminalWidth()
	}
	return 0
}

func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}

func loadSettings(cmd *cobra.Command) (model.Config, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "wpm", &wpm, fileCfg.Reading.WPM)
	applyBoolConfig(cmd, "verbose", &verbose, fileCfg.Reading.Verbose)
	applyBoolConfig(cmd, "record", &record, fileCfg.History.Enabled)
	applyIntConfig(cmd, "limit", &topLimit, fileCfg.Top.Limit)
	applyStringConfig(cmd, "stopwords", &topStopwords, fileCfg.Top.Stopwords)
	applyIntConfig(cmd, "skip-short", &topSkipShort, fileCfg.Top.SkipShort)

	cfg := model.Config{
		WPM:       wpm,
		Verbose:   verbose,
		Record:    record,
		Limit:     topLimit,
		Stopwords: topStopwords,
		SkipShort: topSkipShort,
	}
	if err := validateConfig(cfg); err != nil {
		return model.Config{}, err
	}
	if cfg.Verbose {
		// The config file may turn verbose on after the logger was built.
		_ = setupLogger(cmd, nil)
	}
	return cfg, nil
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

func validateConfig(cfg model.Config) error {
	if cfg.WPM <= 0 {
		return fmt.Errorf("--wpm must be > 0")
	}
	if cfg.Limit < 0 {
		return fmt.Errorf("--limit must be >= 0")
	}
	if cfg.SkipShort < 0 {
		return fmt.Errorf("--skip-short must be >= 0")
	}
	return nil
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# readometer configuration
# Uncomment a value to enable it. CLI flags override config values.

[reading]
# wpm = %d                # Reading speed in words per minute
# verbose = false          # Print status messages

[top]
# limit = %d               # Number of words shown by "top" (0 = all)
# stopwords = ""           # File with words to leave out, one per line
# skip-short = 0           # Leave out words shorter than N characters

[history]
# enabled = false          # Record every analysis (see "readometer history")
`,
		analyzer.DefaultWPM,
		defaultTopLimit,
	)
}
