// Package main provides the CLI entrypoint for typr.
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/typr-dev/typr/internal/config"
	"github.com/typr-dev/typr/internal/lexicon"
	"github.com/typr-dev/typr/internal/menu"
	"github.com/typr-dev/typr/internal/selector"
	"github.com/typr-dev/typr/internal/session"
	"github.com/typr-dev/typr/internal/stats"
	"github.com/typr-dev/typr/internal/statsui"
	"github.com/typr-dev/typr/internal/store"
	"github.com/typr-dev/typr/internal/tui"
	"github.com/typr-dev/typr/internal/wordlist"
)

const defaultCurveWindow = 10

var (
	rootForgive bool
	rootTime    int
	rootWords   int
	rootLiveWPM bool

	statsPlain bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "typr",
		Short:         "Terminal typing trainer",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE:          runRootCmd,
	}

	defaults := config.DefaultSettings()
	rootCmd.Flags().BoolVar(&rootForgive, "forgive-errors", defaults.ForgiveErrors, "discard incorrect keystrokes instead of recording them")
	rootCmd.Flags().IntVar(&rootTime, "time-limit", defaults.TimeLimit, "time limit in seconds for time mode")
	rootCmd.Flags().IntVar(&rootWords, "word-limit", defaults.WordLimit, "word count for words mode")
	rootCmd.Flags().BoolVar(&rootLiveWPM, "live-wpm", defaults.LiveWPM, "show live WPM in the status line")

	rootCmd.AddCommand(newStatsCmd())
	return rootCmd
}

func runRootCmd(cmd *cobra.Command, _ []string) error {
	if !menu.Available() {
		logErrln("typr uses gum for its menus and could not find it on PATH.")
		logErrln("Install it from https://github.com/charmbracelet/gum and run typr again.")
		return nil
	}

	settings := config.LoadSettings(config.DefaultSettingsPath())
	applyBoolFlag(cmd, "forgive-errors", &settings.ForgiveErrors, rootForgive)
	applyIntFlag(cmd, "time-limit", &settings.TimeLimit, rootTime)
	applyIntFlag(cmd, "word-limit", &settings.WordLimit, rootWords)
	applyBoolFlag(cmd, "live-wpm", &settings.LiveWPM, rootLiveWPM)

	words := wordlist.LoadTypeable(config.DefaultWordListPath())
	lex := lexicon.New(words)

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		// History is optional; keep running without persistence.
		logErrf("failed to open history db: %v\n", err)
		st = nil
	} else {
		defer closeStore(st)
		letters, err := st.LoadLetters(context.Background())
		if err != nil {
			logErrf("failed to load letter stats: %v\n", err)
		} else {
			for ch, entry := range letters {
				*lex.Letter(ch) = *entry
			}
		}
	}

	app := &app{provider: menu.Gum{}, settings: settings, lex: lex, store: st}
	return app.run()
}

type app struct {
	provider menu.Provider
	settings config.Settings
	lex      *lexicon.Lexicon
	store    *store.Store
}

func (a *app) run() error {
	for {
		action, err := menu.Main(a.provider)
		if err != nil {
			return fmt.Errorf("failed to show menu: %w", err)
		}
		switch action {
		case menu.ActionWordsTest:
			if err := a.runTest(session.Mode{Kind: session.FixedWords, Limit: a.settings.WordLimit}); err != nil {
				return err
			}
		case menu.ActionTimeTest:
			if err := a.runTest(session.Mode{Kind: session.FixedTime, Limit: a.settings.TimeLimit}); err != nil {
				return err
			}
		case menu.ActionUnbounded:
			if err := a.runTest(session.Mode{Kind: session.Unbounded}); err != nil {
				return err
			}
		case menu.ActionSettings:
			a.settingsLoop()
		case menu.ActionQuit:
			a.persist()
			return nil
		}
	}
}

func (a *app) runTest(mode session.Mode) error {
	sel := selector.New(a.lex)
	tracker := stats.NewTracker(a.lex)
	engine := session.New(mode, a.settings.ForgiveErrors, sel, tracker)

	program := tea.NewProgram(tui.NewModel(engine, a.settings.LiveWPM), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run typing TUI: %w", err)
	}

	res, ok := engine.Result()
	if !ok {
		return nil
	}
	if a.store != nil && a.settings.AutoSave && res.Accuracy >= a.settings.MinAccuracyToSave*100 {
		ctx := context.Background()
		if _, err := a.store.AppendResult(ctx, res); err != nil {
			logErrf("failed to save result: %v\n", err)
		}
		if err := a.store.SaveLetters(ctx, a.lex.Letters); err != nil {
			logErrf("failed to save letter stats: %v\n", err)
		}
	}
	a.showResults(res)
	return nil
}

func (a *app) showResults(res session.Result) {
	text := fmt.Sprintf("Net WPM: %.1f\nRaw WPM: %.1f\nAccuracy: %.1f%%\nTime: %.0fs\nWords: %d",
		res.NetWPM, res.RawWPM, res.Accuracy, res.Seconds, res.Words)
	if err := a.provider.Style(text); err != nil {
		logErrf("failed to render results: %v\n", err)
		fmt.Println(text)
	}
	// Hold the card until acknowledged; the next menu draw would
	// otherwise pull focus immediately.
	if _, err := a.provider.Input("Press Enter to return to the menu", "", ""); err != nil {
		logErrf("failed to wait after results: %v\n", err)
	}
}

func (a *app) settingsLoop() {
	for {
		action, err := menu.Settings(a.provider, a.settings)
		if err != nil {
			logErrf("failed to show settings menu: %v\n", err)
			return
		}
		switch action {
		case menu.SettingsToggleForgive:
			a.settings.ForgiveErrors = !a.settings.ForgiveErrors
		case menu.SettingsEditTime:
			if v, ok := a.promptInt("Default time limit (seconds)", a.settings.TimeLimit); ok {
				a.settings.TimeLimit = v
			}
		case menu.SettingsEditWords:
			if v, ok := a.promptInt("Default word count", a.settings.WordLimit); ok {
				a.settings.WordLimit = v
			}
		case menu.SettingsToggleLiveWPM:
			a.settings.LiveWPM = !a.settings.LiveWPM
		case menu.SettingsToggleAutoSave:
			a.settings.AutoSave = !a.settings.AutoSave
		case menu.SettingsEditMinAccuracy:
			if v, ok := a.promptPercent("Minimum accuracy to save (%)", a.settings.MinAccuracyToSave); ok {
				a.settings.MinAccuracyToSave = v
			}
		case menu.SettingsReset:
			a.resetHistory()
		case menu.SettingsBack:
			a.persist()
			return
		}
	}
}

func (a *app) promptInt(header string, current int) (int, bool) {
	raw, err := a.provider.Input(header, "", strconv.Itoa(current))
	if err != nil || raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

func (a *app) promptPercent(header string, current float64) (float64, bool) {
	raw, err := a.provider.Input(header, "", strconv.FormatFloat(current*100, 'f', 0, 64))
	if err != nil || raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 || v > 100 {
		return 0, false
	}
	return v / 100, true
}

func (a *app) resetHistory() {
	if !a.provider.Confirm("Reset all letter stats and saved results?") {
		return
	}
	a.lex.Reset()
	if a.store != nil {
		if err := a.store.ResetAll(context.Background()); err != nil {
			logErrf("failed to reset history: %v\n", err)
		}
	}
}

// persist writes settings and letter stats best-effort; losing either is
// an inconvenience, not a failure.
func (a *app) persist() {
	if err := config.SaveSettings(config.DefaultSettingsPath(), a.settings); err != nil {
		logErrf("failed to save settings: %v\n", err)
	}
	if a.store != nil {
		if err := a.store.SaveLetters(context.Background(), a.lex.Letters); err != nil {
			logErrf("failed to save letter stats: %v\n", err)
		}
	}
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Browse typing history",
		Args:  cobra.NoArgs,
		RunE:  runStatsCmd,
	}
	cmd.Flags().BoolVar(&statsPlain, "plain", false, "print a plain-text summary instead of the TUI")
	return cmd
}

func runStatsCmd(cmd *cobra.Command, _ []string) error {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open history db: %w", err)
	}
	defer closeStore(st)

	if statsPlain {
		return printPlainStats(cmd, st)
	}

	program := tea.NewProgram(statsui.NewModel(st), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run stats TUI: %w", err)
	}
	return nil
}

func printPlainStats(cmd *cobra.Command, st *store.Store) error {
	results, err := st.ListResults(context.Background())
	if err != nil {
		return fmt.Errorf("failed to load results: %w", err)
	}
	out := cmd.OutOrStdout()
	if len(results) == 0 {
		fmt.Fprintln(out, "No results yet. Finish a test to record history.")
		return nil
	}

	summary := statsui.Summarize(results)
	fmt.Fprintf(out, "Sessions:     %d\n", summary.Sessions)
	fmt.Fprintf(out, "Avg net WPM:  %.1f\n", summary.AvgNetWPM)
	fmt.Fprintf(out, "Best net WPM: %.1f\n", summary.BestNetWPM)
	fmt.Fprintf(out, "Avg accuracy: %.1f%%\n", summary.AvgAccuracy)

	width := 60
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 10 {
		width = w - 2
	}
	nets := make([]float64, len(results))
	for i, res := range results {
		nets[i] = res.NetWPM
	}
	curve := stats.Resample(stats.MovingAverage(nets, defaultCurveWindow), width)
	fmt.Fprintln(out, "Net WPM trend:")
	fmt.Fprintln(out, stats.Sparkline(curve))
	return nil
}

// Changed flags win over the settings file for one run without being
// written back.
func applyBoolFlag(cmd *cobra.Command, name string, target *bool, value bool) {
	if cmd.Flags().Changed(name) {
		*target = value
	}
}

func applyIntFlag(cmd *cobra.Command, name string, target *int, value int) {
	if cmd.Flags().Changed(name) {
		*target = value
	}
}

func closeStore(st *store.Store) {
	if err := st.Close(); err != nil {
		logErrf("failed to close history db: %v\n", err)
	}
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
