// headless runs computer-versus-computer matches without a window and prints
// a summary of each one.
//
// Usage:
//
//	headless --matches 10 --ticks 3600 --difficulty hard
//	headless --realtime --ticks 600   - tick at the wall-clock rate
//	headless --matches 20 --copy      - also copy the results as CSV
package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/automoto/substitute-soccer/assets"
	"github.com/automoto/substitute-soccer/config"
	"github.com/automoto/substitute-soccer/core"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	flagMatches    int
	flagTicks      int
	flagSeed       int64
	flagDifficulty string
	flagRealtime   bool
	flagVerbose    bool
	flagCopy       bool
)

var rootCmd = &cobra.Command{
	Use:   "headless",
	Short: "Run soccer matches without a window",
	Long: `Runs computer-versus-computer matches on the embedded pitch and prints
the score, goal ticks and possession of each.

Examples:
  headless --matches 5
  headless --ticks 7200 --difficulty easy --seed 42
  headless --realtime --ticks 600`,
	Args: cobra.NoArgs,
	RunE: runHeadless,
}

func init() {
	rootCmd.Flags().IntVar(&flagMatches, "matches", 1, "Number of matches to run")
	rootCmd.Flags().IntVar(&flagTicks, "ticks", 60*60, "Ticks per match")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 1, "Seed of the first match; later matches add their index")
	rootCmd.Flags().StringVar(&flagDifficulty, "difficulty", "medium", "Computer difficulty: easy, medium or hard")
	rootCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Tick at the configured tick rate instead of as fast as possible")
	rootCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Log kickoffs and goals")
	rootCmd.Flags().BoolVar(&flagCopy, "copy", false, "Copy the results to the clipboard as CSV")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runHeadless(cmd *cobra.Command, args []string) error {
	difficulty, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return err
	}
	if flagMatches <= 0 || flagTicks <= 0 {
		return fmt.Errorf("--matches and --ticks must be positive")
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "headless",
		Level:           log.WarnLevel,
	})
	if flagVerbose {
		logger.SetLevel(log.InfoLevel)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	layout := assets.MustLoadLayout()
	results := make([]matchResult, 0, flagMatches)
	for i := 0; i < flagMatches; i++ {
		opts := core.Options{
			Difficulty: difficulty,
			Seed:       flagSeed + int64(i),
			Layout:     layout,
			Logger:     logger.With("match", i+1),
		}
		res, err := playMatch(ctx, opts, flagTicks, flagRealtime)
		results = append(results, res)
		if err != nil {
			logger.Warn("match interrupted", "match", i+1, "err", err)
			break
		}
	}

	fmt.Fprint(cmd.OutOrStdout(), renderReport(results))

	if flagCopy {
		data, err := resultsCSV(results)
		if err != nil {
			return fmt.Errorf("format results: %w", err)
		}
		if err := clipboard.WriteAll(data); err != nil {
			return fmt.Errorf("copy results: %w", err)
		}
		logger.Info("results copied to clipboard", "matches", len(results))
	}
	return nil
}

// matchResult summarises one finished match.
type matchResult struct {
	Seed       int64
	Ticks      int
	Score      [2]int
	GoalTicks  [2][]int
	Possession [2]int // ticks each team held the ball
	Turnovers  int    // possession changes between teams
}

// tracker collects a matchResult from a match after every tick.
type tracker struct {
	match    *core.Match
	res      matchResult
	lastTeam int
}

func newTracker(m *core.Match, seed int64) *tracker {
	return &tracker{match: m, res: matchResult{Seed: seed}, lastTeam: -1}
}

func (t *tracker) step() {
	var idle [2]core.TeamInput
	t.match.Advance(idle)
	t.res.Ticks++

	for team := 0; team < 2; team++ {
		if score := t.match.Score(team); score > t.res.Score[team] {
			t.res.Score[team] = score
			t.res.GoalTicks[team] = append(t.res.GoalTicks[team], t.match.Tick())
		}
	}

	if owner, ok := t.match.Owner(); ok {
		t.res.Possession[owner.Team]++
		if t.lastTeam >= 0 && t.lastTeam != owner.Team {
			t.res.Turnovers++
		}
		t.lastTeam = owner.Team
	}
}

// playMatch runs ticks of one match, either back to back or on the wall
// clock.
func playMatch(ctx context.Context, opts core.Options, ticks int, realtime bool) (matchResult, error) {
	t := newTracker(core.NewMatch(opts), opts.Seed)
	if realtime {
		loop := core.NewLoop(t.step, config.Match.TickRate, config.Match.MaxCatchUpTicks)
		err := loop.Run(ctx, ticks)
		return t.res, err
	}

	for i := 0; i < ticks; i++ {
		if i%600 == 0 {
			if err := ctx.Err(); err != nil {
				return t.res, err
			}
		}
		t.step()
	}
	return t.res, nil
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	headStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	teamStyles = [2]lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	}
	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	boxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

func renderReport(results []matchResult) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Substitute Soccer - headless report"))
	b.WriteString("\n")
	b.WriteString(headStyle.Render(fmt.Sprintf("%-6s %-8s %-9s %-7s %-15s %s", "Match", "Seed", "Score", "Ticks", "Possession", "Turnovers")))
	b.WriteString("\n")

	var totals [2]int
	for i, r := range results {
		score := teamStyles[0].Render(fmt.Sprint(r.Score[0])) + " - " + teamStyles[1].Render(fmt.Sprint(r.Score[1]))
		fmt.Fprintf(&b, "%-6d %-8d %s%s %-7d %-15s %d\n",
			i+1, r.Seed, score, strings.Repeat(" ", padding(r.Score)), r.Ticks, possession(r), r.Turnovers)
		for team, ticks := range r.GoalTicks {
			if len(ticks) > 0 {
				b.WriteString(dimStyle.Render(fmt.Sprintf("       team %d goals at ticks %v", team+1, ticks)))
				b.WriteString("\n")
			}
		}
		totals[0] += r.Score[0]
		totals[1] += r.Score[1]
	}

	summary := fmt.Sprintf("%d matches   goals %s - %s",
		len(results),
		teamStyles[0].Render(fmt.Sprint(totals[0])),
		teamStyles[1].Render(fmt.Sprint(totals[1])))
	b.WriteString(boxStyle.Render(summary))
	b.WriteString("\n")
	return b.String()
}

// resultsCSV lists one match per row for pasting into a spreadsheet.
func resultsCSV(results []matchResult) (string, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)
	rows := [][]string{{"match", "seed", "ticks", "score0", "score1", "possession0", "possession1", "turnovers"}}
	for i, r := range results {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			strconv.FormatInt(r.Seed, 10),
			strconv.Itoa(r.Ticks),
			strconv.Itoa(r.Score[0]),
			strconv.Itoa(r.Score[1]),
			strconv.Itoa(r.Possession[0]),
			strconv.Itoa(r.Possession[1]),
			strconv.Itoa(r.Turnovers),
		})
	}
	if err := w.WriteAll(rows); err != nil {
		return "", err
	}
	return b.String(), nil
}

// padding keeps the score column aligned after styling adds escape codes.
func padding(score [2]int) int {
	n := 9 - len(fmt.Sprintf("%d - %d", score[0], score[1]))
	if n < 1 {
		return 1
	}
	return n
}

func possession(r matchResult) string {
	total := r.Possession[0] + r.Possession[1]
	if total == 0 {
		return "-"
	}
	p0 := 100 * r.Possession[0] / total
	return fmt.Sprintf("%d%% / %d%%", p0, 100-p0)
}
