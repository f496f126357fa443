package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/napolitain/fractaline-stonks/internal/config"
	"github.com/napolitain/fractaline-stonks/internal/countdown"
	"github.com/napolitain/fractaline-stonks/internal/format"
	"github.com/napolitain/fractaline-stonks/internal/loader"
	"github.com/napolitain/fractaline-stonks/internal/logger"
	"github.com/napolitain/fractaline-stonks/internal/models"
	"github.com/napolitain/fractaline-stonks/internal/schedule"
	"github.com/napolitain/fractaline-stonks/internal/solver"
	"github.com/napolitain/fractaline-stonks/internal/store"
)

var (
	nowFlag       string
	stateFile     string
	overridesFile string
	useStore      bool
	clearStore    bool

	cfg *config.Config
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "stonks",
		Short: "Fractaline Stonks - donate or invest?",
		Long: `Projects your Fractaline week by week until the end of the
Season of Dawn and tells you whether to donate or invest at each reset.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load()
			if err != nil {
				return err
			}
			logger.Setup(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat, Service: "stonks"})
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&nowFlag, "now", "", "Pretend the current time is this RFC3339 instant")

	projectCmd := &cobra.Command{
		Use:   "project",
		Short: "Project resources reset by reset until season end",
		RunE:  runProject,
	}
	projectCmd.Flags().StringVarP(&stateFile, "state", "s", "", "Path to JSON/YAML snapshot (required)")
	projectCmd.Flags().StringVarP(&overridesFile, "overrides", "o", "", "Path to JSON/YAML overrides file")
	projectCmd.Flags().BoolVar(&useStore, "use-store", false, "Apply overrides saved with 'stonks toggle'")
	_ = projectCmd.MarkFlagRequired("state")

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare invest/donate splits against your current plan",
		RunE:  runCompare,
	}
	compareCmd.Flags().StringVarP(&stateFile, "state", "s", "", "Path to JSON/YAML snapshot (required)")
	compareCmd.Flags().BoolVar(&useStore, "use-store", false, "Use saved overrides as the current plan")
	_ = compareCmd.MarkFlagRequired("state")

	resetsCmd := &cobra.Command{
		Use:   "resets",
		Short: "List remaining resets and the recommended action",
		RunE:  runResets,
	}
	resetsCmd.Flags().BoolVar(&useStore, "use-store", false, "Show saved overrides")

	countdownCmd := &cobra.Command{
		Use:   "countdown",
		Short: "Time left until the season ends",
		RunE:  runCountdown,
	}

	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "Live countdown to season end (q to quit)",
		RunE:  runWatch,
	}

	toggleCmd := &cobra.Command{
		Use:   "toggle INDEX",
		Short: "Flip the action at a reset index (-1 is the last reset)",
		Args:  cobra.ExactArgs(1),
		RunE:  runToggle,
	}

	overridesCmd := &cobra.Command{
		Use:   "overrides",
		Short: "List or clear saved overrides",
		RunE:  runOverrides,
	}
	overridesCmd.Flags().BoolVar(&clearStore, "clear", false, "Remove all saved overrides")

	rootCmd.AddCommand(projectCmd, compareCmd, resetsCmd, countdownCmd, watchCmd, toggleCmd, overridesCmd)

	if err := rootCmd.Execute(); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}

// now returns --now when given, the wall clock otherwise
func now() (time.Time, error) {
	if nowFlag == "" {
		return time.Now().UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, nowFlag)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --now: %w", err)
	}
	return t.UTC(), nil
}

func openStore() (*store.SQLite, error) {
	s, err := store.OpenSQLite(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open store %s: %w", cfg.DBPath, err)
	}
	return s, nil
}

// loadOverrides merges the overrides file over the stored overrides
func loadOverrides(ctx context.Context) (models.Overrides, error) {
	overrides := models.Overrides{}

	if useStore {
		s, err := openStore()
		if err != nil {
			return nil, err
		}
		defer s.Close()
		overrides, err = s.Overrides(ctx, cfg.Season)
		if err != nil {
			return nil, err
		}
	}

	if overridesFile != "" {
		fromFile, err := loader.LoadOverrides(overridesFile)
		if err != nil {
			return nil, err
		}
		for _, index := range fromFile.Indexes() {
			overrides = overrides.With(index, fromFile[index])
		}
	}

	slog.Debug("overrides loaded", "count", len(overrides), "store", useStore, "file", overridesFile)
	return overrides, nil
}

func runProject(cmd *cobra.Command, args []string) error {
	at, err := now()
	if err != nil {
		return err
	}
	state, err := loader.LoadSnapshot(stateFile)
	if err != nil {
		return err
	}
	overrides, err := loadOverrides(cmd.Context())
	if err != nil {
		return err
	}

	printHeader()
	printState("📊 Current State:", state)

	projection := solver.ProjectSeason(state, at, overrides)
	slog.Debug("projection computed", "steps", len(projection.Steps), "now", at)

	if len(projection.Steps) == 0 {
		color.Yellow("\nNo resets left before the season ends.")
	} else {
		printProjection(projection)
	}
	printTerminal(projection)
	return nil
}

func runCompare(cmd *cobra.Command, args []string) error {
	at, err := now()
	if err != nil {
		return err
	}
	state, err := loader.LoadSnapshot(stateFile)
	if err != nil {
		return err
	}
	overrides, err := loadOverrides(cmd.Context())
	if err != nil {
		return err
	}

	checkpoints := schedule.GenerateCheckpoints(at, schedule.SeasonEnd)
	best, results := solver.CompareStrategies(state, checkpoints, overrides, solver.TrailingWindow)

	printHeader()
	printStrategies(best, results)

	color.New(color.FgGreen, color.Bold).Printf("\n✓ Best strategy: %s (%s donated by season end)\n",
		best.Strategy, format.Number(best.Projection.Final.DonatedFractalineTotal))
	return nil
}

func runResets(cmd *cobra.Command, args []string) error {
	at, err := now()
	if err != nil {
		return err
	}
	overrides, err := loadOverrides(cmd.Context())
	if err != nil {
		return err
	}

	checkpoints := models.IndexCheckpoints(schedule.GenerateCheckpoints(at, schedule.SeasonEnd))

	printHeader()
	fmt.Printf("Season of Dawn ends: %s (%s)\n\n", format.Date(schedule.SeasonEnd), format.Relative(schedule.SeasonEnd, at))
	printAdvice(solver.Advise(len(checkpoints), solver.TrailingWindow), countdown.Breakdown(at, schedule.SeasonEnd))

	if len(checkpoints) > 0 {
		printResets(checkpoints, overrides)
	}
	return nil
}

func runCountdown(cmd *cobra.Command, args []string) error {
	at, err := now()
	if err != nil {
		return err
	}
	result := countdown.Breakdown(at, schedule.SeasonEnd)
	fmt.Printf("%s until the season ends (%s)\n", result, format.Relative(schedule.SeasonEnd, at))
	return nil
}

func runToggle(cmd *cobra.Command, args []string) error {
	index, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid reset index %q: %w", args[0], err)
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	action, err := s.Toggle(cmd.Context(), cfg.Season, index, solver.TrailingWindow)
	if err != nil {
		return err
	}
	slog.Debug("override toggled", "season", cfg.Season, "index", index, "action", action)

	color.New(color.FgGreen, color.Bold).Printf("✓ Reset %d now set to %s\n", index, action.Label())
	return nil
}

func runOverrides(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	ctx := cmd.Context()
	if clearStore {
		if err := s.Clear(ctx, cfg.Season); err != nil {
			return err
		}
		color.Green("✓ Cleared overrides for season %s", cfg.Season)
		return nil
	}

	overrides, err := s.Overrides(ctx, cfg.Season)
	if err != nil {
		return err
	}
	if len(overrides) == 0 {
		fmt.Println("No saved overrides.")
		return nil
	}
	for _, index := range overrides.Indexes() {
		fmt.Printf("   %3d  %s\n", index, overrides[index].Label())
	}
	return nil
}
