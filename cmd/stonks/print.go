package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/napolitain/fractaline-stonks/internal/countdown"
	"github.com/napolitain/fractaline-stonks/internal/format"
	"github.com/napolitain/fractaline-stonks/internal/models"
	"github.com/napolitain/fractaline-stonks/internal/schedule"
	"github.com/napolitain/fractaline-stonks/internal/solver"
)

func printHeader() {
	titleColor := color.New(color.FgCyan, color.Bold)
	titleColor.Println("\n╭───────────────────────────╮")
	titleColor.Println("│  Fractaline Stonks        │")
	titleColor.Println("│  Donate or Invest?        │")
	titleColor.Println("╰───────────────────────────╯")
	fmt.Println()
}

func printState(title string, s models.ResourceState) {
	color.New(color.FgYellow).Println(title)
	s.ObeliskLevels.Each(func(l models.Location, level int) {
		fmt.Printf("   %-14s rank %d\n", l.DisplayName()+":", level)
	})
	fmt.Printf("   Resonance power: %s\n", format.Number(s.ResonancePower))
	fmt.Printf("   Donated:         %s\n", format.Number(s.DonatedFractalineTotal))
	fmt.Printf("   Inventory:       %s (+%d light-fused)\n",
		format.Number(s.FractalineInInventory), s.FusedFractalineInInventory)
	if s.HasCollectedWeeklyBonus {
		fmt.Println("   Tower fractaline already collected this week")
	}
}

func actionCell(a models.Action, overridden bool) string {
	label := a.Label()
	if overridden {
		label += " *"
	}
	if a == models.Donate {
		return color.GreenString(label)
	}
	return color.CyanString(label)
}

func printProjection(p solver.Projection) {
	fmt.Println("\n📋 Projection:")

	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"#", "Reset", "Action", "Ranks", "Resonance", "Donated", "Δ Donated", "Inventory"}),
	)
	for _, step := range p.Steps {
		row := []string{
			fmt.Sprintf("%d", step.Checkpoint.Index),
			format.Date(step.Checkpoint.At),
			actionCell(step.Action, step.Overridden),
			fmt.Sprintf("%d (+%d)", step.After.TotalObeliskLevel(), step.LevelDelta()),
			format.Number(step.After.ResonancePower),
			format.Number(step.After.DonatedFractalineTotal),
			"+" + format.Number(step.DonatedDelta()),
			format.Number(step.After.FractalineInInventory),
		}
		table.Append(row)
	}
	table.Render()
	fmt.Println("   * overridden")
}

func printTerminal(p solver.Projection) {
	successColor := color.New(color.FgGreen, color.Bold)
	successColor.Printf("\n✓ Season end: %s fractaline donated (+%s)\n",
		format.Number(p.Final.DonatedFractalineTotal), format.Number(p.DonatedGain()))
	fmt.Printf("   Total obelisk rank: %d, resonance %s, %s left in inventory\n",
		p.Final.TotalObeliskLevel(), format.Number(p.Final.ResonancePower), format.Number(p.Final.FractalineInInventory))
}

func printAdvice(a solver.Advice, left countdown.Result) {
	if a.ShouldDonate {
		color.New(color.FgGreen, color.Bold).Printf("%s remaining to donate Fractaline: %s\n\n",
			left.Unit(), format.Number(int(left.Value)))
		return
	}
	color.New(color.FgCyan, color.Bold).Printf("Don't donate! %d resets left to invest for optimal fractaline\n\n",
		a.InvestResetsLeft)
}

func printResets(checkpoints []models.Checkpoint, overrides models.Overrides) {
	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"#", "From", "To", "Action"}),
	)
	for _, cp := range checkpoints {
		start, end := schedule.ResetWindow(cp.At)
		_, overridden := overrides[cp.Index]
		action := solver.ResolveAction(cp.Index, overrides, solver.TrailingWindow)
		table.Append([]string{
			fmt.Sprintf("%d", cp.Index),
			format.Date(start),
			format.Date(end),
			actionCell(action, overridden),
		})
	}
	table.Render()
}

func printStrategies(best solver.StrategyResult, results []solver.StrategyResult) {
	fmt.Println("📊 Strategy Comparison:")

	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"", "Strategy", "Donated", "Ranks", "Inventory"}),
	)
	for _, r := range results {
		marker := ""
		if r.Strategy.Name == best.Strategy.Name {
			marker = "✓"
		}
		table.Append([]string{
			marker,
			r.Strategy.String(),
			format.Number(r.Projection.Final.DonatedFractalineTotal),
			fmt.Sprintf("%d", r.Projection.Final.TotalObeliskLevel()),
			format.Number(r.Projection.Final.FractalineInInventory),
		})
	}
	table.Render()
}
