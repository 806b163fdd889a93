package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/dagimg-dot/EthCal/internal/settings"
)

var setupCmd = LeafCommand{
	Use:   "setup",
	Short: "Interactively configure the calendar",
	Args:  cobra.NoArgs,
	RunE:  runSetup,
}.Build()

// setupForm walks through every preference; split out so tests can cover
// runSetup's persistence path without a terminal.
var setupForm = func(s *settings.Settings) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Display language").
				Options(
					huh.NewOption("አማርኛ (Amharic)", "amharic"),
					huh.NewOption("English", "english"),
				).
				Value(&s.Language),
			huh.NewSelect[int]().
				Title("First day of the week").
				Options(
					huh.NewOption("Monday", 1),
					huh.NewOption("Sunday", 0),
					huh.NewOption("Saturday", 6),
				).
				Value(&s.WeekStart),
			huh.NewConfirm().
				Title("Use Geez numerals?").
				Value(&s.UseGeez),
			huh.NewSelect[string]().
				Title("Which holidays to show").
				Options(
					huh.NewOption("All holidays", "all"),
					huh.NewOption("Public holidays only", "public"),
					huh.NewOption("Christian holidays", "christian"),
					huh.NewOption("Muslim holidays", "muslim"),
				).
				Value(&s.Mode),
		),
	).Run()
}

func runSetup(cmd *cobra.Command, args []string) error {
	s := loadSettings()
	if err := setupForm(&s); err != nil {
		return fmt.Errorf("setup aborted: %w", err)
	}

	dir, err := settings.Dir()
	if err != nil {
		return err
	}
	if err := settings.Save(dir, s); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "preferences saved")
	return nil
}
