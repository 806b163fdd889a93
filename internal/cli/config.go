package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dagimg-dot/EthCal/internal/settings"
)

var configCmd = GroupCommand{
	Use:   "config",
	Short: "Inspect and change persisted preferences",
	Subcommands: []*cobra.Command{
		configGetCmd,
		configSetCmd,
		configResetCmd,
	},
}.Build()

var configGetCmd = LeafCommand{
	Use:   "get [key]",
	Short: "Print one preference, or all of them",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigGet,
}.Build()

var configSetCmd = LeafCommand{
	Use:   "set <key> <value>",
	Short: "Change one preference",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}.Build()

var configResetCmd = LeafCommand{
	Use:   "reset",
	Short: "Restore the default preferences",
	Args:  cobra.NoArgs,
	RunE:  runConfigReset,
}.Build()

func runConfigGet(cmd *cobra.Command, args []string) error {
	s := loadSettings()
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		fmt.Fprintf(out, "language: %s\n", s.Language)
		fmt.Fprintf(out, "week_start: %d\n", s.WeekStart)
		fmt.Fprintf(out, "use_geez: %t\n", s.UseGeez)
		fmt.Fprintf(out, "mode: %s\n", s.Mode)
		return nil
	}

	switch args[0] {
	case "language":
		fmt.Fprintln(out, s.Language)
	case "week_start":
		fmt.Fprintln(out, s.WeekStart)
	case "use_geez":
		fmt.Fprintln(out, s.UseGeez)
	case "mode":
		fmt.Fprintln(out, s.Mode)
	default:
		return fmt.Errorf("unknown setting %q", args[0])
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	s := loadSettings()
	switch key {
	case "language":
		s.Language = value
	case "week_start":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("week_start must be a number: %w", err)
		}
		s.WeekStart = n
	case "use_geez":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("use_geez must be true or false: %w", err)
		}
		s.UseGeez = b
	case "mode":
		s.Mode = value
	default:
		return fmt.Errorf("unknown setting %q", key)
	}

	dir, err := settings.Dir()
	if err != nil {
		return err
	}
	if err := settings.Save(dir, s); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", key, value)
	return nil
}

func runConfigReset(cmd *cobra.Command, args []string) error {
	dir, err := settings.Dir()
	if err != nil {
		return err
	}
	if err := settings.Save(dir, settings.Default()); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "preferences reset to defaults")
	return nil
}
