package cli

import (
	"fmt"

	"github.com/AntonioJCosta/aliaser/internal/core/ports"
	"github.com/AntonioJCosta/aliaser/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewSourceCommand creates the 'source' subcommand.
func NewSourceCommand(
	detector ports.ShellDetector,
	resolver ports.ConfigPathResolver,
	executor ports.CommandExecutor,
) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "source",
		Short: "Reload your shell configuration file.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSourceCmd(cmd, args, detector, resolver, executor)
		},
	}
	return cmd
}

func runSourceCmd(
	cmd *cobra.Command,
	_ []string,
	detector ports.ShellDetector,
	resolver ports.ConfigPathResolver,
	executor ports.CommandExecutor,
) error {
	t, err := resolveTarget(cmd, detector, resolver)
	if err != nil {
		return err
	}
	if executor == nil {
		return fmt.Errorf("command executor not initialized for command %s", cmd.Name())
	}

	if _, _, err := executor.Execute(t.kind.String(), fmt.Sprintf("source %s", t.path)); err != nil {
		return fmt.Errorf("failed to reload shell configuration: %w", err)
	}
	fmt.Println(ui.SuccessColor(fmt.Sprintf("Reloaded %s", t.path)))
	return nil
}
