package cli

import (
	"fmt"

	"github.com/AntonioJCosta/aliaser/internal/core/ports"
	"github.com/AntonioJCosta/aliaser/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewDeleteCommand creates the 'delete' subcommand.
func NewDeleteCommand(
	managementService ports.AliasManagementService,
	detector ports.ShellDetector,
	resolver ports.ConfigPathResolver,
	executor ports.CommandExecutor,
) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <alias>",
		Short: "Delete an existing alias from your shell configuration file.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeleteCmd(cmd, args, managementService, detector, resolver, executor)
		},
	}

	cmd.Flags().BoolP("reload", "r", false, "Reload the shell configuration after writing.")

	return cmd
}

func runDeleteCmd(
	cmd *cobra.Command,
	args []string,
	managementService ports.AliasManagementService,
	detector ports.ShellDetector,
	resolver ports.ConfigPathResolver,
	executor ports.CommandExecutor,
) error {
	reload, _ := cmd.Flags().GetBool("reload")

	t, err := resolveTarget(cmd, detector, resolver)
	if err != nil {
		return err
	}

	if err := managementService.DeleteAlias(t.path, t.kind, args[0]); err != nil {
		return err
	}

	fmt.Println(ui.SuccessColor(fmt.Sprintf("Alias '%s' deleted.", ui.AliasNameColor(args[0]))))
	reloadOrHint(executor, t, reload)
	return nil
}
