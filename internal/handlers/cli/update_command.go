package cli

import (
	"fmt"

	"github.com/AntonioJCosta/aliaser/internal/core/ports"
	"github.com/AntonioJCosta/aliaser/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewUpdateCommand creates the 'update' subcommand.
func NewUpdateCommand(
	managementService ports.AliasManagementService,
	detector ports.ShellDetector,
	resolver ports.ConfigPathResolver,
	executor ports.CommandExecutor,
) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <alias> <command>",
		Short: "Update an existing alias with a new command.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpdateCmd(cmd, args, managementService, detector, resolver, executor)
		},
	}

	cmd.Flags().BoolP("reload", "r", false, "Reload the shell configuration after writing.")

	return cmd
}

func runUpdateCmd(
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

	entry, err := managementService.UpdateAlias(t.path, t.kind, args[0], args[1])
	if err != nil {
		return err
	}

	fmt.Println(ui.SuccessColor(fmt.Sprintf("Alias '%s' updated to '%s'",
		ui.AliasNameColor(entry.Name), ui.AliasCmdColor(entry.Command))))
	reloadOrHint(executor, t, reload)
	return nil
}
