package cli

import (
	"fmt"

	"github.com/AntonioJCosta/aliaser/internal/core/ports"
	"github.com/AntonioJCosta/aliaser/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewCreateCommand creates the 'create' subcommand.
func NewCreateCommand(
	managementService ports.AliasManagementService,
	detector ports.ShellDetector,
	resolver ports.ConfigPathResolver,
	executor ports.CommandExecutor,
) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <alias> <command>",
		Short: "Create a new alias in your shell configuration file.",
		Long: `Adds an alias to the section managed by aliaser. An existing alias with
the same name is an error unless --force is passed.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreateCmd(cmd, args, managementService, detector, resolver, executor)
		},
	}

	cmd.Flags().BoolP("force", "f", false, "Overwrite an existing alias with the same name.")
	cmd.Flags().BoolP("reload", "r", true, "Reload the shell configuration after writing.")

	return cmd
}

func runCreateCmd(
	cmd *cobra.Command,
	args []string,
	managementService ports.AliasManagementService,
	detector ports.ShellDetector,
	resolver ports.ConfigPathResolver,
	executor ports.CommandExecutor,
) error {
	force, _ := cmd.Flags().GetBool("force")
	reload, _ := cmd.Flags().GetBool("reload")

	t, err := resolveTarget(cmd, detector, resolver)
	if err != nil {
		return err
	}

	entry, err := managementService.CreateAlias(t.path, t.kind, args[0], args[1], force)
	if err != nil {
		return err
	}

	fmt.Println(ui.SuccessColor(fmt.Sprintf("Alias '%s' created for command '%s'",
		ui.AliasNameColor(entry.Name), ui.AliasCmdColor(entry.Command))))
	reloadOrHint(executor, t, reload)
	return nil
}
