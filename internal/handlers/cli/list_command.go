package cli

import (
	"fmt"
	"os"

	"github.com/AntonioJCosta/aliaser/internal/core/ports"
	"github.com/AntonioJCosta/aliaser/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewListCommand creates the 'list' subcommand.
func NewListCommand(
	managementService ports.AliasManagementService,
	detector ports.ShellDetector,
	resolver ports.ConfigPathResolver,
) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all aliases managed by aliaser.",
		Long:  `Displays the aliases found in the managed section of your shell configuration file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runListCmd(cmd, args, managementService, detector, resolver)
		},
	}
	return cmd
}

// runListCmd contains the core logic for the 'list' command.
func runListCmd(
	cmd *cobra.Command,
	_ []string,
	managementService ports.AliasManagementService,
	detector ports.ShellDetector,
	resolver ports.ConfigPathResolver,
) error {
	t, err := resolveTarget(cmd, detector, resolver)
	if err != nil {
		return err
	}

	aliases, err := managementService.ListAliases(t.path, t.kind)
	if err != nil {
		return fmt.Errorf("could not list aliases: %w", err)
	}

	if len(aliases) == 0 {
		fmt.Println(ui.InfoColor("No aliases found. Add some with 'aliaser create'."))
		return nil
	}

	fmt.Println(ui.HeaderColor(fmt.Sprintf("Aliases managed by aliaser in %s:", t.path)))

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Alias", "Command"})
	table.SetBorder(true)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, a := range aliases {
		table.Append([]string{a.Name, a.Command})
	}
	table.Render()
	return nil
}
