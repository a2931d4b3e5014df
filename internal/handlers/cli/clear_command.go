package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/AntonioJCosta/aliaser/internal/core/ports"
	"github.com/AntonioJCosta/aliaser/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewClearCommand creates the 'clear' subcommand.
func NewClearCommand(
	managementService ports.AliasManagementService,
	detector ports.ShellDetector,
	resolver ports.ConfigPathResolver,
	executor ports.CommandExecutor,
) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove all aliases managed by aliaser.",
		Long:  `Removes every alias from the managed section. Asks for confirmation unless --force is passed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClearCmd(cmd, args, managementService, detector, resolver, executor)
		},
	}

	cmd.Flags().BoolP("force", "f", false, "Skip the confirmation prompt.")
	cmd.Flags().BoolP("reload", "r", false, "Reload the shell configuration after writing.")

	return cmd
}

func runClearCmd(
	cmd *cobra.Command,
	_ []string,
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

	aliases, err := managementService.ListAliases(t.path, t.kind)
	if err != nil {
		return err
	}
	if len(aliases) == 0 {
		fmt.Println(ui.InfoColor("No aliases found to remove."))
		return nil
	}

	if !force {
		confirmed, err := confirmClear(len(aliases))
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Println(ui.InfoColor("Operation cancelled."))
			return nil
		}
	}

	removed, err := managementService.ClearAliases(t.path, t.kind)
	if err != nil {
		return err
	}

	fmt.Println(ui.SuccessColor(fmt.Sprintf("Removed %d alias(es).", removed)))
	reloadOrHint(executor, t, reload)
	return nil
}

func confirmClear(count int) (bool, error) {
	fmt.Print(ui.PromptColor(fmt.Sprintf("Are you sure you want to remove all %d alias(es)? [y/N]: ", count)))
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}
	answer := strings.ToLower(strings.TrimSpace(input))
	return answer == "y" || answer == "yes", nil
}
