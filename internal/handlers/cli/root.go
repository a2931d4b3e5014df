package cli

import (
	"fmt"

	"github.com/AntonioJCosta/aliaser/internal/core/ports"
	"github.com/spf13/cobra"
)

var rootCmd *cobra.Command

func NewRootCommand(
	version string,
	managementService ports.AliasManagementService,
	detector ports.ShellDetector,
	resolver ports.ConfigPathResolver,
	executor ports.CommandExecutor,
) *cobra.Command {
	rootCmd = &cobra.Command{
		Use:   "aliaser",
		Short: "aliaser creates and manages shell aliases in a structured way.",
		Long: `aliaser keeps your aliases in a clearly marked section of your shell
configuration file (.zshrc, .bashrc, or config.fish) and edits only that
section, leaving the rest of the file untouched.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if managementService == nil {
				return fmt.Errorf("alias management service not initialized for command %s", cmd.Name())
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().String("file", "", "Config file to edit (default: detected from your shell).")
	rootCmd.PersistentFlags().String("shell", "", "Shell dialect to use: zsh, bash, or fish (default: detected from $SHELL).")

	rootCmd.AddCommand(NewCreateCommand(managementService, detector, resolver, executor))
	rootCmd.AddCommand(NewListCommand(managementService, detector, resolver))
	rootCmd.AddCommand(NewUpdateCommand(managementService, detector, resolver, executor))
	rootCmd.AddCommand(NewDeleteCommand(managementService, detector, resolver, executor))
	rootCmd.AddCommand(NewClearCommand(managementService, detector, resolver, executor))
	rootCmd.AddCommand(NewExportCommand(managementService, detector, resolver))
	rootCmd.AddCommand(NewImportCommand(managementService, detector, resolver))
	rootCmd.AddCommand(NewSourceCommand(detector, resolver, executor))

	return rootCmd
}
