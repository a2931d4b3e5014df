package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/AntonioJCosta/aliaser/internal/core/ports"
	"github.com/AntonioJCosta/aliaser/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewExportCommand creates the 'export' subcommand.
func NewExportCommand(
	managementService ports.AliasManagementService,
	detector ports.ShellDetector,
	resolver ports.ConfigPathResolver,
) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all managed aliases to a file.",
		Long: `Writes every managed alias to a file as 'name=command' lines, one per
line. The file is overwritten if it already exists.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExportCmd(cmd, args, managementService, detector, resolver)
		},
	}

	cmd.Flags().StringP("output", "o", "aliases.txt", "File to write the exported aliases to.")

	return cmd
}

func runExportCmd(
	cmd *cobra.Command,
	_ []string,
	managementService ports.AliasManagementService,
	detector ports.ShellDetector,
	resolver ports.ConfigPathResolver,
) error {
	outPath, _ := cmd.Flags().GetString("output")

	t, err := resolveTarget(cmd, detector, resolver)
	if err != nil {
		return err
	}

	aliases, err := managementService.ListAliases(t.path, t.kind)
	if err != nil {
		return err
	}

	var sb strings.Builder
	for _, a := range aliases {
		sb.WriteString(a.Name)
		sb.WriteString("=")
		sb.WriteString(a.Command)
		sb.WriteString("\n")
	}
	if err := os.WriteFile(outPath, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("failed to write export file %s: %w", outPath, err)
	}

	abs, err := filepath.Abs(outPath)
	if err != nil {
		abs = outPath
	}
	fmt.Println(ui.SuccessColor(fmt.Sprintf("Exported %d alias(es) to '%s'", len(aliases), abs)))
	return nil
}
