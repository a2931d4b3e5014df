package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/AntonioJCosta/aliaser/internal/core/domain/alias"
	"github.com/AntonioJCosta/aliaser/internal/core/ports"
	"github.com/AntonioJCosta/aliaser/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewImportCommand creates the 'import' subcommand.
func NewImportCommand(
	managementService ports.AliasManagementService,
	detector ports.ShellDetector,
	resolver ports.ConfigPathResolver,
) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <path>",
		Short: "Import aliases from a file.",
		Long: `Reads 'name=command' lines from the given file and adds each alias to
the managed section. Existing aliases are skipped unless --force is passed.
Blank lines and lines without '=' are ignored.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImportCmd(cmd, args, managementService, detector, resolver)
		},
	}

	cmd.Flags().BoolP("force", "f", false, "Overwrite existing aliases.")

	return cmd
}

func runImportCmd(
	cmd *cobra.Command,
	args []string,
	managementService ports.AliasManagementService,
	detector ports.ShellDetector,
	resolver ports.ConfigPathResolver,
) error {
	force, _ := cmd.Flags().GetBool("force")

	t, err := resolveTarget(cmd, detector, resolver)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read import file %s: %w", args[0], err)
	}

	imported := 0
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || !strings.Contains(line, "=") {
			continue
		}
		name, command, _ := strings.Cut(line, "=")
		name = strings.TrimSpace(name)
		command = strings.TrimSpace(command)

		entry, err := managementService.CreateAlias(t.path, t.kind, name, command, force)
		if err != nil {
			if errors.Is(err, alias.ErrDuplicate) {
				fmt.Println(ui.WarningColor(fmt.Sprintf("Alias '%s' already exists - skipping.", name)))
				continue
			}
			fmt.Fprintln(os.Stderr, ui.ErrorColor(fmt.Sprintf("Failed to import alias '%s': %v", name, err)))
			continue
		}
		fmt.Println(ui.SuccessColor(fmt.Sprintf("Alias '%s' (%s) imported successfully.",
			ui.AliasNameColor(entry.Name), ui.DetailColor(entry.Command))))
		imported++
	}

	if imported > 0 {
		fmt.Println(ui.SuccessColor(fmt.Sprintf("Successfully imported %d alias(es).", imported)))
	} else {
		fmt.Println(ui.InfoColor("No new aliases were imported."))
	}
	return nil
}
