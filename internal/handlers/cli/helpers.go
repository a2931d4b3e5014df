package cli

import (
	"fmt"
	"os"

	"github.com/AntonioJCosta/aliaser/internal/core/domain/dialect"
	"github.com/AntonioJCosta/aliaser/internal/core/ports"
	"github.com/AntonioJCosta/aliaser/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// target is the resolved config file and dialect a command operates on.
type target struct {
	path string
	kind dialect.Kind
}

// resolveTarget combines the --shell and --file overrides with shell
// detection and path resolution. An undetectable shell is an error unless
// --shell is given.
func resolveTarget(
	cmd *cobra.Command,
	detector ports.ShellDetector,
	resolver ports.ConfigPathResolver,
) (target, error) {
	shellFlag, _ := cmd.Flags().GetString("shell")
	fileFlag, _ := cmd.Flags().GetString("file")

	var kind dialect.Kind
	var err error
	if shellFlag != "" {
		kind, err = dialect.Parse(shellFlag)
		if err != nil {
			return target{}, err
		}
	} else {
		if detector == nil {
			return target{}, fmt.Errorf("no shell detector available; pass --shell")
		}
		kind, err = detector.Detect()
		if err != nil {
			return target{}, fmt.Errorf("%w (pass --shell to override)", err)
		}
	}

	path := fileFlag
	if path == "" {
		if resolver == nil {
			return target{}, fmt.Errorf("no config path resolver available; pass --file")
		}
		path, err = resolver.Resolve(kind)
		if err != nil {
			return target{}, err
		}
	}
	return target{path: path, kind: kind}, nil
}

// reloadOrHint sources the config file through the user's shell when reload
// is set, and otherwise prints the command the user can run themselves.
// Sourcing happens in a child process, so a failure is only a warning.
func reloadOrHint(executor ports.CommandExecutor, t target, reload bool) {
	if !reload || executor == nil {
		fmt.Println(ui.InfoColor(fmt.Sprintf("Reload your shell configuration with: source %s", t.path)))
		return
	}
	if _, _, err := executor.Execute(t.kind.String(), fmt.Sprintf("source %s", t.path)); err != nil {
		fmt.Fprintln(os.Stderr, ui.WarningColor(fmt.Sprintf("Could not reload shell configuration: %v", err)))
	}
}
