package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/AntonioJCosta/aliaser/internal/adapters/configpath"
	"github.com/AntonioJCosta/aliaser/internal/adapters/oscommand"
	"github.com/AntonioJCosta/aliaser/internal/adapters/reservednames"
	"github.com/AntonioJCosta/aliaser/internal/adapters/shelldetection"
	"github.com/AntonioJCosta/aliaser/internal/core/services/aliasmanagement"
	"github.com/AntonioJCosta/aliaser/internal/handlers/cli"
	"github.com/AntonioJCosta/aliaser/internal/repositories/configfile"
)

// Version is set at build time
var Version = "dev"

func main() {
	detector := shelldetection.NewEnvDetector()
	executor := oscommand.NewOSCommandExecutor()

	resolver, err := configpath.NewHomeResolver()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config path resolver: %v\n", err)
		os.Exit(int(cli.ExitIO))
	}

	// reservedProvider can be nil if NewYAMLProvider returns an error; the
	// service falls back to no denylist then.
	reservedProvider, err := reservednames.NewYAMLProvider(denylistPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not initialize reserved name provider: %v. Continuing with the built-in defaults disabled.\n", err)
		reservedProvider = nil
	}

	editor := configfile.NewEditor()
	managementSvc := aliasmanagement.NewService(editor, reservedProvider)
	rootCmd := cli.NewRootCommand(Version, managementSvc, detector, resolver, executor)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(int(cli.MapExitCode(err)))
	}
}

// denylistPath is the optional user override for the reserved alias names.
func denylistPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "reserved.yaml"
	}
	return filepath.Join(configDir, "aliaser", "reserved.yaml")
}
