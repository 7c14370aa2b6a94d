// Devtool is the development helper for the wynnforge repo. It wraps the
// recurring chores of local development (database lifecycle, migrations,
// catalog seeding, health probes) behind one binary so contributors do not
// need a pile of shell scripts.
//
// Usage:
//
//	go run ./cmd/devtool <command> [args...]
package main

import (
	"fmt"
	"os"
)

func buildRegistry() *Registry {
	registry := NewRegistry()
	registry.Register(&CheckDepsCommand{})
	registry.Register(&CheckDBCommand{})
	registry.Register(&CheckCoverageCommand{})
	registry.Register(&WaitForDBCommand{})
	registry.Register(&MigrateCommand{})
	registry.Register(&SeedCommand{})
	registry.Register(&HealthCheckCommand{})
	registry.Register(&DoctorCommand{})
	registry.Register(&EntrypointCommand{})
	return registry
}

func main() {
	registry := buildRegistry()

	if len(os.Args) < 2 {
		registry.PrintHelp()
		os.Exit(1)
	}

	name := os.Args[1]
	if name == "help" || name == "-h" || name == "--help" {
		registry.PrintHelp()
		return
	}

	cmd, ok := registry.Get(name)
	if !ok {
		fmt.Printf("Unknown command: %s\n\n", name)
		registry.PrintHelp()
		os.Exit(1)
	}

	if err := cmd.Run(os.Args[2:]); err != nil {
		PrintError("%v", err)
		os.Exit(1)
	}
}
