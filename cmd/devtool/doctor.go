package main

import (
	"fmt"
	"strings"

	"github.com/wynnforge/wynnforge/internal/config"
)

type DoctorCommand struct{}

func (c *DoctorCommand) Name() string {
	return "doctor"
}

func (c *DoctorCommand) Description() string {
	return "Diagnose environment issues (env + deps + db)"
}

func (c *DoctorCommand) Run(args []string) error {
	PrintHeader("Running Doctor...")

	hasError := false

	if err := config.CheckEnvSchema(); err != nil {
		PrintError("Environment check failed: %v", err)
		hasError = true
	} else if missing := config.MissingEnv(config.ServerEnvVars); len(missing) > 0 {
		PrintWarning("Missing for the API server: %s", strings.Join(missing, ", "))
	} else {
		PrintSuccess("Environment OK")
	}
	for _, warning := range config.EnvWarnings() {
		PrintWarning("%s", warning)
	}

	depsCmd := &CheckDepsCommand{}
	if err := depsCmd.Run(nil); err != nil {
		PrintError("Dependencies check failed: %v", err)
		hasError = true
	} else {
		PrintSuccess("Dependencies OK")
	}

	dbCmd := &CheckDBCommand{}
	if err := dbCmd.Run(nil); err != nil {
		PrintError("Database check failed: %v", err)
		hasError = true
	} else {
		PrintSuccess("Database OK")
	}

	if hasError {
		return fmt.Errorf("doctor found issues")
	}

	PrintSuccess("All systems operational!")
	return nil
}
