package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"syscall"
	"time"
)

const (
	migrateAttempts   = 3
	migrateRetryDelay = 5 * time.Second
)

type EntrypointCommand struct{}

func (c *EntrypointCommand) Name() string {
	return "entrypoint"
}

func (c *EntrypointCommand) Description() string {
	return "Container entrypoint (wait-for-db, backup, migrate, exec)"
}

func (c *EntrypointCommand) Run(args []string) error {
	// In compose the database service is called "db"
	if os.Getenv("DB_HOST") == "" {
		_ = os.Setenv("DB_HOST", "db")
	}

	waitCmd := &WaitForDBCommand{}
	if err := waitCmd.Run(nil); err != nil {
		return fmt.Errorf("wait-for-db failed: %w", err)
	}

	c.backupIfRequested()

	if err := c.migrateWithRetries(); err != nil {
		return err
	}

	return c.execApp(args)
}

// backupRequested reports whether a pre-migration dump should be taken.
// Production always backs up; elsewhere CREATE_BACKUP opts in.
func backupRequested() bool {
	return os.Getenv("ENVIRONMENT") == envProduction || os.Getenv("CREATE_BACKUP") == "true"
}

func (c *EntrypointCommand) backupIfRequested() {
	if !backupRequested() {
		return
	}

	PrintHeader("Creating pre-migration backup...")

	if _, err := exec.LookPath("pg_dump"); err != nil {
		PrintWarning("pg_dump not found, skipping backup")
		return
	}

	stamp := time.Now().Format("20060102_150405")
	backupFile := filepath.Join(os.TempDir(), "backup_"+stamp+".sql")

	f, err := os.Create(backupFile)
	if err != nil {
		PrintWarning("Could not create backup file: %v", err)
		return
	}
	defer f.Close()

	dump := exec.Command("pg_dump",
		"-h", getEnv("DB_HOST", "db"),
		"-U", getEnv("DB_USER", "postgres"),
		"-d", getEnv("DB_NAME", "wynnforge"))
	dump.Stdout = f
	dump.Stderr = os.Stderr

	// A failed backup is a warning, not a reason to hold up the deploy
	if err := dump.Run(); err != nil {
		PrintWarning("Backup failed: %v", err)
		return
	}
	PrintSuccess("Backup created: %s", backupFile)
}

func (c *EntrypointCommand) migrateWithRetries() error {
	PrintHeader("Running migrations...")
	migrateCmd := &MigrateCommand{}

	var err error
	for attempt := 1; attempt <= migrateAttempts; attempt++ {
		err = migrateCmd.Run([]string{"up"})
		if err == nil {
			PrintSuccess("Migrations completed successfully")
			return nil
		}
		PrintWarning("Migration attempt %d failed: %v", attempt, err)
		if attempt < migrateAttempts {
			PrintInfo("Retrying in %s...", migrateRetryDelay)
			time.Sleep(migrateRetryDelay)
		}
	}
	return fmt.Errorf("migrations failed after %d attempts: %w", migrateAttempts, err)
}

func (c *EntrypointCommand) execApp(args []string) error {
	execArgs := args
	if len(execArgs) > 0 && execArgs[0] == "--" {
		execArgs = execArgs[1:]
	}
	if len(execArgs) == 0 {
		execArgs = []string{"/app/" + appName}
	}

	PrintHeader("Starting application...")
	cmdPath, err := exec.LookPath(execArgs[0])
	if err != nil {
		return fmt.Errorf("executable not found: %w", err)
	}

	// Replaces the current process, so on success this never returns
	if err := syscall.Exec(cmdPath, execArgs, os.Environ()); err != nil {
		return fmt.Errorf("exec failed: %w", err)
	}
	return nil
}
