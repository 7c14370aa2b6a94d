package main

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

const (
	colorGreen  = "\033[0;32m"
	colorRed    = "\033[0;31m"
	colorYellow = "\033[1;33m"
	colorBlue   = "\033[0;34m"
	colorReset  = "\033[0m"
)

// UI helpers

func printTagged(color, tag, format string, a ...interface{}) {
	fmt.Printf(color+tag+" "+format+colorReset+"\n", a...)
}

func PrintInfo(format string, a ...interface{}) {
	printTagged(colorBlue, "ℹ", format, a...)
}

func PrintSuccess(format string, a ...interface{}) {
	printTagged(colorGreen, "✓", format, a...)
}

func PrintWarning(format string, a ...interface{}) {
	printTagged(colorYellow, "⚠", format, a...)
}

func PrintError(format string, a ...interface{}) {
	printTagged(colorRed, "✗", format, a...)
}

func PrintHeader(title string) {
	fmt.Printf("\n"+colorYellow+"=== %s ==="+colorReset+"\n", title)
}

// Command execution helpers

// hostilePatterns are substrings never expected in legitimate arguments.
// Connection strings and file paths pass through untouched; shell
// metacharacters do not. Order matters: "||" must match before "|".
var hostilePatterns = []struct {
	substr string
	label  string
}{
	{"\n", "newline"},
	{"\r", "carriage return"},
	{"\x00", "null byte"},
	{"$(", "command substitution"},
	{"`", "command substitution"},
	{"&&", "command chaining"},
	{"||", "command chaining"},
	{"|", "pipe"},
	{">", "redirection"},
	{"<", "redirection"},
}

func checkHostile(inputs ...string) error {
	for _, s := range inputs {
		for _, p := range hostilePatterns {
			if strings.Contains(s, p.substr) {
				return fmt.Errorf("hostile input detected: %s in %q", p.label, s)
			}
		}
	}
	return nil
}

// command builds an exec.Cmd after screening every argument
func command(name string, args ...string) (*exec.Cmd, error) {
	if err := checkHostile(append([]string{name}, args...)...); err != nil {
		return nil, err
	}
	// #nosec G204 - Generic command wrapper
	return exec.Command(name, args...), nil
}

// getCommandOutput captures trimmed stdout
func getCommandOutput(name string, args ...string) (string, error) {
	cmd, err := command(name, args...)
	if err != nil {
		return "", err
	}
	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// runCommand runs silently, discarding output
func runCommand(name string, args ...string) error {
	cmd, err := command(name, args...)
	if err != nil {
		return err
	}
	return cmd.Run()
}

// runCommandVerbose streams output to the terminal
func runCommandVerbose(name string, args ...string) error {
	cmd, err := command(name, args...)
	if err != nil {
		return err
	}
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
