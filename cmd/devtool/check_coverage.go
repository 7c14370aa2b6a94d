package main

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

const defaultCoverageThreshold = 70.0

type CheckCoverageCommand struct{}

func (c *CheckCoverageCommand) Name() string {
	return "check-coverage"
}

func (c *CheckCoverageCommand) Description() string {
	return "Run tests with coverage and check against threshold"
}

func (c *CheckCoverageCommand) Run(args []string) error {
	fs := flag.NewFlagSet("check-coverage", flag.ContinueOnError)
	runTests := fs.Bool("run", false, "Run tests before checking coverage")
	htmlReport := fs.Bool("html", false, "Generate an HTML coverage report")
	pkgs := fs.String("pkgs", "", "Comma-separated list of packages to test")

	if err := fs.Parse(args); err != nil {
		return err
	}

	threshold := defaultCoverageThreshold
	if t := os.Getenv("COVERAGE_THRESHOLD"); t != "" {
		parsed, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return fmt.Errorf("invalid COVERAGE_THRESHOLD %q: %w", t, err)
		}
		threshold = parsed
	}

	file := "coverage.out"

	PrintHeader(fmt.Sprintf("Checking coverage threshold (%.1f%%)...", threshold))

	packages := splitPackages(*pkgs)
	if err := c.ensureCoverage(file, *runTests, packages); err != nil {
		return err
	}

	coverage, err := c.coveragePercent(file)
	if err != nil {
		return err
	}

	PrintInfo("Total Coverage: %.1f%%", coverage)

	if *htmlReport {
		if err := runCommandVerbose("go", "tool", "cover", "-html="+file, "-o", "coverage.html"); err != nil {
			PrintWarning("Failed to generate HTML report: %v", err)
		} else {
			PrintInfo("HTML report written to coverage.html")
		}
	}

	if coverage < threshold {
		PrintError("Coverage is below threshold.")
		return fmt.Errorf("coverage below threshold")
	}

	PrintSuccess("Coverage meets threshold.")
	return nil
}

func splitPackages(pkgs string) []string {
	var out []string
	for _, p := range strings.Split(pkgs, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ensureCoverage makes sure a coverage profile exists, running the tests
// when asked to or when the profile is missing.
func (c *CheckCoverageCommand) ensureCoverage(file string, runTests bool, packages []string) error {
	if !runTests {
		if _, err := os.Stat(file); err == nil {
			return nil
		}
		PrintInfo("No coverage profile found, running tests...")
	}

	target := []string{"./..."}
	if len(packages) > 0 {
		target = packages
	}

	testArgs := append([]string{"test", "-coverprofile=" + file}, target...)
	if err := runCommandVerbose("go", testArgs...); err != nil {
		return fmt.Errorf("tests failed: %w", err)
	}
	return nil
}

// coveragePercent parses the total from `go tool cover -func`.
func (c *CheckCoverageCommand) coveragePercent(file string) (float64, error) {
	// #nosec G204 - file is a fixed name
	out, err := exec.Command("go", "tool", "cover", "-func="+file).Output()
	if err != nil {
		return 0, fmt.Errorf("failed to read coverage profile: %w", err)
	}

	// Last line: total:  (statements)  82.4%
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if !strings.HasPrefix(lines[i], "total:") {
			continue
		}
		fields := strings.Fields(lines[i])
		pct := strings.TrimSuffix(fields[len(fields)-1], "%")
		return strconv.ParseFloat(pct, 64)
	}

	return 0, fmt.Errorf("no total line in coverage output")
}
