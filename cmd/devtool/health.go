package main

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

type HealthCheckCommand struct{}

func (c *HealthCheckCommand) Name() string {
	return "health-check"
}

func (c *HealthCheckCommand) Description() string {
	return "Probe a running instance's health and readiness endpoints"
}

func (c *HealthCheckCommand) Run(args []string) error {
	baseURL := getEnv("HEALTH_URL", "http://localhost:8080")
	if len(args) > 0 {
		baseURL = args[0]
	}

	PrintHeader(fmt.Sprintf("Health Check (%s)", baseURL))

	client := &http.Client{Timeout: 5 * time.Second}

	start := time.Now()
	if err := c.probe(client, baseURL+"/healthz"); err != nil {
		PrintError("Liveness check failed: %v", err)
		return err
	}
	duration := time.Since(start)

	if duration > 1*time.Second {
		PrintWarning("Liveness OK but slow (%v)", duration)
	} else {
		PrintSuccess("Liveness OK (%v)", duration)
	}

	if err := c.probe(client, baseURL+"/readyz"); err != nil {
		PrintWarning("Readiness check failed: %v", err)
		PrintInfo("The instance is up but not serving builds yet (catalog or database not ready)")
		return err
	}
	PrintSuccess("Readiness OK")

	return nil
}

func (c *HealthCheckCommand) probe(client *http.Client, url string) error {
	resp, err := client.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s returned %d: %s", url, resp.StatusCode, string(body))
	}
	return nil
}
