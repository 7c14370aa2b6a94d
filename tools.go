//go:build tools
// +build tools

package tools

// Pins build and development tooling in go.mod so every checkout runs
// the same versions. Nothing here is imported by the application.
import (
	_ "github.com/golangci/golangci-lint/cmd/golangci-lint" // lint
	_ "github.com/pressly/goose/v3/cmd/goose"               // snapshot schema migrations
	_ "github.com/swaggo/swag/cmd/swag"                     // regenerate API docs
	_ "github.com/vektra/mockery/v2"                        // interface mocks for tests
	_ "golang.org/x/perf/cmd/benchstat"                     // compare engine benchmark runs
)
