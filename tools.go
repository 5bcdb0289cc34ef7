//go:build tools

package tools

// This file tracks CLI tool dependencies alongside the go.mod tool block.
// It is not compiled into the binary.
//
// Tools in use:
// - github.com/matryer/moq (repository interface mocks)
// - github.com/pressly/goose/v3/cmd/goose (database migrations)
