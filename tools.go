//go:build tools

// Package tools pins the swag generator used to rebuild docs/ so that
// `go run github.com/swaggo/swag/cmd/swag init -g cmd/app/main.go` resolves
// against go.mod.
package tools

import (
	_ "github.com/swaggo/swag/cmd/swag"
)
