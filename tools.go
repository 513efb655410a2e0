//go:build tools
// +build tools

// Package tools pins the mockgen version used by go:generate so that
// go.mod tracks it.
package campus_hub

import (
	_ "go.uber.org/mock/mockgen"
)
