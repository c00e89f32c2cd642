//go:build tools

// Package tools pins the versions of development tooling invoked through go:generate and lint.
package tools

import (
	_ "golang.org/x/lint/golint"
	_ "golang.org/x/tools/cmd/stringer"
)
