//go:build tools

// Package main tracks tool dependencies invoked through go generate so that
// go.mod and go.sum stay in sync with them.
package main

import (
	_ "go.uber.org/mock/mockgen"
)
