// Package main is the entry point for the semaudit CLI.
package main

import "semaudit.dev/pkg/semaudit/cmd"

func main() {
	cmd.Execute()
}
