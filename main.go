// Package main is the entry point for the usdrefactor CLI.
package main

import "usdrefactor.dev/pkg/usdrefactor/cmd"

func main() {
	cmd.Execute()
}
