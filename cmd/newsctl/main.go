// ABOUTME: Main entry point for the newsctl command-line client
// ABOUTME: Browses the news feed and manages favorites from the terminal

package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
