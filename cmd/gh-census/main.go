// Package main is the gh-census entry point.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gh-census",
	Short: "GitHub user and repository census",
	Long: "gh-census searches GitHub for users matching a location and follower\n" +
		"filter, enriches each hit with its profile and repositories, and writes\n" +
		"users.csv and repositories.csv.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
