// Package main provides the entry point for the resume optimizer CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_optimizer",
	Short: "Resume keyword optimizer",
	Long:  "Resume optimizer extracts the most relevant keywords from a job description and weaves the missing ones into a resume, section by section, without distorting its meaning.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
