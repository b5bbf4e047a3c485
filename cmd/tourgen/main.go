package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tourgen",
	Short: "Tour planning service backed by GigaChat",
	Long:  `tourgen serves the tour-planning API: catalog browsing and AI-generated itineraries.`,
}

func init() {
	rootCmd.AddCommand(serverCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
