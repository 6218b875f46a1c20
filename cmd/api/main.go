package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const serviceName = "engineers-planet-site"

var rootCmd = &cobra.Command{
	Use:   "site",
	Short: "Engineers Planet landing page and lead intake",
	Long: `Serves the Engineers Planet landing page and turns its company inquiry,
engineer application and project submission forms into backend records.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
