package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "stock-genius",
	Short: "Stock analysis API scoring tickers with a magic formula heuristic",
}

func init() {
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(analyzeCmd)
}

func Execute() error {
	return rootCmd.Execute()
}
