package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	// Load environment variables from .env file if available
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "intentsyncd",
		Short: "Cross-chain intent mirror and sync engine",
	}
	InitRootCmd(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(rootCmd.OutOrStderr(), err)
		os.Exit(1)
	}
}
