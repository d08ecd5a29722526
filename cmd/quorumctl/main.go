package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	serverAddr string
	timeout    int
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "quorumctl",
		Short: "quorumctl - quorumdb cluster administration CLI",
		Long:  `quorumctl inspects and exercises a quorumdb cluster over its client API`,
	}

	rootCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:9100", "Node client address")
	rootCmd.PersistentFlags().IntVar(&timeout, "timeout", 10, "Request timeout in seconds")

	rootCmd.AddCommand(statusCmd())
	rootCmd.AddCommand(writeCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
