package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is overridden at build time with -ldflags "-X cinema-ticketing/cmd.Version=..."
var Version = "dev"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of cinema-ticketing",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "cinema-ticketing %s\n", Version)
		},
	}
}

// newRootCmd builds a fresh command tree on every call.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cinema-ticketing",
		Short: "Cinema venue, schedule and seat booking service",
		Long: `cinema-ticketing keeps venues, halls, sessions and seat reservations in memory
and serves them over an HTTP/JSON API. Running it without a subcommand starts the server.`,
		SilenceUsage: true,
		RunE:         runServe,
	}

	rootCmd.AddCommand(newServeCmd(), newVersionCmd())
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "path to the .env config file")
	return rootCmd
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
