package main

import (
	"booklibrary/internal/config"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "booklibrary",
		Short: "Book catalog API with search, sorting and pagination",
		Long: `booklibrary serves a read-only book catalog over HTTP.

Books can be searched by title or author, sorted by title and paged.
Loans and returns are recorded in an in-memory audit log.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnvFiles()
		},
	}

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newBooksCmd())

	return cmd
}
