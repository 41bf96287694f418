package main

import (
	"net/url"
	"strconv"

	"booklibrary/internal/book"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
)

func newBooksCmd() *cobra.Command {
	var (
		dataset string
		search  string
		sort    string
	)

	cmd := &cobra.Command{
		Use:   "books",
		Short: "Query the catalog without starting the server",
		Example: `  # First five Tolkien titles in title order
  booklibrary books --search tolkien --sort asc --page 1 --limit 5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			values := url.Values{}
			values.Set("search", search)
			values.Set("sort", sort)
			if f := cmd.Flags().Lookup("page"); f.Changed {
				values.Set("page", f.Value.String())
			}
			if f := cmd.Flags().Lookup("limit"); f.Changed {
				values.Set("limit", f.Value.String())
			}

			opts, err := book.ParseQuery(values)
			if err != nil {
				return err
			}

			books, err := book.LoadBooks(dataset)
			if err != nil {
				return err
			}
			repo, err := book.NewMemoryRepo(books)
			if err != nil {
				return err
			}

			page, err := book.NewService(repo).List(cmd.Context(), opts)
			if err != nil {
				return err
			}

			enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(page)
		},
	}

	cmd.Flags().StringVar(&dataset, "dataset", "", "Path to a books.json dataset (defaults to the embedded catalog)")
	cmd.Flags().StringVarP(&search, "search", "s", "", "Case-insensitive match on title or author")
	cmd.Flags().StringVar(&sort, "sort", string(book.DefaultSort), "Title order: asc or desc")
	cmd.Flags().String("page", strconv.Itoa(book.DefaultPage), "Page number")
	cmd.Flags().String("limit", strconv.Itoa(book.DefaultLimit), "Books per page")

	return cmd
}
