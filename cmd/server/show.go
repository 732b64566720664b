package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/maxviazov/fundtable/internal/service"
	"github.com/maxviazov/fundtable/internal/table"
)

func showCmd() *cobra.Command {
	var (
		page     int
		pageSize int
		wait     time.Duration
	)
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Load the records once and print one page to stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.tables.Close()

			ctx := cmd.Context()
			if wait > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, wait)
				defer cancel()
			}

			v, err := a.tables.Mount(ctx)
			if err != nil {
				return err
			}
			if v, err = a.tables.Await(ctx, v.ID); err != nil {
				return err
			}
			if cmd.Flags().Changed("page-size") {
				if v, err = a.tables.SetPageSize(ctx, v.ID, pageSize); err != nil {
					return withFieldErrors(err)
				}
			}
			if v, err = a.tables.GoToPage(ctx, v.ID, page); err != nil {
				return withFieldErrors(err)
			}
			return printView(cmd.OutOrStdout(), v)
		},
	}
	cmd.Flags().IntVarP(&page, "page", "p", 1, "page to print")
	cmd.Flags().IntVarP(&pageSize, "page-size", "n", 5, "rows per page (5, 10, 15 or 25)")
	cmd.Flags().DurationVar(&wait, "wait", 30*time.Second, "give up if the records have not loaded in time (0 waits forever)")
	return cmd
}

// withFieldErrors appends the per-field messages of a validation failure to err.
func withFieldErrors(err error) error {
	fe := service.FieldErrors(err)
	if len(fe) == 0 {
		return err
	}
	msgs := make([]string, 0, len(fe))
	for _, f := range fe {
		msgs = append(msgs, f.Field+": "+f.Message)
	}
	return fmt.Errorf("%w: %s", err, strings.Join(msgs, "; "))
}

// printView writes the same four views the HTML page shows, as aligned plain text.
func printView(w io.Writer, v table.View) error {
	fmt.Fprintln(w, v.Title)
	if v.Kind != table.KindTable {
		_, err := fmt.Fprintln(w, v.Message)
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(v.Columns, "\t"))
	for _, r := range v.Rows {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", r.Ordinal, r.Percentage, r.Amount)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "« Prev  [page %d of %d, %d per page]  Next »\n", v.CurrentPage, v.TotalPages, v.PageSize)
	return err
}
