package main

import (
	"fmt"

	"github.com/sandevgo/reachout/internal/service/ui"
	"github.com/spf13/cobra"
)

var searchFlags struct {
	company     string
	designation string
}

var searchCmd = &cobra.Command{
	Use:   "search <name>",
	Short: "Show the recent content found for a person",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		rs, err := a.svc.SearchContent(ctx, person(args, searchFlags.company, searchFlags.designation))
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		if rs.Empty() {
			fmt.Fprintln(w, "Nothing found. Use generate --title --snippet to provide content.")
		}
		for i, it := range rs.Items {
			fmt.Fprintf(w, "%s %s\n", ui.HeaderStyle.Render(fmt.Sprintf("%d.", i+1)), it.Title)
			fmt.Fprintln(w, ui.DescStyle.Render(fmt.Sprintf("   %s | %s | %s", it.SourceLabel, it.PublishedDate, it.URL)))
		}
		printNotices(w, rs.Notices)
		return nil
	},
}

func init() {
	searchCmd.Flags().StringVarP(&searchFlags.company, "company", "c", "", "company of the person")
	searchCmd.Flags().StringVarP(&searchFlags.designation, "designation", "t", "", "job title of the person")
	rootCmd.AddCommand(searchCmd)
}
