package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/sandevgo/reachout/internal/core"
	"github.com/sandevgo/reachout/internal/service/ui"
	"github.com/spf13/cobra"
)

var genFlags struct {
	company     string
	designation string
	title       string
	snippet     string
}

var generateCmd = &cobra.Command{
	Use:   "generate <name>",
	Short: "Write a connection message for a person",
	Example: `  reach generate "Jane Doe" --company Acme --designation CTO
  reach generate "Jane Doe" --title "Scaling platform teams" --snippet "Jane wrote about..."`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		if (genFlags.title == "") != (genFlags.snippet == "") {
			return errors.New("--title and --snippet must be used together")
		}

		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		var manual *core.ResultSet
		if genFlags.title != "" {
			manual = core.NewManualResultSet(genFlags.title, genFlags.snippet)
		}

		rs, msg, err := a.svc.Generate(ctx, person(args, genFlags.company, genFlags.designation), manual)
		if err != nil {
			var ge *core.GenerationError
			if errors.As(err, &ge) {
				return fmt.Errorf("%w (check the API key of your LLM provider)", err)
			}
			return err
		}

		printMessage(cmd.OutOrStdout(), rs, msg)
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVarP(&genFlags.company, "company", "c", "", "company of the person")
	generateCmd.Flags().StringVarP(&genFlags.designation, "designation", "t", "", "job title of the person")
	generateCmd.Flags().StringVar(&genFlags.title, "title", "", "title of content to reference instead of searching")
	generateCmd.Flags().StringVar(&genFlags.snippet, "snippet", "", "summary of that content")
	rootCmd.AddCommand(generateCmd)
}

func person(args []string, company, designation string) core.Person {
	return core.Person{
		Name:        strings.Join(args, " "),
		Company:     company,
		Designation: designation,
	}.Normalized()
}

func printMessage(w io.Writer, rs *core.ResultSet, msg *core.GeneratedMessage) {
	fmt.Fprintln(w, ui.MessageStyle.Render(msg.Text))
	fmt.Fprintln(w, ui.DescStyle.Render(fmt.Sprintf("%d characters", utf8.RuneCountInString(msg.Text))))

	if msg.SourceTitle != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, ui.HeaderStyle.Render("Source: ")+msg.SourceTitle)
		if msg.SourceURL != "" {
			fmt.Fprintln(w, ui.DescStyle.Render(msg.SourceURL))
		}
	}
	printNotices(w, rs.Notices)
}

func printNotices(w io.Writer, notices []string) {
	for _, n := range notices {
		fmt.Fprintln(w, ui.FlagStyle.Render("! "+n))
	}
}
