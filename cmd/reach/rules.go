package main

import (
	"fmt"
	"strings"

	"github.com/sandevgo/reachout/internal/config"
	"github.com/sandevgo/reachout/internal/service/enforcer"
	"github.com/sandevgo/reachout/internal/service/ui"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Print the effective message rules",
	RunE: func(cmd *cobra.Command, args []string) error {
		rules, err := loadRules()
		if err != nil {
			return err
		}
		out, err := yaml.Marshal(rules)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

var enforceFlags struct {
	company     string
	designation string
	trace       bool
}

var enforceCmd = &cobra.Command{
	Use:   "enforce <draft>",
	Short: "Apply the rules to a draft without calling any API",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rules, err := loadRules()
		if err != nil {
			return err
		}
		enf := enforcer.New(rules, nil)
		draft := strings.Join(args, " ")
		w := cmd.OutOrStdout()

		if enforceFlags.trace {
			for _, st := range enf.Trace(draft, enforceFlags.company, enforceFlags.designation) {
				fmt.Fprintf(w, "%s %s\n%s\n\n", ui.HeaderStyle.Render(st.Name),
					ui.DescStyle.Render(fmt.Sprintf("(%d)", len([]rune(st.Output)))), st.Output)
			}
			return nil
		}

		if found := enf.Audit(draft); len(found) > 0 {
			fmt.Fprintln(w, ui.DescStyle.Render("banned: "+strings.Join(found, ", ")))
		}
		msg := enf.Enforce(draft, enforceFlags.company, enforceFlags.designation)
		fmt.Fprintln(w, ui.MessageStyle.Render(msg))
		fmt.Fprintln(w, ui.DescStyle.Render(fmt.Sprintf("%d characters", len([]rune(msg)))))
		return nil
	},
}

// loadRules reads the runtime rules without requiring the rest of the config.
func loadRules() (*config.Rules, error) {
	c := config.AppConfig{RuntimePath: config.GetRuntimePath()}
	return config.LoadRules(c.GetRulesPath())
}

func init() {
	enforceCmd.Flags().StringVarP(&enforceFlags.company, "company", "c", "", "company to redact")
	enforceCmd.Flags().StringVarP(&enforceFlags.designation, "designation", "t", "", "job title to redact")
	enforceCmd.Flags().BoolVar(&enforceFlags.trace, "trace", false, "print the result of every pass")
	rulesCmd.AddCommand(enforceCmd)
	rootCmd.AddCommand(rulesCmd)
}
