package commands

import (
	"strconv"

	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/uwuify/cmd/uwuify/opts"
	"github.com/walteh/uwuify/pkg/log"
	"github.com/walteh/uwuify/pkg/rules"
)

// NewRulesCmd creates the rules command and its subcommands
func NewRulesCmd(o *opts.RootOpts) *cobra.Command {
	var kindFlag string

	kind := func() (rules.Kind, error) {
		k := rules.Kind(kindFlag)
		if _, err := k.Key(); err != nil {
			return "", err
		}
		return k, nil
	}

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Edit the string and regex rule lists",
		Long: `Rules manages the two text replacement lists kept in the store.
The last row of each list is always empty; setting it adds a rule, and
setting any other row to "" deletes it.`,
	}

	cmd.PersistentFlags().StringVarP(&kindFlag, "kind", "k", string(rules.KindString), "rule list to edit (string|regex)")

	cmd.AddCommand(
		newRulesListCmd(o, kind),
		newRulesSetCmd(o, kind),
		newRulesRemoveCmd(o, kind),
		newRulesCheckCmd(o, kind),
	)

	return cmd
}

func newRulesListCmd(o *opts.RootOpts, kind func() (rules.Kind, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show every row of a rule list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := kind()
			if err != nil {
				return err
			}

			values, err := o.Settings().List(k)
			if err != nil {
				return err
			}

			list := rules.NewList(values)
			o.UserLogger.LogStateChange(strconv.Itoa(len(list.Rules())) + " " + string(k) + " rules")

			rows := make([][]string, 0, len(values))
			for i, v := range values {
				if list.IsSentinel(i) {
					rows = append(rows, []string{strconv.Itoa(i), "(new rule)", ""})
					continue
				}
				rows = append(rows, []string{strconv.Itoa(i), v, matchScope(k, v)})
			}

			return o.UserLogger.LogTable(k.Title(), []string{"#", "find", "matches"}, rows)
		},
	}
}

// matchScope describes how much of a message a rule rewrites
func matchScope(k rules.Kind, value string) string {
	if k != rules.KindRegex {
		return "first"
	}
	f, err := rules.ParseFind(value)
	switch {
	case err != nil:
		return "invalid"
	case f.Global():
		return "all"
	default:
		return "first"
	}
}

func newRulesSetCmd(o *opts.RootOpts, kind func() (rules.Kind, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "set INDEX VALUE",
		Short: "Set a row; an empty VALUE deletes it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := kind()
			if err != nil {
				return err
			}

			index, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.Errorf("parsing index %q: %w", args[0], err)
			}
			value := args[1]

			values, err := o.Settings().List(k)
			if err != nil {
				return err
			}

			change := log.RuleChange{Type: log.RuleUpdated, List: string(k), Index: index, Rule: value}
			switch {
			case value == "" && rules.NewList(values).IsSentinel(index):
				change.Type = log.RuleSkipped
			case value == "":
				change.Type = log.RuleRemoved
			case rules.NewList(values).IsSentinel(index):
				change.Type = log.RuleAdded
			}

			if err := o.Settings().Edit(cmd.Context(), k, index, value); err != nil {
				o.UserLogger.LogRuleChange(log.RuleChange{Type: log.RuleError, List: string(k), Index: index, Error: err})
				return errors.Errorf("editing %s rule %d: %w", k, index, err)
			}

			o.UserLogger.LogRuleChange(change)

			if k == rules.KindRegex && value != "" {
				if err := rules.FindError(value); err != nil {
					o.UserLogger.LogValidation(false, "rule saved but does not compile", err)
				}
			}
			return nil
		},
	}
}

func newRulesRemoveCmd(o *opts.RootOpts, kind func() (rules.Kind, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "remove INDEX",
		Short: "Delete a row",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := kind()
			if err != nil {
				return err
			}

			index, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.Errorf("parsing index %q: %w", args[0], err)
			}

			values, err := o.Settings().List(k)
			if err != nil {
				return err
			}
			change := log.RuleChange{Type: log.RuleRemoved, List: string(k), Index: index}
			if rules.NewList(values).IsSentinel(index) {
				change.Type = log.RuleSkipped
			}

			if err := o.Settings().Remove(cmd.Context(), k, index); err != nil {
				o.UserLogger.LogRuleChange(log.RuleChange{Type: log.RuleError, List: string(k), Index: index, Error: err})
				return errors.Errorf("removing %s rule %d: %w", k, index, err)
			}

			o.UserLogger.LogRuleChange(change)
			return nil
		},
	}
}

func newRulesCheckCmd(o *opts.RootOpts, kind func() (rules.Kind, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Report regex rules whose find field does not compile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := kind()
			if err != nil {
				return err
			}

			problems, err := o.Settings().Check(k)
			if err != nil {
				return err
			}

			if len(problems) == 0 {
				o.UserLogger.LogValidation(true, "all "+string(k)+" rules are valid", nil)
				return nil
			}

			for _, p := range problems {
				o.UserLogger.LogValidation(false, "rule "+strconv.Itoa(p.Index)+" ("+p.Rule+") does not compile", p.Err)
			}
			return errors.Errorf("%d invalid %s rules", len(problems), k)
		},
	}
}
