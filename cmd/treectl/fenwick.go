package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/g-m-twostay/go-trees/Trees"
	"github.com/g-m-twostay/go-trees/internal/input"
)

func fenwickCmd(a *app) *cobra.Command {
	var (
		values string
		sets   []string
		prefix int
	)

	cmd := &cobra.Command{
		Use:   "fenwick",
		Short: "Build a binary indexed tree and print prefix sums",
		Long: `Build a binary indexed tree and print prefix sums.

Examples:
  treectl fenwick --values 3,2,-1,6,5 --prefix 3
  treectl fenwick --values 3,2,-1 --set 1=10
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			vs, err := input.ParseFloats(values)
			if err != nil {
				return err
			}
			bit := Trees.BuildBITree(vs)
			for _, s := range sets {
				i, v, err := input.ParseAssign(s)
				if err != nil {
					return err
				}
				if err = bit.Update(i, v); err != nil {
					return errors.Wrapf(err, "set %s", s)
				}
			}

			tbl := a.newTable(cmd.OutOrStdout(), "fenwick tree")
			tbl.AppendHeader(table.Row{"index", "value", "prefix sum"})
			for i, v := range bit.Values() {
				s, _ := bit.PrefixSum(i)
				tbl.AppendRow(table.Row{i, v, s})
			}
			if cmd.Flags().Changed("prefix") {
				s, err := bit.PrefixSum(prefix)
				if err != nil {
					return errors.Wrap(err, "prefix")
				}
				tbl.AppendFooter(table.Row{"prefix", prefix, s})
			}
			tbl.Render()
			return nil
		},
	}

	cmd.Flags().StringVar(&values, "values", "", "comma separated values")
	cmd.Flags().StringArrayVar(&sets, "set", nil, "i=v sets the value at index i, repeatable")
	cmd.Flags().IntVar(&prefix, "prefix", 0, "index of the prefix sum to report")
	_ = cmd.MarkFlagRequired("values")

	return cmd
}
