package main

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/g-m-twostay/go-trees/Trees"
	"github.com/g-m-twostay/go-trees/internal/input"
)

func intervalCmd(a *app) *cobra.Command {
	var (
		file, query   string
		adds, deletes []string
		all           bool
		bf            buildFlags
	)

	cmd := &cobra.Command{
		Use:   "interval",
		Short: "Build an interval tree and run overlap queries",
		Long: `Build an interval tree and run overlap queries.

Intervals are closed and come from --file and --add. A file lists them as
  intervals:
    - [0, 6]
    - {low: 5, high: 9}

Examples:
  treectl interval --file intervals.yaml --query 10,20 --all
  treectl interval --add 0,6 --add 5,9 --delete 0,6 --query 4,4
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var ivs []Trees.Interval[int]
			if file != "" {
				f, err := readInput(file)
				if err != nil {
					return err
				}
				ivs = f.IntervalList()
			}
			for _, s := range adds {
				iv, err := input.ParseInterval(s)
				if err != nil {
					return err
				}
				ivs = append(ivs, iv)
			}
			shuffle, opts := bf.options(cmd, a)
			tree, err := Trees.BuildIntervalTree(ivs, shuffle, opts...)
			if err != nil {
				return errors.Wrap(err, "build interval tree")
			}
			for _, s := range deletes {
				iv, err := input.ParseInterval(s)
				if err != nil {
					return err
				}
				if !tree.Delete(iv) {
					a.log.Info("interval not found", zap.Stringer("interval", iv))
				}
			}
			if err = tree.Check(); err != nil {
				return errors.Wrap(err, "check tree")
			}
			w := cmd.OutOrStdout()
			a.renderIntervals(w, tree)
			if query == "" {
				return nil
			}
			q, err := input.ParseInterval(query)
			if err != nil {
				return err
			}
			return a.renderQuery(w, tree, q, all)
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "YAML file with an intervals list")
	cmd.Flags().StringArrayVar(&adds, "add", nil, "interval lo,hi to insert, repeatable")
	cmd.Flags().StringArrayVar(&deletes, "delete", nil, "interval lo,hi to delete after building, repeatable")
	cmd.Flags().StringVar(&query, "query", "", "interval lo,hi to look for overlaps with")
	cmd.Flags().BoolVar(&all, "all", false, "report every overlapping interval instead of one")
	bf.register(cmd)
	cmd.MarkFlagsOneRequired("file", "add")

	return cmd
}

func (a *app) renderIntervals(w io.Writer, tree *Trees.IntervalTree[int]) {
	hi, ok := tree.MaxHigh()
	tbl := a.newTable(w, "interval tree")
	tbl.AppendRows([]table.Row{
		{"count", tree.Count()},
		{"depth", tree.Depth()},
		{"rebalances", tree.RebalanceCount()},
		{"max high", orNone(hi, ok)},
		{"intervals", join(tree.InOrder())},
	})
	tbl.Render()
}

func (a *app) renderQuery(w io.Writer, tree *Trees.IntervalTree[int], q Trees.Interval[int], all bool) error {
	tbl := a.newTable(w, "overlaps")
	tbl.AppendHeader(table.Row{"#", "interval"})
	tbl.AppendRow(table.Row{"query", q})
	tbl.AppendSeparator()
	if all {
		ivs, err := tree.QueryAllOverlaps(q)
		if err != nil {
			return errors.Wrap(err, "query")
		}
		for i, iv := range ivs {
			tbl.AppendRow(table.Row{i + 1, iv})
		}
		tbl.AppendFooter(table.Row{"", len(ivs)})
	} else {
		iv, ok, err := tree.QueryOverlap(q)
		if err != nil {
			return errors.Wrap(err, "query")
		}
		tbl.AppendRow(table.Row{1, orNone(iv, ok)})
	}
	tbl.Render()
	return nil
}
