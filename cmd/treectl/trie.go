package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/g-m-twostay/go-trees/Tries"
)

func trieCmd(a *app) *cobra.Command {
	var (
		words  []string
		prefix string
	)

	cmd := &cobra.Command{
		Use:   "trie",
		Short: "Build a prefix trie and list the words under a prefix",
		Long: `Build a prefix trie and list the words under a prefix.

Words are listed shortest first, and alphabetically among equal lengths.

Examples:
  treectl trie --words car,cart,care,cat --prefix car
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tr := Tries.Build(words)
			matches := tr.WordsWithPrefix(prefix)

			tbl := a.newTable(cmd.OutOrStdout(), "trie")
			tbl.AppendRows([]table.Row{
				{"words", tr.Len()},
				{"prefix", prefix},
				{"is a word", tr.Search(prefix)},
				{"is a prefix", tr.StartsWith(prefix)},
				{"matches", join(matches)},
			})
			tbl.AppendFooter(table.Row{"", len(matches)})
			tbl.Render()
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&words, "words", nil, "comma separated words")
	cmd.Flags().StringVar(&prefix, "prefix", "", "prefix to list the words of")
	_ = cmd.MarkFlagRequired("words")

	return cmd
}
