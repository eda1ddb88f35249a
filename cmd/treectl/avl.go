package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/g-m-twostay/go-trees/Trees"
	"github.com/g-m-twostay/go-trees/internal/input"
)

// intTree is what avl needs from AVLTree and BSTree alike.
type intTree interface {
	Trees.Tree[int]
	LevelOrder() []int
	RebalanceCount() int
	Fprint(w io.Writer) error
	Check() error
}

// buildFlags are shared by the commands that bulk load a tree.
type buildFlags struct {
	shuffle bool
	seed    int64
}

func (f *buildFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.shuffle, "shuffle", false, "insert in a random order (default from build.shuffle)")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "seed of the shuffle (default from build.seed)")
}

// options resolves the flags against the configuration.
func (f *buildFlags) options(cmd *cobra.Command, a *app) (bool, []Trees.Option) {
	shuffle, seed := a.cfg.Build.Shuffle, a.cfg.Build.Seed
	if cmd.Flags().Changed("shuffle") {
		shuffle = f.shuffle
	}
	if cmd.Flags().Changed("seed") {
		seed = f.seed
	}
	return shuffle, []Trees.Option{Trees.WithLogger(a.log), Trees.WithRand(rand.New(rand.NewSource(seed)))}
}

func avlCmd(a *app) *cobra.Command {
	var (
		rangeSpec, keySpec, file string
		deletes                  []int
		unbalanced               bool
		bf                       buildFlags
	)

	cmd := &cobra.Command{
		Use:   "avl",
		Short: "Build an AVL tree over integer keys and print its shape",
		Long: `Build an AVL tree over integer keys and print its shape.

Keys come from exactly one of --range, --keys and --file.

Examples:
  treectl avl --range 0:15
  treectl avl --keys 5,3,8,1 --delete 3
  treectl avl --file keys.yaml --shuffle --seed 7 --unbalanced
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			keys, err := loadKeys(rangeSpec, keySpec, file)
			if err != nil {
				return err
			}
			shuffle, opts := bf.options(cmd, a)
			var tree intTree
			if unbalanced {
				tree = Trees.BuildBSTree(keys, shuffle, opts...)
			} else {
				tree = Trees.BuildAVL(keys, shuffle, opts...)
			}
			for _, k := range deletes {
				if !tree.Delete(k) {
					a.log.Info("key not found", zap.Int("key", k))
				}
			}
			if err = tree.Check(); err != nil {
				return errors.Wrap(err, "check tree")
			}
			return a.renderIntTree(cmd.OutOrStdout(), tree)
		},
	}

	cmd.Flags().StringVar(&rangeSpec, "range", "", "keys a, a+1, ..., b-1 given as a:b")
	cmd.Flags().StringVar(&keySpec, "keys", "", "comma separated keys")
	cmd.Flags().StringVar(&file, "file", "", "YAML file with a keys list")
	cmd.Flags().IntSliceVar(&deletes, "delete", nil, "keys to delete after building")
	cmd.Flags().BoolVar(&unbalanced, "unbalanced", false, "build an unbalanced binary search tree instead")
	bf.register(cmd)
	cmd.MarkFlagsMutuallyExclusive("range", "keys", "file")
	cmd.MarkFlagsOneRequired("range", "keys", "file")

	return cmd
}

func loadKeys(rangeSpec, keySpec, file string) ([]int, error) {
	switch {
	case rangeSpec != "":
		return input.ParseRange(rangeSpec)
	case keySpec != "":
		return input.ParseInts(keySpec)
	default:
		f, err := readInput(file)
		if err != nil {
			return nil, err
		}
		return f.Keys, nil
	}
}

func readInput(path string) (*input.File, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open input")
	}
	defer fd.Close()
	return input.Decode(fd)
}

func (a *app) renderIntTree(w io.Writer, tree intTree) error {
	mn, hasMin := tree.Minimum()
	mx, hasMax := tree.Maximum()
	tbl := a.newTable(w, "tree")
	tbl.AppendRows([]table.Row{
		{"count", tree.Count()},
		{"depth", tree.Depth()},
		{"rebalances", tree.RebalanceCount()},
		{"minimum", orNone(mn, hasMin)},
		{"maximum", orNone(mx, hasMax)},
	})
	tbl.Render()

	tbl = a.newTable(w, "traversals")
	tbl.AppendRows([]table.Row{
		{"in-order", join(tree.InOrder())},
		{"pre-order", join(tree.PreOrder())},
		{"post-order", join(tree.PostOrder())},
		{"level-order", join(tree.LevelOrder())},
	})
	tbl.Render()

	if d := tree.Depth(); d > Trees.MaxPictureDepth {
		_, err := fmt.Fprintf(w, "depth %d: too deep to draw, at most %d\n", d, Trees.MaxPictureDepth)
		return err
	}
	return tree.Fprint(w)
}
