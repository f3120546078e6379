package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/viant/simspace/dataset"
	"github.com/viant/simspace/object"
)

type spaceOptions struct {
	space    string
	elemType string
	labels   string
}

func (o *spaceOptions) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.space, "space", "l2", "space name (l2, cosinesimil, l1, linf)")
	cmd.Flags().StringVar(&o.elemType, "type", "float32", "element type (float32, float64)")
	cmd.Flags().StringVar(&o.labels, "labels", "leading", "label convention (leading, prefix, none)")
}

type convertOptions struct {
	spaceOptions
	in         string
	out        string
	maxObjects int
}

func newConvertCommand() *cobra.Command {
	o := &convertOptions{}
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Re-serialize a dataset",
		Long: `Convert reads a dataset through a space and writes it back out. Either side
may be a text file (.gz, .zst and .lz4 are compressed) or a SQLite dataset
written as sqlite://<file>#<dataset>.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			elem, err := object.ParseElementType(o.elemType)
			if err != nil {
				return err
			}
			if elem == object.Float64 {
				return runConvert[float64](cmd, o)
			}
			return runConvert[float32](cmd, o)
		},
	}
	o.bind(cmd)
	cmd.Flags().StringVar(&o.in, "in", "", "input location")
	cmd.Flags().StringVar(&o.out, "out", "", "output location")
	cmd.Flags().IntVar(&o.maxObjects, "max-objects", 0, "stop after this many objects (0 reads all)")
	_ = cmd.MarkFlagRequired("in")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

func runConvert[T object.Numeric](cmd *cobra.Command, o *convertOptions) error {
	sp, err := newSpace[T](o.space, o.labels)
	if err != nil {
		return err
	}
	in, err := parseLocation(o.in)
	if err != nil {
		return err
	}
	out, err := parseLocation(o.out)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	data, externIDs, err := load(ctx, sp, in, dataset.WithMaxObjects(o.maxObjects))
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", in, err)
	}
	if err := save(ctx, sp, out, data, externIDs); err != nil {
		return fmt.Errorf("failed to save %s: %w", out, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "converted %d objects from %s to %s\n", len(data), in, out)
	return nil
}
