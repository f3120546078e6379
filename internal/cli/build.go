package cli

import (
	"encoding"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/viant/simspace/dataset"
	"github.com/viant/simspace/internal/logging"
	"github.com/viant/simspace/method"
	"github.com/viant/simspace/object"
	"github.com/viant/simspace/params"
)

type buildOptions struct {
	spaceOptions
	method     string
	params     string
	paramsFile string
	in         []string
	db         string
	name       string
	query      string
	k          int
	maxObjects int
}

func newBuildCommand(g *globalOptions) *cobra.Command {
	o := &buildOptions{}
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build an index over a dataset",
		Long: `Build loads one or more datasets through a space, concatenates them and
creates an index with the named method. Method parameters come from
--params-file (a flat YAML mapping) and --params (name=value,...).

With --db, the dataset and, when the method supports it, the serialized
index are stored in SQLite. With --query, the index answers one kNN query.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			elem, err := object.ParseElementType(o.elemType)
			if err != nil {
				return err
			}
			if elem == object.Float64 {
				return runBuild[float64](cmd, g, o)
			}
			return runBuild[float32](cmd, g, o)
		},
	}
	o.bind(cmd)
	cmd.Flags().StringVarP(&o.method, "method", "m", "", "method name")
	cmd.Flags().StringVarP(&o.params, "params", "p", "", "method parameters, name=value[,name=value]")
	cmd.Flags().StringVar(&o.paramsFile, "params-file", "", "YAML file with method parameters")
	cmd.Flags().StringSliceVar(&o.in, "in", nil, "input locations; repeat to concatenate")
	cmd.Flags().StringVar(&o.db, "db", "", "SQLite file to store the dataset and index in")
	cmd.Flags().StringVar(&o.name, "name", "", "dataset and index name in --db (defaults to the method)")
	cmd.Flags().StringVar(&o.query, "query", "", "query record in the space text format")
	cmd.Flags().IntVar(&o.k, "k", 10, "neighbors to return for --query")
	cmd.Flags().IntVar(&o.maxObjects, "max-objects", 0, "stop each input after this many objects (0 reads all)")
	_ = cmd.MarkFlagRequired("method")
	_ = cmd.MarkFlagRequired("in")
	return cmd
}

func (o *buildOptions) methodParams() (*params.Set, error) {
	set := &params.Set{}
	if o.paramsFile != "" {
		data, err := os.ReadFile(o.paramsFile)
		if err != nil {
			return nil, err
		}
		if set, err = params.FromYAML(data); err != nil {
			return nil, err
		}
	}
	inline, err := params.Parse(o.params)
	if err != nil {
		return nil, err
	}
	if err := set.Merge(inline); err != nil {
		return nil, err
	}
	return set, nil
}

func runBuild[T object.Numeric](cmd *cobra.Command, g *globalOptions, o *buildOptions) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	sp, err := newSpace[T](o.space, o.labels)
	if err != nil {
		return err
	}
	p, err := o.methodParams()
	if err != nil {
		return err
	}

	var data object.Vector
	var externIDs []string
	for _, raw := range o.in {
		loc, err := parseLocation(raw)
		if err != nil {
			return err
		}
		objs, ids, err := load(ctx, sp, loc, dataset.WithMaxObjects(o.maxObjects))
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", loc, err)
		}
		// ids restart in every input
		for i, obj := range objs {
			data = append(data, object.New(len(data), obj.Label(), obj.Payload()))
			externIDs = append(externIDs, ids[i])
		}
	}

	log := logging.Default().WithMethod(o.method).WithSpace(sp.String())
	started := time.Now()
	idx, err := method.Create[T](method.Default, o.method, g.verbose, sp.String(), sp, data, p)
	if err != nil {
		return err
	}
	log.Info("index built", "objects", idx.Len(), "elapsed", time.Since(started))
	fmt.Fprintf(out, "built %s over %d objects in space %s (%s)\n", idx, idx.Len(), sp, sp.ElementType())

	if o.db != "" {
		name := o.name
		if name == "" {
			name = o.method
		}
		err := withStore(ctx, o.db, func(store *dataset.Store) error {
			if err := store.SaveObjects(ctx, name, sp.ElementType(), data, externIDs); err != nil {
				return err
			}
			m, ok := idx.(encoding.BinaryMarshaler)
			if !ok {
				fmt.Fprintf(out, "method %s does not serialize; stored dataset %s only\n", o.method, name)
				return nil
			}
			blob, err := m.MarshalBinary()
			if err != nil {
				return err
			}
			if err := store.SaveIndex(ctx, name, o.method, blob); err != nil {
				return err
			}
			fmt.Fprintf(out, "stored dataset and index %s (%d bytes) in %s\n", name, len(blob), o.db)
			return nil
		})
		if err != nil {
			return fmt.Errorf("failed to store in %s: %w", o.db, err)
		}
	}

	if o.query == "" {
		return nil
	}
	searcher, ok := idx.(method.Searcher[T])
	if !ok {
		return fmt.Errorf("method %s does not answer queries", o.method)
	}
	q, err := sp.CreateObjFromStr(-1, object.EmptyLabel, o.query, nil)
	if err != nil {
		return err
	}
	neighbors, err := searcher.KNN(q, o.k)
	if err != nil {
		return err
	}
	for rank, n := range neighbors {
		fmt.Fprintf(out, "%d\t%d\t%v\n", rank+1, n.ID, n.Distance)
	}
	return nil
}
