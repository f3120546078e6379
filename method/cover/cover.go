package cover

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/viant/simspace/internal/cover/tree"
	"github.com/viant/simspace/internal/logging"
	"github.com/viant/simspace/method"
	"github.com/viant/simspace/object"
	"github.com/viant/simspace/params"
	"github.com/viant/simspace/space"
)

// Name is the registry name of the method.
const Name = "cover"

// headerSize is base(float64), bound(uint8), bestFirst(uint8).
const headerSize = 10

// ErrNonMetric indicates a space whose distance breaks the triangle
// inequality, which the tree needs to prune.
var ErrNonMetric = errors.New("cover: space is not a metric")

// NonMetricError details an ErrNonMetric rejection.
type NonMetricError struct {
	Space string
}

func (e *NonMetricError) Error() string {
	return fmt.Sprintf("cover: space %q is not a metric", e.Space)
}

// Is reports ErrNonMetric.
func (e *NonMetricError) Is(target error) bool { return target == ErrNonMetric }

// Index answers kNN queries with a cover tree.
type Index[T object.Numeric] struct {
	space     space.Space[T]
	tree      *tree.Tree[T]
	bestFirst bool
}

func init() {
	method.MustRegister[float32](method.Default, Name, New[float32])
	method.MustRegister[float64](method.Default, Name, New[float64])
}

// New is the creation function registered for the method. Recognized
// params: base (float), bound (per_node or level) and bestFirst (bool).
func New[T object.Numeric](printProgress bool, _ string, sp space.Space[T], data object.Vector, p *params.Set) (method.Index[T], error) {
	pm := params.NewManager(p)
	base, err := params.Optional(pm, "base", tree.DefaultBase)
	if err != nil {
		return nil, err
	}
	if base <= 1 {
		return nil, fmt.Errorf("cover: base must be greater than 1, got %v", base)
	}
	boundName, err := params.Optional(pm, "bound", tree.BoundPerNode.String())
	if err != nil {
		return nil, err
	}
	bound, err := tree.ParseBoundStrategy(boundName)
	if err != nil {
		return nil, err
	}
	bestFirst, err := params.Optional(pm, "bestFirst", false)
	if err != nil {
		return nil, err
	}
	if err := pm.CheckUnused(); err != nil {
		return nil, err
	}
	opts := []Option{WithBase(base), WithBoundStrategy(bound), WithBestFirst(bestFirst)}
	if printProgress {
		opts = append(opts, WithProgress(nil))
	}
	idx, err := Build(sp, data, opts...)
	if err != nil {
		return nil, err
	}
	return idx, nil
}

// Build inserts every object of data into a new tree.
func Build[T object.Numeric](sp space.Space[T], data object.Vector, opts ...Option) (*Index[T], error) {
	if sp == nil {
		return nil, errors.New("cover: nil space")
	}
	if !space.IsMetric(sp.String()) {
		return nil, &NonMetricError{Space: sp.String()}
	}
	cfg := &config{base: tree.DefaultBase, logger: logging.Default()}
	for _, opt := range opts {
		opt(cfg)
	}
	t := tree.NewTree[T](cfg.base, sp.Distance)
	t.SetBoundStrategy(cfg.bound)
	log := cfg.logger.WithMethod(Name).WithSpace(sp.String())
	step := max(len(data)/10, 1)
	for i, o := range data {
		if _, err := t.Insert(o); err != nil {
			return nil, fmt.Errorf("cover: insert object %d: %w", o.ID(), err)
		}
		if cfg.progress && (i+1)%step == 0 {
			log.Info("building", "inserted", i+1, "total", len(data))
		}
	}
	return &Index[T]{space: sp, tree: t, bestFirst: cfg.bestFirst}, nil
}

func (i *Index[T]) String() string { return Name }

// Len returns the number of indexed objects.
func (i *Index[T]) Len() int { return i.tree.Len() }

// KNN returns the k nearest objects, closest first. k <= 0 returns every
// object.
func (i *Index[T]) KNN(query *object.Object, k int) ([]method.Neighbor[T], error) {
	if k <= 0 {
		k = i.tree.Len()
	}
	var found []tree.Neighbor[T]
	var err error
	if i.bestFirst {
		found, err = i.tree.KNearestNeighborsBestFirst(query, k)
	} else {
		found, err = i.tree.KNearestNeighbors(query, k)
	}
	if err != nil {
		return nil, err
	}
	out := make([]method.Neighbor[T], len(found))
	for j, n := range found {
		out[j] = method.Neighbor[T]{ID: n.Point.Object.ID(), Distance: n.Distance}
	}
	return out, nil
}

// MarshalBinary stores the tree settings followed by the objects in
// insertion order. Loading reinserts them, which rebuilds the same tree.
func (i *Index[T]) MarshalBinary() ([]byte, error) {
	out := make([]byte, 0, headerSize)
	out = binary.LittleEndian.AppendUint64(out, math.Float64bits(i.tree.Base()))
	out = append(out, byte(i.tree.BoundStrategy()))
	var bf byte
	if i.bestFirst {
		bf = 1
	}
	out = append(out, bf)
	return append(out, method.EncodeData[T](i.tree.Objects())...), nil
}

// Load restores an index for sp from bytes produced by MarshalBinary.
func Load[T object.Numeric](sp space.Space[T], data []byte) (*Index[T], error) {
	if len(data) < headerSize {
		return nil, errors.New("cover: invalid data")
	}
	base := math.Float64frombits(binary.LittleEndian.Uint64(data[:8]))
	bound := tree.BoundStrategy(data[8])
	bestFirst := data[9] == 1
	objs, err := method.DecodeData[T](data[headerSize:])
	if err != nil {
		return nil, err
	}
	return Build(sp, objs, WithBase(base), WithBoundStrategy(bound), WithBestFirst(bestFirst))
}

var _ method.Searcher[float32] = (*Index[float32])(nil)
