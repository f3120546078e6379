package dataset

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/viant/simspace/internal/logging"
	"github.com/viant/simspace/object"
	"github.com/viant/simspace/space"
	"golang.org/x/sync/errgroup"
)

// Result is one loaded file.
type Result struct {
	Path      string
	Objects   object.Vector
	ExternIDs []string
	Dim       int
}

// Read loads path through sp. Objects get sequential ids starting at 0;
// externIDs is parallel to the objects. Blank lines are skipped. The first rejected record stops
// the load and is returned unchanged, so callers can match
// *space.DimensionMismatchError or *space.ParseError.
func Read[T object.Numeric](ctx context.Context, sp space.Space[T], path string, opts ...Option) (object.Vector, []string, error) {
	res, err := read(ctx, sp, path, newOptions(opts))
	if err != nil {
		return nil, nil, err
	}
	return res.Objects, res.ExternIDs, nil
}

// ReadAll loads every path concurrently, one read state per file. Results
// follow the order of paths. The first failure cancels the remaining loads.
func ReadAll[T object.Numeric](ctx context.Context, sp space.Space[T], paths []string, opts ...Option) ([]Result, error) {
	o := newOptions(opts)
	results := make([]Result, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			res, err := read(gctx, sp, path, o)
			if err != nil {
				return err
			}
			results[i] = *res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func read[T object.Numeric](ctx context.Context, sp space.Space[T], path string, o *options) (res *Result, err error) {
	log := o.logger.WithPath(path).WithSpace(sp.String())
	state, err := sp.OpenReadFileHeader(path)
	if err != nil {
		log.Error("open failed", "error", err)
		return nil, err
	}
	defer func() {
		if cerr := state.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("dataset: close %s: %w", path, cerr)
		}
	}()

	res = &Result{Path: path}
	for o.maxObjects <= 0 || len(res.Objects) < o.maxObjects {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rec, ok, err := sp.ReadNextObjStr(state)
		if err != nil {
			logFailure(log, state, err)
			return nil, err
		}
		if !ok {
			break
		}
		if strings.TrimSpace(rec.Text) == "" {
			continue
		}
		obj, err := sp.CreateObjFromStr(len(res.Objects), rec.Label, rec.Text, state)
		if err != nil {
			logFailure(log, state, err)
			return nil, err
		}
		res.Objects = append(res.Objects, obj)
		res.ExternIDs = append(res.ExternIDs, rec.ExternID)
	}
	res.Dim = state.Dim()
	log.Info("loaded", "objects", len(res.Objects), "dim", res.Dim, "lines", state.Line())
	return res, nil
}

func logFailure(log *logging.Logger, state space.ReadState, err error) {
	var dm *space.DimensionMismatchError
	if errors.As(err, &dm) {
		log.Error("dimension mismatch", "line", dm.Line, "expected", dm.Expected, "actual", dm.Actual)
		return
	}
	log.Error("load failed", "line", state.Line(), "error", err)
}
