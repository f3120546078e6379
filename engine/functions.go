package engine

import (
	"database/sql/driver"
	"fmt"
	"sync"

	"github.com/viant/simspace/object"
	"github.com/viant/simspace/space"
	sqlite "modernc.org/sqlite"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterObjectFunctions registers obj_l2 and obj_cosine for float32
// payloads and obj_l2_f64 and obj_cosine_f64 for float64 payloads. The
// functions are available on connections opened after the first call;
// later calls are no-ops. obj_cosine returns the cosine distance used by
// the cosinesimil space, not the similarity.
func RegisterObjectFunctions() error {
	registerOnce.Do(func() {
		registerErr = register()
	})
	return registerErr
}

func register() error {
	l2f32, err := space.New[float32](space.L2)
	if err != nil {
		return err
	}
	cosf32, err := space.New[float32](space.Cosine)
	if err != nil {
		return err
	}
	l2f64, err := space.New[float64](space.L2)
	if err != nil {
		return err
	}
	cosf64, err := space.New[float64](space.Cosine)
	if err != nil {
		return err
	}
	functions := []struct {
		name string
		impl func(*sqlite.FunctionContext, []driver.Value) (driver.Value, error)
	}{
		{"obj_l2", distanceFunction[float32]("obj_l2", l2f32)},
		{"obj_cosine", distanceFunction[float32]("obj_cosine", cosf32)},
		{"obj_l2_f64", distanceFunction[float64]("obj_l2_f64", l2f64)},
		{"obj_cosine_f64", distanceFunction[float64]("obj_cosine_f64", cosf64)},
	}
	for _, fn := range functions {
		if err := sqlite.RegisterDeterministicScalarFunction(fn.name, 2, fn.impl); err != nil {
			return fmt.Errorf("engine: register %s: %w", fn.name, err)
		}
	}
	return nil
}

func distanceFunction[T object.Numeric](name string, sp space.Space[T]) func(*sqlite.FunctionContext, []driver.Value) (driver.Value, error) {
	return func(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
		if len(args) != 2 {
			return nil, fmt.Errorf("%s: expected 2 arguments, got %d", name, len(args))
		}
		a, err := asObject(name, args[0])
		if err != nil {
			return nil, err
		}
		b, err := asObject(name, args[1])
		if err != nil {
			return nil, err
		}
		if a == nil || b == nil {
			return nil, nil
		}
		d, err := sp.Distance(a, b)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		return float64(d), nil
	}
}

// asObject wraps a payload BLOB; NULL and empty blobs yield nil.
func asObject(name string, arg driver.Value) (*object.Object, error) {
	switch v := arg.(type) {
	case nil:
		return nil, nil
	case []byte:
		if len(v) == 0 {
			return nil, nil
		}
		return object.New(0, object.EmptyLabel, v), nil
	default:
		return nil, fmt.Errorf("%s: unsupported argument type %T for payload; want BLOB", name, arg)
	}
}
