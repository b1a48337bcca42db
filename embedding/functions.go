package embedding

import (
	"database/sql/driver"
	"fmt"

	"github.com/viant/embias/geometry"
	sqlite "modernc.org/sqlite"
)

// RegisterVectorFunctions registers vec_cosine and vec_projection with the
// driver so they are available on new connections opened after this call.
// Note: existing open connections will not see new functions.
//
//	SELECT word, vec_projection(embedding, ?) AS p FROM vectors ORDER BY p DESC;
//
// vec_cosine(a, b) is the cosine similarity of two embedding BLOBs.
// vec_projection(v, d) is the scalar projection of v onto the direction d
// (d is normalized internally, v is not).
func RegisterVectorFunctions() error {
	// Idempotent registration; the driver rejects duplicates but we ignore
	// errors here so repeated calls are safe.
	_ = sqlite.RegisterDeterministicScalarFunction("vec_cosine", 2, vecCosineImpl)
	_ = sqlite.RegisterDeterministicScalarFunction("vec_projection", 2, vecProjectionImpl)
	return nil
}

func asVector(arg driver.Value) ([]float32, error) {
	switch v := arg.(type) {
	case nil:
		return nil, nil
	case []byte:
		return DecodeVector(v)
	default:
		return nil, fmt.Errorf("embedding: unsupported argument type %T for vector; want BLOB", arg)
	}
}

func vecCosineImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("vec_cosine: expected 2 arguments, got %d", len(args))
	}
	a, err := asVector(args[0])
	if err != nil {
		return nil, err
	}
	b, err := asVector(args[1])
	if err != nil {
		return nil, err
	}
	if a == nil || b == nil {
		return nil, nil
	}
	sim, err := geometry.CosineSimilarity(a, b)
	if err != nil {
		return nil, err
	}
	return sim, nil
}

func vecProjectionImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("vec_projection: expected 2 arguments, got %d", len(args))
	}
	v, err := asVector(args[0])
	if err != nil {
		return nil, err
	}
	d, err := asVector(args[1])
	if err != nil {
		return nil, err
	}
	if v == nil || d == nil {
		return nil, nil
	}
	unit, err := geometry.Normalize(d)
	if err != nil {
		return nil, fmt.Errorf("vec_projection: %w", err)
	}
	proj, err := geometry.Dot(v, unit)
	if err != nil {
		return nil, err
	}
	return proj, nil
}
