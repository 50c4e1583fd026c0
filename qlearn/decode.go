package qlearn

import (
	"fmt"
	"math"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// DecodeParams decodes a generic settings map (as produced by any YAML, JSON
// or flag layer the caller owns) into Params. Missing keys keep their
// defaults; unknown keys are rejected; numeric strings are accepted. Integer
// fields reject fractional or out-of-range floats instead of truncating them.
//
// Recognised keys: gamma, alpha, iterations, seed.
//
// Errors:
//   - ErrBadParams for undecodable input, plus the Validate sentinels.
func DecodeParams(settings map[string]interface{}) (Params, error) {
	p := DefaultParams()
	if len(settings) == 0 {
		return p, nil
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &p,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		DecodeHook:       integralFloatHook,
	})
	if err != nil {
		return Params{}, fmt.Errorf("%w: creating decoder: %v", ErrBadParams, err)
	}
	if err = dec.Decode(settings); err != nil {
		return Params{}, fmt.Errorf("%w: %v", ErrBadParams, err)
	}
	if err = p.Validate(); err != nil {
		return Params{}, err
	}

	return p, nil
}

// integralFloatHook lets a float reach an integer field only when it holds an
// exact integer that fits the field. JSON decoders hand every number over as
// float64.
func integralFloatHook(from, to reflect.Type, data interface{}) (interface{}, error) {
	if from.Kind() != reflect.Float32 && from.Kind() != reflect.Float64 {
		return data, nil
	}
	var bits int
	switch to.Kind() {
	case reflect.Int, reflect.Int64, reflect.Int32, reflect.Int16, reflect.Int8:
		bits = to.Bits()
	default:
		return data, nil
	}

	f := reflect.ValueOf(data).Float()
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return nil, fmt.Errorf("%g is not an integer", f)
	}
	// [-2^(bits-1), 2^(bits-1)) is exactly representable at both ends.
	limit := math.Ldexp(1, bits-1)
	if f < -limit || f >= limit {
		return nil, fmt.Errorf("%g overflows %s", f, to)
	}

	return data, nil
}
