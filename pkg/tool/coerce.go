package tool

import (
	"encoding/json"
	"fmt"
	"math"
)

// ParamError identifies the offending parameter and its expected type when
// argument validation fails.
type ParamError struct {
	Param    string
	Expected ParamType
	Missing  bool
}

func (e *ParamError) Error() string {
	if e.Missing {
		return fmt.Sprintf("missing required parameter %q (expected %s)", e.Param, e.Expected)
	}
	return fmt.Sprintf("parameter %q is not a valid %s", e.Param, e.Expected)
}

// prepareArguments validates the raw argument mapping against the declared
// parameters and returns the coerced, defaulted set passed to the handler.
// Required parameters must be present; optional parameters receive their
// declared default when absent; an optional parameter with no default is
// treated as genuinely absent. Unknown extra arguments are ignored.
func prepareArguments(def *Definition, raw map[string]interface{}) (map[string]interface{}, error) {
	prepared := make(map[string]interface{}, len(def.Parameters))

	for _, param := range def.Parameters {
		value, present := raw[param.Name]
		if !present || value == nil {
			if param.Required {
				return nil, &ParamError{Param: param.Name, Expected: param.Type, Missing: true}
			}
			if param.Default != nil {
				prepared[param.Name] = param.Default
			}
			continue
		}

		coerced, err := coerceValue(param.Type, value)
		if err != nil {
			return nil, &ParamError{Param: param.Name, Expected: param.Type}
		}
		prepared[param.Name] = coerced
	}

	return prepared, nil
}

// coerceValue converts a JSON-decoded value to the declared parameter type.
// JSON numbers arrive as float64; integers accept them only when the
// fractional part is zero.
func coerceValue(t ParamType, value interface{}) (interface{}, error) {
	switch t {
	case TypeString:
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("expected string, got %T", value)
		}
		return s, nil

	case TypeInteger:
		switch v := value.(type) {
		case int:
			return v, nil
		case int64:
			return int(v), nil
		case float64:
			if v != math.Trunc(v) {
				return nil, fmt.Errorf("expected integer, got fractional number")
			}
			return int(v), nil
		case json.Number:
			n, err := v.Int64()
			if err != nil {
				return nil, fmt.Errorf("expected integer, got %q", v.String())
			}
			return int(n), nil
		default:
			return nil, fmt.Errorf("expected integer, got %T", value)
		}

	case TypeNumber:
		switch v := value.(type) {
		case float64:
			return v, nil
		case int:
			return float64(v), nil
		case int64:
			return float64(v), nil
		case json.Number:
			f, err := v.Float64()
			if err != nil {
				return nil, fmt.Errorf("expected number, got %q", v.String())
			}
			return f, nil
		default:
			return nil, fmt.Errorf("expected number, got %T", value)
		}

	case TypeBoolean:
		b, ok := value.(bool)
		if !ok {
			return nil, fmt.Errorf("expected boolean, got %T", value)
		}
		return b, nil

	default:
		return nil, fmt.Errorf("unknown parameter type %q", t)
	}
}
