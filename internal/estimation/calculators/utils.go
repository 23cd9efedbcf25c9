package calculators

import (
	"fmt"

	"github.com/zkcost/proof-cost-planner/internal/estimation"
)

func getInt(p estimation.Param) (int, error) {
	switch v := p.Value.(type) {
	case float64:
		return int(v), nil // JSON default
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case uint64:
		return int(v), nil
	default:
		return 0, fmt.Errorf("param %s is not a number (type: %T)", p.Key, p.Value)
	}
}

func getUint64(p estimation.Param) (uint64, error) {
	switch v := p.Value.(type) {
	case uint64:
		return v, nil
	case int:
		if v < 0 {
			return 0, fmt.Errorf("param %s must be non-negative", p.Key)
		}
		return uint64(v), nil
	case int64:
		if v < 0 {
			return 0, fmt.Errorf("param %s must be non-negative", p.Key)
		}
		return uint64(v), nil
	case float64:
		if v < 0 {
			return 0, fmt.Errorf("param %s must be non-negative", p.Key)
		}
		return uint64(v), nil
	default:
		return 0, fmt.Errorf("param %s is not a number (type: %T)", p.Key, p.Value)
	}
}

func getFloat(p estimation.Param) (float64, error) {
	switch v := p.Value.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	default:
		return 0.0, fmt.Errorf("param %s is not a number (type: %T)", p.Key, p.Value)
	}
}

func required(params map[string]estimation.Param, key string) (estimation.Param, error) {
	p, ok := params[key]
	if !ok {
		return estimation.Param{}, fmt.Errorf("missing %s", key)
	}
	return p, nil
}
