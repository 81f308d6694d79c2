package targets

import (
	"fmt"
	"math"
	"strings"

	"github.com/knetic/govaluate"
)

// MaxSize is the largest PNG edge length accepted anywhere in a target set.
const MaxSize = 8192

// SizeExpr is an icon edge length written either as a number or as an
// arithmetic expression such as "83.5*2" (an iOS 83.5pt icon at @2x).
type SizeExpr string

// UnmarshalYAML accepts numbers as well as strings.
func (s *SizeExpr) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var v interface{}
	if err := unmarshal(&v); err != nil {
		return err
	}
	switch v := v.(type) {
	case string:
		*s = SizeExpr(v)
	case int, int64, uint64, float64:
		*s = SizeExpr(fmt.Sprint(v))
	default:
		return fmt.Errorf("size must be a number or expression, got %T", v)
	}
	return nil
}

// Eval evaluates the expression, which must produce a positive whole number.
func (s SizeExpr) Eval() (int, error) {
	text := strings.TrimSpace(string(s))
	if text == "" {
		return 0, fmt.Errorf("empty size")
	}

	expr, err := govaluate.NewEvaluableExpression(text)
	if err != nil {
		return 0, fmt.Errorf("invalid size expression %q: %w", text, err)
	}
	result, err := expr.Evaluate(nil)
	if err != nil {
		return 0, fmt.Errorf("evaluating size %q: %w", text, err)
	}

	f, ok := result.(float64)
	if !ok {
		return 0, fmt.Errorf("size %q is not numeric (got %T)", text, result)
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("size %q = %g is not a whole number of pixels", text, f)
	}
	if f < 1 || f > MaxSize {
		return 0, fmt.Errorf("size %q = %g outside 1..%d", text, f, MaxSize)
	}
	return int(f), nil
}
