package hclmodel

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
)

// bodyAttributes evaluates the remaining attributes of a block body into
// the numeric forms the engine understands.
func bodyAttributes(body hcl.Body) (map[string]any, error) {
	if body == nil {
		return nil, nil
	}
	attrs, diags := body.JustAttributes()
	if diags.HasErrors() {
		return nil, diags
	}

	out := make(map[string]any, len(attrs))
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, diags
		}
		converted, err := ctyToGo(val)
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", name, err)
		}
		out[name] = converted
	}
	return out, nil
}

// ctyToGo converts an HCL attribute value into a float64, []float64, or
// [][]float64. Anything else is rejected; model files only carry numbers.
func ctyToGo(val cty.Value) (any, error) {
	ty := val.Type()
	switch {
	case ty == cty.Number:
		f, _ := val.AsBigFloat().Float64()
		return f, nil
	case ty.IsTupleType() || ty.IsListType():
		elems := val.AsValueSlice()
		if len(elems) > 0 && (elems[0].Type().IsTupleType() || elems[0].Type().IsListType()) {
			matrix := make([][]float64, len(elems))
			for i, row := range elems {
				converted, err := ctyToGo(row)
				if err != nil {
					return nil, err
				}
				vec, ok := converted.([]float64)
				if !ok {
					return nil, fmt.Errorf("row %d is not a numeric vector", i)
				}
				matrix[i] = vec
			}
			return matrix, nil
		}
		vec := make([]float64, len(elems))
		for i, e := range elems {
			if e.Type() != cty.Number {
				return nil, fmt.Errorf("element %d is not a number", i)
			}
			f, _ := e.AsBigFloat().Float64()
			vec[i] = f
		}
		return vec, nil
	default:
		return nil, fmt.Errorf("unsupported value type %s", ty.FriendlyName())
	}
}
