// Package selection provides the masking wrapper that restricts a leaf
// callable's evaluation to a data subset. The engine treats masked
// callables opaquely: the "mask" keyword rides the evaluate pass-through
// allow-list and is consumed here.
package selection

import (
	"fmt"

	"github.com/vk/priorgrid/internal/param"
)

// Masked wraps c so that an optional boolean "mask" keyword restricts
// vector arguments to a data subset before invocation. Positional and
// keyword vectors whose length matches the mask are filtered; everything
// else passes through unchanged. Without a mask the wrapper is a no-op.
func Masked(c *param.Callable) *param.Callable {
	keys := c.Keys
	if !contains(keys, "mask") {
		keys = append(append([]string{}, c.Keys...), "mask")
	}

	return &param.Callable{
		Args: c.Args,
		Keys: keys,
		Fn: func(args []any, kw map[string]any) (any, error) {
			raw, ok := kw["mask"]
			if !ok {
				return c.Fn(args, kw)
			}
			mask, ok := raw.([]bool)
			if !ok {
				return nil, fmt.Errorf("selection: mask must be []bool, got %T", raw)
			}

			subArgs := make([]any, len(args))
			for i, a := range args {
				subArgs[i] = apply(a, mask)
			}
			subKw := make(map[string]any, len(kw))
			for k, v := range kw {
				if k == "mask" {
					continue
				}
				subKw[k] = apply(v, mask)
			}
			return c.Fn(subArgs, subKw)
		},
	}
}

// apply filters a []float64 of matching length down to the masked subset.
func apply(v any, mask []bool) any {
	vec, ok := v.([]float64)
	if !ok || len(vec) != len(mask) {
		return v
	}
	out := make([]float64, 0, len(vec))
	for i, keep := range mask {
		if keep {
			out = append(out, vec[i])
		}
	}
	return out
}

func contains(keys []string, key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}
