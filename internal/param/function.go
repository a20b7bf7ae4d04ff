package param

import (
	"fmt"
	"sort"
	"strings"
)

// Values is a flat mapping from fully-qualified parameter names to their
// current values. It is supplied externally per evaluation or sampling call;
// the graph itself never stores values.
type Values map[string]any

// Kwargs maps keyword slot names to bindings. A binding may be a spec
// (*ParamSpec, *ConstSpec, *FuncSpec), an already-built instance
// (*Parameter, *Constant, *Function), or a literal value.
type Kwargs map[string]any

// CallFunc is the invocation signature shared by wrapped callables and
// substituted functions such as samplers: positional arguments plus the
// resolved keyword set.
type CallFunc func(args []any, kw map[string]any) (any, error)

// Callable couples a Go function with its declared slot names. Args are the
// required positional slots, Keys the keyword slots. During evaluation every
// resolved key that is not declared here is pruned, except for the
// pass-through allow-list.
type Callable struct {
	Args []string
	Keys []string
	Fn   CallFunc
}

// passthrough lists keys forwarded to any callable regardless of its
// declared slots: the selection mask, the vector-size hint for samplers,
// and the ambient target object.
var passthrough = map[string]bool{
	"mask":   true,
	"size":   true,
	"target": true,
}

func (c *Callable) declares(key string) bool {
	for _, a := range c.Args {
		if a == key {
			return true
		}
	}
	for _, k := range c.Keys {
		if k == key {
			return true
		}
	}
	return false
}

// FuncSpec is an immutable, uninstantiated template for a Function node:
// a callable plus keyword bindings. The same spec may be instantiated many
// times under different names.
type FuncSpec struct {
	call   *Callable
	name   string // intrinsic name, may be empty
	kwargs Kwargs
	order  []string
}

// NewFuncSpec builds a function spec from a callable, an intrinsic name,
// and keyword bindings. Binding keys are ordered deterministically so that
// instantiation and flattening are reproducible.
func NewFuncSpec(call *Callable, name string, kwargs Kwargs) *FuncSpec {
	order := make([]string, 0, len(kwargs))
	for k := range kwargs {
		order = append(order, k)
	}
	sort.Strings(order)
	return &FuncSpec{call: call, name: name, kwargs: kwargs, order: order}
}

// Instantiate binds the spec under ctxName and returns a Function instance.
// Each keyword binding is classified: uninstantiated specs are instantiated
// now with the generated fully-qualified name, already-built instances are
// stored unchanged (which is how one parameter is shared across call sites),
// and anything else becomes a literal default. The ambient target object is
// propagated to sub-function instantiations.
func (s *FuncSpec) Instantiate(ctxName string, target any) (*Function, error) {
	f := &Function{
		name:     QualifiedName(ctxName, s.name),
		call:     s.call,
		target:   target,
		spec:     s,
		params:   make(map[string]any),
		funcs:    make(map[string]*Function),
		defaults: make(map[string]any),
	}

	for _, kw := range s.order {
		qual := QualifiedName(ctxName, s.name, kw)

		switch arg := s.kwargs[kw].(type) {
		case *ParamSpec:
			p, err := arg.Instantiate(qual)
			if err != nil {
				return nil, fmt.Errorf("slot %q: %w", kw, err)
			}
			f.setParam(kw, p)
		case *ConstSpec:
			f.setParam(kw, arg.Instantiate(qual))
		case *Parameter:
			f.setParam(kw, arg)
		case *Constant:
			f.setParam(kw, arg)
		case *FuncSpec:
			sub, err := arg.Instantiate(qual, target)
			if err != nil {
				return nil, fmt.Errorf("slot %q: %w", kw, err)
			}
			f.funcs[kw] = sub
			f.mergeParams(sub)
		case *Function:
			f.funcs[kw] = arg
			f.mergeParams(arg)
		default:
			f.defaults[kw] = arg
		}
	}

	return f, nil
}

// Function is an instantiated graph node: a named callable whose keyword
// slots have been resolved into sub-parameters, sub-functions, and literal
// defaults. Topology is immutable after instantiation; only the externally
// supplied value context varies between calls.
type Function struct {
	name   string
	call   *Callable
	target any
	spec   *FuncSpec

	// params holds *Parameter and *Constant bindings keyed by slot name,
	// including those merged up from sub-functions. paramOrder preserves
	// deterministic insertion order for flattening.
	params     map[string]any
	paramOrder []string
	funcs      map[string]*Function
	defaults   map[string]any
}

// Name returns the node's fully-qualified name.
func (f *Function) Name() string { return f.name }

// Bind implements the idempotent rebinding contract: an already-built
// Function asked to bind to a new name returns itself unchanged.
func (f *Function) Bind(string) *Function { return f }

func (f *Function) setParam(key string, p any) {
	if _, ok := f.params[key]; !ok {
		f.paramOrder = append(f.paramOrder, key)
	}
	f.params[key] = p
}

// mergeParams lifts a sub-function's parameter bindings into this node so
// that flattening and the sampling driver can discover them.
func (f *Function) mergeParams(sub *Function) {
	for _, key := range sub.paramOrder {
		f.setParam(key, sub.params[key])
	}
}

func (f *Function) bindsKey(key string) bool {
	_, ok := f.spec.kwargs[key]
	return ok
}

// Evaluate resolves the node's keyword slots against ctx and invokes the
// wrapped callable with the given positional arguments.
func (f *Function) Evaluate(ctx Values, args ...any) (any, error) {
	return f.eval(f.call.Fn, ctx, nil, args)
}

// EvaluateWith behaves like Evaluate but substitutes fn for the wrapped
// callable and seeds the resolution with extra per-slot overrides. This is
// the sampler path: the substituted function receives exactly the resolved
// hyperparameters the density function would have received.
func (f *Function) EvaluateWith(fn CallFunc, ctx Values, overrides Kwargs, args ...any) (any, error) {
	return f.eval(fn, ctx, overrides, args)
}

// eval resolves each declared keyword slot in priority order: an explicit
// override wins outright; a sub-parameter slot takes its context value, or
// its constant value; a literal default applies next; a sub-function slot is
// evaluated recursively, forwarded only the overrides it itself declares
// plus the full context. Unresolved slots fall through to the callable's own
// defaults. Keys not declared by the callable are pruned, except the
// pass-through allow-list.
func (f *Function) eval(fn CallFunc, ctx Values, overrides Kwargs, args []any) (any, error) {
	resolved := make(map[string]any, len(f.spec.order)+len(overrides))
	for k, v := range overrides {
		resolved[k] = v
	}

	for _, kw := range f.spec.order {
		if _, ok := resolved[kw]; ok {
			continue
		}
		if bound, ok := f.params[kw]; ok {
			switch p := bound.(type) {
			case *Parameter:
				if v, ok := ctx[p.name]; ok {
					resolved[kw] = v
				}
			case *Constant:
				if v, ok := ctx[p.name]; ok {
					resolved[kw] = v
				} else {
					resolved[kw] = p.value
				}
			}
		} else if v, ok := f.defaults[kw]; ok {
			resolved[kw] = v
		} else if sub, ok := f.funcs[kw]; ok {
			subOver := make(Kwargs)
			for k, v := range resolved {
				if sub.bindsKey(k) {
					subOver[k] = v
				}
			}
			v, err := sub.eval(sub.call.Fn, ctx, subOver, nil)
			if err != nil {
				return nil, fmt.Errorf("sub-function %q: %w", sub.name, err)
			}
			resolved[kw] = v
		}
	}

	// literal defaults added after construction may introduce keys beyond
	// the original binding set, e.g. a mask or vector size
	for k, v := range f.defaults {
		if _, ok := resolved[k]; !ok {
			resolved[k] = v
		}
	}

	if f.target != nil {
		if _, ok := resolved["target"]; !ok {
			resolved["target"] = f.target
		}
	}

	final := make(map[string]any, len(resolved))
	for k, v := range resolved {
		if f.call.declares(k) || passthrough[k] {
			final[k] = v
		}
	}

	return fn(args, final)
}

// AddKwarg augments the literal-default map after construction. It is used
// to inject context known only at a later call site, such as a vector size.
func (f *Function) AddKwarg(kw Kwargs) {
	for k, v := range kw {
		f.defaults[k] = v
	}
}

// Params returns the flattened free parameters of this node: the recursive
// parameters of every non-constant sub-parameter, in deterministic order.
// Duplicates from shared parameters are permitted here; deduplication is
// the sampling driver's job.
func (f *Function) Params() []*Parameter {
	var out []*Parameter
	for _, key := range f.paramOrder {
		if p, ok := f.params[key].(*Parameter); ok {
			out = append(out, p.Params()...)
		}
	}
	return out
}

func (f *Function) String() string {
	names := make([]string, 0, len(f.paramOrder))
	for _, p := range f.Params() {
		names = append(names, p.String())
	}
	return fmt.Sprintf("%s(%s)", f.name, strings.Join(names, ", "))
}

// Lifted is the dual-use calling convention produced by Lift.
type Lifted func(args []any, kw Kwargs) (any, error)

// Lift wraps an ordinary callable so that one call syntax serves both
// "compute now" and "declare a parameterized computation": when every
// positional slot is supplied and every keyword binding is a plain value,
// the callable is invoked immediately; when a positional slot is missing or
// any binding is a spec or instance, the call instead returns a new
// *FuncSpec capturing the keyword bindings for later instantiation.
func Lift(call *Callable, name string) Lifted {
	return func(args []any, kw Kwargs) (any, error) {
		supplied := make(map[string]bool, len(args)+len(kw))
		for i := range args {
			if i < len(call.Args) {
				supplied[call.Args[i]] = true
			}
		}
		for k := range kw {
			supplied[k] = true
		}

		deferred := false
		for _, a := range call.Args {
			if !supplied[a] {
				deferred = true
			}
		}
		for _, v := range kw {
			switch v.(type) {
			case *ParamSpec, *ConstSpec, *Parameter, *Constant, *FuncSpec, *Function:
				deferred = true
			}
		}

		if deferred {
			return NewFuncSpec(call, name, kw), nil
		}
		return call.Fn(args, kw)
	}
}
