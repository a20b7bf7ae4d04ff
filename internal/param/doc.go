// Package param is the computation-graph core of the engine. It provides
// named random variables (Parameter), fixed non-fittable values (Constant),
// and callable graph nodes (Function) whose keyword slots are bound to
// sub-parameters, sub-functions, or literal defaults.
//
// Everything follows a two-phase spec/instance protocol: immutable specs
// (ParamSpec, ConstSpec, FuncSpec) are defined once at model-definition time
// and are reusable; instantiating a spec binds it to a concrete
// fully-qualified name and recursively instantiates its bindings, generating
// names top-down. After instantiation the graph topology is immutable and is
// evaluated repeatedly (density, sampling) against flat name-to-value
// contexts supplied per call.
//
// The package performs no logging and owns no randomness: samplers receive
// an explicit *rand.Rand so callers control seeding.
package param
