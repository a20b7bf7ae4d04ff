// Package dist adapts the gonum distribution library to the engine's
// broadcasting conventions: hyperparameters and values may be scalars,
// elementwise vectors, or (for the normal family) a full covariance matrix.
//
// Uniform densities are elementwise, so a vector value yields a vector of
// per-component densities. Normal densities over vector values are joint:
// a single scalar density is returned, built from distmv with a covariance
// of sigma^2*I (scalar sigma), diag(sigma^2) (vector sigma), or sigma
// itself (matrix sigma).
//
// Arguments malformed beyond the checks here propagate gonum's behavior
// unchanged; there is no translation layer.
package dist
