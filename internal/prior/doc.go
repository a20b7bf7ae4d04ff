// Package prior provides the concrete prior families — Uniform, Normal,
// and LinearExp — plus a generic user-prior constructor. Each family is a
// ParamSpec pairing a density Function spec with a sampler, both built on
// the dist package and both accepting scalar or elementwise-vector
// hyperparameters (Normal additionally accepts a full covariance matrix).
//
// Hyperparameters may themselves be specs or instances, which is how
// compound priors are declared: Uniform(Normal(0, 1, 0), 5, 0) gives a
// uniform prior whose lower bound is itself estimated.
package prior
