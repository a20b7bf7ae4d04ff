package hclmodel

import "github.com/hashicorp/hcl/v2"

// ModelConfig is the top-level structure of a model file, containing all
// declared parameters.
type ModelConfig struct {
	Parameters []*ParameterBlock `hcl:"parameter,block"`
}

// ParameterBlock declares a named parameter and its prior family. The
// remaining body carries the family's arguments (pmin, pmax, mu, sigma, …)
// as plain attributes.
type ParameterBlock struct {
	Name   string        `hcl:"name,label"`
	Prior  string        `hcl:"prior"`
	Size   int           `hcl:"size,optional"`
	Hypers []*HyperBlock `hcl:"hyper,block"`
	Rest   hcl.Body      `hcl:",remain"`
}

// HyperBlock binds one prior argument to its own hyperprior. Hyper blocks
// nest, so a hyperparameter can itself carry hyperparameters.
type HyperBlock struct {
	Slot   string        `hcl:"slot,label"`
	Prior  string        `hcl:"prior"`
	Size   int           `hcl:"size,optional"`
	Hypers []*HyperBlock `hcl:"hyper,block"`
	Rest   hcl.Body      `hcl:",remain"`
}
