// Package hclmodel loads declarative model definitions from HCL files and
// translates them into instantiated parameters.
//
// A model file declares parameter blocks whose attributes are the prior
// family's arguments; nested hyper blocks bind an argument to its own
// hyperprior, recursively:
//
//	parameter "efac" {
//	  prior = "uniform"
//	  pmin  = 0.1
//	  pmax  = 5.0
//	}
//
//	parameter "x" {
//	  prior = "normal"
//	  sigma = 1
//	  hyper "mu" {
//	    prior = "uniform"
//	    pmin  = -1
//	    pmax  = 1
//	  }
//	}
//
// Instantiation names hyperparameters top-down, so the hyper block above
// produces a parameter named "x_mu".
package hclmodel
