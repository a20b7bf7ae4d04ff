// Package app assembles the application: logger construction, validated
// configuration, and the run loop that loads a declarative model and
// streams joint prior draws.
package app
