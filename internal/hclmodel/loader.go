package hclmodel

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/priorgrid/internal/ctxlog"
	"github.com/vk/priorgrid/internal/param"
	"github.com/vk/priorgrid/internal/prior"
)

// Loader parses HCL model files into instantiated root parameters.
type Loader struct {
	parser *hclparse.Parser
}

// NewLoader creates a Loader with a fresh HCL parser.
func NewLoader() *Loader {
	return &Loader{parser: hclparse.NewParser()}
}

// LoadFile reads and parses one model file, returning the instantiated
// root parameters in declaration order.
func (l *Loader) LoadFile(ctx context.Context, path string) ([]*param.Parameter, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading model file: %w", err)
	}
	return l.Load(ctx, src, path)
}

// Load parses model source under the given filename.
func (l *Loader) Load(ctx context.Context, src []byte, filename string) ([]*param.Parameter, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Parsing model source.", "filename", filename)

	file, diags := l.parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, diags
	}

	var cfg ModelConfig
	if diags := gohcl.DecodeBody(file.Body, nil, &cfg); diags.HasErrors() {
		return nil, diags
	}

	roots := make([]*param.Parameter, 0, len(cfg.Parameters))
	for _, block := range cfg.Parameters {
		spec, err := buildSpec(block.Prior, block.Size, block.Hypers, block.Rest)
		if err != nil {
			return nil, fmt.Errorf("parameter %q: %w", block.Name, err)
		}
		p, err := spec.Instantiate(block.Name)
		if err != nil {
			return nil, err
		}
		logger.Debug("Instantiated parameter.", "name", p.Name(), "prior", block.Prior)
		roots = append(roots, p)
	}
	return roots, nil
}

// buildSpec translates one block into a parameter spec. Literal attributes
// and nested hyper blocks both land in the prior family's keyword set; the
// engine's instantiation then names hyperparameters top-down.
func buildSpec(family string, size int, hypers []*HyperBlock, rest hcl.Body) (*param.ParamSpec, error) {
	kwargs, err := bodyAttributes(rest)
	if err != nil {
		return nil, err
	}
	if kwargs == nil {
		kwargs = make(map[string]any)
	}
	for _, h := range hypers {
		if _, dup := kwargs[h.Slot]; dup {
			return nil, fmt.Errorf("slot %q bound both as attribute and hyper block", h.Slot)
		}
		sub, err := buildSpec(h.Prior, h.Size, h.Hypers, h.Rest)
		if err != nil {
			return nil, fmt.Errorf("hyper %q: %w", h.Slot, err)
		}
		kwargs[h.Slot] = sub
	}

	switch strings.ToLower(family) {
	case "uniform":
		if err := requireSlots(kwargs, "pmin", "pmax"); err != nil {
			return nil, err
		}
		return prior.Uniform(kwargs["pmin"], kwargs["pmax"], size), nil
	case "normal":
		mu, ok := kwargs["mu"]
		if !ok {
			mu = 0.0
		}
		sigma, ok := kwargs["sigma"]
		if !ok {
			sigma = 1.0
		}
		return prior.Normal(mu, sigma, size), nil
	case "linearexp":
		if err := requireSlots(kwargs, "pmin", "pmax"); err != nil {
			return nil, err
		}
		return prior.LinearExp(kwargs["pmin"], kwargs["pmax"], size), nil
	default:
		return nil, fmt.Errorf("unknown prior family %q", family)
	}
}

func requireSlots(kwargs map[string]any, slots ...string) error {
	for _, s := range slots {
		if _, ok := kwargs[s]; !ok {
			return fmt.Errorf("missing required argument %q", s)
		}
	}
	return nil
}
