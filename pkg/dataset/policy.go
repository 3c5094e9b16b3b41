package dataset

import (
	"context"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/open-policy-agent/opa/v1/rego"
)

// Policy gates which labeled regions make it into an exported dataset. A
// nil Policy admits everything; a loaded policy denies a region unless
// data.export.allow evaluates to true for it.
type Policy struct {
	query *rego.PreparedEvalQuery
}

// LoadPolicy loads all Rego files from policyDir and prepares the export
// query. Returns nil when the directory holds no policy files.
func LoadPolicy(ctx context.Context, policyDir string) (*Policy, error) {
	files, err := filepath.Glob(filepath.Join(policyDir, "*.rego"))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to glob policy files")
	}
	if len(files) == 0 {
		return nil, nil
	}

	modules := make(map[string]string, len(files))
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read policy file", goerr.V("path", file))
		}
		modules[file] = string(data)
	}

	return NewPolicy(ctx, modules)
}

// NewPolicy prepares an export policy from named Rego modules
func NewPolicy(ctx context.Context, modules map[string]string) (*Policy, error) {
	options := []func(*rego.Rego){rego.Query("data.export")}
	for name, src := range modules {
		options = append(options, rego.Module(name, src))
	}

	query, err := rego.New(options...).PrepareForEval(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to prepare export policy")
	}

	return &Policy{query: &query}, nil
}

// Allow evaluates the policy for one region input
func (p *Policy) Allow(ctx context.Context, input any) (bool, error) {
	if p == nil || p.query == nil {
		return true, nil
	}

	rs, err := p.query.Eval(ctx, rego.EvalInput(input))
	if err != nil {
		return false, goerr.Wrap(err, "failed to evaluate export policy")
	}
	if len(rs) == 0 || len(rs[0].Expressions) == 0 {
		return false, nil
	}

	doc, ok := rs[0].Expressions[0].Value.(map[string]any)
	if !ok {
		return false, nil
	}

	allow, _ := doc["allow"].(bool)
	return allow, nil
}
