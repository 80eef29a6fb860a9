// Package profile loads build profiles: the declarative description of which
// crypto services a binary carries. A profile is resolved into one boolean per
// catalogue service, which cmd/cryptogen turns into the enablement constants.
//
// Profiles are written in YAML, JSON or TOML (read through package config) or
// in HCL. HCL profiles may reference environment variables through the env
// object, e.g. `HashMD5 = env.LEGACY_MD5 == "1"`. A variable that may be unset
// is read with lookup, e.g. `lookup(env, "LEGACY_MD5", "") == "1"`.
package profile

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/pkg/errors"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"

	"github.com/quantumauth-io/quantum-go-cryptosvc/config"
	"github.com/quantumauth-io/quantum-go-cryptosvc/services"
)

const envPrefix = "CRYPTOGEN_PROFILE"

// Profile is the parsed form of a profile file. Entries in Services win over
// entries in Families, which win over DefaultEnabled.
type Profile struct {
	Name           string          `mapstructure:"name" structs:"name" hcl:"name,optional"`
	DefaultEnabled bool            `mapstructure:"default_enabled" structs:"default_enabled" hcl:"default_enabled,optional"`
	Families       map[string]bool `mapstructure:"families" structs:"families" hcl:"families,optional"`
	Services       map[string]bool `mapstructure:"services" structs:"services" hcl:"services,optional"`
}

// Load reads a profile, choosing the decoder from the file extension. A
// profile without a name is named after its file.
func Load(path string) (*Profile, error) {
	var (
		p   *Profile
		err error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		p, err = LoadHCL(path)
	case ".yaml", ".yml", ".json", ".toml":
		p, err = config.ParseFile[Profile](path, config.WithEnvPrefix(envPrefix))
	default:
		return nil, errors.Errorf("unsupported profile format %q", filepath.Ext(path))
	}
	if err != nil {
		return nil, err
	}
	if p.Name == "" {
		p.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return p, nil
}

// LoadHCL decodes an HCL profile with the process environment in scope.
func LoadHCL(path string) (*Profile, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, errors.Wrapf(diags, "failed to parse %s", path)
	}

	var p Profile
	if diags := gohcl.DecodeBody(file.Body, evalContext(), &p); diags.HasErrors() {
		return nil, errors.Wrapf(diags, "failed to decode %s", path)
	}
	return &p, nil
}

func evalContext() *hcl.EvalContext {
	env := make(map[string]cty.Value)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok && k != "" {
			env[k] = cty.StringVal(v)
		}
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(env),
		},
		Functions: map[string]function.Function{
			"lookup": stdlib.LookupFunc,
		},
	}
}

// Resolve returns the enablement of every catalogue service. Service and
// family names are matched case-insensitively; unknown names are an error.
func (p *Profile) Resolve() (map[services.Name]bool, error) {
	families := make(map[services.Family]bool, len(p.Families))
	for _, key := range sortedKeys(p.Families) {
		f := services.Family(strings.ToLower(key))
		if !services.IsFamily(f) {
			return nil, errors.Errorf("profile %s: unknown family %q", p.Name, key)
		}
		families[f] = p.Families[key]
	}

	byLower := make(map[string]services.Name, len(services.Catalogue()))
	for _, d := range services.Catalogue() {
		byLower[strings.ToLower(string(d.Name))] = d.Name
	}
	overrides := make(map[services.Name]bool, len(p.Services))
	for _, key := range sortedKeys(p.Services) {
		name, ok := byLower[strings.ToLower(key)]
		if !ok {
			return nil, errors.Errorf("profile %s: unknown service %q", p.Name, key)
		}
		overrides[name] = p.Services[key]
	}

	out := make(map[services.Name]bool, len(services.Catalogue()))
	for _, d := range services.Catalogue() {
		on := p.DefaultEnabled
		if v, ok := families[d.Family]; ok {
			on = v
		}
		if v, ok := overrides[d.Name]; ok {
			on = v
		}
		out[d.Name] = on
	}
	return out, nil
}

// Summary is a one-line description of a resolved profile.
func Summary(name string, resolved map[services.Name]bool) string {
	n := 0
	for _, on := range resolved {
		if on {
			n++
		}
	}
	return fmt.Sprintf("profile %s: %d of %d services enabled", name, n, len(services.Catalogue()))
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
