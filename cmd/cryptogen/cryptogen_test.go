package main

import (
	"bytes"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantumauth-io/quantum-go-cryptosvc/services"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	cmd := newRootCmd(out)
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetOut(out)
	cmd.SetErr(out)
	err := cmd.Execute()
	return out.String(), err
}

// constValues parses src and returns every constant of the first const block
// with its identifier value.
func constValues(t *testing.T, src []byte) map[string]string {
	t.Helper()
	file, err := parser.ParseFile(token.NewFileSet(), "flags_gen.go", src, 0)
	require.NoError(t, err)

	out := make(map[string]string)
	for _, decl := range file.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.CONST || !gd.Lparen.IsValid() {
			continue
		}
		for _, spec := range gd.Specs {
			vs := spec.(*ast.ValueSpec)
			out[vs.Names[0].Name] = vs.Values[0].(*ast.Ident).Name
		}
	}
	return out
}

func TestCommittedConstantsAreUpToDate(t *testing.T) {
	got, err := execute(t, "--profile", filepath.Join("..", "..", "profiles", "default.yaml"))
	require.NoError(t, err)

	want, err := os.ReadFile(filepath.Join("..", "..", "enablement", "flags_gen.go"))
	require.NoError(t, err)
	assert.Equal(t, string(want), got, "run go generate ./enablement")
}

func TestRenderAllDisabled(t *testing.T) {
	resolved := make(map[services.Name]bool)
	for _, name := range services.Names() {
		resolved[name] = false
	}
	src, err := render("none", resolved)
	require.NoError(t, err)

	consts := constValues(t, src)
	require.Len(t, consts, len(services.Catalogue()))
	for _, name := range services.Names() {
		assert.Equal(t, "false", consts[string(name)], name)
	}
	assert.Contains(t, string(src), `const Profile = "none"`)
	assert.Contains(t, string(src), "DO NOT EDIT")
}

func TestRenderKeepsCatalogueOrder(t *testing.T) {
	src, err := render("full", map[services.Name]bool{})
	require.NoError(t, err)

	last := -1
	for _, name := range services.Names() {
		idx := strings.Index(string(src), "\t"+string(name)+" ")
		require.Greater(t, idx, last, name)
		last = idx
	}
}

func TestWriteToFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "flags_gen.go")
	_, err := execute(t, "--profile", filepath.Join("..", "..", "profiles", "none.yaml"), "--out", out)
	require.NoError(t, err)

	src, err := os.ReadFile(out)
	require.NoError(t, err)
	for name, v := range constValues(t, src) {
		assert.Equal(t, "false", v, name)
	}
}

func TestList(t *testing.T) {
	out, err := execute(t, "--profile", filepath.Join("..", "..", "profiles", "default.yaml"), "--list")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, len(services.Catalogue())+3)
	assert.Contains(t, lines[0], "profile default: 65 of 67 services enabled")
	assert.Equal(t, []string{"0", "GetVersion", "-", "true"}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"2", "HashSHA1", "hash", "false"}, strings.Fields(lines[4]))
	assert.Equal(t, []string{"3", "HashSHA256", "hash", "true"}, strings.Fields(lines[5]))
}

func TestListHCLProfileWithCleanEnvironment(t *testing.T) {
	t.Setenv("CRYPTOSVC_NO_TPM", "")
	require.NoError(t, os.Unsetenv("CRYPTOSVC_NO_TPM"))

	out, err := execute(t, "--profile", filepath.Join("..", "..", "profiles", "minimal.hcl"), "--list")
	require.NoError(t, err)
	assert.Contains(t, out, "profile minimal: 15 of 67 services enabled")
	assert.Regexp(t, `RandomTpmBytes\s+random\s+true`, out)
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing profile flag", nil, `required flag(s) "profile" not set`},
		{"missing file", []string{"--profile", "nope.yaml"}, "failed to read nope.yaml"},
		{"unknown service", []string{"--profile", filepath.Join("..", "..", "profile", "testdata", "unknown_service.yaml")}, "unknown service"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
