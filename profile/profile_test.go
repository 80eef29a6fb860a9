package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantumauth-io/quantum-go-cryptosvc/services"
)

func TestPrecedence(t *testing.T) {
	for _, file := range []string{"precedence.yaml", "precedence.hcl"} {
		t.Run(file, func(t *testing.T) {
			p, err := Load(filepath.Join("testdata", file))
			require.NoError(t, err)
			assert.Equal(t, "precedence", p.Name)

			resolved, err := p.Resolve()
			require.NoError(t, err)
			require.Len(t, resolved, len(services.Catalogue()))

			// family over default
			assert.True(t, resolved[services.HashSHA256])
			assert.True(t, resolved[services.TlsClient])
			assert.False(t, resolved[services.AesGcmSeal])
			// service over family
			assert.False(t, resolved[services.HashSHA1])
			assert.False(t, resolved[services.TlsClose])
			// service over default
			assert.True(t, resolved[services.RandomBytes])
			assert.False(t, resolved[services.RandomTpmBytes])
		})
	}
}

func TestUnknownNames(t *testing.T) {
	tests := []struct {
		file string
		want string
	}{
		{"unknown_service.yaml", `unknown service "hashsha0"`},
		{"unknown_family.toml", `unknown family "quantum"`},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			p, err := Load(filepath.Join("testdata", tt.file))
			require.NoError(t, err)
			_, err = p.Resolve()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestHCLEnvironment(t *testing.T) {
	path := filepath.Join("testdata", "env.hcl")

	t.Setenv("PROFILE_TEST_MD5", "on")
	p, err := Load(path)
	require.NoError(t, err)
	resolved, err := p.Resolve()
	require.NoError(t, err)
	assert.True(t, resolved[services.HashMD5])

	t.Setenv("PROFILE_TEST_MD5", "off")
	p, err = Load(path)
	require.NoError(t, err)
	resolved, err = p.Resolve()
	require.NoError(t, err)
	assert.False(t, resolved[services.HashMD5])
}

// unsetenv removes key for the duration of the test.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestShippedProfiles(t *testing.T) {
	unsetenv(t, "CRYPTOSVC_NO_TPM")
	tests := []struct {
		file    string
		enabled int
		check   func(t *testing.T, r map[services.Name]bool)
	}{
		{"default.yaml", len(services.Catalogue()) - 2, func(t *testing.T, r map[services.Name]bool) {
			assert.False(t, r[services.HashMD5])
			assert.False(t, r[services.HashSHA1])
			assert.True(t, r[services.HashSHA256])
		}},
		{"full.yaml", len(services.Catalogue()), nil},
		{"none.yaml", 0, nil},
		{"minimal.hcl", 7 + 3 + 2 + 3, func(t *testing.T, r map[services.Name]bool) {
			assert.True(t, r[services.RandomTpmBytes])
			assert.False(t, r[services.TlsClient])
			assert.False(t, r[services.AesCbcEncrypt])
		}},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			p, err := Load(filepath.Join("..", "profiles", tt.file))
			require.NoError(t, err)
			r, err := p.Resolve()
			require.NoError(t, err)

			n := 0
			for _, on := range r {
				if on {
					n++
				}
			}
			assert.Equal(t, tt.enabled, n)
			if tt.check != nil {
				tt.check(t, r)
			}
		})
	}
}

func TestHCLLookupDefault(t *testing.T) {
	path := filepath.Join("..", "profiles", "minimal.hcl")

	unsetenv(t, "CRYPTOSVC_NO_TPM")
	p, err := Load(path)
	require.NoError(t, err)
	resolved, err := p.Resolve()
	require.NoError(t, err)
	assert.True(t, resolved[services.RandomTpmBytes])

	t.Setenv("CRYPTOSVC_NO_TPM", "1")
	p, err = Load(path)
	require.NoError(t, err)
	resolved, err = p.Resolve()
	require.NoError(t, err)
	assert.False(t, resolved[services.RandomTpmBytes])
	assert.True(t, resolved[services.RandomBytes])
}

func TestLoadDefaultsNameToFile(t *testing.T) {
	p, err := Load(filepath.Join("testdata", "precedence.hcl"))
	require.NoError(t, err)
	assert.Equal(t, "precedence", p.Name)
}

func TestLoadRejectsUnknownFormat(t *testing.T) {
	_, err := Load("profile.ini")
	assert.Error(t, err)
}

func TestSummary(t *testing.T) {
	r := map[services.Name]bool{services.HashSHA256: true, services.HashMD5: false}
	assert.Equal(t, "profile x: 1 of 67 services enabled", Summary("x", r))
}
