package cryptosvc

import (
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantumauth-io/quantum-go-cryptosvc/enablement"
	"github.com/quantumauth-io/quantum-go-cryptosvc/primitives"
	"github.com/quantumauth-io/quantum-go-cryptosvc/services"
)

func TestHashSHA256Enabled(t *testing.T) {
	if !enablement.HashSHA256 {
		t.Skip("HashSHA256 is compiled out")
	}
	logs := observe(t, ModeRelease)

	want := sha256.Sum256([]byte("abc"))
	assert.Equal(t, want[:], HashSHA256([]byte("abc")))
	assert.Zero(t, logs.Len(), "enabled services must not report")
}

func TestHashSHA1Disabled(t *testing.T) {
	if enablement.HashSHA1 {
		t.Skip("HashSHA1 is compiled in")
	}
	logs := observe(t, ModeRelease)

	assert.Nil(t, HashSHA1([]byte("abc")))
	require.Equal(t, 1, logs.Len())

	entry := logs.All()[0]
	assert.Equal(t, "Function HashSHA1() is not enabled", entry.Message)
	fields := entry.ContextMap()
	assert.Equal(t, "test", fields[SLcomponent])
	assert.Equal(t, "HashSHA1", fields[SLservice])
	assert.NotEmpty(t, fields[SLeventID])
}

func TestForwardingMatchesImplementation(t *testing.T) {
	logs := observe(t, ModeRelease)
	data := []byte("the quick brown fox")

	tests := []struct {
		name services.Name
		got  func() []byte
		want []byte
	}{
		{services.HashSHA384, func() []byte { return HashSHA384(data) }, primitives.HashSHA384(data)},
		{services.HashSHA512, func() []byte { return HashSHA512(data) }, primitives.HashSHA512(data)},
		{services.HashSHA3_256, func() []byte { return HashSHA3_256(data) }, primitives.HashSHA3_256(data)},
		{services.HashKeccak256, func() []byte { return HashKeccak256(data) }, primitives.HashKeccak256(data)},
		{services.HashBLAKE2b256, func() []byte { return HashBLAKE2b256(data) }, primitives.HashBLAKE2b256(data)},
		{services.HmacSHA256, func() []byte { return HmacSHA256([]byte("k"), data) }, primitives.HmacSHA256([]byte("k"), data)},
		{services.HkdfSHA256Extract, func() []byte { return HkdfSHA256Extract(data, nil) }, primitives.HkdfSHA256Extract(data, nil)},
	}
	for _, tt := range tests {
		t.Run(string(tt.name), func(t *testing.T) {
			if !enablement.IsEnabled(tt.name) {
				t.Skipf("%s is compiled out", tt.name)
			}
			assert.Equal(t, tt.want, tt.got())
		})
	}
	assert.Zero(t, logs.Len())
}

func TestImplementationErrorsPassThrough(t *testing.T) {
	if !enablement.AesGcmSeal || !enablement.AesGcmOpen {
		t.Skip("AES-GCM is compiled out")
	}
	logs := observe(t, ModeRelease)

	key := make([]byte, 32)
	nonce := make([]byte, 12)
	sealed, err := AesGcmSeal(key, nonce, []byte("payload"), nil)
	require.NoError(t, err)

	sealed[0] ^= 0xff
	_, err = AesGcmOpen(key, nonce, sealed, nil)
	assert.Same(t, primitives.ErrDecryptionFailed, err)

	_, err = AesGcmSeal(key[:7], nonce, []byte("payload"), nil)
	assert.ErrorIs(t, err, primitives.ErrInvalidKeySize)
	assert.NotErrorIs(t, err, ErrUnsupported)
	assert.Zero(t, logs.Len())
}

func TestTlsSetHostNameForwards(t *testing.T) {
	if !enablement.TlsConfigNew || !enablement.TlsSetHostName {
		t.Skip("TLS config services are compiled out")
	}
	cfg := TlsConfigNew(0, 0)
	require.NotNil(t, cfg)
	TlsSetHostName(cfg, "example.com")
	assert.Equal(t, "example.com", cfg.ServerName)
}
