package primitives

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestX509(t *testing.T) {
	ca := selfSigned(t, "root")
	other := selfSigned(t, "other")

	cert, err := X509ParseCertificate(ca.der)
	require.NoError(t, err)
	assert.Equal(t, "root", cert.Subject.CommonName)

	subject, err := X509GetSubjectName(ca.der)
	require.NoError(t, err)
	assert.Equal(t, cert.RawSubject, subject)

	assert.True(t, X509VerifyCert(ca.der, ca.der))
	assert.False(t, X509VerifyCert(ca.der, other.der))
	assert.False(t, X509VerifyCert([]byte("junk"), ca.der))

	_, err = X509GetSubjectName([]byte("junk"))
	assert.Error(t, err)
}

// RFC 6238 appendix B, SHA-1, truncated to six digits.
func TestTotp(t *testing.T) {
	secret := "GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ"
	tests := []struct {
		unix int64
		want string
	}{
		{59, "287082"},
		{1111111109, "081804"},
	}
	for _, tt := range tests {
		code, err := TotpGenerateCode(secret, time.Unix(tt.unix, 0).UTC())
		require.NoError(t, err)
		assert.Equal(t, tt.want, code)
	}

	now, err := TotpGenerateCode(secret, time.Now())
	require.NoError(t, err)
	assert.True(t, TotpValidate(now, secret))
	assert.False(t, TotpValidate("abc", secret))

	_, err = TotpGenerateCode("not base32!", time.Now())
	assert.Error(t, err)
}
