package primitives

import (
	"time"

	"github.com/pquerna/otp/totp"
)

// TotpGenerateCode returns the RFC 6238 code for a base32 secret at t.
func TotpGenerateCode(secret string, t time.Time) (string, error) {
	return totp.GenerateCode(secret, t)
}

func TotpValidate(code, secret string) bool {
	return totp.Validate(code, secret)
}
