package cryptosvc

import (
	"time"

	"github.com/quantumauth-io/quantum-go-cryptosvc/enablement"
	"github.com/quantumauth-io/quantum-go-cryptosvc/primitives"
	"github.com/quantumauth-io/quantum-go-cryptosvc/services"
)

// TotpGenerateCode returns the RFC 6238 code of a base32 secret at t.
func TotpGenerateCode(secret string, t time.Time) (string, error) {
	if !enablement.TotpGenerateCode {
		notEnabled(services.TotpGenerateCode)
		return "", unsupported(services.TotpGenerateCode)
	}
	return primitives.TotpGenerateCode(secret, t)
}

func TotpValidate(code, secret string) bool {
	if !enablement.TotpValidate {
		notEnabled(services.TotpValidate)
		return false
	}
	return primitives.TotpValidate(code, secret)
}
