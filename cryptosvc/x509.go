package cryptosvc

import (
	"crypto/x509"

	"github.com/quantumauth-io/quantum-go-cryptosvc/enablement"
	"github.com/quantumauth-io/quantum-go-cryptosvc/primitives"
	"github.com/quantumauth-io/quantum-go-cryptosvc/services"
)

func X509ParseCertificate(der []byte) (*x509.Certificate, error) {
	if !enablement.X509ParseCertificate {
		notEnabled(services.X509ParseCertificate)
		return nil, unsupported(services.X509ParseCertificate)
	}
	return primitives.X509ParseCertificate(der)
}

// X509GetSubjectName returns the DER encoded subject of the certificate.
func X509GetSubjectName(der []byte) ([]byte, error) {
	if !enablement.X509GetSubjectName {
		notEnabled(services.X509GetSubjectName)
		return nil, unsupported(services.X509GetSubjectName)
	}
	return primitives.X509GetSubjectName(der)
}

// X509VerifyCert reports whether certDER carries a valid signature from caDER.
func X509VerifyCert(certDER, caDER []byte) bool {
	if !enablement.X509VerifyCert {
		notEnabled(services.X509VerifyCert)
		return false
	}
	return primitives.X509VerifyCert(certDER, caDER)
}
