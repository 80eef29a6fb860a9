package primitives

import "crypto/x509"

func X509ParseCertificate(der []byte) (*x509.Certificate, error) {
	return x509.ParseCertificate(der)
}

// X509GetSubjectName returns the DER encoded subject.
func X509GetSubjectName(der []byte) ([]byte, error) {
	cert, err := x509.ParseCertificate(der)
	if err != nil {
		return nil, err
	}
	return cert.RawSubject, nil
}

// X509VerifyCert reports whether certDER is signed by the key in caDER. It
// checks the signature only, not validity periods or chains.
func X509VerifyCert(certDER, caDER []byte) bool {
	cert, err := x509.ParseCertificate(certDER)
	if err != nil {
		return false
	}
	ca, err := x509.ParseCertificate(caDER)
	if err != nil {
		return false
	}
	return cert.CheckSignatureFrom(ca) == nil
}
