package primitives

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"net"
)

// TlsConfigNew returns a fresh config bounded to [minVersion, maxVersion].
// Zero leaves a bound at the crypto/tls default.
func TlsConfigNew(minVersion, maxVersion uint16) *tls.Config {
	return &tls.Config{
		MinVersion: minVersion,
		MaxVersion: maxVersion,
	}
}

// TlsSetCipherList restricts TLS 1.0-1.2 suites. TLS 1.3 suites are not
// configurable in crypto/tls and are rejected here.
func TlsSetCipherList(cfg *tls.Config, suites []uint16) error {
	if cfg == nil {
		return ErrNilConfig
	}
	known := make(map[uint16]bool)
	for _, s := range tls.CipherSuites() {
		known[s.ID] = tls12Capable(s.SupportedVersions)
	}
	for _, s := range tls.InsecureCipherSuites() {
		known[s.ID] = tls12Capable(s.SupportedVersions)
	}
	for _, id := range suites {
		if !known[id] {
			return fmt.Errorf("%w: 0x%04x", ErrUnknownCipher, id)
		}
	}
	cfg.CipherSuites = append([]uint16(nil), suites...)
	return nil
}

func tls12Capable(versions []uint16) bool {
	for _, v := range versions {
		if v <= tls.VersionTLS12 {
			return true
		}
	}
	return false
}

// TlsSetHostName sets the SNI and verification name.
func TlsSetHostName(cfg *tls.Config, name string) {
	if cfg == nil {
		return
	}
	cfg.ServerName = name
}

func TlsSetCertificate(cfg *tls.Config, certPEM, keyPEM []byte) error {
	if cfg == nil {
		return ErrNilConfig
	}
	pair, err := tls.X509KeyPair(certPEM, keyPEM)
	if err != nil {
		return err
	}
	cfg.Certificates = append(cfg.Certificates, pair)
	return nil
}

func TlsSetRootCAs(cfg *tls.Config, pemCerts []byte) error {
	if cfg == nil {
		return ErrNilConfig
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pemCerts) {
		return ErrNoCertificates
	}
	cfg.RootCAs = pool
	return nil
}

func TlsClient(conn net.Conn, cfg *tls.Config) *tls.Conn {
	return tls.Client(conn, cfg)
}

func TlsServer(conn net.Conn, cfg *tls.Config) *tls.Conn {
	return tls.Server(conn, cfg)
}

func TlsDoHandshake(ctx context.Context, conn *tls.Conn) error {
	if conn == nil {
		return ErrNilConn
	}
	return conn.HandshakeContext(ctx)
}

func TlsIsHandshakeDone(conn *tls.Conn) bool {
	if conn == nil {
		return false
	}
	return conn.ConnectionState().HandshakeComplete
}

func TlsGetVersion(conn *tls.Conn) uint16 {
	if conn == nil {
		return 0
	}
	return conn.ConnectionState().Version
}

func TlsGetCurrentCipher(conn *tls.Conn) uint16 {
	if conn == nil {
		return 0
	}
	return conn.ConnectionState().CipherSuite
}

func TlsClose(conn *tls.Conn) error {
	if conn == nil {
		return ErrNilConn
	}
	return conn.Close()
}
