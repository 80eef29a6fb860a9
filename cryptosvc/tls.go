package cryptosvc

import (
	"context"
	"crypto/tls"
	"net"

	"github.com/quantumauth-io/quantum-go-cryptosvc/enablement"
	"github.com/quantumauth-io/quantum-go-cryptosvc/primitives"
	"github.com/quantumauth-io/quantum-go-cryptosvc/services"
)

// TLS services wrap crypto/tls. A Config is owned by the caller and must not
// be mutated once a connection using it has started.

func TlsConfigNew(minVersion, maxVersion uint16) *tls.Config {
	if !enablement.TlsConfigNew {
		notEnabled(services.TlsConfigNew)
		return nil
	}
	return primitives.TlsConfigNew(minVersion, maxVersion)
}

func TlsSetCipherList(cfg *tls.Config, suites []uint16) error {
	if !enablement.TlsSetCipherList {
		notEnabled(services.TlsSetCipherList)
		return unsupported(services.TlsSetCipherList)
	}
	return primitives.TlsSetCipherList(cfg, suites)
}

// TlsSetHostName sets the SNI name. It has no result, so a compiled out call
// only reports.
func TlsSetHostName(cfg *tls.Config, name string) {
	if !enablement.TlsSetHostName {
		notEnabled(services.TlsSetHostName)
		return
	}
	primitives.TlsSetHostName(cfg, name)
}

func TlsSetCertificate(cfg *tls.Config, certPEM, keyPEM []byte) error {
	if !enablement.TlsSetCertificate {
		notEnabled(services.TlsSetCertificate)
		return unsupported(services.TlsSetCertificate)
	}
	return primitives.TlsSetCertificate(cfg, certPEM, keyPEM)
}

func TlsSetRootCAs(cfg *tls.Config, pemCerts []byte) error {
	if !enablement.TlsSetRootCAs {
		notEnabled(services.TlsSetRootCAs)
		return unsupported(services.TlsSetRootCAs)
	}
	return primitives.TlsSetRootCAs(cfg, pemCerts)
}

func TlsClient(conn net.Conn, cfg *tls.Config) *tls.Conn {
	if !enablement.TlsClient {
		notEnabled(services.TlsClient)
		return nil
	}
	return primitives.TlsClient(conn, cfg)
}

func TlsServer(conn net.Conn, cfg *tls.Config) *tls.Conn {
	if !enablement.TlsServer {
		notEnabled(services.TlsServer)
		return nil
	}
	return primitives.TlsServer(conn, cfg)
}

// TlsDoHandshake runs the handshake under ctx.
func TlsDoHandshake(ctx context.Context, conn *tls.Conn) error {
	if !enablement.TlsDoHandshake {
		notEnabled(services.TlsDoHandshake)
		return unsupported(services.TlsDoHandshake)
	}
	return primitives.TlsDoHandshake(ctx, conn)
}

func TlsIsHandshakeDone(conn *tls.Conn) bool {
	if !enablement.TlsIsHandshakeDone {
		notEnabled(services.TlsIsHandshakeDone)
		return false
	}
	return primitives.TlsIsHandshakeDone(conn)
}

func TlsGetVersion(conn *tls.Conn) uint16 {
	if !enablement.TlsGetVersion {
		notEnabled(services.TlsGetVersion)
		return 0
	}
	return primitives.TlsGetVersion(conn)
}

func TlsGetCurrentCipher(conn *tls.Conn) uint16 {
	if !enablement.TlsGetCurrentCipher {
		notEnabled(services.TlsGetCurrentCipher)
		return 0
	}
	return primitives.TlsGetCurrentCipher(conn)
}

func TlsClose(conn *tls.Conn) error {
	if !enablement.TlsClose {
		notEnabled(services.TlsClose)
		return unsupported(services.TlsClose)
	}
	return primitives.TlsClose(conn)
}
