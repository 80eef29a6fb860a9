package cryptosvc

import (
	"context"
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rsa"
	"crypto/tls"
	"crypto/x509"
	"hash"
	"net"
	"reflect"
	"sync"
	"time"

	"github.com/cloudflare/circl/sign/ed448"

	"github.com/quantumauth-io/quantum-go-cryptosvc/enablement"
	"github.com/quantumauth-io/quantum-go-cryptosvc/services"
)

// Table is the service table: one entry per catalogue service in catalogue
// order, preceded by the version accessor. An entry is nil when its service
// is compiled out. The field order is pinned by testdata/table_layout.golden.
type Table struct {
	Version    uint64
	GetVersion func() uint64

	HashMD5        func(data []byte) []byte
	HashSHA1       func(data []byte) []byte
	HashSHA256     func(data []byte) []byte
	HashSHA384     func(data []byte) []byte
	HashSHA512     func(data []byte) []byte
	HashSHA256New  func() hash.Hash
	HashSHA3_256   func(data []byte) []byte
	HashKeccak256  func(data []byte) []byte
	HashBLAKE2b256 func(data []byte) []byte

	HmacSHA256       func(key, data []byte) []byte
	HmacSHA384       func(key, data []byte) []byte
	HmacSHA256Verify func(key, data, mac []byte) bool

	AesGcmSeal           func(key, nonce, plaintext, aad []byte) ([]byte, error)
	AesGcmOpen           func(key, nonce, ciphertext, aad []byte) ([]byte, error)
	AesCbcEncrypt        func(key, iv, plaintext []byte) ([]byte, error)
	AesCbcDecrypt        func(key, iv, ciphertext []byte) ([]byte, error)
	ChaCha20Poly1305Seal func(key, nonce, plaintext, aad []byte) ([]byte, error)
	ChaCha20Poly1305Open func(key, nonce, ciphertext, aad []byte) ([]byte, error)

	HkdfSHA256ExtractAndExpand func(secret, salt, info []byte, length int) ([]byte, error)
	HkdfSHA256Extract          func(secret, salt []byte) []byte
	HkdfSHA256Expand           func(prk, info []byte, length int) ([]byte, error)
	Pbkdf2SHA256               func(password, salt []byte, iterations, keyLen int) []byte
	Argon2idKey                func(password, salt []byte, time, memory uint32, threads uint8, keyLen uint32) []byte

	RandomBytes    func(n int) ([]byte, error)
	RandomTpmBytes func(n int) ([]byte, error)

	EcdsaP256GenerateKey func() (*ecdsa.PrivateKey, error)
	EcdsaP256Sign        func(priv *ecdsa.PrivateKey, digest []byte) ([]byte, error)
	EcdsaP256Verify      func(pub *ecdsa.PublicKey, digest, sig []byte) bool
	Ed25519GenerateKey   func() (ed25519.PublicKey, ed25519.PrivateKey, error)
	Ed25519Sign          func(priv ed25519.PrivateKey, message []byte) []byte
	Ed25519Verify        func(pub ed25519.PublicKey, message, sig []byte) bool
	Ed448GenerateKey     func() (ed448.PublicKey, ed448.PrivateKey, error)
	Ed448Sign            func(priv ed448.PrivateKey, message []byte, context string) []byte
	Ed448Verify          func(pub ed448.PublicKey, message, sig []byte, context string) bool
	X25519               func(scalar, point []byte) ([]byte, error)
	Secp256k1GenerateKey func() (*ecdsa.PrivateKey, error)
	Secp256k1Sign        func(digest []byte, priv *ecdsa.PrivateKey) ([]byte, error)
	Secp256k1Recover     func(digest, sig []byte) ([]byte, error)

	RsaPkcs1Sign   func(priv *rsa.PrivateKey, hash crypto.Hash, digest []byte) ([]byte, error)
	RsaPkcs1Verify func(pub *rsa.PublicKey, hash crypto.Hash, digest, sig []byte) bool
	RsaPssSign     func(priv *rsa.PrivateKey, hash crypto.Hash, digest []byte) ([]byte, error)
	RsaPssVerify   func(pub *rsa.PublicKey, hash crypto.Hash, digest, sig []byte) bool
	RsaOaepEncrypt func(pub *rsa.PublicKey, plaintext, label []byte) ([]byte, error)
	RsaOaepDecrypt func(priv *rsa.PrivateKey, ciphertext, label []byte) ([]byte, error)

	MlDsa65GenerateKey  func() (pub, priv []byte, err error)
	MlDsa65Sign         func(priv, message []byte) ([]byte, error)
	MlDsa65Verify       func(pub, message, sig []byte) bool
	MlKem768GenerateKey func() (pub, priv []byte, err error)
	MlKem768Encapsulate func(pub []byte) (ciphertext, sharedSecret []byte, err error)
	MlKem768Decapsulate func(priv, ciphertext []byte) ([]byte, error)

	X509ParseCertificate func(der []byte) (*x509.Certificate, error)
	X509GetSubjectName   func(der []byte) ([]byte, error)
	X509VerifyCert       func(certDER, caDER []byte) bool

	TotpGenerateCode func(secret string, t time.Time) (string, error)
	TotpValidate     func(code, secret string) bool

	TlsConfigNew        func(minVersion, maxVersion uint16) *tls.Config
	TlsSetCipherList    func(cfg *tls.Config, suites []uint16) error
	TlsSetHostName      func(cfg *tls.Config, name string)
	TlsSetCertificate   func(cfg *tls.Config, certPEM, keyPEM []byte) error
	TlsSetRootCAs       func(cfg *tls.Config, pemCerts []byte) error
	TlsClient           func(conn net.Conn, cfg *tls.Config) *tls.Conn
	TlsServer           func(conn net.Conn, cfg *tls.Config) *tls.Conn
	TlsDoHandshake      func(ctx context.Context, conn *tls.Conn) error
	TlsIsHandshakeDone  func(conn *tls.Conn) bool
	TlsGetVersion       func(conn *tls.Conn) uint16
	TlsGetCurrentCipher func(conn *tls.Conn) uint16
	TlsClose            func(conn *tls.Conn) error
}

// Entry describes one slot of the table layout.
type Entry struct {
	Name    string
	Present bool
}

var (
	tableOnce sync.Once
	shared    *Table
)

// BuildTable returns a new table populated from the build-time enablement
// constants. Every call returns an equal table.
func BuildTable() *Table {
	return buildTable(enablement.IsEnabled)
}

// SharedTable builds the table on first use and returns the same read-only
// value afterwards.
func SharedTable() *Table {
	tableOnce.Do(func() {
		shared = BuildTable()
	})
	return shared
}

func buildTable(on func(services.Name) bool) *Table {
	t := &Table{
		Version:    TableVersion,
		GetVersion: GetVersion,
	}
	if on(services.HashMD5) {
		t.HashMD5 = HashMD5
	}
	if on(services.HashSHA1) {
		t.HashSHA1 = HashSHA1
	}
	if on(services.HashSHA256) {
		t.HashSHA256 = HashSHA256
	}
	if on(services.HashSHA384) {
		t.HashSHA384 = HashSHA384
	}
	if on(services.HashSHA512) {
		t.HashSHA512 = HashSHA512
	}
	if on(services.HashSHA256New) {
		t.HashSHA256New = HashSHA256New
	}
	if on(services.HashSHA3_256) {
		t.HashSHA3_256 = HashSHA3_256
	}
	if on(services.HashKeccak256) {
		t.HashKeccak256 = HashKeccak256
	}
	if on(services.HashBLAKE2b256) {
		t.HashBLAKE2b256 = HashBLAKE2b256
	}
	if on(services.HmacSHA256) {
		t.HmacSHA256 = HmacSHA256
	}
	if on(services.HmacSHA384) {
		t.HmacSHA384 = HmacSHA384
	}
	if on(services.HmacSHA256Verify) {
		t.HmacSHA256Verify = HmacSHA256Verify
	}
	if on(services.AesGcmSeal) {
		t.AesGcmSeal = AesGcmSeal
	}
	if on(services.AesGcmOpen) {
		t.AesGcmOpen = AesGcmOpen
	}
	if on(services.AesCbcEncrypt) {
		t.AesCbcEncrypt = AesCbcEncrypt
	}
	if on(services.AesCbcDecrypt) {
		t.AesCbcDecrypt = AesCbcDecrypt
	}
	if on(services.ChaCha20Poly1305Seal) {
		t.ChaCha20Poly1305Seal = ChaCha20Poly1305Seal
	}
	if on(services.ChaCha20Poly1305Open) {
		t.ChaCha20Poly1305Open = ChaCha20Poly1305Open
	}
	if on(services.HkdfSHA256ExtractAndExpand) {
		t.HkdfSHA256ExtractAndExpand = HkdfSHA256ExtractAndExpand
	}
	if on(services.HkdfSHA256Extract) {
		t.HkdfSHA256Extract = HkdfSHA256Extract
	}
	if on(services.HkdfSHA256Expand) {
		t.HkdfSHA256Expand = HkdfSHA256Expand
	}
	if on(services.Pbkdf2SHA256) {
		t.Pbkdf2SHA256 = Pbkdf2SHA256
	}
	if on(services.Argon2idKey) {
		t.Argon2idKey = Argon2idKey
	}
	if on(services.RandomBytes) {
		t.RandomBytes = RandomBytes
	}
	if on(services.RandomTpmBytes) {
		t.RandomTpmBytes = RandomTpmBytes
	}
	if on(services.EcdsaP256GenerateKey) {
		t.EcdsaP256GenerateKey = EcdsaP256GenerateKey
	}
	if on(services.EcdsaP256Sign) {
		t.EcdsaP256Sign = EcdsaP256Sign
	}
	if on(services.EcdsaP256Verify) {
		t.EcdsaP256Verify = EcdsaP256Verify
	}
	if on(services.Ed25519GenerateKey) {
		t.Ed25519GenerateKey = Ed25519GenerateKey
	}
	if on(services.Ed25519Sign) {
		t.Ed25519Sign = Ed25519Sign
	}
	if on(services.Ed25519Verify) {
		t.Ed25519Verify = Ed25519Verify
	}
	if on(services.Ed448GenerateKey) {
		t.Ed448GenerateKey = Ed448GenerateKey
	}
	if on(services.Ed448Sign) {
		t.Ed448Sign = Ed448Sign
	}
	if on(services.Ed448Verify) {
		t.Ed448Verify = Ed448Verify
	}
	if on(services.X25519) {
		t.X25519 = X25519
	}
	if on(services.Secp256k1GenerateKey) {
		t.Secp256k1GenerateKey = Secp256k1GenerateKey
	}
	if on(services.Secp256k1Sign) {
		t.Secp256k1Sign = Secp256k1Sign
	}
	if on(services.Secp256k1Recover) {
		t.Secp256k1Recover = Secp256k1Recover
	}
	if on(services.RsaPkcs1Sign) {
		t.RsaPkcs1Sign = RsaPkcs1Sign
	}
	if on(services.RsaPkcs1Verify) {
		t.RsaPkcs1Verify = RsaPkcs1Verify
	}
	if on(services.RsaPssSign) {
		t.RsaPssSign = RsaPssSign
	}
	if on(services.RsaPssVerify) {
		t.RsaPssVerify = RsaPssVerify
	}
	if on(services.RsaOaepEncrypt) {
		t.RsaOaepEncrypt = RsaOaepEncrypt
	}
	if on(services.RsaOaepDecrypt) {
		t.RsaOaepDecrypt = RsaOaepDecrypt
	}
	if on(services.MlDsa65GenerateKey) {
		t.MlDsa65GenerateKey = MlDsa65GenerateKey
	}
	if on(services.MlDsa65Sign) {
		t.MlDsa65Sign = MlDsa65Sign
	}
	if on(services.MlDsa65Verify) {
		t.MlDsa65Verify = MlDsa65Verify
	}
	if on(services.MlKem768GenerateKey) {
		t.MlKem768GenerateKey = MlKem768GenerateKey
	}
	if on(services.MlKem768Encapsulate) {
		t.MlKem768Encapsulate = MlKem768Encapsulate
	}
	if on(services.MlKem768Decapsulate) {
		t.MlKem768Decapsulate = MlKem768Decapsulate
	}
	if on(services.X509ParseCertificate) {
		t.X509ParseCertificate = X509ParseCertificate
	}
	if on(services.X509GetSubjectName) {
		t.X509GetSubjectName = X509GetSubjectName
	}
	if on(services.X509VerifyCert) {
		t.X509VerifyCert = X509VerifyCert
	}
	if on(services.TotpGenerateCode) {
		t.TotpGenerateCode = TotpGenerateCode
	}
	if on(services.TotpValidate) {
		t.TotpValidate = TotpValidate
	}
	if on(services.TlsConfigNew) {
		t.TlsConfigNew = TlsConfigNew
	}
	if on(services.TlsSetCipherList) {
		t.TlsSetCipherList = TlsSetCipherList
	}
	if on(services.TlsSetHostName) {
		t.TlsSetHostName = TlsSetHostName
	}
	if on(services.TlsSetCertificate) {
		t.TlsSetCertificate = TlsSetCertificate
	}
	if on(services.TlsSetRootCAs) {
		t.TlsSetRootCAs = TlsSetRootCAs
	}
	if on(services.TlsClient) {
		t.TlsClient = TlsClient
	}
	if on(services.TlsServer) {
		t.TlsServer = TlsServer
	}
	if on(services.TlsDoHandshake) {
		t.TlsDoHandshake = TlsDoHandshake
	}
	if on(services.TlsIsHandshakeDone) {
		t.TlsIsHandshakeDone = TlsIsHandshakeDone
	}
	if on(services.TlsGetVersion) {
		t.TlsGetVersion = TlsGetVersion
	}
	if on(services.TlsGetCurrentCipher) {
		t.TlsGetCurrentCipher = TlsGetCurrentCipher
	}
	if on(services.TlsClose) {
		t.TlsClose = TlsClose
	}
	return t
}

// Entries returns the table layout in order, starting with GetVersion.
func (t *Table) Entries() []Entry {
	v := reflect.ValueOf(t).Elem()
	typ := v.Type()
	out := make([]Entry, 0, typ.NumField()-1)
	for i := 0; i < typ.NumField(); i++ {
		f := v.Field(i)
		if f.Kind() != reflect.Func {
			continue
		}
		out = append(out, Entry{Name: typ.Field(i).Name, Present: !f.IsNil()})
	}
	return out
}

// Lookup returns the entry registered under name, or nil when the service is
// compiled out or unknown. Callers type-assert the result to the service
// signature.
func (t *Table) Lookup(name services.Name) any {
	f := reflect.ValueOf(t).Elem().FieldByName(string(name))
	if !f.IsValid() || f.Kind() != reflect.Func || f.IsNil() {
		return nil
	}
	return f.Interface()
}
