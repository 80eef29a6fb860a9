package services

// Service names, in catalogue order.
const (
	HashMD5        Name = "HashMD5"
	HashSHA1       Name = "HashSHA1"
	HashSHA256     Name = "HashSHA256"
	HashSHA384     Name = "HashSHA384"
	HashSHA512     Name = "HashSHA512"
	HashSHA256New  Name = "HashSHA256New"
	HashSHA3_256   Name = "HashSHA3_256"
	HashKeccak256  Name = "HashKeccak256"
	HashBLAKE2b256 Name = "HashBLAKE2b256"

	HmacSHA256       Name = "HmacSHA256"
	HmacSHA384       Name = "HmacSHA384"
	HmacSHA256Verify Name = "HmacSHA256Verify"

	AesGcmSeal           Name = "AesGcmSeal"
	AesGcmOpen           Name = "AesGcmOpen"
	AesCbcEncrypt        Name = "AesCbcEncrypt"
	AesCbcDecrypt        Name = "AesCbcDecrypt"
	ChaCha20Poly1305Seal Name = "ChaCha20Poly1305Seal"
	ChaCha20Poly1305Open Name = "ChaCha20Poly1305Open"

	HkdfSHA256ExtractAndExpand Name = "HkdfSHA256ExtractAndExpand"
	HkdfSHA256Extract          Name = "HkdfSHA256Extract"
	HkdfSHA256Expand           Name = "HkdfSHA256Expand"
	Pbkdf2SHA256               Name = "Pbkdf2SHA256"
	Argon2idKey                Name = "Argon2idKey"

	RandomBytes    Name = "RandomBytes"
	RandomTpmBytes Name = "RandomTpmBytes"

	EcdsaP256GenerateKey Name = "EcdsaP256GenerateKey"
	EcdsaP256Sign        Name = "EcdsaP256Sign"
	EcdsaP256Verify      Name = "EcdsaP256Verify"
	Ed25519GenerateKey   Name = "Ed25519GenerateKey"
	Ed25519Sign          Name = "Ed25519Sign"
	Ed25519Verify        Name = "Ed25519Verify"
	Ed448GenerateKey     Name = "Ed448GenerateKey"
	Ed448Sign            Name = "Ed448Sign"
	Ed448Verify          Name = "Ed448Verify"
	X25519               Name = "X25519"
	Secp256k1GenerateKey Name = "Secp256k1GenerateKey"
	Secp256k1Sign        Name = "Secp256k1Sign"
	Secp256k1Recover     Name = "Secp256k1Recover"

	RsaPkcs1Sign   Name = "RsaPkcs1Sign"
	RsaPkcs1Verify Name = "RsaPkcs1Verify"
	RsaPssSign     Name = "RsaPssSign"
	RsaPssVerify   Name = "RsaPssVerify"
	RsaOaepEncrypt Name = "RsaOaepEncrypt"
	RsaOaepDecrypt Name = "RsaOaepDecrypt"

	MlDsa65GenerateKey  Name = "MlDsa65GenerateKey"
	MlDsa65Sign         Name = "MlDsa65Sign"
	MlDsa65Verify       Name = "MlDsa65Verify"
	MlKem768GenerateKey Name = "MlKem768GenerateKey"
	MlKem768Encapsulate Name = "MlKem768Encapsulate"
	MlKem768Decapsulate Name = "MlKem768Decapsulate"

	X509ParseCertificate Name = "X509ParseCertificate"
	X509GetSubjectName   Name = "X509GetSubjectName"
	X509VerifyCert       Name = "X509VerifyCert"

	TotpGenerateCode Name = "TotpGenerateCode"
	TotpValidate     Name = "TotpValidate"

	TlsConfigNew        Name = "TlsConfigNew"
	TlsSetCipherList    Name = "TlsSetCipherList"
	TlsSetHostName      Name = "TlsSetHostName"
	TlsSetCertificate   Name = "TlsSetCertificate"
	TlsSetRootCAs       Name = "TlsSetRootCAs"
	TlsClient           Name = "TlsClient"
	TlsServer           Name = "TlsServer"
	TlsDoHandshake      Name = "TlsDoHandshake"
	TlsIsHandshakeDone  Name = "TlsIsHandshakeDone"
	TlsGetVersion       Name = "TlsGetVersion"
	TlsGetCurrentCipher Name = "TlsGetCurrentCipher"
	TlsClose            Name = "TlsClose"
)

var catalogue = []Descriptor{
	{Name: HashMD5, Family: FamilyHash, Signature: "func(data []byte) []byte", Sentinel: "nil"},
	{Name: HashSHA1, Family: FamilyHash, Signature: "func(data []byte) []byte", Sentinel: "nil"},
	{Name: HashSHA256, Family: FamilyHash, Signature: "func(data []byte) []byte", Sentinel: "nil"},
	{Name: HashSHA384, Family: FamilyHash, Signature: "func(data []byte) []byte", Sentinel: "nil"},
	{Name: HashSHA512, Family: FamilyHash, Signature: "func(data []byte) []byte", Sentinel: "nil"},
	{Name: HashSHA256New, Family: FamilyHash, Signature: "func() hash.Hash", Sentinel: "nil"},
	{Name: HashSHA3_256, Family: FamilyHash, Signature: "func(data []byte) []byte", Sentinel: "nil"},
	{Name: HashKeccak256, Family: FamilyHash, Signature: "func(data []byte) []byte", Sentinel: "nil"},
	{Name: HashBLAKE2b256, Family: FamilyHash, Signature: "func(data []byte) []byte", Sentinel: "nil"},

	{Name: HmacSHA256, Family: FamilyHMAC, Signature: "func(key, data []byte) []byte", Sentinel: "nil"},
	{Name: HmacSHA384, Family: FamilyHMAC, Signature: "func(key, data []byte) []byte", Sentinel: "nil"},
	{Name: HmacSHA256Verify, Family: FamilyHMAC, Signature: "func(key, data, mac []byte) bool", Sentinel: "false"},

	{Name: AesGcmSeal, Family: FamilyCipher, Signature: "func(key, nonce, plaintext, aad []byte) ([]byte, error)", Sentinel: "nil, *UnsupportedError"},
	{Name: AesGcmOpen, Family: FamilyCipher, Signature: "func(key, nonce, ciphertext, aad []byte) ([]byte, error)", Sentinel: "nil, *UnsupportedError"},
	{Name: AesCbcEncrypt, Family: FamilyCipher, Signature: "func(key, iv, plaintext []byte) ([]byte, error)", Sentinel: "nil, *UnsupportedError"},
	{Name: AesCbcDecrypt, Family: FamilyCipher, Signature: "func(key, iv, ciphertext []byte) ([]byte, error)", Sentinel: "nil, *UnsupportedError"},
	{Name: ChaCha20Poly1305Seal, Family: FamilyCipher, Signature: "func(key, nonce, plaintext, aad []byte) ([]byte, error)", Sentinel: "nil, *UnsupportedError"},
	{Name: ChaCha20Poly1305Open, Family: FamilyCipher, Signature: "func(key, nonce, ciphertext, aad []byte) ([]byte, error)", Sentinel: "nil, *UnsupportedError"},

	{Name: HkdfSHA256ExtractAndExpand, Family: FamilyKDF, Signature: "func(secret, salt, info []byte, length int) ([]byte, error)", Sentinel: "nil, *UnsupportedError"},
	{Name: HkdfSHA256Extract, Family: FamilyKDF, Signature: "func(secret, salt []byte) []byte", Sentinel: "nil"},
	{Name: HkdfSHA256Expand, Family: FamilyKDF, Signature: "func(prk, info []byte, length int) ([]byte, error)", Sentinel: "nil, *UnsupportedError"},
	{Name: Pbkdf2SHA256, Family: FamilyKDF, Signature: "func(password, salt []byte, iterations, keyLen int) []byte", Sentinel: "nil"},
	{Name: Argon2idKey, Family: FamilyKDF, Signature: "func(password, salt []byte, time, memory uint32, threads uint8, keyLen uint32) []byte", Sentinel: "nil"},

	{Name: RandomBytes, Family: FamilyRandom, Signature: "func(n int) ([]byte, error)", Sentinel: "nil, *UnsupportedError"},
	{Name: RandomTpmBytes, Family: FamilyRandom, Signature: "func(n int) ([]byte, error)", Sentinel: "nil, *UnsupportedError"},

	{Name: EcdsaP256GenerateKey, Family: FamilyECC, Signature: "func() (*ecdsa.PrivateKey, error)", Sentinel: "nil, *UnsupportedError"},
	{Name: EcdsaP256Sign, Family: FamilyECC, Signature: "func(priv *ecdsa.PrivateKey, digest []byte) ([]byte, error)", Sentinel: "nil, *UnsupportedError"},
	{Name: EcdsaP256Verify, Family: FamilyECC, Signature: "func(pub *ecdsa.PublicKey, digest, sig []byte) bool", Sentinel: "false"},
	{Name: Ed25519GenerateKey, Family: FamilyECC, Signature: "func() (ed25519.PublicKey, ed25519.PrivateKey, error)", Sentinel: "nil, nil, *UnsupportedError"},
	{Name: Ed25519Sign, Family: FamilyECC, Signature: "func(priv ed25519.PrivateKey, message []byte) []byte", Sentinel: "nil"},
	{Name: Ed25519Verify, Family: FamilyECC, Signature: "func(pub ed25519.PublicKey, message, sig []byte) bool", Sentinel: "false"},
	{Name: Ed448GenerateKey, Family: FamilyECC, Signature: "func() (ed448.PublicKey, ed448.PrivateKey, error)", Sentinel: "nil, nil, *UnsupportedError"},
	{Name: Ed448Sign, Family: FamilyECC, Signature: "func(priv ed448.PrivateKey, message []byte, context string) []byte", Sentinel: "nil"},
	{Name: Ed448Verify, Family: FamilyECC, Signature: "func(pub ed448.PublicKey, message, sig []byte, context string) bool", Sentinel: "false"},
	{Name: X25519, Family: FamilyECC, Signature: "func(scalar, point []byte) ([]byte, error)", Sentinel: "nil, *UnsupportedError"},
	{Name: Secp256k1GenerateKey, Family: FamilyECC, Signature: "func() (*ecdsa.PrivateKey, error)", Sentinel: "nil, *UnsupportedError"},
	{Name: Secp256k1Sign, Family: FamilyECC, Signature: "func(digest []byte, priv *ecdsa.PrivateKey) ([]byte, error)", Sentinel: "nil, *UnsupportedError"},
	{Name: Secp256k1Recover, Family: FamilyECC, Signature: "func(digest, sig []byte) ([]byte, error)", Sentinel: "nil, *UnsupportedError"},

	{Name: RsaPkcs1Sign, Family: FamilyRSA, Signature: "func(priv *rsa.PrivateKey, hash crypto.Hash, digest []byte) ([]byte, error)", Sentinel: "nil, *UnsupportedError"},
	{Name: RsaPkcs1Verify, Family: FamilyRSA, Signature: "func(pub *rsa.PublicKey, hash crypto.Hash, digest, sig []byte) bool", Sentinel: "false"},
	{Name: RsaPssSign, Family: FamilyRSA, Signature: "func(priv *rsa.PrivateKey, hash crypto.Hash, digest []byte) ([]byte, error)", Sentinel: "nil, *UnsupportedError"},
	{Name: RsaPssVerify, Family: FamilyRSA, Signature: "func(pub *rsa.PublicKey, hash crypto.Hash, digest, sig []byte) bool", Sentinel: "false"},
	{Name: RsaOaepEncrypt, Family: FamilyRSA, Signature: "func(pub *rsa.PublicKey, plaintext, label []byte) ([]byte, error)", Sentinel: "nil, *UnsupportedError"},
	{Name: RsaOaepDecrypt, Family: FamilyRSA, Signature: "func(priv *rsa.PrivateKey, ciphertext, label []byte) ([]byte, error)", Sentinel: "nil, *UnsupportedError"},

	{Name: MlDsa65GenerateKey, Family: FamilyPQC, Signature: "func() (pub, priv []byte, err error)", Sentinel: "nil, nil, *UnsupportedError"},
	{Name: MlDsa65Sign, Family: FamilyPQC, Signature: "func(priv, message []byte) ([]byte, error)", Sentinel: "nil, *UnsupportedError"},
	{Name: MlDsa65Verify, Family: FamilyPQC, Signature: "func(pub, message, sig []byte) bool", Sentinel: "false"},
	{Name: MlKem768GenerateKey, Family: FamilyPQC, Signature: "func() (pub, priv []byte, err error)", Sentinel: "nil, nil, *UnsupportedError"},
	{Name: MlKem768Encapsulate, Family: FamilyPQC, Signature: "func(pub []byte) (ciphertext, sharedSecret []byte, err error)", Sentinel: "nil, nil, *UnsupportedError"},
	{Name: MlKem768Decapsulate, Family: FamilyPQC, Signature: "func(priv, ciphertext []byte) ([]byte, error)", Sentinel: "nil, *UnsupportedError"},

	{Name: X509ParseCertificate, Family: FamilyX509, Signature: "func(der []byte) (*x509.Certificate, error)", Sentinel: "nil, *UnsupportedError"},
	{Name: X509GetSubjectName, Family: FamilyX509, Signature: "func(der []byte) ([]byte, error)", Sentinel: "nil, *UnsupportedError"},
	{Name: X509VerifyCert, Family: FamilyX509, Signature: "func(certDER, caDER []byte) bool", Sentinel: "false"},

	{Name: TotpGenerateCode, Family: FamilyOTP, Signature: "func(secret string, t time.Time) (string, error)", Sentinel: "\"\", *UnsupportedError"},
	{Name: TotpValidate, Family: FamilyOTP, Signature: "func(code, secret string) bool", Sentinel: "false"},

	{Name: TlsConfigNew, Family: FamilyTLS, Signature: "func(minVersion, maxVersion uint16) *tls.Config", Sentinel: "nil"},
	{Name: TlsSetCipherList, Family: FamilyTLS, Signature: "func(cfg *tls.Config, suites []uint16) error", Sentinel: "*UnsupportedError"},
	{Name: TlsSetHostName, Family: FamilyTLS, Signature: "func(cfg *tls.Config, name string)", Sentinel: "no result"},
	{Name: TlsSetCertificate, Family: FamilyTLS, Signature: "func(cfg *tls.Config, certPEM, keyPEM []byte) error", Sentinel: "*UnsupportedError"},
	{Name: TlsSetRootCAs, Family: FamilyTLS, Signature: "func(cfg *tls.Config, pemCerts []byte) error", Sentinel: "*UnsupportedError"},
	{Name: TlsClient, Family: FamilyTLS, Signature: "func(conn net.Conn, cfg *tls.Config) *tls.Conn", Sentinel: "nil"},
	{Name: TlsServer, Family: FamilyTLS, Signature: "func(conn net.Conn, cfg *tls.Config) *tls.Conn", Sentinel: "nil"},
	{Name: TlsDoHandshake, Family: FamilyTLS, Signature: "func(ctx context.Context, conn *tls.Conn) error", Sentinel: "*UnsupportedError"},
	{Name: TlsIsHandshakeDone, Family: FamilyTLS, Signature: "func(conn *tls.Conn) bool", Sentinel: "false"},
	{Name: TlsGetVersion, Family: FamilyTLS, Signature: "func(conn *tls.Conn) uint16", Sentinel: "0"},
	{Name: TlsGetCurrentCipher, Family: FamilyTLS, Signature: "func(conn *tls.Conn) uint16", Sentinel: "0"},
	{Name: TlsClose, Family: FamilyTLS, Signature: "func(conn *tls.Conn) error", Sentinel: "*UnsupportedError"},
}
