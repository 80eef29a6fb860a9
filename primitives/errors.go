package primitives

import "errors"

var (
	ErrInvalidKeySize    = errors.New("primitives: invalid key size")
	ErrInvalidNonceSize  = errors.New("primitives: invalid nonce size")
	ErrInvalidBlockSize  = errors.New("primitives: input is not a multiple of the block size")
	ErrInvalidIVSize     = errors.New("primitives: invalid IV size")
	ErrDecryptionFailed  = errors.New("primitives: decryption failed")
	ErrInvalidLength     = errors.New("primitives: invalid output length")
	ErrUnknownCipher     = errors.New("primitives: unknown TLS cipher suite")
	ErrNoCertificates    = errors.New("primitives: no certificates found in PEM input")
	ErrNilConfig         = errors.New("primitives: nil TLS config")
	ErrNilConn           = errors.New("primitives: nil TLS connection")
	ErrSchemeUnavailable = errors.New("primitives: signature scheme unavailable")
)
