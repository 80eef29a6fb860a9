package primitives

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"hash"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

func HashMD5(data []byte) []byte {
	d := md5.Sum(data)
	return d[:]
}

func HashSHA1(data []byte) []byte {
	d := sha1.Sum(data)
	return d[:]
}

func HashSHA256(data []byte) []byte {
	d := sha256.Sum256(data)
	return d[:]
}

func HashSHA384(data []byte) []byte {
	d := sha512.Sum384(data)
	return d[:]
}

func HashSHA512(data []byte) []byte {
	d := sha512.Sum512(data)
	return d[:]
}

// HashSHA256New returns a streaming SHA-256 context.
func HashSHA256New() hash.Hash {
	return sha256.New()
}

// HashSHA3_256 is FIPS 202 SHA3-256.
func HashSHA3_256(data []byte) []byte {
	d := sha3.Sum256(data)
	return d[:]
}

// HashKeccak256 is the pre-standard Keccak-256 used by Ethereum. It differs
// from SHA3-256 only in padding.
func HashKeccak256(data []byte) []byte {
	return ethcrypto.Keccak256(data)
}

func HashBLAKE2b256(data []byte) []byte {
	d := blake2b.Sum256(data)
	return d[:]
}
