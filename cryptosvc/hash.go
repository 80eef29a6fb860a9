package cryptosvc

import (
	"hash"

	"github.com/quantumauth-io/quantum-go-cryptosvc/enablement"
	"github.com/quantumauth-io/quantum-go-cryptosvc/primitives"
	"github.com/quantumauth-io/quantum-go-cryptosvc/services"
)

// HashMD5 exists for legacy interop. The default profile compiles it out.
func HashMD5(data []byte) []byte {
	if !enablement.HashMD5 {
		notEnabled(services.HashMD5)
		return nil
	}
	return primitives.HashMD5(data)
}

func HashSHA1(data []byte) []byte {
	if !enablement.HashSHA1 {
		notEnabled(services.HashSHA1)
		return nil
	}
	return primitives.HashSHA1(data)
}

// HashSHA256 returns the SHA-256 digest of data.
func HashSHA256(data []byte) []byte {
	if !enablement.HashSHA256 {
		notEnabled(services.HashSHA256)
		return nil
	}
	return primitives.HashSHA256(data)
}

func HashSHA384(data []byte) []byte {
	if !enablement.HashSHA384 {
		notEnabled(services.HashSHA384)
		return nil
	}
	return primitives.HashSHA384(data)
}

func HashSHA512(data []byte) []byte {
	if !enablement.HashSHA512 {
		notEnabled(services.HashSHA512)
		return nil
	}
	return primitives.HashSHA512(data)
}

// HashSHA256New returns a streaming SHA-256 hash.Hash.
func HashSHA256New() hash.Hash {
	if !enablement.HashSHA256New {
		notEnabled(services.HashSHA256New)
		return nil
	}
	return primitives.HashSHA256New()
}

func HashSHA3_256(data []byte) []byte {
	if !enablement.HashSHA3_256 {
		notEnabled(services.HashSHA3_256)
		return nil
	}
	return primitives.HashSHA3_256(data)
}

// HashKeccak256 is the legacy Keccak-256 used by Ethereum, not FIPS 202 SHA3-256.
func HashKeccak256(data []byte) []byte {
	if !enablement.HashKeccak256 {
		notEnabled(services.HashKeccak256)
		return nil
	}
	return primitives.HashKeccak256(data)
}

func HashBLAKE2b256(data []byte) []byte {
	if !enablement.HashBLAKE2b256 {
		notEnabled(services.HashBLAKE2b256)
		return nil
	}
	return primitives.HashBLAKE2b256(data)
}
