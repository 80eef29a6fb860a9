package primitives

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"hash"
)

func HmacSHA256(key, data []byte) []byte {
	return mac(sha256.New, key, data)
}

func HmacSHA384(key, data []byte) []byte {
	return mac(sha512.New384, key, data)
}

// HmacSHA256Verify compares in constant time.
func HmacSHA256Verify(key, data, tag []byte) bool {
	return hmac.Equal(mac(sha256.New, key, data), tag)
}

func mac(h func() hash.Hash, key, data []byte) []byte {
	m := hmac.New(h, key)
	m.Write(data)
	return m.Sum(nil)
}
