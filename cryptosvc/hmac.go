package cryptosvc

import (
	"github.com/quantumauth-io/quantum-go-cryptosvc/enablement"
	"github.com/quantumauth-io/quantum-go-cryptosvc/primitives"
	"github.com/quantumauth-io/quantum-go-cryptosvc/services"
)

func HmacSHA256(key, data []byte) []byte {
	if !enablement.HmacSHA256 {
		notEnabled(services.HmacSHA256)
		return nil
	}
	return primitives.HmacSHA256(key, data)
}

func HmacSHA384(key, data []byte) []byte {
	if !enablement.HmacSHA384 {
		notEnabled(services.HmacSHA384)
		return nil
	}
	return primitives.HmacSHA384(key, data)
}

// HmacSHA256Verify compares mac against HMAC-SHA256(key, data) in constant time.
func HmacSHA256Verify(key, data, mac []byte) bool {
	if !enablement.HmacSHA256Verify {
		notEnabled(services.HmacSHA256Verify)
		return false
	}
	return primitives.HmacSHA256Verify(key, data, mac)
}
