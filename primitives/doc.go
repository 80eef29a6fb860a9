// Package primitives holds the algorithm bodies behind the crypto service
// facade. Every exported function here has exactly the signature of the
// facade forwarder of the same name; the facade calls it unmodified when the
// service is enabled and never references it otherwise.
//
// The package is a thin layer over the standard library, golang.org/x/crypto,
// github.com/cloudflare/circl (ML-DSA, ML-KEM, Ed448), go-ethereum's crypto
// package (Keccak-256, secp256k1), github.com/pquerna/otp (TOTP) and the
// tpmdevice package (hardware entropy).
package primitives
