package primitives

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
)

func RsaPkcs1Sign(priv *rsa.PrivateKey, hash crypto.Hash, digest []byte) ([]byte, error) {
	return rsa.SignPKCS1v15(rand.Reader, priv, hash, digest)
}

func RsaPkcs1Verify(pub *rsa.PublicKey, hash crypto.Hash, digest, sig []byte) bool {
	if pub == nil {
		return false
	}
	return rsa.VerifyPKCS1v15(pub, hash, digest, sig) == nil
}

func RsaPssSign(priv *rsa.PrivateKey, hash crypto.Hash, digest []byte) ([]byte, error) {
	return rsa.SignPSS(rand.Reader, priv, hash, digest, nil)
}

func RsaPssVerify(pub *rsa.PublicKey, hash crypto.Hash, digest, sig []byte) bool {
	if pub == nil {
		return false
	}
	return rsa.VerifyPSS(pub, hash, digest, sig, nil) == nil
}

// RsaOaepEncrypt uses SHA-256 for both the OAEP hash and MGF1.
func RsaOaepEncrypt(pub *rsa.PublicKey, plaintext, label []byte) ([]byte, error) {
	return rsa.EncryptOAEP(sha256.New(), rand.Reader, pub, plaintext, label)
}

func RsaOaepDecrypt(priv *rsa.PrivateKey, ciphertext, label []byte) ([]byte, error) {
	return rsa.DecryptOAEP(sha256.New(), nil, priv, ciphertext, label)
}
