package crypto

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
)

// Const declarations for hash operations
const (
	HashSHA256 = iota
	HashSHA512
)

var (
	// ErrEmptySecret is returned when a signature is requested with a
	// zero-length key
	ErrEmptySecret = errors.New("secret key is empty")

	errUnsupportedHashType = errors.New("unsupported hash type")
)

// HexEncodeToString takes in a hexadecimal byte array and returns a string
func HexEncodeToString(input []byte) string {
	return hex.EncodeToString(input)
}

// GetSHA256 returns a SHA256 hash of a byte array
func GetSHA256(input []byte) []byte {
	sha := sha256.New()
	sha.Write(input)
	return sha.Sum(nil)
}

// GetHMAC returns a keyed-hash message authentication code using the desired
// hashtype
func GetHMAC(hashType int, input, key []byte) ([]byte, error) {
	if len(key) == 0 {
		return nil, ErrEmptySecret
	}

	var hasher func() hash.Hash
	switch hashType {
	case HashSHA256:
		hasher = sha256.New
	case HashSHA512:
		hasher = sha512.New
	default:
		return nil, fmt.Errorf("%w: %d", errUnsupportedHashType, hashType)
	}

	h := hmac.New(hasher, key)
	h.Write(input)
	return h.Sum(nil), nil
}

// SignHMACSHA256 signs the exact payload bytes with the secret and returns the
// lowercase hex digest appended to requests as the signature parameter.
func SignHMACSHA256(secret, payload string) (string, error) {
	sig, err := GetHMAC(HashSHA256, []byte(payload), []byte(secret))
	if err != nil {
		return "", err
	}
	return HexEncodeToString(sig), nil
}
