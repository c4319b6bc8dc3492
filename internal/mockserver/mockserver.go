// Package mockserver provides in-process stand-ins for the exchange's REST,
// websocket API and market stream endpoints for use in tests
package mockserver

import (
	"strings"

	"github.com/thrasher-corp/binance-connector/common/crypto"
)

// Credentials accepted by the mock servers
const (
	APIKey    = "vmPUZE6mv9SD5VNHk4HlWFsOr6aKE2zvsw0MuIgwCIPy6utIco14y7Ju91duEh8A"
	SecretKey = "NhqPtmdSJYdKjVHjA7PZj4Mge3R5YNiP1e3UZjInClVN65XAbvqqM6A7H5fATj0j"
)

// Canned values returned by the mock servers
const (
	ServerTime   = int64(1499827319559)
	ListenKey    = "pqia91ma19a5s61cv6a81va65sdf19v8a65a1a5s61cv6a81va65sdf19v8a65a1"
	LastUpdateID = int64(1027024)
)

// VerifySignature reports whether sig is the signature of payload under
// secret
func VerifySignature(secret, payload, sig string) bool {
	want, err := crypto.SignHMACSHA256(secret, payload)
	return err == nil && want == sig
}

// splitSignature separates a raw query into its signed payload and the
// trailing signature parameter
func splitSignature(rawQuery string) (payload, sig string, ok bool) {
	if strings.HasPrefix(rawQuery, "signature=") {
		return "", strings.TrimPrefix(rawQuery, "signature="), true
	}
	idx := strings.LastIndex(rawQuery, "&signature=")
	if idx == -1 {
		return "", "", false
	}
	return rawQuery[:idx], rawQuery[idx+len("&signature="):], true
}
