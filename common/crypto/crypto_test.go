package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	goldenSecret = "NhqPtmdSJYdKjVHjA7PZj4Mge3R5YNiP1e3UZjInClVN65XAbvqqM6A7H5fATj0j"
	goldenQuery  = "symbol=LTCBTC&side=BUY&type=LIMIT&timeInForce=GTC&quantity=1&price=0.1&recvWindow=5000&timestamp=1499827319559"
	goldenSig    = "c8db56825ae71d6d79447849e617115f4a920fa2acdcab2b053c4b2838bd6b71"
)

func TestGetHMAC(t *testing.T) {
	t.Parallel()
	expectedsha256 := []byte{
		54, 68, 6, 12, 32, 158, 80, 22, 142, 8, 131, 111, 248, 145, 17, 202, 224,
		59, 135, 206, 11, 170, 154, 197, 183, 28, 150, 79, 168, 105, 62, 102,
	}
	sha, err := GetHMAC(HashSHA256, []byte("Hello,World"), []byte("1234"))
	require.NoError(t, err, "GetHMAC must not error")
	assert.Equal(t, expectedsha256, sha)

	sha512, err := GetHMAC(HashSHA512, []byte("Hello,World"), []byte("1234"))
	require.NoError(t, err, "GetHMAC must not error")
	assert.Len(t, sha512, 64)

	_, err = GetHMAC(1337, []byte("Hello,World"), []byte("1234"))
	assert.ErrorIs(t, err, errUnsupportedHashType)

	_, err = GetHMAC(HashSHA256, []byte("Hello,World"), nil)
	assert.ErrorIs(t, err, ErrEmptySecret)
}

func TestSignHMACSHA256(t *testing.T) {
	t.Parallel()
	sig, err := SignHMACSHA256(goldenSecret, goldenQuery)
	require.NoError(t, err)
	assert.Equal(t, goldenSig, sig)

	again, err := SignHMACSHA256(goldenSecret, goldenQuery)
	require.NoError(t, err)
	assert.Equal(t, sig, again, "signature must be a pure function of its inputs")

	other, err := SignHMACSHA256(goldenSecret, goldenQuery+"&limit=1")
	require.NoError(t, err)
	assert.NotEqual(t, sig, other)

	_, err = SignHMACSHA256("", goldenQuery)
	assert.ErrorIs(t, err, ErrEmptySecret)
}

func TestGetSHA256(t *testing.T) {
	t.Parallel()
	assert.Equal(t,
		"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		HexEncodeToString(GetSHA256(nil)))
}
