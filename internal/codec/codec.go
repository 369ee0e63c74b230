// Package codec turns a secret and key material into the string stored at
// rest, and back.
//
// Encoding is deterministic: the AES-GCM nonce is an HMAC of the plaintext
// under a key-derived subkey, so equal (secret, key) pairs produce equal
// ciphertexts while the output stays authenticated.
package codec

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/locksafe/internal/common"
	"golang.org/x/crypto/hkdf"
)

const (
	version   = "v1"
	nonceSize = 12
	keySize   = 32
)

var (
	encInfo   = []byte("locksafe/codec/enc")
	nonceInfo = []byte("locksafe/codec/nonce")
)

// ErrDecodeFailure is returned for malformed, foreign or wrong-key input.
var ErrDecodeFailure = fmt.Errorf("codec: %w", common.ErrDecodeFailure)

var errEmptyKey = errors.New("codec: empty key material")

var encoding = base64.RawURLEncoding

// Encode returns the at-rest representation of secret under key.
func Encode(secret string, key []byte) (string, error) {
	aead, nonceKey, err := subkeys(key)
	if err != nil {
		return "", err
	}

	mac := hmac.New(sha256.New, nonceKey)
	mac.Write([]byte(secret))
	nonce := mac.Sum(nil)[:nonceSize]

	sealed := aead.Seal(nonce, nonce, []byte(secret), nil)
	return version + "." + encoding.EncodeToString(sealed), nil
}

// Decode is the exact inverse of Encode. It never panics; any input that
// was not produced by Encode under the same key yields ErrDecodeFailure.
func Decode(ciphertext string, key []byte) (string, error) {
	aead, _, err := subkeys(key)
	if err != nil {
		return "", err
	}

	prefix, body, ok := strings.Cut(ciphertext, ".")
	if !ok || prefix != version {
		return "", ErrDecodeFailure
	}

	raw, err := encoding.DecodeString(body)
	if err != nil || len(raw) < nonceSize+aead.Overhead() {
		return "", ErrDecodeFailure
	}

	plain, err := aead.Open(nil, raw[:nonceSize], raw[nonceSize:], nil)
	if err != nil {
		return "", ErrDecodeFailure
	}
	return string(plain), nil
}

func subkeys(key []byte) (cipher.AEAD, []byte, error) {
	if len(key) == 0 {
		return nil, nil, errEmptyKey
	}

	encKey := make([]byte, keySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, key, nil, encInfo), encKey); err != nil {
		return nil, nil, err
	}
	nonceKey := make([]byte, keySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, key, nil, nonceInfo), nonceKey); err != nil {
		return nil, nil, err
	}

	block, err := aes.NewCipher(encKey)
	if err != nil {
		return nil, nil, err
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, nil, err
	}
	return aead, nonceKey, nil
}
