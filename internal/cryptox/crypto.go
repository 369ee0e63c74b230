// Package cryptox holds the key derivation and sealing primitives used by the
// vault: argon2id master keys, verifiers, AES-GCM sealing and the X25519
// keypair that wraps per-record keys.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/locksafe/internal/common"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/nacl/box"
)

// KeySize is the length in bytes of every symmetric key handled by cryptox.
const KeySize = 32

// KDFParams are the argon2id cost parameters persisted next to a salt so a
// master key can be re-derived after the defaults change.
type KDFParams struct {
	Time    uint32 `json:"time"`
	Memory  uint32 `json:"memory"`
	Threads uint8  `json:"threads"`
}

// DefaultKDFParams mirrors argon2.IDKey recommendations: one pass, 64 MiB, 4 lanes.
var DefaultKDFParams = KDFParams{Time: 1, Memory: 64 * 1024, Threads: 4}

func MakeVerifier(masterKey []byte) []byte {
	hash := sha256.Sum256(masterKey)
	return hash[:]
}

func DeriveMasterKey(password []byte, salt []byte) []byte {
	return DeriveKey(password, salt, DefaultKDFParams)
}

func DeriveKey(password, salt []byte, p KDFParams) []byte {
	return argon2.IDKey(password, salt, p.Time, p.Memory, p.Threads, KeySize)
}

// Seal encrypts plaintext using AES-GCM under key.
//
// The key must be a valid AES key length (16, 24, or 32 bytes). A new random
// 12-byte nonce is generated for each call; ciphertext and nonce are
// returned separately.
//
// Example:
//
//	key := common.GenerateRandByteArray(32)
//	ciphertext, nonce, err := Seal([]byte("vault private key"), key)
//	if err != nil {
//	    log.Fatal(err)
//	}
func Seal(plaintext, key []byte) (ciphertext, nonce []byte, err error) {
	aesgcm, err := newGCM(key)
	if err != nil {
		return nil, nil, err
	}

	nonce = make([]byte, aesgcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, nil, err
	}

	ciphertext = aesgcm.Seal(nil, nonce, plaintext, nil)

	return ciphertext, nonce, nil
}

// Open reverses Seal. A wrong key, nonce or tampered ciphertext yields an
// error wrapping common.ErrDecodeFailure.
func Open(ciphertext, nonce, key []byte) ([]byte, error) {
	aesgcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	if len(nonce) != aesgcm.NonceSize() {
		return nil, fmt.Errorf("bad nonce size %d: %w", len(nonce), common.ErrDecodeFailure)
	}

	plaintext, err := aesgcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, common.ErrDecodeFailure)
	}

	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// KeyPair is the vault's X25519 keypair. Public is stored in the clear,
// Private only ever leaves memory sealed under a master key.
type KeyPair struct {
	Public  *[32]byte
	Private *[32]byte
}

func GenerateKeyPair() (*KeyPair, error) {
	pub, priv, err := box.GenerateKey(rand.Reader)
	if err != nil {
		return nil, err
	}
	return &KeyPair{Public: pub, Private: priv}, nil
}

// KeyPairFromBytes rebuilds a keypair from its stored public key and an
// unsealed private key.
func KeyPairFromBytes(public, private []byte) (*KeyPair, error) {
	if len(public) != 32 || len(private) != 32 {
		return nil, errors.New("keypair: keys must be 32 bytes")
	}
	var pub, priv [32]byte
	copy(pub[:], public)
	copy(priv[:], private)
	return &KeyPair{Public: &pub, Private: &priv}, nil
}

// Wipe zeroes the private half.
func (k *KeyPair) Wipe() {
	if k == nil || k.Private == nil {
		return
	}
	common.WipeByteArray(k.Private[:])
}

// SealToPublicKey encrypts msg so that only the holder of the matching
// private key can open it. No private key is needed to seal.
func SealToPublicKey(msg []byte, public []byte) ([]byte, error) {
	if len(public) != 32 {
		return nil, errors.New("seal: public key must be 32 bytes")
	}
	var pub [32]byte
	copy(pub[:], public)
	return box.SealAnonymous(nil, msg, &pub, rand.Reader)
}

func (k *KeyPair) OpenSealed(sealed []byte) ([]byte, error) {
	msg, ok := box.OpenAnonymous(nil, sealed, k.Public, k.Private)
	if !ok {
		return nil, common.ErrDecodeFailure
	}
	return msg, nil
}
