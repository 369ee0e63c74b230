package cryptox

import (
	"bytes"
	"errors"
	"testing"

	"github.com/dmitrijs2005/locksafe/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testParams = KDFParams{Time: 1, Memory: 64, Threads: 1}

func TestDeriveMasterKey_Deterministic(t *testing.T) {
	password := []byte("secret-password")
	salt := []byte("fixed-salt")

	key1 := DeriveMasterKey(password, salt)
	key2 := DeriveMasterKey(password, salt)

	if !bytes.Equal(key1, key2) {
		t.Errorf("expected same result for same inputs, got different")
	}
	if len(key1) != KeySize {
		t.Errorf("expected %d bytes, got %d", KeySize, len(key1))
	}
}

func TestDeriveKey_DifferentSalts(t *testing.T) {
	password := []byte("secret-password")

	key1 := DeriveKey(password, []byte("salt-1"), testParams)
	key2 := DeriveKey(password, []byte("salt-2"), testParams)

	if bytes.Equal(key1, key2) {
		t.Errorf("expected different results for different salts, got same")
	}
}

func TestMakeVerifier(t *testing.T) {
	key := DeriveKey([]byte("Str0ng!Pass"), []byte("salt"), testParams)
	v := MakeVerifier(key)

	require.Len(t, v, 32)
	assert.Equal(t, v, MakeVerifier(key))
	assert.NotEqual(t, key, v)
}

func TestSealOpen(t *testing.T) {
	key := common.GenerateRandByteArray(KeySize)

	ct, nonce, err := Seal([]byte("payload"), key)
	require.NoError(t, err)
	require.Len(t, nonce, 12)

	pt, err := Open(ct, nonce, key)
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), pt)

	_, err = Open(ct, nonce, common.GenerateRandByteArray(KeySize))
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrDecodeFailure))

	_, err = Open(ct, []byte{1, 2}, key)
	assert.True(t, errors.Is(err, common.ErrDecodeFailure))
}

func TestSeal_BadKey(t *testing.T) {
	_, _, err := Seal([]byte("x"), []byte("short"))
	require.Error(t, err)
}

func TestKeyPair_SealOpen(t *testing.T) {
	kp, err := GenerateKeyPair()
	require.NoError(t, err)

	sealed, err := SealToPublicKey([]byte("record-key"), kp.Public[:])
	require.NoError(t, err)

	restored, err := KeyPairFromBytes(kp.Public[:], kp.Private[:])
	require.NoError(t, err)

	msg, err := restored.OpenSealed(sealed)
	require.NoError(t, err)
	assert.Equal(t, []byte("record-key"), msg)

	other, err := GenerateKeyPair()
	require.NoError(t, err)
	_, err = other.OpenSealed(sealed)
	assert.ErrorIs(t, err, common.ErrDecodeFailure)
}

func TestKeyPair_Wipe(t *testing.T) {
	kp, err := GenerateKeyPair()
	require.NoError(t, err)

	kp.Wipe()
	assert.Equal(t, [32]byte{}, *kp.Private)

	var nilPair *KeyPair
	assert.NotPanics(t, nilPair.Wipe)
}

func TestKeyPairFromBytes_BadLength(t *testing.T) {
	_, err := KeyPairFromBytes([]byte{1}, make([]byte, 32))
	require.Error(t, err)

	_, err = SealToPublicKey([]byte("x"), []byte{1})
	require.Error(t, err)
}
