package vault

import (
	"time"

	"github.com/dmitrijs2005/locksafe/internal/cryptox"
)

// MasterCredential is everything persisted about the master password. The
// password itself and the derived key are never stored.
type MasterCredential struct {
	Salt              []byte            `json:"salt"`
	Verifier          []byte            `json:"verifier"`
	KDF               cryptox.KDFParams `json:"kdf"`
	PublicKey         []byte            `json:"public_key"`
	WrappedPrivateKey []byte            `json:"wrapped_private_key"`
	PrivateKeyNonce   []byte            `json:"private_key_nonce"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

// Account is a stored credential. SecretCiphertext is produced by the codec
// under a per-record key; WrappedKey is that key sealed to the vault public
// key.
type Account struct {
	ID               string    `json:"id"`
	Platform         string    `json:"platform"`
	Username         string    `json:"username"`
	Email            string    `json:"email"`
	SecretCiphertext string    `json:"secret_ciphertext"`
	WrappedKey       []byte    `json:"wrapped_key"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// NewAccount is the input to CreateAccount.
type NewAccount struct {
	Platform string
	Username string
	Email    string
	Secret   string
}

// PlainAccount is an account with its secret decoded for display.
type PlainAccount struct {
	Platform string `json:"platform"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Secret   string `json:"secret"`
}
