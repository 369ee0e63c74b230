// Package vault is the Credential Vault: it owns the master credential and
// is the only code that writes or decodes stored account secrets.
//
// Secrets are encoded with a fresh per-record key. That key is sealed to the
// vault's X25519 public key, so accounts can be added without the master
// password, while reading them requires the private key, which is stored
// wrapped under the argon2id master key. Changing the master password only
// re-wraps the private key.
package vault

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/locksafe/internal/codec"
	"github.com/dmitrijs2005/locksafe/internal/common"
	"github.com/dmitrijs2005/locksafe/internal/cryptox"
	"github.com/dmitrijs2005/locksafe/internal/logging"
	"github.com/dmitrijs2005/locksafe/internal/policy"
	"github.com/google/uuid"
)

const saltSize = 16

type Vault struct {
	mu     sync.Mutex
	store  Store
	policy *policy.Evaluator
	kdf    cryptox.KDFParams
	now    func() time.Time
	logger logging.Logger
}

type Option func(*Vault)

func WithPolicy(r policy.Rules) Option {
	return func(v *Vault) { v.policy = policy.NewEvaluator(r) }
}

// WithKDFParams sets the argon2id cost used for new or changed master
// passwords. Existing credentials keep the parameters they were made with.
func WithKDFParams(p cryptox.KDFParams) Option {
	return func(v *Vault) { v.kdf = p }
}

func WithClock(now func() time.Time) Option {
	return func(v *Vault) { v.now = now }
}

func WithLogger(l logging.Logger) Option {
	return func(v *Vault) { v.logger = l.With("module", "vault") }
}

func New(store Store, opts ...Option) *Vault {
	v := &Vault{
		store:  store,
		policy: policy.NewEvaluator(policy.DefaultRules()),
		kdf:    cryptox.DefaultKDFParams,
		now:    time.Now,
		logger: logging.Nop{},
	}
	for _, o := range opts {
		o(v)
	}
	return v
}

// Policy exposes the evaluator the vault enforces.
func (v *Vault) Policy() *policy.Evaluator {
	return v.policy
}

func (v *Vault) IsInitialized(ctx context.Context) (bool, error) {
	_, err := v.store.LoadMaster(ctx)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, common.ErrorNotFound):
		return false, nil
	default:
		return false, fmt.Errorf("load master: %w", err)
	}
}

// Setup sets the master password on an uninitialized vault.
func (v *Vault) Setup(ctx context.Context, password string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	ok, err := v.IsInitialized(ctx)
	if err != nil {
		return err
	}
	if ok {
		return common.ErrAlreadyInitialized
	}

	if err := v.policy.Check(password); err != nil {
		return err
	}

	kp, err := cryptox.GenerateKeyPair()
	if err != nil {
		return fmt.Errorf("generate keypair: %w", err)
	}
	defer kp.Wipe()

	cred, err := v.wrap(password, kp)
	if err != nil {
		return err
	}

	if err := v.store.SaveMaster(ctx, cred); err != nil {
		return fmt.Errorf("save master: %w", err)
	}

	v.logger.Info(ctx, "master password set")
	return nil
}

// Authenticate checks password against the stored verifier.
func (v *Vault) Authenticate(ctx context.Context, password string) error {
	kp, _, err := v.unlock(ctx, password)
	if err != nil {
		return err
	}
	kp.Wipe()
	return nil
}

// CreateAccount stores a new account. Platform is matched case-insensitively
// for uniqueness.
func (v *Vault) CreateAccount(ctx context.Context, in NewAccount) error {
	in.Platform = NormalizePlatform(in.Platform)
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	if in.Platform == "" || in.Username == "" || in.Email == "" || in.Secret == "" {
		return fmt.Errorf("platform, username, email and secret are required: %w", common.ErrInvalidRequest)
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	cred, err := v.master(ctx)
	if err != nil {
		return err
	}

	existing, err := v.store.ListAccounts(ctx)
	if err != nil {
		return fmt.Errorf("list accounts: %w", err)
	}
	if _, found := find(existing, in.Platform, in.Username); found {
		return common.ErrDuplicateAccount
	}

	ciphertext, wrapped, err := sealSecret(in.Secret, cred.PublicKey)
	if err != nil {
		return err
	}

	now := v.now().UTC()
	acc := Account{
		ID:               uuid.NewString(),
		Platform:         in.Platform,
		Username:         in.Username,
		Email:            in.Email,
		SecretCiphertext: ciphertext,
		WrappedKey:       wrapped,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := v.store.AddAccount(ctx, acc); err != nil {
		if errors.Is(err, common.ErrDuplicateAccount) {
			return common.ErrDuplicateAccount
		}
		return fmt.Errorf("add account: %w", err)
	}

	v.logger.Info(ctx, "account created", "platform", acc.Platform, "id", acc.ID)
	return nil
}

// ListAccounts re-proves the master password and returns every account with
// its secret decoded. A record that cannot be decoded is returned with
// common.DecryptionFailedPlaceholder instead of failing the whole listing.
func (v *Vault) ListAccounts(ctx context.Context, password string) ([]PlainAccount, error) {
	kp, _, err := v.unlock(ctx, password)
	if err != nil {
		return nil, err
	}
	defer kp.Wipe()

	accounts, err := v.store.ListAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}

	out := make([]PlainAccount, 0, len(accounts))
	for _, a := range accounts {
		secret, err := openSecret(kp, a)
		if err != nil {
			v.logger.Warn(ctx, "account secret not readable", "id", a.ID, "error", err)
			secret = common.DecryptionFailedPlaceholder
		}
		out = append(out, PlainAccount{
			Platform: a.Platform,
			Username: a.Username,
			Email:    a.Email,
			Secret:   secret,
		})
	}
	return out, nil
}

// ChangeMasterPassword replaces the master password. Stored secrets are not
// touched and remain readable under the new password.
func (v *Vault) ChangeMasterPassword(ctx context.Context, current, next string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	kp, _, err := v.unlock(ctx, current)
	if err != nil {
		return err
	}
	defer kp.Wipe()

	if err := v.policy.Check(next); err != nil {
		return err
	}

	cred, err := v.wrap(next, kp)
	if err != nil {
		return err
	}
	if err := v.store.SaveMaster(ctx, cred); err != nil {
		return fmt.Errorf("save master: %w", err)
	}

	v.logger.Info(ctx, "master password changed")
	return nil
}

// ResetAccountSecret replaces the secret of the account identified by
// platform and username, provided email is its contact address.
func (v *Vault) ResetAccountSecret(ctx context.Context, platform, username, email, secret string) error {
	platform = NormalizePlatform(platform)
	username = strings.TrimSpace(username)
	if platform == "" || username == "" || secret == "" {
		return fmt.Errorf("platform, username and secret are required: %w", common.ErrInvalidRequest)
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	cred, err := v.master(ctx)
	if err != nil {
		return err
	}

	accounts, err := v.store.ListAccounts(ctx)
	if err != nil {
		return fmt.Errorf("list accounts: %w", err)
	}
	acc, found := find(accounts, platform, username)
	if !found || !strings.EqualFold(acc.Email, strings.TrimSpace(email)) {
		return common.ErrAccountNotFound
	}

	acc.SecretCiphertext, acc.WrappedKey, err = sealSecret(secret, cred.PublicKey)
	if err != nil {
		return err
	}
	acc.UpdatedAt = v.now().UTC()

	if err := v.store.UpdateAccount(ctx, acc); err != nil {
		return fmt.Errorf("update account: %w", err)
	}

	v.logger.Info(ctx, "account secret reset", "platform", acc.Platform, "id", acc.ID)
	return nil
}

func (v *Vault) master(ctx context.Context) (*MasterCredential, error) {
	cred, err := v.store.LoadMaster(ctx)
	if errors.Is(err, common.ErrorNotFound) {
		return nil, common.ErrNotInitialized
	}
	if err != nil {
		return nil, fmt.Errorf("load master: %w", err)
	}
	return cred, nil
}

// unlock derives the master key, checks the verifier in constant time and
// opens the vault private key.
func (v *Vault) unlock(ctx context.Context, password string) (*cryptox.KeyPair, *MasterCredential, error) {
	cred, err := v.master(ctx)
	if err != nil {
		return nil, nil, err
	}

	mk := cryptox.DeriveKey([]byte(password), cred.Salt, cred.KDF)
	defer common.WipeByteArray(mk)

	if subtle.ConstantTimeCompare(cryptox.MakeVerifier(mk), cred.Verifier) != 1 {
		return nil, nil, common.ErrWrongCredential
	}

	priv, err := cryptox.Open(cred.WrappedPrivateKey, cred.PrivateKeyNonce, mk)
	if err != nil {
		return nil, nil, fmt.Errorf("open private key: %w", err)
	}
	defer common.WipeByteArray(priv)

	kp, err := cryptox.KeyPairFromBytes(cred.PublicKey, priv)
	if err != nil {
		return nil, nil, err
	}
	return kp, cred, nil
}

func (v *Vault) wrap(password string, kp *cryptox.KeyPair) (*MasterCredential, error) {
	salt := common.GenerateRandByteArray(saltSize)
	mk := cryptox.DeriveKey([]byte(password), salt, v.kdf)
	defer common.WipeByteArray(mk)

	wrapped, nonce, err := cryptox.Seal(kp.Private[:], mk)
	if err != nil {
		return nil, fmt.Errorf("wrap private key: %w", err)
	}

	return &MasterCredential{
		Salt:              salt,
		Verifier:          cryptox.MakeVerifier(mk),
		KDF:               v.kdf,
		PublicKey:         append([]byte(nil), kp.Public[:]...),
		WrappedPrivateKey: wrapped,
		PrivateKeyNonce:   nonce,
		UpdatedAt:         v.now().UTC(),
	}, nil
}

func sealSecret(secret string, public []byte) (string, []byte, error) {
	dek := common.GenerateRandByteArray(cryptox.KeySize)
	defer common.WipeByteArray(dek)

	ciphertext, err := codec.Encode(secret, dek)
	if err != nil {
		return "", nil, fmt.Errorf("encode secret: %w", err)
	}
	wrapped, err := cryptox.SealToPublicKey(dek, public)
	if err != nil {
		return "", nil, fmt.Errorf("seal record key: %w", err)
	}
	return ciphertext, wrapped, nil
}

func openSecret(kp *cryptox.KeyPair, a Account) (string, error) {
	dek, err := kp.OpenSealed(a.WrappedKey)
	if err != nil {
		return "", err
	}
	defer common.WipeByteArray(dek)

	return codec.Decode(a.SecretCiphertext, dek)
}

func find(accounts []Account, platform, username string) (Account, bool) {
	for _, a := range accounts {
		if NormalizePlatform(a.Platform) == platform && a.Username == username {
			return a, true
		}
	}
	return Account{}, false
}

// NormalizePlatform lower-cases and trims a platform name.
func NormalizePlatform(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
