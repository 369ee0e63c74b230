package vault

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/dmitrijs2005/locksafe/internal/common"
	"github.com/dmitrijs2005/locksafe/internal/cryptox"
	"github.com/dmitrijs2005/locksafe/internal/policy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const strong = "Str0ng!Pass"

var fastKDF = cryptox.KDFParams{Time: 1, Memory: 64, Threads: 1}

type memStore struct {
	mu       sync.Mutex
	master   *MasterCredential
	accounts []Account
	loadErr  error
}

func (m *memStore) LoadMaster(context.Context) (*MasterCredential, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	if m.master == nil {
		return nil, common.ErrorNotFound
	}
	c := *m.master
	return &c, nil
}

func (m *memStore) SaveMaster(_ context.Context, c *MasterCredential) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *c
	m.master = &cp
	return nil
}

func (m *memStore) ListAccounts(context.Context) ([]Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Account(nil), m.accounts...), nil
}

func (m *memStore) AddAccount(_ context.Context, a Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts = append(m.accounts, a)
	return nil
}

func (m *memStore) UpdateAccount(_ context.Context, a Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.accounts {
		if m.accounts[i].ID == a.ID {
			m.accounts[i] = a
			return nil
		}
	}
	return common.ErrorNotFound
}

func newVault(t *testing.T) (*Vault, *memStore) {
	t.Helper()
	s := &memStore{}
	return New(s, WithKDFParams(fastKDF)), s
}

func setupVault(t *testing.T) (*Vault, *memStore) {
	t.Helper()
	v, s := newVault(t)
	require.NoError(t, v.Setup(context.Background(), strong))
	return v, s
}

func TestSetup(t *testing.T) {
	v, s := newVault(t)
	ctx := context.Background()

	ok, err := v.IsInitialized(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, v.Setup(ctx, strong))

	ok, err = v.IsInitialized(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	assert.Len(t, s.master.Salt, saltSize)
	assert.Len(t, s.master.PublicKey, 32)
	assert.NotContains(t, string(s.master.Verifier), strong)
	assert.Equal(t, fastKDF, s.master.KDF)

	assert.ErrorIs(t, v.Setup(ctx, "An0ther!Pass"), common.ErrAlreadyInitialized)
}

func TestSetup_PolicyViolation(t *testing.T) {
	v, s := newVault(t)

	err := v.Setup(context.Background(), "weak")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrPolicyViolation))

	var ve *policy.ViolationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, policy.Weak, ve.Result.Strength)
	assert.Nil(t, s.master)
}

func TestSetup_CustomPolicy(t *testing.T) {
	v := New(&memStore{}, WithKDFParams(fastKDF), WithPolicy(policy.Rules{MinLength: 3}))
	require.NoError(t, v.Setup(context.Background(), "abc"))
}

func TestIsInitialized_StoreError(t *testing.T) {
	v := New(&memStore{loadErr: errors.New("disk gone")})

	_, err := v.IsInitialized(context.Background())
	require.ErrorContains(t, err, "disk gone")
	require.ErrorContains(t, v.Setup(context.Background(), strong), "disk gone")
}

func TestAuthenticate(t *testing.T) {
	v, _ := setupVault(t)
	ctx := context.Background()

	require.NoError(t, v.Authenticate(ctx, strong))
	assert.ErrorIs(t, v.Authenticate(ctx, "Str0ng!Pas"), common.ErrWrongCredential)
	assert.ErrorIs(t, v.Authenticate(ctx, ""), common.ErrWrongCredential)
}

func TestAuthenticate_NotInitialized(t *testing.T) {
	v, _ := newVault(t)
	assert.ErrorIs(t, v.Authenticate(context.Background(), strong), common.ErrNotInitialized)
}

func TestCreateAndList(t *testing.T) {
	v, s := setupVault(t)
	ctx := context.Background()

	require.NoError(t, v.CreateAccount(ctx, NewAccount{Platform: " GitHub ", Username: "alice", Email: "a@x.io", Secret: "secret1"}))
	require.NoError(t, v.CreateAccount(ctx, NewAccount{Platform: "gitlab", Username: "alice", Email: "a@x.io", Secret: "secret2"}))

	require.Len(t, s.accounts, 2)
	assert.Equal(t, "github", s.accounts[0].Platform)
	assert.NotContains(t, s.accounts[0].SecretCiphertext, "secret1")
	assert.NotEmpty(t, s.accounts[0].ID)

	got, err := v.ListAccounts(ctx, strong)
	require.NoError(t, err)
	assert.Equal(t, []PlainAccount{
		{Platform: "github", Username: "alice", Email: "a@x.io", Secret: "secret1"},
		{Platform: "gitlab", Username: "alice", Email: "a@x.io", Secret: "secret2"},
	}, got)
}

func TestCreateAccount_DuplicateIsCaseInsensitiveOnPlatform(t *testing.T) {
	v, s := setupVault(t)
	ctx := context.Background()

	require.NoError(t, v.CreateAccount(ctx, NewAccount{Platform: "GitHub", Username: "alice", Email: "a@x.io", Secret: "s1"}))
	err := v.CreateAccount(ctx, NewAccount{Platform: "github", Username: "alice", Email: "b@x.io", Secret: "s2"})
	assert.ErrorIs(t, err, common.ErrDuplicateAccount)
	assert.Len(t, s.accounts, 1)
}

func TestCreateAccount_Validation(t *testing.T) {
	v, _ := setupVault(t)

	err := v.CreateAccount(context.Background(), NewAccount{Platform: "github", Username: "alice", Email: "a@x.io"})
	assert.ErrorIs(t, err, common.ErrInvalidRequest)
}

func TestCreateAccount_NotInitialized(t *testing.T) {
	v, _ := newVault(t)

	err := v.CreateAccount(context.Background(), NewAccount{Platform: "p", Username: "u", Email: "e@x.io", Secret: "s"})
	assert.ErrorIs(t, err, common.ErrNotInitialized)
}

func TestListAccounts_WrongCredentialDisclosesNothing(t *testing.T) {
	v, _ := setupVault(t)
	ctx := context.Background()
	require.NoError(t, v.CreateAccount(ctx, NewAccount{Platform: "p", Username: "u", Email: "e@x.io", Secret: "s"}))

	got, err := v.ListAccounts(ctx, "wrong")
	assert.ErrorIs(t, err, common.ErrWrongCredential)
	assert.Nil(t, got)
}

func TestListAccounts_CorruptRecord(t *testing.T) {
	v, s := setupVault(t)
	ctx := context.Background()
	require.NoError(t, v.CreateAccount(ctx, NewAccount{Platform: "a", Username: "u", Email: "e@x.io", Secret: "good"}))
	require.NoError(t, v.CreateAccount(ctx, NewAccount{Platform: "b", Username: "u", Email: "e@x.io", Secret: "bad"}))

	s.accounts[1].SecretCiphertext = "v1.garbage"

	got, err := v.ListAccounts(ctx, strong)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "good", got[0].Secret)
	assert.Equal(t, common.DecryptionFailedPlaceholder, got[1].Secret)
}

func TestChangeMasterPassword_KeepsSecretsReadable(t *testing.T) {
	v, s := setupVault(t)
	ctx := context.Background()
	require.NoError(t, v.CreateAccount(ctx, NewAccount{Platform: "p", Username: "u", Email: "e@x.io", Secret: "secret1"}))
	before := s.accounts[0]

	assert.ErrorIs(t, v.ChangeMasterPassword(ctx, "wrong", "N3w!Password"), common.ErrWrongCredential)
	assert.ErrorIs(t, v.ChangeMasterPassword(ctx, strong, "weak"), common.ErrPolicyViolation)

	require.NoError(t, v.ChangeMasterPassword(ctx, strong, "N3w!Password"))

	assert.ErrorIs(t, v.Authenticate(ctx, strong), common.ErrWrongCredential)
	require.NoError(t, v.Authenticate(ctx, "N3w!Password"))

	assert.Equal(t, before, s.accounts[0], "stored records are untouched by rotation")

	got, err := v.ListAccounts(ctx, "N3w!Password")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "secret1", got[0].Secret)
}

func TestResetAccountSecret(t *testing.T) {
	v, _ := setupVault(t)
	ctx := context.Background()
	require.NoError(t, v.CreateAccount(ctx, NewAccount{Platform: "GitHub", Username: "alice", Email: "a@x.io", Secret: "old"}))

	assert.ErrorIs(t, v.ResetAccountSecret(ctx, "github", "alice", "other@x.io", "new"), common.ErrAccountNotFound)
	assert.ErrorIs(t, v.ResetAccountSecret(ctx, "github", "bob", "a@x.io", "new"), common.ErrAccountNotFound)
	assert.ErrorIs(t, v.ResetAccountSecret(ctx, "github", "alice", "a@x.io", ""), common.ErrInvalidRequest)

	require.NoError(t, v.ResetAccountSecret(ctx, "GITHUB", "alice", "A@x.io", "new"))

	got, err := v.ListAccounts(ctx, strong)
	require.NoError(t, err)
	assert.Equal(t, "new", got[0].Secret)
}

func TestNormalizePlatform(t *testing.T) {
	assert.Equal(t, "github", NormalizePlatform("  GitHub\t"))
}
