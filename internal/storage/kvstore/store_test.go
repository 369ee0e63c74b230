package kvstore

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/dmitrijs2005/locksafe/internal/common"
	"github.com/dmitrijs2005/locksafe/internal/cryptox"
	"github.com/dmitrijs2005/locksafe/internal/vault"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE vault_kv (key TEXT PRIMARY KEY, value BLOB NOT NULL, updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP);`)
	require.NoError(t, err)
	return db
}

func TestMaster_RoundTrip(t *testing.T) {
	db := setupDB(t)
	s := New(db)
	ctx := context.Background()

	_, err := s.LoadMaster(ctx)
	require.ErrorIs(t, err, common.ErrorNotFound)

	m := &vault.MasterCredential{
		Salt:      []byte{1, 2, 3},
		Verifier:  []byte{4, 5},
		KDF:       cryptox.KDFParams{Time: 1, Memory: 64, Threads: 1},
		PublicKey: make([]byte, 32),
		UpdatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, s.SaveMaster(ctx, m))

	got, err := s.LoadMaster(ctx)
	require.NoError(t, err)
	assert.Equal(t, m, got)

	var raw []byte
	require.NoError(t, db.QueryRow(`SELECT value FROM vault_kv WHERE key = ?`, MasterKey).Scan(&raw))
	assert.Contains(t, string(raw), `"verifier"`)
}

func TestAccounts_AddListUpdate(t *testing.T) {
	s := New(setupDB(t))
	ctx := context.Background()

	got, err := s.ListAccounts(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	a := vault.Account{ID: "1", Platform: "github", Username: "alice", Email: "a@x.io", SecretCiphertext: "v1.a"}
	b := vault.Account{ID: "2", Platform: "gitlab", Username: "alice", Email: "a@x.io", SecretCiphertext: "v1.b"}
	require.NoError(t, s.AddAccount(ctx, a))
	require.NoError(t, s.AddAccount(ctx, b))

	assert.ErrorIs(t, s.AddAccount(ctx, vault.Account{ID: "3", Platform: "github", Username: "alice"}), common.ErrDuplicateAccount)

	got, err = s.ListAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "2", got[1].ID)

	b.SecretCiphertext = "v1.changed"
	require.NoError(t, s.UpdateAccount(ctx, b))
	assert.ErrorIs(t, s.UpdateAccount(ctx, vault.Account{ID: "404"}), common.ErrorNotFound)

	got, err = s.ListAccounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, "v1.changed", got[1].SecretCiphertext)
}

func TestCorruptValues(t *testing.T) {
	db := setupDB(t)
	s := New(db)
	ctx := context.Background()

	_, err := db.Exec(`INSERT INTO vault_kv(key, value) VALUES (?, ?), (?, ?)`, MasterKey, []byte("{"), AccountsKey, []byte("["))
	require.NoError(t, err)

	_, err = s.LoadMaster(ctx)
	require.ErrorContains(t, err, "decode locksafe_master")

	_, err = s.ListAccounts(ctx)
	require.ErrorContains(t, err, "decode locksafe_accounts")
}

func TestVaultOverKV(t *testing.T) {
	v := vault.New(New(setupDB(t)), vault.WithKDFParams(cryptox.KDFParams{Time: 1, Memory: 64, Threads: 1}))
	ctx := context.Background()

	require.NoError(t, v.Setup(ctx, "Str0ng!Pass"))
	require.NoError(t, v.CreateAccount(ctx, vault.NewAccount{Platform: "GitHub", Username: "alice", Email: "a@x.io", Secret: "secret1"}))
	assert.ErrorIs(t, v.CreateAccount(ctx, vault.NewAccount{Platform: "github", Username: "alice", Email: "a@x.io", Secret: "x"}), common.ErrDuplicateAccount)

	got, err := v.ListAccounts(ctx, "Str0ng!Pass")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "secret1", got[0].Secret)
}
