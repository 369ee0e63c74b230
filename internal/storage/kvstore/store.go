// Package kvstore keeps the vault in two well-known keys of a kv table:
// one for the master credential and one for the JSON account list.
package kvstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/locksafe/internal/common"
	"github.com/dmitrijs2005/locksafe/internal/dbx"
	"github.com/dmitrijs2005/locksafe/internal/storage/kv"
	"github.com/dmitrijs2005/locksafe/internal/vault"
)

const (
	MasterKey   = "locksafe_master"
	AccountsKey = "locksafe_accounts"
)

// DB is satisfied by *sql.DB.
type DB interface {
	dbx.DBTX
	dbx.Beginner
}

type Store struct {
	db DB
}

func New(db DB) *Store {
	return &Store{db: db}
}

func (s *Store) LoadMaster(ctx context.Context) (*vault.MasterCredential, error) {
	raw, err := kv.NewSQLiteRepository(s.db).Get(ctx, MasterKey)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, common.ErrorNotFound
	}

	var m vault.MasterCredential
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("decode %s: %w", MasterKey, err)
	}
	return &m, nil
}

func (s *Store) SaveMaster(ctx context.Context, m *vault.MasterCredential) error {
	raw, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return kv.NewSQLiteRepository(s.db).Set(ctx, MasterKey, raw)
}

func (s *Store) ListAccounts(ctx context.Context) ([]vault.Account, error) {
	return readAccounts(ctx, kv.NewSQLiteRepository(s.db))
}

func (s *Store) AddAccount(ctx context.Context, a vault.Account) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := kv.NewSQLiteRepository(tx)
		accounts, err := readAccounts(ctx, repo)
		if err != nil {
			return err
		}
		for _, existing := range accounts {
			if existing.Platform == a.Platform && existing.Username == a.Username {
				return common.ErrDuplicateAccount
			}
		}
		return writeAccounts(ctx, repo, append(accounts, a))
	})
}

func (s *Store) UpdateAccount(ctx context.Context, a vault.Account) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := kv.NewSQLiteRepository(tx)
		accounts, err := readAccounts(ctx, repo)
		if err != nil {
			return err
		}
		for i := range accounts {
			if accounts[i].ID == a.ID {
				accounts[i] = a
				return writeAccounts(ctx, repo, accounts)
			}
		}
		return common.ErrorNotFound
	})
}

func readAccounts(ctx context.Context, repo kv.Repository) ([]vault.Account, error) {
	raw, err := repo.Get(ctx, AccountsKey)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return []vault.Account{}, nil
	}

	var accounts []vault.Account
	if err := json.Unmarshal(raw, &accounts); err != nil {
		return nil, fmt.Errorf("decode %s: %w", AccountsKey, err)
	}
	return accounts, nil
}

func writeAccounts(ctx context.Context, repo kv.Repository, accounts []vault.Account) error {
	raw, err := json.Marshal(accounts)
	if err != nil {
		return err
	}
	return repo.Set(ctx, AccountsKey, raw)
}
