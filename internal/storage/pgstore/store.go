// Package pgstore is the PostgreSQL vault.Store used by the server.
package pgstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/locksafe/internal/common"
	"github.com/dmitrijs2005/locksafe/internal/dbx"
	"github.com/dmitrijs2005/locksafe/internal/vault"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

type Store struct {
	db dbx.DBTX
}

func New(db dbx.DBTX) *Store {
	return &Store{db: db}
}

func (s *Store) LoadMaster(ctx context.Context) (*vault.MasterCredential, error) {
	query :=
		`SELECT salt, verifier, kdf_time, kdf_memory, kdf_threads,
		        public_key, wrapped_private_key, private_key_nonce, updated_at
		 FROM master_credential WHERE id = 1`

	m := &vault.MasterCredential{}
	var threads int16
	err := s.db.QueryRowContext(ctx, query).Scan(
		&m.Salt, &m.Verifier, &m.KDF.Time, &m.KDF.Memory, &threads,
		&m.PublicKey, &m.WrappedPrivateKey, &m.PrivateKeyNonce, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	m.KDF.Threads = uint8(threads)

	return m, nil
}

func (s *Store) SaveMaster(ctx context.Context, m *vault.MasterCredential) error {
	query :=
		`INSERT INTO master_credential
		   (id, salt, verifier, kdf_time, kdf_memory, kdf_threads,
		    public_key, wrapped_private_key, private_key_nonce, updated_at)
		 VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, $9)
		 ON CONFLICT (id) DO UPDATE SET
		   salt = EXCLUDED.salt,
		   verifier = EXCLUDED.verifier,
		   kdf_time = EXCLUDED.kdf_time,
		   kdf_memory = EXCLUDED.kdf_memory,
		   kdf_threads = EXCLUDED.kdf_threads,
		   public_key = EXCLUDED.public_key,
		   wrapped_private_key = EXCLUDED.wrapped_private_key,
		   private_key_nonce = EXCLUDED.private_key_nonce,
		   updated_at = EXCLUDED.updated_at`

	_, err := s.db.ExecContext(ctx, query,
		m.Salt, m.Verifier, int64(m.KDF.Time), int64(m.KDF.Memory), int16(m.KDF.Threads),
		m.PublicKey, m.WrappedPrivateKey, m.PrivateKeyNonce, m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (s *Store) ListAccounts(ctx context.Context) ([]vault.Account, error) {
	query :=
		`SELECT id, platform, username, email, secret_ciphertext, wrapped_key, created_at, updated_at
		 FROM accounts
		 ORDER BY created_at, id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	accounts := []vault.Account{}
	for rows.Next() {
		var a vault.Account
		if err := rows.Scan(&a.ID, &a.Platform, &a.Username, &a.Email,
			&a.SecretCiphertext, &a.WrappedKey, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return accounts, nil
}

func (s *Store) AddAccount(ctx context.Context, a vault.Account) error {
	query :=
		`INSERT INTO accounts
		   (id, platform, username, email, secret_ciphertext, wrapped_key, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := s.db.ExecContext(ctx, query,
		a.ID, a.Platform, a.Username, a.Email, a.SecretCiphertext, a.WrappedKey, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return common.ErrDuplicateAccount
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (s *Store) UpdateAccount(ctx context.Context, a vault.Account) error {
	query :=
		`UPDATE accounts
		 SET secret_ciphertext = $2, wrapped_key = $3, updated_at = $4
		 WHERE id = $1`

	res, err := s.db.ExecContext(ctx, query, a.ID, a.SecretCiphertext, a.WrappedKey, a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
