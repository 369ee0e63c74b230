package vault

import "context"

// Store persists the vault. Implementations live under internal/storage.
//
// Contract:
//   - LoadMaster returns common.ErrorNotFound when no master is set.
//   - AddAccount returns common.ErrDuplicateAccount when (platform, username)
//     already exists.
//   - UpdateAccount returns common.ErrorNotFound for an unknown ID.
//   - ListAccounts returns accounts in creation order.
type Store interface {
	LoadMaster(ctx context.Context) (*MasterCredential, error)
	SaveMaster(ctx context.Context, m *MasterCredential) error
	ListAccounts(ctx context.Context) ([]Account, error)
	AddAccount(ctx context.Context, a Account) error
	UpdateAccount(ctx context.Context, a Account) error
}
