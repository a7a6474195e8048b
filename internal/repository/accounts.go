package repository

import (
	"github.com/emsys-dev/employee-manager/backend/internal/domain"
)

func (r *Repository) GetAccountByUsername(username string) (*domain.Account, error) {
	query := `
		SELECT id, password_hash, role
		FROM accounts WHERE username = $1
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	account := &domain.Account{
		Username: username,
	}

	dst := []any{&account.ID, &account.PasswordHash, &account.Role}
	if err := r.dbpool.QueryRowContext(ctx, query, username).Scan(dst...); err != nil {
		return nil, err
	}

	return account, nil
}

func (r *Repository) CreateAccount(account *domain.Account) error {
	query := `
		INSERT INTO accounts (username, password_hash, role)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	args := []any{account.Username, account.PasswordHash, account.Role}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&account.ID); err != nil {
		return err
	}

	return nil
}
