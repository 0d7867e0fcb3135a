package repositories

import (
	"context"
	"errors"

	"socialmedia/models"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type accountRepository struct {
	db            *gorm.DB
	hashPasswords bool
}

// NewAccountRepository returns a gorm backed AccountRepository. Passwords are
// stored and compared in plain text unless hashPasswords is set.
func NewAccountRepository(db *gorm.DB, hashPasswords bool) AccountRepository {
	return &accountRepository{db: db, hashPasswords: hashPasswords}
}

// CreateAccount inserts a new account. A taken username fails on the unique index.
func (r *accountRepository) CreateAccount(ctx context.Context, username, password string) (*models.Account, error) {
	stored := password
	if r.hashPasswords {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, storeFailure("create_account", err, logrus.Fields{"username": username})
		}
		stored = string(hash)
	}

	account := models.Account{Username: username, Password: stored}
	if err := r.db.WithContext(ctx).Create(&account).Error; err != nil {
		return nil, storeFailure("create_account", err, logrus.Fields{"username": username})
	}
	// callers see the password they submitted, never the stored hash
	account.Password = password
	return &account, nil
}

// Login returns the account whose credentials match.
func (r *accountRepository) Login(ctx context.Context, username, password string) (*models.Account, error) {
	var account models.Account
	query := r.db.WithContext(ctx).Where("username = ?", username)
	if !r.hashPasswords {
		query = query.Where("password = ?", password)
	}

	err := query.First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, storeFailure("login", err, logrus.Fields{"username": username})
	}

	if r.hashPasswords {
		if bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)) != nil {
			return nil, ErrNotFound
		}
		account.Password = password
	}
	return &account, nil
}
