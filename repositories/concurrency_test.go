package repositories

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"socialmedia/database"
	"socialmedia/models"

	"github.com/stretchr/testify/require"
)

func TestConcurrentDeletesOnFileDatabase(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()

	db, err := database.New("sqlite", filepath.Join(t.TempDir(), "social.db"))
	req.NoError(err)
	sqlDB, err := db.DB()
	req.NoError(err)
	t.Cleanup(func() { sqlDB.Close() })
	req.NoError(database.Migrate(db))

	account, err := NewAccountRepository(db, false).CreateAccount(ctx, "poster", "password")
	req.NoError(err)

	repo := NewMessageRepository(db)
	const total = 40
	ids := make([]int, 0, total)
	for i := 0; i < total; i++ {
		message, err := repo.CreateMessage(ctx, "hello", account.ID, int64(i))
		req.NoError(err)
		ids = append(ids, message.ID)
	}

	var wg sync.WaitGroup
	errs := make(chan error, total)
	for _, id := range ids {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			message, err := repo.DeleteMessageByID(ctx, id)
			if err == nil && message.ID != id {
				err = ErrStore
			}
			errs <- err
		}(id)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		req.NoError(err)
	}

	var left int64
	req.NoError(db.Model(&models.Message{}).Count(&left).Error)
	req.Zero(left)
}

func TestConcurrentDeletesOfOneMessage(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()

	db, err := database.New("sqlite", filepath.Join(t.TempDir(), "social.db"))
	req.NoError(err)
	sqlDB, err := db.DB()
	req.NoError(err)
	t.Cleanup(func() { sqlDB.Close() })
	req.NoError(database.Migrate(db))

	account, err := NewAccountRepository(db, false).CreateAccount(ctx, "poster", "password")
	req.NoError(err)
	repo := NewMessageRepository(db)
	message, err := repo.CreateMessage(ctx, "only once", account.ID, 1)
	req.NoError(err)

	const callers = 10
	var wg sync.WaitGroup
	errs := make(chan error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.DeleteMessageByID(ctx, message.ID)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var deleted, notFound int
	for err := range errs {
		switch err {
		case nil:
			deleted++
		case ErrNotFound:
			notFound++
		default:
			req.NoError(err)
		}
	}
	req.Equal(1, deleted)
	req.Equal(callers-1, notFound)
}
