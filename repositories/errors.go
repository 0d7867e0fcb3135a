package repositories

import (
	"errors"

	"github.com/sirupsen/logrus"
)

var (
	// ErrNotFound means no row matched.
	ErrNotFound = errors.New("repositories: not found")
	// ErrStore hides every driver or constraint error. The cause is logged
	// here and never returned to callers.
	ErrStore = errors.New("repositories: store failure")
)

func storeFailure(op string, err error, fields logrus.Fields) error {
	logrus.WithFields(fields).WithField("op", op).WithError(err).Error("database operation failed")
	return ErrStore
}
