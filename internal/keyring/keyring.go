// Package keyring keeps a password-bearing store DSN out of the config file.
package keyring

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zalando/go-keyring"

	"github.com/julianstephens/clockface/internal/constants"
)

var (
	// ErrNotFound is returned when no DSN is stored in the keyring
	ErrNotFound = errors.New("store DSN not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// GetDSN returns the store DSN saved in the OS keyring.
func GetDSN() (string, error) {
	dsn, err := keyring.Get(constants.AppName, constants.DefaultKeyringUser)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return dsn, nil
}

// SetDSN saves the store DSN in the OS keyring.
func SetDSN(dsn string) error {
	if strings.TrimSpace(dsn) == "" {
		return errors.New("store DSN cannot be empty")
	}
	if dsn == constants.KeyringDSN {
		return fmt.Errorf("refusing to store the %q marker itself", constants.KeyringDSN)
	}
	if err := keyring.Set(constants.AppName, constants.DefaultKeyringUser, dsn); err != nil {
		return fmt.Errorf("failed to store DSN in keyring: %w", err)
	}
	return nil
}

// DeleteDSN removes the store DSN from the OS keyring.
func DeleteDSN() error {
	err := keyring.Delete(constants.AppName, constants.DefaultKeyringUser)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete DSN from keyring: %w", err)
	}
	return nil
}

// IsAvailable checks if the OS keyring can be read. Best-effort.
func IsAvailable() bool {
	_, err := keyring.Get(constants.AppName, "test-availability")
	return err == nil || errors.Is(err, keyring.ErrNotFound)
}

// ResolveDSN returns dsn unchanged unless it is the literal "keyring", in
// which case the DSN stored in the keyring is returned.
func ResolveDSN(dsn string) (string, error) {
	if strings.TrimSpace(dsn) != constants.KeyringDSN {
		return dsn, nil
	}
	stored, err := GetDSN()
	if err != nil {
		return "", fmt.Errorf("store is set to %q: %w", constants.KeyringDSN, err)
	}
	return stored, nil
}
