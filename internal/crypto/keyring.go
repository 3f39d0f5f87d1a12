package crypto

import (
	"errors"
	"fmt"
	"os"

	"github.com/zalando/go-keyring"
)

// Keyring provides secure storage for the database key
type Keyring interface {
	GetKey() (string, error)
	SetKey(password string) error
	IsAvailable() bool
}

const (
	ServiceName = "dualtimer"
	KeyName     = "db-encryption-key"

	// EnvKey overrides the system keyring, for headless machines
	EnvKey = "DUALTIMER_DB_KEY"
)

// ErrKeyNotFound means no key has been stored yet
var ErrKeyNotFound = errors.New("encryption key not found")

// NewKeyring returns a keyring backed by the OS secret store
// (Keychain, Secret Service or Windows Credential Manager)
func NewKeyring() Keyring {
	return &systemKeyring{}
}

type systemKeyring struct{}

// GetKey returns the key from DUALTIMER_DB_KEY if set, otherwise from the OS keyring
func (k *systemKeyring) GetKey() (string, error) {
	if key := os.Getenv(EnvKey); key != "" {
		return key, nil
	}

	key, err := keyring.Get(ServiceName, KeyName)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrKeyNotFound
		}
		return "", fmt.Errorf("failed to retrieve key from keyring: %w", err)
	}

	if key == "" {
		return "", errors.New("encryption key is empty")
	}

	return key, nil
}

// SetKey stores the key in the OS keyring
func (k *systemKeyring) SetKey(password string) error {
	if password == "" {
		return errors.New("password cannot be empty")
	}

	if err := keyring.Set(ServiceName, KeyName, password); err != nil {
		return fmt.Errorf("failed to store key in keyring (set %s instead): %w", EnvKey, err)
	}

	return nil
}

// IsAvailable checks whether the OS keyring accepts writes
func (k *systemKeyring) IsAvailable() bool {
	testKey := "__dualtimer_availability_test__"
	if err := keyring.Set(ServiceName, testKey, "test"); err != nil {
		return false
	}

	_ = keyring.Delete(ServiceName, testKey)
	return true
}
