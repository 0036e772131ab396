package session

import (
	"github.com/zalando/go-keyring"
)

const (
	keyringService = "tadbeerx-admin-console"
	keyringUser    = "admin_token"
)

// KeyringStore persists the token in the OS keyring. Keyring failures (no
// secret service running, locked keychain) degrade to "no token" instead of
// surfacing errors, matching the Store contract.
type KeyringStore struct {
	service string
	user    string
}

func NewKeyringStore() *KeyringStore {
	return &KeyringStore{service: keyringService, user: keyringUser}
}

func (s *KeyringStore) Get() string {
	tok, err := keyring.Get(s.service, s.user)
	if err != nil {
		return ""
	}
	return tok
}

func (s *KeyringStore) Set(token string) {
	_ = keyring.Set(s.service, s.user, token)
}

func (s *KeyringStore) Clear() {
	_ = keyring.Delete(s.service, s.user)
}

func (s *KeyringStore) Present() bool { return s.Get() != "" }
