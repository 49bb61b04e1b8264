package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
)

// ErrNotFound indicates a lookup for a User, Secret, or Share row that does
// not exist.
var ErrNotFound = errors.New("store: not found")

// ErrDuplicateLabel indicates a Secret's Label collided with an existing
// row — Label is unique per spec §6.
var ErrDuplicateLabel = errors.New("store: label already exists")

// document is the on-disk shape of the whole store: no SQL driver appears
// anywhere in the example pack this repository was grounded on, so the
// three tables spec §6 describes are kept as a single JSON document rather
// than fabricating a database dependency. Concurrency and cascade-delete
// are handled in Go instead of by a query engine.
type document struct {
	Users   []User     `json:"users"`
	Roles   []UserRole `json:"user_roles"`
	Secrets []Secret   `json:"secrets"`
	Shares  []Share    `json:"shares"`
}

// FileStore is a mutex-protected, JSON-file-backed implementation of the
// spec §6 schema, adapted from the teacher's FileStorage abstraction
// (storage.go) generalized from an opaque blob to the three typed tables.
type FileStore struct {
	path string
	mu   sync.Mutex
	doc  document
}

// Open loads path if it exists, or starts from an empty store otherwise.
func Open(path string) (*FileStore, error) {
	fs := &FileStore{path: path}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return fs, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store: reading %s: %w", path, err)
	}
	if len(data) == 0 {
		return fs, nil
	}
	if err := json.Unmarshal(data, &fs.doc); err != nil {
		return nil, fmt.Errorf("store: parsing %s: %w", path, err)
	}
	return fs, nil
}

func (fs *FileStore) save() error {
	data, err := json.MarshalIndent(fs.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("store: encoding: %w", err)
	}
	return os.WriteFile(fs.path, data, 0600)
}

// PutUser inserts or replaces a User by ID.
func (fs *FileStore) PutUser(u User) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	for i, existing := range fs.doc.Users {
		if existing.ID == u.ID {
			fs.doc.Users[i] = u
			return fs.save()
		}
	}
	fs.doc.Users = append(fs.doc.Users, u)
	return fs.save()
}

// UserByEmail looks up a User by its unique Email.
func (fs *FileStore) UserByEmail(email string) (User, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	for _, u := range fs.doc.Users {
		if u.Email == email {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

// PutUserRole assigns role to userID, a no-op if the pair already exists.
func (fs *FileStore) PutUserRole(userID, role string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	for _, r := range fs.doc.Roles {
		if r.UserID == userID && r.Role == role {
			return nil
		}
	}
	fs.doc.Roles = append(fs.doc.Roles, UserRole{UserID: userID, Role: role})
	return fs.save()
}

// RolesForUser returns every role name assigned to userID.
func (fs *FileStore) RolesForUser(userID string) []string {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	var out []string
	for _, r := range fs.doc.Roles {
		if r.UserID == userID {
			out = append(out, r.Role)
		}
	}
	return out
}

// PutSecret inserts a Secret, rejecting a Label collision with any
// existing Secret.
func (fs *FileStore) PutSecret(s Secret) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	for _, existing := range fs.doc.Secrets {
		if existing.Label == s.Label && existing.ID != s.ID {
			return ErrDuplicateLabel
		}
	}
	for i, existing := range fs.doc.Secrets {
		if existing.ID == s.ID {
			fs.doc.Secrets[i] = s
			return fs.save()
		}
	}
	fs.doc.Secrets = append(fs.doc.Secrets, s)
	return fs.save()
}

// PutShare inserts or replaces a Share by ID.
func (fs *FileStore) PutShare(sh Share) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	for i, existing := range fs.doc.Shares {
		if existing.ID == sh.ID {
			fs.doc.Shares[i] = sh
			return fs.save()
		}
	}
	fs.doc.Shares = append(fs.doc.Shares, sh)
	return fs.save()
}

// SharesForSecret returns all Shares bound to secretID.
func (fs *FileStore) SharesForSecret(secretID string) []Share {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	var out []Share
	for _, sh := range fs.doc.Shares {
		if sh.SecretID == secretID {
			out = append(out, sh)
		}
	}
	return out
}

// SecretByLabel looks up a Secret by its unique Label.
func (fs *FileStore) SecretByLabel(label string) (Secret, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	for _, s := range fs.doc.Secrets {
		if s.Label == label {
			return s, nil
		}
	}
	return Secret{}, ErrNotFound
}

// DeleteSecret removes a Secret and, per spec §6's ON DELETE CASCADE, every
// Share bound to it.
func (fs *FileStore) DeleteSecret(id string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	found := false
	secrets := fs.doc.Secrets[:0]
	for _, s := range fs.doc.Secrets {
		if s.ID == id {
			found = true
			continue
		}
		secrets = append(secrets, s)
	}
	if !found {
		return ErrNotFound
	}
	fs.doc.Secrets = secrets

	shares := fs.doc.Shares[:0]
	for _, sh := range fs.doc.Shares {
		if sh.SecretID != id {
			shares = append(shares, sh)
		}
	}
	fs.doc.Shares = shares
	return fs.save()
}
