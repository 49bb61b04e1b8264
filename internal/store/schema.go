// Package store implements the persisted-state layout spec §6 describes
// for the external storage collaborator: users, secrets (one row per
// split), and shares (one row per keeper). The core package shamir neither
// reads nor writes these tables — it exchanges only (x, y) pairs, which
// this package stores as opaque encoded blobs.
package store

import "time"

// User is the RBAC skeleton's identity row.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserRole assigns a role name to a user; a user may hold more than one.
type UserRole struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

// Secret is metadata about one split: how many shares (N) were issued and
// how many (K) are required to recover, plus the label it's filed under.
type Secret struct {
	ID        string    `json:"id"`
	CreatorID string    `json:"creator_id"`
	Label     string    `json:"label"` // unique
	N         int       `json:"n"`
	K         int       `json:"k"`
	Nonce     string    `json:"nonce"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Share binds one encoded share blob to the keeper holding it and the
// Secret it belongs to. Deleting a Secret cascades to its Shares.
type Share struct {
	ID          string    `json:"id"`
	KeeperID    string    `json:"keeper_id"`
	SecretID    string    `json:"secret_id"`
	ShareData   string    `json:"share_data"` // codec-encoded, opaque to this package
	SecretNonce string    `json:"secret_nonce"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
