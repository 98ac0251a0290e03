package models

import "time"

// SiteConfig holds the site-wide settings. Only one logical instance exists;
// updates replace the value for every reader at once.
type SiteConfig struct {
	ID        int64     `db:"id"`
	Wallet    string    `db:"wallet"`
	UpdatedAt time.Time `db:"updated_at"`
}
