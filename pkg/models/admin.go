package models

import "golang.org/x/crypto/bcrypt"

// AdminUser is an administrator account used to authenticate mutating API
// calls. Lookup is by username; credential verification happens in the auth
// layer, not the store.
type AdminUser struct {
	ID           string `gorm:"primaryKey;size:36" json:"id" yaml:"id"`
	Username     string `gorm:"uniqueIndex;not null;size:255" json:"username" yaml:"username"`
	PasswordHash string `gorm:"not null" json:"-" yaml:"-"`
}

// TableName returns the table name for AdminUser.
func (AdminUser) TableName() string {
	return "admin_users"
}

// InsertAdminUser is the insertable shape of AdminUser.
type InsertAdminUser struct {
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}

// NewAdminUser builds an AdminUser record from its insertable fields and a
// generated id.
func NewAdminUser(in InsertAdminUser, id string) *AdminUser {
	return &AdminUser{
		ID:           id,
		Username:     in.Username,
		PasswordHash: in.PasswordHash,
	}
}

// HashPassword hashes a plaintext password for storage.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword verifies a plaintext password against the stored hash.
func (u *AdminUser) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}
