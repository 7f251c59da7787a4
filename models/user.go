// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Avdeyev

package models

import "time"

// User represents an account entity used for authentication and authorization.
// Every topic, note, flashcard, and resource in the system is owned by exactly
// one user; ownership is enforced at the persistence layer by scoping each
// query with the owner's UserID.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"-"`

	// Username is the display name chosen at registration (3-80 characters).
	Username string `json:"username"`

	// Email is the unique address used to log in.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST never contain plaintext and is never serialized.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// RegisterRequest carries the form fields submitted at registration.
// ConfirmPassword is checked at the transport boundary and never leaves it.
type RegisterRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// LoginRequest carries the credentials submitted at login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
