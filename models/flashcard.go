// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Avdeyev

package models

import "time"

// Flashcard difficulty bounds. DefaultDifficulty is applied when a create
// request leaves the field unset.
const (
	MinDifficulty     = 1
	MaxDifficulty     = 5
	DefaultDifficulty = 1
)

// Flashcard is a question/answer pair attached to a topic. The review
// timestamps are stored for future spaced-repetition scheduling; nothing
// in the server acts on them yet.
type Flashcard struct {
	FlashcardID int64  `json:"id"`
	Question    string `json:"question"`
	Answer      string `json:"answer"`

	// Difficulty is a user-assigned rating between MinDifficulty and
	// MaxDifficulty inclusive.
	Difficulty int `json:"difficulty"`

	LastReviewedAt *time.Time `json:"last_reviewed_at,omitempty"`
	NextReviewAt   *time.Time `json:"next_review_at,omitempty"`

	// UserID is the denormalized owner id, always equal to the parent
	// topic's owner.
	UserID int64 `json:"-"`

	// TopicID is the parent topic the card belongs to.
	TopicID int64 `json:"topic_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Flashcard model.
func (f Flashcard) TableName() string {
	return "flashcards"
}

// CreateFlashcardRequest carries the fields accepted when creating a card.
// A zero Difficulty is replaced with DefaultDifficulty.
type CreateFlashcardRequest struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Difficulty int    `json:"difficulty"`
}

// UpdateFlashcardRequest carries a partial flashcard update. Nil fields
// retain their previous values.
type UpdateFlashcardRequest struct {
	Question       *string    `json:"question"`
	Answer         *string    `json:"answer"`
	Difficulty     *int       `json:"difficulty"`
	LastReviewedAt *time.Time `json:"last_reviewed_at"`
	NextReviewAt   *time.Time `json:"next_review_at"`
}
