// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Avdeyev

package models

import "time"

// Note is a free-text study note attached to a topic.
type Note struct {
	NoteID  int64  `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`

	// IsAIGenerated marks notes produced by an assistant rather than typed
	// in by the user.
	IsAIGenerated bool `json:"is_ai_generated"`

	// UserID is the denormalized owner id, always equal to the parent
	// topic's owner.
	UserID int64 `json:"-"`

	// TopicID is the parent topic the note belongs to.
	TopicID int64 `json:"topic_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Note model.
func (n Note) TableName() string {
	return "notes"
}

// CreateNoteRequest carries the fields accepted when creating a note.
type CreateNoteRequest struct {
	Title         string `json:"title"`
	Content       string `json:"content"`
	IsAIGenerated bool   `json:"is_ai_generated"`
}

// UpdateNoteRequest carries a partial note update. Nil fields retain
// their previous values.
type UpdateNoteRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}
