// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Avdeyev

package models

import "time"

// MaxTopicNameLength is the upper bound on a topic name, matching the
// topics.name column width.
const MaxTopicNameLength = 120

// Topic is a named container for study material. A topic either sits at the
// top level of a user's library (ParentTopicID == nil) or one level below
// another top-level topic. The hierarchy never goes deeper: a subtopic cannot
// have children of its own.
type Topic struct {
	// TopicID is the internal unique identifier of the topic.
	TopicID int64 `json:"id"`

	// Name is the required display name, 1-120 characters.
	Name string `json:"name"`

	// Description is an optional free-text summary.
	Description string `json:"description,omitempty"`

	// UserID is the owner of the topic. For subtopics it always equals the
	// parent topic's owner.
	UserID int64 `json:"-"`

	// ParentTopicID points at the enclosing top-level topic, or is nil for
	// top-level topics.
	ParentTopicID *int64 `json:"parent_topic_id,omitempty"`

	// CreatedAt is the creation timestamp. Top-level listings are ordered
	// by this field, newest first.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is bumped on every successful update.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Topic model.
func (t Topic) TableName() string {
	return "topics"
}

// IsSubtopic reports whether the topic sits one level below another topic.
func (t Topic) IsSubtopic() bool {
	return t.ParentTopicID != nil
}

// CreateTopicRequest carries the fields accepted when creating a topic.
// A non-nil ParentTopicID creates a subtopic under that parent.
type CreateTopicRequest struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	ParentTopicID *int64 `json:"parent_topic_id"`
}

// UpdateTopicRequest carries a partial topic update. Nil fields retain
// their previous values.
type UpdateTopicRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// DeleteTopicResult reports the outcome of a cascade delete. ParentTopicID
// is the deleted topic's parent (nil for top-level topics) so that the
// caller can pick a sensible redirect target.
type DeleteTopicResult struct {
	ParentTopicID *int64 `json:"parent_topic_id"`
}
