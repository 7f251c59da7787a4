// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Avdeyev

package store

import (
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/avdeyev/studykeep/models"
)

// psql is the shared statement builder. The Dollar placeholder format is
// native to PostgreSQL and also accepted by SQLite ($N is a valid SQLite
// parameter name), so a single builder serves both backends.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Column sets, in scan order. Kept as package-level slices so query builders
// and row scanners cannot drift apart.
var (
	userColumns = []string{"user_id", "username", "email", "password_hash", "created_at"}

	topicColumns = []string{"topic_id", "name", "description", "user_id", "parent_topic_id", "created_at", "updated_at"}

	noteColumns = []string{"note_id", "title", "content", "is_ai_generated", "user_id", "topic_id", "created_at", "updated_at"}

	flashcardColumns = []string{"flashcard_id", "question", "answer", "difficulty", "last_reviewed_at", "next_review_at", "user_id", "topic_id", "created_at", "updated_at"}

	resourceColumns = []string{"resource_id", "title", "resource_type", "url", "file_path", "file_size", "original_filename", "user_id", "topic_id", "created_at", "updated_at"}
)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

// nullableString maps an empty string to NULL so optional text columns do
// not accumulate empty-string values.
func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// users queries

func buildInsertUserQuery(user models.User) (string, []any, error) {
	return psql.Insert(user.TableName()).
		Columns("username", "email", "password_hash", "created_at").
		Values(user.Username, user.Email, user.PasswordHash, user.CreatedAt).
		Suffix(returning(userColumns)).
		ToSql()
}

func buildSelectUserByEmailQuery(email string) (string, []any, error) {
	return psql.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"email": email}).
		ToSql()
}

// topics queries

func buildInsertTopicQuery(topic models.Topic) (string, []any, error) {
	return psql.Insert(topic.TableName()).
		Columns("name", "description", "user_id", "parent_topic_id", "created_at", "updated_at").
		Values(topic.Name, nullableString(topic.Description), topic.UserID, topic.ParentTopicID, topic.CreatedAt, topic.UpdatedAt).
		Suffix(returning(topicColumns)).
		ToSql()
}

func buildSelectTopicQuery(userID, topicID int64) (string, []any, error) {
	return psql.Select(topicColumns...).
		From(models.Topic{}.TableName()).
		Where(sq.Eq{"topic_id": topicID, "user_id": userID}).
		ToSql()
}

func buildUpdateTopicQuery(userID, topicID int64, update models.UpdateTopicRequest, updatedAt time.Time) (string, []any, error) {
	builder := psql.Update(models.Topic{}.TableName()).
		Set("updated_at", updatedAt)

	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}
	if update.Description != nil {
		builder = builder.Set("description", nullableString(*update.Description))
	}

	return builder.
		Where(sq.Eq{"topic_id": topicID, "user_id": userID}).
		Suffix(returning(topicColumns)).
		ToSql()
}

func buildListTopLevelTopicsQuery(userID int64) (string, []any, error) {
	return psql.Select(topicColumns...).
		From(models.Topic{}.TableName()).
		Where(sq.Eq{"user_id": userID, "parent_topic_id": nil}).
		OrderBy("created_at DESC", "topic_id DESC").
		ToSql()
}

func buildListSubtopicsQuery(userID, topicID int64) (string, []any, error) {
	return psql.Select(topicColumns...).
		From(models.Topic{}.TableName()).
		Where(sq.Eq{"user_id": userID, "parent_topic_id": topicID}).
		OrderBy("created_at ASC", "topic_id ASC").
		ToSql()
}

// notes queries

func buildInsertNoteQuery(note models.Note) (string, []any, error) {
	return psql.Insert(note.TableName()).
		Columns("title", "content", "is_ai_generated", "user_id", "topic_id", "created_at", "updated_at").
		Values(note.Title, note.Content, note.IsAIGenerated, note.UserID, note.TopicID, note.CreatedAt, note.UpdatedAt).
		Suffix(returning(noteColumns)).
		ToSql()
}

func buildSelectNoteQuery(userID, noteID int64) (string, []any, error) {
	return psql.Select(noteColumns...).
		From(models.Note{}.TableName()).
		Where(sq.Eq{"note_id": noteID, "user_id": userID}).
		ToSql()
}

func buildUpdateNoteQuery(userID, noteID int64, update models.UpdateNoteRequest, updatedAt time.Time) (string, []any, error) {
	builder := psql.Update(models.Note{}.TableName()).
		Set("updated_at", updatedAt)

	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}
	if update.Content != nil {
		builder = builder.Set("content", *update.Content)
	}

	return builder.
		Where(sq.Eq{"note_id": noteID, "user_id": userID}).
		Suffix(returning(noteColumns)).
		ToSql()
}

func buildDeleteNoteQuery(userID, noteID int64) (string, []any, error) {
	return psql.Delete(models.Note{}.TableName()).
		Where(sq.Eq{"note_id": noteID, "user_id": userID}).
		ToSql()
}

func buildListNotesByTopicQuery(userID, topicID int64) (string, []any, error) {
	return psql.Select(noteColumns...).
		From(models.Note{}.TableName()).
		Where(sq.Eq{"user_id": userID, "topic_id": topicID}).
		OrderBy("created_at DESC", "note_id DESC").
		ToSql()
}

// flashcards queries

func buildInsertFlashcardQuery(card models.Flashcard) (string, []any, error) {
	return psql.Insert(card.TableName()).
		Columns("question", "answer", "difficulty", "last_reviewed_at", "next_review_at", "user_id", "topic_id", "created_at", "updated_at").
		Values(card.Question, card.Answer, card.Difficulty, card.LastReviewedAt, card.NextReviewAt, card.UserID, card.TopicID, card.CreatedAt, card.UpdatedAt).
		Suffix(returning(flashcardColumns)).
		ToSql()
}

func buildSelectFlashcardQuery(userID, flashcardID int64) (string, []any, error) {
	return psql.Select(flashcardColumns...).
		From(models.Flashcard{}.TableName()).
		Where(sq.Eq{"flashcard_id": flashcardID, "user_id": userID}).
		ToSql()
}

func buildUpdateFlashcardQuery(userID, flashcardID int64, update models.UpdateFlashcardRequest, updatedAt time.Time) (string, []any, error) {
	builder := psql.Update(models.Flashcard{}.TableName()).
		Set("updated_at", updatedAt)

	if update.Question != nil {
		builder = builder.Set("question", *update.Question)
	}
	if update.Answer != nil {
		builder = builder.Set("answer", *update.Answer)
	}
	if update.Difficulty != nil {
		builder = builder.Set("difficulty", *update.Difficulty)
	}
	if update.LastReviewedAt != nil {
		builder = builder.Set("last_reviewed_at", *update.LastReviewedAt)
	}
	if update.NextReviewAt != nil {
		builder = builder.Set("next_review_at", *update.NextReviewAt)
	}

	return builder.
		Where(sq.Eq{"flashcard_id": flashcardID, "user_id": userID}).
		Suffix(returning(flashcardColumns)).
		ToSql()
}

func buildDeleteFlashcardQuery(userID, flashcardID int64) (string, []any, error) {
	return psql.Delete(models.Flashcard{}.TableName()).
		Where(sq.Eq{"flashcard_id": flashcardID, "user_id": userID}).
		ToSql()
}

func buildListFlashcardsByTopicQuery(userID, topicID int64) (string, []any, error) {
	return psql.Select(flashcardColumns...).
		From(models.Flashcard{}.TableName()).
		Where(sq.Eq{"user_id": userID, "topic_id": topicID}).
		OrderBy("created_at DESC", "flashcard_id DESC").
		ToSql()
}

// resources queries

func buildInsertResourceQuery(resource models.Resource) (string, []any, error) {
	return psql.Insert(resource.TableName()).
		Columns("title", "resource_type", "url", "file_path", "file_size", "original_filename", "user_id", "topic_id", "created_at", "updated_at").
		Values(
			resource.Title,
			string(resource.Type),
			nullableString(resource.URL),
			nullableString(resource.FilePath),
			nullableInt64(resource.FileSize),
			nullableString(resource.OriginalFilename),
			resource.UserID,
			resource.TopicID,
			resource.CreatedAt,
			resource.UpdatedAt,
		).
		Suffix(returning(resourceColumns)).
		ToSql()
}

func buildSelectResourceQuery(userID, resourceID int64) (string, []any, error) {
	return psql.Select(resourceColumns...).
		From(models.Resource{}.TableName()).
		Where(sq.Eq{"resource_id": resourceID, "user_id": userID}).
		ToSql()
}

// buildUpdateResourceQuery writes back every mutable column. The resource
// service merges changes into the loaded row first, so this is a full-row
// update rather than a per-field one.
func buildUpdateResourceQuery(resource models.Resource) (string, []any, error) {
	return psql.Update(resource.TableName()).
		Set("title", resource.Title).
		Set("url", nullableString(resource.URL)).
		Set("file_path", nullableString(resource.FilePath)).
		Set("file_size", nullableInt64(resource.FileSize)).
		Set("original_filename", nullableString(resource.OriginalFilename)).
		Set("updated_at", resource.UpdatedAt).
		Where(sq.Eq{"resource_id": resource.ResourceID, "user_id": resource.UserID}).
		ToSql()
}

func buildDeleteResourceQuery(userID, resourceID int64) (string, []any, error) {
	return psql.Delete(models.Resource{}.TableName()).
		Where(sq.Eq{"resource_id": resourceID, "user_id": userID}).
		ToSql()
}

func buildListResourcesByTopicQuery(userID, topicID int64) (string, []any, error) {
	return psql.Select(resourceColumns...).
		From(models.Resource{}.TableName()).
		Where(sq.Eq{"user_id": userID, "topic_id": topicID}).
		OrderBy("created_at DESC", "resource_id DESC").
		ToSql()
}

func buildSelectAllFilePathsQuery() (string, []any, error) {
	return psql.Select("file_path").
		From(models.Resource{}.TableName()).
		Where(sq.NotEq{"file_path": nil}).
		ToSql()
}

func nullableInt64(v int64) any {
	if v == 0 {
		return nil
	}
	return v
}

// cascade delete queries

// Queries used inside the topic cascade-delete transaction. topicIDs always
// contains the deleted topic itself plus its direct subtopics.

func buildSelectSubtopicIDsQuery(userID, topicID int64) (string, []any, error) {
	return psql.Select("topic_id").
		From(models.Topic{}.TableName()).
		Where(sq.Eq{"user_id": userID, "parent_topic_id": topicID}).
		ToSql()
}

func buildSelectCascadeFilePathsQuery(userID int64, topicIDs []int64) (string, []any, error) {
	return psql.Select("file_path").
		From(models.Resource{}.TableName()).
		Where(sq.Eq{"user_id": userID, "topic_id": topicIDs}).
		Where(sq.NotEq{"file_path": nil}).
		ToSql()
}

func buildCascadeDeleteContentQuery(table string, userID int64, topicIDs []int64) (string, []any, error) {
	return psql.Delete(table).
		Where(sq.Eq{"user_id": userID, "topic_id": topicIDs}).
		ToSql()
}

func buildCascadeDeleteTopicsQuery(userID int64, topicIDs []int64) (string, []any, error) {
	return psql.Delete(models.Topic{}.TableName()).
		Where(sq.Eq{"user_id": userID, "topic_id": topicIDs}).
		ToSql()
}
