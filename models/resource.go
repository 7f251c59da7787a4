// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Avdeyev

package models

import (
	"io"
	"time"
)

// ResourceType discriminates the two payload shapes a resource can carry.
type ResourceType string

const (
	// ResourceTypeLink is an external URL.
	ResourceTypeLink ResourceType = "link"

	// ResourceTypePDF is an uploaded file stored under the upload root.
	ResourceTypePDF ResourceType = "pdf"
)

// Valid reports whether the type is one of the known resource kinds.
func (t ResourceType) Valid() bool {
	return t == ResourceTypeLink || t == ResourceTypePDF
}

// Resource is a link or uploaded file attached to a topic. Exactly one
// payload is populated depending on Type: URL for links, the file triple
// (FilePath, FileSize, OriginalFilename) for PDFs.
type Resource struct {
	ResourceID int64        `json:"id"`
	Title      string       `json:"title"`
	Type       ResourceType `json:"resource_type"`

	// URL is set only for link resources.
	URL string `json:"url,omitempty"`

	// FilePath is the stored file location relative to the configured
	// upload root, set only for pdf resources. Keeping it relative lets
	// the upload root move without invalidating stored rows.
	FilePath string `json:"-"`

	// FileSize is the stored file size in bytes, set only for pdf resources.
	FileSize int64 `json:"file_size,omitempty"`

	// OriginalFilename is the name the file had when uploaded, before
	// sanitization. It is the suggested name on download.
	OriginalFilename string `json:"original_filename,omitempty"`

	// UserID is the denormalized owner id, always equal to the parent
	// topic's owner.
	UserID int64 `json:"-"`

	// TopicID is the parent topic the resource belongs to.
	TopicID int64 `json:"topic_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Resource model.
func (r Resource) TableName() string {
	return "resources"
}

// IsLink reports whether the resource is an external URL.
func (r Resource) IsLink() bool {
	return r.Type == ResourceTypeLink
}

// IsPDF reports whether the resource is an uploaded file.
func (r Resource) IsPDF() bool {
	return r.Type == ResourceTypePDF
}

// CreateLinkResourceRequest carries the fields accepted when attaching
// an external URL to a topic.
type CreateLinkResourceRequest struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// UpdateResourceRequest carries a partial resource update. Nil fields
// retain their previous values. URL applies only to link resources and is
// ignored otherwise; the file replacement pair applies only to pdf
// resources and is likewise ignored for links.
type UpdateResourceRequest struct {
	Title *string `json:"title"`
	URL   *string `json:"url"`

	// NewFile replaces the stored file of a pdf resource. It is populated
	// from multipart uploads, never from a JSON body.
	NewFile     io.Reader `json:"-"`
	NewFilename string    `json:"-"`
}
