// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package updatelog manages the release notes feed ("update logs") of the game.

An update log is a document pinned to a game version and a release date. The
package mirrors package document: repository, service and HTTP handler on the
server side, and the [store.API] binding on the client side.
*/
package updatelog

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/taibuivan/vvdex/pkg/pointer"
	"github.com/taibuivan/vvdex/pkg/slice"
)

// # Field Identifiers

const (
	FieldVersion    = "version"
	FieldTitle      = "title"
	FieldContent    = "content"
	FieldCategory   = "category"
	FieldAuthor     = "author"
	FieldTags       = "tags"
	FieldPublished  = "is_published"
	FieldReleasedAt = "released_at"
	FieldCreatedAt  = "created_at"
	FieldUpdatedAt  = "updated_at"
)

// DefaultCategory is assigned to logs posted without a category.
const DefaultCategory = "general"

// # Domain Entity

// UpdateLog is one entry of the release notes feed.
type UpdateLog struct {
	ID         string    `json:"id"`
	Version    string    `json:"version"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Category   string    `json:"category"`
	Author     string    `json:"author"`
	Tags       []string  `json:"tags"`
	Published  bool      `json:"is_published"`
	ReleasedAt time.Time `json:"released_at"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// UnmarshalJSON accepts the legacy "isPublished" alias; "is_published" wins.
func (l *UpdateLog) UnmarshalJSON(data []byte) error {
	type plain UpdateLog
	aux := struct {
		*plain
		Published       *bool `json:"is_published"`
		LegacyPublished *bool `json:"isPublished"`
	}{plain: (*plain)(l)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	l.Published = pointer.Fallback(aux.Published, pointer.Val(aux.LegacyPublished))
	return nil
}

// Normalize trims text fields, fills the default category and cleans tags.
func Normalize(l UpdateLog) UpdateLog {
	l.Version = strings.TrimSpace(l.Version)
	l.Title = strings.TrimSpace(l.Title)
	l.Category = strings.TrimSpace(l.Category)
	if l.Category == "" {
		l.Category = DefaultCategory
	}
	l.Author = strings.TrimSpace(l.Author)

	l.Tags = slice.Distinct(slice.Filter(slice.Map(l.Tags, strings.TrimSpace), func(tag string) bool { return tag != "" }))
	if l.Tags == nil {
		l.Tags = []string{}
	}
	return l
}

// # Resource Capabilities

// ResourceID implements [store.Item].
func (l UpdateLog) ResourceID() string { return l.ID }

// ResourceCategory implements [store.Item].
func (l UpdateLog) ResourceCategory() string { return l.Category }

// DefaultName implements [multisort.Named]. Logs are named "version title".
func (l UpdateLog) DefaultName() string {
	return strings.TrimSpace(l.Version + " " + l.Title)
}

// TranslatedName implements [multisort.Named].
func (l UpdateLog) TranslatedName(string) (string, bool) { return "", false }

// TypeName implements [multisort.Typed].
func (l UpdateLog) TypeName() string { return l.Category }

// SortField implements [multisort.Fielded].
func (l UpdateLog) SortField(key string) (any, bool) {
	switch key {
	case FieldVersion:
		return l.Version, true
	case FieldTitle:
		return l.Title, true
	case FieldCategory:
		return l.Category, true
	case FieldAuthor:
		return l.Author, true
	case FieldPublished, "published":
		return l.Published, true
	case FieldReleasedAt:
		return l.ReleasedAt, true
	case FieldCreatedAt:
		return l.CreatedAt, true
	case FieldUpdatedAt:
		return l.UpdatedAt, true
	}
	return nil, false
}

// # Write Models

// Draft is the payload for creating an update log. ReleasedAt defaults to now.
type Draft struct {
	Version    string     `json:"version"`
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	Category   string     `json:"category"`
	Author     string     `json:"author"`
	Tags       []string   `json:"tags"`
	Published  bool       `json:"is_published"`
	ReleasedAt *time.Time `json:"released_at,omitempty"`
}

// UnmarshalJSON accepts the legacy "isPublished" alias.
func (d *Draft) UnmarshalJSON(data []byte) error {
	type plain Draft
	aux := struct {
		*plain
		Published       *bool `json:"is_published"`
		LegacyPublished *bool `json:"isPublished"`
	}{plain: (*plain)(d)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	d.Published = pointer.Fallback(aux.Published, pointer.Val(aux.LegacyPublished))
	return nil
}

// Patch is a partial update. Nil fields are left unchanged.
type Patch struct {
	Version    *string    `json:"version,omitempty"`
	Title      *string    `json:"title,omitempty"`
	Content    *string    `json:"content,omitempty"`
	Category   *string    `json:"category,omitempty"`
	Author     *string    `json:"author,omitempty"`
	Tags       *[]string  `json:"tags,omitempty"`
	Published  *bool      `json:"is_published,omitempty"`
	ReleasedAt *time.Time `json:"released_at,omitempty"`
}

// UnmarshalJSON accepts the legacy "isPublished" alias.
func (p *Patch) UnmarshalJSON(data []byte) error {
	type plain Patch
	aux := struct {
		*plain
		Published       *bool `json:"is_published"`
		LegacyPublished *bool `json:"isPublished"`
	}{plain: (*plain)(p)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	p.Published = aux.Published
	if p.Published == nil {
		p.Published = aux.LegacyPublished
	}
	return nil
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Version == nil && p.Title == nil && p.Content == nil && p.Category == nil &&
		p.Author == nil && p.Tags == nil && p.Published == nil && p.ReleasedAt == nil
}

// Apply returns l with the patch's non-nil fields applied.
func (p Patch) Apply(l UpdateLog) UpdateLog {
	l.Version = pointer.Fallback(p.Version, l.Version)
	l.Title = pointer.Fallback(p.Title, l.Title)
	l.Content = pointer.Fallback(p.Content, l.Content)
	l.Category = pointer.Fallback(p.Category, l.Category)
	l.Author = pointer.Fallback(p.Author, l.Author)
	l.Tags = pointer.Fallback(p.Tags, l.Tags)
	l.Published = pointer.Fallback(p.Published, l.Published)
	l.ReleasedAt = pointer.Fallback(p.ReleasedAt, l.ReleasedAt)
	return l
}

// # Filters

// Filter narrows the server-side list.
type Filter struct {
	Published *bool
	Category  string
	Version   string
	SortBy    string
	SortOrder string
}

var sortColumns = []string{FieldReleasedAt, FieldCreatedAt, FieldUpdatedAt, FieldVersion, FieldTitle}
