// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package document manages the guide and reference articles of the VVDex site.

It holds both sides of the resource:

  - Server: repository contract, PostgreSQL implementation, service and HTTP handler.
  - Client: the [store.API] binding and the document [store.Store] used by admin tools.

The publication flag has a single canonical field, [Document.Published]. Legacy
payloads that still send "isPublished" are folded into it when decoding.
*/
package document

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/taibuivan/vvdex/pkg/pointer"
	"github.com/taibuivan/vvdex/pkg/slice"
)

// # Field Identifiers

const (
	FieldTitle     = "title"
	FieldContent   = "content"
	FieldCategory  = "category"
	FieldAuthor    = "author"
	FieldTags      = "tags"
	FieldPublished = "is_published"
	FieldCreatedAt = "created_at"
	FieldUpdatedAt = "updated_at"
)

// # Domain Entity

// Document is a published or draft article.
type Document struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Category  string    `json:"category"`
	Author    string    `json:"author"`
	Tags      []string  `json:"tags"`
	Published bool      `json:"is_published"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UnmarshalJSON decodes a document, accepting the legacy "isPublished" alias.
// When both spellings are present "is_published" wins.
func (d *Document) UnmarshalJSON(data []byte) error {
	type plain Document
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

// Normalize returns the document with trimmed text fields and a non-nil,
// de-duplicated tag list.
func Normalize(d Document) Document {
	d.Title = strings.TrimSpace(d.Title)
	d.Category = strings.TrimSpace(d.Category)
	d.Author = strings.TrimSpace(d.Author)
	d.Tags = normalizeTags(d.Tags)
	return d
}

func normalizeTags(tags []string) []string {
	cleaned := slice.Filter(slice.Map(tags, strings.TrimSpace), func(tag string) bool { return tag != "" })
	if cleaned == nil {
		return []string{}
	}
	return slice.Distinct(cleaned)
}

// # Resource Capabilities

// ResourceID implements [store.Item].
func (d Document) ResourceID() string { return d.ID }

// ResourceCategory implements [store.Item].
func (d Document) ResourceCategory() string { return d.Category }

// DefaultName implements [multisort.Named]; documents sort by title.
func (d Document) DefaultName() string { return d.Title }

// TranslatedName implements [multisort.Named]. Documents are single-language.
func (d Document) TranslatedName(string) (string, bool) { return "", false }

// TypeName implements [multisort.Typed] using the category.
func (d Document) TypeName() string { return d.Category }

// SortField implements [multisort.Fielded].
func (d Document) SortField(key string) (any, bool) {
	switch key {
	case FieldTitle:
		return d.Title, true
	case FieldCategory:
		return d.Category, true
	case FieldAuthor:
		return d.Author, true
	case FieldPublished, "published":
		return d.Published, true
	case FieldCreatedAt:
		return d.CreatedAt, true
	case FieldUpdatedAt:
		return d.UpdatedAt, true
	case FieldTags:
		return len(d.Tags), true
	}
	return nil, false
}

// # Write Models

// Draft is the payload for creating a document. The server assigns the id and timestamps.
type Draft struct {
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Category  string   `json:"category"`
	Author    string   `json:"author"`
	Tags      []string `json:"tags"`
	Published bool     `json:"is_published"`
}

// UnmarshalJSON decodes a draft, accepting the legacy "isPublished" alias.
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
	Title     *string   `json:"title,omitempty"`
	Content   *string   `json:"content,omitempty"`
	Category  *string   `json:"category,omitempty"`
	Author    *string   `json:"author,omitempty"`
	Tags      *[]string `json:"tags,omitempty"`
	Published *bool     `json:"is_published,omitempty"`
}

// UnmarshalJSON decodes a patch, accepting the legacy "isPublished" alias.
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
	return p.Title == nil && p.Content == nil && p.Category == nil &&
		p.Author == nil && p.Tags == nil && p.Published == nil
}

// Apply returns d with the patch's non-nil fields applied.
func (p Patch) Apply(d Document) Document {
	d.Title = pointer.Fallback(p.Title, d.Title)
	d.Content = pointer.Fallback(p.Content, d.Content)
	d.Category = pointer.Fallback(p.Category, d.Category)
	d.Author = pointer.Fallback(p.Author, d.Author)
	d.Tags = pointer.Fallback(p.Tags, d.Tags)
	d.Published = pointer.Fallback(p.Published, d.Published)
	return d
}

// # Filters

// Filter narrows the server-side document list.
type Filter struct {
	Published *bool
	Category  string
	SortBy    string
	SortOrder string
}

// sortColumns lists the accepted server-side sort keys.
var sortColumns = []string{FieldCreatedAt, FieldUpdatedAt, FieldTitle, FieldCategory}
