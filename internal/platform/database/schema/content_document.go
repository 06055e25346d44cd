package schema

// ContentDocumentTable represents the 'content.document' table
type ContentDocumentTable struct {
	Table       string
	ID          string
	Title       string
	Content     string
	Category    string
	Author      string
	Tags        string
	IsPublished string
	CreatedAt   string
	UpdatedAt   string
}

// ContentDocument is the schema definition for content.document
var ContentDocument = ContentDocumentTable{
	Table:       "content.document",
	ID:          "id",
	Title:       "title",
	Content:     "content",
	Category:    "category",
	Author:      "author",
	Tags:        "tags",
	IsPublished: "ispublished",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

// Columns returns the select list in scan order.
func (t ContentDocumentTable) Columns() []string {
	return []string{t.ID, t.Title, t.Content, t.Category, t.Author, t.Tags, t.IsPublished, t.CreatedAt, t.UpdatedAt}
}
