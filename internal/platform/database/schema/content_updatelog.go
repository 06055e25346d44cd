package schema

// ContentUpdateLogTable represents the 'content.updatelog' table
type ContentUpdateLogTable struct {
	Table       string
	ID          string
	Version     string
	Title       string
	Content     string
	Category    string
	Author      string
	Tags        string
	IsPublished string
	ReleasedAt  string
	CreatedAt   string
	UpdatedAt   string
}

// ContentUpdateLog is the schema definition for content.updatelog
var ContentUpdateLog = ContentUpdateLogTable{
	Table:       "content.updatelog",
	ID:          "id",
	Version:     "version",
	Title:       "title",
	Content:     "content",
	Category:    "category",
	Author:      "author",
	Tags:        "tags",
	IsPublished: "ispublished",
	ReleasedAt:  "releasedat",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

// Columns returns the select list in scan order.
func (t ContentUpdateLogTable) Columns() []string {
	return []string{t.ID, t.Version, t.Title, t.Content, t.Category, t.Author, t.Tags, t.IsPublished, t.ReleasedAt, t.CreatedAt, t.UpdatedAt}
}
