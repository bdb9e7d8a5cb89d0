package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Book is a tracked reading item. JSON field names are camelCase because they
// are the wire contract consumed by the frontend.
type Book struct {
	bun.BaseModel `bun:"table:books,alias:b"`

	ID          string     `bun:",pk,nullzero" json:"id"`
	Title       string     `bun:",nullzero" json:"title"`
	Author      string     `json:"author"`
	CoverImage  string     `json:"coverImage"`
	GenreTags   StringList `json:"genreTags"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}
