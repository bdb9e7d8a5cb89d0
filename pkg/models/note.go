package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Note is a per-chapter reading log entry attached to a Book. BookID is not
// enforced as a foreign key: a note may outlive a racing book deletion, which
// is accepted.
type Note struct {
	bun.BaseModel `bun:"table:notes,alias:n"`

	ID              string     `bun:",pk,nullzero" json:"id"`
	BookID          string     `bun:"book_id,nullzero" json:"book"`
	Title           string     `json:"title"`
	Chapter         *int       `json:"chapter,omitempty"`
	Pages           string     `json:"pages"`
	DateLogged      *time.Time `json:"dateLogged,omitempty"`
	Thoughts        string     `bun:",nullzero" json:"thoughts"`
	FavouriteQuotes StringList `json:"favouriteQuotes"`
	Rating          int        `json:"rating"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}
