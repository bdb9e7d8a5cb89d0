package books

type CreateBookPayload struct {
	Title       string   `json:"title" mod:"trim" validate:"max=300"`
	Author      string   `json:"author" mod:"trim" validate:"max=200"`
	CoverImage  string   `json:"coverImage" mod:"trim" validate:"max=2000"`
	GenreTags   []string `json:"genreTags" validate:"dive,max=100"`
	Description string   `json:"description" validate:"max=5000"`
}

type UpdateBookPayload struct {
	Title       *string  `json:"title,omitempty" mod:"trim" validate:"omitempty,max=300"`
	Author      *string  `json:"author,omitempty" mod:"trim" validate:"omitempty,max=200"`
	CoverImage  *string  `json:"coverImage,omitempty" mod:"trim" validate:"omitempty,max=2000"`
	GenreTags   []string `json:"genreTags,omitempty" validate:"omitempty,dive,max=100"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=5000"`
}

// CreateNotePayload is the payload for the nested note-creation endpoint. The
// book field is accepted for backwards compatibility but the path id always
// wins.
type CreateNotePayload struct {
	Book            *string  `json:"book,omitempty"`
	Title           string   `json:"title" mod:"trim" validate:"max=300"`
	Chapter         *int     `json:"chapter,omitempty" validate:"omitempty,min=0"`
	Pages           string   `json:"pages" mod:"trim" validate:"max=100"`
	DateLogged      string   `json:"dateLogged" validate:"date"`
	Thoughts        string   `json:"thoughts" mod:"trim" validate:"max=10000"`
	FavouriteQuotes []string `json:"favouriteQuotes" validate:"dive,max=1000"`
	Rating          *int     `json:"rating,omitempty" validate:"omitempty,min=0,max=5"`
}
