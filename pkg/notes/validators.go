package notes

type UpdateNotePayload struct {
	Title           *string  `json:"title,omitempty" mod:"trim" validate:"omitempty,max=300"`
	Chapter         *int     `json:"chapter,omitempty" validate:"omitempty,min=0"`
	Pages           *string  `json:"pages,omitempty" mod:"trim" validate:"omitempty,max=100"`
	DateLogged      *string  `json:"dateLogged,omitempty" validate:"omitempty,date"`
	Thoughts        *string  `json:"thoughts,omitempty" mod:"trim" validate:"omitempty,max=10000"`
	FavouriteQuotes []string `json:"favouriteQuotes,omitempty" validate:"omitempty,dive,max=1000"`
	Rating          *int     `json:"rating,omitempty" validate:"omitempty,min=0,max=5"`
}
