package googlebooks

type SearchPayload struct {
	Title string `json:"title" query:"title" mod:"trim" validate:"max=300"`
}
