package domain

// Image is a reference to remote artwork.
type Image struct {
	URL string
}

// Artist represents one artist from the user's music taste. Artists are
// immutable once obtained from the artist catalog.
type Artist struct {
	ID     string
	Name   string
	Images []Image
}
