package entity

// Catalog is one snapshot of everything the browse pipeline reads.
type Catalog struct {
	Listings   []*Listing  `json:"listings"`
	Categories []*Category `json:"categories"`
}
