package model

// Asset is a uniquely identified record of ownership of a tradable item.
// Name, Description and Image are opaque and never validated.
type Asset struct {
	ID          uint64    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Creator     Principal `json:"creator"`
	Owner       Principal `json:"owner"`
	Price       uint64    `json:"price"`
	ForSale     bool      `json:"for_sale"`
}
