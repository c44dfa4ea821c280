package models

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Product struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	Price             float64   `json:"price"`
	TotalItemsInStock int       `json:"totalItemsInStock"`
	ImageUrl          string    `json:"imageUrl"`
	Category          *Category `json:"category,omitempty"`
}

// ProductInput is the write shape the backend expects: the category travels
// by id, not as a nested object.
type ProductInput struct {
	Name              string  `json:"name" binding:"required"`
	Price             float64 `json:"price" binding:"required"`
	TotalItemsInStock int     `json:"totalItemsInStock"`
	ImageUrl          string  `json:"imageUrl"`
	CategoryID        int64   `json:"categoryId" binding:"required"`
}

func (p Product) InStock() bool {
	return p.TotalItemsInStock > 0
}
