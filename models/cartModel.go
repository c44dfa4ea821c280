package models

import (
	"errors"
	"sync"
)

var (
	ErrOutOfStock    = errors.New("product is out of stock")
	ErrStockExceeded = errors.New("not enough items in stock")
)

type CartLine struct {
	ProductID         int64   `json:"productId"`
	Name              string  `json:"name"`
	Price             float64 `json:"price"`
	TotalItemsInStock int     `json:"totalItemsInStock"`
	Quantity          int     `json:"quantity"`
}

// Cart holds the shopping session's lines in the order products were added.
// Stock is checked against the snapshot taken when the line was added; the
// backend re-validates at checkout. Methods are safe for concurrent handler
// goroutines sharing one session; readers iterating the lines must go
// through Snapshot.
type Cart struct {
	mu    sync.Mutex
	Lines []CartLine `json:"lines"`
}

func NewCart() *Cart {
	return &Cart{Lines: []CartLine{}}
}

// AddLine puts one unit of the product in the cart. Adding to an existing
// line bumps its quantity by one as long as stock allows.
func (c *Cart) AddLine(product Product) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.Lines {
		if c.Lines[i].ProductID == product.ID {
			if c.Lines[i].Quantity+1 > product.TotalItemsInStock {
				return ErrStockExceeded
			}
			c.Lines[i].Quantity++
			return nil
		}
	}

	if !product.InStock() {
		return ErrOutOfStock
	}

	c.Lines = append(c.Lines, CartLine{
		ProductID:         product.ID,
		Name:              product.Name,
		Price:             product.Price,
		TotalItemsInStock: product.TotalItemsInStock,
		Quantity:          1,
	})
	return nil
}

// SetQuantity sets the line to any positive quantity the caller asks for;
// clamping against stock is the caller's job. Zero or less removes the line.
func (c *Cart) SetQuantity(productID int64, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if quantity <= 0 {
		c.removeLine(productID)
		return
	}
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines[i].Quantity = quantity
			return
		}
	}
}

func (c *Cart) RemoveLine(productID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLine(productID)
}

func (c *Cart) removeLine(productID int64) {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}

func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total float64
	for _, line := range c.Lines {
		total += line.Price * float64(line.Quantity)
	}
	return total
}

func (c *Cart) IsEmpty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.Lines) == 0
}

func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Lines = []CartLine{}
}

// Snapshot returns a copy of the lines for iteration or serialization
// outside the cart's lock.
func (c *Cart) Snapshot() []CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()

	lines := make([]CartLine, len(c.Lines))
	copy(lines, c.Lines)
	return lines
}
