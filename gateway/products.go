package gateway

import (
	"context"
	"fmt"

	"github.com/Rovan44/shopfront-api/models"
)

func (c *Client) GetProducts(ctx context.Context) ([]models.Product, error) {
	resp, err := c.http.R().SetContext(ctx).Get("/products")
	if err != nil {
		return nil, err
	}

	var products []models.Product
	if err := decode(resp, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	resp, err := c.http.R().SetContext(ctx).Get(fmt.Sprintf("/products/%d", id))
	if err != nil {
		return nil, err
	}

	var product models.Product
	if err := decode(resp, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) CreateProduct(ctx context.Context, input models.ProductInput) (*models.Product, error) {
	resp, err := c.http.R().SetContext(ctx).SetBody(input).Post("/products")
	if err != nil {
		return nil, err
	}

	var product models.Product
	if err := decode(resp, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id int64, input models.ProductInput) (*models.Product, error) {
	resp, err := c.http.R().SetContext(ctx).SetBody(input).Put(fmt.Sprintf("/products/%d", id))
	if err != nil {
		return nil, err
	}

	var product models.Product
	if err := decode(resp, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	resp, err := c.http.R().SetContext(ctx).Delete(fmt.Sprintf("/products/%d", id))
	if err != nil {
		return err
	}
	return decode(resp, nil)
}

// ReduceStock tells the backend to subtract quantity from the product's
// stock. The backend rejects reductions below zero.
func (c *Client) ReduceStock(ctx context.Context, id int64, quantity int) (*models.Product, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]int{"quantity": quantity}).
		Patch(fmt.Sprintf("/products/%d/reduce-stock", id))
	if err != nil {
		return nil, err
	}

	var product models.Product
	if err := decode(resp, &product); err != nil {
		return nil, err
	}
	return &product, nil
}
