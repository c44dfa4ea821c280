package gateway

import (
	"context"

	"github.com/Rovan44/shopfront-api/models"
)

func (c *Client) GetCategories(ctx context.Context) ([]models.Category, error) {
	resp, err := c.http.R().SetContext(ctx).Get("/categories")
	if err != nil {
		return nil, err
	}

	var categories []models.Category
	if err := decode(resp, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}
