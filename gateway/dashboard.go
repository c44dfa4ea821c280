package gateway

import (
	"context"

	"github.com/Rovan44/shopfront-api/models"
)

func (c *Client) GetDashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	resp, err := c.http.R().SetContext(ctx).Get("/dashboard")
	if err != nil {
		return nil, err
	}

	var stats models.DashboardStats
	if err := decode(resp, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
