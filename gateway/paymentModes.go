package gateway

import (
	"context"
	"fmt"

	"github.com/Rovan44/shopfront-api/models"
)

func (c *Client) GetPaymentModes(ctx context.Context) ([]models.PaymentMode, error) {
	return c.paymentModes(ctx, "/payment-modes")
}

// GetActivePaymentModes returns only the modes offered at checkout.
func (c *Client) GetActivePaymentModes(ctx context.Context) ([]models.PaymentMode, error) {
	return c.paymentModes(ctx, "/payment-modes/active")
}

func (c *Client) paymentModes(ctx context.Context, path string) ([]models.PaymentMode, error) {
	resp, err := c.http.R().SetContext(ctx).Get(path)
	if err != nil {
		return nil, err
	}

	var modes []models.PaymentMode
	if err := decode(resp, &modes); err != nil {
		return nil, err
	}
	return modes, nil
}

func (c *Client) CreatePaymentMode(ctx context.Context, mode models.PaymentMode) (*models.PaymentMode, error) {
	resp, err := c.http.R().SetContext(ctx).SetBody(mode).Post("/payment-modes")
	if err != nil {
		return nil, err
	}

	var created models.PaymentMode
	if err := decode(resp, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdatePaymentMode(ctx context.Context, id int64, mode models.PaymentMode) (*models.PaymentMode, error) {
	resp, err := c.http.R().SetContext(ctx).SetBody(mode).Put(fmt.Sprintf("/payment-modes/%d", id))
	if err != nil {
		return nil, err
	}

	var updated models.PaymentMode
	if err := decode(resp, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) TogglePaymentMode(ctx context.Context, id int64) error {
	resp, err := c.http.R().SetContext(ctx).Patch(fmt.Sprintf("/payment-modes/%d/toggle-active", id))
	if err != nil {
		return err
	}
	return decode(resp, nil)
}

func (c *Client) DeletePaymentMode(ctx context.Context, id int64) error {
	resp, err := c.http.R().SetContext(ctx).Delete(fmt.Sprintf("/payment-modes/%d", id))
	if err != nil {
		return err
	}
	return decode(resp, nil)
}
