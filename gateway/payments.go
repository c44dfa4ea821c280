package gateway

import (
	"context"
	"fmt"

	"github.com/Rovan44/shopfront-api/models"
)

// CreatePayment records a payment with the backend. This is the checkout's
// commit point: a returned record means the payment exists remotely.
func (c *Client) CreatePayment(ctx context.Context, request models.CheckoutRequest) (*models.Payment, error) {
	resp, err := c.http.R().SetContext(ctx).SetBody(request).Post("/payments")
	if err != nil {
		return nil, err
	}

	var payment models.Payment
	if err := decode(resp, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

func (c *Client) GetPayments(ctx context.Context) ([]models.Payment, error) {
	return c.payments(ctx, "/payments")
}

func (c *Client) GetPayment(ctx context.Context, id int64) (*models.Payment, error) {
	resp, err := c.http.R().SetContext(ctx).Get(fmt.Sprintf("/payments/%d", id))
	if err != nil {
		return nil, err
	}

	var payment models.Payment
	if err := decode(resp, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

func (c *Client) GetPaymentByTransactionID(ctx context.Context, transactionID string) (*models.Payment, error) {
	resp, err := c.http.R().SetContext(ctx).Get("/payments/transaction/" + transactionID)
	if err != nil {
		return nil, err
	}

	var payment models.Payment
	if err := decode(resp, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

func (c *Client) GetPaymentsByStatus(ctx context.Context, status models.PaymentStatus) ([]models.Payment, error) {
	return c.payments(ctx, "/payments/status/"+string(status))
}

func (c *Client) payments(ctx context.Context, path string) ([]models.Payment, error) {
	resp, err := c.http.R().SetContext(ctx).Get(path)
	if err != nil {
		return nil, err
	}

	var payments []models.Payment
	if err := decode(resp, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

func (c *Client) GetTotalCompletedPayments(ctx context.Context) (float64, error) {
	resp, err := c.http.R().SetContext(ctx).Get("/payments/total/completed")
	if err != nil {
		return 0, err
	}

	var total float64
	if err := decode(resp, &total); err != nil {
		return 0, err
	}
	return total, nil
}

func (c *Client) GetPaymentCountByStatus(ctx context.Context, status models.PaymentStatus) (int64, error) {
	resp, err := c.http.R().SetContext(ctx).Get("/payments/count/status/" + string(status))
	if err != nil {
		return 0, err
	}

	var count int64
	if err := decode(resp, &count); err != nil {
		return 0, err
	}
	return count, nil
}

func (c *Client) UpdatePaymentStatus(ctx context.Context, id int64, status models.PaymentStatus) (*models.Payment, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]models.PaymentStatus{"status": status}).
		Patch(fmt.Sprintf("/payments/%d/status", id))
	if err != nil {
		return nil, err
	}

	var payment models.Payment
	if err := decode(resp, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

func (c *Client) DeletePayment(ctx context.Context, id int64) error {
	resp, err := c.http.R().SetContext(ctx).Delete(fmt.Sprintf("/payments/%d", id))
	if err != nil {
		return err
	}
	return decode(resp, nil)
}
