package hotelapi

import (
	"context"

	"github.com/Domenick1991/sunshinehotel/internal/domain"
)

type feedbacksResponse struct {
	Feedbacks []domain.Feedback `json:"feedbacks"`
}

func (c *Client) SubmitFeedback(ctx context.Context, fb domain.Feedback) (string, error) {
	var out messageResponse
	resp, err := c.request(ctx).SetBody(fb).SetResult(&out).Post("/api/feedback/add")
	if err := check(resp, err, "Failed to submit feedback"); err != nil {
		return "", err
	}
	return orDefault(out.Message, "Thank you for your feedback"), nil
}

func (c *Client) ListFeedbacks(ctx context.Context) ([]domain.Feedback, error) {
	var out feedbacksResponse
	resp, err := c.request(ctx).SetResult(&out).Get("/api/admin/feedbacks")
	if err := check(resp, err, "Failed to fetch feedbacks"); err != nil {
		return nil, err
	}
	if out.Feedbacks == nil {
		return []domain.Feedback{}, nil
	}
	return out.Feedbacks, nil
}

type foodOrderBody struct {
	FoodName     string `json:"foodName"`
	Quantity     int    `json:"quantity"`
	PricePerUnit int64  `json:"pricePerUnit"`
	GuestID      string `json:"guestId"`
}

func (c *Client) PlaceFoodOrder(ctx context.Context, order domain.FoodOrder) (string, error) {
	var out messageResponse
	resp, err := c.request(ctx).SetBody(foodOrderBody{
		FoodName:     order.FoodName,
		Quantity:     order.Quantity,
		PricePerUnit: order.PricePerUnit,
		GuestID:      order.GuestID,
	}).SetResult(&out).Post("/api/food-orders")
	if err := check(resp, err, "Order failed"); err != nil {
		return "", err
	}
	return orDefault(out.Message, "Order placed successfully"), nil
}
