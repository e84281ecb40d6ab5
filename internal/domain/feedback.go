package domain

// Feedback is a guest review. Rating 0 means the guest did not pick any stars.
type Feedback struct {
	ID       string `json:"_id,omitempty"`
	Name     string `json:"name" validate:"required"`
	Mobile   string `json:"mobile" validate:"required"`
	Feedback string `json:"feedback" validate:"required"`
	Message  string `json:"message,omitempty"`
	Rating   int    `json:"rating" validate:"min=0,max=5"`
}

// Text returns the feedback body; older records keep it under "message".
func (f Feedback) Text() string {
	if f.Feedback != "" {
		return f.Feedback
	}
	return f.Message
}

type MenuItem struct {
	Name  string `json:"name" yaml:"name"`
	Price int64  `json:"price" yaml:"price"`
}

func DefaultMenu() []MenuItem {
	return []MenuItem{
		{Name: "Pasta", Price: 150},
		{Name: "Pizza", Price: 250},
		{Name: "Burger", Price: 120},
		{Name: "Sandwich", Price: 80},
		{Name: "Coffee", Price: 60},
	}
}

type FoodOrder struct {
	FoodName     string `json:"foodName"`
	Quantity     int    `json:"quantity"`
	PricePerUnit int64  `json:"pricePerUnit"`
	Total        int64  `json:"total"`
	GuestID      string `json:"guestId"`
}
