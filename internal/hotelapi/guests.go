package hotelapi

import (
	"context"
)

type SignupInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResult struct {
	GuestID string
	Name    string
	Email   string
	Token   string
	Message string
}

type guestBody struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type loginResponse struct {
	Message string     `json:"message"`
	Token   string     `json:"token"`
	Guest   *guestBody `json:"guest"`
	User    *guestBody `json:"user"`
	GuestID string     `json:"guestId"`
	Name    string     `json:"name"`
	Email   string     `json:"email"`
}

func (c *Client) Signup(ctx context.Context, in SignupInput) (string, error) {
	var out messageResponse
	resp, err := c.request(ctx).SetBody(in).SetResult(&out).Post("/api/guests/signup")
	if err := check(resp, err, "Signup failed"); err != nil {
		return "", err
	}
	return orDefault(out.Message, "Signup successful"), nil
}

// Login exchanges credentials for a bearer token. The guest identity may come back under
// "guest", "user" or at the top level depending on the API version.
func (c *Client) Login(ctx context.Context, in LoginInput) (LoginResult, error) {
	var out loginResponse
	resp, err := c.request(ctx).SetBody(in).SetResult(&out).Post("/api/guests/login")
	if err := check(resp, err, "Login failed"); err != nil {
		return LoginResult{}, err
	}

	res := LoginResult{
		GuestID: out.GuestID,
		Name:    out.Name,
		Email:   out.Email,
		Token:   out.Token,
		Message: orDefault(out.Message, "Login successful"),
	}
	for _, g := range []*guestBody{out.User, out.Guest} {
		if g == nil {
			continue
		}
		if g.ID != "" {
			res.GuestID = g.ID
		}
		if g.Name != "" {
			res.Name = g.Name
		}
		if g.Email != "" {
			res.Email = g.Email
		}
	}
	return res, nil
}
