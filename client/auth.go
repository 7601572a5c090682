package client

import "context"

type authRequest struct {
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`
	Action   string `json:"action"`
}

// SignUp registers a new account. The server queues a confirmation email as
// a side effect.
func (c *Client) SignUp(ctx context.Context, email, password string) (*AuthResponse, error) {
	var resp AuthResponse
	err := c.post(ctx, "/auth", authRequest{Email: email, Password: password, Action: "signup"}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// SignIn authenticates and, on success, stores the returned access token on
// the client so later calls are authenticated.
func (c *Client) SignIn(ctx context.Context, email, password string) (*AuthResponse, error) {
	var resp AuthResponse
	err := c.post(ctx, "/auth", authRequest{Email: email, Password: password, Action: "signin"}, &resp)
	if err != nil {
		return nil, err
	}
	if resp.Session != nil {
		c.SetToken(resp.Session.AccessToken)
	}
	return &resp, nil
}

// SignOut revokes the current session and clears the stored token.
func (c *Client) SignOut(ctx context.Context) (*AuthResponse, error) {
	var resp AuthResponse
	err := c.post(ctx, "/auth", authRequest{Action: "signout"}, &resp)
	if err != nil {
		return nil, err
	}
	c.SetToken("")
	return &resp, nil
}

// Me returns the authenticated user's record.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var user User
	if err := c.get(ctx, "/me", &user); err != nil {
		return nil, err
	}
	return &user, nil
}
