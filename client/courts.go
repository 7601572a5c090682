package client

import "context"

// GetCourts lists courts, optionally filtered to one location. Pass an empty
// locationID for all courts.
func (c *Client) GetCourts(ctx context.Context, locationID string) ([]Court, error) {
	path := "/courts"
	if locationID != "" {
		path += "?locationId=" + locationID
	}

	courts := []Court{}
	if err := c.get(ctx, path, &courts); err != nil {
		return nil, err
	}
	return courts, nil
}

func (c *Client) GetCourtByID(ctx context.Context, id string) (*Court, error) {
	var court Court
	if err := c.get(ctx, "/courts/"+id, &court); err != nil {
		return nil, err
	}
	return &court, nil
}

func (c *Client) CreateCourt(ctx context.Context, req CreateCourtRequest) (*Court, error) {
	var court Court
	if err := c.post(ctx, "/courts", req, &court); err != nil {
		return nil, err
	}
	return &court, nil
}

func (c *Client) UpdateCourt(ctx context.Context, id string, req UpdateCourtRequest) (*Court, error) {
	var court Court
	if err := c.put(ctx, "/courts/"+id, req, &court); err != nil {
		return nil, err
	}
	return &court, nil
}

func (c *Client) DeleteCourt(ctx context.Context, id string) error {
	return c.del(ctx, "/courts/"+id, nil)
}
