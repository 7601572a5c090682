package client

import "context"

func (c *Client) GetLocations(ctx context.Context) ([]Location, error) {
	locations := []Location{}
	if err := c.get(ctx, "/locations", &locations); err != nil {
		return nil, err
	}
	return locations, nil
}

func (c *Client) GetLocationByID(ctx context.Context, id string) (*Location, error) {
	var location Location
	if err := c.get(ctx, "/locations/"+id, &location); err != nil {
		return nil, err
	}
	return &location, nil
}

func (c *Client) CreateLocation(ctx context.Context, req CreateLocationRequest) (*Location, error) {
	var location Location
	if err := c.post(ctx, "/locations", req, &location); err != nil {
		return nil, err
	}
	return &location, nil
}

func (c *Client) UpdateLocation(ctx context.Context, id string, req UpdateLocationRequest) (*Location, error) {
	var location Location
	if err := c.put(ctx, "/locations/"+id, req, &location); err != nil {
		return nil, err
	}
	return &location, nil
}

func (c *Client) DeleteLocation(ctx context.Context, id string) error {
	return c.del(ctx, "/locations/"+id, nil)
}
