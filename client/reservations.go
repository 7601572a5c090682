package client

import "context"

// GetReservations lists reservations filtered by user and/or court. The
// query string always places userId before courtId; routes rely on this
// composition order.
func (c *Client) GetReservations(ctx context.Context, userID, courtID string) ([]Reservation, error) {
	path := "/reservations"
	if userID != "" {
		path += "?userId=" + userID
		if courtID != "" {
			path += "&courtId=" + courtID
		}
	} else if courtID != "" {
		path += "?courtId=" + courtID
	}

	reservations := []Reservation{}
	if err := c.get(ctx, path, &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}

func (c *Client) GetReservationByID(ctx context.Context, id string) (*Reservation, error) {
	var res Reservation
	if err := c.get(ctx, "/reservations/"+id, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) CreateReservation(ctx context.Context, req CreateReservationRequest) (*Reservation, error) {
	var res Reservation
	if err := c.post(ctx, "/reservations", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) UpdateReservation(ctx context.Context, id string, req UpdateReservationRequest) (*Reservation, error) {
	var res Reservation
	if err := c.put(ctx, "/reservations/"+id, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// CancelReservation flips the reservation to cancelled via the update path.
// Cancellation is a state transition, not a removal, so history is kept.
func (c *Client) CancelReservation(ctx context.Context, id string) (*Reservation, error) {
	status := StatusCancelled
	return c.UpdateReservation(ctx, id, UpdateReservationRequest{Status: &status})
}

func (c *Client) DeleteReservation(ctx context.Context, id string) error {
	return c.del(ctx, "/reservations/"+id, nil)
}
