package backend

import (
	"context"
	"net/url"
	"time"

	"github.com/nudostudio/nudo/pkg/calendar"
)

// Workshop is a scheduled macramé class.
type Workshop struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	StartsAt    time.Time `json:"starts_at"`
	Seats       int       `json:"seats"`
	Available   int       `json:"available"`
	Price       int64     `json:"price"`
}

// Event converts the workshop for the calendar grid.
func (w Workshop) Event() calendar.Event {
	return calendar.Event{ID: w.ID, Title: w.Title, Start: w.StartsAt, Seats: w.Available}
}

const workshopsTable = "workshops"

// ListWorkshops returns workshops starting in [from, to), earliest first.
func (c *Client) ListWorkshops(ctx context.Context, from, to time.Time) ([]Workshop, error) {
	q := url.Values{}
	q.Set("select", "*")
	q.Add("starts_at", "gte."+from.UTC().Format(time.RFC3339))
	q.Add("starts_at", "lt."+to.UTC().Format(time.RFC3339))
	q.Set("order", "starts_at.asc")

	var out []Workshop
	if err := c.List(ctx, workshopsTable, q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetWorkshop returns one workshop or ErrNotFound.
func (c *Client) GetWorkshop(ctx context.Context, id string) (Workshop, error) {
	q := url.Values{}
	q.Set("select", "*")
	q.Set("id", "eq."+id)
	q.Set("limit", "1")

	var out []Workshop
	if err := c.List(ctx, workshopsTable, q, &out); err != nil {
		return Workshop{}, err
	}
	if len(out) == 0 {
		return Workshop{}, ErrNotFound
	}
	return out[0], nil
}
