package instagram

import (
	"context"

	"github.com/blacktop/igpost/internal/igpost"
)

// Publish sends a configure request and returns the raw platform answer.
// Configure creates a post, so it is never retried.
func (c *Client) Publish(ctx context.Context, req igpost.APIRequest) (*igpost.ConfigureResponse, error) {
	var resp igpost.ConfigureResponse
	if err := c.Do(withoutRetry(ctx), req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
