package instagram

import (
	"context"
	"net/http"
	"net/url"

	"github.com/blacktop/igpost/internal/igpost"
)

const locationSearchURI = "/api/v1/location_search/"

type locationSearchResponse struct {
	Venues  []igpost.Venue `json:"venues"`
	Status  string         `json:"status"`
	Message string         `json:"message"`
}

// SearchLocation returns venues matching name, best match first.
func (c *Client) SearchLocation(ctx context.Context, name string) ([]igpost.Venue, error) {
	query := url.Values{"search_query": {name}}

	var resp locationSearchResponse
	err := c.Do(ctx, igpost.APIRequest{
		URI:    locationSearchURI + "?" + query.Encode(),
		Method: http.MethodGet,
	}, &resp)
	if err != nil {
		return nil, err
	}
	if resp.Status != "" && resp.Status != "ok" {
		return nil, igpost.APIError{Endpoint: locationSearchURI, StatusCode: http.StatusOK, Status: resp.Status, Message: resp.Message}
	}
	return resp.Venues, nil
}
