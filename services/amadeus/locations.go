package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"maxxtravel/models"
)

type locationsResponse struct {
	Data []struct {
		IataCode string `json:"iataCode"`
		SubType  string `json:"subType"`
		Name     string `json:"name"`
	} `json:"data"`
}

// ResolveLocation looks up reference-data locations for a keyword, scoped to
// the given subtypes (e.g. CITY, AIRPORT).
func (c *Client) ResolveLocation(ctx context.Context, keyword string, subTypes []string) ([]models.Location, error) {
	path := fmt.Sprintf("/v1/reference-data/locations?keyword=%s&subType=%s",
		url.QueryEscape(keyword),
		url.QueryEscape(strings.Join(subTypes, ",")),
	)

	body, err := c.doRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var resp locationsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("amadeus: failed to parse locations: %w", err)
	}

	locations := make([]models.Location, 0, len(resp.Data))
	for _, d := range resp.Data {
		locations = append(locations, models.Location{
			Code:    d.IataCode,
			SubType: d.SubType,
			Name:    d.Name,
		})
	}
	return locations, nil
}
