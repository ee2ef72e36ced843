package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"maxxtravel/models"

	"go.uber.org/zap"
)

// The sandbox only lists offers for the first batch of hotels; more ids just
// burn the rate limit.
const maxHotelIDs = 20

type hotelListResponse struct {
	Data []struct {
		HotelID string `json:"hotelId"`
		Name    string `json:"name"`
	} `json:"data"`
}

type hotelOffersResponse struct {
	Data []struct {
		Hotel struct {
			HotelID  string `json:"hotelId"`
			Name     string `json:"name"`
			CityCode string `json:"cityCode"`
		} `json:"hotel"`
		Available bool `json:"available"`
		Offers    []struct {
			Price struct {
				Total    string `json:"total"`
				Currency string `json:"currency"`
			} `json:"price"`
		} `json:"offers"`
	} `json:"data"`
}

// SearchHotels finds available hotel offers for a city and stay window.
// Two steps against the self-service APIs: list hotel ids by city, then fetch
// offers for those ids.
func (c *Client) SearchHotels(ctx context.Context, cityCode, checkIn, checkOut string, adults int) ([]models.HotelOffer, error) {
	cityCode = NormalizeCityCode(cityCode)
	if adults <= 0 {
		adults = 1
	}

	if c.mockHotels {
		c.logger.Debug("using mock hotel search data", zap.String("cityCode", cityCode))
		return mockHotelOffers(cityCode, checkIn, checkOut, adults), nil
	}

	hotelIDs, err := c.hotelIDsByCity(ctx, cityCode)
	if err != nil {
		return nil, fmt.Errorf("hotel list failed: %w", err)
	}
	if len(hotelIDs) == 0 {
		return nil, nil
	}
	if len(hotelIDs) > maxHotelIDs {
		hotelIDs = hotelIDs[:maxHotelIDs]
	}

	return c.hotelOffers(ctx, hotelIDs, checkIn, checkOut, adults)
}

func (c *Client) hotelIDsByCity(ctx context.Context, cityCode string) ([]string, error) {
	path := fmt.Sprintf("/v1/reference-data/locations/hotels/by-city?cityCode=%s&radius=5&radiusUnit=KM&hotelSource=ALL",
		url.QueryEscape(cityCode))

	body, err := c.doRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var resp hotelListResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("amadeus: failed to parse hotel list: %w", err)
	}

	ids := make([]string, 0, len(resp.Data))
	for _, h := range resp.Data {
		ids = append(ids, h.HotelID)
	}
	return ids, nil
}

func (c *Client) hotelOffers(ctx context.Context, hotelIDs []string, checkIn, checkOut string, adults int) ([]models.HotelOffer, error) {
	path := fmt.Sprintf(
		"/v3/shopping/hotel-offers?hotelIds=%s&checkInDate=%s&checkOutDate=%s&adults=%d&roomQuantity=1&currency=USD&bestRateOnly=true",
		url.QueryEscape(strings.Join(hotelIDs, ",")),
		url.QueryEscape(checkIn),
		url.QueryEscape(checkOut),
		adults,
	)

	body, err := c.doRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, fmt.Errorf("hotel offers failed: %w", err)
	}

	var resp hotelOffersResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("amadeus: failed to parse hotel offers: %w", err)
	}

	hotels := make([]models.HotelOffer, 0, len(resp.Data))
	for _, item := range resp.Data {
		if !item.Available || len(item.Offers) == 0 {
			continue
		}
		price := parsePrice(item.Offers[0].Price.Total)
		if price <= 0 {
			continue
		}
		hotels = append(hotels, models.HotelOffer{
			HotelID:  item.Hotel.HotelID,
			Name:     item.Hotel.Name,
			CityCode: item.Hotel.CityCode,
			CheckIn:  checkIn,
			CheckOut: checkOut,
			Adults:   adults,
			Price:    models.Price{Total: price, Currency: item.Offers[0].Price.Currency},
		})
	}
	return hotels, nil
}
