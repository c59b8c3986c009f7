package points

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	model "github.com/davidcortesdev/differentroads-loyalty/internal/models"
)

// Client reads reservation records from the reservations backend. The
// redemption path only needs id, total amount and status.
type Client struct {
	base   string
	client *http.Client
}

func NewClient() (*Client, error) {
	// config
	host := os.Getenv("RESERVATIONS_HOST")
	if host == "" {
		return nil, fmt.Errorf("env RESERVATIONS_HOST is not set")
	}
	port := os.Getenv("RESERVATIONS_PORT")
	if port == "" {
		return nil, fmt.Errorf("env RESERVATIONS_PORT is not set")
	}

	return &Client{
		base:   host + ":" + port,
		client: &http.Client{Timeout: 5 * time.Second},
	}, nil
}

func (c *Client) GetReservation(ctx context.Context, reservationId string) (model.Reservation, error) {
	var reservation model.Reservation

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/reservations/"+reservationId, nil)
	if err != nil {
		return reservation, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return reservation, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return reservation, fmt.Errorf("reservation %w", model.ErrNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return reservation, fmt.Errorf("reservations service HTTP error: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return reservation, err
	}
	if err = json.Unmarshal(body, &reservation); err != nil {
		return reservation, err
	}
	return reservation, nil
}
