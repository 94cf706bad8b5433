package devices

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"framecast/internal/domain/entity"
)

type Config struct {
	BaseURL string `yaml:"base_url"`
	Timeout int64  `yaml:"timeout_in_ms"`
}

// Client reads the device roster from the registry service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(cfg Config) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Millisecond,
		},
	}
}

func (c *Client) ListDevices(ctx context.Context) ([]entity.Device, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/devices", http.NoBody)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &entity.RemoteError{Service: "device registry", Reason: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

		return nil, &entity.RemoteError{
			Service: "device registry",
			Status:  resp.StatusCode,
			Reason:  string(body),
		}
	}

	var payload struct {
		Devices []entity.Device `json:"devices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &entity.ValidationError{Field: "device roster", Reason: err.Error()}
	}

	return payload.Devices, nil
}
