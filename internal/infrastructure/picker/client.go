package picker

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"framecast/internal/domain/dto"
	"framecast/internal/domain/entity"
)

const pageSize = 100

// Client talks to the remote picker service over REST. Token acquisition is
// an external concern; the client only carries the credential.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewClient(cfg Config) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		token:   cfg.AccessToken,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Millisecond,
		},
	}
}

func (c *Client) CreateSession(ctx context.Context) (*dto.RemoteSession, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/sessions", http.NoBody)
	if err != nil {
		return nil, err
	}

	var session dto.RemoteSession
	if err := c.do(req, &session); err != nil {
		return nil, err
	}

	return &session, nil
}

func (c *Client) GetSession(ctx context.Context, remoteID string) (*dto.RemoteSessionStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/sessions/"+url.PathEscape(remoteID), http.NoBody)
	if err != nil {
		return nil, err
	}

	var status dto.RemoteSessionStatus
	if err := c.do(req, &status); err != nil {
		return nil, err
	}

	return &status, nil
}

func (c *Client) ListMediaItems(ctx context.Context, remoteID string) ([]dto.MediaItem, error) {
	var items []dto.MediaItem
	pageToken := ""

	for {
		query := url.Values{}
		query.Set("sessionId", remoteID)
		query.Set("pageSize", strconv.Itoa(pageSize))
		if pageToken != "" {
			query.Set("pageToken", pageToken)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet,
			c.baseURL+"/mediaItems?"+query.Encode(), http.NoBody)
		if err != nil {
			return nil, err
		}

		var page dto.MediaItemPage
		if err := c.do(req, &page); err != nil {
			return nil, err
		}

		items = append(items, page.MediaItems...)

		if page.NextPageToken == "" {
			return items, nil
		}
		pageToken = page.NextPageToken
	}
}

// DownloadOriginal fetches the canonical bytes of a selected item. The base
// URL alone is not fetchable; it needs the "=d" directive.
func (c *Client) DownloadOriginal(ctx context.Context, item dto.MediaItem) ([]byte, error) {
	return c.download(ctx, item.BaseURL+"=d")
}

// DownloadSized fetches a specific rendition via the "=w{w}-h{h}" directive.
func (c *Client) DownloadSized(ctx context.Context, item dto.MediaItem, width, height int) ([]byte, error) {
	return c.download(ctx, fmt.Sprintf("%s=w%d-h%d", item.BaseURL, width, height))
}

func (c *Client) download(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &entity.RemoteError{Service: "picker", Reason: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &entity.RemoteError{
			Service: "picker",
			Status:  resp.StatusCode,
			Reason:  "media download rejected",
		}
	}

	return io.ReadAll(resp.Body)
}

func (c *Client) do(req *http.Request, out any) error {
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &entity.RemoteError{Service: "picker", Reason: err.Error()}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return entity.ErrNotFound
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

		return &entity.RemoteError{
			Service: "picker",
			Status:  resp.StatusCode,
			Reason:  string(body),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &entity.ValidationError{Field: "picker response", Reason: err.Error()}
	}

	return nil
}
