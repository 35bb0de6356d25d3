package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"QuickTech-Backend/src/models"
	"QuickTech-Backend/src/utils"
)

// API is the Admin Query API as seen by the dashboard.
type API interface {
	ListSubmissions(ctx context.Context) ([]models.Submission, error)
	MarkViewed(ctx context.Context, id int64) error
}

// ErrNotFound is returned by Client.MarkViewed when the server answers 404.
var ErrNotFound = errors.New("submission not found")

// Client talks to a running API server with the fiber HTTP agent.
type Client struct {
	baseURL string
	token   string
	timeout time.Duration
}

func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		timeout: 10 * time.Second,
	}
}

func (c *Client) do(ctx context.Context, a *fiber.Agent) (int, []byte, error) {
	if c.token != "" {
		a.Set(fiber.HeaderAuthorization, "Bearer "+c.token)
	}
	return utils.DoAgent(ctx, a, c.timeout)
}

func (c *Client) ListSubmissions(ctx context.Context) ([]models.Submission, error) {
	code, body, err := c.do(ctx, fiber.Get(c.baseURL+"/api/admin/submissions"))
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	if code != fiber.StatusOK {
		return nil, statusError(code, body)
	}

	var list []models.Submission
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("decode submissions: %w", err)
	}
	return list, nil
}

func (c *Client) MarkViewed(ctx context.Context, id int64) error {
	url := fmt.Sprintf("%s/api/admin/submissions/%d/view", c.baseURL, id)
	code, body, err := c.do(ctx, fiber.Put(url))
	if err != nil {
		return fmt.Errorf("mark submission %d viewed: %w", id, err)
	}
	switch code {
	case fiber.StatusOK:
		return nil
	case fiber.StatusNotFound:
		return fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	return statusError(code, body)
}

func statusError(code int, body []byte) error {
	var resp models.ErrorResponse
	if err := json.Unmarshal(body, &resp); err == nil && resp.Message != "" {
		return fmt.Errorf("server returned %d: %s", code, resp.Message)
	}
	return fmt.Errorf("server returned %d", code)
}
