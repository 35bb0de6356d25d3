package quote

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"QuickTech-Backend/src/utils"
)

// HTTPPoster posts quotes to POST /api/quote.
type HTTPPoster struct {
	baseURL string
	timeout time.Duration
}

func NewHTTPPoster(baseURL string) *HTTPPoster {
	return &HTTPPoster{baseURL: strings.TrimRight(baseURL, "/"), timeout: 10 * time.Second}
}

func (p *HTTPPoster) PostQuote(ctx context.Context, fields map[string]any) error {
	code, _, err := utils.DoAgent(ctx, fiber.Post(p.baseURL+"/api/quote").JSON(fields), p.timeout)
	if err != nil {
		return fmt.Errorf("post quote: %w", err)
	}
	if code != fiber.StatusCreated {
		return fmt.Errorf("post quote: server returned %d", code)
	}
	return nil
}
