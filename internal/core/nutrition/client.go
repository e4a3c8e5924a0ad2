package nutrition

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"chucklechow/internal/pkg/common"

	"github.com/go-resty/resty/v2"
)

// Client looks up nutrition from a remote service. Failures are expected and
// handled by the pool with a local-table fallback.
type Client struct {
	client *resty.Client
}

// NewClient creates a lookup client against the given base URL.
func NewClient(baseURL string) *Client {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")

	return &Client{client: client}
}

// Lookup requests nutrition totals for a list of quantified ingredients.
func (c *Client) Lookup(ctx context.Context, items []common.Ingredient) (common.Nutrition, error) {
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, strings.TrimSpace(item.Name))
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("ingredients", strings.Join(names, ",")).
		Get("/v1/nutrients")
	if err != nil {
		return common.Nutrition{}, fmt.Errorf("failed to query nutrition service: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return common.Nutrition{}, fmt.Errorf("nutrition service returned %d: %s", resp.StatusCode(), resp.String())
	}

	var result struct {
		Items []struct {
			Name     string  `json:"name"`
			Calories float64 `json:"calories"`
			Protein  float64 `json:"protein_g"`
			Fat      float64 `json:"fat_g"`
			Carbs    float64 `json:"carbs_g"`
		} `json:"items"`
	}
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return common.Nutrition{}, fmt.Errorf("failed to parse nutrition response: %w", err)
	}
	if len(result.Items) == 0 {
		return common.Nutrition{}, fmt.Errorf("nutrition service returned no items")
	}

	var total common.Nutrition
	for _, item := range result.Items {
		total.Add(common.Nutrition{
			Calories: item.Calories,
			Protein:  item.Protein,
			Fat:      item.Fat,
			Carbs:    item.Carbs,
		})
	}
	return total, nil
}
