// Package mealdb wraps the public TheMealDB JSON API. All responses are
// normalized into strongly typed model values at this boundary; malformed
// entries are treated as absent rather than propagated.
package mealdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"forkful/internal/model"
)

// DefaultBaseURL is the free public endpoint (test API key "1").
const DefaultBaseURL = "https://www.themealdb.com/api/json/v1/1"

// ErrNotFound is returned by Lookup when the id resolves to no recipe.
var ErrNotFound = errors.New("Recipe detail not found.")

// Client wraps TheMealDB API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client against the given base URL. An empty base URL
// selects the public endpoint.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type listEntry struct {
	Category   string `json:"strCategory"`
	Area       string `json:"strArea"`
	Ingredient string `json:"strIngredient"`
}

type listResponse struct {
	Meals []listEntry `json:"meals"`
}

type summaryEntry struct {
	ID       string `json:"idMeal"`
	Name     string `json:"strMeal"`
	Thumb    string `json:"strMealThumb"`
	Category string `json:"strCategory"`
	Area     string `json:"strArea"`
}

type filterResponse struct {
	Meals []summaryEntry `json:"meals"`
}

type recordResponse struct {
	Meals []map[string]any `json:"meals"`
}

// get performs a GET against path?params and decodes the body into out.
// what names the resource for the non-2xx error message.
func (c *Client) get(ctx context.Context, path string, params url.Values, what string, out any) error {
	reqURL := fmt.Sprintf("%s/%s?%s", c.baseURL, path, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("request creation failed: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("network error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("Failed to load %s (status %d).", what, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("JSON decode error: %w", err)
	}
	return nil
}

// Categories fetches the global category name list.
func (c *Client) Categories(ctx context.Context) ([]string, error) {
	var result listResponse
	params := url.Values{}
	params.Set("c", "list")
	if err := c.get(ctx, "list.php", params, "meal categories", &result); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(result.Meals))
	for _, entry := range result.Meals {
		if entry.Category != "" {
			names = append(names, entry.Category)
		}
	}
	return names, nil
}

// Areas fetches the global area (cuisine) name list.
func (c *Client) Areas(ctx context.Context) ([]string, error) {
	var result listResponse
	params := url.Values{}
	params.Set("a", "list")
	if err := c.get(ctx, "list.php", params, "meal areas", &result); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(result.Meals))
	for _, entry := range result.Meals {
		if entry.Area != "" {
			names = append(names, entry.Area)
		}
	}
	return names, nil
}

// Ingredients fetches the global ingredient name list.
func (c *Client) Ingredients(ctx context.Context) ([]string, error) {
	var result listResponse
	params := url.Values{}
	params.Set("i", "list")
	if err := c.get(ctx, "list.php", params, "meal ingredients", &result); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(result.Meals))
	for _, entry := range result.Meals {
		if entry.Ingredient != "" {
			names = append(names, entry.Ingredient)
		}
	}
	return names, nil
}

// FilterByCategory fetches recipe summaries for a category.
func (c *Client) FilterByCategory(ctx context.Context, category string) ([]model.RecipeSummary, error) {
	var result filterResponse
	params := url.Values{}
	params.Set("c", category)
	what := fmt.Sprintf("meals for %s", category)
	if err := c.get(ctx, "filter.php", params, what, &result); err != nil {
		return nil, err
	}
	return toSummaries(result.Meals), nil
}

// FilterByArea fetches recipe summaries for an area.
func (c *Client) FilterByArea(ctx context.Context, area string) ([]model.RecipeSummary, error) {
	var result filterResponse
	params := url.Values{}
	params.Set("a", area)
	what := fmt.Sprintf("meals for %s", area)
	if err := c.get(ctx, "filter.php", params, what, &result); err != nil {
		return nil, err
	}
	return toSummaries(result.Meals), nil
}

// SearchByName fetches full recipe records matching a name and projects
// them to summaries. An empty result is not an error here; the caller
// decides how to surface "no match".
func (c *Client) SearchByName(ctx context.Context, term string) ([]model.RecipeSummary, error) {
	var result filterResponse
	params := url.Values{}
	params.Set("s", term)
	if err := c.get(ctx, "search.php", params, "recipe search", &result); err != nil {
		return nil, err
	}
	return toSummaries(result.Meals), nil
}

// Lookup fetches and normalizes a single full recipe record by id.
// Returns ErrNotFound when the id matches nothing.
func (c *Client) Lookup(ctx context.Context, id string) (*model.RecipeDetail, error) {
	var result recordResponse
	params := url.Values{}
	params.Set("i", id)
	if err := c.get(ctx, "lookup.php", params, "recipe detail", &result); err != nil {
		return nil, err
	}
	if len(result.Meals) == 0 || result.Meals[0] == nil {
		return nil, ErrNotFound
	}
	return normalizeRecord(result.Meals[0]), nil
}

func toSummaries(entries []summaryEntry) []model.RecipeSummary {
	summaries := make([]model.RecipeSummary, 0, len(entries))
	for _, entry := range entries {
		if entry.ID == "" {
			continue
		}
		summaries = append(summaries, model.RecipeSummary{
			ID:       entry.ID,
			Name:     entry.Name,
			Image:    entry.Thumb,
			Category: entry.Category,
			Area:     entry.Area,
		})
	}
	return summaries
}
