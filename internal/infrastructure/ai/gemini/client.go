// Package gemini adapts the Google Gemini API to the AIService port.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/platewise/platewise/internal/domain/mealplan"
	"github.com/platewise/platewise/internal/infrastructure/config"
	"github.com/platewise/platewise/internal/ports/outbound"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// Client talks to the Gemini API and parses its JSON replies.
type Client struct {
	client  *genai.Client
	model   *genai.GenerativeModel
	timeout config.AIConfig
	logger  *zap.Logger
}

// NewClient creates a Gemini-backed AIService.
func NewClient(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Client, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.AI.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(cfg.AI.Model)
	model.ResponseMIMEType = "application/json"

	return &Client{
		client:  client,
		model:   model,
		timeout: cfg.AI,
		logger:  logger.Named("gemini"),
	}, nil
}

// Close closes the underlying API client.
func (c *Client) Close() error {
	return c.client.Close()
}

// GenerateShoppingList asks the model for a meal outline and a structured
// shopping list for the given constraints.
func (c *Client) GenerateShoppingList(ctx context.Context, req outbound.ShoppingListRequest) (*outbound.ShoppingListResponse, error) {
	prompt := buildShoppingListPrompt(req)

	raw, err := c.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var resp outbound.ShoppingListResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		c.logger.Warn("Model returned unparseable shopping list",
			zap.Error(err),
			zap.Int("response_length", len(raw)))
		return nil, fmt.Errorf("failed to parse generated shopping list: %w", err)
	}

	for i := range resp.ShoppingList {
		resp.ShoppingList[i].IsAIGenerated = true
	}

	return &resp, nil
}

// GenerateMealPlan asks the model for a full multi-day plan in the
// generated day shape.
func (c *Client) GenerateMealPlan(ctx context.Context, req outbound.MealPlanRequest) ([]mealplan.DayPlan, error) {
	prompt := buildMealPlanPrompt(req)

	raw, err := c.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var wrapper struct {
		Days []mealplan.DayPlan `json:"days"`
	}
	if err := json.Unmarshal([]byte(raw), &wrapper); err != nil {
		c.logger.Warn("Model returned unparseable meal plan",
			zap.Error(err),
			zap.Int("response_length", len(raw)))
		return nil, fmt.Errorf("failed to parse generated meal plan: %w", err)
	}

	return wrapper.Days, nil
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	if c.timeout.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout.RequestTimeout)
		defer cancel()
	}

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated")
	}

	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", fmt.Errorf("generated content is not text")
	}

	return stripCodeFence(string(text)), nil
}

// stripCodeFence removes a Markdown ```json fence if the model wrapped
// its reply in one despite the JSON response MIME type.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func buildShoppingListPrompt(req outbound.ShoppingListRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a %d-day meal outline and consolidated shopping list", req.Days)
	if req.Diet != "" {
		fmt.Fprintf(&b, " for a %s diet", req.Diet)
	}
	b.WriteString(".\n")
	if req.Notes != "" {
		fmt.Fprintf(&b, "Additional requirements: %s\n", req.Notes)
	}
	b.WriteString(`
Respond with JSON only, in exactly this shape:
{
  "mealPlan": [
    {"day": "Day 1", "meals": ["breakfast description", "lunch description", "dinner description"]}
  ],
  "shoppingList": [
    {"name": "ingredient name", "amount": "quantity with unit", "category": "produce|dairy|meat|pantry|other"}
  ]
}

Consolidate duplicate ingredients across days into a single entry with a combined amount.
`)
	return b.String()
}

func buildMealPlanPrompt(req outbound.MealPlanRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a complete %d-day meal plan.\n", req.Days)
	if len(req.DietaryPreferences) > 0 {
		fmt.Fprintf(&b, "Dietary preferences: %s.\n", strings.Join(req.DietaryPreferences, ", "))
	}
	if req.Goals != "" {
		fmt.Fprintf(&b, "Goals: %s.\n", req.Goals)
	}
	if req.CustomPrompt != "" {
		fmt.Fprintf(&b, "Additional instructions: %s\n", req.CustomPrompt)
	}
	b.WriteString(`
Respond with JSON only, in exactly this shape:
{
  "days": [
    {
      "day": "Day 1",
      "meals": {
        "breakfast": {"title": "...", "description": "...", "ingredients": [{"name": "...", "amount": "..."}], "instructions": ["..."], "nutrition": {"calories": 0, "protein": 0, "carbs": 0, "fat": 0}},
        "lunch": {},
        "dinner": {},
        "snacks": {}
      },
      "dailyNutrition": {"calories": 0, "protein": 0, "carbs": 0, "fat": 0}
    }
  ]
}

Every day must include all four meals (breakfast, lunch, dinner, snacks).
`)
	if req.IncludeRecipes {
		b.WriteString("Include full ingredient lists and step-by-step instructions for every meal.\n")
	} else {
		b.WriteString("Keep ingredients and instructions brief.\n")
	}
	return b.String()
}
