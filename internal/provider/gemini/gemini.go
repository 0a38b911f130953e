// Package gemini generates recipes and parses receipt images with the
// Gemini API.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/hearthhq/hearth-backend/internal/config"
	"github.com/hearthhq/hearth-backend/internal/domain"
)

// Ingredient is one item currently on hand, offered to the model.
type Ingredient struct {
	Name     string
	Quantity float64
	Unit     string
}

// RecipeRequest asks for one dish from the given inventory.
type RecipeRequest struct {
	Ingredients []Ingredient
	Prompt      *string
	Servings    int
}

// GeneratedRecipe is the model's parsed answer.
type GeneratedRecipe struct {
	Title        string
	Ingredients  []domain.RecipeIngredient
	Instructions string
	Servings     int
}

// Client talks to Gemini. Both calls request JSON output and parse it
// strictly; a malformed model answer surfaces as an error, never as a
// half-filled result.
type Client struct {
	log    *slog.Logger
	genai  *genai.Client
	text   string
	vision string
}

// NewClient creates a Gemini client from LLM configuration.
func NewClient(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*Client, error) {
	gc, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiAPIKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &Client{
		log:    logger.With("provider", "gemini"),
		genai:  gc,
		text:   cfg.TextModel,
		vision: cfg.VisionModel,
	}, nil
}

// Close releases the underlying connection.
func (c *Client) Close() error { return c.genai.Close() }

type recipeJSON struct {
	Title       string `json:"title"`
	Ingredients []struct {
		Name     string  `json:"name"`
		Quantity float64 `json:"quantity"`
		Unit     string  `json:"unit"`
	} `json:"ingredients"`
	Instructions string `json:"instructions"`
	Servings     int    `json:"servings"`
}

// GenerateRecipe asks the text model for one dish using the ingredients
// on hand.
func (c *Client) GenerateRecipe(ctx context.Context, req RecipeRequest) (*GeneratedRecipe, error) {
	model := c.genai.GenerativeModel(c.text)
	model.ResponseMIMEType = "application/json"

	var sb strings.Builder
	sb.WriteString("You are a home cook assistant. Propose exactly one dish using mostly the ingredients listed below. ")
	fmt.Fprintf(&sb, "The dish should serve %d.\n", req.Servings)
	if req.Prompt != nil && *req.Prompt != "" {
		fmt.Fprintf(&sb, "Preference: %s\n", *req.Prompt)
	}
	sb.WriteString("\nIngredients on hand:\n")
	for _, ing := range req.Ingredients {
		fmt.Fprintf(&sb, "- %s: %g %s\n", ing.Name, ing.Quantity, ing.Unit)
	}
	sb.WriteString(`
Answer with a single JSON object, no markdown fences:
{"title": string, "ingredients": [{"name": string, "quantity": number, "unit": string}], "instructions": string, "servings": number}`)

	raw, err := c.generate(ctx, model, genai.Text(sb.String()))
	if err != nil {
		return nil, fmt.Errorf("generate recipe: %w", err)
	}

	var parsed recipeJSON
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, fmt.Errorf("parse recipe answer: %w", err)
	}
	if parsed.Title == "" {
		return nil, fmt.Errorf("recipe answer missing title")
	}

	out := &GeneratedRecipe{
		Title:        parsed.Title,
		Instructions: parsed.Instructions,
		Servings:     parsed.Servings,
	}
	if out.Servings <= 0 {
		out.Servings = req.Servings
	}
	for _, ing := range parsed.Ingredients {
		out.Ingredients = append(out.Ingredients, domain.RecipeIngredient{
			Name:     ing.Name,
			Quantity: ing.Quantity,
			Unit:     ing.Unit,
		})
	}
	return out, nil
}

type receiptJSON struct {
	Lines []struct {
		Name       string  `json:"name"`
		Quantity   float64 `json:"quantity"`
		Unit       string  `json:"unit"`
		PriceCents int64   `json:"price_cents"`
	} `json:"lines"`
}

// ParseReceipt asks the vision model to read grocery lines off a
// receipt image.
func (c *Client) ParseReceipt(ctx context.Context, image []byte, mimeType string) ([]domain.ReceiptLine, error) {
	model := c.genai.GenerativeModel(c.vision)
	model.ResponseMIMEType = "application/json"

	format := strings.TrimPrefix(mimeType, "image/")
	prompt := `Read this grocery receipt. Extract each purchased product as a line.
Skip totals, taxes, discounts, and deposit lines. Prices are in minor
currency units (cents). Guess a sensible unit (pcs, kg, g, l, ml) when
the receipt does not state one.
Answer with a single JSON object, no markdown fences:
{"lines": [{"name": string, "quantity": number, "unit": string, "price_cents": number}]}`

	raw, err := c.generate(ctx, model, genai.ImageData(format, image), genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("parse receipt: %w", err)
	}

	var parsed receiptJSON
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, fmt.Errorf("parse receipt answer: %w", err)
	}

	lines := make([]domain.ReceiptLine, 0, len(parsed.Lines))
	for _, l := range parsed.Lines {
		if l.Name == "" {
			continue
		}
		if l.Quantity <= 0 {
			l.Quantity = 1
		}
		lines = append(lines, domain.ReceiptLine{
			Name:       l.Name,
			Quantity:   l.Quantity,
			Unit:       l.Unit,
			PriceCents: l.PriceCents,
		})
	}
	return lines, nil
}

// generate runs one completion and concatenates the text parts.
func (c *Client) generate(ctx context.Context, model *genai.GenerativeModel, parts ...genai.Part) (string, error) {
	resp, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty model response")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("model response has no text parts")
	}
	return sb.String(), nil
}
