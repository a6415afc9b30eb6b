// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
)

// keywordConfidence is the confidence assigned to keyword-rule matches. It
// sits above the acceptance floor so a keyword hit always categorizes.
const keywordConfidence = 0.8

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash-lite"

// GeminiService implements the CategorizationService using Google Gemini,
// with a keyword-rule fallback when the model is unavailable or unsure.
type GeminiService struct {
	apiKey       string
	modelName    string
	categoryRepo adapter.CategoryRepository
}

// NewGeminiService creates a new Gemini service instance. An empty model
// name selects DefaultModel.
func NewGeminiService(apiKey, model string, categoryRepo adapter.CategoryRepository) *GeminiService {
	if model == "" {
		model = DefaultModel
	}
	return &GeminiService{
		apiKey:       apiKey,
		modelName:    model,
		categoryRepo: categoryRepo,
	}
}

// IsAvailable checks if the Gemini backend is configured. The keyword
// fallback works either way.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// SuggestCategory suggests a catalog category for an expense description.
// The model is consulted first; on any failure or an unknown slug the
// keyword rules decide. A nil result means the expense stays uncategorized.
func (s *GeminiService) SuggestCategory(ctx context.Context, description, amount string) (*adapter.CategorySuggestion, error) {
	categories, err := s.categoryRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load category catalog: %w", err)
	}
	if len(categories) == 0 {
		return nil, nil
	}

	if s.IsAvailable() {
		if suggestion := s.askModel(ctx, description, amount, categories); suggestion != nil {
			return suggestion, nil
		}
	}

	return matchKeywords(description, categories), nil
}

// askModel runs one Gemini call. Errors are swallowed; callers fall back to
// the keyword rules.
func (s *GeminiService) askModel(ctx context.Context, description, amount string, categories []*entity.Category) *adapter.CategorySuggestion {
	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)

	// Configure model for JSON output
	model.SetTemperature(0.3)
	model.ResponseMIMEType = "application/json"

	prompt := s.buildPrompt(description, amount, categories)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil
	}

	return s.parseResponse(resp, categories)
}

// buildPrompt creates the prompt for Gemini.
func (s *GeminiService) buildPrompt(description, amount string, categories []*entity.Category) string {
	var sb strings.Builder

	sb.WriteString(`You are an expert at categorizing personal expenses. Pick the single best category for the expense below.

RULES:
- You MUST answer with a category id from the catalog, or null when nothing fits
- Do not invent ids; only use ids listed in the catalog
- Confidence is your certainty from 0.0 to 1.0; be honest, low confidence is fine

CATALOG:
`)

	for _, cat := range categories {
		sb.WriteString(fmt.Sprintf("- ID: %s, Name: %s", cat.ID, cat.Name))
		if len(cat.Keywords) > 0 {
			sb.WriteString(fmt.Sprintf(", Hints: %s", strings.Join(cat.Keywords, ", ")))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf(`
EXPENSE:
- Description: %q
- Amount: %s

Respond with a single JSON object:
{
  "category_id": "id from the catalog or null",
  "confidence": 0.0-1.0
}

RESPONSE FORMAT: Return only the JSON object, no extra text.
`, description, amount))

	return sb.String()
}

// geminiSuggestion represents the raw response from Gemini.
type geminiSuggestion struct {
	CategoryID *string `json:"category_id"`
	Confidence float64 `json:"confidence"`
}

// parseResponse parses the Gemini response into a CategorySuggestion. The
// slug is validated against the catalog; anything else returns nil.
func (s *GeminiService) parseResponse(resp *genai.GenerateContentResponse, categories []*entity.Category) *adapter.CategorySuggestion {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil
	}

	// Get the text content from the response
	var textContent string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			textContent = string(text)
			break
		}
	}

	if textContent == "" {
		return nil
	}

	// Clean the response (remove markdown code blocks if present)
	textContent = strings.TrimPrefix(textContent, "```json")
	textContent = strings.TrimPrefix(textContent, "```")
	textContent = strings.TrimSuffix(textContent, "```")
	textContent = strings.TrimSpace(textContent)

	var suggestion geminiSuggestion
	if err := json.Unmarshal([]byte(textContent), &suggestion); err != nil {
		return nil
	}
	if suggestion.CategoryID == nil || *suggestion.CategoryID == "" {
		return nil
	}

	for _, cat := range categories {
		if cat.ID == *suggestion.CategoryID {
			confidence := suggestion.Confidence
			if confidence < 0 {
				confidence = 0
			}
			if confidence > 1 {
				confidence = 1
			}
			return &adapter.CategorySuggestion{
				CategoryID: cat.ID,
				Confidence: confidence,
				Source:     adapter.SuggestionSourceAI,
			}
		}
	}

	return nil
}

// matchKeywords scans the catalog keyword lists for a term contained in the
// description. First match wins; the catalog is ordered by sort order so
// common categories take precedence.
func matchKeywords(description string, categories []*entity.Category) *adapter.CategorySuggestion {
	normalized := strings.ToLower(description)

	for _, cat := range categories {
		for _, keyword := range cat.Keywords {
			if keyword == "" {
				continue
			}
			if strings.Contains(normalized, strings.ToLower(keyword)) {
				return &adapter.CategorySuggestion{
					CategoryID: cat.ID,
					Confidence: keywordConfidence,
					Source:     adapter.SuggestionSourceKeyword,
				}
			}
		}
	}

	return nil
}
