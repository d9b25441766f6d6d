package extract

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/Erictomm2002/Menu-Scanner/internal/menu"
)

const defaultModel = "gemini-2.5-flash-lite"

// GeminiService extracts menu structure from photos with the Gemini API.
type GeminiService struct {
	client *genai.Client
	model  string
	log    *zap.Logger
}

// NewGeminiService builds a client against the Gemini API backend. model may
// be empty, in which case a fast vision-capable default is used.
func NewGeminiService(ctx context.Context, apiKey, model string, log *zap.Logger) (*GeminiService, error) {
	if apiKey == "" {
		return nil, errors.New("missing GEMINI_API_KEY")
	}
	if model == "" {
		model = defaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Backend: genai.BackendGeminiAPI,
		APIKey:  apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("init gemini client: %w", err)
	}

	return &GeminiService{client: client, model: model, log: log}, nil
}

// ExtractMenu sends the prompt plus the inline image and decodes the JSON
// reply into an extraction batch.
func (s *GeminiService) ExtractMenu(ctx context.Context, image []byte, mimeType string) (*menu.ExtractionResult, error) {
	if len(image) == 0 {
		return nil, errors.New("empty image")
	}
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(menuPrompt),
			genai.NewPartFromBytes(image, mimeType),
		}, genai.RoleUser),
	}

	cfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](0.4),
		TopK:            genai.Ptr[float32](32),
		TopP:            genai.Ptr[float32](1),
		MaxOutputTokens: 65536,
	}

	resp, err := s.client.Models.GenerateContent(ctx, s.model, contents, cfg)
	if err != nil {
		return nil, fmt.Errorf("gemini api error: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return nil, errors.New("empty gemini response")
	}

	s.log.Debug("gemini raw response", zap.Int("bytes", len(text)))

	batch, err := decodeBatch(text)
	if err != nil {
		return nil, err
	}
	return batch, nil
}
