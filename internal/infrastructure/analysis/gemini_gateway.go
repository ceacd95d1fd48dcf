// Package analysis talks to the Gemini API to produce technical opinions on
// calibration data.
package analysis

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"metrologia_avc/internal/usecase/interfaces"

	"google.golang.org/genai"
)

var ErrMissingGeminiAPIKey = errors.New("missing GEMINI_API_KEY")
var ErrGeminiGatewayNotConfigured = errors.New("gemini gateway not configured")
var ErrEmptyGeminiResponse = errors.New("empty gemini response")

const defaultGeminiModel = "gemini-2.5-flash"

// GeminiGateway implements interfaces.IAnalysisGateway on top of the Gemini
// API. With ANALYSIS_GATEWAY_MOCK enabled it answers locally, which keeps
// development and CI off the network.

type GeminiGateway struct {
	client   *genai.Client
	model    string
	mockMode bool
}

var _ interfaces.IAnalysisGateway = (*GeminiGateway)(nil)

func NewGeminiGateway(ctx context.Context, apiKey string) (*GeminiGateway, error) {
	if isAnalysisGatewayMockEnabled() {
		log.Printf("[analysis][gateway] mock mode enabled")
		return &GeminiGateway{mockMode: true}, nil
	}

	if apiKey == "" {
		log.Printf("[analysis][gateway] missing GEMINI_API_KEY")
		return nil, ErrMissingGeminiAPIKey
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		log.Printf("[analysis][gateway] failed creating genai client err=%v", err)
		return nil, err
	}
	log.Printf("[analysis][gateway] Gemini client initialized model=%s", geminiModel())

	return &GeminiGateway{client: client, model: geminiModel()}, nil
}

func (g *GeminiGateway) Generate(ctx context.Context, prompt string) (string, error) {
	if g != nil && g.mockMode {
		log.Printf("[analysis][gateway] mock generate prompt_len=%d", len(prompt))
		return fmt.Sprintf(
			"PARECER GERADO POR IA: Análise simulada (modo de desenvolvimento). Prompt com %d caracteres recebido.",
			len(prompt)), nil
	}

	if g == nil || g.client == nil {
		log.Printf("[analysis][gateway] gateway not configured")
		return "", ErrGeminiGatewayNotConfigured
	}
	log.Printf("[analysis][gateway] generate start prompt_len=%d", len(prompt))

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		log.Printf("[analysis][gateway] generate failed err=%v", err)
		return "", err
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		log.Printf("[analysis][gateway] generate returned no text")
		return "", ErrEmptyGeminiResponse
	}
	log.Printf("[analysis][gateway] generate success response_len=%d", len(text))

	return text, nil
}

func geminiModel() string {
	if v := strings.TrimSpace(os.Getenv("GEMINI_MODEL")); v != "" {
		return v
	}
	return defaultGeminiModel
}

func isAnalysisGatewayMockEnabled() bool {
	for _, key := range []string{"ANALYSIS_GATEWAY_MOCK", "GEMINI_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
