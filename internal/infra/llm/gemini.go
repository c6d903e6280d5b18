// Package llm adapts Google's Gemini API to the LanguageModel port.
package llm

import (
	"context"
	"encoding/json"
	"log/slog"
	"slices"
	"strings"
	"time"

	"farmdesk/config"
	"farmdesk/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/genai"
)

const (
	defaultModel       = "gemini-2.0-flash"
	defaultTemperature = 0.4
	defaultTimeout     = 30 * time.Second
)

// contentGenerator is the subset of genai.Models used here.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type geminiModel struct {
	models      contentGenerator
	model       string
	temperature float32
	timeout     time.Duration
}

// NewGeminiModel creates a LanguageModel backed by the Gemini API.
func NewGeminiModel(ctx context.Context, cfg *config.LLMConfig) (service.LanguageModel, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("GenAI API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create GenAI client")
	}

	return newGeminiModel(client.Models, cfg), nil
}

func newGeminiModel(models contentGenerator, cfg *config.LLMConfig) *geminiModel {
	m := &geminiModel{
		models:      models,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		timeout:     cfg.Timeout,
	}
	if m.model == "" {
		m.model = defaultModel
	}
	if m.temperature <= 0 {
		m.temperature = defaultTemperature
	}
	if m.timeout <= 0 {
		m.timeout = defaultTimeout
	}

	return m
}

// GenerateJSON asks for a JSON reply constrained to req.Schema.
func (m *geminiModel) GenerateJSON(ctx context.Context, req *service.GenerateRequest) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	temperature := m.temperature
	genConfig := &genai.GenerateContentConfig{
		Temperature:      &temperature,
		ResponseMIMEType: "application/json",
		ResponseSchema:   toGenaiSchema(req.Schema),
	}
	if req.SystemInstruction != "" {
		genConfig.SystemInstruction = genai.NewContentFromText(req.SystemInstruction, genai.RoleUser)
	}

	resp, err := m.models.GenerateContent(ctx, m.model, genai.Text(req.Prompt), genConfig)
	if err != nil {
		return nil, errors.Wrap(err, "gemini generate content")
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return nil, errors.New("gemini returned an empty reply")
	}
	if !json.Valid([]byte(text)) {
		return nil, errors.New("gemini reply is not valid JSON")
	}

	return []byte(text), nil
}

var schemaTypes = map[service.SchemaType]genai.Type{
	service.SchemaObject:  genai.TypeObject,
	service.SchemaArray:   genai.TypeArray,
	service.SchemaString:  genai.TypeString,
	service.SchemaNumber:  genai.TypeNumber,
	service.SchemaInteger: genai.TypeInteger,
	service.SchemaBoolean: genai.TypeBoolean,
}

func toGenaiSchema(s *service.Schema) *genai.Schema {
	if s == nil {
		return nil
	}

	out := &genai.Schema{
		Type:        schemaTypes[s.Type],
		Description: s.Description,
		Items:       toGenaiSchema(s.Items),
		Required:    s.Required,
		Enum:        s.Enum,
	}
	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		names := make([]string, 0, len(s.Properties))
		for name, prop := range s.Properties {
			out.Properties[name] = toGenaiSchema(prop)
			names = append(names, name)
		}
		slices.Sort(names)
		out.PropertyOrdering = names
	}

	return out
}

type ModelParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// ProvideLanguageModel returns nil when no API key is configured; advisor
// routes then answer 503.
func ProvideLanguageModel(params ModelParams) (service.LanguageModel, error) {
	cfg := params.Config.LLM
	if cfg == nil || cfg.APIKey == "" {
		params.Logger.Info("LLM not configured, advisor disabled")

		return nil, nil
	}

	params.Logger.Info("Using Gemini for advisor flows", slog.String("model", cfg.Model))

	return NewGeminiModel(params.Ctx, cfg)
}
