package llm

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"farmdesk/config"
	"farmdesk/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

type stubGenerator struct {
	model    string
	contents []*genai.Content
	config   *genai.GenerateContentConfig
	reply    string
	err      error
}

func (s *stubGenerator) GenerateContent(_ context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	s.model = model
	s.contents = contents
	s.config = config
	if s.err != nil {
		return nil, s.err
	}

	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Role: genai.RoleModel, Parts: []*genai.Part{{Text: s.reply}}}},
		},
	}, nil
}

var answerSchema = &service.Schema{
	Type: service.SchemaObject,
	Properties: map[string]*service.Schema{
		"answer": {Type: service.SchemaString},
		"tips":   {Type: service.SchemaArray, Items: &service.Schema{Type: service.SchemaString}},
		"urgency": {
			Type: service.SchemaString,
			Enum: []string{"low", "high"},
		},
	},
	Required: []string{"answer"},
}

func TestToGenaiSchema(t *testing.T) {
	t.Parallel()

	got := toGenaiSchema(answerSchema)
	require.NotNil(t, got)
	assert.Equal(t, genai.TypeObject, got.Type)
	assert.Equal(t, []string{"answer"}, got.Required)
	assert.Equal(t, []string{"answer", "tips", "urgency"}, got.PropertyOrdering)
	assert.Equal(t, genai.TypeArray, got.Properties["tips"].Type)
	assert.Equal(t, genai.TypeString, got.Properties["tips"].Items.Type)
	assert.Equal(t, []string{"low", "high"}, got.Properties["urgency"].Enum)

	assert.Nil(t, toGenaiSchema(nil))
}

func TestGeminiModel_GenerateJSON(t *testing.T) {
	t.Parallel()

	stub := &stubGenerator{reply: "  {\"answer\":\"Rotate crops\",\"tips\":[]}\n"}
	model := newGeminiModel(stub, &config.LLMConfig{})

	out, err := model.GenerateJSON(context.Background(), &service.GenerateRequest{
		SystemInstruction: "Be brief.",
		Prompt:            "How do I improve soil?",
		Schema:            answerSchema,
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"answer":"Rotate crops","tips":[]}`, string(out))

	assert.Equal(t, defaultModel, stub.model)
	require.Len(t, stub.contents, 1)
	assert.Equal(t, "How do I improve soil?", stub.contents[0].Parts[0].Text)
	assert.Equal(t, "application/json", stub.config.ResponseMIMEType)
	assert.Equal(t, "Be brief.", stub.config.SystemInstruction.Parts[0].Text)
	require.NotNil(t, stub.config.Temperature)
	assert.InDelta(t, defaultTemperature, *stub.config.Temperature, 1e-6)
}

func TestGeminiModel_GenerateJSON_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		stub *stubGenerator
	}{
		{name: "api error", stub: &stubGenerator{err: errors.New("quota exceeded")}},
		{name: "empty reply", stub: &stubGenerator{reply: "   "}},
		{name: "not json", stub: &stubGenerator{reply: "Sure! Here are some tips"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			model := newGeminiModel(tt.stub, &config.LLMConfig{Model: "gemini-test"})
			out, err := model.GenerateJSON(context.Background(), &service.GenerateRequest{Prompt: "hi"})
			assert.Error(t, err)
			assert.Nil(t, out)
		})
	}
}

func TestProvideLanguageModel_Unconfigured(t *testing.T) {
	t.Parallel()

	model, err := ProvideLanguageModel(ModelParams{
		Ctx:    context.Background(),
		Config: &config.Config{},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	assert.Nil(t, model)
}
