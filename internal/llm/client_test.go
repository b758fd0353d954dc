package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeminiClient_EmptyAPIKey(t *testing.T) {
	_, err := NewGeminiClient(context.Background(), DefaultConfig(), "")
	require.Error(t, err)

	var modelErr *ModelError
	assert.ErrorAs(t, err, &modelErr)
	assert.Contains(t, modelErr.Message, "API key is required")
}

func TestExtractTextFromResponse_Valid(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				Content: &genai.Content{
					Parts: []genai.Part{genai.Text("Hello, "), genai.Text("world")},
				},
			},
		},
	}

	text, err := ExtractTextFromResponse(resp)
	require.NoError(t, err)
	assert.Equal(t, "Hello, world", text)
}

func TestExtractTextFromResponse_EmptyTextIsNotAnError(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				Content: &genai.Content{
					Parts: []genai.Part{genai.Text("")},
				},
			},
		},
	}

	text, err := ExtractTextFromResponse(resp)
	require.NoError(t, err)
	assert.Equal(t, "", text)
}

func TestExtractTextFromResponse_Malformed(t *testing.T) {
	tests := []struct {
		name string
		resp *genai.GenerateContentResponse
	}{
		{"no candidates", &genai.GenerateContentResponse{}},
		{"nil content", &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{}},
		}},
		{"no parts", &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{Content: &genai.Content{}}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ExtractTextFromResponse(tt.resp)
			require.Error(t, err)

			var modelErr *ModelError
			assert.ErrorAs(t, err, &modelErr)
		})
	}
}

func TestModelError_Unwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := &ModelError{Message: "failed to generate content", Cause: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "failed to generate content")
	assert.Contains(t, err.Error(), "connection reset")
}
