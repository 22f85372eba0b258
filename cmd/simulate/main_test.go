package main

import (
	"errors"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestActionFrom(t *testing.T) {
	reply := func(parts ...genai.Part) *genai.GenerateContentResponse {
		return &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{Content: &genai.Content{Parts: parts}}},
		}
	}

	tests := []struct {
		name    string
		resp    *genai.GenerateContentResponse
		err     error
		want    string
		warning string
	}{
		{"reply", reply(genai.Text("  go to hallway\n")), nil, "go to hallway", ""},
		{"model error", nil, errors.New("quota exceeded"), "look", "player model failed, falling back to look"},
		{"no candidates", &genai.GenerateContentResponse{}, nil, "help", "player model returned no candidates"},
		{"no parts", reply(), nil, "help", "player model returned no candidates"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.WarnLevel)
			got := actionFrom(tt.resp, tt.err, zap.New(core))
			assert.Equal(t, tt.want, got)

			if tt.warning == "" {
				assert.Zero(t, logs.Len())
				return
			}
			require.Equal(t, 1, logs.Len())
			entry := logs.All()[0]
			assert.Equal(t, tt.warning, entry.Message)
			if tt.err != nil {
				assert.Equal(t, tt.err.Error(), entry.ContextMap()["error"])
			}
		})
	}
}
