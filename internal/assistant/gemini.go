package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/azylka/pulsefit/internal/telemetry/tracing"
)

// example API call
// https://generativelanguage.googleapis.com/v1beta/models/gemini-pro:generateContent?key=TODO

const defaultGeminiApiUrl = "https://generativelanguage.googleapis.com/v1beta"

type GeminiClient struct {
	geminiApiUrl string
	geminiApiKey string
	model        string
	httpClient   *http.Client
}

func NewGeminiClient(geminiApiUrl, geminiApiKey, model string, httpClient *http.Client) *GeminiClient {
	if geminiApiUrl == "" {
		geminiApiUrl = defaultGeminiApiUrl
	}
	return &GeminiClient{
		geminiApiUrl: geminiApiUrl,
		geminiApiKey: geminiApiKey,
		model:        model,
		httpClient:   httpClient,
	}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiCandidate struct {
	Content geminiContent `json:"content"`
}

type geminiResponse struct {
	Candidates []geminiCandidate `json:"candidates"`
}

// Complete sends the prompt to the generateContent endpoint and returns
// the text of the first candidate.
func (c *GeminiClient) Complete(ctx context.Context, prompt string) (completion string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "geminiClient.complete")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	reqBody, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompt}}},
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshal gemini request: %w", err)
	}

	url := fmt.Sprintf(
		"%s/models/%s:generateContent?key=%s",
		c.geminiApiUrl, c.model, c.geminiApiKey,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("create gemini request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini api request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read gemini response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini api status %d: %s", resp.StatusCode, respBody)
	}

	var geminiResp geminiResponse
	if err := json.Unmarshal(respBody, &geminiResp); err != nil {
		return "", fmt.Errorf("unmarshal gemini response: %w", err)
	}

	if len(geminiResp.Candidates) == 0 {
		return "", errors.New("gemini response: no candidates")
	}

	var sb strings.Builder
	for _, part := range geminiResp.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}

	return sb.String(), nil
}
