package llm

import (
    "context"
    "errors"
    "fmt"
    "net/http"
    "strings"

    openai "github.com/sashabaranov/go-openai"
)

// Client is the minimal interface needed by the generators to call a chat
// model. Any OpenAI-compatible or local backend can be adapted to it.
type Client interface {
    CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// ModelLister is an optional capability that allows listing available models.
// Callers detect it with a type assertion.
type ModelLister interface {
    ListModels(ctx context.Context) (openai.ModelsList, error)
}

// OpenAIProvider adapts *openai.Client to the Client/ModelLister interfaces.
type OpenAIProvider struct {
    Inner *openai.Client
}

// NewOpenAI builds a provider for an OpenAI-compatible endpoint. An empty
// baseURL keeps the library default; httpClient may be nil.
func NewOpenAI(baseURL, apiKey string, httpClient *http.Client) *OpenAIProvider {
    cfg := openai.DefaultConfig(apiKey)
    if strings.TrimSpace(baseURL) != "" {
        cfg.BaseURL = strings.TrimRight(baseURL, "/")
    }
    if httpClient != nil {
        cfg.HTTPClient = httpClient
    }
    return &OpenAIProvider{Inner: openai.NewClientWithConfig(cfg)}
}

func (p *OpenAIProvider) CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
    return p.Inner.CreateChatCompletion(ctx, request)
}

func (p *OpenAIProvider) ListModels(ctx context.Context) (openai.ModelsList, error) {
    return p.Inner.ListModels(ctx)
}

// ErrNoChoices is returned when the model answers with an empty choice list.
var ErrNoChoices = errors.New("no choices")

// Complete sends a system+user prompt pair and returns the first choice's
// content with surrounding whitespace and Markdown code fences removed.
func Complete(ctx context.Context, c Client, model, system, user string, temperature float32) (string, error) {
    if c == nil || strings.TrimSpace(model) == "" {
        return "", errors.New("llm not configured")
    }
    resp, err := c.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
        Model: model,
        Messages: []openai.ChatCompletionMessage{
            {Role: openai.ChatMessageRoleSystem, Content: system},
            {Role: openai.ChatMessageRoleUser, Content: user},
        },
        Temperature: temperature,
        N:           1,
    })
    if err != nil {
        return "", fmt.Errorf("chat completion: %w", err)
    }
    if len(resp.Choices) == 0 {
        return "", ErrNoChoices
    }
    return StripCodeFence(resp.Choices[0].Message.Content), nil
}

// StripCodeFence removes a surrounding ```json ... ``` block if present.
func StripCodeFence(s string) string {
    s = strings.TrimSpace(s)
    if !strings.HasPrefix(s, "```") {
        return s
    }
    s = strings.TrimPrefix(s, "```")
    if i := strings.IndexByte(s, '\n'); i >= 0 {
        s = s[i+1:]
    } else {
        s = strings.TrimPrefix(s, "json")
    }
    s = strings.TrimSuffix(strings.TrimSpace(s), "```")
    return strings.TrimSpace(s)
}
