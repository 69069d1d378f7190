package llm

import (
    "context"
    "errors"
    "testing"

    openai "github.com/sashabaranov/go-openai"
)

type stubClient struct {
    content string
    err     error
    choices bool
    got     openai.ChatCompletionRequest
}

func (s *stubClient) CreateChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
    s.got = req
    if s.err != nil {
        return openai.ChatCompletionResponse{}, s.err
    }
    if !s.choices {
        return openai.ChatCompletionResponse{}, nil
    }
    return openai.ChatCompletionResponse{Choices: []openai.ChatCompletionChoice{{Message: openai.ChatCompletionMessage{Content: s.content}}}}, nil
}

func TestComplete_SendsSystemAndUser(t *testing.T) {
    c := &stubClient{content: "```json\n{\"titles\":[]}\n```", choices: true}
    out, err := Complete(context.Background(), c, "m", "sys", "usr", 0.2)
    if err != nil {
        t.Fatalf("complete: %v", err)
    }
    if out != `{"titles":[]}` {
        t.Fatalf("fence not stripped: %q", out)
    }
    if len(c.got.Messages) != 2 || c.got.Messages[0].Role != openai.ChatMessageRoleSystem || c.got.Messages[1].Content != "usr" {
        t.Fatalf("unexpected request: %+v", c.got.Messages)
    }
    if c.got.Model != "m" {
        t.Fatalf("model not forwarded: %q", c.got.Model)
    }
}

func TestComplete_Errors(t *testing.T) {
    if _, err := Complete(context.Background(), nil, "m", "s", "u", 0); err == nil {
        t.Fatal("expected error for nil client")
    }
    if _, err := Complete(context.Background(), &stubClient{}, "", "s", "u", 0); err == nil {
        t.Fatal("expected error for empty model")
    }
    if _, err := Complete(context.Background(), &stubClient{}, "m", "s", "u", 0); !errors.Is(err, ErrNoChoices) {
        t.Fatalf("expected ErrNoChoices, got %v", err)
    }
    boom := errors.New("boom")
    if _, err := Complete(context.Background(), &stubClient{err: boom}, "m", "s", "u", 0); !errors.Is(err, boom) {
        t.Fatalf("expected wrapped transport error, got %v", err)
    }
}

func TestStripCodeFence(t *testing.T) {
    cases := map[string]string{
        `{"a":1}`:                 `{"a":1}`,
        "```json\n{\"a\":1}\n```": `{"a":1}`,
        "```\n[1,2]\n```":         `[1,2]`,
        "  plain  ":               "plain",
    }
    for in, want := range cases {
        if got := StripCodeFence(in); got != want {
            t.Fatalf("StripCodeFence(%q) = %q, want %q", in, got, want)
        }
    }
}
