package quiz

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/hyperifyio/goroadmap/internal/cache"
	"github.com/hyperifyio/goroadmap/internal/roadmap"
)

var loopsTopic = roadmap.Topic{ID: "2_1", Title: "Python Loops", Description: "Learn Python Loops", Difficulty: roadmap.DifficultyBeginner}

type fakeClient struct {
	content string
	err     error
	calls   int
	lastReq openai.ChatCompletionRequest
}

func (f *fakeClient) CreateChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return openai.ChatCompletionResponse{}, f.err
	}
	return openai.ChatCompletionResponse{Choices: []openai.ChatCompletionChoice{{Message: openai.ChatCompletionMessage{Content: f.content}}}}, nil
}

type generatorFunc func(ctx context.Context, t roadmap.Topic) ([]Question, error)

func (f generatorFunc) Generate(ctx context.Context, t roadmap.Topic) ([]Question, error) { return f(ctx, t) }

const threeQuestions = `{"questions":[
 {"question":"Which keyword starts a loop?","options":["for","def","class","import"],"correct":0,"explanation":"for iterates."},
 {"question":"What does break do?","options":["Exits the loop","Skips one iteration","Restarts","Nothing"],"correct":0},
 {"question":"Which loop checks first?","options":["while","do-while","repeat","until"],"correct":0}
]}`

func TestLLMGenerator_ParsesQuestions(t *testing.T) {
	fc := &fakeClient{content: "```json\n" + threeQuestions + "\n```"}
	g := &LLMGenerator{Client: fc, Model: "m"}
	qs, err := g.Generate(context.Background(), loopsTopic)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(qs) != 3 || qs[0].Options[0] != "for" {
		t.Fatalf("unexpected questions %+v", qs)
	}
	user := fc.lastReq.Messages[1].Content
	if !strings.Contains(user, "Topic: Python Loops") || !strings.Contains(user, "Difficulty: Beginner") {
		t.Fatalf("prompt missing topic details: %q", user)
	}
}

func TestLLMGenerator_RejectsSchemaViolations(t *testing.T) {
	for _, content := range []string{
		`nope`,
		`{"questions":[]}`,
		`{"questions":[{"question":"Q","options":["a","b"],"correct":0}]}`,
		`{"questions":[{"question":"Q","options":["a","b","c","d"],"correct":7}]}`,
	} {
		g := &LLMGenerator{Client: &fakeClient{content: content}, Model: "m"}
		if _, err := g.Generate(context.Background(), loopsTopic); err == nil {
			t.Fatalf("expected error for %s", content)
		}
	}
}

func TestLLMGenerator_UsesCache(t *testing.T) {
	store := &cache.LLMCache{Dir: t.TempDir()}
	fc := &fakeClient{content: threeQuestions}
	g := &LLMGenerator{Client: fc, Model: "m", Cache: store}
	if _, err := g.Generate(context.Background(), loopsTopic); err != nil {
		t.Fatalf("first: %v", err)
	}
	off := &LLMGenerator{Client: &fakeClient{err: errors.New("offline")}, Model: "m", Cache: store, CacheOnly: true}
	qs, err := off.Generate(context.Background(), loopsTopic)
	if err != nil || len(qs) != 3 {
		t.Fatalf("cached read: %v %+v", err, qs)
	}
}

func TestValidate_DropsMalformedAndRenumbers(t *testing.T) {
	in := []Question{
		{Question: "dup options", Options: []string{"a", "A", "b", "c"}},
		{Question: " Good? ", Options: []string{"w", "x", "y", "z"}, Correct: 3},
		{Question: "", Options: []string{"w", "x", "y", "z"}},
		{Question: "Also good", Options: []string{"1", "2", "3", "4"}, Correct: 1},
	}
	out, err := Validate(in)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if len(out) != 2 || out[0].ID != 1 || out[1].ID != 2 || out[0].Question != "Good?" {
		t.Fatalf("unexpected result %+v", out)
	}
	if _, err := Validate(in[:1]); err == nil {
		t.Fatal("expected error when nothing survives")
	}
}

func TestValidate_CapsAtFive(t *testing.T) {
	var in []Question
	for i := 0; i < 8; i++ {
		in = append(in, Question{Question: "Q", Options: []string{"a", "b", "c", "d"}})
	}
	out, err := Validate(in)
	if err != nil || len(out) != MaxQuestions {
		t.Fatalf("expected %d questions, got %d (%v)", MaxQuestions, len(out), err)
	}
}

func TestGenerate_FallsBackOnRemoteFailure(t *testing.T) {
	remote := generatorFunc(func(context.Context, roadmap.Topic) ([]Question, error) {
		return nil, errors.New("boom")
	})
	q := Generate(context.Background(), loopsTopic, remote, time.Second)
	if q.Source != SourceLocal || len(q.Questions) != 2 {
		t.Fatalf("expected fallback quiz, got %+v", q)
	}
	if q.ID != "quiz_2_1" || q.TopicID != "2_1" {
		t.Fatalf("unexpected ids %q %q", q.ID, q.TopicID)
	}
	if !strings.Contains(q.Questions[0].Question, "Python Loops") {
		t.Fatalf("fallback should name the topic: %q", q.Questions[0].Question)
	}
}

func TestGenerate_RemoteHonoursTimeout(t *testing.T) {
	remote := generatorFunc(func(ctx context.Context, _ roadmap.Topic) ([]Question, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})
	start := time.Now()
	q := Generate(context.Background(), loopsTopic, remote, 20*time.Millisecond)
	if time.Since(start) > 2*time.Second {
		t.Fatal("timeout not applied")
	}
	if q.Source != SourceLocal {
		t.Fatalf("expected fallback, got %q", q.Source)
	}
}

func TestGenerate_UsesRemote(t *testing.T) {
	g := &LLMGenerator{Client: &fakeClient{content: threeQuestions}, Model: "m"}
	q := Generate(context.Background(), loopsTopic, g, time.Second)
	if q.Source != SourceRemote || len(q.Questions) != 3 {
		t.Fatalf("expected remote quiz, got %+v", q)
	}
}

func TestFallback_Validates(t *testing.T) {
	qs := Fallback(loopsTopic.Title)
	if _, err := Validate(qs); err != nil {
		t.Fatalf("fallback quiz must validate: %v", err)
	}
}
