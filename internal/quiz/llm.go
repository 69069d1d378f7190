package quiz

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/xeipuuv/gojsonschema"

	"github.com/hyperifyio/goroadmap/internal/cache"
	"github.com/hyperifyio/goroadmap/internal/llm"
	"github.com/hyperifyio/goroadmap/internal/roadmap"
)

// LLMGenerator asks an OpenAI-compatible endpoint for 3 to 5 questions.
type LLMGenerator struct {
	Client    llm.Client
	Model     string
	Cache     cache.Store
	Verbose   bool
	CacheOnly bool
}

const systemMessage = "You write short multiple choice quizzes for self-study. Respond with strict JSON only. The JSON schema is {\"questions\": [{\"question\": string, \"options\": string[4], \"correct\": integer index into options, \"explanation\": string}]}. Write 3 to 5 questions mixing conceptual and practical ones. Each question has exactly one correct option."

const questionsSchema = `{
  "type": "object",
  "required": ["questions"],
  "properties": {
    "questions": {
      "type": "array",
      "minItems": 1,
      "maxItems": 10,
      "items": {
        "type": "object",
        "required": ["question", "options", "correct"],
        "properties": {
          "question": {"type": "string", "minLength": 1},
          "options": {"type": "array", "minItems": 4, "maxItems": 4, "items": {"type": "string"}},
          "correct": {"type": "integer", "minimum": 0, "maximum": 3},
          "explanation": {"type": "string"}
        }
      }
    }
  }
}`

var questionsSchemaLoader = gojsonschema.NewStringLoader(questionsSchema)

type payload struct {
	Questions []Question `json:"questions"`
}

func (g *LLMGenerator) Generate(ctx context.Context, topic roadmap.Topic) ([]Question, error) {
	if g == nil || g.Client == nil || g.Model == "" {
		return nil, errors.New("quiz generator not configured")
	}
	user := buildUserPrompt(topic)
	key := cache.KeyFrom(g.Model, systemMessage+"\n\n"+user)
	if g.Cache != nil {
		if raw, ok, _ := g.Cache.Get(ctx, key); ok {
			if qs, err := parseQuestions(raw); err == nil {
				return qs, nil
			}
		}
	}
	if g.CacheOnly {
		return nil, errors.New("quiz generator cache-only: not found")
	}
	if g.Verbose {
		log.Debug().Str("stage", "quiz").Str("model", g.Model).Int("user_len", len(user)).Msg("quiz prompt")
	}
	content, err := llm.Complete(ctx, g.Client, g.Model, systemMessage, user, 0.7)
	if err != nil {
		return nil, fmt.Errorf("quiz call: %w", err)
	}
	qs, err := parseQuestions([]byte(content))
	if err != nil {
		return nil, err
	}
	if g.Cache != nil {
		if b, err := json.Marshal(payload{Questions: qs}); err == nil {
			_ = g.Cache.Save(ctx, key, b)
		}
	}
	return qs, nil
}

func parseQuestions(raw []byte) ([]Question, error) {
	doc := strings.TrimSpace(string(raw))
	res, err := gojsonschema.Validate(questionsSchemaLoader, gojsonschema.NewStringLoader(doc))
	if err != nil {
		return nil, fmt.Errorf("parse quiz json: %w", err)
	}
	if !res.Valid() {
		msgs := make([]string, 0, len(res.Errors()))
		for _, e := range res.Errors() {
			msgs = append(msgs, e.String())
		}
		return nil, fmt.Errorf("quiz json does not match schema: %s", strings.Join(msgs, "; "))
	}
	var p payload
	if err := json.Unmarshal([]byte(doc), &p); err != nil {
		return nil, fmt.Errorf("parse quiz json: %w", err)
	}
	return p.Questions, nil
}

func buildUserPrompt(t roadmap.Topic) string {
	var sb strings.Builder
	sb.WriteString("Topic: ")
	sb.WriteString(strings.TrimSpace(t.Title))
	if d := strings.TrimSpace(t.Description); d != "" {
		sb.WriteString("\nDescription: ")
		sb.WriteString(d)
	}
	if t.Difficulty != "" {
		sb.WriteString("\nDifficulty: ")
		sb.WriteString(string(t.Difficulty))
	}
	return sb.String()
}
