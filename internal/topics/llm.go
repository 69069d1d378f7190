package topics

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
)

// LLMGenerator asks an OpenAI-compatible endpoint for topic titles under a
// strict JSON contract.
type LLMGenerator struct {
	Client llm.Client
	Model  string
	// Count is the number of titles requested; defaults to 18.
	Count   int
	Cache   cache.Store
	Verbose bool
	// CacheOnly, when true, returns from cache and fails fast if missing.
	CacheOnly bool
}

const systemMessage = "You are a curriculum planning assistant. Respond with strict JSON only, no narration. The JSON schema is {\"titles\": string[]}. Each title is a specific, actionable learning topic, never a generic word like \"Basics\" or \"Overview\". Titles progress from beginner to advanced, include hands-on practice, and are all distinct."

const titlesSchema = `{
  "type": "object",
  "required": ["titles"],
  "properties": {
    "titles": {
      "type": "array",
      "minItems": 1,
      "maxItems": 40,
      "items": {"type": "string", "minLength": 1, "maxLength": 200}
    }
  }
}`

var titlesSchemaLoader = gojsonschema.NewStringLoader(titlesSchema)

type payload struct {
	Titles []string `json:"titles"`
}

// Generate implements Generator. Transport errors, non-JSON answers and
// payloads failing the schema are all returned as errors so Synthesize can
// fall back.
func (g *LLMGenerator) Generate(ctx context.Context, req Request) ([]string, error) {
	if g == nil || g.Client == nil || g.Model == "" {
		return nil, errors.New("topic generator not configured")
	}
	user := buildUserPrompt(req, g.count())
	key := cache.KeyFrom(g.Model, systemMessage+"\n\n"+user)
	if g.Cache != nil {
		if raw, ok, _ := g.Cache.Get(ctx, key); ok {
			if titles, err := parseTitles(raw); err == nil {
				return titles, nil
			}
		}
	}
	if g.CacheOnly {
		return nil, errors.New("topic generator cache-only: not found")
	}
	if g.Verbose {
		log.Debug().Str("stage", "topics").Str("model", g.Model).Int("system_len", len(systemMessage)).Int("user_len", len(user)).Msg("topic prompt")
	}
	content, err := llm.Complete(ctx, g.Client, g.Model, systemMessage, user, 0.3)
	if err != nil {
		return nil, fmt.Errorf("topic call: %w", err)
	}
	titles, err := parseTitles([]byte(content))
	if err != nil {
		return nil, err
	}
	if g.Cache != nil {
		if b, err := json.Marshal(payload{Titles: titles}); err == nil {
			_ = g.Cache.Save(ctx, key, b)
		}
	}
	return titles, nil
}

func (g *LLMGenerator) count() int {
	if g.Count <= 0 {
		return 18
	}
	return g.Count
}

// parseTitles accepts {"titles": [...]} or a bare JSON array of strings and
// validates the object form against titlesSchema.
func parseTitles(raw []byte) ([]string, error) {
	trimmed := strings.TrimSpace(string(raw))
	if strings.HasPrefix(trimmed, "[") {
		trimmed = `{"titles":` + trimmed + `}`
	}
	res, err := gojsonschema.Validate(titlesSchemaLoader, gojsonschema.NewStringLoader(trimmed))
	if err != nil {
		return nil, fmt.Errorf("parse topic json: %w", err)
	}
	if !res.Valid() {
		msgs := make([]string, 0, len(res.Errors()))
		for _, e := range res.Errors() {
			msgs = append(msgs, e.String())
		}
		return nil, fmt.Errorf("topic json does not match schema: %s", strings.Join(msgs, "; "))
	}
	var p payload
	if err := json.Unmarshal([]byte(trimmed), &p); err != nil {
		return nil, fmt.Errorf("parse topic json: %w", err)
	}
	return p.Titles, nil
}

func buildUserPrompt(req Request, count int) string {
	var sb strings.Builder
	sb.WriteString("Course: ")
	if c := strings.TrimSpace(req.Course); c != "" {
		sb.WriteString(c)
		sb.WriteString("\nSubject: ")
	}
	sb.WriteString(strings.TrimSpace(req.Subject))
	fmt.Fprintf(&sb, "\nTopic count: %d", count)
	if req.Days > 0 {
		fmt.Fprintf(&sb, "\nDuration: %d days", req.Days)
	}
	if req.SkillLevel != "" {
		sb.WriteString("\nSkill level: ")
		sb.WriteString(string(req.SkillLevel))
	}
	if req.StudyHours > 0 {
		fmt.Fprintf(&sb, "\nStudy hours per day: %g", req.StudyHours)
	}
	if len(req.Focus) > 0 {
		sb.WriteString("\nFocus topics (cover these first): ")
		sb.WriteString(strings.Join(req.Focus, ", "))
	}
	if len(req.Guidance) > 0 {
		sb.WriteString("\nRequirements:")
		for _, g := range req.Guidance {
			sb.WriteString("\n- ")
			sb.WriteString(g)
		}
	}
	return sb.String()
}
