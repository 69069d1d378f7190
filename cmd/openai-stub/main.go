package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
)

type chatRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

// field returns the value of a "Name: value" line from a prompt.
func field(prompt, name string) string {
	for _, line := range strings.Split(prompt, "\n") {
		if v, ok := strings.CutPrefix(strings.TrimSpace(line), name+": "); ok {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

func topicsAnswer(user string) string {
	course := field(user, "Course")
	if course == "" {
		course = "System Test"
	}
	n, _ := strconv.Atoi(field(user, "Topic count"))
	if n <= 0 || n > 30 {
		n = 6
	}
	stages := []string{"Setup and Tooling", "Core Syntax", "Data Structures", "Error Handling", "Testing Practice", "Project Work"}
	titles := make([]string, 0, n)
	for i := 0; i < n; i++ {
		title := course + " " + stages[i%len(stages)]
		if i >= len(stages) {
			title += fmt.Sprintf(" Part %d", i/len(stages)+1)
		}
		titles = append(titles, title)
	}
	b, _ := json.Marshal(map[string]any{"titles": titles})
	return string(b)
}

func quizAnswer(user string) string {
	topic := field(user, "Topic")
	if topic == "" {
		topic = "the topic"
	}
	b, _ := json.Marshal(map[string]any{"questions": []map[string]any{
		{
			"question":    "What is the first step when studying " + topic + "?",
			"options":     []string{"Learn the core ideas", "Skip to advanced material", "Memorize trivia", "Avoid practice"},
			"correct":     0,
			"explanation": "Core ideas come first.",
		},
		{
			"question":    "How do you retain " + topic + "?",
			"options":     []string{"Never review", "Practice regularly", "Read once", "Guess"},
			"correct":     1,
			"explanation": "Regular practice builds retention.",
		},
	}})
	return string(b)
}

func main() {
	model := os.Getenv("MODEL_ID")
	if strings.TrimSpace(model) == "" {
		model = "test-model"
	}
	addr := os.Getenv("ADDR")
	if strings.TrimSpace(addr) == "" {
		addr = ":8081"
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/models", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{{"id": model, "object": "model"}},
		})
	})
	mux.HandleFunc("/v1/chat/completions", func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()
		var req chatRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		sys, user := "", ""
		if len(req.Messages) > 0 {
			sys = strings.TrimSpace(req.Messages[0].Content)
		}
		if len(req.Messages) > 1 {
			user = req.Messages[1].Content
		}
		var content string
		switch {
		case strings.Contains(sys, "curriculum planning"):
			content = topicsAnswer(user)
		case strings.Contains(sys, "multiple choice quizzes"):
			content = quizAnswer(user)
		default:
			http.Error(w, "unexpected system", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": content}},
			},
		})
	})

	log.Printf("openai-stub listening on %s (model=%s)", addr, model)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatal(err)
	}
}
