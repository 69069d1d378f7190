package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/hyperifyio/goroadmap/internal/classify"
	"github.com/hyperifyio/goroadmap/internal/media"
	"github.com/hyperifyio/goroadmap/internal/search"
	selecter "github.com/hyperifyio/goroadmap/internal/select"
)

// debugsearch walks the media query ladder for one topic against SearxNG and
// prints every candidate with the selector's verdict.
func main() {
	base := os.Getenv("SEARX_URL")
	if base == "" { base = "http://localhost:8888" }
	subject, topic := "Python", "Python Loops"
	if len(os.Args) > 1 { subject = os.Args[1] }
	if len(os.Args) > 2 { topic = strings.Join(os.Args[2:], " ") }
	client := &http.Client{ Timeout: 20 * time.Second }
	policy := &search.DomainPolicy{Allowlist: []string{"youtube.com", "youtu.be"}}
	prov := &search.SearxNG{BaseURL: base, HTTPClient: client, UserAgent: "debugsearch/1.0", Policy: policy}
	crit := selecter.Criteria{Subject: subject, Topic: topic, Domain: classify.Classify(subject)}
	fmt.Printf("domain: %s\n", crit.Domain)
	for _, q := range media.Queries(subject, topic) {
		ctx, cancel := context.WithTimeout(context.Background(), 25*time.Second)
		res, err := prov.Search(ctx, q, 5)
		cancel()
		fmt.Printf("\nquery %q err: %v\n", q, err)
		for i, r := range res {
			v := selecter.Assess(r, crit)
			fmt.Printf("%d. accept=%v %s (%s) %s\n", i+1, v.Accept(), r.Title, r.Channel, r.URL)
		}
	}
}
