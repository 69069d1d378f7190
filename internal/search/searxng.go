package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hyperifyio/goroadmap/internal/extract"
)

// SearxNG queries the videos category of a SearxNG instance. Hosts the
// Policy rejects are dropped before results are counted against the limit.
type SearxNG struct {
	BaseURL    string
	APIKey     string // optional
	HTTPClient *http.Client
    UserAgent  string // optional custom UA
    // Language is passed through as the SearxNG language; empty means auto.
    Language   string
    Policy     *DomainPolicy
}

func (s *SearxNG) Name() string { return "searxng" }

// maxSnippetRunes bounds descriptions carried into media items.
const maxSnippetRunes = 300

// videoSearchURL builds the /search request for one query.
func (s *SearxNG) videoSearchURL(query string) (string, error) {
	if strings.TrimSpace(s.BaseURL) == "" {
		return "", fmt.Errorf("missing searxng base url")
	}
	u, err := url.Parse(s.BaseURL)
	if err != nil {
		return "", err
	}
	if !strings.HasSuffix(u.Path, "/search") {
		u.Path = strings.TrimRight(u.Path, "/") + "/search"
	}
	lang := strings.TrimSpace(s.Language)
	if lang == "" {
		lang = "auto"
	}
	q := u.Query()
	q.Set("q", query)
	q.Set("format", "json")
	q.Set("categories", "videos")
	q.Set("language", lang)
	q.Set("safesearch", "1")
	if s.APIKey != "" {
		q.Set("apikey", s.APIKey)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (s *SearxNG) Search(ctx context.Context, query string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}
	endpoint, err := s.videoSearchURL(query)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if s.UserAgent != "" {
		req.Header.Set("User-Agent", s.UserAgent)
	}
	hc := s.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: 10 * time.Second}
	}
	resp, err := hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("searxng status: %d", resp.StatusCode)
	}
	var sr videoResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("decode searxng response: %w", err)
	}
	out := make([]Result, 0, limit)
	for _, v := range sr.Results {
		r, ok := v.toResult()
		if !ok || !s.Policy.Allows(r.URL) {
			continue
		}
		r.Source = s.Name()
		out = append(out, r)
		if len(out) >= limit {
			break
		}
	}
	return out, nil
}

type videoResponse struct {
	Results []videoHit `json:"results"`
}

// videoHit is one entry of the videos category. Engines differ in which of
// url and iframe_src carry a recognisable video link.
type videoHit struct {
	Title     string `json:"title"`
	URL       string `json:"url"`
	Content   string `json:"content"`
	Author    string `json:"author"`
	IframeSrc string `json:"iframe_src"`
}

func (v videoHit) toResult() (Result, bool) {
	link := strings.TrimSpace(v.URL)
	title := extract.PlainText(v.Title)
	if link == "" || title == "" {
		return Result{}, false
	}
	id := VideoID(link)
	if id == "" {
		id = VideoID(v.IframeSrc)
	}
	if id == "" {
		id = link
	}
	return Result{
		SourceID: id,
		Title:    title,
		URL:      link,
		Channel:  extract.PlainText(v.Author),
		Snippet:  extract.Snippet(v.Content, maxSnippetRunes),
	}, true
}
