// Package selecter filters and ranks remote media candidates for a topic.
package selecter

import (
    "net/url"
    "regexp"
    "sort"
    "strings"

    "github.com/hyperifyio/goroadmap/internal/classify"
    "github.com/hyperifyio/goroadmap/internal/search"
)

// Criteria describes the topic a candidate must fit.
type Criteria struct {
    Subject string
    Topic   string
    Domain  classify.Tag
}

// Options configures selection constraints.
type Options struct {
    // MaxResults is clamped to 1..2.
    MaxResults int
}

var (
    educational = classify.WordPattern([]string{
        "tutorial", "tutorials", "learn", "learning", "course", "lesson", "lessons", "guide",
        "explained", "how to", "training", "class", "lecture", "study", "teach", "teaching",
        "beginners", "crash course",
    })
    blacklist = classify.WordPattern([]string{
        "music video", "song", "funny", "prank", "reaction", "gaming", "entertainment",
        "movie", "trailer", "comedy", "meme",
    })
    qualityChannel = []string{
        "academy", "education", "tutorial", "learning", "university", "institute",
        "school", "tech", "code", "dev",
    }
    editingContext = classify.WordPattern([]string{
        "video editing", "premiere pro", "after effects", "final cut", "davinci resolve",
        "capcut", "editor", "editing",
    })
    editingTools = classify.WordPattern([]string{
        "premiere pro", "after effects", "final cut", "davinci resolve", "capcut", "editing",
        "timeline", "transition", "color grading", "render", "export",
    })
    phrasePrefixes = regexp.MustCompile(`(?i)\b(?:introduction to|getting started with|basics of|fundamentals of|advanced|practical|hands-on)\b`)
)

// Simplify strips introductory and level qualifiers from a topic title so
// "Introduction to Python Loops" can match a video titled "Python Loops".
func Simplify(topic string) string {
    return strings.Join(strings.Fields(phrasePrefixes.ReplaceAllString(topic, " ")), " ")
}

// Verdict is the outcome of each quality check for one candidate.
type Verdict struct {
    Blacklisted    bool
    Educational    bool
    ExactPhrase    bool
    DomainRelevant bool
    EditingOK      bool
    QualityChannel bool
}

// Accept reports whether every hard requirement holds. QualityChannel only
// affects ranking.
func (v Verdict) Accept() bool {
    return !v.Blacklisted && (v.Educational || v.ExactPhrase) && v.DomainRelevant && v.EditingOK
}

// Assess runs the quality filter over a candidate's title, snippet and
// channel.
func Assess(r search.Result, c Criteria) Verdict {
    content := strings.ToLower(r.Title + " " + r.Snippet)
    channel := strings.ToLower(r.Channel)
    v := Verdict{
        Blacklisted:    blacklist.MatchString(content),
        Educational:    educational.MatchString(content),
        DomainRelevant: classify.MatchesDomain(c.Domain, content),
        EditingOK:      true,
    }
    if phrase := strings.ToLower(Simplify(c.Topic)); phrase != "" {
        v.ExactPhrase = classify.WordPattern([]string{phrase}).MatchString(content)
    }
    if editingContext.MatchString(strings.ToLower(c.Subject + " " + c.Topic)) {
        v.EditingOK = editingTools.MatchString(content)
    }
    for _, ind := range qualityChannel {
        if strings.Contains(channel, ind) {
            v.QualityChannel = true
            break
        }
    }
    return v
}

// Select keeps candidates that pass Assess, drops duplicates, and returns
// at most MaxResults of them. Provider order is the relevance order; a
// quality channel moves a candidate ahead of non-boosted ones without
// reordering candidates within the same group.
func Select(results []search.Result, c Criteria, opt Options) []search.Result {
    max := opt.MaxResults
    if max < 1 {
        max = 1
    }
    if max > 2 {
        max = 2
    }
    type ranked struct {
        r       search.Result
        boosted bool
    }
    kept := make([]ranked, 0, len(results))
    seen := map[string]struct{}{}
    for _, r := range results {
        key := dedupeKey(r)
        if key == "" {
            continue
        }
        if _, dup := seen[key]; dup {
            continue
        }
        v := Assess(r, c)
        if !v.Accept() {
            continue
        }
        seen[key] = struct{}{}
        kept = append(kept, ranked{r: r, boosted: v.QualityChannel})
    }
    sort.SliceStable(kept, func(i, j int) bool { return kept[i].boosted && !kept[j].boosted })
    out := make([]search.Result, 0, max)
    for _, k := range kept {
        out = append(out, k.r)
        if len(out) == max {
            break
        }
    }
    return out
}

func dedupeKey(r search.Result) string {
    if id := strings.TrimSpace(r.SourceID); id != "" {
        return id
    }
    u, err := url.Parse(strings.TrimSpace(r.URL))
    if err != nil || u.Host == "" {
        return ""
    }
    return canonicalizeURL(u)
}

func canonicalizeURL(u *url.URL) string {
	// drop fragments and default ports; lower-case host
	u2 := *u
	u2.Fragment = ""
	u2.Host = strings.ToLower(u2.Host)
	if (u2.Scheme == "http" && strings.HasSuffix(u2.Host, ":80")) || (u2.Scheme == "https" && strings.HasSuffix(u2.Host, ":443")) {
		u2.Host = u2.Hostname()
	}
	return u2.String()
}
