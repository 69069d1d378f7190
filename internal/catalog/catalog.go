// Package catalog resolves a structured course selection (category,
// subcategory and the options picked inside it) into the course name,
// description, base subject and focus topics a roadmap is built from.
//
// The built-in table ships embedded as YAML.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"text/tabwriter"

	yaml "gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var builtin []byte

// Option is one selectable entry of a group: a language topic, an exam
// subject, a semester, a skill, a certification or a proficiency level.
type Option struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Level       string   `yaml:"level"`
	Topics      []string `yaml:"topics"`
}

// Group is a subcategory.
type Group struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	// Custom groups take the course subject from the learner.
	Custom bool `yaml:"custom"`
	// Topics apply to every option of the group.
	Topics  []string `yaml:"topics"`
	Options []Option `yaml:"options"`
}

// Category is a course type.
type Category struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Guidance    []string `yaml:"guidance"`
	Groups      []Group  `yaml:"groups"`
}

// Catalog is the full selection table.
type Catalog struct {
	Categories []Category `yaml:"categories"`
}

// Parse decodes a catalog and checks that every level has unique,
// non-blank ids.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(c.Categories) == 0 {
		return nil, errors.New("catalog has no categories")
	}
	cats := map[string]bool{}
	for _, cat := range c.Categories {
		if err := checkID(cats, cat.ID, "category"); err != nil {
			return nil, err
		}
		groups := map[string]bool{}
		for _, g := range cat.Groups {
			if err := checkID(groups, g.ID, cat.ID+" group"); err != nil {
				return nil, err
			}
			if len(g.Options) == 0 {
				return nil, fmt.Errorf("catalog: %s/%s has no options", cat.ID, g.ID)
			}
			opts := map[string]bool{}
			for _, o := range g.Options {
				if err := checkID(opts, o.ID, cat.ID+"/"+g.ID+" option"); err != nil {
					return nil, err
				}
			}
		}
	}
	return &c, nil
}

func checkID(seen map[string]bool, id, what string) error {
	k := key(id)
	if k == "" {
		return fmt.Errorf("catalog: blank %s id", what)
	}
	if seen[k] {
		return fmt.Errorf("catalog: duplicate %s id %q", what, id)
	}
	seen[k] = true
	return nil
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the built-in catalog.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = Parse(builtin)
	})
	return defaultCatalog, defaultErr
}

func key(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

// Category looks a category up by id, ignoring case.
func (c *Catalog) Category(id string) (Category, bool) {
	for _, cat := range c.Categories {
		if key(cat.ID) == key(id) {
			return cat, true
		}
	}
	return Category{}, false
}

// Group looks a subcategory up by id, ignoring case.
func (c Category) Group(id string) (Group, bool) {
	for _, g := range c.Groups {
		if key(g.ID) == key(id) {
			return g, true
		}
	}
	return Group{}, false
}

// Option looks an option up by id, ignoring case. Semester options also
// answer to their bare number, so "3" finds "sem_3".
func (g Group) Option(id string) (Option, bool) {
	k := key(id)
	for _, o := range g.Options {
		if key(o.ID) == k || key(o.ID) == "sem_"+k {
			return o, true
		}
	}
	return Option{}, false
}

// List writes one line per subcategory with its selectable option ids.
func (c *Catalog) List(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CATEGORY\tSUBCATEGORY\tTOPICS")
	for _, cat := range c.Categories {
		for _, g := range cat.Groups {
			ids := make([]string, 0, len(g.Options))
			for _, o := range g.Options {
				ids = append(ids, o.ID)
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\n", cat.ID, g.ID, strings.Join(ids, ","))
		}
	}
	return tw.Flush()
}
