package catalog

import (
	"fmt"
	"strings"

	"github.com/hyperifyio/goroadmap/internal/roadmap"
)

// Selection is what the learner picked.
type Selection struct {
	Category    string
	Subcategory string
	// Topics are option ids inside the subcategory.
	Topics []string
	// Custom names the course for "other" subcategories. Other groups
	// ignore it.
	Custom string
}

// Course is a resolved selection.
type Course struct {
	Type        string
	Subcategory string
	Selected    []string
	Name        string
	Description string
	// Subject is the short base name used for classification, templates
	// and media search, e.g. "Python" for "Python Programming - Algorithms".
	Subject string
	// Focus lists the topics the roadmap should cover first.
	Focus []string
	// Guidance is the course type's extra requirements for the remote
	// generator.
	Guidance []string
}

// Record returns the part of c stored on a roadmap.
func (c Course) Record() *roadmap.Course {
	return &roadmap.Course{
		Name:        c.Name,
		Description: c.Description,
		Type:        c.Type,
		Subcategory: c.Subcategory,
		Selected:    append([]string(nil), c.Selected...),
	}
}

func invalid(field, format string, args ...any) error {
	return &roadmap.InvalidInputError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// Resolve turns sel into a Course. Unknown categories, subcategories and,
// outside custom subcategories, unknown topic ids are reported as
// *roadmap.InvalidInputError.
func (c *Catalog) Resolve(sel Selection) (Course, error) {
	cat, ok := c.Category(sel.Category)
	if !ok {
		return Course{}, invalid("category", "unknown category %q", sel.Category)
	}
	grp, ok := cat.Group(sel.Subcategory)
	if !ok {
		return Course{}, invalid("subcategory", "%q is not a subcategory of %s", sel.Subcategory, cat.ID)
	}
	base := grp.Name
	if grp.Custom {
		base = strings.TrimSpace(sel.Custom)
		if base == "" {
			return Course{}, invalid("subject", "subcategory %s/%s needs a subject naming the course", cat.ID, grp.ID)
		}
	}

	picked, err := pick(grp, sel.Topics)
	if err != nil {
		return Course{}, err
	}
	names := make([]string, 0, len(picked))
	ids := make([]string, 0, len(picked))
	for _, o := range picked {
		names = append(names, o.Name)
		ids = append(ids, o.ID)
	}
	joined := strings.Join(names, ", ")

	out := Course{
		Type:        cat.ID,
		Subcategory: grp.ID,
		Selected:    ids,
		Subject:     base,
		Guidance:    append([]string(nil), cat.Guidance...),
	}
	switch cat.ID {
	case "programming":
		if len(picked) == 0 || hasID(picked, "complete") {
			out.Name = base + " Programming"
			out.Description = "Learn " + base + " programming from basics to advanced"
			break
		}
		out.Name = base + " Programming - " + joined
		out.Description = "Learn " + base + " programming focusing on " + joined
		out.Focus = names

	case "competitive":
		out.Name = base + " Preparation"
		out.Description = "Comprehensive preparation for " + base + " competitive examination"
		if len(picked) > 0 {
			out.Name += " - " + joined
			out.Description += " focusing on " + joined
			out.Focus = optionTopics(picked)
		} else {
			out.Focus = optionTopics(grp.Options)
		}

	case "college":
		if len(picked) == 0 {
			return Course{}, invalid("topics", "select at least one semester of %s", grp.ID)
		}
		out.Name = base + " - " + joined
		out.Description = "College curriculum for " + base + " covering " + joined
		out.Focus = optionTopics(picked)

	case "skills":
		if len(picked) == 0 {
			if !grp.Custom {
				return Course{}, invalid("topics", "select at least one skill of %s", grp.ID)
			}
			out.Name = base
			out.Description = "Develop practical skills in " + base
			break
		}
		out.Name = grp.Name + " - " + joined
		if grp.Custom {
			out.Name = base + " - " + joined
		}
		out.Description = "Develop practical skills in " + joined
		out.Subject, out.Focus = narrow(base, names)

	case "certifications":
		if len(picked) == 0 {
			if !grp.Custom {
				return Course{}, invalid("topics", "select at least one certification of %s", grp.ID)
			}
			out.Name = base + " Certification"
			out.Description = "Prepare for the " + base + " certification"
			break
		}
		out.Name = base + " Certification - " + joined
		out.Description = "Prepare for " + base + " certifications: " + joined
		out.Subject, out.Focus = narrow(base, names)

	case "languages":
		if len(picked) == 0 {
			return Course{}, invalid("topics", "select at least one level of %s", grp.ID)
		}
		out.Name = base + " Language Learning - " + joined
		out.Description = "Learn " + base + " at " + joined + " level"
		out.Focus = append([]string(nil), grp.Topics...)

	default:
		out.Name = base
		out.Description = cat.Description
		if len(picked) > 0 {
			out.Name += " - " + joined
			out.Focus = names
		}
	}
	return out, nil
}

// pick maps ids to options, dropping blanks and repeats. In custom
// subcategories the placeholder "custom" option stands for the subject
// itself and unknown ids are kept verbatim as free-form topics.
func pick(grp Group, ids []string) ([]Option, error) {
	var out []Option
	seen := map[string]bool{}
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		o, ok := grp.Option(id)
		switch {
		case ok && grp.Custom && o.ID == "custom":
			continue
		case !ok && grp.Custom:
			o = Option{ID: id, Name: id}
		case !ok:
			return nil, invalid("topics", "%q is not offered by %s", id, grp.ID)
		}
		if seen[key(o.ID)] {
			continue
		}
		seen[key(o.ID)] = true
		out = append(out, o)
	}
	return out, nil
}

func hasID(opts []Option, id string) bool {
	for _, o := range opts {
		if o.ID == id {
			return true
		}
	}
	return false
}

// optionTopics flattens the topics of opts, first occurrence wins.
func optionTopics(opts []Option) []string {
	var out []string
	seen := map[string]bool{}
	for _, o := range opts {
		for _, t := range o.Topics {
			if k := key(t); !seen[k] {
				seen[k] = true
				out = append(out, t)
			}
		}
	}
	return out
}

// narrow makes a single pick the subject; several picks stay focus topics
// under the group's subject.
func narrow(base string, names []string) (string, []string) {
	if len(names) == 1 {
		return names[0], nil
	}
	return base, append([]string(nil), names...)
}
