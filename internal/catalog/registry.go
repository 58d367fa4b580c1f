package catalog

import (
	"fmt"
	"sort"

	"github.com/prueflab/pruefgen/internal/domain"
)

// Registry holds the full template catalog indexed by id. It is built once
// and never mutated afterwards, so lookups need no locking.
type Registry struct {
	values    *Values
	templates []*Template
	byID      map[string]*Template
}

// NewRegistry loads the value catalog and registers every built-in template.
// Registration fails on duplicate ids or templates without a generator.
func NewRegistry() (*Registry, error) {
	values, err := LoadValues()
	if err != nil {
		return nil, fmt.Errorf("load value catalog: %w", err)
	}

	r := &Registry{
		values: values,
		byID:   make(map[string]*Template),
	}

	groups := [][]*Template{
		arithmeticTemplates(),
		numberSenseTemplates(),
		wordTemplates(),
		fractionTemplates(),
		equationTemplates(),
		spatialTemplates(),
	}
	for _, group := range groups {
		for _, t := range group {
			if err := r.register(t); err != nil {
				return nil, err
			}
		}
	}
	sort.Slice(r.templates, func(i, j int) bool { return r.templates[i].ID < r.templates[j].ID })
	return r, nil
}

func (r *Registry) register(t *Template) error {
	if t.ID == "" || t.Generate == nil {
		return fmt.Errorf("template %q: missing id or generator", t.ID)
	}
	if _, dup := r.byID[t.ID]; dup {
		return fmt.Errorf("template %q registered twice", t.ID)
	}
	r.byID[t.ID] = t
	r.templates = append(r.templates, t)
	return nil
}

// Values returns the shared value catalog
func (r *Registry) Values() *Values { return r.values }

// Get returns a template by id
func (r *Registry) Get(id string) (*Template, error) {
	t, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("template %q: %w", id, domain.ErrTemplateNotFound)
	}
	return t, nil
}

// All returns every template in id order
func (r *Registry) All() []*Template { return r.templates }

// Count returns the number of registered templates
func (r *Registry) Count() int { return len(r.templates) }

// Find returns the templates matching category, tier and topic, in id order.
// An empty topic matches only templates without a topic pin; a set topic
// matches only templates pinned to it.
func (r *Registry) Find(category domain.Category, tier domain.Tier, topic string) []*Template {
	var out []*Template
	for _, t := range r.templates {
		if t.Category == category && t.Tier == tier && t.Topic == topic {
			out = append(out, t)
		}
	}
	return out
}

// Stats reports the number of templates per category
func (r *Registry) Stats() map[domain.Category]int {
	stats := make(map[domain.Category]int)
	for _, t := range r.templates {
		stats[t.Category]++
	}
	return stats
}
