package main

import (
	"fmt"

	"github.com/prueflab/pruefgen/internal/catalog"
	"github.com/prueflab/pruefgen/internal/domain"
)

// cmdTemplates prints the template catalog grouped by category
func cmdTemplates() error {
	registry, err := catalog.NewRegistry()
	if err != nil {
		return err
	}

	stats := registry.Stats()
	fmt.Printf("Vorlagenkatalog: %d Vorlagen\n\n", registry.Count())
	for _, category := range domain.Categories() {
		fmt.Printf("%s (%d)\n", category.Title(), stats[category])
		for _, tmpl := range registry.All() {
			if tmpl.Category != category {
				continue
			}
			topic := ""
			if tmpl.Topic != "" {
				topic = fmt.Sprintf("  [%s]", tmpl.Topic)
			}
			fmt.Printf("  %-40s %s%s\n", tmpl.ID, tmpl.Tier, topic)
		}
		fmt.Println()
	}
	return nil
}
