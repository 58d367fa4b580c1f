package render

import (
	"fmt"
	"strings"

	"github.com/prueflab/pruefgen/internal/domain"
)

// Summary renders the short per-run report printed after generation
func Summary(doc *domain.TestDocument) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Einstufungstest %s\n", doc.RunID)
	fmt.Fprintf(&b, "  Seed:        %d\n", doc.Seed)
	fmt.Fprintf(&b, "  Profil:      %s\n", doc.Difficulty)
	fmt.Fprintf(&b, "  Erstellt:    %s\n", doc.GeneratedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "  Arbeitszeit: %d Minuten, bestanden ab %d von %d Punkten\n",
		doc.TimeLimitMinutes, doc.PassMark, doc.TotalPoints)
	b.WriteString("\n")

	for i, cat := range doc.Categories {
		fmt.Fprintf(&b, "  %d. %-24s %2d Aufgaben, %d Punkte\n",
			i+1, cat.Category.Title(), len(cat.Tasks), cat.Points)
	}
	return b.String()
}
