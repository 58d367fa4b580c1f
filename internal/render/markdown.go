// Package render turns an assembled exam document into its output formats.
// The markdown renderer produces the printable exam with a solutions section;
// the console renderer produces the short run summary for the CLI.
package render

import (
	"fmt"
	"strings"

	"github.com/prueflab/pruefgen/internal/domain"
)

// Markdown renders the full exam: header, grading scale, the five category
// sections and a solutions part. Diagrams are emitted byte-for-byte inside
// fenced blocks; place-value tables always carry the full eleven-column
// header row.
func Markdown(doc *domain.TestDocument) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Einstufungstest Mathematik\n\n")
	fmt.Fprintf(&b, "Datum: %s  \n", doc.GeneratedAt.Format("02.01.2006"))
	fmt.Fprintf(&b, "Arbeitszeit: %d Minuten  \n", doc.TimeLimitMinutes)
	fmt.Fprintf(&b, "Gesamtpunkte: %d  \n", doc.TotalPoints)
	fmt.Fprintf(&b, "Bestanden ab: %d Punkten  \n", doc.PassMark)
	fmt.Fprintf(&b, "Kennung: %s (Seed %d)\n\n", doc.RunID, doc.Seed)

	b.WriteString("## Notenschlüssel\n\n")
	b.WriteString("| Note | Bezeichnung | Punkte |\n")
	b.WriteString("|------|-------------|--------|\n")
	for _, band := range doc.Scale {
		fmt.Fprintf(&b, "| %d | %s | %d–%d |\n", band.Grade, band.Label, band.MinPoints, band.MaxPoints)
	}
	b.WriteString("\n")

	for ci, cat := range doc.Categories {
		fmt.Fprintf(&b, "## %d. %s (%d Punkte)\n\n", ci+1, cat.Category.Title(), cat.Points)
		for ti, task := range cat.Tasks {
			fmt.Fprintf(&b, "### Aufgabe %d.%d (%d %s)\n\n",
				ci+1, ti+1, task.Points, pointWord(task.Points))
			b.WriteString(task.Problem)
			b.WriteString("\n")
			if task.Diagram != "" {
				b.WriteString("\n```\n")
				b.WriteString(task.Diagram)
				b.WriteString("\n```\n")
			}
			if task.PlaceValues != nil {
				b.WriteString("\n")
				writePlaceValueHeader(&b)
				for range task.PlaceValues.Rows {
					writeEmptyPlaceValueRow(&b)
				}
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("## Lösungen\n\n")
	for ci, cat := range doc.Categories {
		for ti, task := range cat.Tasks {
			fmt.Fprintf(&b, "### Lösung %d.%d\n\n", ci+1, ti+1)
			fmt.Fprintf(&b, "**%s**\n\n", task.Solution)
			if task.PlaceValues != nil {
				writePlaceValueHeader(&b)
				for _, row := range task.PlaceValues.Rows {
					writePlaceValueRow(&b, row)
				}
				b.WriteString("\n")
			}
			for _, line := range strings.Split(task.Explanation, "\n") {
				fmt.Fprintf(&b, "%s  \n", line)
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}

func pointWord(n int) string {
	if n == 1 {
		return "Punkt"
	}
	return "Punkte"
}

func writePlaceValueHeader(b *strings.Builder) {
	cells := domain.PlaceValueColumns
	b.WriteString("|")
	for _, c := range cells {
		fmt.Fprintf(b, " %s |", c)
	}
	b.WriteString("\n|")
	for range cells {
		b.WriteString("----|")
	}
	b.WriteString("\n")
}

func writePlaceValueRow(b *strings.Builder, row domain.PlaceValueRow) {
	b.WriteString("|")
	for _, c := range row.Columns() {
		if c == "" {
			c = " "
		}
		fmt.Fprintf(b, " %s |", c)
	}
	b.WriteString("\n")
}

// writeEmptyPlaceValueRow emits a blank fill-in row for the exam part
func writeEmptyPlaceValueRow(b *strings.Builder) {
	b.WriteString("|")
	for range domain.PlaceValueColumns {
		b.WriteString("    |")
	}
	b.WriteString("\n")
}
