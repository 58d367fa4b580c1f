package render

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/prueflab/pruefgen/internal/domain"
)

func sampleDocument() *domain.TestDocument {
	diagram := "|-----|-----|\n0          100\n   ^"
	return &domain.TestDocument{
		RunID:            uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8"),
		Seed:             42,
		Difficulty:       domain.TierMedium,
		GeneratedAt:      time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC),
		TotalPoints:      7,
		TimeLimitMinutes: 90,
		PassMark:         60,
		Scale:            domain.GradingScale(),
		Categories: []domain.CategoryResult{
			{
				Category: domain.CategoryNumberSense,
				Points:   7,
				Tasks: []domain.GeneratedTask{
					{
						TemplateID:  "zahlenraum/zahlenstrahl-1",
						Points:      5,
						Problem:     "Welche Zahl zeigt der Pfeil?",
						Solution:    "30",
						Explanation: "Abschnitt mal Teilstrich.",
						Diagram:     diagram,
					},
					{
						TemplateID:  "zahlenraum/stellenwert-1",
						Points:      2,
						Problem:     "Trage 12.345,6 in die Stellenwerttafel ein.",
						Solution:    "zwölftausenddreihundertfünfundvierzig",
						Explanation: "Jede Ziffer in ihre Spalte.",
						PlaceValues: &domain.PlaceValueTable{
							Rows: []domain.PlaceValueRow{{
								Label:        "1.",
								TenThousands: "1",
								Thousands:    "2",
								Hundreds:     "3",
								Tens:         "4",
								Units:        "5",
								Tenths:       "6",
								Hundredths:   "0",
								Thousandths:  "0",
							}},
						},
					},
				},
			},
		},
	}
}

func TestMarkdownDiagramVerbatim(t *testing.T) {
	doc := sampleDocument()
	out := Markdown(doc)

	if !strings.Contains(out, doc.Categories[0].Tasks[0].Diagram) {
		t.Error("diagram not passed through byte-for-byte")
	}
	if !strings.Contains(out, "```\n"+doc.Categories[0].Tasks[0].Diagram+"\n```") {
		t.Error("diagram not fenced")
	}
}

func TestMarkdownPlaceValueTable(t *testing.T) {
	out := Markdown(sampleDocument())

	header := "| Nr | HT | ZT | T | H | Z | E | , | z | h | t |"
	if !strings.Contains(out, header) {
		t.Fatalf("place-value header missing:\n%s", out)
	}
	for _, line := range strings.Split(out, "\n") {
		if !strings.HasPrefix(line, "| ") && !strings.HasPrefix(line, "|-") && !strings.HasPrefix(line, "|  ") {
			continue
		}
		if strings.HasPrefix(line, "| Nr") || strings.Contains(line, "| 1. |") {
			if got := strings.Count(line, "|"); got != 12 {
				t.Errorf("place-value row has %d pipes, want 12: %q", got, line)
			}
		}
	}
	if !strings.Contains(out, "| 1. |") {
		t.Error("solution table row missing")
	}
}

func TestMarkdownStructure(t *testing.T) {
	out := Markdown(sampleDocument())

	for _, want := range []string{
		"# Einstufungstest Mathematik",
		"Arbeitszeit: 90 Minuten",
		"Bestanden ab: 60 Punkten",
		"## Notenschlüssel",
		"| 1 | Sehr gut | 90–100 |",
		"| 5 | Nicht genügend | 0–59 |",
		"## 1. Zahlenraum (7 Punkte)",
		"### Aufgabe 1.1 (5 Punkte)",
		"## Lösungen",
		"### Lösung 1.2",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown missing %q", want)
		}
	}
	// never scientific notation or bare decimal points in rendered numbers
	if strings.Contains(out, "e+") || strings.Contains(out, "E+") {
		t.Error("scientific notation leaked into output")
	}
}

func TestSummary(t *testing.T) {
	out := Summary(sampleDocument())

	for _, want := range []string{
		"Seed:        42",
		"Profil:      medium",
		"Zahlenraum",
		"2 Aufgaben, 7 Punkte",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q, got:\n%s", want, out)
		}
	}
}
