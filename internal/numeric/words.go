package numeric

import "strings"

var wordsBelowTwenty = [20]string{
	"null", "eins", "zwei", "drei", "vier", "fünf", "sechs", "sieben",
	"acht", "neun", "zehn", "elf", "zwölf", "dreizehn", "vierzehn",
	"fünfzehn", "sechzehn", "siebzehn", "achtzehn", "neunzehn",
}

var wordsTens = [10]string{
	"", "zehn", "zwanzig", "dreißig", "vierzig", "fünfzig",
	"sechzig", "siebzig", "achtzig", "neunzig",
}

// Words spells a whole number in German, e.g. 345021 becomes
// "dreihundertfünfundvierzigtausendeinundzwanzig". Supported range is
// 0 to 999999, matching the place-value table's highest column.
func Words(n int64) string {
	if n < 0 || n > 999999 {
		return ""
	}
	if n == 0 {
		return wordsBelowTwenty[0]
	}
	var b strings.Builder
	if th := n / 1000; th > 0 {
		b.WriteString(segment(int(th), false))
		b.WriteString("tausend")
	}
	if rest := n % 1000; rest > 0 {
		b.WriteString(segment(int(rest), true))
	}
	return b.String()
}

// segment spells 1..999. A trailing one is "eins" at the end of the whole
// number but "ein" before tausend, so eintausendeins comes out right.
func segment(n int, final bool) string {
	var b strings.Builder
	if h := n / 100; h > 0 {
		if h == 1 {
			b.WriteString("ein")
		} else {
			b.WriteString(wordsBelowTwenty[h])
		}
		b.WriteString("hundert")
	}
	rest := n % 100
	switch {
	case rest == 0:
	case rest < 20:
		if rest == 1 && !final {
			b.WriteString("ein")
		} else {
			b.WriteString(wordsBelowTwenty[rest])
		}
	default:
		unit := rest % 10
		if unit > 0 {
			if unit == 1 {
				b.WriteString("ein")
			} else {
				b.WriteString(wordsBelowTwenty[unit])
			}
			b.WriteString("und")
		}
		b.WriteString(wordsTens[rest/10])
	}
	return b.String()
}
