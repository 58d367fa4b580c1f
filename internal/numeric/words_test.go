package numeric

import "testing"

func TestWords(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "null"},
		{1, "eins"},
		{7, "sieben"},
		{11, "elf"},
		{16, "sechzehn"},
		{20, "zwanzig"},
		{21, "einundzwanzig"},
		{30, "dreißig"},
		{45, "fünfundvierzig"},
		{100, "einhundert"},
		{101, "einhunderteins"},
		{111, "einhundertelf"},
		{345, "dreihundertfünfundvierzig"},
		{1000, "eintausend"},
		{1001, "eintausendeins"},
		{1100, "eintausendeinhundert"},
		{2026, "zweitausendsechsundzwanzig"},
		{21000, "einundzwanzigtausend"},
		{100000, "einhunderttausend"},
		{345021, "dreihundertfünfundvierzigtausendeinundzwanzig"},
		{999999, "neunhundertneunundneunzigtausendneunhundertneunundneunzig"},
	}
	for _, tt := range tests {
		if got := Words(tt.n); got != tt.want {
			t.Errorf("Words(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestWordsOutOfRange(t *testing.T) {
	if got := Words(-1); got != "" {
		t.Errorf("Words(-1) = %q, want empty", got)
	}
	if got := Words(1_000_000); got != "" {
		t.Errorf("Words(1000000) = %q, want empty", got)
	}
}
