package parser

import "testing"

func TestNormalizeGuestName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"  Smith,   John  ", "Smith, John"},
		{"Alfaalil John Smith", "Mr. John Smith"},
		{"Alfaalila Jane Smith", "Ms. Jane Smith"},
		{"ALFAALIL JOHN", "Mr. JOHN"},
		{"Kokko Tim", "Kid Tim"},
		{"Smith/Jones", "Smith / Jones"},
		{"Alfaalil\tJohn\n Smith", "Mr. John Smith"},
		// 未命中的词原样保留
		{"Dr. Who", "Dr. Who"},
		{"", ""},
	}

	for _, tc := range cases {
		if got := NormalizeGuestName(tc.in); got != tc.want {
			t.Fatalf("normalize %q: got=%q want=%q", tc.in, got, tc.want)
		}
	}
}
