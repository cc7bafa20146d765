package personnel

import "testing"

func TestEscapeLike(t *testing.T) {
	cases := map[string]string{
		"ana":    "ana",
		"50%":    `50\%`,
		"a_b":    `a\_b`,
		`c:\dir`: `c:\\dir`,
		"Pérez":  "Pérez",
	}
	for in, want := range cases {
		if got := escapeLike(in); got != want {
			t.Errorf("escapeLike(%q) = %q, want %q", in, got, want)
		}
	}
}
