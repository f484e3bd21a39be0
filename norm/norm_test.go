package norm

import "testing"

func TestPass1(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"won't", "won't"},
		{"well-known", "well-known"},
		{"Hello,", "hello"},
		{"can't!", "can't"},
		{"123", "123"},
		{"", ""},
		{"!@#", ""},
		{"¿Qué?", "qué"},
	}

	for _, c := range cases {
		if got := Pass1(c.in); got != c.want {
			t.Errorf("Pass1(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestPass2(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"won't", "wont"},
		{"well-known", "wellknown"},
		{"Hello,", "hello"},
		{"can't!", "cant"},
		{"", ""},
		{"!@#", ""},
		{"'-", ""},
	}

	for _, c := range cases {
		if got := Pass2(c.in); got != c.want {
			t.Errorf("Pass2(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
