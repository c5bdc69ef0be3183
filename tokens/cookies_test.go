package tokens

import "testing"

func TestParseCookieHeader(t *testing.T) {
	parsed := ParseCookieHeader("access_token=tok3; other=x")
	if parsed["access_token"] != "tok3" {
		t.Fatalf("access_token: got %q", parsed["access_token"])
	}
	if parsed["other"] != "x" {
		t.Fatalf("other: got %q", parsed["other"])
	}
}

func TestParseCookieHeaderQuoted(t *testing.T) {
	parsed := ParseCookieHeader(`access_token="tok3"`)
	if parsed["access_token"] != "tok3" {
		t.Fatalf("quoted value: got %q", parsed["access_token"])
	}
}

func TestParseCookieHeaderFirstWins(t *testing.T) {
	parsed := ParseCookieHeader("access_token=first; access_token=second")
	if parsed["access_token"] != "first" {
		t.Fatalf("duplicate name: got %q, want first occurrence", parsed["access_token"])
	}
}

// the parser never fails. anything it cannot parse reads as an empty map
func TestParseCookieHeaderMalformed(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"no equals sign", "access_token"},
		{"empty pair segment", "access_token=tok3;;"},
		{"space in value", "access_token=tok 3"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			parsed := ParseCookieHeader(tc.raw)
			if len(parsed) != 0 {
				t.Fatalf("got %v, want empty map", parsed)
			}
		})
	}
}
