package jwt

import "testing"

func TestMakeParseRoundtrip(t *testing.T) {
	tok, err := Make("user-123")
	if err != nil {
		t.Fatalf("make: %v", err)
	}
	uid, err := Parse(tok)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if uid != "user-123" {
		t.Fatalf("uid = %q, want user-123", uid)
	}
}

func TestParseGarbage(t *testing.T) {
	for _, tok := range []string{"", "garbage", "a.b.c"} {
		if _, err := Parse(tok); err == nil {
			t.Fatalf("Parse(%q) succeeded, want error", tok)
		}
	}
}
