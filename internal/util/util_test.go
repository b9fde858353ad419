package util

import "testing"

func TestMaskCardNumberKeepsBINAndLastFour(t *testing.T) {
	if got := MaskCardNumber("4111222233334444"); got != "4111********4444" {
		t.Fatalf("unexpected mask: %q", got)
	}
}

func TestMaskCardNumberShortInput(t *testing.T) {
	if got := MaskCardNumber("1234"); got != "****" {
		t.Fatalf("unexpected mask: %q", got)
	}
	if got := MaskCardNumber(""); got != "" {
		t.Fatalf("expected empty mask, got %q", got)
	}
}

func TestMaskToken(t *testing.T) {
	if got := MaskToken("eyJhbGciOiJIUzI1NiJ9"); got != "eyJh...NiJ9" {
		t.Fatalf("unexpected mask: %q", got)
	}
	if got := MaskToken("ab"); got != "..." {
		t.Fatalf("unexpected mask: %q", got)
	}
}
