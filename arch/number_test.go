package arch

import "testing"

func TestParseNumberDecimal(t *testing.T) {
	v, ok := ParseNumber("42")
	if !ok || v != 42 {
		t.Fatalf("ParseNumber(\"42\") = %d, %v; want 42, true", v, ok)
	}
}

func TestParseNumberHexAndBinary(t *testing.T) {
	cases := map[string]int64{
		"0x10":     16,
		"0X10":     16,
		"0xFF":     255,
		"0b1111_0000": 240,
		"0B101":    5,
	}
	for tok, want := range cases {
		v, ok := ParseNumber(tok)
		if !ok || v != want {
			t.Errorf("ParseNumber(%q) = %d, %v; want %d, true", tok, v, ok, want)
		}
	}
}

func TestParseNumberBounds(t *testing.T) {
	if v, ok := ParseNumber("32767"); !ok || v != 32767 {
		t.Fatalf("ParseNumber(\"32767\") = %d, %v; want 32767, true", v, ok)
	}
	if _, ok := ParseNumber("32768"); ok {
		t.Fatal("ParseNumber(\"32768\") should be out of range")
	}
	if _, ok := ParseNumber("-1"); ok {
		t.Fatal("ParseNumber(\"-1\") should be rejected (negative literals aren't data immediates)")
	}
}

func TestParseNumberInvalid(t *testing.T) {
	invalid := []string{"", "abc", "0xZZ", "12abc"}
	for _, tok := range invalid {
		if _, ok := ParseNumber(tok); ok {
			t.Errorf("ParseNumber(%q) should fail", tok)
		}
	}
}
