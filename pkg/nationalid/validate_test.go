package nationalid

import "testing"

func TestIsValidFormat(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected bool
	}{
		{"fourteen digits", "30101010123456", true},
		{"all zeros is still digits", "00000000000000", true},
		{"thirteen digits", "3010101012345", false},
		{"fifteen digits", "301010101234567", false},
		{"empty", "", false},
		{"trailing letter", "3010101012345x", false},
		{"leading space", " 3010101012345", false},
		{"unicode digits", "٣٠١٠١٠١٠١٢٣٤٥٦", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidFormat(tt.in); got != tt.expected {
				t.Errorf("IsValidFormat(%q) = %v, want %v", tt.in, got, tt.expected)
			}
		})
	}
}

func TestValidateChecksum(t *testing.T) {
	t.Run("accepts a matching checksum digit", func(t *testing.T) {
		// Weighted sum of 3010101012345 is 68, so the digit is 8.
		if !ValidateChecksum(rawChecksumCorrect) {
			t.Error("expected checksum pass")
		}
	})

	t.Run("rejects a mismatching digit", func(t *testing.T) {
		if ValidateChecksum(rawMaleCairo2001) {
			t.Error("expected checksum failure")
		}
	})

	t.Run("rejects bad format outright", func(t *testing.T) {
		for _, in := range []string{"", "123", "3010101012345x"} {
			if ValidateChecksum(in) {
				t.Errorf("ValidateChecksum(%q) = true", in)
			}
		}
	})

	t.Run("exactly one digit passes per prefix", func(t *testing.T) {
		prefix := rawMaleCairo2001[:13]
		passes := 0
		for d := byte('0'); d <= '9'; d++ {
			if ValidateChecksum(prefix + string(d)) {
				passes++
			}
		}
		if passes != 1 {
			t.Errorf("%d checksum digits passed, want exactly 1", passes)
		}
	})
}

func TestChecksumDigit(t *testing.T) {
	d, ok := ChecksumDigit(rawMaleCairo2001)
	if !ok || d != 8 {
		t.Fatalf("ChecksumDigit = (%d, %v), want (8, true)", d, ok)
	}
	if ValidateChecksum(rawMaleCairo2001[:13] + "8") != true {
		t.Error("computed digit must satisfy ValidateChecksum")
	}
	if _, ok := ChecksumDigit("123"); ok {
		t.Error("short input must not produce a digit")
	}
	if _, ok := ChecksumDigit("3010101x12345"); ok {
		t.Error("non-digit input must not produce a digit")
	}
}

func TestIsValidComposite(t *testing.T) {
	t.Run("mirrors the full pipeline", func(t *testing.T) {
		if !IsValid(rawMaleCairo2001) {
			t.Error("structurally valid number must pass")
		}
		if IsValid("30101019999999") {
			t.Error("governorate 99 must fail")
		}
		if IsValid("30102310112345") {
			t.Error("February 31 must fail")
		}
	})

	t.Run("honors the checksum option", func(t *testing.T) {
		if IsValid(rawMaleCairo2001, WithChecksum()) {
			t.Error("checksum-failing number must fail when opted in")
		}
		if !IsValid(rawChecksumCorrect, WithChecksum()) {
			t.Error("checksum-passing number must pass when opted in")
		}
	})
}
