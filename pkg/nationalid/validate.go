package nationalid

import (
	str "bitaqa/pkg/string"
)

// checksumWeights is the weight vector applied to digits 0..12. This is a
// best-effort approximation: the issuing authority has never published the
// real algorithm, so the checksum step is opt-in (see WithChecksum) and a
// failure only means the number does not match this particular weighting.
var checksumWeights = [13]int{2, 7, 6, 5, 4, 3, 2, 7, 6, 5, 4, 3, 2}

// IsValidFormat reports whether s is exactly 14 ASCII digits. It never
// returns an error and has no side effects.
func IsValidFormat(s string) bool {
	return len(s) == rawLength && str.IsDigits(s)
}

// ValidateChecksum reports whether the 14th digit matches the weighted sum of
// the first 13 (sum mod 10). Returns false for anything that fails the format
// check.
func ValidateChecksum(s string) bool {
	if !IsValidFormat(s) {
		return false
	}
	sum := 0
	for i, w := range checksumWeights {
		sum += int(s[i]-'0') * w
	}
	return sum%10 == int(s[rawLength-1]-'0')
}

// ChecksumDigit computes the checksum digit this package's weighting expects
// for the first 13 digits of s. The bool is false if s is shorter than 13
// characters or contains a non-digit in that span.
func ChecksumDigit(s string) (int, bool) {
	if len(s) < rawLength-1 || !str.IsDigits(s[:rawLength-1]) {
		return 0, false
	}
	sum := 0
	for i, w := range checksumWeights {
		sum += int(s[i]-'0') * w
	}
	return sum % 10, true
}

// IsValid reports whether the full construction pipeline would accept s under
// the given options.
func IsValid(s string, opts ...Option) bool {
	_, err := Parse(s, opts...)
	return err == nil
}
