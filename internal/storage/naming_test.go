package storage

import (
	"regexp"
	"strings"
	"testing"
	"time"
)

var safePattern = regexp.MustCompile(`^[a-zA-Z0-9.-]+$`)

func TestSanitizeFileName_DiacriticsAndPunctuation(t *testing.T) {
	got := SanitizeFileName("Currículum Vitae (2024).pdf")
	if got != "Curriculum-Vitae-2024.pdf" {
		t.Fatalf("unexpected sanitized name: %q", got)
	}
	if !safePattern.MatchString(got) {
		t.Fatalf("sanitized name %q contains unsafe characters", got)
	}
}

func TestSanitizeFileName_Cases(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"cv.pdf", "cv.pdf"},
		{"mi cv   final!!.docx", "mi-cv-final.docx"},
		{"ñandú_résumé.PDF", "nandu-resume.pdf"},
		{"../../etc/passwd", "passwd"},
		{"(((.pdf", "archivo.pdf"},
		{"", "archivo"},
	}
	for _, c := range cases {
		got := SanitizeFileName(c.in)
		if got != c.want {
			t.Fatalf("SanitizeFileName(%q) = %q, expected %q", c.in, got, c.want)
		}
	}
}

func TestObjectKey(t *testing.T) {
	now := time.Unix(1700000000, 0)
	got := ObjectKey("Currículum Vitae (2024).pdf", now)
	if !strings.HasPrefix(got, "1700000000-") {
		t.Fatalf("expected timestamp prefix, got %q", got)
	}
	if !safePattern.MatchString(got) {
		t.Fatalf("object key %q contains unsafe characters", got)
	}
}
