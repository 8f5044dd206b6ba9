package posting

import "testing"

func TestFormatSalary_BothBounds(t *testing.T) {
	got := FormatSalary("800000", "1000000", CurrencyARS)
	want := "$800.000 - $1.000.000 ARS"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestFormatSalary_LowerOnly(t *testing.T) {
	got := FormatSalary("800000", "", CurrencyUSD)
	want := "$800.000 USD"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestFormatSalary_NoBounds(t *testing.T) {
	if got := FormatSalary("", "", CurrencyARS); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestFormatSalary_StripsNonDigits(t *testing.T) {
	got := FormatSalary("$ 800.000", "1,000,000 pesos", CurrencyARS)
	want := "$800.000 - $1.000.000 ARS"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestFormatSalary_UpperOnlyIsEmpty(t *testing.T) {
	// An upper bound without a lower bound is not renderable.
	if got := FormatSalary("", "1000000", CurrencyARS); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want int64
		ok   bool
	}{
		{"800000", 800000, true},
		{"$1.000.000", 1000000, true},
		{"  9 0 0 ", 900, true},
		{"", 0, false},
		{"a confirmar", 0, false},
	}
	for _, c := range cases {
		got, ok := ParseAmount(c.in)
		if ok != c.ok || got != c.want {
			t.Fatalf("ParseAmount(%q) = (%d, %v), expected (%d, %v)", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestParseWorkMode(t *testing.T) {
	if m, ok := ParseWorkMode(" Remoto "); !ok || m != WorkModeRemote {
		t.Fatalf("expected remoto, got (%q, %v)", m, ok)
	}
	if _, ok := ParseWorkMode("freelance"); ok {
		t.Fatalf("expected freelance to be rejected")
	}
}

func TestParseCurrency(t *testing.T) {
	if c, ok := ParseCurrency("ars"); !ok || c != CurrencyARS {
		t.Fatalf("expected ARS, got (%q, %v)", c, ok)
	}
	if _, ok := ParseCurrency("EUR"); ok {
		t.Fatalf("expected EUR to be rejected")
	}
}
