package scoring

import (
	"errors"
	"math"
	"testing"
)

func testFXTable() FXTable {
	return FXTable{
		Base:  "GBP",
		Rates: map[string]float64{"GBP": 1.0, "USD": 1.27, "SEK": 13.20, "EUR": 1.17},
		Formats: map[string]CurrencyFormat{
			"GBP": {Symbol: "£"},
			"USD": {Symbol: "$"},
			"SEK": {Symbol: "SEK", SymbolAfter: true},
			"EUR": {Symbol: "€"},
		},
		Locations: []Location{
			{Name: "Staines", Country: "UK", Currency: "GBP", CostAdjustment: 1.0},
			{Name: "London", Country: "UK", Currency: "GBP", CostAdjustment: 1.10},
			{Name: "Stockholm", Country: "Sweden", Currency: "SEK", CostAdjustment: 1.08},
			{Name: "Chicago", Country: "US", Currency: "USD"},
		},
	}
}

func mustNormalizer(t *testing.T, opts ...CurrencyOption) *CurrencyNormalizer {
	t.Helper()
	n, err := NewCurrencyNormalizer(testFXTable(), opts...)
	if err != nil {
		t.Fatalf("new normalizer: %v", err)
	}
	return n
}

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestConvertThroughBase(t *testing.T) {
	n := mustNormalizer(t)

	got, err := n.Convert(100, "GBP", "usd")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if !almostEqual(got, 127, 1e-9) {
		t.Fatalf("expected 127, got %v", got)
	}

	got, err = n.Convert(1320, "SEK", "USD")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if !almostEqual(got, 127, 1e-9) {
		t.Fatalf("expected 127, got %v", got)
	}
}

func TestConvertRoundTrip(t *testing.T) {
	n := mustNormalizer(t)
	codes := []string{"GBP", "USD", "SEK", "EUR"}
	for _, c1 := range codes {
		for _, c2 := range codes {
			mid, err := n.Convert(54321.5, c1, c2)
			if err != nil {
				t.Fatalf("convert %s->%s: %v", c1, c2, err)
			}
			back, err := n.Convert(mid, c2, c1)
			if err != nil {
				t.Fatalf("convert back %s->%s: %v", c2, c1, err)
			}
			if !almostEqual(back, 54321.5, 1e-6) {
				t.Fatalf("round trip %s->%s drifted: %v", c1, c2, back)
			}
		}
	}
}

func TestConvertUnknownCurrency(t *testing.T) {
	t.Run("strict by default", func(t *testing.T) {
		n := mustNormalizer(t)
		if _, err := n.Convert(10, "XYZ", "GBP"); !errors.Is(err, ErrUnknownCurrency) {
			t.Fatalf("expected ErrUnknownCurrency, got %v", err)
		}
	})

	t.Run("fallback reports the code", func(t *testing.T) {
		var seen []string
		n := mustNormalizer(t, WithUnknownFallback(func(code string) { seen = append(seen, code) }))
		got, err := n.Convert(10, "xyz", "GBP")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 10 {
			t.Fatalf("expected base rate fallback, got %v", got)
		}
		if len(seen) != 1 || seen[0] != "XYZ" {
			t.Fatalf("expected fallback hook with XYZ, got %v", seen)
		}
	})
}

func TestConvertMoneyKeepsSource(t *testing.T) {
	n := mustNormalizer(t)
	src := MoneyAmount{Value: 1000, Currency: "GBP"}
	out, err := n.ConvertMoney(src, "eur")
	if err != nil {
		t.Fatalf("convert money: %v", err)
	}
	if src.Value != 1000 || src.Currency != "GBP" {
		t.Fatalf("source mutated: %+v", src)
	}
	if out.Currency != "EUR" || !almostEqual(out.Value, 1170, 1e-9) {
		t.Fatalf("unexpected result: %+v", out)
	}
}

func TestLocalizeAppliesCostAfterFX(t *testing.T) {
	n := mustNormalizer(t)

	got, err := n.Localize(60000, "London")
	if err != nil {
		t.Fatalf("localize: %v", err)
	}
	if got.Currency != "GBP" || !almostEqual(got.Value, 66000, 1e-6) {
		t.Fatalf("unexpected London amount: %+v", got)
	}

	got, err = n.Localize(60000, "chicago")
	if err != nil {
		t.Fatalf("localize: %v", err)
	}
	if got.Currency != "USD" || !almostEqual(got.Value, 76200, 1e-6) {
		t.Fatalf("unexpected Chicago amount: %+v", got)
	}

	if _, err := n.Localize(1, "Atlantis"); !errors.Is(err, ErrUnknownLocation) {
		t.Fatalf("expected ErrUnknownLocation, got %v", err)
	}
}

func TestSalaryRangeRoundsForDisplay(t *testing.T) {
	n := mustNormalizer(t)
	got, err := n.SalaryRange(50000, 70000, "Stockholm")
	if err != nil {
		t.Fatalf("salary range: %v", err)
	}
	if got.Min.Value != 713000 || got.Max.Value != 998000 {
		t.Fatalf("unexpected bounds: %+v / %+v", got.Min, got.Max)
	}
	if got.Display != "713,000 SEK - 998,000 SEK" {
		t.Fatalf("unexpected display: %q", got.Display)
	}
}

func TestFormat(t *testing.T) {
	n := mustNormalizer(t)
	tests := []struct {
		in   MoneyAmount
		want string
	}{
		{MoneyAmount{Value: 60000, Currency: "GBP"}, "£60,000"},
		{MoneyAmount{Value: 720000, Currency: "SEK"}, "720,000 SEK"},
		{MoneyAmount{Value: 1250.4, Currency: "usd"}, "$1,250"},
		{MoneyAmount{Value: 900, Currency: "CHF"}, "900 CHF"},
	}
	for _, tt := range tests {
		if got := n.Format(tt.in); got != tt.want {
			t.Fatalf("format %+v: expected %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestNewCurrencyNormalizerRejectsBadTable(t *testing.T) {
	table := testFXTable()
	table.Rates["JPY"] = 0
	if _, err := NewCurrencyNormalizer(table); err == nil {
		t.Fatalf("expected error for zero rate")
	}

	table = testFXTable()
	table.Locations = append(table.Locations, Location{Name: "Tokyo", Currency: "JPY"})
	if _, err := NewCurrencyNormalizer(table); !errors.Is(err, ErrUnknownCurrency) {
		t.Fatalf("expected ErrUnknownCurrency for location currency, got %v", err)
	}

	for _, adj := range []float64{-0.9, math.NaN(), math.Inf(1)} {
		table = testFXTable()
		table.Locations = append(table.Locations, Location{Name: "Leeds", Currency: "GBP", CostAdjustment: adj})
		if _, err := NewCurrencyNormalizer(table); err == nil {
			t.Fatalf("expected error for cost adjustment %v", adj)
		}
	}
}

func TestRoundDisplay(t *testing.T) {
	cases := map[float64]float64{
		712800: 713000,
		500:    1000,
		499.9:  0,
		-1500:  -2000,
	}
	for in, want := range cases {
		if got := RoundDisplay(in); got != want {
			t.Fatalf("RoundDisplay(%v) = %v, want %v", in, got, want)
		}
	}
}
