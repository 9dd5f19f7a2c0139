package scoring

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// MoneyAmount es un par (valor, codigo). Convertir produce uno nuevo, nunca muta el original.
type MoneyAmount struct {
	Value    float64 `json:"value"`
	Currency string  `json:"currency"`
}

// CurrencyFormat indica el simbolo y si va antes o despues del numero.
type CurrencyFormat struct {
	Symbol      string `json:"symbol" yaml:"symbol"`
	SymbolAfter bool   `json:"symbol_after" yaml:"symbol_after"`
}

// Location asocia una ubicacion a su moneda local y multiplicador de coste de vida.
type Location struct {
	Name           string  `json:"name" yaml:"name"`
	Country        string  `json:"country" yaml:"country"`
	Currency       string  `json:"currency" yaml:"currency"`
	CostAdjustment float64 `json:"cost_adjustment" yaml:"cost_adjustment"`
}

// FXTable es la tabla fija de tipos: Rates[code] = unidades de code por 1 unidad de Base.
type FXTable struct {
	Base      string                    `yaml:"base"`
	Rates     map[string]float64        `yaml:"rates"`
	Formats   map[string]CurrencyFormat `yaml:"formats"`
	Locations []Location                `yaml:"locations"`
}

type SalaryRange struct {
	Min      MoneyAmount `json:"min"`
	Max      MoneyAmount `json:"max"`
	Location string      `json:"location"`
	Display  string      `json:"display"`
}

// CurrencyOption ajusta la politica del normalizador.
type CurrencyOption func(*CurrencyNormalizer)

// WithUnknownFallback resuelve codigos desconocidos a la tasa base 1.0 en lugar de fallar.
// El hook, si no es nil, recibe cada codigo que cayo en el fallback.
func WithUnknownFallback(hook func(code string)) CurrencyOption {
	return func(n *CurrencyNormalizer) {
		n.fallback = true
		n.onFallback = hook
	}
}

// CurrencyNormalizer convierte importes a traves de una unica moneda base.
type CurrencyNormalizer struct {
	base       string
	rates      map[string]float64
	formats    map[string]CurrencyFormat
	locations  map[string]Location
	fallback   bool
	onFallback func(code string)
}

func NewCurrencyNormalizer(table FXTable, opts ...CurrencyOption) (*CurrencyNormalizer, error) {
	base := normalizeCode(table.Base)
	if base == "" {
		return nil, fmt.Errorf("%w: empty base currency", ErrUnknownCurrency)
	}

	n := &CurrencyNormalizer{
		base:      base,
		rates:     map[string]float64{base: 1.0},
		formats:   make(map[string]CurrencyFormat, len(table.Formats)),
		locations: make(map[string]Location, len(table.Locations)),
	}
	for code, rate := range table.Rates {
		if rate <= 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
			return nil, fmt.Errorf("invalid rate for %s: %v", code, rate)
		}
		n.rates[normalizeCode(code)] = rate
	}
	if r := n.rates[base]; r != 1.0 {
		return nil, fmt.Errorf("base currency %s must have rate 1.0, got %v", base, r)
	}
	for code, f := range table.Formats {
		n.formats[normalizeCode(code)] = f
	}
	for _, loc := range table.Locations {
		loc.Currency = normalizeCode(loc.Currency)
		if _, ok := n.rates[loc.Currency]; !ok {
			return nil, fmt.Errorf("%w: location %s uses %s", ErrUnknownCurrency, loc.Name, loc.Currency)
		}
		if loc.CostAdjustment < 0 || math.IsNaN(loc.CostAdjustment) || math.IsInf(loc.CostAdjustment, 0) {
			return nil, fmt.Errorf("invalid cost adjustment for %s: %v", loc.Name, loc.CostAdjustment)
		}
		// Cero equivale a no declarado.
		if loc.CostAdjustment == 0 {
			loc.CostAdjustment = 1.0
		}
		n.locations[strings.ToLower(loc.Name)] = loc
	}
	for _, opt := range opts {
		opt(n)
	}
	return n, nil
}

func (n *CurrencyNormalizer) Base() string { return n.base }

// Known indica si el codigo esta registrado en la tabla (sin aplicar fallback).
func (n *CurrencyNormalizer) Known(code string) bool {
	_, ok := n.rates[normalizeCode(code)]
	return ok
}

func (n *CurrencyNormalizer) rate(code string) (float64, error) {
	c := normalizeCode(code)
	if r, ok := n.rates[c]; ok {
		return r, nil
	}
	if n.fallback {
		if n.onFallback != nil {
			n.onFallback(c)
		}
		return 1.0, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCurrency, code)
}

// Convert devuelve el importe sin redondear.
func (n *CurrencyNormalizer) Convert(amount float64, from, to string) (float64, error) {
	rf, err := n.rate(from)
	if err != nil {
		return 0, err
	}
	rt, err := n.rate(to)
	if err != nil {
		return 0, err
	}
	return amount / rf * rt, nil
}

func (n *CurrencyNormalizer) ConvertMoney(m MoneyAmount, to string) (MoneyAmount, error) {
	v, err := n.Convert(m.Value, m.Currency, to)
	if err != nil {
		return MoneyAmount{}, err
	}
	return MoneyAmount{Value: v, Currency: normalizeCode(to)}, nil
}

func (n *CurrencyNormalizer) Location(name string) (Location, error) {
	loc, ok := n.locations[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Location{}, fmt.Errorf("%w: %q", ErrUnknownLocation, name)
	}
	return loc, nil
}

// Locations devuelve las ubicaciones registradas (orden no garantizado).
func (n *CurrencyNormalizer) Locations() []Location {
	out := make([]Location, 0, len(n.locations))
	for _, l := range n.locations {
		out = append(out, l)
	}
	return out
}

// Localize convierte un importe en moneda base a la moneda de la ubicacion y aplica el
// multiplicador de coste despues del FX. Sin redondeo.
func (n *CurrencyNormalizer) Localize(baseAmount float64, location string) (MoneyAmount, error) {
	loc, err := n.Location(location)
	if err != nil {
		return MoneyAmount{}, err
	}
	v, err := n.Convert(baseAmount, n.base, loc.Currency)
	if err != nil {
		return MoneyAmount{}, err
	}
	return MoneyAmount{Value: v * loc.CostAdjustment, Currency: loc.Currency}, nil
}

// RoundDisplay redondea al millar mas cercano. Solo para mostrar.
func RoundDisplay(v float64) float64 {
	return math.Round(v/1000) * 1000
}

// SalaryRange localiza una banda salarial en moneda base y la redondea para mostrar.
func (n *CurrencyNormalizer) SalaryRange(minBase, maxBase float64, location string) (SalaryRange, error) {
	lo, err := n.Localize(minBase, location)
	if err != nil {
		return SalaryRange{}, err
	}
	hi, err := n.Localize(maxBase, location)
	if err != nil {
		return SalaryRange{}, err
	}
	lo.Value = RoundDisplay(lo.Value)
	hi.Value = RoundDisplay(hi.Value)
	return SalaryRange{
		Min:      lo,
		Max:      hi,
		Location: location,
		Display:  n.Format(lo) + " - " + n.Format(hi),
	}, nil
}

// Format produce p.ej. "£60,000" o "720,000 SEK". Codigos sin formato llevan el codigo como sufijo.
func (n *CurrencyNormalizer) Format(m MoneyAmount) string {
	code := normalizeCode(m.Currency)
	p := message.NewPrinter(language.English)
	num := p.Sprintf("%d", int64(math.Round(m.Value)))

	f, ok := n.formats[code]
	if !ok {
		return num + " " + code
	}
	if f.SymbolAfter {
		return num + " " + f.Symbol
	}
	return f.Symbol + num
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
