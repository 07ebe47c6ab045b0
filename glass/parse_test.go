package glass

import (
	"errors"
	"fmt"
	"testing"
)

func TestParseVariantSelection(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"6A", "*glass.Mono"},
		{"16.89", "*glass.Mono"},
		{"6A&0.76PVB&6A", "*glass.Laminated"},
		{"LAM16.89", "*glass.Laminated"},
		{"6A_12AIR_6A", "*glass.Insulated"},
		{"6A_12AIR_6A&0.76PVB&6A", "*glass.Insulated"},
		{"#20(6A)", "*glass.Mono"},
		{"#20x(6A_12AIR_6A)", "*glass.Insulated"},
		{"6A-W3000H4000SUPPORT4", "*glass.Mono"},
	}
	for _, tt := range tests {
		b, err := Parse(tt.in)
		if err != nil {
			t.Errorf("Parse(%q): %v", tt.in, err)
			continue
		}
		if got := fmt.Sprintf("%T", b); got != tt.want {
			t.Errorf("Parse(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestParsePane(t *testing.T) {
	b, err := Parse("6A")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	m := b.(*Mono)
	if m.Heat() != HeatAnnealed {
		t.Errorf("Heat() = %q, want %q", m.Heat(), HeatAnnealed)
	}
	th, ok := m.Thickness()
	if !ok || th != 6 {
		t.Errorf("Thickness() = %v, %v, want 6, true", th, ok)
	}
	if _, ok := m.Width(); ok {
		t.Error("Width() set on bare pane")
	}
	if _, ok := m.IGDBCode(); ok {
		t.Error("IGDBCode() set on bare pane")
	}
}

func TestParsePaneHeatTreatments(t *testing.T) {
	tests := []struct {
		in        string
		heat      HeatTreatment
		thickness float64
	}{
		{"4A", HeatAnnealed, 4},
		{"8HS", HeatStrengthened, 8},
		{"12T", HeatToughened, 12},
		{"10TS", HeatSoaked, 10},
		{"6", HeatNone, 6},
		{"6.5A", HeatAnnealed, 6.5},
	}
	for _, tt := range tests {
		m, err := ParseMono(tt.in)
		if err != nil {
			t.Errorf("ParseMono(%q): %v", tt.in, err)
			continue
		}
		if m.Heat() != tt.heat {
			t.Errorf("ParseMono(%q).Heat() = %q, want %q", tt.in, m.Heat(), tt.heat)
		}
		if th, _ := m.Thickness(); th != tt.thickness {
			t.Errorf("ParseMono(%q).Thickness() = %v, want %v", tt.in, th, tt.thickness)
		}
	}
}

func TestParseLaminate(t *testing.T) {
	b, err := Parse("6A&0.76PVB&6A")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	lam := b.(*Laminated)
	plies := lam.Plies()
	if len(plies) != 2 {
		t.Fatalf("len(Plies()) = %d, want 2", len(plies))
	}
	ils := lam.Interlayers()
	if len(ils) != 1 {
		t.Fatalf("len(Interlayers()) = %d, want 1", len(ils))
	}
	if ils[0].Material() != PVB {
		t.Errorf("Material() = %q, want %q", ils[0].Material(), PVB)
	}
	if th, _ := ils[0].Thickness(); th != 0.76 {
		t.Errorf("interlayer Thickness() = %v, want 0.76", th)
	}
	if len(lam.Layers()) != 3 {
		t.Errorf("len(Layers()) = %d, want 3", len(lam.Layers()))
	}
}

func TestParseLegacyLamTag(t *testing.T) {
	b, err := Parse("LAM16.89")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	lam, ok := b.(*Laminated)
	if !ok {
		t.Fatalf("Parse(LAM16.89) = %T, want *Laminated", b)
	}
	plies := lam.Plies()
	if len(plies) != 1 {
		t.Fatalf("len(Plies()) = %d, want 1", len(plies))
	}
	if th, _ := plies[0].Thickness(); th != 16.89 {
		t.Errorf("ply Thickness() = %v, want 16.89", th)
	}
	if plies[0].Heat() != HeatNone {
		t.Errorf("ply Heat() = %q, want none", plies[0].Heat())
	}
}

func TestParseInsulatedUnit(t *testing.T) {
	b, err := Parse("6A_12AIR_6A&0.76PVB&6A")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	unit := b.(*Insulated)
	lites := unit.Lites()
	if len(lites) != 2 {
		t.Fatalf("len(Lites()) = %d, want 2", len(lites))
	}
	if _, ok := lites[0].(*Mono); !ok {
		t.Errorf("lite 0 = %T, want *Mono", lites[0])
	}
	if _, ok := lites[1].(*Laminated); !ok {
		t.Errorf("lite 1 = %T, want *Laminated", lites[1])
	}
	gaps := unit.Gaps()
	if len(gaps) != 1 {
		t.Fatalf("len(Gaps()) = %d, want 1", len(gaps))
	}
	if gaps[0].Gas() != Air {
		t.Errorf("Gas() = %q, want %q", gaps[0].Gas(), Air)
	}
	if th, _ := gaps[0].Thickness(); th != 12 {
		t.Errorf("gap Thickness() = %v, want 12", th)
	}
}

func TestParseGasDecimal(t *testing.T) {
	unit, err := ParseInsulated("4_13.2AR_4")
	if err != nil {
		t.Fatalf("ParseInsulated: %v", err)
	}
	gaps := unit.Gaps()
	if len(gaps) != 1 {
		t.Fatalf("len(Gaps()) = %d, want 1", len(gaps))
	}
	if gaps[0].Gas() != Argon {
		t.Errorf("Gas() = %q, want %q", gaps[0].Gas(), Argon)
	}
	if th, _ := gaps[0].Thickness(); th != 13.2 {
		t.Errorf("gap Thickness() = %v, want 13.2", th)
	}
}

func TestParseMetadata(t *testing.T) {
	b, err := Parse("6A-W3000H4000SUPPORT4")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if w, ok := b.Width(); !ok || w != 3000 {
		t.Errorf("Width() = %v, %v, want 3000, true", w, ok)
	}
	if h, ok := b.Height(); !ok || h != 4000 {
		t.Errorf("Height() = %v, %v, want 4000, true", h, ok)
	}
	if s, ok := b.Support(); !ok || s != SupportFourEdge {
		t.Errorf("Support() = %v, %v, want 4, true", s, ok)
	}
	ar, err := b.AspectRatio()
	if err != nil {
		t.Fatalf("AspectRatio: %v", err)
	}
	if want := 4000.0 / 3000.0; ar != want {
		t.Errorf("AspectRatio() = %v, want %v", ar, want)
	}
}

func TestParseMetadataMarkerOrder(t *testing.T) {
	b, err := Parse("6A-SUPPORT2H1500W750")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if w, _ := b.Width(); w != 750 {
		t.Errorf("Width() = %v, want 750", w)
	}
	if h, _ := b.Height(); h != 1500 {
		t.Errorf("Height() = %v, want 1500", h)
	}
	if s, _ := b.Support(); s != SupportTwoEdge {
		t.Errorf("Support() = %v, want 2", s)
	}
}

func TestParseMetadataLastMarkerWins(t *testing.T) {
	b, err := Parse("6A-W100W200H300H400")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if w, _ := b.Width(); w != 200 {
		t.Errorf("Width() = %v, want 200", w)
	}
	if h, _ := b.Height(); h != 400 {
		t.Errorf("Height() = %v, want 400", h)
	}
}

// The support condition counts supported edges. A whole-valued decimal
// canonicalizes to its integer form; a fractional one is an error, never a
// silent truncation.
func TestParseMetadataSupportWholeNumber(t *testing.T) {
	b, err := Parse("6A-W1000SUPPORT2.0")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s, ok := b.Support(); !ok || s != SupportTwoEdge {
		t.Errorf("Support() = %v, %v, want 2, true", s, ok)
	}
	if got := b.GStr(); got != "6A-W1000SUPPORT2" {
		t.Errorf("GStr() = %q, want %q", got, "6A-W1000SUPPORT2")
	}

	if _, err := Parse("6A-W1000SUPPORT2.5"); !errors.Is(err, ErrMalformed) {
		t.Errorf("Parse with fractional support = %v, want ErrMalformed", err)
	}
}

func TestParseMetadataCascades(t *testing.T) {
	unit, err := ParseInsulated("6A_12AIR_6A&0.76PVB&6A-W3000H4000")
	if err != nil {
		t.Fatalf("ParseInsulated: %v", err)
	}
	for i, lite := range unit.Lites() {
		if w, ok := lite.Width(); !ok || w != 3000 {
			t.Errorf("lite %d Width() = %v, %v, want 3000, true", i, w, ok)
		}
	}
	lam := unit.Lites()[1].(*Laminated)
	for i, ply := range lam.Plies() {
		if h, ok := ply.Height(); !ok || h != 4000 {
			t.Errorf("ply %d Height() = %v, %v, want 4000, true", i, h, ok)
		}
	}
}

func TestParseIdentifier(t *testing.T) {
	b, err := Parse("#20(6A)")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	m := b.(*Mono)
	code, ok := m.IGDBCode()
	if !ok || code != "20" {
		t.Errorf("IGDBCode() = %q, %v, want \"20\", true", code, ok)
	}
	if m.IGDBFlipped() {
		t.Error("IGDBFlipped() = true, want false")
	}
	if th, _ := m.Thickness(); th != 6 {
		t.Errorf("Thickness() = %v, want 6", th)
	}
}

func TestParseIdentifierFlipped(t *testing.T) {
	b, err := Parse("#20x(6A_12AIR_6A)")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	unit := b.(*Insulated)
	code, ok := unit.IGDBCode()
	if !ok || code != "20" {
		t.Errorf("IGDBCode() = %q, %v, want \"20\", true", code, ok)
	}
	if !unit.IGDBFlipped() {
		t.Error("IGDBFlipped() = false, want true")
	}
	if len(unit.Lites()) != 2 {
		t.Errorf("len(Lites()) = %d, want 2", len(unit.Lites()))
	}
}

func TestParseIdentifierOnLite(t *testing.T) {
	unit, err := ParseInsulated("#20(6A)_12AIR_6A")
	if err != nil {
		t.Fatalf("ParseInsulated: %v", err)
	}
	if _, ok := unit.IGDBCode(); ok {
		t.Error("IGDBCode() set on unit, want only on lite")
	}
	code, ok := unit.Lites()[0].IGDBCode()
	if !ok || code != "20" {
		t.Errorf("lite 0 IGDBCode() = %q, %v, want \"20\", true", code, ok)
	}
}

// A unit whose first and last lites carry their own wrappers starts with
// "#" and ends with ")" without being wrapped itself. The wrapper belongs
// to the lites, not the unit.
func TestParseWrappedLitesAtBothEnds(t *testing.T) {
	in := "#20(6A)_12AIR_#30(6A)"
	unit, err := ParseInsulated(in)
	if err != nil {
		t.Fatalf("ParseInsulated: %v", err)
	}
	if _, ok := unit.IGDBCode(); ok {
		t.Error("IGDBCode() set on unit, want only on lites")
	}
	lites := unit.Lites()
	for i, want := range []string{"20", "30"} {
		code, ok := lites[i].IGDBCode()
		if !ok || code != want {
			t.Errorf("lite %d IGDBCode() = %q, %v, want %q, true", i, code, ok, want)
		}
	}
	if got := unit.GStr(); got != in {
		t.Errorf("GStr() = %q, want %q", got, in)
	}
}

func TestParseWhitespace(t *testing.T) {
	b, err := Parse("  6A&0.76PVB&6A  ")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := b.GStr(); got != "6A&0.76PVB&6A" {
		t.Errorf("GStr() = %q, want %q", got, "6A&0.76PVB&6A")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{"", ErrMissingThickness},
		{"ABC", ErrMissingThickness},
		{"6A&PVB&6A", ErrMissingThickness},
		{"6A_AIR_6A", ErrMissingThickness},
		{"6Q", ErrBadDescriptor},
		{"6A&0.99XYZ&6A", ErrBadDescriptor},
		{"6A&0.76&6A", ErrBadDescriptor},
		{"6A_12NEON_6A", ErrBadDescriptor},
		{"6A&&6A", ErrMalformed},
		{"_6A", ErrMalformed},
		{"6A_", ErrMalformed},
		{"&6A", ErrMalformed},
		{"6A&0.76PVB", ErrMalformed},
		{"6A_12AIR", ErrMalformed},
		{"#20(6A", ErrMalformed},
		{"#20(6A))", ErrMalformed},
		{"#(6A)", ErrMalformed},
		{"#x(6A)", ErrMalformed},
		{"#20(6A)(7A)", ErrMalformed},
		{"6A_12AIR_#20(6A", ErrMalformed},
		{"6A-W3000SUPPORT2.5", ErrMalformed},
		{"6A_12AIR_6A-SUPPORT1.5", ErrMalformed},
	}
	for _, tt := range tests {
		_, err := Parse(tt.in)
		if err == nil {
			t.Errorf("Parse(%q): no error, want %v", tt.in, tt.want)
			continue
		}
		if !errors.Is(err, tt.want) {
			t.Errorf("Parse(%q) = %v, want %v", tt.in, err, tt.want)
		}
	}
}
