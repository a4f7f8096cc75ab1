package units

import (
	"math"
	"testing"
)

func TestConversions(t *testing.T) {
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"mm to inches", MMToInches(25.4), 1.0},
		{"inches to mm", InchesToMM(20), 508.0},
		{"mm to cm", MMToCM(500), 50.0},
		{"cm to mm", CMToMM(50), 500.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if math.Abs(tt.got-tt.want) > 1e-9 {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestConversionRoundTrip(t *testing.T) {
	for _, mm := range []float64{0, 18, 25.4, 600, 4800} {
		if got := InchesToMM(MMToInches(mm)); math.Abs(got-mm) > 1e-9 {
			t.Errorf("inch round trip of %v = %v", mm, got)
		}
		if got := CMToMM(MMToCM(mm)); math.Abs(got-mm) > 1e-9 {
			t.Errorf("cm round trip of %v = %v", mm, got)
		}
	}
}

func TestFormatDimension(t *testing.T) {
	tests := []struct {
		name      string
		mm        float64
		metric    bool
		precision int
		want      string
	}{
		{"metric one decimal", 600, true, 1, "600.0 mm"},
		{"metric zero decimals", 18.4, true, 0, "18 mm"},
		{"imperial", 508, false, 1, `20.0"`},
		{"imperial two decimals", 600, false, 2, `23.62"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDimension(tt.mm, tt.metric, tt.precision); got != tt.want {
				t.Errorf("FormatDimension(%v, %v, %d) = %q, want %q",
					tt.mm, tt.metric, tt.precision, got, tt.want)
			}
		})
	}
}

func TestParseDimension(t *testing.T) {
	tests := []struct {
		input  string
		wantMM float64
		wantOK bool
	}{
		{"500", 500.0, true},
		{"500mm", 500.0, true},
		{"50cm", 500.0, true},
		{`20"`, 508.0, true},
		{"20in", 508.0, true},
		{"  750 MM ", 750.0, true},
		{"12.5cm", 125.0, true},
		{"abc", 0.0, false},
		{"", 0.0, false},
		{"mm", 0.0, false},
		{`x"`, 0.0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseDimension(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ParseDimension(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if math.Abs(got-tt.wantMM) > 1e-9 {
				t.Errorf("ParseDimension(%q) = %v, want %v", tt.input, got, tt.wantMM)
			}
		})
	}
}
