package bytesize

import "testing"

func TestParseSystem(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    System
		wantErr bool
	}{
		{name: "binary", in: "binary", want: Binary},
		{name: "iec alias", in: "iec", want: Binary},
		{name: "base alias 1024", in: "1024", want: Binary},
		{name: "decimal", in: "decimal", want: Decimal},
		{name: "si alias", in: "SI", want: Decimal},
		{name: "mixed case", in: "Binary", want: Binary},
		{name: "padded", in: " decimal ", want: Decimal},
		{name: "unknown", in: "ternary", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSystem(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseSystem(%q) = %v, want error", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSystem(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseSystem(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseMagnitude(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Magnitude
		wantErr bool
	}{
		{name: "kilo by name", in: "kilo", want: Kilo},
		{name: "mega by prefix", in: "M", want: Mega},
		{name: "giga lowercase prefix", in: "g", want: Giga},
		{name: "tera", in: "tera", want: Tera},
		{name: "peta", in: "Peta", want: Peta},
		{name: "exa", in: "exa", want: Exa},
		{name: "unknown name", in: "zetta", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMagnitude(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseMagnitude(%q) = %v, want error", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMagnitude(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseMagnitude(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMagnitudes(t *testing.T) {
	ms := Magnitudes()
	if len(ms) != int(MaxMagnitude) {
		t.Fatalf("Magnitudes() has %d entries, want %d", len(ms), MaxMagnitude)
	}
	for i, m := range ms {
		if int(m) != i+1 {
			t.Errorf("Magnitudes()[%d] = %v, want rank %d", i, m, i+1)
		}
	}
}

func TestStringers(t *testing.T) {
	if got := Binary.String(); got != "binary" {
		t.Errorf("Binary.String() = %q, want %q", got, "binary")
	}
	if got := Decimal.String(); got != "decimal" {
		t.Errorf("Decimal.String() = %q, want %q", got, "decimal")
	}
	if got := Kilo.Prefix(); got != "K" {
		t.Errorf("Kilo.Prefix() = %q, want %q", got, "K")
	}
	if got := Exa.String(); got != "exa" {
		t.Errorf("Exa.String() = %q, want %q", got, "exa")
	}
	if got := Magnitude(0).String(); got != "Magnitude(0)" {
		t.Errorf("Magnitude(0).String() = %q, want %q", got, "Magnitude(0)")
	}
}
