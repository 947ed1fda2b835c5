package cli

import "testing"

func TestParseValues(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    []uint64
		wantErr bool
	}{
		{name: "single value", args: []string{"1500000"}, want: []uint64{1500000}},
		{name: "multiple values", args: []string{"0", "1024", "1000000000"}, want: []uint64{0, 1024, 1000000000}},
		{name: "max uint64", args: []string{"18446744073709551615"}, want: []uint64{18446744073709551615}},
		{name: "empty args", args: nil, want: []uint64{}},
		{name: "negative rejected", args: []string{"-1"}, wantErr: true},
		{name: "humanized input rejected", args: []string{"1.5MB"}, wantErr: true},
		{name: "overflow rejected", args: []string{"18446744073709551616"}, wantErr: true},
		{name: "bad value among good ones", args: []string{"10", "x", "20"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseValues(tt.args)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseValues(%v) = %v, want error", tt.args, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseValues(%v) error: %v", tt.args, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ParseValues(%v) has %d values, want %d", tt.args, len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ParseValues(%v)[%d] = %d, want %d", tt.args, i, got[i], tt.want[i])
				}
			}
		})
	}
}
