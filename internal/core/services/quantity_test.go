package services

import "testing"

func TestResolveQuantity(t *testing.T) {
	tests := []struct {
		name      string
		indicator string
		want      int
		wantErr   bool
	}{
		{name: "plenty marker", indicator: ">10", want: 100},
		{name: "last unit is held back", indicator: "1", want: 0},
		{name: "exact count", indicator: "7", want: 7},
		{name: "zero", indicator: "0", want: 0},
		{name: "padded count", indicator: " 3 ", want: 3},
		{name: "garbage", indicator: "abc", wantErr: true},
		{name: "empty", indicator: "", wantErr: true},
		{name: "float is not a count", indicator: "2.5", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveQuantity(tt.indicator)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ResolveQuantity(%q) = %d, expected error", tt.indicator, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolveQuantity(%q): unexpected error: %v", tt.indicator, err)
			}
			if got != tt.want {
				t.Errorf("ResolveQuantity(%q) = %d, want %d", tt.indicator, got, tt.want)
			}
		})
	}
}
