package mathutil

import "testing"

func TestMean(t *testing.T) {
	tests := []struct {
		name string
		xs   []float64
		want float64
	}{
		{"empty", nil, 0},
		{"single", []float64{0.4}, 0.4},
		{"several", []float64{1, 2, 3, 4}, 2.5},
		{"negative", []float64{-1, 1}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Mean(tt.xs); got != tt.want {
				t.Errorf("Mean(%v) = %v, want %v", tt.xs, got, tt.want)
			}
		})
	}
}

func TestNewMat(t *testing.T) {
	m := NewMat(3, 4)
	if len(m) != 3 {
		t.Fatalf("rows = %d, want 3", len(m))
	}
	for i := range m {
		if len(m[i]) != 4 {
			t.Fatalf("row %d cols = %d, want 4", i, len(m[i]))
		}
	}
	m[1][2] = 7
	if m[1][2] != 7 || m[0][3] != 0 {
		t.Error("element write leaked or failed")
	}
}

func TestFillMat(t *testing.T) {
	m := NewMat(2, 2)
	FillMat(m, 1.5)
	for i := range m {
		for j := range m[i] {
			if m[i][j] != 1.5 {
				t.Fatalf("m[%d][%d] = %v, want 1.5", i, j, m[i][j])
			}
		}
	}
}
