package version

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"312.1", "312.1"},
		{"312.0", "312"},
		{"312.1.0", "312.1"},
		{"312.0.0", "312"},
		{"312", "312"},
		{"0", "0"},
	}
	for _, tc := range tests {
		if got := Normalize(tc.in); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestVersionDefaults(t *testing.T) {
	v := Version()
	if v.Version == "" {
		t.Error("Version must never be empty, even without build flags")
	}
}
