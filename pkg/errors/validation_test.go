package errors

import (
	"strings"
	"testing"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "kitchen", false},
		{"valid with dash", "dock-2", false},
		{"valid grid cell", "r3c7", false},
		{"valid inner space", "charging station", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 300), true},
		{"null byte", "foo\x00bar", true},
		{"control char", "foo\x01bar", true},
		{"newline", "foo\nbar", true},
		{"leading space", " dock", true},
		{"trailing tab", "dock\t", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName("node", tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("ValidateName(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidInput)
			}
		})
	}
}

func TestValidatePropertyAssignment(t *testing.T) {
	tests := []struct {
		input     string
		wantKey   string
		wantValue string
		wantErr   bool
	}{
		{"zone=kitchen", "zone", "kitchen", false},
		{"dock=", "dock", "", false},
		{"speed=0.5=fast", "speed", "0.5=fast", false},
		{"nokey", "", "", true},
		{"=value", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			key, value, err := ValidatePropertyAssignment(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidatePropertyAssignment(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if key != tt.wantKey || value != tt.wantValue {
				t.Errorf("ValidatePropertyAssignment(%q) = (%q, %q), want (%q, %q)",
					tt.input, key, value, tt.wantKey, tt.wantValue)
			}
		})
	}
}
