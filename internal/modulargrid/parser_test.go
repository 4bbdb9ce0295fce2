package modulargrid

import (
	"testing"
)

func TestExtractRackID(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{"standard url", "https://www.modulargrid.net/e/racks/view/123456", "123456", false},
		{"trailing slash", "https://www.modulargrid.net/e/racks/view/98765/", "98765", false},
		{"no scheme", "modulargrid.net/e/racks/view/42", "42", false},
		{"module page", "https://www.modulargrid.net/e/mutable-instruments-plaits", "", true},
		{"empty", "", "", true},
		{"no id", "https://www.modulargrid.net/e/racks/view/", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractRackID(tt.url)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ExtractRackID(%q) expected error, got %q", tt.url, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ExtractRackID(%q) unexpected error: %v", tt.url, err)
			}
			if got != tt.want {
				t.Errorf("ExtractRackID(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}
