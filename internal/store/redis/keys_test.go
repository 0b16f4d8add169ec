package redis

import "testing"

func TestKeys(t *testing.T) {
	if got := CatalogKey(); got != "showreel:catalog" {
		t.Errorf("CatalogKey() = %q", got)
	}
	if got := PlaysKey("3dh-Vm48KM4"); got != "showreel:plays:3dh-Vm48KM4" {
		t.Errorf("PlaysKey() = %q", got)
	}
	if got := AllPlaysKey(); got != "showreel:plays:all" {
		t.Errorf("AllPlaysKey() = %q", got)
	}
}

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		want    string
		wantErr bool
	}{
		{"valid key", "showreel:plays:3dh-Vm48KM4", "3dh-Vm48KM4", false},
		{"prefix only", "showreel:plays:", "", true},
		{"set key", "showreel:plays:all", "", true},
		{"foreign key", "bookmarks:service:abc", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractVideoID(tt.key)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ExtractVideoID() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ExtractVideoID() = %q, want %q", got, tt.want)
			}
		})
	}
}
