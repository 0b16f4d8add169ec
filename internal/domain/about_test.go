package domain

import "testing"

func TestContactsLinks(t *testing.T) {
	tests := []struct {
		name      string
		contacts  Contacts
		wantEmail string
		wantX     string
		wantLabel string
	}{
		{
			name:      "bare handle",
			contacts:  Contacts{Email: "lnkochev2@gmail.com", XHandle: "thecilium"},
			wantEmail: "mailto:lnkochev2@gmail.com",
			wantX:     "https://x.com/thecilium",
			wantLabel: "@thecilium",
		},
		{
			name:      "handle with at sign",
			contacts:  Contacts{Email: "a@b.c", XHandle: "@thecilium"},
			wantEmail: "mailto:a@b.c",
			wantX:     "https://x.com/thecilium",
			wantLabel: "@thecilium",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.contacts.EmailHref(); got != tt.wantEmail {
				t.Errorf("EmailHref() = %q, want %q", got, tt.wantEmail)
			}
			if got := tt.contacts.XURL(); got != tt.wantX {
				t.Errorf("XURL() = %q, want %q", got, tt.wantX)
			}
			if got := tt.contacts.XLabel(); got != tt.wantLabel {
				t.Errorf("XLabel() = %q, want %q", got, tt.wantLabel)
			}
		})
	}
}
