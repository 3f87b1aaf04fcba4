package utils

import "testing"

func TestSanitizeFilename(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"דנה כהן", "דנה כהן"},
		{"  דנה כהן  ", "דנה כהן"},
		{`דנה/כהן`, "דנה_כהן"},
		{`a\b:c*d?e"f<g>h|i`, "a_b_c_d_e_f_g_h_i"},
		{"name\x00\x1f\x7f", "name"},
		{"..  ", "document"},
		{"", "document"},
		{"report.pdf.", "report.pdf"},
	}
	for _, tc := range cases {
		if got := SanitizeFilename(tc.in); got != tc.want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestExtensionFor(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"image/png", ".png"},
		{"image/jpeg", ".jpg"},
		{"application/pdf", ".pdf"},
		{"text/plain", ""},
	}
	for _, tc := range cases {
		if got := ExtensionFor(tc.in); got != tc.want {
			t.Errorf("ExtensionFor(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
