package validators

import "testing"

func TestIsEmailShapeValid(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"ana@clinic.test", true},
		{"ana.souza+tag@clinic.test", true},
		{"ana", false},
		{"Ana <ana@clinic.test>", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsEmailShapeValid(tt.email); got != tt.want {
			t.Errorf("IsEmailShapeValid(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		raw  string
		want string
		ok   bool
	}{
		{"+55 (11) 98765-4321", "5511987654321", true},
		{"555-1234", "5551234", false},
		{"12345678", "12345678", true},
		{"12a45678", "", false},
		{"1+2345678", "", false},
	}

	for _, tt := range tests {
		got, ok := NormalizePhone(tt.raw)
		if ok != tt.ok || (tt.ok && got != tt.want) {
			t.Errorf("NormalizePhone(%q) = %q, %v; want %q, %v", tt.raw, got, ok, tt.want, tt.ok)
		}
	}
}

func TestIsEmailDomainValid_Malformed(t *testing.T) {
	if IsEmailDomainValid("no-at-sign") {
		t.Error("expected address without @ to fail")
	}
	if IsEmailDomainValid("trailing@") {
		t.Error("expected empty domain to fail")
	}
}
