package validator

import "testing"

func TestIsEmpty(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"empty string", "", true},
		{"spaces only", "   ", true},
		{"tabs and newlines", "\t\n", true},
		{"non-empty", "abc", false},
		{"padded value", "  abc  ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsEmpty(tt.input); got != tt.expected {
				t.Errorf("IsEmpty(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestIsNumeric(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"digits", "123456", true},
		{"empty", "", false},
		{"letters", "12a34", false},
		{"decimal point", "12.34", false},
		{"negative sign", "-123", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNumeric(tt.input); got != tt.expected {
				t.Errorf("IsNumeric(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestIsValidDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"valid date", "2025-06-15", true},
		{"invalid month", "2025-13-01", false},
		{"wrong format", "15/06/2025", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, got := IsValidDate(tt.input); got != tt.expected {
				t.Errorf("IsValidDate(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestOnlyDigits(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"masked cpf", "529.982.247-25", "52998224725"},
		{"masked cnpj", "11.222.333/0001-81", "11222333000181"},
		{"already bare", "12345", "12345"},
		{"no digits", "abc-", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OnlyDigits(tt.input); got != tt.expected {
				t.Errorf("OnlyDigits(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestIsValidCPF(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"valid bare", "52998224725", true},
		{"valid masked", "529.982.247-25", true},
		{"another valid", "11144477735", true},
		{"bad check digit", "52998224726", false},
		{"all same digits", "11111111111", false},
		{"too short", "5299822472", false},
		{"too long", "529982247251", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidCPF(tt.input); got != tt.expected {
				t.Errorf("IsValidCPF(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestIsValidCNPJ(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"valid bare", "11222333000181", true},
		{"valid masked", "11.222.333/0001-81", true},
		{"bad check digit", "11222333000182", false},
		{"all same digits", "11111111111111", false},
		{"too short", "1122233300018", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidCNPJ(tt.input); got != tt.expected {
				t.Errorf("IsValidCNPJ(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestIsInSlice(t *testing.T) {
	modalities := []string{"CLT", "MEI", "ESTAGIARIO"}

	if !IsInSlice("MEI", modalities) {
		t.Error("IsInSlice(MEI) = false, want true")
	}
	if IsInSlice("PJ", modalities) {
		t.Error("IsInSlice(PJ) = true, want false")
	}
	if IsInSlice("clt", modalities) {
		t.Error("IsInSlice is case sensitive; clt should not match")
	}
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "month", Message: "must be between 1 and 12"},
		{Field: "year", Message: "is required"},
	}

	expected := "month: must be between 1 and 12; year: is required"
	if got := errs.Error(); got != expected {
		t.Errorf("Error() = %q, want %q", got, expected)
	}

	m := errs.ToMap()
	if len(m) != 2 || m["month"] == "" || m["year"] == "" {
		t.Errorf("ToMap() = %v, want both fields present", m)
	}
}
