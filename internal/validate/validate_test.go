package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmail(t *testing.T) {
	tests := []struct {
		name  string
		in    any
		want  string
		valid bool
	}{
		{"valid", "user@example.com", "user@example.com", true},
		{"normalized", "  User@Example.COM ", "user@example.com", true},
		{"dots and hyphens", "first.last@my-host.co", "first.last@my-host.co", true},
		{"missing at", "exampledotcom", "", false},
		{"missing tld", "user@example", "", false},
		{"empty", "", "", false},
		{"nil", nil, "", false},
		{"not a string", 42.0, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Email(tt.in)
			assert.Equal(t, tt.valid, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPassword(t *testing.T) {
	tests := []struct {
		name  string
		in    any
		valid bool
	}{
		{"valid", "Password123!", true},
		{"too short", "Pw1!", false},
		{"no uppercase", "password123!", false},
		{"no lowercase", "PASSWORD123!", false},
		{"no digit", "Password!!!!", false},
		{"no symbol", "Password1234", false},
		{"empty", "", false},
		{"nil", nil, false},
		{"not a string", true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Password(tt.in)
			assert.Equal(t, tt.valid, ok)
			if tt.valid {
				// passwords are returned unchanged
				assert.Equal(t, tt.in, got)
			}
		})
	}
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  main   st ", "Main St"},
		{"main st", "Main St"},
		{"MAIN ST", "Main St"},
		{"river-road", "River-Road"},
		{"stop 1", "Stop 1"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeName(tt.in))
	}
}

func TestNormalizeNameIdempotent(t *testing.T) {
	for _, s := range []string{"Main St", "Stop 1", "River-Road"} {
		assert.Equal(t, s, NormalizeName(NormalizeName(s)))
	}
}

func TestName(t *testing.T) {
	tests := []struct {
		name  string
		in    any
		want  string
		valid bool
	}{
		{"normalized", "  main   st ", "Main St", true},
		{"hyphen ok", "route-66", "Route-66", true},
		{"underscore rejected", "sample_route", "", false},
		{"punctuation rejected", "main st!", "", false},
		{"empty", "", "", false},
		{"nil", nil, "", false},
		{"not a string", 7.0, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Name(tt.in)
			assert.Equal(t, tt.valid, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReportType(t *testing.T) {
	for _, valid := range ReportTypes {
		_, ok := ReportType(valid)
		assert.True(t, ok, valid)
	}

	// matching is exact and case-sensitive
	for _, invalid := range []any{"Delay", "DELAY", "late", "", nil, 1.0} {
		_, ok := ReportType(invalid)
		assert.False(t, ok)
	}
}

func TestUserType(t *testing.T) {
	for _, valid := range []string{"user", "admin"} {
		_, ok := UserType(valid)
		assert.True(t, ok, valid)
	}
	for _, invalid := range []any{"guest", "Admin", "", nil, false} {
		_, ok := UserType(invalid)
		assert.False(t, ok)
	}
}

func TestLimit(t *testing.T) {
	n, ok := Limit("5")
	assert.True(t, ok)
	assert.Equal(t, 5, n)

	for _, invalid := range []string{"abc", "5.5", "0", "-1", ""} {
		_, ok := Limit(invalid)
		assert.False(t, ok, invalid)
	}
}
