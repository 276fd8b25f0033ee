package model

import "testing"

func TestRoleAtLeast(t *testing.T) {
	tests := []struct {
		role     string
		minimum  string
		expected bool
	}{
		{RoleAdmin, RoleAdmin, true},
		{RoleAdmin, RoleUser, true},
		{RoleUser, RoleAdmin, false},
		{RoleUser, RoleUser, true},
		// Unknown roles fail-closed.
		{"unknown", RoleUser, false},
		{RoleAdmin, "unknown", false},
		{"", "", false},
		{"", RoleUser, false},
	}

	for _, tt := range tests {
		got := RoleAtLeast(tt.role, tt.minimum)
		if got != tt.expected {
			t.Errorf("RoleAtLeast(%q, %q) = %v, want %v", tt.role, tt.minimum, got, tt.expected)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		password string
		wantErr  bool
	}{
		{"", true},
		{"short", true},
		{"1234567", true},
		{"12345678", false},
		{"a-valid-password", false},
	}

	for _, tt := range tests {
		err := ValidatePassword(tt.password)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidatePassword(%q) error = %v, wantErr %v", tt.password, err, tt.wantErr)
		}
	}
}

func TestUserPrincipalRoundTrip(t *testing.T) {
	p := UserPrincipal(42)
	if p != "user:42" {
		t.Fatalf("expected user:42, got %q", p)
	}

	id, err := p.UserID()
	if err != nil {
		t.Fatalf("UserID: %v", err)
	}
	if id != 42 {
		t.Errorf("expected id 42, got %d", id)
	}

	for _, bad := range []Principal{"", "42", "user:", "user:abc", "group:1"} {
		if _, err := bad.UserID(); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

func TestIdentityIsAdmin(t *testing.T) {
	if !(Identity{Role: RoleAdmin}).IsAdmin() {
		t.Error("expected admin identity to be admin")
	}
	if (Identity{Role: RoleUser}).IsAdmin() {
		t.Error("expected user identity not to be admin")
	}
	if (Identity{}).IsAdmin() {
		t.Error("expected empty identity not to be admin")
	}
}
