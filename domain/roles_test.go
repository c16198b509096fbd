package domain

import (
	"errors"
	"testing"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		expected      Role
		expectedError error
	}{
		{name: "lower case user", input: "user", expected: RoleUser},
		{name: "upper case admin", input: "ADMIN", expected: RoleAdmin},
		{name: "mixed case super admin", input: "Super_Admin", expected: RoleSuperAdmin},
		{name: "surrounding whitespace", input: "  admin  ", expected: RoleAdmin},
		{name: "unknown role", input: "root", expectedError: ErrUnknownRole},
		{name: "empty string", input: "", expectedError: ErrUnknownRole},
		{name: "casbin prefixed form is not a role", input: "role_admin", expectedError: ErrUnknownRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRole(tt.input)
			if tt.expectedError != nil {
				if !errors.Is(err, tt.expectedError) {
					t.Fatalf("expected error %v, got %v", tt.expectedError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestRole_Permits(t *testing.T) {
	tests := []struct {
		name     string
		holder   Role
		required Role
		expected bool
	}{
		{name: "user permits user", holder: RoleUser, required: RoleUser, expected: true},
		{name: "user denied admin", holder: RoleUser, required: RoleAdmin, expected: false},
		{name: "user denied super admin", holder: RoleUser, required: RoleSuperAdmin, expected: false},
		{name: "admin permits user", holder: RoleAdmin, required: RoleUser, expected: true},
		{name: "admin permits admin", holder: RoleAdmin, required: RoleAdmin, expected: true},
		{name: "admin denied super admin", holder: RoleAdmin, required: RoleSuperAdmin, expected: false},
		{name: "super admin permits everything", holder: RoleSuperAdmin, required: RoleAdmin, expected: true},
		{name: "unknown holder denies", holder: Role("root"), required: RoleUser, expected: false},
		{name: "unknown requirement denies", holder: RoleSuperAdmin, required: Role("owner"), expected: false},
		{name: "non canonical casing denies", holder: Role("Admin"), required: RoleUser, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.holder.Permits(tt.required); got != tt.expected {
				t.Errorf("Permits(%q, %q) = %v, expected %v", tt.holder, tt.required, got, tt.expected)
			}
		})
	}
}

func TestRole_Valid(t *testing.T) {
	for _, r := range []Role{RoleUser, RoleAdmin, RoleSuperAdmin} {
		if !r.Valid() {
			t.Errorf("expected %q to be valid", r)
		}
	}
	if Role("moderator").Valid() {
		t.Error("expected unknown role to be invalid")
	}
}
