package model

import "testing"

func TestNormalizeRole(t *testing.T) {
	tests := []struct {
		input string
		want  Role
		ok    bool
	}{
		{"admin", RoleAdmin, true},
		{"Admin", RoleAdmin, true},
		{"  receptionist  ", RoleReceptionist, true},
		{"department_staff", RoleDepartmentStaff, true},
		{"Department Staff", RoleDepartmentStaff, true},
		{"department-staff", RoleDepartmentStaff, true},
		{"superuser", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := NormalizeRole(tt.input)
		if ok != tt.ok || got != tt.want {
			t.Errorf("NormalizeRole(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestNormalizeStatus(t *testing.T) {
	tests := []struct {
		input string
		want  Status
		ok    bool
	}{
		{"pending", StatusPending, true},
		{"Pending", StatusPending, true},
		{"In Progress", StatusInProgress, true},
		{"in-progress", StatusInProgress, true},
		{"  completed ", StatusCompleted, true},
		{"rejected", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := NormalizeStatus(tt.input)
		if ok != tt.ok || got != tt.want {
			t.Errorf("NormalizeStatus(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestDeriveDepartment(t *testing.T) {
	tests := []struct {
		purpose Purpose
		want    Department
	}{
		{PurposeMedical, DepartmentMedical},
		{PurposeEducation, DepartmentEducation},
		{PurposeFood, DepartmentFood},
		{PurposeClothing, DepartmentClothing},
		{PurposeFinancial, DepartmentFinancial},
		{PurposeOther, DepartmentGeneral},
		// 全函数：未知目的不报错，落到 General
		{Purpose("Housing Support"), DepartmentGeneral},
		{Purpose(""), DepartmentGeneral},
	}

	for _, tt := range tests {
		if got := DeriveDepartment(tt.purpose); got != tt.want {
			t.Errorf("DeriveDepartment(%q) = %q, want %q", tt.purpose, got, tt.want)
		}
	}
}

func TestValidDepartment(t *testing.T) {
	for _, d := range []string{"Medical", "Education", "Food", "Clothing", "Financial", "General"} {
		if !ValidDepartment(d) {
			t.Errorf("ValidDepartment(%q) 应为 true", d)
		}
	}
	for _, d := range []string{"medical", "Housing", ""} {
		if ValidDepartment(d) {
			t.Errorf("ValidDepartment(%q) 应为 false", d)
		}
	}
}
