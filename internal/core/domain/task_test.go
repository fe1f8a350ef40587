package domain

import "testing"

func TestTaskAccessibleBy(t *testing.T) {
	task := &Task{ID: "t1", OwnerID: "user-1"}

	cases := []struct {
		name       string
		identityID string
		role       Role
		want       bool
	}{
		{"owner", "user-1", RoleUser, true},
		{"other user", "user-2", RoleUser, false},
		{"admin non-owner", "admin-1", RoleAdmin, true},
		{"admin owner", "user-1", RoleAdmin, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := task.AccessibleBy(tc.identityID, tc.role); got != tc.want {
				t.Fatalf("AccessibleBy(%q, %q) = %v, want %v", tc.identityID, tc.role, got, tc.want)
			}
		})
	}
}

func TestTaskStatusValid(t *testing.T) {
	for _, s := range []TaskStatus{TaskPending, TaskInProgress, TaskCompleted} {
		if !s.Valid() {
			t.Fatalf("%q should be valid", s)
		}
	}
	for _, s := range []TaskStatus{"", "done", "Pending"} {
		if s.Valid() {
			t.Fatalf("%q should be invalid", s)
		}
	}
}
