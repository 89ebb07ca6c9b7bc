package models

import "testing"

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to MessageStatus
		want     bool
	}{
		{StatusUnread, StatusUnread, true},
		{StatusUnread, StatusRead, true},
		{StatusUnread, StatusResponded, true},
		{StatusRead, StatusResponded, true},
		{StatusRead, StatusUnread, false},
		{StatusResponded, StatusRead, false},
		{StatusResponded, StatusResponded, true},
		{StatusUnread, "archived", false},
		{"", StatusRead, false},
	}
	for _, tc := range cases {
		if got := CanTransition(tc.from, tc.to); got != tc.want {
			t.Errorf("CanTransition(%q, %q) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestCategoryValid(t *testing.T) {
	for _, c := range []Category{CategoryMedical, CategoryResidential, CategoryCommercial} {
		if !c.Valid() {
			t.Errorf("%q should be valid", c)
		}
	}
	for _, c := range []Category{"", "medical", "Industrial"} {
		if c.Valid() {
			t.Errorf("%q should be invalid", c)
		}
	}
}
