// asterix/category_test.go
package asterix

import (
	"fmt"
	"testing"
)

func TestCategoryString(t *testing.T) {
	testCases := []struct {
		cat      Category
		expected string
	}{
		{Cat021, "CAT021"},
		{Cat048, "CAT048"},
		{Cat062, "CAT062"},
		{Cat063, "CAT063"},
		{Category(1), "CAT001"},
		{Category(255), "CAT255"},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("Category%d", tc.cat), func(t *testing.T) {
			if result := tc.cat.String(); result != tc.expected {
				t.Errorf("String() = %q, want %q", result, tc.expected)
			}
		})
	}
}

func TestCategoryIsValid(t *testing.T) {
	testCases := []struct {
		cat      Category
		expected bool
	}{
		{Cat021, true},
		{Cat048, true},
		{Category(1), true},
		{Category(255), true},
		{Category(0), false},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("Category%d", tc.cat), func(t *testing.T) {
			if result := tc.cat.IsValid(); result != tc.expected {
				t.Errorf("IsValid() = %v, want %v", result, tc.expected)
			}
		})
	}
}

func TestCategoryIsBlockable(t *testing.T) {
	testCases := []struct {
		cat      Category
		expected bool
	}{
		{Cat021, true},
		{Cat048, true},
		{Cat062, true},
		{Cat063, true},
		{Cat065, true},
		{Cat247, true},
		{Cat252, false},
		{Category(200), false},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("Category%d", tc.cat), func(t *testing.T) {
			if result := tc.cat.IsBlockable(); result != tc.expected {
				t.Errorf("IsBlockable() = %v, want %v", result, tc.expected)
			}
		})
	}
}
