package auth_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/a11y-lab/statements/pkg/domain/model/auth"
)

func TestParseDisplayName(t *testing.T) {
	cases := []struct {
		name  string
		input string
		first string
		last  string
	}{
		{"comma separated directory format", "JONES, Andy", "Andy", "JONES"},
		{"first last", "Andy Jones", "Andy", "Jones"},
		{"extra tokens ignored", "Andy Jones Smith", "Andy", "Jones"},
		{"single name", "Andy", "Andy", ""},
		{"comma with surrounding spaces", " Jones , Andy ", "Andy", "Jones"},
		{"empty", "", "", ""},
		{"whitespace only", "   ", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			first, last := auth.ParseDisplayName(tc.input)
			gt.Value(t, first).Equal(tc.first)
			gt.Value(t, last).Equal(tc.last)
		})
	}
}

func TestClaimsFirstLast(t *testing.T) {
	t.Run("display name takes priority over email", func(t *testing.T) {
		claims := auth.Claims{Name: "Jones, Andy", Email: "someone.else@example.com"}
		first, last := claims.FirstLast()
		gt.Value(t, first).Equal("Andy")
		gt.Value(t, last).Equal("Jones")
	})

	t.Run("name derived from dotted email local part", func(t *testing.T) {
		claims := auth.Claims{Email: "andy.jones@example.com"}
		first, last := claims.FirstLast()
		gt.Value(t, first).Equal("Andy")
		gt.Value(t, last).Equal("Jones")
	})

	t.Run("undotted email yields first name only", func(t *testing.T) {
		claims := auth.Claims{Email: "andy@example.com"}
		first, last := claims.FirstLast()
		gt.Value(t, first).Equal("Andy")
		gt.Value(t, last).Equal("")
	})

	t.Run("no name and no email", func(t *testing.T) {
		claims := auth.Claims{}
		first, last := claims.FirstLast()
		gt.Value(t, first).Equal("")
		gt.Value(t, last).Equal("")
	})
}
