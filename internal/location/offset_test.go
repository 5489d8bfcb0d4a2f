package location

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseUTCOffset(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"ist half hour", "+05:30", "5.5"},
		{"negative whole hour", "-04:00", "-4.0"},
		{"quarter hour", "+05:15", "5.25"},
		{"nepal three quarter", "+05:45", "5.75"},
		{"no sign", "9:00", "9.0"},
		{"bare integer", "5", "5.0"},
		{"negative integer", "-11", "-11.0"},
		{"decimal quarter passthrough", "5.75", "5.75"},
		{"negative decimal half", "-9.5", "-9.5"},
		{"non quarter decimal passthrough", "5.6", "5.6"},
		{"unhandled minutes", "+05:20", DefaultOffset},
		{"empty", "", DefaultOffset},
		{"whitespace only", "   ", DefaultOffset},
		{"garbage", "not-an-offset", DefaultOffset},
		{"trims whitespace", " +06:00 ", "6.0"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseUTCOffset(tc.input))
		})
	}
}
