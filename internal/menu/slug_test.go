package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Cà phê", "ca-phe"},
		{"Trà", "tra"},
		{"Trà sữa", "tra-sua"},
		{"Coffee", "coffee"},
		{"  Món   chính  ", "mon-chinh"},
		{"Bánh mì & Xôi", "banh-mi-xoi"},
		{"Set_Lunch 01", "set_lunch-01"},
		{"MÓN NƯỚNG", "mon-nuong"},
		{"***", "category"},
		{"", "category"},
		{"   ", "category"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.in), "Slugify(%q)", tc.in)
	}
}
