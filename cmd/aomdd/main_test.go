package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeArgs(t *testing.T) {
	cases := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "rewrites single-dash long bools",
			in:   []string{"-f", "net.uai", "-vbe", "-p", "-log", "-verify"},
			want: []string{"-f", "net.uai", "--vbe", "-p", "--log", "--verify"},
		},
		{
			name: "leaves short flags untouched",
			in:   []string{"-f", "net.uai", "-o", "order.txt", "-c", "-p"},
			want: []string{"-f", "net.uai", "-o", "order.txt", "-c", "-p"},
		},
		{
			name: "empty input",
			in:   nil,
			want: []string{},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, normalizeArgs(tc.in))
		})
	}
}
