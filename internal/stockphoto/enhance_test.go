package stockphoto_test

import (
	"guidiqo/internal/stockphoto"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnhanceQuery(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "whole query substitution", in: "tech", want: "technology startup office"},
		{name: "case and spaces", in: "  TECH  ", want: "technology startup office"},
		{name: "french key with accent", in: "Santé", want: "healthcare medical clinic"},
		{name: "multi word key", in: "real   estate", want: "modern real estate architecture"},
		{name: "token substitution", in: "café parisien", want: "coffee shop interior parisien"},
		{name: "duplicates removed", in: "tech office", want: "technology startup office modern workspace"},
		{name: "unknown words kept", in: "blue ocean waves", want: "blue ocean waves"},
		{name: "repeated words", in: "sunset sunset beach", want: "sunset beach"},
		{name: "empty", in: "   ", want: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, stockphoto.EnhanceQuery(tc.in))
		})
	}
}
