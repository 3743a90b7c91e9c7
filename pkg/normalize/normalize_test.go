package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringList(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want []string
	}{
		{"json array", `["pork","vinegar","garlic"]`, []string{"pork", "vinegar", "garlic"}},
		{"json array with padding", ` ["rice flour", " coconut "] `, []string{"rice flour", "coconut"}},
		{"comma separated", "pork, vinegar ,garlic", []string{"pork", "vinegar", "garlic"}},
		{"single bare value", "carabao milk", []string{"carabao milk"}},
		{"empty", "", []string{}},
		{"whitespace only", "   ", []string{}},
		{"empty json array", "[]", []string{}},
		{"trailing commas", "pork,,garlic,", []string{"pork", "garlic"}},
		{"malformed json treated as text", `["pork", 5]`, []string{`["pork"`, `5]`}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StringList(tc.raw))
		})
	}
}

func TestEncodeStringList(t *testing.T) {
	assert.Equal(t, `["vegan","halal"]`, EncodeStringList([]string{" vegan", "halal ", ""}))
	assert.Equal(t, `[]`, EncodeStringList(nil))

	// canonical round trip
	assert.Equal(t, []string{"vegan", "halal"}, StringList(EncodeStringList([]string{"vegan", "halal"})))
}
