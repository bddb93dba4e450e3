package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "lowercases", input: "Acme-Boarding", want: "acme-boarding"},
		{name: "trims whitespace", input: "  happy-tails \n", want: "happy-tails"},
		{name: "empty", input: "", want: ""},
		{name: "whitespace only", input: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{"Acme-Boarding", "  Happy Tails  ", "", "paws-and-claws", "ÜBER pets"}
	for _, s := range inputs {
		once := Normalize(s)
		assert.Equal(t, once, Normalize(once), "Normalize(Normalize(%q))", s)
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "ampersand becomes and", input: " Paws & Claws!! ", want: "paws-and-claws"},
		{name: "simple name", input: "Happy Tails", want: "happy-tails"},
		{name: "quotes vanish without split", input: "Bella's Pet Home", want: "bellas-pet-home"},
		{name: "punctuation runs collapse", input: "Top -- Dogs!!  Resort", want: "top-dogs-resort"},
		{name: "leading and trailing junk", input: "--Pet Palace--", want: "pet-palace"},
		{name: "digits kept", input: "K9 Care 24x7", want: "k9-care-24x7"},
		{name: "empty", input: "", want: ""},
		{name: "only punctuation", input: "!!!", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.input))
		})
	}
}

func TestSlugify_Deterministic(t *testing.T) {
	assert.Equal(t, Slugify("Paws & Claws"), Slugify("Paws & Claws"))
}

func TestSlugify_IdempotentOnSlugs(t *testing.T) {
	for _, s := range []string{"paws-and-claws", "happy-tails", "k9-care"} {
		assert.Equal(t, s, Slugify(s))
	}
}
