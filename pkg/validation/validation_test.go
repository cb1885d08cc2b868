package validation_test

import (
	"guidiqo/pkg/serrors"
	"guidiqo/pkg/validation"
	"testing"

	"github.com/stretchr/testify/require"
)

type nested struct {
	Color string `json:"color" validate:"omitempty,hexcolor"`
}

type payload struct {
	Name   string   `json:"name"   validate:"required,max=5"`
	Link   string   `json:"link"   validate:"omitempty,url"`
	Email  string   `json:"email"  validate:"omitempty,email"`
	Step   *int     `json:"step"   validate:"omitempty,min=0,max=5"`
	Kind   string   `json:"kind"   validate:"omitempty,oneof=info warning"`
	Tags   []string `json:"tags"   validate:"max=2"`
	Nested *nested  `json:"nested"`
}

func TestStruct_Messages(t *testing.T) {
	six := 6
	cases := []struct {
		name string
		in   payload
		msg  string
	}{
		{name: "required", in: payload{}, msg: "Le champ « name » est requis."},
		{name: "max string", in: payload{Name: "abcdefg"}, msg: "Le champ « name » ne doit pas dépasser 5 caractères."},
		{name: "url", in: payload{Name: "a", Link: "nope"}, msg: "Le champ « link » doit être une URL valide."},
		{name: "email", in: payload{Name: "a", Email: "x"}, msg: "Le champ « email » doit être une adresse e-mail valide."},
		{name: "max number", in: payload{Name: "a", Step: &six}, msg: "Le champ « step » doit être inférieur ou égal à 5."},
		{
			name: "oneof",
			in:   payload{Name: "a", Kind: "x"},
			msg:  "Le champ « kind » doit valoir l'une des valeurs suivantes : info, warning.",
		},
		{
			name: "slice max",
			in:   payload{Name: "a", Tags: []string{"a", "b", "c"}},
			msg:  "Le champ « tags » ne doit pas contenir plus de 2 éléments.",
		},
		{
			name: "nested hexcolor",
			in:   payload{Name: "a", Nested: &nested{Color: "blue"}},
			msg:  "Le champ « nested.color » doit être une couleur hexadécimale (ex. #1a2b3c).",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validation.Struct(tc.in)
			require.ErrorIs(t, err, serrors.ErrBadRequest)
			require.Equal(t, tc.msg, serrors.PublicMessage(err, ""))
		})
	}
}

func TestStruct_Valid(t *testing.T) {
	zero := 0
	require.NoError(t, validation.Struct(payload{
		Name:   "ok",
		Link:   "https://guidiqo.com",
		Step:   &zero,
		Nested: &nested{Color: "#aabbcc"},
	}))
}

func TestRequired(t *testing.T) {
	err := validation.Required("query")
	require.ErrorIs(t, err, serrors.ErrBadRequest)
	require.Equal(t, "Le champ « query » est requis.", serrors.PublicMessage(err, ""))
}
