package servicetest

import (
	"errors"
	"testing"

	"github.com/DuJao22/Comercio-pro/service/ledger"
)

func TestDeriveFraction(t *testing.T) {
	cases := []struct {
		name          string
		saleWeight    float64
		saleUnit      string
		productWeight float64
		productUnit   string
		want          float64
	}{
		{"quarter of a kilo piece", 250, "g", 1, "kg", 0.25},
		{"grams over grams", 5, "g", 500, "g", 0.01},
		{"kilo over kilo", 0.5, "kg", 1, "kg", 0.5},
		{"five kilos of a five kilo piece", 5, "kg", 5, "kg", 1},
		{"liters as kilo equivalent", 0.5, "l", 2, "l", 0.25},
		{"rounded to four decimals", 1, "g", 3, "g", 0.3333},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ledger.DeriveFraction(tc.saleWeight, tc.saleUnit, tc.productWeight, tc.productUnit)
			if err != nil {
				t.Fatalf("DeriveFraction: %v", err)
			}
			if got != tc.want {
				t.Errorf("fraction = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestDeriveFraction_Errors(t *testing.T) {
	cases := []struct {
		name          string
		saleWeight    float64
		saleUnit      string
		productWeight float64
		productUnit   string
	}{
		{"zero sale weight", 0, "g", 1, "kg"},
		{"negative sale weight", -1, "g", 1, "kg"},
		{"zero product weight", 100, "g", 0, "kg"},
		{"unit product cannot be fractioned", 100, "g", 1, "un"},
		{"unknown sale unit", 100, "oz", 1, "kg"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ledger.DeriveFraction(tc.saleWeight, tc.saleUnit, tc.productWeight, tc.productUnit)
			var ve *ledger.ValidationError
			if !errors.As(err, &ve) {
				t.Errorf("err = %v, want ValidationError", err)
			}
		})
	}
}
