package ledger

import "math"

// DeriveFraction converts a partial-weight sale into a fraction of one
// stocked unit: both weights are normalized to grams and the ratio is
// rounded half-up to 4 decimal places. Repeated fractional sales can
// accumulate rounding drift against physical inventory; that drift is
// accepted, not reconciled.
func DeriveFraction(saleWeight float64, saleUnit string, productWeight float64, productUnit string) (float64, error) {
	if saleWeight <= 0 {
		return 0, validationf("peso da venda deve ser positivo")
	}
	if productWeight <= 0 {
		return 0, validationf("produto não possui peso de referência")
	}
	saleG, err := toGrams(saleWeight, saleUnit)
	if err != nil {
		return 0, err
	}
	productG, err := toGrams(productWeight, productUnit)
	if err != nil {
		return 0, err
	}
	return math.Round(saleG/productG*1e4) / 1e4, nil
}

func toGrams(weight float64, unit string) (float64, error) {
	switch unit {
	case "g":
		return weight, nil
	case "kg":
		return weight * 1000, nil
	case "l":
		// liters treated as kilograms-equivalent for ratio purposes
		return weight * 1000, nil
	default:
		return 0, validationf("unidade inválida para venda fracionada: %q", unit)
	}
}
