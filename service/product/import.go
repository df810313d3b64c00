package product

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gorm.io/gorm"

	entity "github.com/DuJao22/Comercio-pro/model/entity"
)

// ImportOptions configures a CSV product import run.
type ImportOptions struct {
	StoreID   uint // default store when the CSV has no store_id column
	ActorID   uint // recorded on the initial stock movements
	BatchSize int
}

// ImportResult summarizes an import run.
type ImportResult struct {
	Rows     int
	Created  int
	Skipped  int
	Warnings []string
}

const importObservation = "Importação CSV"

// ImportProducts reads a CSV (header: name, description, category, weight,
// unit, stock, store_id) and creates products. Non-zero initial stock also
// writes an `in` movement per product so every counter stays explained by
// the ledger. The whole run is one transaction.
func ImportProducts(db *gorm.DB, r io.Reader, opts ImportOptions) (*ImportResult, error) {
	if opts.BatchSize <= 0 {
		opts.BatchSize = 100
	}

	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read CSV header: %w", err)
	}
	colIndex := make(map[string]int, len(header))
	for i, col := range header {
		colIndex[strings.ToLower(strings.TrimSpace(col))] = i
	}
	if _, ok := colIndex["name"]; !ok {
		return nil, fmt.Errorf("CSV missing required column: name")
	}

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read CSV row: %w", err)
		}
		rows = append(rows, row)
	}

	res := &ImportResult{Rows: len(rows)}

	cell := func(row []string, col string) string {
		if ci, ok := colIndex[col]; ok && ci < len(row) {
			return strings.TrimSpace(row[ci])
		}
		return ""
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		var batch []entity.Product
		var stocks []float64

		flush := func() error {
			if len(batch) == 0 {
				return nil
			}
			if err := tx.CreateInBatches(&batch, opts.BatchSize).Error; err != nil {
				return err
			}
			for i := range batch {
				if stocks[i] <= 0 {
					continue
				}
				m := entity.Movement{
					ProductID:   batch[i].ID,
					Type:        entity.MovementIn,
					Quantity:    stocks[i],
					UserID:      opts.ActorID,
					Observation: importObservation,
				}
				if err := tx.Create(&m).Error; err != nil {
					return err
				}
			}
			res.Created += len(batch)
			batch = batch[:0]
			stocks = stocks[:0]
			return nil
		}

		for i, row := range rows {
			name := cell(row, "name")
			if name == "" {
				res.Skipped++
				res.Warnings = append(res.Warnings, fmt.Sprintf("row %d: empty name", i+2))
				continue
			}

			storeID := opts.StoreID
			if v := cell(row, "store_id"); v != "" {
				id, err := strconv.ParseUint(v, 10, 32)
				if err != nil {
					res.Skipped++
					res.Warnings = append(res.Warnings, fmt.Sprintf("row %d: invalid store_id %q", i+2, v))
					continue
				}
				storeID = uint(id)
			}
			if storeID == 0 {
				res.Skipped++
				res.Warnings = append(res.Warnings, fmt.Sprintf("row %d: no store", i+2))
				continue
			}

			weight := 0.0
			if v := cell(row, "weight"); v != "" {
				if weight, err = strconv.ParseFloat(v, 64); err != nil {
					res.Skipped++
					res.Warnings = append(res.Warnings, fmt.Sprintf("row %d: invalid weight %q", i+2, v))
					continue
				}
			}
			stock := 0.0
			if v := cell(row, "stock"); v != "" {
				if stock, err = strconv.ParseFloat(v, 64); err != nil || stock < 0 {
					res.Skipped++
					res.Warnings = append(res.Warnings, fmt.Sprintf("row %d: invalid stock %q", i+2, v))
					continue
				}
			}
			unit := cell(row, "unit")
			if unit == "" {
				unit = entity.UnitPiece
			}

			batch = append(batch, entity.Product{
				StoreID:       storeID,
				Name:          name,
				Description:   cell(row, "description"),
				Category:      cell(row, "category"),
				Weight:        weight,
				Unit:          unit,
				StockQuantity: stock,
			})
			stocks = append(stocks, stock)

			if len(batch) >= opts.BatchSize {
				if err := flush(); err != nil {
					return err
				}
			}
		}
		return flush()
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
