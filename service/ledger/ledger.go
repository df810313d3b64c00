package ledger

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	entity "github.com/DuJao22/Comercio-pro/model/entity"
)

// ObservationManualAdjust labels the implicit movement written when a
// product edit changes stock_quantity directly.
const ObservationManualAdjust = "Ajuste manual na edição do produto"

// Ledger applies stock deltas and appends the movement audit trail. Every
// operation runs in one database transaction: the counter update and the
// movement insert commit or roll back together. Outbound decrements use a
// conditional UPDATE with an affected-rows check, so two concurrent sales
// cannot both pass the sufficiency check and drive stock negative.
type Ledger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Ledger {
	return &Ledger{db: db}
}

// MovementInput is one stock change request.
type MovementInput struct {
	ProductID      uint
	Type           string
	Quantity       float64
	ActorID        uint
	Observation    string
	ClientName     string
	ClientContact  string
	PaymentStatus  string
	PaymentDueDate *datatypes.Date
}

func (in *MovementInput) validate() error {
	if in.ProductID == 0 {
		return validationf("product_id é obrigatório")
	}
	if in.Type != entity.MovementIn && in.Type != entity.MovementOut {
		return validationf("tipo de movimentação inválido: %q", in.Type)
	}
	if in.Quantity <= 0 {
		return validationf("quantidade deve ser positiva")
	}
	if in.ActorID == 0 {
		return validationf("usuário é obrigatório")
	}
	if in.PaymentStatus != "" && in.PaymentStatus != entity.PaymentPaid && in.PaymentStatus != entity.PaymentPending {
		return validationf("status de pagamento inválido: %q", in.PaymentStatus)
	}
	return nil
}

// RecordMovement applies a single in/out delta and appends one movement
// row. Returns the product's new stock quantity.
func (l *Ledger) RecordMovement(in MovementInput) (float64, error) {
	if err := in.validate(); err != nil {
		return 0, err
	}
	var newQty float64
	err := l.db.Transaction(func(tx *gorm.DB) error {
		var err error
		newQty, err = applyMovement(tx, in)
		return err
	})
	if err != nil {
		return 0, err
	}
	zap.L().Info("movement recorded",
		zap.Uint("product_id", in.ProductID),
		zap.String("type", in.Type),
		zap.Float64("quantity", in.Quantity),
		zap.Uint("user_id", in.ActorID))
	return newQty, nil
}

// applyMovement does the read-check-update-insert sequence inside an open
// transaction. Shared by RecordMovement, RecordProduction, edits and
// shipment receipts.
func applyMovement(tx *gorm.DB, in MovementInput) (float64, error) {
	var p entity.Product
	if err := tx.Select("id", "stock_quantity").First(&p, in.ProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrNotFound
		}
		return 0, err
	}

	if in.Type == entity.MovementOut {
		res := tx.Model(&entity.Product{}).
			Where("id = ? AND stock_quantity >= ?", in.ProductID, in.Quantity).
			UpdateColumn("stock_quantity", gorm.Expr("stock_quantity - ?", in.Quantity))
		if res.Error != nil {
			return 0, res.Error
		}
		if res.RowsAffected == 0 {
			// stock_quantity moved under us or was short all along
			return 0, &InsufficientStockError{ProductID: in.ProductID, Available: p.StockQuantity}
		}
	} else {
		res := tx.Model(&entity.Product{}).
			Where("id = ?", in.ProductID).
			UpdateColumn("stock_quantity", gorm.Expr("stock_quantity + ?", in.Quantity))
		if res.Error != nil {
			return 0, res.Error
		}
	}

	m := entity.Movement{
		ProductID:      in.ProductID,
		Type:           in.Type,
		Quantity:       in.Quantity,
		UserID:         in.ActorID,
		Observation:    in.Observation,
		ClientName:     in.ClientName,
		ClientContact:  in.ClientContact,
		PaymentStatus:  in.PaymentStatus,
		PaymentDueDate: in.PaymentDueDate,
	}
	if err := tx.Create(&m).Error; err != nil {
		return 0, err
	}

	var after entity.Product
	if err := tx.Select("stock_quantity").First(&after, in.ProductID).Error; err != nil {
		return 0, err
	}
	return after.StockQuantity, nil
}

// ProductEdit is the editable field set of a product. A changed
// StockQuantity is an administrative override: the ledger derives the
// implicit adjustment movement so the audit trail stays total.
type ProductEdit struct {
	Name          string
	Description   string
	Category      string
	Weight        float64
	Unit          string
	StockQuantity float64
	Image         string
}

// ApplyProductEdit updates a product and, when the stock counter changed,
// writes the compensating movement in the same transaction. A zero diff
// writes no movement.
func (l *Ledger) ApplyProductEdit(productID, actorID uint, edit ProductEdit) error {
	if productID == 0 {
		return validationf("product_id é obrigatório")
	}
	if edit.Name == "" {
		return validationf("nome é obrigatório")
	}
	if edit.StockQuantity < 0 {
		return validationf("estoque não pode ser negativo")
	}
	return l.db.Transaction(func(tx *gorm.DB) error {
		var current entity.Product
		if err := tx.First(&current, productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if diff := edit.StockQuantity - current.StockQuantity; diff != 0 {
			mType := entity.MovementIn
			qty := diff
			if diff < 0 {
				mType = entity.MovementOut
				qty = -diff
			}
			m := entity.Movement{
				ProductID:   productID,
				Type:        mType,
				Quantity:    qty,
				UserID:      actorID,
				Observation: ObservationManualAdjust,
			}
			if err := tx.Create(&m).Error; err != nil {
				return err
			}
		}

		return tx.Model(&entity.Product{}).Where("id = ?", productID).
			UpdateColumns(map[string]interface{}{
				"name":           edit.Name,
				"description":    edit.Description,
				"category":       edit.Category,
				"weight":         edit.Weight,
				"unit":           edit.Unit,
				"stock_quantity": edit.StockQuantity,
				"image":          edit.Image,
			}).Error
	})
}

// ProductionInput converts bulk stock into retail units: the source is
// debited by QuantityConsumed, the target credited by QuantityProduced.
// The ratio is the caller's arithmetic; the ledger only enforces
// non-negative source stock.
type ProductionInput struct {
	SourceProductID  uint
	TargetProductID  uint
	QuantityProduced float64
	QuantityConsumed float64
	ActorID          uint
}

// RecordProduction runs the paired debit-credit transfer atomically,
// appending an out movement on the source and an in movement on the
// target, each observation referencing the peer product.
func (l *Ledger) RecordProduction(in ProductionInput) error {
	if in.SourceProductID == 0 || in.TargetProductID == 0 {
		return validationf("produtos de origem e destino são obrigatórios")
	}
	if in.SourceProductID == in.TargetProductID {
		return validationf("origem e destino devem ser produtos diferentes")
	}
	if in.QuantityProduced <= 0 || in.QuantityConsumed <= 0 {
		return validationf("quantidades devem ser positivas")
	}
	if in.ActorID == 0 {
		return validationf("usuário é obrigatório")
	}
	err := l.db.Transaction(func(tx *gorm.DB) error {
		if _, err := applyMovement(tx, MovementInput{
			ProductID:   in.SourceProductID,
			Type:        entity.MovementOut,
			Quantity:    in.QuantityConsumed,
			ActorID:     in.ActorID,
			Observation: fmt.Sprintf("Produção: consumido para gerar o produto #%d", in.TargetProductID),
		}); err != nil {
			return err
		}
		_, err := applyMovement(tx, MovementInput{
			ProductID:   in.TargetProductID,
			Type:        entity.MovementIn,
			Quantity:    in.QuantityProduced,
			ActorID:     in.ActorID,
			Observation: fmt.Sprintf("Produção: gerado a partir do produto #%d", in.SourceProductID),
		})
		return err
	})
	if err != nil {
		return err
	}
	zap.L().Info("production recorded",
		zap.Uint("source", in.SourceProductID),
		zap.Uint("target", in.TargetProductID),
		zap.Float64("produced", in.QuantityProduced),
		zap.Float64("consumed", in.QuantityConsumed))
	return nil
}

// ReceiveShipment reconciles an inter-store shipment into the ledger. The
// destination product is looked up by exact name (soft link); when absent
// a placeholder product is created first. The status flip, the optional
// product creation, the stock credit and the movement row commit together.
func (l *Ledger) ReceiveShipment(sh *entity.Shipment, actorID uint) (*entity.Product, error) {
	if sh.Quantity <= 0 {
		return nil, validationf("quantidade deve ser positiva")
	}
	var target entity.Product
	err := l.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("store_id = ? AND name = ?", sh.DestinationStoreID, sh.ProductName).
			First(&target).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			target = entity.Product{
				StoreID:  sh.DestinationStoreID,
				Name:     sh.ProductName,
				Category: "Geral",
				Unit:     entity.UnitPiece,
			}
			if err := tx.Create(&target).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		}

		if _, err := applyMovement(tx, MovementInput{
			ProductID:   target.ID,
			Type:        entity.MovementIn,
			Quantity:    sh.Quantity,
			ActorID:     actorID,
			Observation: fmt.Sprintf("Remessa #%d recebida", sh.ID),
		}); err != nil {
			return err
		}

		return tx.Model(&entity.Shipment{}).Where("id = ?", sh.ID).
			UpdateColumn("status", entity.ShipmentReceived).Error
	})
	if err != nil {
		return nil, err
	}
	return &target, nil
}
