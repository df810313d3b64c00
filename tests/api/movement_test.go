package apitest

import (
	"net/http"
	"testing"

	movementApi "github.com/DuJao22/Comercio-pro/api/movement"
	entity "github.com/DuJao22/Comercio-pro/model/entity"
)

func TestMovements_Unauthenticated(t *testing.T) {
	e := newServer(t, nil, movementApi.RegisterMovementRoutes)
	rec := doJSON(t, e, http.MethodPost, "/api/movements", map[string]interface{}{
		"product_id": 1, "type": "in", "quantity": 1,
	})
	wantStatus(t, rec, http.StatusUnauthorized)
}

func TestMovements_In(t *testing.T) {
	s := seedStore(t, "Loja Mov In")
	u := seedUser(t, "mov-in@loja.com", entity.RoleAdmin, &s.ID)
	p := seedProduct(t, s.ID, "Queijo Mov In", 10)
	e := newServer(t, adminClaims(u), movementApi.RegisterMovementRoutes)

	rec := doJSON(t, e, http.MethodPost, "/api/movements", map[string]interface{}{
		"product_id": p.ID,
		"type":       "in",
		"quantity":   5,
	})
	wantStatus(t, rec, http.StatusOK)
	resp := decode(t, rec)
	if resp["newQuantity"].(float64) != 15 {
		t.Errorf("newQuantity = %v, want 15", resp["newQuantity"])
	}
}

func TestMovements_OutInsufficient(t *testing.T) {
	s := seedStore(t, "Loja Mov Out")
	u := seedUser(t, "mov-out@loja.com", entity.RoleAdmin, &s.ID)
	p := seedProduct(t, s.ID, "Queijo Mov Out", 2)
	e := newServer(t, adminClaims(u), movementApi.RegisterMovementRoutes)

	rec := doJSON(t, e, http.MethodPost, "/api/movements", map[string]interface{}{
		"product_id": p.ID,
		"type":       "out",
		"quantity":   5,
	})
	wantStatus(t, rec, http.StatusBadRequest)
	resp := decode(t, rec)
	if resp["error"] != "Estoque insuficiente" {
		t.Errorf("error = %v", resp["error"])
	}
	if resp["available"].(float64) != 2 {
		t.Errorf("available = %v, want 2", resp["available"])
	}
}

func TestMovements_FractionalSale(t *testing.T) {
	s := seedStore(t, "Loja Fração")
	u := seedUser(t, "mov-frac@loja.com", entity.RoleAdmin, &s.ID)
	p := &entity.Product{StoreID: s.ID, Name: "Queijo Peça 1kg", Weight: 1, Unit: entity.UnitKilo, StockQuantity: 10}
	if err := testDB(t).Create(p).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}
	e := newServer(t, adminClaims(u), movementApi.RegisterMovementRoutes)

	// 250g of a 1kg piece debits a quarter unit
	rec := doJSON(t, e, http.MethodPost, "/api/movements", map[string]interface{}{
		"product_id":  p.ID,
		"type":        "out",
		"quantity":    1,
		"sale_weight": 250,
		"sale_unit":   "g",
	})
	wantStatus(t, rec, http.StatusOK)
	resp := decode(t, rec)
	if resp["newQuantity"].(float64) != 9.75 {
		t.Errorf("newQuantity = %v, want 9.75", resp["newQuantity"])
	}

	var m entity.Movement
	if err := testDB(t).Where("product_id = ?", p.ID).Take(&m).Error; err != nil {
		t.Fatalf("load movement: %v", err)
	}
	if m.Quantity != 0.25 {
		t.Errorf("movement quantity = %v, want 0.25", m.Quantity)
	}
}

func TestMovements_BadDueDate(t *testing.T) {
	s := seedStore(t, "Loja Data")
	u := seedUser(t, "mov-date@loja.com", entity.RoleAdmin, &s.ID)
	p := seedProduct(t, s.ID, "Queijo Data", 10)
	e := newServer(t, adminClaims(u), movementApi.RegisterMovementRoutes)

	rec := doJSON(t, e, http.MethodPost, "/api/movements", map[string]interface{}{
		"product_id":       p.ID,
		"type":             "out",
		"quantity":         1,
		"payment_status":   "pending",
		"payment_due_date": "30/01/2026",
	})
	wantStatus(t, rec, http.StatusBadRequest)
}

func TestMovements_ListScopedToStore(t *testing.T) {
	s1 := seedStore(t, "Loja Lista 1")
	s2 := seedStore(t, "Loja Lista 2")
	u1 := seedUser(t, "mov-list1@loja.com", entity.RoleAdmin, &s1.ID)
	u2 := seedUser(t, "mov-list2@loja.com", entity.RoleAdmin, &s2.ID)
	p1 := seedProduct(t, s1.ID, "Produto Lista 1", 10)
	p2 := seedProduct(t, s2.ID, "Produto Lista 2", 10)

	e1 := newServer(t, adminClaims(u1), movementApi.RegisterMovementRoutes)
	e2 := newServer(t, adminClaims(u2), movementApi.RegisterMovementRoutes)

	rec := doJSON(t, e1, http.MethodPost, "/api/movements", map[string]interface{}{
		"product_id": p1.ID, "type": "in", "quantity": 1,
	})
	wantStatus(t, rec, http.StatusOK)
	rec = doJSON(t, e2, http.MethodPost, "/api/movements", map[string]interface{}{
		"product_id": p2.ID, "type": "in", "quantity": 1,
	})
	wantStatus(t, rec, http.StatusOK)

	rec = doJSON(t, e1, http.MethodGet, "/api/movements", nil)
	wantStatus(t, rec, http.StatusOK)
	var rows []map[string]interface{}
	if err := jsonDecodeList(rec, &rows); err != nil {
		t.Fatalf("decode: %v", err)
	}
	for _, row := range rows {
		if row["product_name"] == "Produto Lista 2" {
			t.Error("store 1 listing leaked a store 2 movement")
		}
	}
}
