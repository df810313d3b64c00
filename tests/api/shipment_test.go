package apitest

import (
	"fmt"
	"net/http"
	"testing"

	shipmentApi "github.com/DuJao22/Comercio-pro/api/shipment"
	entity "github.com/DuJao22/Comercio-pro/model/entity"
)

func TestShipments_SuperadminOnly(t *testing.T) {
	s := seedStore(t, "Loja Remessa Guard")
	u := seedUser(t, "ship-guard@loja.com", entity.RoleAdmin, &s.ID)
	e := newServer(t, adminClaims(u), shipmentApi.RegisterShipmentRoutes)

	rec := doJSON(t, e, http.MethodGet, "/api/shipments", nil)
	wantStatus(t, rec, http.StatusForbidden)
}

func TestShipments_Lifecycle(t *testing.T) {
	dest := seedStore(t, "Loja Remessa Destino")
	super := seedUser(t, "ship-super@sistema.com", entity.RoleSuperadmin, nil)
	p := seedProduct(t, dest.ID, "Queijo Remessa", 2)
	e := newServer(t, superadminClaims(super.ID), shipmentApi.RegisterShipmentRoutes)

	rec := doJSON(t, e, http.MethodPost, "/api/shipments", map[string]interface{}{
		"product_name":         "Queijo Remessa",
		"quantity":             10,
		"destination_store_id": dest.ID,
	})
	wantStatus(t, rec, http.StatusOK)
	id := uint(decode(t, rec)["id"].(float64))

	// pending -> received skips a step
	rec = doJSON(t, e, http.MethodPut, fmt.Sprintf("/api/shipments/%d/status", id), map[string]string{"status": "received"})
	wantStatus(t, rec, http.StatusBadRequest)

	rec = doJSON(t, e, http.MethodPut, fmt.Sprintf("/api/shipments/%d/status", id), map[string]string{"status": "sent"})
	wantStatus(t, rec, http.StatusOK)

	rec = doJSON(t, e, http.MethodPut, fmt.Sprintf("/api/shipments/%d/status", id), map[string]string{"status": "received"})
	wantStatus(t, rec, http.StatusOK)
	resp := decode(t, rec)
	if uint(resp["product_id"].(float64)) != p.ID {
		t.Errorf("product_id = %v, want matched product %d", resp["product_id"], p.ID)
	}

	var after entity.Product
	if err := testDB(t).First(&after, p.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if after.StockQuantity != 12 {
		t.Errorf("stock = %v, want 12", after.StockQuantity)
	}

	// received is terminal
	rec = doJSON(t, e, http.MethodPut, fmt.Sprintf("/api/shipments/%d/status", id), map[string]string{"status": "sent"})
	wantStatus(t, rec, http.StatusBadRequest)
}

func TestShipments_ReceiptCreatesPlaceholder(t *testing.T) {
	dest := seedStore(t, "Loja Remessa Nova")
	super := seedUser(t, "ship-new@sistema.com", entity.RoleSuperadmin, nil)
	e := newServer(t, superadminClaims(super.ID), shipmentApi.RegisterShipmentRoutes)

	rec := doJSON(t, e, http.MethodPost, "/api/shipments", map[string]interface{}{
		"product_name":         "Produto Inédito",
		"quantity":             4,
		"destination_store_id": dest.ID,
	})
	wantStatus(t, rec, http.StatusOK)
	id := uint(decode(t, rec)["id"].(float64))

	for _, status := range []string{"sent", "received"} {
		rec = doJSON(t, e, http.MethodPut, fmt.Sprintf("/api/shipments/%d/status", id), map[string]string{"status": status})
		wantStatus(t, rec, http.StatusOK)
	}

	var p entity.Product
	if err := testDB(t).Where("store_id = ? AND name = ?", dest.ID, "Produto Inédito").Take(&p).Error; err != nil {
		t.Fatalf("placeholder not created: %v", err)
	}
	if p.StockQuantity != 4 || p.Category != "Geral" {
		t.Errorf("placeholder = %+v", p)
	}
}

func TestShipments_CreateValidation(t *testing.T) {
	super := seedUser(t, "ship-valid@sistema.com", entity.RoleSuperadmin, nil)
	e := newServer(t, superadminClaims(super.ID), shipmentApi.RegisterShipmentRoutes)

	rec := doJSON(t, e, http.MethodPost, "/api/shipments", map[string]interface{}{
		"product_name": "", "quantity": 1, "destination_store_id": 1,
	})
	wantStatus(t, rec, http.StatusBadRequest)

	rec = doJSON(t, e, http.MethodPost, "/api/shipments", map[string]interface{}{
		"product_name": "X", "quantity": 0, "destination_store_id": 1,
	})
	wantStatus(t, rec, http.StatusBadRequest)
}
