package apitest

import (
	"net/http"
	"testing"

	dashboardApi "github.com/DuJao22/Comercio-pro/api/dashboard"
	entity "github.com/DuJao22/Comercio-pro/model/entity"
)

func TestDashboard_StoreAdmin(t *testing.T) {
	s := seedStore(t, "Loja Dash")
	u := seedUser(t, "dash@loja.com", entity.RoleAdmin, &s.ID)
	seedProduct(t, s.ID, "Produto Dash", 3)
	e := newServer(t, adminClaims(u), dashboardApi.RegisterDashboardRoutes)

	rec := doJSON(t, e, http.MethodGet, "/api/dashboard", nil)
	wantStatus(t, rec, http.StatusOK)
	stats := decode(t, rec)

	for _, key := range []string{"totalProducts", "totalMovements", "salesByDay", "recentMovements", "lowStock"} {
		if _, ok := stats[key]; !ok {
			t.Errorf("key %q missing", key)
		}
	}
	if _, superOnly := stats["totalStores"]; superOnly {
		t.Error("store dashboard must not carry global store count")
	}
}

func TestDashboard_Superadmin(t *testing.T) {
	super := seedUser(t, "dash-super@sistema.com", entity.RoleSuperadmin, nil)
	e := newServer(t, superadminClaims(super.ID), dashboardApi.RegisterDashboardRoutes)

	rec := doJSON(t, e, http.MethodGet, "/api/dashboard", nil)
	wantStatus(t, rec, http.StatusOK)
	stats := decode(t, rec)

	for _, key := range []string{"totalStores", "totalProducts", "totalMovements", "financial"} {
		if _, ok := stats[key]; !ok {
			t.Errorf("key %q missing", key)
		}
	}
}

func TestDashboard_Unauthenticated(t *testing.T) {
	e := newServer(t, nil, dashboardApi.RegisterDashboardRoutes)
	rec := doJSON(t, e, http.MethodGet, "/api/dashboard", nil)
	wantStatus(t, rec, http.StatusUnauthorized)
}
