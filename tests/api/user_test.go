package apitest

import (
	"fmt"
	"net/http"
	"testing"

	userApi "github.com/DuJao22/Comercio-pro/api/user"
	"github.com/DuJao22/Comercio-pro/core/auth"
	entity "github.com/DuJao22/Comercio-pro/model/entity"
)

func TestUsers_SuperadminGuard(t *testing.T) {
	s := seedStore(t, "Loja User Guard")
	u := seedUser(t, "user-guard@loja.com", entity.RoleAdmin, &s.ID)
	e := newServer(t, adminClaims(u), userApi.RegisterUserRoutes)

	rec := doJSON(t, e, http.MethodGet, "/api/users", nil)
	wantStatus(t, rec, http.StatusForbidden)

	rec = doJSON(t, e, http.MethodPost, "/api/users", map[string]interface{}{
		"name": "X", "email": "x@x.com", "password": "senha123", "role": "admin",
	})
	wantStatus(t, rec, http.StatusForbidden)
}

func TestUsers_Create(t *testing.T) {
	s := seedStore(t, "Loja User Create")
	super := seedUser(t, "user-super@sistema.com", entity.RoleSuperadmin, nil)
	e := newServer(t, superadminClaims(super.ID), userApi.RegisterUserRoutes)

	rec := doJSON(t, e, http.MethodPost, "/api/users", map[string]interface{}{
		"name":     "Novo Gerente",
		"email":    "novo-gerente@loja.com",
		"password": "senha123",
		"role":     "admin",
		"store_id": s.ID,
		"phone":    "31 98888-7777",
	})
	wantStatus(t, rec, http.StatusOK)

	var u entity.User
	if err := testDB(t).Where("email = ?", "novo-gerente@loja.com").Take(&u).Error; err != nil {
		t.Fatalf("user not created: %v", err)
	}
	if u.Password == "senha123" {
		t.Error("password stored in plain text")
	}
	if !auth.CheckPassword(u.Password, "senha123") {
		t.Error("stored hash does not verify")
	}
}

func TestUsers_CreateValidation(t *testing.T) {
	super := seedUser(t, "user-valid@sistema.com", entity.RoleSuperadmin, nil)
	e := newServer(t, superadminClaims(super.ID), userApi.RegisterUserRoutes)

	rec := doJSON(t, e, http.MethodPost, "/api/users", map[string]interface{}{
		"name": "Curto", "email": "curto@x.com", "password": "12345", "role": "admin",
	})
	wantStatus(t, rec, http.StatusBadRequest)

	rec = doJSON(t, e, http.MethodPost, "/api/users", map[string]interface{}{
		"name": "Papel", "email": "papel@x.com", "password": "senha123", "role": "manager",
	})
	wantStatus(t, rec, http.StatusBadRequest)
}

func TestUsers_ResetPassword(t *testing.T) {
	s := seedStore(t, "Loja Reset")
	super := seedUser(t, "reset-super@sistema.com", entity.RoleSuperadmin, nil)
	target := seedUser(t, "reset-target@loja.com", entity.RoleAdmin, &s.ID)
	e := newServer(t, superadminClaims(super.ID), userApi.RegisterUserRoutes)

	rec := doJSON(t, e, http.MethodPut, fmt.Sprintf("/api/users/%d/reset-password", target.ID), map[string]string{
		"password": "novasenha",
	})
	wantStatus(t, rec, http.StatusOK)

	var after entity.User
	if err := testDB(t).First(&after, target.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !auth.CheckPassword(after.Password, "novasenha") {
		t.Error("new password does not verify")
	}
}

func TestUsers_DeleteSelfRejected(t *testing.T) {
	super := seedUser(t, "delete-self@sistema.com", entity.RoleSuperadmin, nil)
	e := newServer(t, superadminClaims(super.ID), userApi.RegisterUserRoutes)

	rec := doJSON(t, e, http.MethodDelete, fmt.Sprintf("/api/users/%d", super.ID), nil)
	wantStatus(t, rec, http.StatusBadRequest)
}

func TestProfile_PasswordChangeNeedsCurrent(t *testing.T) {
	s := seedStore(t, "Loja Perfil")
	u := seedUser(t, "perfil@loja.com", entity.RoleAdmin, &s.ID)
	e := newServer(t, adminClaims(u), userApi.RegisterUserRoutes)

	rec := doJSON(t, e, http.MethodPut, "/api/profile", map[string]string{
		"password":        "outrasenha",
		"currentPassword": "errada",
	})
	wantStatus(t, rec, http.StatusBadRequest)

	rec = doJSON(t, e, http.MethodPut, "/api/profile", map[string]string{
		"name":            "Nome Atualizado",
		"password":        "outrasenha",
		"currentPassword": "senha123",
	})
	wantStatus(t, rec, http.StatusOK)

	var after entity.User
	if err := testDB(t).First(&after, u.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if after.Name != "Nome Atualizado" {
		t.Errorf("name = %q", after.Name)
	}
	if !auth.CheckPassword(after.Password, "outrasenha") {
		t.Error("new password does not verify")
	}
}
