package api

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/emkr-13/sim-admin/internal/models"
)

func validAccountPayload() AccountPayload {
	return AccountPayload{
		Name:    "Budi Santoso",
		Phone:   "081234567890",
		Email:   "budi@mail.com",
		Address: "Jl. Sudirman 1",
		Type:    models.AccountTypeCustomer,
	}
}

func TestAccountValidation(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*AccountPayload)
		wantField string
	}{
		{"missing name", func(p *AccountPayload) { p.Name = "  " }, "name"},
		{"missing phone", func(p *AccountPayload) { p.Phone = "" }, "phone"},
		{"missing email", func(p *AccountPayload) { p.Email = "" }, "email"},
		{"missing address", func(p *AccountPayload) { p.Address = "" }, "address"},
		{"bad type", func(p *AccountPayload) { p.Type = "vendor" }, "type"},
		{"bad email format", func(p *AccountPayload) { p.Email = "not-an-email" }, "email"},
		{"email with spaces", func(p *AccountPayload) { p.Email = "a b@mail.com" }, "email"},
		{"phone too short", func(p *AccountPayload) { p.Phone = "12-34" }, "phone"},
		{"phone too long", func(p *AccountPayload) { p.Phone = "1234567890123456" }, "phone"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validAccountPayload()
			tt.mutate(&p)
			err := p.validate()
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("err = %v, want *ValidationError", err)
			}
			if vErr.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", vErr.Field, tt.wantField)
			}
		})
	}
}

func TestAccountValidationAcceptsFormattedPhone(t *testing.T) {
	// separators are stripped before the digit count is checked
	p := validAccountPayload()
	p.Phone = "+62 812-3456-7890"
	if err := p.validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	p.Type = models.AccountTypeSupplier
	if err := p.validate(); err != nil {
		t.Fatalf("validate supplier: %v", err)
	}
}

func TestInvalidAccountNeverLeavesProcess(t *testing.T) {
	client, hits := testClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `{"success":true,"message":"ok","data":{}}`)
	})
	ctx := context.Background()

	p := validAccountPayload()
	p.Phone = "12-34"
	if _, err := client.Accounts().Create(ctx, p); err == nil {
		t.Fatal("Create accepted an invalid payload")
	}
	if _, err := client.Accounts().Update(ctx, 7, p); err == nil {
		t.Fatal("Update accepted an invalid payload")
	}
	if n := atomic.LoadInt64(hits); n != 0 {
		t.Errorf("server saw %d requests, want 0", n)
	}
}

func TestAccountUpdateBodyCarriesID(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	client, _ := testClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		decodeJSONBody(t, r, &gotBody)
		writeJSON(w, `{"success":true,"message":"ok","data":{"id":7,"name":"Budi Santoso"}}`)
	})

	a, err := client.Accounts().Update(context.Background(), 7, validAccountPayload())
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if a.ID != 7 {
		t.Errorf("ID = %d, want 7", a.ID)
	}
	if gotPath != "/akun/edit" {
		t.Errorf("path = %q, want /akun/edit", gotPath)
	}
	if id, ok := gotBody["id"].(float64); !ok || int64(id) != 7 {
		t.Errorf("body id = %v, want 7", gotBody["id"])
	}
	if gotBody["name"] != "Budi Santoso" {
		t.Errorf("body name = %v", gotBody["name"])
	}
}
