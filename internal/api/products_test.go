package api

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"testing"
)

func TestProductValidation(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*ProductPayload)
		wantField string
	}{
		{"missing name", func(p *ProductPayload) { p.Name = "" }, "name"},
		{"missing category", func(p *ProductPayload) { p.CategoryID = 0 }, "categoryId"},
		{"negative price", func(p *ProductPayload) { p.Price = -1 }, "price"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ProductPayload{Name: "Kopi", CategoryID: 1, Price: 15000, Satuan: "pcs"}
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

func TestExportPDFWritesFile(t *testing.T) {
	const payload = "%PDF-1.4 fake"
	var gotTitle, gotAccept string
	client, _ := testClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		gotTitle = r.URL.Query().Get("title")
		gotAccept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "application/pdf")
		w.Write([]byte(payload))
	})

	dir := t.TempDir()
	path, err := client.Products().ExportPDF(context.Background(), "inventory", dir)
	if err != nil {
		t.Fatalf("ExportPDF: %v", err)
	}
	if want := filepath.Join(dir, "products-inventory.pdf"); path != want {
		t.Errorf("path = %q, want %q", path, want)
	}
	if gotTitle != "inventory" {
		t.Errorf("title param = %q, want inventory", gotTitle)
	}
	if gotAccept != "application/pdf" {
		t.Errorf("Accept = %q", gotAccept)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if string(raw) != payload {
		t.Errorf("file content = %q", raw)
	}
}

func TestExportExcelFileName(t *testing.T) {
	client, _ := testClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("workbook"))
	})

	dir := t.TempDir()
	path, err := client.Products().ExportExcel(context.Background(), "stok", dir)
	if err != nil {
		t.Fatalf("ExportExcel: %v", err)
	}
	if want := filepath.Join(dir, "products-stok.xlsx"); path != want {
		t.Errorf("path = %q, want %q", path, want)
	}
}

func TestExportFailureLeavesNoFile(t *testing.T) {
	client, _ := testClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "export broke", http.StatusInternalServerError)
	})

	dir := t.TempDir()
	_, err := client.Products().ExportPDF(context.Background(), "x", dir)
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("err = %v, want *RequestError", err)
	}
	if _, statErr := os.Stat(filepath.Join(dir, "products-x.pdf")); !os.IsNotExist(statErr) {
		t.Errorf("failed export left a file behind")
	}
}
