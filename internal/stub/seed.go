package stub

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/emkr-13/sim-admin/internal/models"
)

func strPtr(s string) *string { return &s }

func i64Ptr(v int64) *int64 { return &v }

// seed loads the demo dataset. Quantities are chosen so list screens have
// more than one page at the default limit.
func (s *Server) seed() {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("stub: seed password hash: %v", err))
	}
	s.users["admin@mail.com"] = &user{
		Email:        "admin@mail.com",
		Fullname:     "Admin",
		PasswordHash: hash,
		CreatedAt:    time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC),
	}

	stamp := func(day int) string {
		return time.Date(2025, 3, day, 10, 0, 0, 0, time.UTC).Format(time.RFC3339)
	}

	accountNames := []struct {
		name string
		typ  models.AccountType
	}{
		{"Andi Wijaya", models.AccountTypeCustomer},
		{"Budi Santoso", models.AccountTypeCustomer},
		{"Citra Lestari", models.AccountTypeCustomer},
		{"Dewi Anggraini", models.AccountTypeCustomer},
		{"Eko Prasetyo", models.AccountTypeCustomer},
		{"Fajar Nugroho", models.AccountTypeCustomer},
		{"Gita Permata", models.AccountTypeCustomer},
		{"PT Sumber Makmur", models.AccountTypeSupplier},
		{"CV Mitra Jaya", models.AccountTypeSupplier},
		{"UD Berkah Abadi", models.AccountTypeSupplier},
		{"PT Cahaya Baru", models.AccountTypeSupplier},
		{"Toko Sejahtera", models.AccountTypeSupplier},
	}
	for i, a := range accountNames {
		s.accounts = append(s.accounts, &models.Account{
			ID:        s.allocID(),
			Name:      a.name,
			Phone:     fmt.Sprintf("0812345678%02d", i),
			Email:     fmt.Sprintf("contact%d@mail.com", i+1),
			Address:   fmt.Sprintf("Jl. Merdeka No. %d, Jakarta", i+1),
			Type:      a.typ,
			CreatedAt: stamp(i + 1),
			UpdatedAt: stamp(i + 1),
		})
	}

	categoryNames := []string{"Beverages", "Snacks", "Household", "Electronics"}
	categoryIDs := make([]int64, 0, len(categoryNames))
	for i, name := range categoryNames {
		id := s.allocID()
		categoryIDs = append(categoryIDs, id)
		s.categories = append(s.categories, &models.Category{
			ID:          id,
			Name:        name,
			Description: name + " assortment",
			CreatedAt:   stamp(i + 1),
			UpdatedAt:   stamp(i + 1),
		})
	}

	productNames := []string{
		"Mineral Water 600ml", "Green Tea Bottle", "Potato Chips",
		"Chocolate Wafer", "Dish Soap", "Laundry Detergent",
		"LED Bulb 9W", "Power Strip", "Instant Coffee", "Peanut Crackers",
		"Floor Cleaner", "Battery AA 4-pack",
	}
	for i, name := range productNames {
		catIdx := i % len(categoryNames)
		id := s.allocID()
		s.products = append(s.products, &models.Product{
			ID:           id,
			Name:         name,
			Description:  name,
			SKU:          fmt.Sprintf("SKU-%05d", id),
			Stock:        20 + i*5,
			Satuan:       "pcs",
			CategoryID:   categoryIDs[catIdx],
			CategoryName: categoryNames[catIdx],
			PriceSell:    fmt.Sprintf("%d.00", 5000+i*1500),
			PriceCost:    fmt.Sprintf("%d.00", 3500+i*1000),
			CreatedAt:    stamp(i + 2),
			UpdatedAt:    stamp(i + 2),
		})
	}

	storeSeeds := []struct{ name, location string }{
		{"Gudang Pusat", "Jakarta"},
		{"Cabang Bandung", "Bandung"},
		{"Cabang Surabaya", "Surabaya"},
	}
	for i, st := range storeSeeds {
		s.stores = append(s.stores, &models.Store{
			ID:          s.allocID(),
			Name:        st.name,
			Description: "Retail branch",
			Location:    st.location,
			Manager:     fmt.Sprintf("Manager %d", i+1),
			Phone:       strPtr(fmt.Sprintf("02155500%02d", i+1)),
			Email:       strPtr(fmt.Sprintf("store%d@mail.com", i+1)),
			Address:     fmt.Sprintf("Jl. Raya No. %d", i+10),
			CreatedAt:   stamp(i + 1),
			UpdatedAt:   stamp(i + 1),
		})
	}

	for i := 0; i < 8; i++ {
		p := s.products[i%len(s.products)]
		st := s.stores[i%len(s.stores)]
		typ := models.MovementIn
		var akunID *int64
		var akunName *string
		if i%2 == 1 {
			typ = models.MovementOut
			cust := s.accounts[i%7]
			akunID, akunName = i64Ptr(cust.ID), strPtr(cust.Name)
		} else {
			sup := s.accounts[7+i%5]
			akunID, akunName = i64Ptr(sup.ID), strPtr(sup.Name)
		}
		s.movements = append(s.movements, &models.StockMovement{
			ID:            s.allocID(),
			ProductID:     p.ID,
			ProductName:   p.Name,
			ProductSKU:    p.SKU,
			ProductSatuan: p.Satuan,
			MovementType:  typ,
			Quantity:      5 + i,
			Note:          fmt.Sprintf("movement %d", i+1),
			AkunID:        akunID,
			AkunName:      akunName,
			StoreID:       st.ID,
			StoreName:     st.Name,
			CreatedAt:     stamp(i + 5),
			UpdatedAt:     stamp(i + 5),
		})
	}

	statuses := []string{"draft", "sent", "accepted"}
	for i, status := range statuses {
		cust := s.accounts[i]
		st := s.stores[i%len(s.stores)]
		quoID := s.allocID()
		p1 := s.products[i]
		p2 := s.products[i+3]
		s.quotations = append(s.quotations, &models.Quotation{
			ID:              quoID,
			QuotationNumber: fmt.Sprintf("QUO-2025-%03d", i+1),
			QuotationDate:   stamp(i + 10),
			CustomerID:      i64Ptr(cust.ID),
			CustomerName:    strPtr(cust.Name),
			StoreID:         i64Ptr(st.ID),
			StoreName:       strPtr(st.Name),
			Subtotal:        "150000.00",
			DiscountAmount:  "5000.00",
			GrandTotal:      "145000.00",
			Status:          status,
			CreatedAt:       stamp(i + 10),
			UpdatedAt:       stamp(i + 10),
			Details: []models.QuotationLine{
				{
					ID:          s.allocID(),
					ProductID:   p1.ID,
					ProductName: p1.Name,
					Quantity:    10,
					UnitPrice:   p1.PriceSell,
					Satuan:      p1.Satuan,
					Discount:    "0.00",
					Subtotal:    "100000.00",
				},
				{
					ID:          s.allocID(),
					ProductID:   p2.ID,
					ProductName: p2.Name,
					Quantity:    5,
					UnitPrice:   p2.PriceSell,
					Satuan:      p2.Satuan,
					Discount:    "5000.00",
					Subtotal:    "50000.00",
				},
			},
		})
	}
}
