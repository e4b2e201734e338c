package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/emkr-13/sim-admin/internal/api"
	"github.com/emkr-13/sim-admin/internal/list"
	"github.com/emkr-13/sim-admin/internal/models"
	"github.com/emkr-13/sim-admin/internal/session"
)

// wireQuery maps controller state onto shared wire parameters.
func wireQuery(q list.Query) api.ListQuery {
	return api.ListQuery{
		Page:      q.Page,
		Limit:     q.Limit,
		SortBy:    q.SortBy,
		SortOrder: q.SortOrder,
		Search:    q.Search,
	}
}

func cmdAccounts(ctx context.Context, mgr *session.Manager, client *api.Client, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("accounts: expected list|detail|create|edit|delete")
	}
	if err := mgr.Require(ctx); err != nil {
		return err
	}
	sub, rest := args[0], args[1:]

	switch sub {
	case "list":
		fs := flag.NewFlagSet("accounts list", flag.ExitOnError)
		query := listFlags(fs, "name")
		typ := fs.String("type", "all", "filter: customer, supplier or all")
		fs.Parse(rest)

		q := query()
		q.Filter = *typ
		ctl := list.NewController(func(ctx context.Context, q list.Query) ([]models.Account, *models.PaginationData, error) {
			return client.Accounts().GetAll(ctx, api.AccountQuery{ListQuery: wireQuery(q), Type: q.Filter})
		}, q)
		snap, err := runList(ctx, ctl, q.Search != "")
		if err != nil {
			return err
		}

		w := newTable()
		fmt.Fprintln(w, "ID\tNAME\tTYPE\tPHONE\tEMAIL\tADDRESS")
		for _, a := range snap.Items {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n", a.ID, a.Name, a.Type, a.Phone, a.Email, a.Address)
		}
		w.Flush()
		printPagination(snap.Pagination)
		return nil

	case "detail":
		fs := flag.NewFlagSet("accounts detail", flag.ExitOnError)
		id := fs.Int64("id", 0, "account id")
		fs.Parse(rest)
		a, err := client.Accounts().Detail(ctx, *id)
		if err != nil {
			return err
		}
		fmt.Printf("id:      %d\nname:    %s\ntype:    %s\nphone:   %s\nemail:   %s\naddress: %s\ncreated: %s\n",
			a.ID, a.Name, a.Type, a.Phone, a.Email, a.Address, a.CreatedAt)
		return nil

	case "create", "edit":
		fs := flag.NewFlagSet("accounts "+sub, flag.ExitOnError)
		id := fs.Int64("id", 0, "account id (edit only)")
		name := fs.String("name", "", "contact name")
		phone := fs.String("phone", "", "phone number")
		email := fs.String("email", "", "email address")
		address := fs.String("address", "", "street address")
		typ := fs.String("type", "customer", "customer or supplier")
		fs.Parse(rest)

		payload := api.AccountPayload{
			Name:    *name,
			Phone:   *phone,
			Email:   *email,
			Address: *address,
			Type:    models.AccountType(*typ),
		}
		if sub == "create" {
			a, err := client.Accounts().Create(ctx, payload)
			if err != nil {
				return err
			}
			fmt.Printf("account %d created\n", a.ID)
			return nil
		}
		a, err := client.Accounts().Update(ctx, *id, payload)
		if err != nil {
			return err
		}
		fmt.Printf("account %d updated\n", a.ID)
		return nil

	case "delete":
		fs := flag.NewFlagSet("accounts delete", flag.ExitOnError)
		id := fs.Int64("id", 0, "account id")
		fs.Parse(rest)
		if err := client.Accounts().Delete(ctx, *id); err != nil {
			return err
		}
		fmt.Printf("account %d deleted\n", *id)
		return nil

	default:
		return fmt.Errorf("accounts: unknown subcommand %q", sub)
	}
}

func cmdCategories(ctx context.Context, mgr *session.Manager, client *api.Client, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("categories: expected list|detail|create|edit|delete")
	}
	if err := mgr.Require(ctx); err != nil {
		return err
	}
	sub, rest := args[0], args[1:]

	switch sub {
	case "list":
		fs := flag.NewFlagSet("categories list", flag.ExitOnError)
		query := listFlags(fs, "name")
		fs.Parse(rest)

		q := query()
		ctl := list.NewController(func(ctx context.Context, q list.Query) ([]models.Category, *models.PaginationData, error) {
			return client.Categories().GetAll(ctx, api.CategoryQuery{ListQuery: wireQuery(q)})
		}, q)
		snap, err := runList(ctx, ctl, q.Search != "")
		if err != nil {
			return err
		}

		w := newTable()
		fmt.Fprintln(w, "ID\tNAME\tDESCRIPTION")
		for _, cat := range snap.Items {
			fmt.Fprintf(w, "%d\t%s\t%s\n", cat.ID, cat.Name, cat.Description)
		}
		w.Flush()
		printPagination(snap.Pagination)
		return nil

	case "detail":
		fs := flag.NewFlagSet("categories detail", flag.ExitOnError)
		id := fs.Int64("id", 0, "category id")
		fs.Parse(rest)
		cat, err := client.Categories().Detail(ctx, *id)
		if err != nil {
			return err
		}
		fmt.Printf("id:          %d\nname:        %s\ndescription: %s\ncreated:     %s\n",
			cat.ID, cat.Name, cat.Description, cat.CreatedAt)
		return nil

	case "create", "edit":
		fs := flag.NewFlagSet("categories "+sub, flag.ExitOnError)
		id := fs.Int64("id", 0, "category id (edit only)")
		name := fs.String("name", "", "category name")
		description := fs.String("description", "", "description")
		fs.Parse(rest)

		payload := api.CategoryPayload{Name: *name, Description: *description}
		if sub == "create" {
			cat, err := client.Categories().Create(ctx, payload)
			if err != nil {
				return err
			}
			fmt.Printf("category %d created\n", cat.ID)
			return nil
		}
		cat, err := client.Categories().Update(ctx, *id, payload)
		if err != nil {
			return err
		}
		fmt.Printf("category %d updated\n", cat.ID)
		return nil

	case "delete":
		fs := flag.NewFlagSet("categories delete", flag.ExitOnError)
		id := fs.Int64("id", 0, "category id")
		fs.Parse(rest)
		if err := client.Categories().Delete(ctx, *id); err != nil {
			return err
		}
		fmt.Printf("category %d deleted\n", *id)
		return nil

	default:
		return fmt.Errorf("categories: unknown subcommand %q", sub)
	}
}

func cmdProducts(ctx context.Context, mgr *session.Manager, client *api.Client, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("products: expected list|detail|create|edit|delete|export")
	}
	if err := mgr.Require(ctx); err != nil {
		return err
	}
	sub, rest := args[0], args[1:]

	switch sub {
	case "list":
		fs := flag.NewFlagSet("products list", flag.ExitOnError)
		query := listFlags(fs, "name")
		category := fs.Int64("category", 0, "filter by category id")
		fs.Parse(rest)

		q := query()
		ctl := list.NewController(func(ctx context.Context, q list.Query) ([]models.Product, *models.PaginationData, error) {
			return client.Products().GetAll(ctx, api.ProductQuery{ListQuery: wireQuery(q), CategoryID: *category})
		}, q)
		snap, err := runList(ctx, ctl, q.Search != "")
		if err != nil {
			return err
		}

		w := newTable()
		fmt.Fprintln(w, "ID\tSKU\tNAME\tCATEGORY\tSTOCK\tPRICE")
		for _, p := range snap.Items {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d %s\t%s\n", p.ID, p.SKU, p.Name, p.CategoryName, p.Stock, p.Satuan, p.PriceSell)
		}
		w.Flush()
		printPagination(snap.Pagination)
		return nil

	case "detail":
		fs := flag.NewFlagSet("products detail", flag.ExitOnError)
		id := fs.Int64("id", 0, "product id")
		fs.Parse(rest)
		p, err := client.Products().Detail(ctx, *id)
		if err != nil {
			return err
		}
		fmt.Printf("id:       %d\nsku:      %s\nname:     %s\ncategory: %s\nstock:    %d %s\nprice:    %s\ncost:     %s\n",
			p.ID, p.SKU, p.Name, p.CategoryName, p.Stock, p.Satuan, p.PriceSell, p.PriceCost)
		return nil

	case "create", "edit":
		fs := flag.NewFlagSet("products "+sub, flag.ExitOnError)
		id := fs.Int64("id", 0, "product id (edit only)")
		name := fs.String("name", "", "product name")
		description := fs.String("description", "", "description")
		category := fs.Int64("category", 0, "category id")
		price := fs.Float64("price", 0, "selling price")
		satuan := fs.String("satuan", "pcs", "unit of measure")
		fs.Parse(rest)

		payload := api.ProductPayload{
			Name:        *name,
			Description: *description,
			CategoryID:  *category,
			Price:       *price,
			Satuan:      *satuan,
		}
		if sub == "create" {
			p, err := client.Products().Create(ctx, payload)
			if err != nil {
				return err
			}
			fmt.Printf("product %d created (%s)\n", p.ID, p.SKU)
			return nil
		}
		p, err := client.Products().Update(ctx, *id, payload)
		if err != nil {
			return err
		}
		fmt.Printf("product %d updated\n", p.ID)
		return nil

	case "delete":
		fs := flag.NewFlagSet("products delete", flag.ExitOnError)
		id := fs.Int64("id", 0, "product id")
		fs.Parse(rest)
		if err := client.Products().Delete(ctx, *id); err != nil {
			return err
		}
		fmt.Printf("product %d deleted\n", *id)
		return nil

	case "export":
		fs := flag.NewFlagSet("products export", flag.ExitOnError)
		format := fs.String("format", "pdf", "pdf or excel")
		title := fs.String("title", "products", "export title, used in the file name")
		dir := fs.String("dir", ".", "destination directory")
		fs.Parse(rest)

		var path string
		var err error
		switch *format {
		case "pdf":
			path, err = client.Products().ExportPDF(ctx, *title, *dir)
		case "excel", "xlsx":
			path, err = client.Products().ExportExcel(ctx, *title, *dir)
		default:
			return fmt.Errorf("products export: unknown format %q", *format)
		}
		if err != nil {
			return err
		}
		fmt.Printf("exported to %s\n", path)
		return nil

	default:
		return fmt.Errorf("products: unknown subcommand %q", sub)
	}
}

func cmdStores(ctx context.Context, mgr *session.Manager, client *api.Client, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("stores: expected list|detail|create|edit|delete")
	}
	if err := mgr.Require(ctx); err != nil {
		return err
	}
	sub, rest := args[0], args[1:]

	switch sub {
	case "list":
		fs := flag.NewFlagSet("stores list", flag.ExitOnError)
		query := listFlags(fs, "name")
		fs.Parse(rest)

		q := query()
		ctl := list.NewController(func(ctx context.Context, q list.Query) ([]models.Store, *models.PaginationData, error) {
			return client.Stores().GetAll(ctx, api.StoreQuery{ListQuery: wireQuery(q)})
		}, q)
		snap, err := runList(ctx, ctl, q.Search != "")
		if err != nil {
			return err
		}

		w := newTable()
		fmt.Fprintln(w, "ID\tNAME\tLOCATION\tMANAGER\tPHONE")
		for _, st := range snap.Items {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", st.ID, st.Name, st.Location, st.Manager, deref(st.Phone))
		}
		w.Flush()
		printPagination(snap.Pagination)
		return nil

	case "detail":
		fs := flag.NewFlagSet("stores detail", flag.ExitOnError)
		id := fs.Int64("id", 0, "store id")
		fs.Parse(rest)
		st, err := client.Stores().Detail(ctx, *id)
		if err != nil {
			return err
		}
		fmt.Printf("id:       %d\nname:     %s\nlocation: %s\nmanager:  %s\nphone:    %s\nemail:    %s\naddress:  %s\n",
			st.ID, st.Name, st.Location, st.Manager, deref(st.Phone), deref(st.Email), st.Address)
		return nil

	case "create", "edit":
		fs := flag.NewFlagSet("stores "+sub, flag.ExitOnError)
		id := fs.Int64("id", 0, "store id (edit only)")
		name := fs.String("name", "", "store name")
		description := fs.String("description", "", "description")
		location := fs.String("location", "", "city or region")
		manager := fs.String("manager", "", "manager name")
		phone := fs.String("phone", "", "phone number")
		email := fs.String("email", "", "email address")
		address := fs.String("address", "", "street address")
		fs.Parse(rest)

		payload := api.StorePayload{
			Name:        *name,
			Description: *description,
			Location:    *location,
			Manager:     *manager,
			Address:     *address,
		}
		if *phone != "" {
			payload.Phone = phone
		}
		if *email != "" {
			payload.Email = email
		}
		if sub == "create" {
			st, err := client.Stores().Create(ctx, payload)
			if err != nil {
				return err
			}
			fmt.Printf("store %d created\n", st.ID)
			return nil
		}
		st, err := client.Stores().Update(ctx, *id, payload)
		if err != nil {
			return err
		}
		fmt.Printf("store %d updated\n", st.ID)
		return nil

	case "delete":
		fs := flag.NewFlagSet("stores delete", flag.ExitOnError)
		id := fs.Int64("id", 0, "store id")
		fs.Parse(rest)
		if err := client.Stores().Delete(ctx, *id); err != nil {
			return err
		}
		fmt.Printf("store %d deleted\n", *id)
		return nil

	default:
		return fmt.Errorf("stores: unknown subcommand %q", sub)
	}
}

func cmdMovements(ctx context.Context, mgr *session.Manager, client *api.Client, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("movements: expected list|detail")
	}
	if err := mgr.Require(ctx); err != nil {
		return err
	}
	sub, rest := args[0], args[1:]

	switch sub {
	case "list":
		fs := flag.NewFlagSet("movements list", flag.ExitOnError)
		query := listFlags(fs, "createdAt")
		typ := fs.String("type", "all", "filter: in, out or all")
		fs.Parse(rest)

		q := query()
		q.Filter = *typ
		ctl := list.NewController(func(ctx context.Context, q list.Query) ([]models.StockMovement, *models.PaginationData, error) {
			return client.StockMovements().GetAll(ctx, api.StockMovementQuery{ListQuery: wireQuery(q), MovementType: q.Filter})
		}, q)
		snap, err := runList(ctx, ctl, q.Search != "")
		if err != nil {
			return err
		}

		w := newTable()
		fmt.Fprintln(w, "ID\tPRODUCT\tTYPE\tQTY\tSTORE\tACCOUNT\tDATE")
		for _, m := range snap.Items {
			fmt.Fprintf(w, "%d\t%s\t%s\t%d %s\t%s\t%s\t%s\n",
				m.ID, m.ProductName, m.MovementType, m.Quantity, m.ProductSatuan, m.StoreName, deref(m.AkunName), m.CreatedAt)
		}
		w.Flush()
		printPagination(snap.Pagination)
		return nil

	case "detail":
		fs := flag.NewFlagSet("movements detail", flag.ExitOnError)
		id := fs.Int64("id", 0, "movement id")
		fs.Parse(rest)
		m, err := client.StockMovements().Detail(ctx, *id)
		if err != nil {
			return err
		}
		fmt.Printf("id:      %d\nproduct: %s (%s)\ntype:    %s\nqty:     %d %s\nstore:   %s\naccount: %s\nnote:    %s\n",
			m.ID, m.ProductName, m.ProductSKU, m.MovementType, m.Quantity, m.ProductSatuan, m.StoreName, deref(m.AkunName), m.Note)
		return nil

	default:
		return fmt.Errorf("movements: unknown subcommand %q", sub)
	}
}

func cmdQuotations(ctx context.Context, mgr *session.Manager, client *api.Client, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("quotations: expected list|detail")
	}
	if err := mgr.Require(ctx); err != nil {
		return err
	}
	sub, rest := args[0], args[1:]

	switch sub {
	case "list":
		fs := flag.NewFlagSet("quotations list", flag.ExitOnError)
		query := listFlags(fs, "quotationDate")
		status := fs.String("status", "all", "filter by quote status")
		fs.Parse(rest)

		q := query()
		q.Filter = *status
		ctl := list.NewController(func(ctx context.Context, q list.Query) ([]models.Quotation, *models.PaginationData, error) {
			return client.Quotations().GetAll(ctx, api.QuotationQuery{ListQuery: wireQuery(q), Status: q.Filter})
		}, q)
		snap, err := runList(ctx, ctl, q.Search != "")
		if err != nil {
			return err
		}

		w := newTable()
		fmt.Fprintln(w, "ID\tNUMBER\tDATE\tCUSTOMER\tSTORE\tTOTAL\tSTATUS")
		for _, quo := range snap.Items {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
				quo.ID, quo.QuotationNumber, quo.QuotationDate, deref(quo.CustomerName), deref(quo.StoreName), quo.GrandTotal, quo.Status)
		}
		w.Flush()
		printPagination(snap.Pagination)
		return nil

	case "detail":
		fs := flag.NewFlagSet("quotations detail", flag.ExitOnError)
		id := fs.Int64("id", 0, "quotation id")
		fs.Parse(rest)
		quo, err := client.Quotations().Detail(ctx, *id)
		if err != nil {
			return err
		}
		fmt.Printf("number:   %s\ndate:     %s\ncustomer: %s\nstore:    %s\nstatus:   %s\nsubtotal: %s\ndiscount: %s\ntotal:    %s\n",
			quo.QuotationNumber, quo.QuotationDate, deref(quo.CustomerName), deref(quo.StoreName),
			quo.Status, quo.Subtotal, quo.DiscountAmount, quo.GrandTotal)
		w := newTable()
		fmt.Fprintln(w, "\nPRODUCT\tQTY\tUNIT PRICE\tDISCOUNT\tSUBTOTAL")
		for _, line := range quo.Details {
			fmt.Fprintf(w, "%s\t%d %s\t%s\t%s\t%s\n",
				line.ProductName, line.Quantity, line.Satuan, line.UnitPrice, line.Discount, line.Subtotal)
		}
		w.Flush()
		return nil

	default:
		return fmt.Errorf("quotations: unknown subcommand %q", sub)
	}
}
