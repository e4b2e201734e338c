// sim-admin is a terminal admin client for the inventory backend:
// login/logout, profile editing, and paginated browsing plus CRUD over
// accounts, categories, products, stores, stock movements and quotations.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/emkr-13/sim-admin/internal/api"
	"github.com/emkr-13/sim-admin/internal/config"
	"github.com/emkr-13/sim-admin/internal/credential"
	"github.com/emkr-13/sim-admin/internal/models"
	"github.com/emkr-13/sim-admin/internal/session"
)

func main() {
	log.SetFlags(0)
	if len(os.Args) < 2 {
		usage(os.Stderr)
		os.Exit(2)
	}

	cfg := config.Load()
	creds, err := credential.OpenSQLite(cfg.CredentialPath)
	if err != nil {
		log.Fatalf("open credential store: %v", err)
	}
	defer creds.Close()

	client := api.New(cfg.BaseURL, creds)
	mgr := session.New(client, creds)
	ctx := context.Background()

	if err := run(ctx, mgr, client, os.Args[1], os.Args[2:]); err != nil {
		if errors.Is(err, session.ErrLoginRequired) {
			fmt.Fprintln(os.Stderr, "not logged in; run `sim-admin login` first")
			os.Exit(1)
		}
		var vErr *api.ValidationError
		if errors.As(err, &vErr) {
			fmt.Fprintln(os.Stderr, vErr)
			os.Exit(1)
		}
		log.Fatal(err)
	}
}

func run(ctx context.Context, mgr *session.Manager, client *api.Client, cmd string, args []string) error {
	switch cmd {
	case "login":
		return cmdLogin(ctx, mgr, args)
	case "logout":
		mgr.Logout(ctx)
		fmt.Println("logged out")
		return nil
	case "whoami":
		return cmdWhoami(ctx, mgr)
	case "profile":
		return cmdProfile(ctx, mgr, args)
	case "accounts":
		return cmdAccounts(ctx, mgr, client, args)
	case "categories":
		return cmdCategories(ctx, mgr, client, args)
	case "products":
		return cmdProducts(ctx, mgr, client, args)
	case "stores":
		return cmdStores(ctx, mgr, client, args)
	case "movements":
		return cmdMovements(ctx, mgr, client, args)
	case "quotations":
		return cmdQuotations(ctx, mgr, client, args)
	case "help", "-h", "--help":
		usage(os.Stdout)
		return nil
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", cmd)
		usage(os.Stderr)
		os.Exit(2)
		return nil
	}
}

func usage(w *os.File) {
	fmt.Fprint(w, `Usage: sim-admin <command> [flags]

Session:
  login      -email -password        sign in and store the session
  logout                             invalidate and clear the session
  whoami                             show the logged-in user
  profile edit -fullname             change the profile name

Resources (all take list flags: -page -limit -sort -order -search):
  accounts   list|detail|create|edit|delete     (-type customer|supplier|all)
  categories list|detail|create|edit|delete
  products   list|detail|create|edit|delete|export  (-category id, export: -format -title -dir)
  stores     list|detail|create|edit|delete
  movements  list|detail                        (-type in|out|all)
  quotations list|detail                        (-status)

Environment: SIM_BASE_URL, SIM_CREDENTIALS_PATH (see .env support).
`)
}

func cmdWhoami(ctx context.Context, mgr *session.Manager) error {
	if err := mgr.Require(ctx); err != nil {
		return err
	}
	u := mgr.User()
	fmt.Printf("email:    %s\nfullname: %s\ncreated:  %s\n", u.Email, u.Fullname, u.UserCreated)
	return nil
}

// printPagination renders the page window the way the dashboard renders
// its controls: every page number in detail[], the current page
// bracketed, and prev/next offered only when the sentinel says the page
// exists.
func printPagination(pg *models.PaginationData) {
	if pg == nil {
		return
	}
	parts := make([]string, 0, len(pg.Detail)+2)
	if pg.HasPrev() {
		parts = append(parts, "<prev")
	}
	for _, p := range pg.Detail {
		if p == pg.Current {
			parts = append(parts, fmt.Sprintf("[%d]", p))
		} else {
			parts = append(parts, strconv.Itoa(p))
		}
	}
	if pg.HasNext() {
		parts = append(parts, "next>")
	}
	fmt.Printf("\npage %d of %d  %s  (%s rows total)\n",
		pg.Current, pg.TotalPage, strings.Join(parts, " "), pg.TotalData)
}

func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
}

func deref(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}
