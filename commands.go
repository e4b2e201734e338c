package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/emkr-13/sim-admin/internal/list"
	"github.com/emkr-13/sim-admin/internal/session"
)

func cmdLogin(ctx context.Context, mgr *session.Manager, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	fs.Parse(args)

	if *email == "" || *password == "" {
		return fmt.Errorf("login: -email and -password are required")
	}
	if !mgr.Login(ctx, *email, *password) {
		return fmt.Errorf("login failed")
	}
	fmt.Printf("logged in as %s\n", mgr.User().Email)
	return nil
}

func cmdProfile(ctx context.Context, mgr *session.Manager, args []string) error {
	if len(args) == 0 || args[0] != "edit" {
		return fmt.Errorf("profile: expected `profile edit -fullname <name>`")
	}
	fs := flag.NewFlagSet("profile edit", flag.ExitOnError)
	fullname := fs.String("fullname", "", "new display name")
	fs.Parse(args[1:])

	if err := mgr.Require(ctx); err != nil {
		return err
	}
	profile, err := mgr.UpdateProfile(ctx, *fullname)
	if err != nil {
		return err
	}
	fmt.Printf("profile updated: %s\n", profile.Fullname)
	return nil
}

// listFlags registers the shared list parameters on fs and returns a
// builder for the controller's initial query.
func listFlags(fs *flag.FlagSet, defaultSort string) func() list.Query {
	page := fs.Int("page", 1, "page number")
	limit := fs.Int("limit", 10, "rows per page (5, 10, 20 or 50)")
	sortBy := fs.String("sort", defaultSort, "sort column")
	order := fs.String("order", "asc", "sort order: asc or desc")
	search := fs.String("search", "", "search text")
	return func() list.Query {
		return list.Query{
			Page:      *page,
			Limit:     *limit,
			SortBy:    *sortBy,
			SortOrder: *order,
			Search:    *search,
		}
	}
}

// runList drives one single-shot list fetch through the controller: a
// search flag goes through the submit path, everything else through a
// plain refresh.
func runList[T any](ctx context.Context, ctl *list.Controller[T], searched bool) (list.Snapshot[T], error) {
	var err error
	if searched {
		err = ctl.Search(ctx)
	} else {
		err = ctl.Refresh(ctx)
	}
	if err != nil {
		return list.Snapshot[T]{}, err
	}
	return ctl.Snapshot(), nil
}
