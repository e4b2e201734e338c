// Package api is the typed client for the inventory backend. One service
// per resource; every call attaches the bearer token from the credential
// store and surfaces non-2xx statuses as *RequestError.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/emkr-13/sim-admin/internal/credential"
	"github.com/emkr-13/sim-admin/internal/models"
)

// Client talks to the backend at a fixed base URL. Authenticated requests
// read the token from the credential store first and fail with
// ErrNoAuthToken before touching the network when none is stored.
type Client struct {
	baseURL string
	httpc   *http.Client
	creds   credential.Store
}

// New creates a client for the backend at baseURL. A trailing slash is
// optional. No timeout is set: a hung request hangs, by contract.
func New(baseURL string, creds credential.Store) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/") + "/",
		httpc:   &http.Client{},
		creds:   creds,
	}
}

// Auth returns the login/logout service.
func (c *Client) Auth() *AuthService { return &AuthService{c: c} }

// User returns the profile service.
func (c *Client) User() *UserService { return &UserService{c: c} }

// Accounts returns the accounts (customers/suppliers) service.
func (c *Client) Accounts() *AccountsService { return &AccountsService{c: c} }

// Categories returns the product categories service.
func (c *Client) Categories() *CategoriesService { return &CategoriesService{c: c} }

// Products returns the products service.
func (c *Client) Products() *ProductsService { return &ProductsService{c: c} }

// Stores returns the stores service.
func (c *Client) Stores() *StoresService { return &StoresService{c: c} }

// StockMovements returns the stock movements service.
func (c *Client) StockMovements() *StockMovementsService { return &StockMovementsService{c: c} }

// Quotations returns the quotations service.
func (c *Client) Quotations() *QuotationsService { return &QuotationsService{c: c} }

// envelope is the uniform {success, message, data} response shape.
type envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// listData is the data block of every list response.
type listData[T any] struct {
	Data       []T                    `json:"data"`
	Pagination *models.PaginationData `json:"pagination"`
}

type idBody struct {
	ID int64 `json:"id"`
}

// ListQuery carries the shared list parameters. Zero values are omitted
// from the query string.
type ListQuery struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
	Search    string
}

func (q ListQuery) values() url.Values {
	v := url.Values{}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.SortBy != "" {
		v.Set("sortBy", q.SortBy)
	}
	if q.SortOrder != "" {
		v.Set("sortOrder", q.SortOrder)
	}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	return v
}

// setFilter adds a resource-specific filter parameter. The empty string
// and the "all" sentinel both mean "no filter" and are omitted.
func setFilter(v url.Values, key, val string) {
	if val != "" && val != "all" {
		v.Set(key, val)
	}
}

// bearer reads the current session, insisting on an access token.
func (c *Client) bearer() (*models.Session, error) {
	sess, err := c.creds.Get()
	if err != nil {
		return nil, err
	}
	if sess == nil || sess.AccessToken == "" {
		return nil, ErrNoAuthToken
	}
	return sess, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body any, authed bool) (*http.Request, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		rd = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		sess, err := c.bearer()
		if err != nil {
			return nil, err
		}
		sess.Token().SetAuthHeader(req)
	}
	return req, nil
}

// do sends the request and decodes a 2xx JSON body into out (out may be
// nil). Any non-2xx status becomes a *RequestError; the body is discarded
// unread.
func (c *Client) do(req *http.Request, resource, op string, out any) error {
	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &RequestError{Resource: resource, Op: op, Status: resp.StatusCode}
	}
	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// getList fetches one page of a resource list.
func getList[T any](ctx context.Context, c *Client, resource, path string, query url.Values) ([]T, *models.PaginationData, error) {
	req, err := c.newRequest(ctx, http.MethodGet, path, query, nil, true)
	if err != nil {
		return nil, nil, err
	}
	var env envelope[listData[T]]
	if err := c.do(req, resource, "getAll", &env); err != nil {
		return nil, nil, err
	}
	return env.Data.Data, env.Data.Pagination, nil
}

// postEntity POSTs body and returns the entity from the response envelope.
func postEntity[T any](ctx context.Context, c *Client, resource, op, path string, body any) (*T, error) {
	req, err := c.newRequest(ctx, http.MethodPost, path, nil, body, true)
	if err != nil {
		return nil, err
	}
	var env envelope[T]
	if err := c.do(req, resource, op, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// download streams a binary export to dest. The partially written file is
// removed when the copy fails. Returns the path written.
func (c *Client) download(ctx context.Context, resource, op, path string, query url.Values, accept, dest string) (string, error) {
	req, err := c.newRequest(ctx, http.MethodGet, path, query, nil, true)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", accept)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &RequestError{Resource: resource, Op: op, Status: resp.StatusCode}
	}

	f, err := os.Create(dest)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		os.Remove(dest)
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(dest)
		return "", err
	}
	return dest, nil
}
