package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"

	"github.com/emkr-13/sim-admin/internal/credential"
	"github.com/emkr-13/sim-admin/internal/models"
)

// testClient points a Client at handler. When token is non-empty the
// credential store is pre-loaded with it. hits counts requests that
// reached the server.
func testClient(t *testing.T, token string, handler http.HandlerFunc) (*Client, *int64) {
	t.Helper()
	var hits int64
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&hits, 1)
		handler(w, r)
	}))
	t.Cleanup(ts.Close)

	creds := &credential.Memory{}
	if token != "" {
		if err := creds.Set(&models.Session{AccessToken: token}); err != nil {
			t.Fatalf("seed credentials: %v", err)
		}
	}
	return New(ts.URL, creds), &hits
}

func writeJSON(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(body))
}

func decodeJSONBody(t *testing.T, r *http.Request, out any) {
	t.Helper()
	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		t.Fatalf("decode request body: %v", err)
	}
}

func TestAuthedCallWithoutTokenStaysLocal(t *testing.T) {
	client, hits := testClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `{"success":true,"message":"ok","data":{}}`)
	})

	_, err := client.User().Profile(context.Background())
	if !errors.Is(err, ErrNoAuthToken) {
		t.Fatalf("err = %v, want ErrNoAuthToken", err)
	}
	if n := atomic.LoadInt64(hits); n != 0 {
		t.Errorf("server saw %d requests, want 0", n)
	}
}

func TestBearerHeaderAttached(t *testing.T) {
	var gotAuth string
	client, _ := testClient(t, "tok-123", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		writeJSON(w, `{"success":true,"message":"ok","data":{"email":"a@b.co","fullname":"A","usercreated":""}}`)
	})

	if _, err := client.User().Profile(context.Background()); err != nil {
		t.Fatalf("Profile: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Errorf("Authorization = %q, want \"Bearer tok-123\"", gotAuth)
	}
}

func TestAllFilterOmittedFromQuery(t *testing.T) {
	var gotQuery string
	client, _ := testClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		writeJSON(w, `{"success":true,"message":"ok","data":{"data":[],"pagination":null}}`)
	})
	ctx := context.Background()

	_, _, err := client.Accounts().GetAll(ctx, AccountQuery{
		ListQuery: ListQuery{Page: 1, Limit: 10},
		Type:      "all",
	})
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	q, err := url.ParseQuery(gotQuery)
	if err != nil {
		t.Fatalf("parse query %q: %v", gotQuery, err)
	}
	if q.Has("type") {
		t.Errorf("type=all leaked into the query string: %q", gotQuery)
	}
	if q.Get("page") != "1" || q.Get("limit") != "10" {
		t.Errorf("page/limit missing from query string: %q", gotQuery)
	}

	_, _, err = client.Accounts().GetAll(ctx, AccountQuery{
		ListQuery: ListQuery{Page: 2, Limit: 5, SortBy: "name", SortOrder: "desc", Search: "budi"},
		Type:      "customer",
	})
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	q, err = url.ParseQuery(gotQuery)
	if err != nil {
		t.Fatalf("parse query %q: %v", gotQuery, err)
	}
	if q.Get("type") != "customer" {
		t.Errorf("type = %q, want customer", q.Get("type"))
	}
	for key, want := range map[string]string{
		"page": "2", "limit": "5", "sortBy": "name", "sortOrder": "desc", "search": "budi",
	} {
		if got := q.Get(key); got != want {
			t.Errorf("%s = %q, want %q", key, got, want)
		}
	}
}

func TestNon2xxBecomesRequestError(t *testing.T) {
	client, _ := testClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, _, err := client.Categories().GetAll(context.Background(), CategoryQuery{})
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("err = %v, want *RequestError", err)
	}
	if reqErr.Resource != "categories" || reqErr.Op != "getAll" || reqErr.Status != http.StatusInternalServerError {
		t.Errorf("RequestError = %+v", reqErr)
	}
}

func TestLoginRejection(t *testing.T) {
	client, _ := testClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `{"success":false,"message":"wrong password","data":{}}`)
	})

	_, err := client.Auth().Login(context.Background(), "a@b.co", "nope")
	if !errors.Is(err, ErrLoginFailed) {
		t.Fatalf("err = %v, want ErrLoginFailed", err)
	}
}

func TestLoginEmptyTokenIsFailure(t *testing.T) {
	// a 2xx envelope claiming success but granting no token is still a
	// failed login
	client, _ := testClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `{"success":true,"message":"ok","data":{"token":"","refreshToken":""}}`)
	})

	_, err := client.Auth().Login(context.Background(), "a@b.co", "pw")
	if !errors.Is(err, ErrLoginFailed) {
		t.Fatalf("err = %v, want ErrLoginFailed", err)
	}
}

func TestLoginSendsCredentials(t *testing.T) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	client, _ := testClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&body)
		writeJSON(w, `{"success":true,"message":"ok","data":{"token":"T","refreshToken":"R"}}`)
	})

	res, err := client.Auth().Login(context.Background(), "admin@mail.com", "password123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if res.Token != "T" || res.RefreshToken != "R" {
		t.Errorf("result = %+v", res)
	}
	if body.Email != "admin@mail.com" || body.Password != "password123" {
		t.Errorf("request body = %+v", body)
	}
}

func TestListQueryOmitsZeroValues(t *testing.T) {
	v := ListQuery{}.values()
	if len(v) != 0 {
		t.Errorf("zero query produced parameters: %v", v)
	}
	v = ListQuery{Page: 3, Search: "x"}.values()
	if v.Get("page") != "3" || v.Get("search") != "x" {
		t.Errorf("values = %v", v)
	}
	if v.Has("limit") || v.Has("sortBy") || v.Has("sortOrder") {
		t.Errorf("zero fields leaked: %v", v)
	}
}
