package gusto

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	client "github.com/peteraglen/saas-api-go-client"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c, err := NewWithBaseURL(server.URL, "gusto-token")
	require.NoError(t, err)

	return c
}

func TestNew_RequiresBaseURL(t *testing.T) {
	t.Parallel()

	_, err := NewWithBaseURL("", "token")
	require.ErrorIs(t, err, client.ErrBaseURLRequired)
	assert.Contains(t, err.Error(), "gusto:")
}

func TestNew_DefaultBaseURL(t *testing.T) {
	t.Parallel()

	c, err := New("token")
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, c.HTTP().BaseURL())
}

func TestGarnishments_ListByEmployee(t *testing.T) {
	t.Parallel()

	var path, auth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.EscapedPath()
		auth = r.Header.Get("Authorization")
		w.Header().Set("Link", `<https://api.gusto.com/v1/employees/e1/garnishments?page=2>; rel="next"`)
		_, _ = w.Write([]byte(`[{"id":"g1","employee_id":"emp/1","amount":"8.00","active":true,"times":3}]`))
	})

	garnishments, err := c.Garnishments.ListByEmployee(context.Background(), "emp/1")
	require.NoError(t, err)

	assert.Equal(t, "/v1/employees/emp%2F1/garnishments", path)
	assert.Equal(t, "Bearer gusto-token", auth)
	require.Len(t, garnishments, 1)
	assert.Equal(t, "g1", garnishments[0].ID)
	assert.True(t, garnishments[0].Active)
	require.NotNil(t, garnishments[0].Times)
	assert.Equal(t, int64(3), *garnishments[0].Times)
}

func TestGarnishments_ListAllByEmployee(t *testing.T) {
	t.Parallel()

	var server *httptest.Server
	requests := 0
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		switch r.URL.Query().Get("page") {
		case "":
			w.Header().Set("Link", fmt.Sprintf(`<%s/v1/employees/e1/garnishments?page=2>; rel="next"`, server.URL))
			_, _ = w.Write([]byte(`[{"id":"g1"},{"id":"g2"}]`))
		case "2":
			_, _ = w.Write([]byte(`[{"id":"g3"}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	c, err := NewWithBaseURL(server.URL, "gusto-token")
	require.NoError(t, err)

	garnishments, err := c.Garnishments.ListAllByEmployee(context.Background(), "e1")
	require.NoError(t, err)

	ids := make([]string, 0, len(garnishments))
	for _, g := range garnishments {
		ids = append(ids, g.ID)
	}
	assert.Equal(t, []string{"g1", "g2", "g3"}, ids)
	assert.Equal(t, 2, requests)
}

func TestGarnishments_Create(t *testing.T) {
	t.Parallel()

	var method string
	var body map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &body)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"g9","version":"v1","employee_id":"e1","amount":"150.00","court_ordered":true,"recurring":true}`))
	})

	g, err := c.Garnishments.Create(context.Background(), "e1", &CreateGarnishmentRequest{
		Amount:       "150.00",
		Description:  "Child support",
		CourtOrdered: true,
		Recurring:    client.Ptr(true),
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, method)
	assert.Equal(t, "150.00", body["amount"])
	assert.Equal(t, true, body["recurring"])
	assert.NotContains(t, body, "times")
	assert.Equal(t, "g9", g.ID)
	assert.True(t, g.CourtOrdered)
}

func TestGarnishments_Get(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/garnishments/g1", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":"g1","amount":"5.00","deduct_as_percentage":true,"pay_period_maximum":"100.00"}`))
	})

	g, err := c.Garnishments.Get(context.Background(), "g1")
	require.NoError(t, err)

	assert.True(t, g.DeductAsPercentage)
	require.NotNil(t, g.PayPeriodMaximum)
	assert.Equal(t, "100.00", *g.PayPeriodMaximum)
	assert.Nil(t, g.AnnualMaximum)
}

func TestGarnishments_GetMissingID(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"amount":"5.00"}`))
	})

	_, err := c.Garnishments.Get(context.Background(), "g1")

	var decodeErr *client.DecodeError
	require.True(t, errors.As(err, &decodeErr), "expected DecodeError, got %v", err)
}

func TestGarnishments_GetEmptyBody(t *testing.T) {
	t.Parallel()

	for _, body := range []string{"", "null"} {
		t.Run(fmt.Sprintf("body %q", body), func(t *testing.T) {
			t.Parallel()

			c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(body))
			})

			g, err := c.Garnishments.Get(context.Background(), "g1")

			assert.Nil(t, g)
			var decodeErr *client.DecodeError
			require.True(t, errors.As(err, &decodeErr), "expected DecodeError, got %v", err)
		})
	}
}

func TestGarnishments_UpdateConflict(t *testing.T) {
	t.Parallel()

	var body map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &body)
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"version is stale"}`))
	})

	_, err := c.Garnishments.Update(context.Background(), "g1", &UpdateGarnishmentRequest{
		Version: "stale",
		Active:  client.Ptr(false),
	})

	assert.True(t, client.IsStatus(err, http.StatusConflict))
	assert.Equal(t, "stale", body["version"])
	assert.Equal(t, false, body["active"])
	assert.NotContains(t, body, "amount")
}
