package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ftxgo/internal/domain/entities"
)

func TestSignRequest(t *testing.T) {
	// Vectors from the exchange's API documentation.
	tests := []struct {
		name   string
		method string
		uri    string
		body   string
		ts     int64
		want   string
	}{
		{
			name:   "get markets",
			method: "GET",
			uri:    "/api/markets",
			ts:     1588591511721,
			want:   "dbc62ec300b2624c580611858d94f2332ac636bb86eccfa1167a7777c496ee6f",
		},
		{
			name:   "place order",
			method: "POST",
			uri:    "/api/orders",
			body:   `{"market": "BTC-PERP", "side": "buy", "price": 8500, "size": 1, "type": "limit", "reduceOnly": false, "ioc": false, "postOnly": false, "clientId": null}`,
			ts:     1588591856950,
			want:   "c4fbabaf178658a59d7bbf57678d44c369382f3da29138f04cd46d3d582ba4ba",
		},
	}

	secret := "T4lPid48QtjNxjLUFOcUZghD7CUJ7sTVsfuvQZF2"
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := signRequest(secret, tt.ts, tt.method, tt.uri, []byte(tt.body))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClient_AuthHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("FTX-KEY"))
		assert.Equal(t, "sub1", r.Header.Get("FTX-SUBACCOUNT"))

		ts, err := strconv.ParseInt(r.Header.Get("FTX-TS"), 10, 64)
		require.NoError(t, err)
		want := signRequest("test-secret", ts, r.Method, r.URL.RequestURI(), nil)
		assert.Equal(t, want, r.Header.Get("FTX-SIGN"))

		_, _ = w.Write([]byte(`{"success":true,"result":[]}`))
	}))
	defer server.Close()

	client := New(Config{Endpoint: server.URL, Key: "test-key", Secret: "test-secret", Subaccount: "sub1"})
	_, err := client.GetBalances(context.Background())
	require.NoError(t, err)
}

func TestClient_NoAuthHeadersWithoutKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("FTX-KEY"))
		assert.Empty(t, r.Header.Get("FTX-SIGN"))
		_, _ = w.Write([]byte(`{"success":true,"result":[]}`))
	}))
	defer server.Close()

	client := New(Config{Endpoint: server.URL})
	_, err := client.GetMarkets(context.Background())
	require.NoError(t, err)
}

func TestClient_GetMarket(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/markets/BTC-PERP", r.URL.Path)
		_, _ = w.Write([]byte(`{"success":true,"result":{
			"name":"BTC-PERP","type":"future","enabled":true,
			"bid":41830.0,"ask":41831.0,"last":41830.5,"price":41830.5,
			"priceIncrement":0.5,"sizeIncrement":0.0001
		}}`))
	}))
	defer server.Close()

	client := New(Config{Endpoint: server.URL})
	market, err := client.GetMarket(context.Background(), "BTC-PERP")
	require.NoError(t, err)

	assert.Equal(t, "BTC-PERP", market.Name)
	assert.Equal(t, MarketTypeFuture, market.Type)
	assert.True(t, market.Enabled)
	assert.Equal(t, "41830.5", market.Price.String())
}

func TestClient_GetTrades(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/markets/BTC-PERP/trades", r.URL.Path)
		assert.Equal(t, "100", r.URL.Query().Get("limit"))
		assert.Equal(t, "1644400000", r.URL.Query().Get("end_time"))
		_, _ = w.Write([]byte(`{"success":true,"result":[
			{"id":2,"price":"41834.5","size":"0.01","side":"sell","liquidation":false,"time":"2022-02-09T13:45:24+00:00"},
			{"id":1,"price":"41834.0","size":"0.006","side":"buy","liquidation":false,"time":"2022-02-09T13:45:23+00:00"}
		]}`))
	}))
	defer server.Close()

	client := New(Config{Endpoint: server.URL})
	trades, err := client.GetTrades(context.Background(), "BTC-PERP", 100, time.Time{}, time.Unix(1644400000, 0))
	require.NoError(t, err)

	require.Len(t, trades, 2)
	assert.Equal(t, int64(2), trades[0].ID)
	assert.Equal(t, entities.SideSell, trades[0].Side)
	require.NoError(t, trades[0].Validate())
}

func TestClient_PlaceOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/orders", r.URL.Path)

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "BTC-PERP", req["market"])
		assert.Equal(t, "limit", req["type"])

		_, _ = w.Write([]byte(`{"success":true,"result":{
			"id":9596912,"market":"BTC-PERP","type":"limit","side":"buy",
			"price":8500,"size":1,"status":"new",
			"filledSize":0,"remainingSize":1,
			"createdAt":"2020-05-04T10:51:56.000000+00:00"
		}}`))
	}))
	defer server.Close()

	price := decimal.NewFromInt(8500)
	client := New(Config{Endpoint: server.URL, Key: "k", Secret: "s"})
	order, err := client.PlaceOrder(context.Background(), PlaceOrderRequest{
		Market: "BTC-PERP",
		Side:   entities.SideBuy,
		Type:   entities.OrderTypeLimit,
		Price:  &price,
		Size:   decimal.NewFromInt(1),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(9596912), order.ID)
	assert.Equal(t, entities.OrderStatusNew, order.Status)
}

func TestClient_ErrorEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"success":false,"error":"Not logged in"}`))
	}))
	defer server.Close()

	client := New(Config{Endpoint: server.URL})
	_, err := client.GetBalances(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Not logged in", apiErr.Message)
}
