package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/yasinhessnawi1/BizCards_Backend/internal/auth"
	"github.com/yasinhessnawi1/BizCards_Backend/internal/models"
)

// envelope mirrors utils.Response with a raw payload
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	return env
}

// newRequest builds a request carrying an optional principal and {id} URL param
func newRequest(t *testing.T, method, target string, body interface{}, principal *models.Principal, id string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")

	ctx := req.Context()
	if principal != nil {
		ctx = auth.WithPrincipal(ctx, principal)
	}
	if id != "" {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", id)
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}

	return req.WithContext(ctx)
}

func registrationBody() map[string]interface{} {
	return map[string]interface{}{
		"name":     map[string]interface{}{"first": "Dana", "last": "Levi"},
		"email":    "dana@example.com",
		"password": "Secret123!",
		"phone":    "0501234567",
		"address": map[string]interface{}{
			"country":     "Israel",
			"city":        "Haifa",
			"street":      "Herzl",
			"houseNumber": 4,
			"zip":         3303000,
		},
	}
}

func cardBody() map[string]interface{} {
	return map[string]interface{}{
		"title":    "Levi Plumbing",
		"subtitle": "Pipes",
		"phone":    "0521234567",
		"email":    "plumbing@example.com",
		"image":    map[string]interface{}{"url": "https://example.com/logo.png", "alt": "logo"},
		"address": map[string]interface{}{
			"country":     "Israel",
			"city":        "Tel Aviv",
			"street":      "Dizengoff",
			"houseNumber": 50,
		},
	}
}
