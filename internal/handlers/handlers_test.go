package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-paystack-wallet/internal/models"
	"github.com/stretchr/testify/require"
)

var testPrincipal = &models.Principal{
	UserID: uuid.MustParse("7d9f7a8e-4c55-4a6e-9b0e-3f8e6a2b1c4d"),
	Email:  "ada@example.com",
	Mode:   models.AuthModeFull,
}

func withPrincipal(p *models.Principal) PrincipalGetter {
	return func(context.Context) (*models.Principal, bool) { return p, true }
}

func noPrincipal(context.Context) (*models.Principal, bool) { return nil, false }

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}
