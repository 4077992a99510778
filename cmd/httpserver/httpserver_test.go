package httpserver_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/internal/integrationtest"
)

type envelope struct {
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Warning string          `json:"warning"`
}

func do(t *testing.T, env integrationtest.Env, method, url string, body any) (int, envelope) {
	t.Helper()

	var reader *bytes.Reader

	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)

		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	request, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)

	recorder := httptest.NewRecorder()
	env.Server.ServeHTTP(recorder, request)

	var res envelope
	if recorder.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))
	}

	return recorder.Code, res
}

func createAccount(t *testing.T, env integrationtest.Env, name string, typ domain.AccountType) domain.Account {
	t.Helper()

	code, res := do(t, env, http.MethodPost, "/accounts", gin.H{"name": name, "type": typ})
	require.Equal(t, http.StatusOK, code, res.Error)

	var payload struct {
		Account domain.Account `json:"account"`
	}
	require.NoError(t, json.Unmarshal(res.Data, &payload))

	return payload.Account
}

func requireBalance(t *testing.T, env integrationtest.Env, id, want string) {
	t.Helper()

	code, res := do(t, env, http.MethodGet, "/accounts/"+id, nil)
	require.Equal(t, http.StatusOK, code)

	var payload struct {
		Account domain.Account `json:"account"`
	}
	require.NoError(t, json.Unmarshal(res.Data, &payload))
	require.Truef(t, decimal.RequireFromString(want).Equal(payload.Account.Balance),
		"balance of %s: want %s, got %s", id, want, payload.Account.Balance)
}

func TestTransferRoundTrip(t *testing.T) {
	env := integrationtest.SetupServer(t, integrationtest.Options())

	checking := createAccount(t, env, "My Checking", domain.Checking)
	investment := createAccount(t, env, "My Investment", domain.Investment)

	code, res := do(t, env, http.MethodPost, "/transfers", gin.H{
		"date":              "2024-03-05",
		"source_account_id": checking.ID,
		"recipients":        []gin.H{{"account_id": investment.ID, "amount": "100"}},
	})
	require.Equal(t, http.StatusOK, code, res.Error)

	var created struct {
		Transfer domain.Transfer `json:"transfer"`
	}
	require.NoError(t, json.Unmarshal(res.Data, &created))
	require.Equal(t, 12, created.Transfer.Term)

	requireBalance(t, env, checking.ID, "-105")
	requireBalance(t, env, investment.ID, "105")

	code, res = do(t, env, http.MethodGet, "/accounts/"+investment.ID+"/transfers", nil)
	require.Equal(t, http.StatusOK, code)
	require.Contains(t, string(res.Data), created.Transfer.ID)

	code, res = do(t, env, http.MethodGet, "/dashboard/volumes", nil)
	require.Equal(t, http.StatusOK, code)
	require.Contains(t, string(res.Data), `"Mar"`)

	code, _ = do(t, env, http.MethodDelete, "/transfers/"+created.Transfer.ID, nil)
	require.Equal(t, http.StatusOK, code)

	code, _ = do(t, env, http.MethodDelete, "/transfers/"+created.Transfer.ID, nil)
	require.Equal(t, http.StatusNoContent, code)

	requireBalance(t, env, checking.ID, "0")
	requireBalance(t, env, investment.ID, "0")

	snapshot, found, err := env.Snapshots.Load(context.Background())
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, snapshot.Accounts, 2)
	require.Empty(t, snapshot.Transfers)
}

func TestLoanRoundTrip(t *testing.T) {
	env := integrationtest.SetupServer(t, integrationtest.Options())

	lender := createAccount(t, env, "My Investment", domain.Investment)
	borrower := createAccount(t, env, "My Checking", domain.Checking)

	code, res := do(t, env, http.MethodPost, "/loans", gin.H{
		"source_account_id":    lender.ID,
		"recipient_account_id": borrower.ID,
		"amount":               "1000",
		"start_date":           "2024-01-01",
		"end_date":             "2024-07-01",
		"term":                 6,
		"interest_rate":        "10",
	})
	require.Equal(t, http.StatusOK, code, res.Error)

	var created struct {
		Loan domain.Loan `json:"loan"`
	}
	require.NoError(t, json.Unmarshal(res.Data, &created))

	code, res = do(t, env, http.MethodGet, "/loans/"+created.Loan.ID+"/total-due", nil)
	require.Equal(t, http.StatusOK, code)

	var due struct {
		TotalDue decimal.Decimal `json:"total_due"`
	}
	require.NoError(t, json.Unmarshal(res.Data, &due))
	require.True(t, decimal.NewFromInt(1050).Equal(due.TotalDue), due.TotalDue.String())

	code, _ = do(t, env, http.MethodPost, "/loans/"+created.Loan.ID+"/repayments", gin.H{"amount": "1200"})
	require.Equal(t, http.StatusOK, code)

	code, res = do(t, env, http.MethodGet, "/loans/"+created.Loan.ID, nil)
	require.Equal(t, http.StatusOK, code)

	var got struct {
		Loan domain.Loan `json:"loan"`
	}
	require.NoError(t, json.Unmarshal(res.Data, &got))
	require.True(t, decimal.NewFromInt(-200).Equal(got.Loan.Amount), got.Loan.Amount.String())

	requireBalance(t, env, borrower.ID, "1200")
	requireBalance(t, env, lender.ID, "0")

	code, _ = do(t, env, http.MethodPost, "/loans/missing/repayments", gin.H{"amount": "1"})
	require.Equal(t, http.StatusNoContent, code)

	code, _ = do(t, env, http.MethodGet, "/loans/missing", nil)
	require.Equal(t, http.StatusNotFound, code)
}

func TestAccountValidation(t *testing.T) {
	env := integrationtest.SetupServer(t, integrationtest.Options())

	code, res := do(t, env, http.MethodPost, "/accounts", gin.H{"name": "Piggy", "type": "crypto"})
	require.Equal(t, http.StatusBadRequest, code)
	require.Equal(t, "Type is not supported", res.Error)

	code, _ = do(t, env, http.MethodGet, "/accounts?type=crypto", nil)
	require.Equal(t, http.StatusBadRequest, code)

	code, _ = do(t, env, http.MethodPut, "/accounts/missing", gin.H{"name": "Piggy", "type": domain.Savings})
	require.Equal(t, http.StatusNoContent, code)
}
