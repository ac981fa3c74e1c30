package impl_accountsvc

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	domain_account "github.com/ledgercore/transactions-service/internal/domain/account"
	port_accounts "github.com/ledgercore/transactions-service/internal/ports/gateway/accounts"
	"github.com/shopspring/decimal"
)

// AccountServiceClient implements the accounts gateway against the remote
// account service: GET <base>/<id> for snapshots, PUT <base>/<id>/balance
// for balance writes. A 404 on fetch maps to the port's not-found
// sentinel; every other non-2xx answer or transport failure is an
// unclassified error.
type AccountServiceClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

type accountResponse struct {
	ID      int64           `json:"id"`
	Name    string          `json:"name"`
	Email   string          `json:"email"`
	Balance decimal.Decimal `json:"balance"`
}

func NewAccountServiceClient(baseURL string, timeout time.Duration, logger *slog.Logger) *AccountServiceClient {
	return &AccountServiceClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

func (c *AccountServiceClient) FetchAccount(ctx context.Context, id int64) (*domain_account.Account, error) {
	url := fmt.Sprintf("%s/%d", c.baseURL, id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build account request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch account %d: %w", id, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("account %d: %w", id, port_accounts.ErrAccountNotFound)
	}

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("account service returned status %d: %s", resp.StatusCode, string(body))
	}

	var acc accountResponse
	if err := json.NewDecoder(resp.Body).Decode(&acc); err != nil {
		return nil, fmt.Errorf("decode account response: %w", err)
	}

	return &domain_account.Account{
		ID:      acc.ID,
		Name:    acc.Name,
		Email:   acc.Email,
		Balance: acc.Balance,
	}, nil
}

func (c *AccountServiceClient) UpdateBalance(ctx context.Context, id int64, balance decimal.Decimal) error {
	url := fmt.Sprintf("%s/%d/balance", c.baseURL, id)

	// The balance travels as a bare JSON number, mirroring what the
	// account service expects on its PUT endpoint.
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, strings.NewReader(balance.String()))
	if err != nil {
		return fmt.Errorf("build balance request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("update balance of account %d: %w", id, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("account service returned status %d: %s", resp.StatusCode, string(body))
	}

	c.logger.Debug("account balance updated", "account_id", id)
	return nil
}
