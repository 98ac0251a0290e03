package web

import (
	"net"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/godwinide/peakedge/service"
)

// Handlers carries the services behind the admin console routes
type Handlers struct {
	accounts service.AccountService
	ledger   service.LedgerService
	site     service.SiteService
	sessions *SessionManager

	// number of records shown on the per-account page
	historyPageSize int
}

// NewHandlers creates the route handler set
func NewHandlers(accounts service.AccountService, ledger service.LedgerService, site service.SiteService, sessions *SessionManager, historyPageSize int) *Handlers {
	return &Handlers{
		accounts:        accounts,
		ledger:          ledger,
		site:            site,
		sessions:        sessions,
		historyPageSize: historyPageSize,
	}
}

// formDecimal parses a form value as a decimal amount, treating blank or
// malformed input as zero the way the edit form expects.
func formDecimal(r *http.Request, field string) decimal.Decimal {
	value := strings.TrimSpace(r.FormValue(field))
	if value == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// clientIP extracts the requester's address for the signup audit field
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if i := strings.IndexByte(fwd, ','); i >= 0 {
			return strings.TrimSpace(fwd[:i])
		}
		return strings.TrimSpace(fwd)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
