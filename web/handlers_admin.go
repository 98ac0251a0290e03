package web

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"

	"github.com/godwinide/peakedge/models"
	"github.com/godwinide/peakedge/service"
)

// redirectWithError sends the operator to target with the mapped message
func redirectWithError(w http.ResponseWriter, r *http.Request, target string, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		flashError(w, err.Error())
	case errors.Is(err, service.ErrAccountNotFound):
		flashError(w, "Account not found")
	default:
		log.WithError(err).Error("Admin operation failed")
		flashError(w, "Something went wrong, please try again")
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// Dashboard renders the admin landing page
func (h *Handlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.accounts.Dashboard(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to load dashboard")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	render(w, "dashboard.html", map[string]interface{}{
		"Flash":     popFlash(w, r),
		"Dashboard": dashboard,
	})
}

// EditUserPage renders the account edit form with its recent transactions
func (h *Handlers) EditUserPage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	account, err := h.accounts.GetAccount(r.Context(), id)
	if err != nil {
		redirectWithError(w, r, "/admin", err)
		return
	}

	history, err := h.accounts.GetHistory(r.Context(), id, h.historyPageSize)
	if err != nil {
		redirectWithError(w, r, "/admin", err)
		return
	}

	render(w, "edit_user.html", map[string]interface{}{
		"Flash":   popFlash(w, r),
		"Account": account,
		"History": history,
	})
}

// EditUser applies the profile override form
func (h *Handlers) EditUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	update := models.ProfileUpdate{
		Email:            r.FormValue("email"),
		Username:         r.FormValue("username"),
		Phone:            r.FormValue("phone"),
		Country:          r.FormValue("country"),
		Currency:         r.FormValue("currency"),
		SecurityQuestion: r.FormValue("security_question"),
		SecurityAnswer:   r.FormValue("security_answer"),
		RegisteredIP:     r.FormValue("registered_ip"),
		PIN:              r.FormValue("pin"),
		Balance:          formDecimal(r, "balance"),
		TotalDeposit:     formDecimal(r, "total_deposit"),
		ActiveDeposit:    formDecimal(r, "active_deposit"),
		TotalEarned:      formDecimal(r, "total_earned"),
		TotalWithdraw:    formDecimal(r, "total_withdraw"),
		PendingWithdraw:  formDecimal(r, "pending_withdrawal"),
		WithdrawalFee:    formDecimal(r, "withdrawal_fee"),
		AccountPlan:      r.FormValue("account_plan"),
		RequireUpgrade:   r.FormValue("require_upgrade") != "",
	}

	if err := h.accounts.UpdateProfile(r.Context(), id, update); err != nil {
		redirectWithError(w, r, "/admin", err)
		return
	}

	flashSuccess(w, "Account updated")
	http.Redirect(w, r, "/admin/edit-user/"+id, http.StatusSeeOther)
}

// DeleteAccount removes an account and returns to the dashboard
func (h *Handlers) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.accounts.DeleteAccount(r.Context(), id); err != nil {
		redirectWithError(w, r, "/admin", err)
		return
	}

	flashSuccess(w, "Account deleted")
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// DepositPage renders the deposit form with the customer list
func (h *Handlers) DepositPage(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.accounts.ListCustomers(r.Context())
	if err != nil {
		redirectWithError(w, r, "/admin", err)
		return
	}

	render(w, "deposit.html", map[string]interface{}{
		"Flash":    popFlash(w, r),
		"Accounts": accounts,
	})
}

// Deposit records a deposit onto the selected account
func (h *Handlers) Deposit(w http.ResponseWriter, r *http.Request) {
	accountID := r.FormValue("account_id")
	amount := formDecimal(r, "amount")
	debt := r.FormValue("debt") != ""

	if _, err := h.ledger.RecordDeposit(r.Context(), accountID, amount, debt); err != nil {
		redirectWithError(w, r, "/admin", err)
		return
	}

	flashSuccess(w, "Deposit recorded")
	http.Redirect(w, r, "/admin/deposit", http.StatusSeeOther)
}

// CreditAccount applies a manual profit or deposit credit and returns to the
// account's edit page
func (h *Handlers) CreditAccount(w http.ResponseWriter, r *http.Request) {
	accountID := r.FormValue("account_id")
	amount := formDecimal(r, "amount")
	creditType := models.CreditType(r.FormValue("credit_type"))

	if _, err := h.ledger.CreditAccount(r.Context(), accountID, amount, creditType); err != nil {
		redirectWithError(w, r, "/admin", err)
		return
	}

	flashSuccess(w, "Account credited")
	http.Redirect(w, r, "/admin/edit-user/"+accountID, http.StatusSeeOther)
}

// ChangePasswordPage renders the operator's password form
func (h *Handlers) ChangePasswordPage(w http.ResponseWriter, r *http.Request) {
	render(w, "change_password.html", map[string]interface{}{
		"Flash": popFlash(w, r),
	})
}

// ChangePassword updates the signed-in operator's password
func (h *Handlers) ChangePassword(w http.ResponseWriter, r *http.Request) {
	claims := sessionFromContext(r.Context())

	err := h.accounts.ChangePassword(r.Context(), claims.AccountID,
		r.FormValue("password"), r.FormValue("password2"))
	if err != nil {
		redirectWithError(w, r, "/admin/change-password", err)
		return
	}

	flashSuccess(w, "Password updated")
	http.Redirect(w, r, "/admin/change-password", http.StatusSeeOther)
}

// SiteSettingsPage renders the payout wallet form
func (h *Handlers) SiteSettingsPage(w http.ResponseWriter, r *http.Request) {
	wallet, err := h.site.GetWallet(r.Context())
	if err != nil {
		redirectWithError(w, r, "/admin", err)
		return
	}

	render(w, "site_settings.html", map[string]interface{}{
		"Flash":  popFlash(w, r),
		"Wallet": wallet,
	})
}

// SiteSettings stores the payout wallet address
func (h *Handlers) SiteSettings(w http.ResponseWriter, r *http.Request) {
	if err := h.site.SetWallet(r.Context(), r.FormValue("wallet")); err != nil {
		redirectWithError(w, r, "/admin/site-settings", err)
		return
	}

	flashSuccess(w, "Wallet address saved")
	http.Redirect(w, r, "/admin/site-settings", http.StatusSeeOther)
}
