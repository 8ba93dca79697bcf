package payment

import (
	"context"
	"net/url"
	"time"

	"go.uber.org/zap"
)

// gateway response codes signalling a settled transaction
const successCode = "00"

// Result is what the callback page renders. Authoritative is always
// false: the backend's reconciliation, not the browser redirect, is the
// source of truth for payment state.
type Result struct {
	Success         bool   `json:"success"`
	Redirect        string `json:"redirect,omitempty"`
	RedirectAfterMs int    `json:"redirectAfterMs,omitempty"`
	Authoritative   bool   `json:"authoritative"`
	OrderRef        string `json:"order_ref,omitempty"`
}

// Service interprets the VNPay return redirect and kicks off backend
// reconciliation.
type Service struct {
	repo    Repository
	log     *zap.Logger
	timeout time.Duration
}

func NewService(repo Repository, log *zap.Logger) *Service {
	return &Service{repo: repo, log: log, timeout: 15 * time.Second}
}

// HandleReturn evaluates the gateway's query parameters. Success needs
// both the response code and the transaction status to report settled.
// Reconciliation runs in the background so the shopper is never stuck
// on a spinner waiting for the backend.
func (s *Service) HandleReturn(query url.Values) Result {
	raw := query.Encode()
	success := query.Get("vnp_ResponseCode") == successCode &&
		query.Get("vnp_TransactionStatus") == successCode

	go s.reconcile(raw)

	if !success {
		s.log.Warn("payment gateway reported failure",
			zap.String("response_code", query.Get("vnp_ResponseCode")),
			zap.String("transaction_status", query.Get("vnp_TransactionStatus")),
			zap.String("txn_ref", query.Get("vnp_TxnRef")))
		// no auto-redirect on failure; the page offers retry / support actions
		return Result{Success: false, OrderRef: query.Get("vnp_TxnRef")}
	}

	return Result{
		Success:         true,
		Redirect:        "/order-history",
		RedirectAfterMs: 3000,
		OrderRef:        query.Get("vnp_TxnRef"),
	}
}

// reconcile replays the callback to the backend. The redirect does not
// wait on it and its outcome is only logged; the order history page
// shows the settled state once the backend has processed it.
func (s *Service) reconcile(rawQuery string) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if err := s.repo.Confirm(ctx, rawQuery); err != nil {
		s.log.Error("payment reconciliation failed", zap.Error(err))
		return
	}
	s.log.Info("payment reconciliation forwarded")
}
