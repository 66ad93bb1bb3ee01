package command

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
)

func TestPaymentApply(t *testing.T) {
	te := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/update-payment/9/" {
			t.Errorf("got %s %s", r.Method, r.URL.Path)
		}
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["amount"] != "250.00" {
			t.Errorf("body = %v", body)
		}
		w.WriteHeader(http.StatusOK)
	}, "tok")

	if err := te.run("payment", "apply", "9", "250.00"); err != nil {
		t.Fatalf("payment apply failed: %v", err)
	}
	if !strings.Contains(te.out.String(), "applied to record 9") {
		t.Errorf("output = %q", te.out.String())
	}
}

func TestPaymentApplyRejectsBadAmount(t *testing.T) {
	te := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should reach the backend")
	}, "tok")

	if err := te.run("payment", "apply", "9", "lots"); err == nil {
		t.Fatal("invalid amount accepted")
	}
	if err := te.run("payment", "apply", "9"); err == nil {
		t.Fatal("missing amount accepted")
	}
}

func TestPaymentPendingFilters(t *testing.T) {
	te := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("buyer_id") != "4" || q.Get("inv_status") != "unpaid" || q.Get("transaction_type") != "return" {
			t.Errorf("query = %v", q)
		}
		w.Write([]byte(`[{"id":2,"buyer":4,"buyer_name":"Acme","transaction_type":"return","inv_status":"unpaid","total":"300.00"}]`))
	}, "tok")

	if err := te.run("payment", "pending", "--buyer-id", "4"); err != nil {
		t.Fatalf("payment pending failed: %v", err)
	}
	if !strings.Contains(te.out.String(), "Acme") {
		t.Errorf("output = %q", te.out.String())
	}
}

func TestPaymentHistory(t *testing.T) {
	te := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/payment-receipts/" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Write([]byte(`[{"id":1,"record_id":9,"amount":"250.00","date":"2026-08-20"}]`))
	}, "tok")

	if err := te.run("payment", "history"); err != nil {
		t.Fatalf("payment history failed: %v", err)
	}
	if !strings.Contains(te.out.String(), "250.00") {
		t.Errorf("output = %q", te.out.String())
	}
}
