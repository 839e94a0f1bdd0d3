package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/kushal272003/tourbooking/internal/config"
	h "github.com/kushal272003/tourbooking/internal/http/handlers"
	"github.com/kushal272003/tourbooking/internal/session"
	"github.com/kushal272003/tourbooking/internal/upstream"
	"github.com/kushal272003/tourbooking/internal/wizard"
)

// fakeBackend emulates the tour backend endpoints the wizard run touches.
type fakeBackend struct {
	mux        *http.ServeMux
	bookings   int
	orders     int
	cancels    int
	verifies   int
	lastStatus string
}

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()
	f := &fakeBackend{mux: http.NewServeMux()}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "9",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := tok.SignedString([]byte("backend-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	f.mux.HandleFunc("POST /users/login", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{
			"token": signed,
			"user":  map[string]any{"id": 9, "name": "Asha Rao", "email": "a@b.co", "role": "USER"},
		})
	})
	f.mux.HandleFunc("GET /tours/7", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{
			"id": 7, "title": "Kerala Backwaters", "destination": "Alleppey",
			"price": 12500.0, "availableSeats": 4, "totalSeats": 10,
			"startDate": "2026-10-01", "endDate": "2026-10-05",
		})
	})
	f.mux.HandleFunc("POST /bookings", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		f.bookings++
		f.lastStatus = "PENDING"
		writeJSON(w, map[string]any{
			"bookingId": 101, "userId": 9, "tourId": 7, "tourTitle": "Kerala Backwaters",
			"numberOfSeats": 2, "totalPrice": 25000.0, "status": "PENDING",
		})
	})
	f.mux.HandleFunc("POST /payments/create-order/101", func(w http.ResponseWriter, r *http.Request) {
		f.orders++
		writeJSON(w, map[string]any{
			"orderId": "order_abc", "currency": "INR", "amount": 2500000,
			"key": "rzp_live_key", "bookingId": "101",
		})
	})
	f.mux.HandleFunc("POST /payments/verify", func(w http.ResponseWriter, r *http.Request) {
		f.verifies++
		writeJSON(w, "Payment verified successfully")
	})
	f.mux.HandleFunc("PUT /bookings/101/cancel", func(w http.ResponseWriter, r *http.Request) {
		f.cancels++
		f.lastStatus = "CANCELLED"
		writeJSON(w, map[string]any{"bookingId": 101, "status": "CANCELLED"})
	})
	return f
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

type client struct {
	t       *testing.T
	r       *gin.Engine
	cookies []*http.Cookie
}

func (c *client) do(method, path, body string) *httptest.ResponseRecorder {
	c.t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, ck := range c.cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	c.r.ServeHTTP(w, req)
	if got := w.Result().Cookies(); len(got) > 0 {
		c.cookies = got
	}
	return w
}

func newTestApp(t *testing.T) (*client, *fakeBackend) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	backend := newFakeBackend(t)
	srv := httptest.NewServer(backend.mux)
	t.Cleanup(srv.Close)

	env := config.Env{
		RazorpayKeyID: "rzp_test_key",
		CORSOrigins:   []string{"http://localhost:3000"},
	}
	up := upstream.New(srv.URL, 5*time.Second)
	deps := &h.Deps{
		Env:      env,
		Upstream: up,
		Sessions: session.NewManager([]byte("secret"), up.Users),
		Drafts:   wizard.NewDraftStore(time.Minute),
	}
	return &client{t: t, r: NewRouter(env, deps)}, backend
}

func (c *client) login(t *testing.T) {
	t.Helper()
	w := c.do(http.MethodPost, "/api/auth/login", `{"email":"a@b.co","password":"pw"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d: %s", w.Code, w.Body.String())
	}
}

func TestWizardEndToEnd(t *testing.T) {
	c, backend := newTestApp(t)
	c.login(t)

	// Step 1: tour selected.
	w := c.do(http.MethodPost, "/api/booking/start", `{"tourId":7,"numberOfSeats":2}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("start status = %d: %s", w.Code, w.Body.String())
	}
	var draft struct {
		ID              string  `json:"id"`
		State           string  `json:"state"`
		TotalPrice      float64 `json:"totalPrice"`
		AdditionalSlots int     `json:"additionalSlots"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &draft); err != nil {
		t.Fatalf("decode draft: %v", err)
	}
	if draft.State != "TOUR_SELECTED" || draft.TotalPrice != 25000 || draft.AdditionalSlots != 1 {
		t.Fatalf("draft = %+v", draft)
	}

	// Step 2: passenger info.
	passengers := `{
		"contactDetails": {"email":"a@b.co","phone":"9876543210"},
		"primaryPassenger": {"name":"Asha Rao","age":31,"gender":"female","idProof":"AADHAAR1234"},
		"additionalPassengers": [{"name":"Passenger Two","age":25}]
	}`
	w = c.do(http.MethodPut, "/api/booking/drafts/"+draft.ID+"/passengers", passengers)
	if w.Code != http.StatusOK {
		t.Fatalf("passengers status = %d: %s", w.Code, w.Body.String())
	}

	// Step 3: confirm creates booking + order.
	w = c.do(http.MethodPost, "/api/booking/drafts/"+draft.ID+"/confirm", "")
	if w.Code != http.StatusOK {
		t.Fatalf("confirm status = %d: %s", w.Code, w.Body.String())
	}
	var checkout struct {
		OrderID   string `json:"orderId"`
		Key       string `json:"key"`
		BookingID int64  `json:"bookingId"`
		Amount    int64  `json:"amount"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &checkout)
	if checkout.OrderID != "order_abc" || checkout.BookingID != 101 || checkout.Amount != 2500000 {
		t.Fatalf("checkout = %+v", checkout)
	}
	if checkout.Key != "rzp_live_key" {
		t.Fatalf("key = %q, want upstream-provided key", checkout.Key)
	}

	// Step 4: gateway success callback.
	w = c.do(http.MethodPost, "/api/booking/drafts/"+draft.ID+"/callback",
		`{"razorpayOrderId":"order_abc","razorpayPaymentId":"pay_xyz","razorpaySignature":"sig"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("callback status = %d: %s", w.Code, w.Body.String())
	}
	var summary struct {
		PaymentID   string  `json:"paymentId"`
		Amount      float64 `json:"amount"`
		AmountLabel string  `json:"amountLabel"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &summary)
	if summary.PaymentID != "pay_xyz" || summary.Amount != 25000 {
		t.Fatalf("summary = %+v", summary)
	}
	if summary.AmountLabel != "₹25,000.00" {
		t.Fatalf("amount label = %q", summary.AmountLabel)
	}

	if backend.bookings != 1 || backend.orders != 1 || backend.verifies != 1 || backend.cancels != 0 {
		t.Fatalf("backend calls: %+v", backend)
	}

	// The draft is gone after completion.
	w = c.do(http.MethodGet, "/api/booking/drafts/"+draft.ID, "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("draft lookup after success = %d", w.Code)
	}
}

func TestWizardDismissCancelsBooking(t *testing.T) {
	c, backend := newTestApp(t)
	c.login(t)

	w := c.do(http.MethodPost, "/api/booking/start", `{"tourId":7,"numberOfSeats":1}`)
	var draft struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &draft)

	passengers := `{
		"contactDetails": {"email":"a@b.co","phone":"9876543210"},
		"primaryPassenger": {"name":"Asha Rao","age":31,"gender":"female","idProof":"AADHAAR1234"},
		"additionalPassengers": []
	}`
	if w = c.do(http.MethodPut, "/api/booking/drafts/"+draft.ID+"/passengers", passengers); w.Code != http.StatusOK {
		t.Fatalf("passengers: %d %s", w.Code, w.Body.String())
	}
	if w = c.do(http.MethodPost, "/api/booking/drafts/"+draft.ID+"/confirm", ""); w.Code != http.StatusOK {
		t.Fatalf("confirm: %d %s", w.Code, w.Body.String())
	}

	if w = c.do(http.MethodPost, "/api/booking/drafts/"+draft.ID+"/dismiss", ""); w.Code != http.StatusOK {
		t.Fatalf("dismiss: %d %s", w.Code, w.Body.String())
	}
	if backend.cancels != 1 {
		t.Fatalf("cancels = %d, want 1", backend.cancels)
	}
	if backend.lastStatus != "CANCELLED" {
		t.Fatalf("booking status = %s", backend.lastStatus)
	}
}

func TestWizardPassengerValidationBlocksStep(t *testing.T) {
	c, _ := newTestApp(t)
	c.login(t)

	w := c.do(http.MethodPost, "/api/booking/start", `{"tourId":7,"numberOfSeats":1}`)
	var draft struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &draft)

	bad := `{
		"contactDetails": {"email":"nope","phone":"12345"},
		"primaryPassenger": {"name":"A","age":0},
		"additionalPassengers": []
	}`
	w = c.do(http.MethodPut, "/api/booking/drafts/"+draft.ID+"/passengers", bad)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "contact-email") {
		t.Fatalf("body = %s, want field-keyed errors", w.Body.String())
	}

	// The draft did not advance; confirm is still blocked.
	w = c.do(http.MethodPost, "/api/booking/drafts/"+draft.ID+"/confirm", "")
	if w.Code != http.StatusConflict {
		t.Fatalf("confirm after invalid passengers = %d, want 409", w.Code)
	}
}

func TestWizardRequiresLogin(t *testing.T) {
	c, _ := newTestApp(t)
	w := c.do(http.MethodPost, "/api/booking/start", `{"tourId":7,"numberOfSeats":1}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"redirect":"/login"`) {
		t.Fatalf("body = %s", w.Body.String())
	}
}
