package signup

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/machinebox/graphql"
	apperrors "github.com/snapgram/web/internal/services/web/platform/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type graphqlServer struct {
	mu       sync.Mutex
	requests []graphqlRequest
	headers  []http.Header
	response string
	status   int
}

func (s *graphqlServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req graphqlRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.mu.Lock()
	s.requests = append(s.requests, req)
	s.headers = append(s.headers, r.Header.Clone())
	s.mu.Unlock()
	w.Header().Set("Content-Type", "application/json")
	if s.status != 0 {
		w.WriteHeader(s.status)
	}
	_, _ = w.Write([]byte(s.response))
}

func (s *graphqlServer) snapshot() ([]graphqlRequest, []http.Header) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]graphqlRequest(nil), s.requests...), append([]http.Header(nil), s.headers...)
}

func newGraphQLTestGateway(t *testing.T, srv *graphqlServer) AccountGateway {
	t.Helper()
	ts := httptest.NewServer(srv)
	t.Cleanup(ts.Close)
	return NewGraphQLGateway(ts.URL, ts.Client())
}

func TestGraphQLGatewaySendsCreateAccountMutation(t *testing.T) {
	t.Parallel()

	srv := &graphqlServer{response: `{"data":{"createAccount":{"ok":false,"error":"Username taken"}}}`}
	gateway := newGraphQLTestGateway(t, srv)

	outcome, err := gateway.CreateAccount(context.Background(), validAccount)
	if err != nil {
		t.Fatalf("CreateAccount() error = %v", err)
	}
	if outcome.OK || outcome.Error != "Username taken" {
		t.Fatalf("outcome = %+v, want rejected with server message", outcome)
	}
	requests, _ := srv.snapshot()
	if len(requests) != 1 {
		t.Fatalf("requests = %d, want 1", len(requests))
	}
	req := requests[0]
	if req.Query != createAccountMutation {
		t.Fatalf("query = %q", req.Query)
	}
	want := map[string]any{
		"firstName": "Ada",
		"lastName":  "Lovelace",
		"username":  "ada1815",
		"email":     "ada@example.com",
		"password":  "analytical",
	}
	for key, value := range want {
		if req.Variables[key] != value {
			t.Fatalf("variable %s = %v, want %v", key, req.Variables[key], value)
		}
	}
}

func TestGraphQLGatewaySendsBlankLastNameAsNull(t *testing.T) {
	t.Parallel()

	srv := &graphqlServer{response: `{"data":{"createAccount":{"ok":true}}}`}
	gateway := newGraphQLTestGateway(t, srv)

	account := validAccount
	account.LastName = "  "
	outcome, err := gateway.CreateAccount(context.Background(), account)
	if err != nil {
		t.Fatalf("CreateAccount() error = %v", err)
	}
	if !outcome.OK || outcome.Error != "" {
		t.Fatalf("outcome = %+v, want ok", outcome)
	}
	requests, _ := srv.snapshot()
	value, present := requests[0].Variables["lastName"]
	if !present || value != nil {
		t.Fatalf("lastName = %v (present %v), want null", value, present)
	}
}

func TestGraphQLGatewayMapsErrorsToUnavailable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		srv  *graphqlServer
	}{
		{name: "graphql error", srv: &graphqlServer{response: `{"errors":[{"message":"boom"}]}`}},
		{name: "server error", srv: &graphqlServer{response: `oops`, status: http.StatusBadGateway}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := newGraphQLTestGateway(t, tc.srv).CreateAccount(context.Background(), validAccount)
			if err == nil {
				t.Fatalf("CreateAccount() error = nil")
			}
			if got := apperrors.KindOf(err); got != apperrors.KindUnavailable {
				t.Fatalf("KindOf() = %q, want %q", got, apperrors.KindUnavailable)
			}
			if got := apperrors.LocalizationKey(err); got != MsgUnavailable {
				t.Fatalf("LocalizationKey() = %q, want %q", got, MsgUnavailable)
			}
		})
	}
}

func TestGraphQLGatewayUnreachableEndpoint(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	_, err := NewGraphQLGateway(url, nil).CreateAccount(context.Background(), validAccount)
	if apperrors.HTTPStatus(err) != http.StatusServiceUnavailable {
		t.Fatalf("HTTPStatus() = %d, want %d (err %v)", apperrors.HTTPStatus(err), http.StatusServiceUnavailable, err)
	}
}

func TestNewGraphQLGatewayWithoutEndpointIsUnavailable(t *testing.T) {
	t.Parallel()

	for _, gateway := range []AccountGateway{NewGraphQLGateway("  ", nil), NewGraphQLGatewayWithClient(nil)} {
		if _, ok := gateway.(unavailableGateway); !ok {
			t.Fatalf("gateway = %T, want unavailableGateway", gateway)
		}
		_, err := gateway.CreateAccount(context.Background(), validAccount)
		if apperrors.KindOf(err) != apperrors.KindUnavailable {
			t.Fatalf("CreateAccount() error = %v, want unavailable", err)
		}
	}
}

func TestGraphQLGatewayInjectsTraceContext(t *testing.T) {
	previousProvider := otel.GetTracerProvider()
	previousPropagator := otel.GetTextMapPropagator()
	tp := sdktrace.NewTracerProvider()
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	t.Cleanup(func() {
		_ = tp.Shutdown(context.Background())
		otel.SetTracerProvider(previousProvider)
		otel.SetTextMapPropagator(previousPropagator)
	})

	srv := &graphqlServer{response: `{"data":{"createAccount":{"ok":true}}}`}
	if _, err := newGraphQLTestGateway(t, srv).CreateAccount(context.Background(), validAccount); err != nil {
		t.Fatalf("CreateAccount() error = %v", err)
	}
	_, headers := srv.snapshot()
	if got := headers[0].Get("Traceparent"); got == "" {
		t.Fatalf("traceparent header missing")
	}
}

type failingClient struct {
	err error
}

func (c failingClient) Run(context.Context, *graphql.Request, interface{}) error {
	return c.err
}

func TestGraphQLGatewayWrapsClientError(t *testing.T) {
	t.Parallel()

	cause := errors.New("dial tcp: refused")
	gateway := NewGraphQLGatewayWithClient(failingClient{err: cause})
	_, err := gateway.CreateAccount(context.Background(), validAccount)
	if !errors.Is(err, cause) {
		t.Fatalf("CreateAccount() error = %v, want wrapped %v", err, cause)
	}
}
