package requestmeta

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func postRequest(target string, headers map[string]string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, nil)
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	return req
}

func TestIsHTTPSWithPolicy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		req    *http.Request
		policy SchemePolicy
		want   bool
	}{
		{name: "plain http", req: postRequest("http://snapgram.test/sign-up", nil), want: false},
		{name: "https url", req: postRequest("https://snapgram.test/sign-up", nil), want: true},
		{
			name:   "untrusted forwarded proto ignored",
			req:    postRequest("http://snapgram.test/sign-up", map[string]string{"X-Forwarded-Proto": "https"}),
			policy: SchemePolicy{},
			want:   false,
		},
		{
			name:   "trusted forwarded proto used",
			req:    postRequest("http://snapgram.test/sign-up", map[string]string{"X-Forwarded-Proto": "https"}),
			policy: SchemePolicy{TrustForwardedProto: true},
			want:   true,
		},
		{name: "nil request", req: nil, want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := IsHTTPSWithPolicy(tc.req, tc.policy); got != tc.want {
				t.Fatalf("IsHTTPSWithPolicy() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestIsCrossOriginWithPolicy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		req  *http.Request
		want bool
	}{
		{name: "no origin header", req: postRequest("http://snapgram.test/sign-up", nil), want: false},
		{
			name: "same origin",
			req:  postRequest("http://snapgram.test/sign-up", map[string]string{"Origin": "http://snapgram.test"}),
			want: false,
		},
		{
			name: "explicit default port",
			req:  postRequest("http://snapgram.test/sign-up", map[string]string{"Origin": "http://snapgram.test:80"}),
			want: false,
		},
		{
			name: "other host",
			req:  postRequest("http://snapgram.test/sign-up", map[string]string{"Origin": "http://evil.test"}),
			want: true,
		},
		{
			name: "scheme mismatch",
			req:  postRequest("https://snapgram.test/sign-up", map[string]string{"Origin": "http://snapgram.test"}),
			want: true,
		},
		{
			name: "port mismatch",
			req:  postRequest("http://snapgram.test:8086/sign-up", map[string]string{"Origin": "http://snapgram.test"}),
			want: true,
		},
		{name: "nil request", req: nil, want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := IsCrossOriginWithPolicy(tc.req, SchemePolicy{}); got != tc.want {
				t.Fatalf("IsCrossOriginWithPolicy() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestHasSameOriginProofWithPolicyUsesReferer(t *testing.T) {
	t.Parallel()

	req := postRequest("http://snapgram.test/sign-up", map[string]string{"Referer": "http://snapgram.test/sign-up?lang=pt-BR"})
	if !HasSameOriginProofWithPolicy(req, SchemePolicy{}) {
		t.Fatalf("expected referer to prove same origin")
	}
	if HasSameOriginProofWithPolicy(postRequest("http://snapgram.test/sign-up", nil), SchemePolicy{}) {
		t.Fatalf("expected missing origin and referer to fail")
	}
}
