package handler_test

import (
	"checkups/internal/api/handler"
	mockhistory "checkups/internal/history/mock"
	"checkups/pkg/controller"
	"checkups/pkg/domain"
	"checkups/pkg/logger"
	"checkups/pkg/metrics"
	"checkups/pkg/serrors"
	mockupstream "checkups/pkg/upstream/mock"
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func apollo() domain.Package {
	return domain.Package{
		Hospital:    "Apollo Hospitals",
		Price:       domain.NumberPrice(2999),
		Description: "Full Body Checkup",
		Features:    []string{"CBC", "Lipid Profile"},
		BookingLink: "https://apollo.example.com/book",
	}
}

func postSearch(t *testing.T, h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/search", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h(rec, req)

	return rec
}

func TestStatusOf(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{serrors.KindOnly(serrors.ErrBadRequest), http.StatusBadRequest},
		{serrors.With(serrors.ErrNotFound, "missing"), http.StatusNotFound},
		{serrors.KindOnly(serrors.ErrUnauthorized), http.StatusUnauthorized},
		{serrors.KindOnly(serrors.ErrForbidden), http.StatusForbidden},
		{serrors.KindOnly(serrors.ErrRateLimited), http.StatusTooManyRequests},
		{serrors.KindOnly(serrors.ErrTimeout), http.StatusGatewayTimeout},
		{serrors.KindOnly(serrors.ErrUnavailable), http.StatusServiceUnavailable},
		{serrors.KindOnly(serrors.ErrBadGateway), http.StatusBadGateway},
		{serrors.KindOnly(serrors.ErrInternal), http.StatusInternalServerError},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			require.Equal(t, tt.want, handler.StatusOf(tt.err))
		})
	}
}

func TestSearch_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	up := mockupstream.NewMockClient(ctrl)
	hist := mockhistory.NewMockHistory(ctrl)

	reg := prometheus.NewRegistry()
	m, err := metrics.NewSearch(reg)
	require.NoError(t, err)

	up.EXPECT().Search(gomock.Any(), domain.Query("full body")).Return(domain.Success(apollo()), nil)
	hist.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, rec domain.SearchRecord) error {
		require.Equal(t, "full body", rec.Query)
		require.Equal(t, domain.OutcomeSuccess, rec.Outcome)
		require.Equal(t, 1, rec.PackageCount)

		return nil
	})

	h := handler.New(handler.Deps{Upstream: up, History: hist, Metrics: m})
	rec := postSearch(t, h.Search, `{"query":"  full body  "}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.Contains(t, rec.Body.String(), `"hospital":"Apollo Hospitals"`)
	require.Contains(t, rec.Body.String(), `"booking_link":"https://apollo.example.com/book"`)

	count, err := testutil.GatherAndCount(reg, "checkups_search_requests_total")
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestSearch_GatewayEnvelope(t *testing.T) {
	ctrl := gomock.NewController(t)
	up := mockupstream.NewMockClient(ctrl)
	up.EXPECT().Search(gomock.Any(), domain.Query("women")).Return(domain.Success(), nil)

	h := handler.New(handler.Deps{Upstream: up})
	rec := postSearch(t, h.Search, `{"body":"{\"query\":\"women\"}"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"packages":[]}`, rec.Body.String())
}

func TestSearch_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"invalid json", `{"query":`, `{"error":"Invalid JSON format"}`},
		{"not an object", `"query"`, `{"error":"Invalid JSON format"}`},
		{"missing query", `{}`, `{"error":"Query is required"}`},
		{"blank query", `{"query":"   "}`, `{"error":"Query is required"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			// no upstream or history calls expected
			h := handler.New(handler.Deps{
				Upstream: mockupstream.NewMockClient(ctrl),
				History:  mockhistory.NewMockHistory(ctrl),
			})

			rec := postSearch(t, h.Search, tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			require.JSONEq(t, tt.want, rec.Body.String())
		})
	}
}

func TestSearch_UpstreamErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "timeout",
			err:        serrors.With(serrors.ErrTimeout, "Request timed out. Please try again."),
			wantStatus: http.StatusGatewayTimeout,
			wantBody:   `{"error":"Request timed out. Please try again."}`,
		},
		{
			name:       "unavailable",
			err:        serrors.Wrap(serrors.ErrUnavailable, errors.New("dial tcp"), "Failed to connect to API. Please check your connection."),
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `{"error":"Failed to connect to API. Please check your connection."}`,
		},
		{
			name:       "not found",
			err:        serrors.With(serrors.ErrNotFound, "API endpoint not found"),
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"API endpoint not found"}`,
		},
		{
			name:       "unexpected",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"An unexpected error occurred: boom"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			up := mockupstream.NewMockClient(ctrl)
			hist := mockhistory.NewMockHistory(ctrl)

			up.EXPECT().Search(gomock.Any(), gomock.Any()).Return(domain.SearchResult{}, tt.err)
			hist.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, rec domain.SearchRecord) error {
				require.Equal(t, domain.OutcomeError, rec.Outcome)
				require.NotEmpty(t, rec.Error)

				return nil
			})

			h := handler.New(handler.Deps{Upstream: up, History: hist})
			rec := postSearch(t, h.Search, `{"query":"basic"}`)

			require.Equal(t, tt.wantStatus, rec.Code)
			require.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestSearch_UpstreamReportedFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	up := mockupstream.NewMockClient(ctrl)
	up.EXPECT().Search(gomock.Any(), gomock.Any()).Return(domain.Failure("knowledge base offline"), nil)

	h := handler.New(handler.Deps{Upstream: up})
	rec := postSearch(t, h.Search, `{"query":"basic"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"error":"knowledge base offline"}`, rec.Body.String())
}

func TestSearch_HistoryFailureIsNotSurfaced(t *testing.T) {
	ctrl := gomock.NewController(t)
	up := mockupstream.NewMockClient(ctrl)
	hist := mockhistory.NewMockHistory(ctrl)

	up.EXPECT().Search(gomock.Any(), gomock.Any()).Return(domain.Success(apollo()), nil)
	hist.EXPECT().Record(gomock.Any(), gomock.Any()).Return(errors.New("queue down"))

	h := handler.New(handler.Deps{Upstream: up, History: hist})
	rec := postSearch(t, h.Search, `{"query":"basic"}`)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	hist := mockhistory.NewMockHistory(ctrl)

	records := []domain.SearchRecord{{Query: "women", Outcome: domain.OutcomeEmpty}}
	hist.EXPECT().Recent(gomock.Any(), uint(5)).Return(records, nil)

	h := handler.New(handler.Deps{History: hist})
	rec := httptest.NewRecorder()
	h.History(rec, httptest.NewRequest(http.MethodGet, "/search/history?limit=5", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"query":"women"`)
	require.Contains(t, rec.Body.String(), `"outcome":"EMPTY"`)
}

func TestHistory_DefaultLimitAndEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	hist := mockhistory.NewMockHistory(ctrl)
	hist.EXPECT().Recent(gomock.Any(), uint(0)).Return(nil, nil)

	h := handler.New(handler.Deps{History: hist})
	rec := httptest.NewRecorder()
	h.History(rec, httptest.NewRequest(http.MethodGet, "/search/history", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"searches":[]}`, rec.Body.String())
}

func TestHistory_InvalidLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := handler.New(handler.Deps{History: mockhistory.NewMockHistory(ctrl)})

	for _, limit := range []string{"-1", "ten", "99999999999"} {
		rec := httptest.NewRecorder()
		h.History(rec, httptest.NewRequest(http.MethodGet, "/search/history?limit="+limit, nil))
		require.Equal(t, http.StatusBadRequest, rec.Code, limit)
	}
}

func TestHistory_Disabled(t *testing.T) {
	h := handler.New(handler.Deps{})
	rec := httptest.NewRecorder()
	h.History(rec, httptest.NewRequest(http.MethodGet, "/search/history", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPage_Blank(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := handler.New(handler.Deps{Upstream: mockupstream.NewMockClient(ctrl)})

	rec := httptest.NewRecorder()
	h.Page(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	require.Contains(t, body, "<title>"+handler.PageTitle+"</title>")
	require.Contains(t, body, `id="searchInput"`)
	require.Contains(t, body, `class="text-center my-4 d-none"`)
}

func TestPage_Query(t *testing.T) {
	ctrl := gomock.NewController(t)
	up := mockupstream.NewMockClient(ctrl)
	up.EXPECT().Search(gomock.Any(), domain.Query("full body")).Return(domain.Success(apollo()), nil)

	h := handler.New(handler.Deps{Upstream: up})
	rec := httptest.NewRecorder()
	h.Page(rec, httptest.NewRequest(http.MethodGet, "/?q=full+body", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	require.Contains(t, body, "Apollo Hospitals")
	require.Contains(t, body, "Full Body Checkup")
	require.Contains(t, body, `value="full body"`)
}

func TestPage_Filter(t *testing.T) {
	ctrl := gomock.NewController(t)
	up := mockupstream.NewMockClient(ctrl)
	up.EXPECT().Search(gomock.Any(), domain.Query("Find health checkup packages suitable for children")).
		Return(domain.Success(), nil)

	h := handler.New(handler.Deps{Upstream: up})
	rec := httptest.NewRecorder()
	h.Page(rec, httptest.NewRequest(http.MethodGet, "/?filter=children", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "No Packages Found")
}

func TestPage_UnknownFilterShowsEmptyQueryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := handler.New(handler.Deps{Upstream: mockupstream.NewMockClient(ctrl)})

	rec := httptest.NewRecorder()
	h.Page(rec, httptest.NewRequest(http.MethodGet, "/?filter=pets", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Please enter a search query")
}

func TestPage_EscapesPackageText(t *testing.T) {
	ctrl := gomock.NewController(t)
	up := mockupstream.NewMockClient(ctrl)
	p := apollo()
	p.Hospital = `<script>alert("x")</script>`
	up.EXPECT().Search(gomock.Any(), gomock.Any()).Return(domain.Success(p), nil)

	h := handler.New(handler.Deps{Upstream: up})
	rec := httptest.NewRecorder()
	h.Page(rec, httptest.NewRequest(http.MethodGet, "/?q=x", nil))

	require.NotContains(t, rec.Body.String(), "<script>alert")
	require.Contains(t, rec.Body.String(), "&lt;script&gt;")
}

func TestPage_UnknownPath(t *testing.T) {
	h := handler.New(handler.Deps{})
	rec := httptest.NewRecorder()
	h.Page(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestKnowledgeBase(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		body       string
		setup      func(up *mockupstream.MockClient)
		wantStatus int
		wantBody   string
	}{
		{
			name:   "plain query",
			method: http.MethodPost,
			body:   `{"query":"basic"}`,
			setup: func(up *mockupstream.MockClient) {
				up.EXPECT().Search(gomock.Any(), domain.Query("basic")).Return(domain.Success(), nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"packages":[]}`,
		},
		{
			name:   "gateway string body",
			method: http.MethodPost,
			body:   `{"body":"{\"query\":\"basic\"}"}`,
			setup: func(up *mockupstream.MockClient) {
				up.EXPECT().Search(gomock.Any(), domain.Query("basic")).Return(domain.Success(), nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"packages":[]}`,
		},
		{
			name:       "missing query",
			method:     http.MethodPost,
			body:       `{"body":"{}"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Query is required"}`,
		},
		{
			name:   "engine failure",
			method: http.MethodPost,
			body:   `{"query":"basic"}`,
			setup: func(up *mockupstream.MockClient) {
				up.EXPECT().Search(gomock.Any(), gomock.Any()).Return(domain.SearchResult{}, errors.New("quota exceeded"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"quota exceeded"}`,
		},
		{
			name:       "wrong method",
			method:     http.MethodGet,
			wantStatus: http.StatusMethodNotAllowed,
			wantBody:   `{"error":"Method Not Allowed"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			up := mockupstream.NewMockClient(ctrl)
			if tt.setup != nil {
				tt.setup(up)
			}

			var body io.Reader = http.NoBody
			if tt.body != "" {
				body = strings.NewReader(tt.body)
			}
			rec := httptest.NewRecorder()
			handler.NewKnowledgeBase(up).ServeHTTP(rec, httptest.NewRequest(tt.method, "/", body))

			require.Equal(t, tt.wantStatus, rec.Code)
			require.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestPage_RecordsSearch(t *testing.T) {
	ctrl := gomock.NewController(t)
	up := mockupstream.NewMockClient(ctrl)
	hist := mockhistory.NewMockHistory(ctrl)

	reg := prometheus.NewRegistry()
	m, err := metrics.NewSearch(reg)
	require.NoError(t, err)

	up.EXPECT().Search(gomock.Any(), domain.Query("Find basic health checkup packages")).Return(domain.Success(apollo()), nil)
	hist.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, rec domain.SearchRecord) error {
		require.Equal(t, "Find basic health checkup packages", rec.Query)
		require.Equal(t, domain.OutcomeSuccess, rec.Outcome)
		require.Equal(t, 1, rec.PackageCount)

		return nil
	})

	h := handler.New(handler.Deps{Upstream: up, History: hist, Metrics: m})
	rec := httptest.NewRecorder()
	h.Page(rec, httptest.NewRequest(http.MethodGet, "/?filter=basic", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	count, err := testutil.GatherAndCount(reg, "checkups_search_requests_total")
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestPage_SearchRequiresToken(t *testing.T) {
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	pub, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(t, err)
	v, err := controller.NewTokenVerifier(string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pub})))
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	// strict mocks: any upstream or history call fails the test
	h := handler.New(handler.Deps{
		Upstream: mockupstream.NewMockClient(ctrl),
		History:  mockhistory.NewMockHistory(ctrl),
		Verifier: v,
	})

	rec := httptest.NewRecorder()
	h.Page(rec, httptest.NewRequest(http.MethodGet, "/?q=full+body", nil))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), controller.MessageMissingToken)
	require.Contains(t, rec.Body.String(), `value="full body"`)

	rec = httptest.NewRecorder()
	h.Page(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code, "the blank page is public")
}
