package http

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-dream-cipher/internal/logger"
	"github.com/MKhiriev/go-dream-cipher/internal/mock"
	"github.com/MKhiriev/go-dream-cipher/internal/service"
	"github.com/MKhiriev/go-dream-cipher/internal/utils"
	"github.com/MKhiriev/go-dream-cipher/models"
)

const testToken = "session.token"

var (
	alice    = common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	bob      = common.HexToAddress("0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC")
	contract = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
)

type handlerFixture struct {
	ledger  *mock.MockLedgerService
	relayer *mock.MockRelayerService
	auth    *mock.MockAuthService
	appInfo *mock.MockAppInfoService

	handler *Handler
	router  *chi.Mux
}

func newHandlerFixture(t *testing.T, hashKey string) *handlerFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &handlerFixture{
		ledger:  mock.NewMockLedgerService(ctrl),
		relayer: mock.NewMockRelayerService(ctrl),
		auth:    mock.NewMockAuthService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}

	f.handler = NewHandler(&service.Services{
		LedgerService:  f.ledger,
		RelayerService: f.relayer,
		AuthService:    f.auth,
		AppInfoService: f.appInfo,
	}, hashKey, logger.Nop())
	f.router = f.handler.Init()

	return f
}

// signedIn makes ParseToken accept testToken as account.
func (f *handlerFixture) signedIn(account common.Address) {
	f.auth.EXPECT().ParseToken(gomock.Any(), testToken).Return(models.Token{Account: account}, nil).AnyTimes()
}

func (f *handlerFixture) do(t *testing.T, method, path string, body any, authed bool) *httptest.ResponseRecorder {
	t.Helper()

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	if authed {
		req.Header.Set("Authorization", "Bearer "+testToken)
	}
	if f.handler.hashKey != "" && payload != nil {
		req.Header.Set(utils.HashHeader, hex.EncodeToString(utils.Hash(payload)))
	}

	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, req)
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()

	var body utils.ErrorBody
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body.Error
}

func TestNewHandler(t *testing.T) {
	svcs := &service.Services{}
	h := NewHandler(svcs, "", logger.Nop())

	require.NotNil(t, h)
	assert.Same(t, svcs, h.services)
	assert.NotNil(t, h.traceIDs)
}

func TestUnknownMethodAnswersNotFound(t *testing.T) {
	f := newHandlerFixture(t, "")

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/notes"},
		{http.MethodDelete, "/api/notes/1/meta"},
		{http.MethodPut, "/api/auth/login"},
	} {
		rr := f.do(t, tc.method, tc.path, nil, false)
		assert.Equal(t, http.StatusNotFound, rr.Code, "%s %s", tc.method, tc.path)
	}
}

func TestVersionRoute(t *testing.T) {
	f := newHandlerFixture(t, "")
	f.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("v1.2.3 (abc123)")

	rr := f.do(t, http.MethodGet, "/api/version", nil, false)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "v1.2.3 (abc123)", rr.Body.String())
}

func TestMetricsRoute(t *testing.T) {
	f := newHandlerFixture(t, "")

	rr := f.do(t, http.MethodGet, "/metrics", nil, false)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "go_goroutines")
}

func TestTraceIDIsEchoed(t *testing.T) {
	f := newHandlerFixture(t, "")
	f.ledger.EXPECT().GetCount(gomock.Any()).Return(uint64(0), nil).Times(2)

	rr := f.do(t, http.MethodGet, "/api/notes/count", nil, false)
	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/api/notes/count", nil)
	req.Header.Set(traceIDHeader, "trace-42")
	rr = httptest.NewRecorder()
	f.router.ServeHTTP(rr, req)
	assert.Equal(t, "trace-42", rr.Header().Get(traceIDHeader))
}
