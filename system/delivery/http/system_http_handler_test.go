package http_test

import (
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"cosmossdk.io/math"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/charisma-labs/srs/domain"
	"github.com/charisma-labs/srs/domain/mocks"
	"github.com/charisma-labs/srs/log"
	"github.com/charisma-labs/srs/system/delivery/http"
)

func TestExtractVersion(t *testing.T) {
	testCases := []struct {
		name            string
		ldFlagsValue    string
		expectedVersion string
	}{
		{
			name:            "version is specified first in the ldFlagsValue",
			ldFlagsValue:    "-X github.com/charisma-labs/srs/version=0.1.2-4-g79c82c8     -w -s -linkmode=external -extldflags '-Wl,-z,muldefs -static'",
			expectedVersion: "0.1.2-4-g79c82c8",
		},
		{
			name:            "version is specified in the end of ldFlagsValue",
			ldFlagsValue:    "-w -s -linkmode=external -extldflags '-Wl,-z,muldefs -static' -X github.com/charisma-labs/srs/version=0.1.2-4-g79c82c8",
			expectedVersion: "0.1.2-4-g79c82c8",
		},
		{
			name:            "version is specified in the middle of ldFlagsValue",
			ldFlagsValue:    "-extldflags '-Wl,-z,muldefs -static' -X github.com/charisma-labs/srs/version=0.1.2-4-g79c82c8 -w -s -linkmode=external",
			expectedVersion: "0.1.2-4-g79c82c8",
		},
		{
			name:            "ldFlagsValue only version",
			ldFlagsValue:    "-X github.com/charisma-labs/srs/version=0.1.2-4-g79c82c8",
			expectedVersion: "0.1.2-4-g79c82c8",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := http.ExtractVersion(tc.ldFlagsValue)
			require.NoError(t, err)

			require.Equal(t, tc.expectedVersion, result)
		})
	}
}

func healthcheckRecorder(t *testing.T, nodeEndpoint string, graph *domain.SwapGraph) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	config := domain.Config{
		LoggerIsProduction: true,
		ChainNodeEndpoint:  nodeEndpoint,
	}
	http.NewSystemHandler(e, config, &log.NoOpLogger{}, &mocks.PoolsUsecaseMock{Graph: graph})

	req := httptest.NewRequest(nethttp.MethodGet, "/healthcheck", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestGetHealthStatus(t *testing.T) {
	pool := domain.Pool{
		ContractID: "SP1.amm-stx-usda",
		Token0:     domain.Token{ContractID: "STX", Symbol: "STX", Decimals: 6},
		Token1:     domain.Token{ContractID: "SP2.usda", Symbol: "USDA", Decimals: 6},
		Reserve0:   math.NewInt(1_000_000),
		Reserve1:   math.NewInt(1_000_000),
		SwapFee:    math.LegacyMustNewDecFromStr("0.003"),
	}

	t.Run("healthy", func(t *testing.T) {
		node := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			require.Equal(t, "/v2/info", r.URL.Path)
			w.WriteHeader(nethttp.StatusOK)
		}))
		defer node.Close()

		rec := healthcheckRecorder(t, node.URL, domain.NewSwapGraph([]domain.Pool{pool}))
		require.Equal(t, nethttp.StatusOK, rec.Code)
	})

	t.Run("node returns non-200", func(t *testing.T) {
		node := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			w.WriteHeader(nethttp.StatusBadGateway)
		}))
		defer node.Close()

		rec := healthcheckRecorder(t, node.URL, domain.NewSwapGraph([]domain.Pool{pool}))
		require.Equal(t, nethttp.StatusServiceUnavailable, rec.Code)
	})

	t.Run("empty graph is unhealthy", func(t *testing.T) {
		node := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			w.WriteHeader(nethttp.StatusOK)
		}))
		defer node.Close()

		rec := healthcheckRecorder(t, node.URL, domain.NewSwapGraph(nil))
		require.Equal(t, nethttp.StatusServiceUnavailable, rec.Code)
	})
}
