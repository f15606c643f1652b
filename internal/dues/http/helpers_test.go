package http

import (
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ovalview/hoadues/internal/dues/blob"
	"github.com/ovalview/hoadues/internal/dues/service"
	"github.com/ovalview/hoadues/internal/dues/store/drivers/sqlite"
	"github.com/ovalview/hoadues/pkg/cryptox"
	"github.com/ovalview/hoadues/pkg/duesapi"
	"github.com/ovalview/hoadues/pkg/httpx"
	"github.com/ovalview/hoadues/pkg/idx"
	"github.com/ovalview/hoadues/pkg/jwtx"
	"github.com/ovalview/hoadues/pkg/slogx"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer        = "hoadues-test"
	testAdminPassword = "test-admin-password"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "dues-http-test")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	// Raise the per-route limits so ordinary test traffic never trips them.
	generous := httpx.RateLimitConfig{
		RequestsPerWindow: 10000,
		Window:            time.Minute,
		Burst:             10000,
	}
	httpx.StrictLimit = generous
	httpx.ModerateLimit = generous
	httpx.LenientLimit = generous

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

// testServer is a fully wired service instance behind an httptest server.
type testServer struct {
	URL   string
	Store *sqlite.Store
	Blobs *blob.Store
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	// File-backed rather than :memory: so every pooled connection sees the
	// same database.
	st, err := sqlite.NewStore("file:" + filepath.Join(t.TempDir(), "dues.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	blobs, err := blob.NewStore(t.TempDir())
	require.NoError(t, err)

	keypair, err := jwtx.NewEphemeralKeypair(idx.New().String())
	require.NoError(t, err)

	logger := slogx.New(slogx.Config{
		Service: "hoadues-test",
		Level:   "error",
		Format:  "text",
	})

	ledger := &service.LedgerService{Store: st}

	router := NewRouter(keypair, testIssuer, "test", st, blobs, logger)
	router.UserService = &service.UserService{Store: st}
	router.SessionService = &service.SessionService{
		Signer: keypair,
		Issuer: testIssuer,
	}
	router.LedgerService = ledger
	router.UploadService = &service.UploadService{Ledger: ledger, Blobs: blobs}
	router.Guard = &service.Guard{Store: st}
	router.ApplyRoutes()

	bootstrap := &service.BootstrapService{
		Store:         st,
		AdminPassword: testAdminPassword,
		Logger:        logger,
	}
	require.NoError(t, bootstrap.EnsureAdmin(context.Background()))

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testServer{URL: srv.URL, Store: st, Blobs: blobs}
}

// client returns an unauthenticated API client for the server.
func (ts *testServer) client() *duesapi.Client {
	return duesapi.NewClient(ts.URL)
}

// homeownerClient registers a fresh homeowner and returns a logged-in client.
func (ts *testServer) homeownerClient(t *testing.T, username string) *duesapi.Client {
	t.Helper()

	c := ts.client()
	ctx := context.Background()

	_, err := c.Register(ctx, username, username+"-password")
	require.NoError(t, err)

	tok, err := c.Login(ctx, username, username+"-password")
	require.NoError(t, err)
	c.Authorize(tok.AccessToken)
	return c
}

// adminClient logs in as the bootstrapped admin.
func (ts *testServer) adminClient(t *testing.T) *duesapi.Client {
	t.Helper()

	c := ts.client()
	tok, err := c.Login(context.Background(), service.AdminUsername, testAdminPassword)
	require.NoError(t, err)
	c.Authorize(tok.AccessToken)
	return c
}

// requireAPIError asserts err is an *APIError with the given code and status.
func requireAPIError(t *testing.T, err error, status int, code string) {
	t.Helper()

	var apiErr *duesapi.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, status, apiErr.StatusCode)
	require.Equal(t, code, apiErr.Code)
}
