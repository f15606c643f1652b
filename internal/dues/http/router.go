package http

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/ovalview/hoadues/internal/dues/blob"
	"github.com/ovalview/hoadues/internal/dues/domain"
	"github.com/ovalview/hoadues/internal/dues/service"
	"github.com/ovalview/hoadues/internal/dues/store"
	"github.com/ovalview/hoadues/pkg/duesapi"
	"github.com/ovalview/hoadues/pkg/httpx"
	"github.com/ovalview/hoadues/pkg/jwtx"
	"github.com/ovalview/hoadues/pkg/slogx"

	_ "github.com/ovalview/hoadues/api/dues" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	issuer       string
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store store.Store
	blobs *blob.Store

	UserService    *service.UserService
	SessionService *service.SessionService
	LedgerService  *service.LedgerService
	UploadService  *service.UploadService
	Guard          *service.Guard
}

func NewRouter(
	verifier jwtx.Verifier,
	issuer, buildVersion string,
	st store.Store,
	blobs *blob.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		issuer:       issuer,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		blobs:        blobs,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerPayments()
	r.registerAdmin()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			HOA Dues Service API
//	@version		0.1.0
//	@description	Payment tracking backend for a homeowners association: homeowners register, upload dues receipts per billing period, and admins review submissions and pull monthly reports.
//	@description
//	@description				Access tokens are EdDSA-signed JWTs carrying the caller's verified identity and role.
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	// POST /register - strict rate limit by IP (public signup endpoint)
	registerHandler := &RegisterHandler{UserService: r.UserService}
	r.Mux.Handle("POST /v1/auth/register",
		httpx.Chain(registerHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /login - strict rate limit by IP + username to slow brute force
	// against a single account
	loginHandler := &LoginHandler{
		UserService:    r.UserService,
		SessionService: r.SessionService,
	}
	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "username"),
		),
	)

	// POST /password - authenticated, moderate rate limit by user
	passwordHandler := &PasswordHandler{UserService: r.UserService}
	r.Mux.Handle("POST /v1/auth/password",
		httpx.Chain(passwordHandler,
			httpx.AuthnMiddleware(r.verifier, r.issuer),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerPayments() {
	// POST /payments - moderate rate limit by user (uploads are heavier than reads)
	submitHandler := &SubmitHandler{UploadService: r.UploadService}
	r.Mux.Handle("POST /v1/payments",
		httpx.Chain(submitHandler,
			httpx.AuthnMiddleware(r.verifier, r.issuer),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	listHandler := &PaymentListHandler{LedgerService: r.LedgerService}
	r.Mux.Handle("GET /v1/payments",
		httpx.Chain(listHandler,
			httpx.AuthnMiddleware(r.verifier, r.issuer),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	statusHandler := &PaymentStatusHandler{LedgerService: r.LedgerService}
	r.Mux.Handle("GET /v1/payments/status",
		httpx.Chain(statusHandler,
			httpx.AuthnMiddleware(r.verifier, r.issuer),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	receiptHandler := &ReceiptHandler{LedgerService: r.LedgerService, Blobs: r.blobs}
	r.Mux.Handle("GET /v1/payments/{id}/receipt",
		httpx.Chain(receiptHandler,
			httpx.AuthnMiddleware(r.verifier, r.issuer),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerAdmin() {
	// All admin routes share the same chain: verified token, admin role in
	// the claims, and a live store check so a demoted or disabled admin
	// holding an unexpired token is still locked out.
	secured := func(h http.Handler) http.Handler {
		return httpx.Chain(h,
			httpx.AuthnMiddleware(r.verifier, r.issuer),
			httpx.RequireAnyRole(domain.RoleAdmin),
			r.requireStoredAdmin(),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		)
	}

	paymentsHandler := &AdminPaymentsHandler{LedgerService: r.LedgerService}
	r.Mux.Handle("GET /v1/admin/payments", secured(paymentsHandler))

	reviewHandler := &ReviewHandler{LedgerService: r.LedgerService}
	r.Mux.Handle("POST /v1/admin/payments/{id}/approve", secured(http.HandlerFunc(reviewHandler.HandleApprove)))
	r.Mux.Handle("POST /v1/admin/payments/{id}/reject", secured(http.HandlerFunc(reviewHandler.HandleReject)))

	reportsHandler := &ReportsHandler{LedgerService: r.LedgerService}
	r.Mux.Handle("GET /v1/admin/reports/monthly-total", secured(http.HandlerFunc(reportsHandler.HandleMonthlyTotal)))

	usersHandler := &AdminUsersHandler{UserService: r.UserService}
	r.Mux.Handle("GET /v1/admin/users", secured(http.HandlerFunc(usersHandler.HandleList)))
	r.Mux.Handle("POST /v1/admin/users/{id}/enabled", secured(http.HandlerFunc(usersHandler.HandleSetEnabled)))

	summaryHandler := &SummaryHandler{LedgerService: r.LedgerService}
	r.Mux.Handle("GET /v1/admin/summary", secured(summaryHandler))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

// requireStoredAdmin re-checks the caller's role and enabled flag against
// the credential store. Runs after AuthnMiddleware so the user ID in the
// context is always a verified one.
func (r *Router) requireStoredAdmin() httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx := req.Context()

			err := r.Guard.RequireRole(ctx, httpx.UserIDFromContext(ctx), domain.RoleAdmin)
			if err != nil {
				if errors.Is(err, service.ErrForbidden) || errors.Is(err, service.ErrNotFound) {
					duesapi.ErrForbidden.WriteError(w)
					return
				}
				slogx.FromContext(ctx).Error("admin role check failed", "err", err)
				duesapi.ErrServerError.WriteError(w)
				return
			}

			next.ServeHTTP(w, req)
		})
	}
}
