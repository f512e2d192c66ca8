package router

import "net/http"

type PaymentInstructionRouteRegistrar interface {
	RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler)
}

type HealthRouteRegistrar interface {
	RegisterRoutes(mux *http.ServeMux)
}

// New assembles the route table. Health and API docs stay outside the auth
// chain; authMiddleware may be nil when the API runs open.
func New(
	paymentInstructionController PaymentInstructionRouteRegistrar,
	healthController HealthRouteRegistrar,
	authMiddleware func(http.Handler) http.Handler,
) *http.ServeMux {
	mux := http.NewServeMux()
	registerSwaggerRoutes(mux)

	if paymentInstructionController != nil {
		paymentInstructionController.RegisterRoutes(mux, authMiddleware)
	}
	if healthController != nil {
		healthController.RegisterRoutes(mux)
	}

	return mux
}
