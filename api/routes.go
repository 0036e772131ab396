package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tadbeerx/admin-console/internal/session"
	"github.com/tadbeerx/admin-console/pkg/backend"
)

func SetupRoutes(version, buildTime string, client *backend.Client, store session.Store) *mux.Router {
	r := mux.NewRouter()

	// Middleware chain
	r.Use(RequestIDMiddleware)
	r.Use(LoggingMiddleware)
	r.Use(CORSMiddleware)
	r.Use(RecoveryMiddleware)

	// Create handlers
	systemHandler := NewSystemHandler(version, buildTime)
	sessionHandler := NewSessionHandler(client, store)
	dashboardHandler := NewDashboardHandler(client)
	workersHandler := NewWorkersHandler(client)
	inquiriesHandler := NewInquiriesHandler(client, store)
	referenceHandler := NewReferenceHandler(client)
	auditHandler := NewAuditHandler(client)
	mediaHandler := NewMediaHandler(client)
	proxyHandler := NewProxyHandler(client)

	// Open endpoints
	r.HandleFunc("/version", systemHandler.Version).Methods("GET")
	r.HandleFunc("/health", systemHandler.Health).Methods("GET")
	r.HandleFunc("/login", sessionHandler.LoginPage).Methods("GET")

	loginLimit := RateLimitMiddleware(1, 5)
	r.Handle("/login", loginLimit(http.HandlerFunc(sessionHandler.Login))).Methods("POST")

	// Authenticated pages
	pages := r.PathPrefix("/").Subrouter()
	pages.Use(RequireSession(store))
	pages.HandleFunc("/", dashboardHandler.Page(store)).Methods("GET")
	pages.HandleFunc("/logout", sessionHandler.Logout).Methods("POST")

	// JSON surface for the page scripts
	console := r.PathPrefix("/console").Subrouter()
	console.Use(RequireSession(store))

	console.HandleFunc("/auth/verify", sessionHandler.Verify).Methods("GET")

	console.HandleFunc("/dashboard/stats", dashboardHandler.Stats).Methods("GET")
	console.HandleFunc("/dashboard/counts", dashboardHandler.Counts).Methods("GET")

	console.HandleFunc("/workers", workersHandler.List).Methods("GET")
	console.HandleFunc("/workers", workersHandler.Create).Methods("POST")
	console.HandleFunc("/workers/stats", workersHandler.Stats).Methods("GET")
	console.HandleFunc("/workers/bulk", workersHandler.Bulk).Methods("POST")
	console.HandleFunc("/workers/{id}", workersHandler.Get).Methods("GET")
	console.HandleFunc("/workers/{id}", workersHandler.Update).Methods("PUT")
	console.HandleFunc("/workers/{id}", workersHandler.Delete).Methods("DELETE")
	console.HandleFunc("/workers/{id}/field", workersHandler.SetField).Methods("PATCH")

	console.HandleFunc("/workers/{id}/media", mediaHandler.Slots).Methods("GET")
	console.HandleFunc("/workers/{id}/media/{slot}", mediaHandler.Upload).Methods("POST")
	console.HandleFunc("/workers/{id}/media/{slot}", mediaHandler.Delete).Methods("DELETE")
	console.HandleFunc("/workers/{id}/photo", mediaHandler.LegacyPhotoUpload).Methods("POST")
	console.HandleFunc("/workers/{id}/photo", mediaHandler.LegacyPhotoDelete).Methods("DELETE")

	console.HandleFunc("/inquiries", inquiriesHandler.List).Methods("GET")
	console.HandleFunc("/inquiries/stats", inquiriesHandler.Stats).Methods("GET")
	console.HandleFunc("/inquiries/{id}", inquiriesHandler.Get).Methods("GET")
	console.HandleFunc("/inquiries/{id}/assign", inquiriesHandler.Assign).Methods("POST")
	console.HandleFunc("/inquiries/{id}/respond", inquiriesHandler.Respond).Methods("POST")
	console.HandleFunc("/inquiries/{id}/close", inquiriesHandler.Close).Methods("POST")
	console.HandleFunc("/inquiries/{id}/spam", inquiriesHandler.MarkSpam).Methods("POST")

	console.HandleFunc("/reference", referenceHandler.Combined).Methods("GET")
	console.HandleFunc("/reference/{type}", referenceHandler.List).Methods("GET")
	console.HandleFunc("/reference/{type}", referenceHandler.Create).Methods("POST")
	console.HandleFunc("/reference/{type}/{id}", referenceHandler.Update).Methods("PUT")
	console.HandleFunc("/reference/{type}/{id}", referenceHandler.Delete).Methods("DELETE")

	console.HandleFunc("/audit", auditHandler.List).Methods("GET")

	console.HandleFunc("/blob-test/upload", proxyHandler.BlobUpload).Methods("POST")
	console.HandleFunc("/blob-test/delete", proxyHandler.BlobDelete).Methods("POST")

	return r
}
