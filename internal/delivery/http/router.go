package http

import (
	"net/http"

	"patient-management-service/internal/delivery/http/handler"
	"patient-management-service/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	authHandler        *handler.AuthHandler
	patientHandler     *handler.PatientHandler
	appointmentHandler *handler.AppointmentHandler
	billingHandler     *handler.BillingHandler
	userHandler        *handler.UserHandler
	authMiddleware     *middleware.AuthMiddleware
	corsMiddleware     *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	patientHandler *handler.PatientHandler,
	appointmentHandler *handler.AppointmentHandler,
	billingHandler *handler.BillingHandler,
	userHandler *handler.UserHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		authHandler:        authHandler,
		patientHandler:     patientHandler,
		appointmentHandler: appointmentHandler,
		billingHandler:     billingHandler,
		userHandler:        userHandler,
		authMiddleware:     authMiddleware,
		corsMiddleware:     corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Patient routes (protected)
	patients := api.PathPrefix("/patients").Subrouter()
	patients.Use(r.authMiddleware.Authenticate)
	patients.HandleFunc("", r.patientHandler.CreatePatient).Methods(http.MethodPost)
	patients.HandleFunc("", r.patientHandler.GetAllPatients).Methods(http.MethodGet)
	patients.HandleFunc("/{id}", r.patientHandler.GetPatient).Methods(http.MethodGet)
	patients.HandleFunc("/{id}", r.patientHandler.UpdatePatient).Methods(http.MethodPut)
	patients.HandleFunc("/{id}", r.patientHandler.DeletePatient).Methods(http.MethodDelete)

	// Appointment routes (protected)
	appointments := api.PathPrefix("/appointments").Subrouter()
	appointments.Use(r.authMiddleware.Authenticate)
	appointments.HandleFunc("", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	appointments.HandleFunc("", r.appointmentHandler.GetAllAppointments).Methods(http.MethodGet)
	appointments.HandleFunc("/{id}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)

	// Billing routes (protected)
	billing := api.PathPrefix("/billing").Subrouter()
	billing.Use(r.authMiddleware.Authenticate)
	billing.HandleFunc("", r.billingHandler.CreateBilling).Methods(http.MethodPost)
	billing.HandleFunc("", r.billingHandler.GetAllBillings).Methods(http.MethodGet)
	billing.HandleFunc("/{id}", r.billingHandler.GetBilling).Methods(http.MethodGet)

	// User management routes (protected - admin only)
	users := api.PathPrefix("/users").Subrouter()
	users.Use(r.authMiddleware.Authenticate)
	users.Use(middleware.RequireAdmin)
	users.HandleFunc("", r.userHandler.CreateUser).Methods(http.MethodPost)
	users.HandleFunc("", r.userHandler.GetAllUsers).Methods(http.MethodGet)
	users.HandleFunc("/{id}", r.userHandler.DeleteUser).Methods(http.MethodDelete)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
