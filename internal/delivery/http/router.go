package http

import (
	"net/http"

	"vetclinic-api/internal/delivery/http/handler"
	"vetclinic-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router               *mux.Router
	authHandler          *handler.AuthHandler
	appointmentHandler   *handler.AppointmentHandler
	doctorHandler        *handler.DoctorHandler
	petHandler           *handler.PetHandler
	hospitalHandler      *handler.HospitalHandler
	medicalRecordHandler *handler.MedicalRecordHandler
	prescriptionHandler  *handler.PrescriptionHandler
	vaccinationHandler   *handler.VaccinationHandler
	statsHandler         *handler.StatsHandler
	authMiddleware       *middleware.AuthMiddleware
	corsMiddleware       *middleware.CORSMiddleware
	rateLimitMiddleware  *middleware.RateLimitMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	appointmentHandler *handler.AppointmentHandler,
	doctorHandler *handler.DoctorHandler,
	petHandler *handler.PetHandler,
	hospitalHandler *handler.HospitalHandler,
	medicalRecordHandler *handler.MedicalRecordHandler,
	prescriptionHandler *handler.PrescriptionHandler,
	vaccinationHandler *handler.VaccinationHandler,
	statsHandler *handler.StatsHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	rateLimitMiddleware *middleware.RateLimitMiddleware,
) *Router {
	return &Router{
		router:               mux.NewRouter(),
		authHandler:          authHandler,
		appointmentHandler:   appointmentHandler,
		doctorHandler:        doctorHandler,
		petHandler:           petHandler,
		hospitalHandler:      hospitalHandler,
		medicalRecordHandler: medicalRecordHandler,
		prescriptionHandler:  prescriptionHandler,
		vaccinationHandler:   vaccinationHandler,
		statsHandler:         statsHandler,
		authMiddleware:       authMiddleware,
		corsMiddleware:       corsMiddleware,
		rateLimitMiddleware:  rateLimitMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register/pet-owner", r.authHandler.RegisterPetOwner).Methods(http.MethodPost)
	auth.HandleFunc("/register/doctor", r.authHandler.RegisterDoctor).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Hospital directory (public)
	api.HandleFunc("/hospitals", r.hospitalHandler.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/hospitals/{id}", r.hospitalHandler.GetByID).Methods(http.MethodGet)

	// Hospital management (admin only)
	hospitals := api.PathPrefix("/hospitals").Subrouter()
	hospitals.Use(r.authMiddleware.Authenticate)
	hospitals.Use(middleware.RequireAdmin)
	hospitals.HandleFunc("", r.hospitalHandler.Create).Methods(http.MethodPost)
	hospitals.HandleFunc("/{id}", r.hospitalHandler.Update).Methods(http.MethodPatch)
	hospitals.HandleFunc("/{id}", r.hospitalHandler.Delete).Methods(http.MethodDelete)

	// Pet routes (pet owner)
	pets := api.PathPrefix("/pets").Subrouter()
	pets.Use(r.authMiddleware.Authenticate)
	pets.Use(middleware.RequirePetOwner)
	pets.HandleFunc("", r.petHandler.Create).Methods(http.MethodPost)
	pets.HandleFunc("", r.petHandler.GetAll).Methods(http.MethodGet)
	pets.HandleFunc("/{id}", r.petHandler.GetByID).Methods(http.MethodGet)
	pets.HandleFunc("/{id}", r.petHandler.Update).Methods(http.MethodPatch)
	pets.HandleFunc("/{id}", r.petHandler.Delete).Methods(http.MethodDelete)

	// Clinical data per pet. Writes are doctor-only, reads are authorized
	// inside the usecases (the pet's owner may read too).
	clinical := api.PathPrefix("/pets/{petId}").Subrouter()
	clinical.Use(r.authMiddleware.Authenticate)
	clinical.HandleFunc("/medical-records", r.medicalRecordHandler.ListByPet).Methods(http.MethodGet)
	clinical.HandleFunc("/prescriptions", r.prescriptionHandler.ListByPet).Methods(http.MethodGet)
	clinical.HandleFunc("/vaccinations", r.vaccinationHandler.ListByPet).Methods(http.MethodGet)

	clinicalWrite := api.PathPrefix("/pets/{petId}").Subrouter()
	clinicalWrite.Use(r.authMiddleware.Authenticate)
	clinicalWrite.Use(middleware.RequireDoctor)
	clinicalWrite.HandleFunc("/medical-records", r.medicalRecordHandler.Create).Methods(http.MethodPost)
	clinicalWrite.HandleFunc("/prescriptions", r.prescriptionHandler.Create).Methods(http.MethodPost)
	clinicalWrite.HandleFunc("/vaccinations", r.vaccinationHandler.Create).Methods(http.MethodPost)

	// Appointment routes. Booking is owner-only, the rest is authorized by
	// the lifecycle usecase itself.
	appointmentsCreate := api.PathPrefix("/appointments").Subrouter()
	appointmentsCreate.Use(r.authMiddleware.Authenticate)
	appointmentsCreate.Use(middleware.RequirePetOwner)
	appointmentsCreate.HandleFunc("", r.appointmentHandler.Create).Methods(http.MethodPost)

	appointments := api.PathPrefix("/appointments").Subrouter()
	appointments.Use(r.authMiddleware.Authenticate)
	appointments.HandleFunc("", r.appointmentHandler.List).Methods(http.MethodGet)
	appointments.HandleFunc("/{id}", r.appointmentHandler.GetByID).Methods(http.MethodGet)
	appointments.HandleFunc("/{id}", r.appointmentHandler.Update).Methods(http.MethodPatch)
	appointments.HandleFunc("/{id}/cancel", r.appointmentHandler.Cancel).Methods(http.MethodPatch)
	appointments.HandleFunc("/{id}/reschedule", r.appointmentHandler.Reschedule).Methods(http.MethodPatch)

	// Doctor routes
	doctor := api.PathPrefix("/doctor").Subrouter()
	doctor.Use(r.authMiddleware.Authenticate)
	doctor.Use(middleware.RequireDoctor)
	doctor.HandleFunc("/my-appointments", r.doctorHandler.MyAppointments).Methods(http.MethodGet)
	doctor.HandleFunc("/upcoming", r.doctorHandler.Upcoming).Methods(http.MethodGet)
	doctor.HandleFunc("/past", r.doctorHandler.Past).Methods(http.MethodGet)
	doctor.HandleFunc("/{id}/confirm", r.doctorHandler.Confirm).Methods(http.MethodPatch)
	doctor.HandleFunc("/{id}/complete", r.doctorHandler.Complete).Methods(http.MethodPatch)
	doctor.HandleFunc("/patients", r.doctorHandler.Patients).Methods(http.MethodGet)
	doctor.HandleFunc("/patients/{petId}/medical-history", r.doctorHandler.MedicalHistory).Methods(http.MethodGet)
	doctor.HandleFunc("/suggestions", r.doctorHandler.Suggestions).Methods(http.MethodPost)
	doctor.HandleFunc("/profile", r.doctorHandler.Profile).Methods(http.MethodGet)

	// Dashboard stats
	stats := api.PathPrefix("/stats").Subrouter()
	stats.Use(r.authMiddleware.Authenticate)

	ownerStats := stats.NewRoute().Subrouter()
	ownerStats.Use(middleware.RequirePetOwner)
	ownerStats.HandleFunc("/owner-dashboard", r.statsHandler.OwnerDashboard).Methods(http.MethodGet)

	doctorStats := stats.NewRoute().Subrouter()
	doctorStats.Use(middleware.RequireDoctor)
	doctorStats.HandleFunc("/doctor-dashboard", r.statsHandler.DoctorDashboard).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)
	r.router.Use(r.rateLimitMiddleware.Limit)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
