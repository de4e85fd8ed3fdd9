package http

import (
	"net/http"

	"clinic-schedule-service/internal/delivery/http/handler"
	"clinic-schedule-service/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router          *mux.Router
	scheduleHandler *handler.ScheduleHandler
	corsMiddleware  *middleware.CORSMiddleware
}

func NewRouter(
	scheduleHandler *handler.ScheduleHandler,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:          mux.NewRouter(),
		scheduleHandler: scheduleHandler,
		corsMiddleware:  corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Clinic schedule routes
	clinics := api.PathPrefix("/clinics/{clinicId}").Subrouter()
	clinics.HandleFunc("/visits", r.scheduleHandler.ScheduleVisit).Methods(http.MethodPost)
	clinics.HandleFunc("/visits/{visitId}", r.scheduleHandler.CancelVisit).Methods(http.MethodDelete)
	clinics.HandleFunc("/on-call", r.scheduleHandler.OpenOnCallBlock).Methods(http.MethodPost)
	clinics.HandleFunc("/rooms/{room}/block-out", r.scheduleHandler.BlockOutRoom).Methods(http.MethodPost)
	clinics.HandleFunc("/schedule", r.scheduleHandler.GetSnapshot).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
