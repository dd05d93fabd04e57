package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/auth"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/account"
	apdomain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	doctordomain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/doctor"
	patientdomain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/patient"
	reportdomain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/report"
	"github.com/BruksfildServices01/clinic-scheduler/internal/handlers"
	"github.com/BruksfildServices01/clinic-scheduler/internal/lock"
	"github.com/BruksfildServices01/clinic-scheduler/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/appointment"
	ucAuth "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/auth"
	ucDoctor "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/doctor"
	ucPatient "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/patient"
	ucReport "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/report"
)

// Deps are the singletons the routes are built from.
type Deps struct {
	Appointments apdomain.Repository
	Doctors      doctordomain.Repository
	Patients     patientdomain.Repository
	Accounts     account.Repository
	AuditStore   audit.Store
	Reports      reportdomain.Repository

	Locker lock.Locker
	Audit  *audit.Dispatcher
	Tokens *auth.Tokens
	Pings  map[string]handlers.PingFunc

	CheckEmailDomain bool
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// USE CASES
	// ======================================================
	getDoctorUC := ucDoctor.NewGetDoctor(d.Doctors)
	getProfileUC := ucPatient.NewGetProfile(d.Patients)

	appointmentHandler := handlers.NewAppointmentHandler(
		ucAppointment.NewBookAppointment(d.Appointments, d.Locker, d.Audit),
		ucAppointment.NewRescheduleAppointment(d.Appointments, d.Locker, d.Audit),
		ucAppointment.NewCancelAppointment(d.Appointments, d.Audit),
		ucAppointment.NewCompleteAppointment(d.Appointments, d.Audit),
		ucAppointment.NewListAppointmentsByDate(d.Appointments),
		ucAppointment.NewListUpcoming(d.Appointments),
		getDoctorUC,
		getProfileUC,
	)

	doctorHandler := handlers.NewDoctorHandler(
		ucDoctor.NewListDoctors(d.Doctors),
		ucDoctor.NewSaveDoctor(d.Doctors, d.Audit),
		ucDoctor.NewDeleteDoctor(d.Doctors, d.Audit),
		ucAppointment.NewGetAvailability(d.Appointments),
	)

	patientHandler := handlers.NewPatientHandler(
		ucPatient.NewRegisterPatient(d.Patients, d.Audit, d.CheckEmailDomain),
		getProfileUC,
		ucAppointment.NewListPatientAppointments(d.Appointments),
	)

	authHandler := handlers.NewAuthHandler(ucAuth.NewLogin(d.Accounts, d.Tokens))
	reportHandler := handlers.NewReportHandler(
		ucReport.NewGetDailyReport(d.Reports),
		ucReport.NewGetTopDoctor(d.Reports),
	)
	auditLogsHandler := handlers.NewAuditLogsHandler(d.AuditStore)
	healthHandler := handlers.NewHealthHandler(d.Pings)

	// ======================================================
	// ROUTES
	// ======================================================
	r.GET("/health", healthHandler.Check)

	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.POST("/auth/:role/login", authHandler.Login)
		api.POST("/patients", patientHandler.Register)
		api.GET("/doctors", doctorHandler.List)
		api.GET("/doctors/filter", doctorHandler.Filter)

		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(d.Tokens))
		{
			secured.GET("/doctors/:id/availability", doctorHandler.Availability)

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/")
			admin.Use(middleware.RequireRole(account.RoleAdmin))
			{
				admin.POST("/doctors", doctorHandler.Create)
				admin.PUT("/doctors/:id", doctorHandler.Update)
				admin.DELETE("/doctors/:id", doctorHandler.Delete)

				admin.GET("/reports/daily", reportHandler.Daily)
				admin.GET("/reports/top-doctor/month", reportHandler.TopDoctorByMonth)
				admin.GET("/reports/top-doctor/year", reportHandler.TopDoctorByYear)

				admin.GET("/audit-logs", auditLogsHandler.List)
			}

			// ------------------------------
			// DOCTOR
			// ------------------------------
			doctor := secured.Group("/")
			doctor.Use(middleware.RequireRole(account.RoleDoctor))
			{
				doctor.PUT("/me/availability", doctorHandler.UpdateMyAvailability)
				doctor.GET("/me/appointments", appointmentHandler.ListByDate)
				doctor.GET("/me/appointments/upcoming", appointmentHandler.Upcoming)
				doctor.PATCH("/appointments/:id/complete", appointmentHandler.Complete)
			}

			// ------------------------------
			// PATIENT
			// ------------------------------
			patient := secured.Group("/")
			patient.Use(middleware.RequireRole(account.RolePatient))
			{
				patient.POST("/appointments", appointmentHandler.Book)
				patient.PUT("/appointments/:id", appointmentHandler.Reschedule)
				patient.DELETE("/appointments/:id", appointmentHandler.Cancel)
				patient.GET("/me/patient", patientHandler.Me)
				patient.GET("/me/patient/appointments", patientHandler.History)
			}
		}
	}
}
