package dto

// Response DTOs

type OwnerDashboardStats struct {
	PetCount             int64 `json:"pet_count"`
	UpcomingAppointments int64 `json:"upcoming_appointments"`
	VaccinationsDue      int64 `json:"vaccinations_due"`
}

type DoctorDashboardStats struct {
	AppointmentsToday  int64 `json:"appointments_today"`
	TotalPatients      int64 `json:"total_patients"`
	PrescriptionsIssued int64 `json:"prescriptions_issued"`
}
