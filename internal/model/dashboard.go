package model

// DashboardStats are the admin dashboard counts. Each count is taken with
// an independent query; transient skew between them is acceptable.
type DashboardStats struct {
	TotalUsers        int64 `json:"totalUsers"`
	TotalDoctors      int64 `json:"totalDoctors"`
	TotalPatients     int64 `json:"totalPatients"`
	TotalAppointments int64 `json:"totalAppointments"`
}
