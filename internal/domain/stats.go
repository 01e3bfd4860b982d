package domain

type DashboardStats struct {
	HoursThisWeek     int
	TotalHours        int
	CurrentStreak     int
	BookingsThisMonth int
}
