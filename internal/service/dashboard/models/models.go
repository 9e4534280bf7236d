package models

import (
	appointmentModels "github.com/brunocamarg0/trim-squire/internal/service/appointments/models"
	financeModels "github.com/brunocamarg0/trim-squire/internal/service/finance/models"
)

// StatsResponse сводка барбершопа на текущий день и месяц
type StatsResponse struct {
	TodayAppointments    int                                     `json:"todayAppointments"`
	TodayRevenue         float64                                 `json:"todayRevenue"`
	MonthlyAppointments  int                                     `json:"monthlyAppointments"`
	MonthlyRevenue       float64                                 `json:"monthlyRevenue"`
	ActiveBarbers        int                                     `json:"activeBarbers"`
	ActiveClients        int                                     `json:"activeClients"`
	UpcomingAppointments []appointmentModels.AppointmentResponse `json:"upcomingAppointments"`
	RecentTransactions   []financeModels.TransactionResponse     `json:"recentTransactions"`
}
