package dto

import "github.com/yukikurage/empleo-joven-api/internal/services"

// SummaryDTO is the public platform summary
type SummaryDTO struct {
	TotalUsers         int64 `json:"totalUsuarios"`
	TotalYouth         int64 `json:"totalJovenes"`
	TotalCompanies     int64 `json:"totalEmpresas"`
	TotalOpportunities int64 `json:"totalOportunidades"`
	TotalExperiences   int64 `json:"totalExperiencias"`
}

type YouthDashboardDTO struct {
	Postulations int64 `json:"postulaciones"`
	Experiences  int64 `json:"experiencias"`
}

type CompanyDashboardDTO struct {
	Opportunities int64 `json:"oportunidades"`
	Postulations  int64 `json:"postulaciones"`
	Hired         int64 `json:"contratados"`
}

type AdminDashboardDTO struct {
	Users         int64 `json:"usuarios"`
	Opportunities int64 `json:"oportunidades"`
	Connections   int64 `json:"conexiones"`
}

func ToSummaryDTO(summary services.Summary) SummaryDTO {
	return SummaryDTO{
		TotalUsers:         summary.Users,
		TotalYouth:         summary.Youth,
		TotalCompanies:     summary.Companies,
		TotalOpportunities: summary.Opportunities,
		TotalExperiences:   summary.Experiences,
	}
}

func ToYouthDashboardDTO(dashboard services.YouthDashboard) YouthDashboardDTO {
	return YouthDashboardDTO{
		Postulations: dashboard.Postulations,
		Experiences:  dashboard.Experiences,
	}
}

func ToCompanyDashboardDTO(dashboard services.CompanyDashboard) CompanyDashboardDTO {
	return CompanyDashboardDTO{
		Opportunities: dashboard.Opportunities,
		Postulations:  dashboard.Postulations,
		Hired:         dashboard.Hired,
	}
}

func ToAdminDashboardDTO(dashboard services.AdminDashboard) AdminDashboardDTO {
	return AdminDashboardDTO{
		Users:         dashboard.Users,
		Opportunities: dashboard.Opportunities,
		Connections:   dashboard.Connections,
	}
}
