package dto

type RoleProfileResponse struct {
	Role        string   `json:"role"`
	AvgSalary   float64  `json:"avg_salary"`
	DemandLevel string   `json:"demand_level"`
	CoreSkills  []string `json:"core_skills"`
}

type RoleListResponse struct {
	Roles []RoleProfileResponse `json:"roles"`
}
