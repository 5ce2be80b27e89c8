package setting

type UpdateLeaveAllottedDaysRequest struct {
	Casual     *int `json:"casual" binding:"required,min=0"`
	Sick       *int `json:"sick" binding:"required,min=0"`
	WithoutPay *int `json:"without_pay" binding:"required,min=0"`
}

type UpdateOnboardingTasksRequest struct {
	Tasks []OnboardingTaskTemplate `json:"tasks" binding:"required,min=1,dive"`
}
