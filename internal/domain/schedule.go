package domain

type WorkMode string

const (
	WorkModeEveryDay WorkMode = "every_day"
	WorkModeMonFri   WorkMode = "mon_fri"
	WorkModeMonSat   WorkMode = "mon_sat"
)

type ShiftDefinition struct {
	Name      string `json:"name" validate:"required"`
	StartHour int    `json:"startHour" validate:"min=0,max=23"`
	Length    int    `json:"length" validate:"min=1,max=24"`
	Required  int    `json:"required" validate:"min=0"`
}

type Rules struct {
	MinRestHours       int  `json:"minRestHours" validate:"min=0"`
	MaxConsecutiveDays *int `json:"maxConsecutiveDays"`
}

// PreferenceDefinition is a soft request not to schedule an employee on a
// given 1-based calendar day. Priority is the penalty weight, 0 means default.
type PreferenceDefinition struct {
	EmployeeID int64 `json:"employeeID"`
	Day        int   `json:"day"`
	Priority   int   `json:"priority"`
}

type ScheduleRequest struct {
	Year            int                    `json:"year" validate:"min=2000,max=2100"`
	Month           int                    `json:"month" validate:"min=1,max=12"`
	Shifts          []ShiftDefinition      `json:"shifts" validate:"required,min=1,dive"`
	Rules           Rules                  `json:"rules"`
	HolidaysMode    bool                   `json:"holidaysMode"` // true: holidays are workable
	CompanyWorkMode WorkMode               `json:"companyWorkMode" validate:"required,oneof=every_day mon_fri mon_sat"`
	Preferences     []PreferenceDefinition `json:"preferences"`
}

type ShiftAssignment struct {
	Shift     string   `json:"shift"`
	Employees []string `json:"employees"`
}

type ScheduledDay struct {
	Day    int               `json:"day"` // 1-based calendar day
	Shifts []ShiftAssignment `json:"shifts"`
}

type EmployeeSummary struct {
	Shifts int `json:"shifts"`
	Hours  int `json:"hours"`
	Target int `json:"target"`
}

// PreferenceDiagnostic explains why a preference was applied or dropped.
// Dropping a preference is never a request-level failure.
type PreferenceDiagnostic struct {
	EmployeeID int64  `json:"employeeID"`
	Day        int    `json:"day"`
	Applied    bool   `json:"applied"`
	Reason     string `json:"reason"`
}

const (
	PreferenceInvalidPayload   = "invalid_payload"
	PreferenceEmployeeNotFound = "employee_not_found"
	PreferenceDayNotScheduled  = "day_not_scheduled_by_mode"
	PreferenceSoftPenaltyAdded = "soft_penalty_added"
)

type ScheduleMeta struct {
	DaysInMonth         int                    `json:"daysInMonth"`
	ScheduledDaysCount  int                    `json:"scheduledDaysCount"`
	FullTimeHoursUsed   int                    `json:"fullTimeHoursUsed"`
	MaxHoursPerEmployee int                    `json:"maxHoursPerEmployee"`
	Preferences         []PreferenceDiagnostic `json:"preferences"`
}

type ScheduleResponse struct {
	Schedule []ScheduledDay             `json:"schedule"`
	Summary  map[string]EmployeeSummary `json:"summary"`
	Meta     ScheduleMeta               `json:"meta"`
}
