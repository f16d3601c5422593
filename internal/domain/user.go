package domain

import "time"

// Role роль пользователя в системе
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleDriver    Role = "driver"
	RolePassenger Role = "passenger"
	RoleSupport   Role = "support"
)

// IsValid returns true if the role is recognized
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleDriver, RolePassenger, RoleSupport:
		return true
	}
	return false
}

// EmploymentStatus статус занятости водителя
type EmploymentStatus string

const (
	EmploymentFullTime EmploymentStatus = "full_time"
	EmploymentPartTime EmploymentStatus = "part_time"
	EmploymentContract EmploymentStatus = "contract"
)

// IsValid returns true if the employment status is recognized
func (s EmploymentStatus) IsValid() bool {
	switch s {
	case EmploymentFullTime, EmploymentPartTime, EmploymentContract:
		return true
	}
	return false
}

// ShiftPreference предпочитаемая смена водителя
type ShiftPreference string

const (
	ShiftMorning    ShiftPreference = "morning"
	ShiftEvening    ShiftPreference = "evening"
	ShiftNight      ShiftPreference = "night"
	ShiftRotational ShiftPreference = "rotational"
)

// IsValid returns true if the shift preference is recognized
func (s ShiftPreference) IsValid() bool {
	switch s {
	case ShiftMorning, ShiftEvening, ShiftNight, ShiftRotational:
		return true
	}
	return false
}

// BloodType группа крови (для профиля водителя)
type BloodType string

const (
	BloodAPos  BloodType = "A+"
	BloodANeg  BloodType = "A-"
	BloodBPos  BloodType = "B+"
	BloodBNeg  BloodType = "B-"
	BloodABPos BloodType = "AB+"
	BloodABNeg BloodType = "AB-"
	BloodOPos  BloodType = "O+"
	BloodONeg  BloodType = "O-"
)

// IsValid returns true if the blood type is recognized
func (t BloodType) IsValid() bool {
	switch t {
	case BloodAPos, BloodANeg, BloodBPos, BloodBNeg, BloodABPos, BloodABNeg, BloodOPos, BloodONeg:
		return true
	}
	return false
}

// DriverProfile дополнительные поля профиля для роли driver
type DriverProfile struct {
	EmploymentStatus EmploymentStatus
	ShiftPreference  ShiftPreference
	BloodType        BloodType
}

// Validate проверяет перечисления профиля водителя
func (p *DriverProfile) Validate() bool {
	return p.EmploymentStatus.IsValid() && p.ShiftPreference.IsValid() && p.BloodType.IsValid()
}

// User represents an account in the system
type User struct {
	ID           int64
	Name         string
	Email        string // уникальный
	Phone        string
	PasswordHash string
	Role         Role
	Driver       *DriverProfile // заполнен только для роли driver
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin returns true if the user has the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
