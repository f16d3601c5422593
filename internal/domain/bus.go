package domain

import "time"

// BusType тип автобуса
type BusType string

const (
	BusTypeSeater  BusType = "seater"
	BusTypeSleeper BusType = "sleeper"
	BusTypeAC      BusType = "ac"
	BusTypeMinibus BusType = "minibus"
)

// IsValid returns true if the bus type is recognized
func (t BusType) IsValid() bool {
	switch t {
	case BusTypeSeater, BusTypeSleeper, BusTypeAC, BusTypeMinibus:
		return true
	}
	return false
}

// BusStatus эксплуатационный статус автобуса
type BusStatus string

const (
	BusStatusActive      BusStatus = "active"
	BusStatusMaintenance BusStatus = "maintenance"
	BusStatusRetired     BusStatus = "retired"
)

// IsValid returns true if the bus status is recognized
func (s BusStatus) IsValid() bool {
	switch s {
	case BusStatusActive, BusStatusMaintenance, BusStatusRetired:
		return true
	}
	return false
}

// Bus represents a vehicle in the fleet
type Bus struct {
	ID        int64
	Number    string // бортовой номер, уникальный
	Model     string
	Capacity  int
	Type      BusType
	Status    BusStatus
	RouteID   *int64 // назначенный маршрут, если есть
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BusUpdate частичное обновление автобуса, nil-поля не изменяются
type BusUpdate struct {
	Model    *string
	Capacity *int
	Type     *BusType
	Status   *BusStatus
	RouteID  *int64
}
