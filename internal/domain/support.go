package domain

import "time"

// TicketStatus статус обращения в поддержку
type TicketStatus string

const (
	TicketOpen       TicketStatus = "open"
	TicketInProgress TicketStatus = "in_progress"
	TicketResolved   TicketStatus = "resolved"
	TicketClosed     TicketStatus = "closed"
)

// IsValid returns true if the ticket status is recognized
func (s TicketStatus) IsValid() bool {
	switch s {
	case TicketOpen, TicketInProgress, TicketResolved, TicketClosed:
		return true
	}
	return false
}

// SupportTicket represents a contact/support request
type SupportTicket struct {
	ID        int64
	Name      string
	Email     string
	Subject   string
	Message   string
	Status    TicketStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}
