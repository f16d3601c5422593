package models

import (
	"time"

	"github.com/avdeyev/BusPark-BookingService/internal/domain"
)

// Request модели

// CreateTicketRequest запрос на создание обращения
type CreateTicketRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// ToDomain конвертирует request в domain модель
// Новое обращение всегда открыто
func (r *CreateTicketRequest) ToDomain() *domain.SupportTicket {
	return &domain.SupportTicket{
		Name:    r.Name,
		Email:   r.Email,
		Subject: r.Subject,
		Message: r.Message,
		Status:  domain.TicketOpen,
	}
}

// UpdateStatusRequest запрос на смену статуса обращения
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Response модели

// TicketResponse ответ с данными обращения
type TicketResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TicketListResponse ответ со списком обращений
type TicketListResponse struct {
	Tickets []TicketResponse `json:"tickets"`
}

// FromDomainTicket конвертирует domain модель в DTO
func FromDomainTicket(t *domain.SupportTicket) *TicketResponse {
	if t == nil {
		return nil
	}

	return &TicketResponse{
		ID:        t.ID,
		Name:      t.Name,
		Email:     t.Email,
		Subject:   t.Subject,
		Message:   t.Message,
		Status:    string(t.Status),
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

// FromDomainTicketList конвертирует список domain моделей в DTO
func FromDomainTicketList(tickets []*domain.SupportTicket) *TicketListResponse {
	resp := &TicketListResponse{
		Tickets: make([]TicketResponse, 0, len(tickets)),
	}

	for _, ticket := range tickets {
		if ticketResp := FromDomainTicket(ticket); ticketResp != nil {
			resp.Tickets = append(resp.Tickets, *ticketResp)
		}
	}

	return resp
}
