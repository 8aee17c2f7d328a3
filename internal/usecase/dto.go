package usecase

import "github.com/gaspartv/api-whatsapp-fake/internal/entity"

type GuestInput struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Presente string `json:"presente,omitempty"`
}

type ConfirmGuestInput struct {
	Phone         string   `json:"phone"`
	Presente      string   `json:"presente,omitempty"`
	Acompanhantes []string `json:"acompanhantes,omitempty"`
}

type ReportOutput struct {
	TotalInvited   int            `json:"totalInvited"`
	TotalConfirmed int            `json:"totalConfirmed"`
	ConfirmedList  []entity.Guest `json:"confirmedList"`
}

type BroadcastOutput struct {
	Message   string `json:"message"`
	RunID     string `json:"run_id"`
	Scheduled int    `json:"scheduled"`
}
