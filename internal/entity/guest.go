package entity

import (
	"errors"
	"time"

	"github.com/lib/pq"
)

// "M" = convidado ainda não informou se vai (presente desconhecido)
const PresenteUnknown = "M"

// Entidade: Guest (convidado do casamento)
type Guest struct {
	ID            int            `json:"id"`
	Name          string         `json:"name"`
	Phone         string         `json:"phone"`
	Presente      string         `json:"presente"`
	Acompanhantes pq.StringArray `json:"acompanhantes"`
	Confirmed     bool           `json:"confirmed"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     *time.Time     `json:"updated_at,omitempty"`
}

// Factory
func NewGuest(name, phone, presente string) (*Guest, error) {
	if presente == "" {
		presente = PresenteUnknown
	}

	guest := &Guest{
		Name:          name,
		Phone:         phone,
		Presente:      presente,
		Acompanhantes: pq.StringArray{},
		Confirmed:     false,
	}

	if err := guest.Validate(); err != nil {
		return nil, err
	}

	return guest, nil
}

func (g *Guest) Validate() error {
	if g.Name == "" {
		return errors.New("name is required")
	}
	if len(g.Name) > 100 {
		return errors.New("name must not exceed 100 characters")
	}
	if g.Phone == "" {
		return errors.New("phone is required")
	}
	return nil
}
