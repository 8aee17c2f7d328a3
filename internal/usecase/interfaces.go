package usecase

import (
	"context"

	"github.com/gaspartv/api-whatsapp-fake/internal/entity"
)

type GuestRepositoryInterface interface {
	FindByPhone(ctx context.Context, phone string) (*entity.Guest, error)
	Create(ctx context.Context, g *entity.Guest) error
	ListAll(ctx context.Context) ([]entity.Guest, error)
	ListUnconfirmed(ctx context.Context) ([]entity.Guest, error)
	Confirm(ctx context.Context, phone, presente string, acompanhantes []string) (*entity.Guest, error)
}

// BroadcastRun é o que o disparo devolve na hora: o envio de verdade
// continua em background.
type BroadcastRun struct {
	ID        string
	Scheduled int
}

type InvitationDispatcher interface {
	Dispatch(guests []entity.Guest) BroadcastRun
}

// ConfirmationNotifier avisa os noivos quando alguém confirma. Falha de
// notificação nunca derruba a confirmação.
type ConfirmationNotifier interface {
	NotifyConfirmation(guest *entity.Guest) error
}
