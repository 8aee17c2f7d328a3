package usecase

import (
	"context"
	"fmt"

	"github.com/gaspartv/api-whatsapp-fake/internal/entity"
)

type ConfirmGuestUseCase struct {
	Repo     GuestRepositoryInterface
	Notifier ConfirmationNotifier
}

func NewConfirmGuestUseCase(repo GuestRepositoryInterface, notifier ConfirmationNotifier) *ConfirmGuestUseCase {
	return &ConfirmGuestUseCase{Repo: repo, Notifier: notifier}
}

func (uc *ConfirmGuestUseCase) Execute(ctx context.Context, input ConfirmGuestInput) (*entity.Guest, error) {
	presente := input.Presente
	if presente == "" {
		presente = "S"
	}

	guest, err := uc.Repo.Confirm(ctx, input.Phone, presente, input.Acompanhantes)
	if err != nil {
		return nil, fmt.Errorf("erro ao confirmar convidado %s: %w", input.Phone, err)
	}
	if guest == nil {
		return nil, &DomainError{Code: "GUEST_NOT_FOUND", Message: "convidado não encontrado"}
	}

	if uc.Notifier != nil {
		// Melhor esforço: a confirmação já está gravada.
		uc.Notifier.NotifyConfirmation(guest)
	}

	return guest, nil
}
