package usecase

import (
	"context"
	"fmt"

	"github.com/gaspartv/api-whatsapp-fake/internal/entity"
)

type RegisterGuestsUseCase struct {
	Repo GuestRepositoryInterface
}

func NewRegisterGuestsUseCase(repo GuestRepositoryInterface) *RegisterGuestsUseCase {
	return &RegisterGuestsUseCase{Repo: repo}
}

// Execute processa os convidados na ordem recebida, um por vez.
// A checagem de telefone duplicado precisa ser sequencial: não há UNIQUE
// no schema, então dois inserts concorrentes do mesmo telefone passariam.
// Dois clientes importando ao mesmo tempo ainda podem duplicar (TOCTOU) —
// limitação aceita, o import é administrativo e de baixo volume.
func (uc *RegisterGuestsUseCase) Execute(ctx context.Context, inputs []GuestInput) ([]entity.Guest, error) {
	for _, input := range inputs {
		existing, err := uc.Repo.FindByPhone(ctx, input.Phone)
		if err != nil {
			// Falha de storage aborta o restante: sem sucesso parcial.
			return nil, fmt.Errorf("erro ao consultar convidado %s: %w", input.Phone, err)
		}
		if existing != nil {
			// Telefone já cadastrado: pula, import é idempotente.
			continue
		}

		guest, err := entity.NewGuest(input.Name, input.Phone, input.Presente)
		if err != nil {
			return nil, &DomainError{Code: "INVALID_GUEST", Message: err.Error()}
		}

		if err := uc.Repo.Create(ctx, guest); err != nil {
			return nil, fmt.Errorf("erro ao cadastrar convidado %s: %w", input.Phone, err)
		}
	}

	return uc.Repo.ListAll(ctx)
}
