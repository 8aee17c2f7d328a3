package usecase

import (
	"context"

	"github.com/gaspartv/api-whatsapp-fake/internal/entity"
)

type ConfirmationReportUseCase struct {
	Repo GuestRepositoryInterface
}

func NewConfirmationReportUseCase(repo GuestRepositoryInterface) *ConfirmationReportUseCase {
	return &ConfirmationReportUseCase{Repo: repo}
}

// Execute agrega a lista inteira em totais + lista dos confirmados.
func (uc *ConfirmationReportUseCase) Execute(ctx context.Context) (*ReportOutput, error) {
	guests, err := uc.Repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	confirmed := []entity.Guest{}
	for _, guest := range guests {
		if guest.Confirmed {
			confirmed = append(confirmed, guest)
		}
	}

	return &ReportOutput{
		TotalInvited:   len(guests),
		TotalConfirmed: len(confirmed),
		ConfirmedList:  confirmed,
	}, nil
}
