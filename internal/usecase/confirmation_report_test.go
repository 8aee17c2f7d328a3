package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/gaspartv/api-whatsapp-fake/internal/entity"
)

func TestConfirmationReportCountsConfirmed(t *testing.T) {
	repo := new(MockGuestRepository)
	uc := NewConfirmationReportUseCase(repo)

	guests := []entity.Guest{
		{ID: 1, Name: "Ana", Phone: "1", Confirmed: false},
		{ID: 2, Name: "Bruno", Phone: "2", Confirmed: true},
		{ID: 3, Name: "Carla", Phone: "3", Confirmed: true},
		{ID: 4, Name: "Davi", Phone: "4", Confirmed: false},
	}
	repo.On("ListAll", mock.Anything).Return(guests, nil).Once()

	report, err := uc.Execute(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 4, report.TotalInvited)
	assert.Equal(t, 2, report.TotalConfirmed)
	assert.Len(t, report.ConfirmedList, 2)
	assert.Equal(t, "Bruno", report.ConfirmedList[0].Name)
	assert.Equal(t, "Carla", report.ConfirmedList[1].Name)
}

func TestConfirmationReportEmptyList(t *testing.T) {
	repo := new(MockGuestRepository)
	uc := NewConfirmationReportUseCase(repo)

	repo.On("ListAll", mock.Anything).Return([]entity.Guest{}, nil).Once()

	report, err := uc.Execute(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 0, report.TotalInvited)
	assert.Equal(t, 0, report.TotalConfirmed)
	assert.NotNil(t, report.ConfirmedList)
	assert.Empty(t, report.ConfirmedList)
}
