package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/gaspartv/api-whatsapp-fake/internal/entity"
)

// MockGuestRepository
type MockGuestRepository struct {
	mock.Mock
}

func (m *MockGuestRepository) FindByPhone(ctx context.Context, phone string) (*entity.Guest, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Guest), args.Error(1)
}

func (m *MockGuestRepository) Create(ctx context.Context, g *entity.Guest) error {
	args := m.Called(ctx, g)
	return args.Error(0)
}

func (m *MockGuestRepository) ListAll(ctx context.Context) ([]entity.Guest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Guest), args.Error(1)
}

func (m *MockGuestRepository) ListUnconfirmed(ctx context.Context) ([]entity.Guest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Guest), args.Error(1)
}

func (m *MockGuestRepository) Confirm(ctx context.Context, phone, presente string, acompanhantes []string) (*entity.Guest, error) {
	args := m.Called(ctx, phone, presente, acompanhantes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Guest), args.Error(1)
}

func TestRegisterGuestsCreatesNewGuest(t *testing.T) {
	repo := new(MockGuestRepository)
	uc := NewRegisterGuestsUseCase(repo)

	ana := entity.Guest{ID: 1, Name: "Ana", Phone: "+5511999999999", Presente: "S"}

	repo.On("FindByPhone", mock.Anything, "+5511999999999").Return(nil, nil).Once()
	repo.On("Create", mock.Anything, mock.MatchedBy(func(g *entity.Guest) bool {
		return g.Name == "Ana" && g.Phone == "+5511999999999" && !g.Confirmed
	})).Return(nil).Once()
	repo.On("ListAll", mock.Anything).Return([]entity.Guest{ana}, nil).Once()

	guests, err := uc.Execute(context.Background(), []GuestInput{
		{Name: "Ana", Phone: "+5511999999999", Presente: "S"},
	})

	assert.NoError(t, err)
	assert.Len(t, guests, 1)
	repo.AssertExpectations(t)
}

// Mesmo telefone importado duas vezes: a segunda passada não cria nada.
func TestRegisterGuestsIsIdempotentByPhone(t *testing.T) {
	repo := new(MockGuestRepository)
	uc := NewRegisterGuestsUseCase(repo)

	ana := entity.Guest{ID: 1, Name: "Ana", Phone: "+5511999999999", Presente: "S"}
	inputs := []GuestInput{{Name: "Ana", Phone: "+5511999999999", Presente: "S"}}

	// Primeiro import: não existe, insere.
	repo.On("FindByPhone", mock.Anything, "+5511999999999").Return(nil, nil).Once()
	repo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
	repo.On("ListAll", mock.Anything).Return([]entity.Guest{ana}, nil).Twice()
	// Segundo import: já existe, pula.
	repo.On("FindByPhone", mock.Anything, "+5511999999999").Return(&ana, nil).Once()

	_, err := uc.Execute(context.Background(), inputs)
	assert.NoError(t, err)

	guests, err := uc.Execute(context.Background(), inputs)
	assert.NoError(t, err)
	assert.Len(t, guests, 1)

	repo.AssertNumberOfCalls(t, "Create", 1)
}

func TestRegisterGuestsDefaultsPresenteToUnknown(t *testing.T) {
	repo := new(MockGuestRepository)
	uc := NewRegisterGuestsUseCase(repo)

	repo.On("FindByPhone", mock.Anything, "+5511988887777").Return(nil, nil).Once()
	repo.On("Create", mock.Anything, mock.MatchedBy(func(g *entity.Guest) bool {
		return g.Presente == entity.PresenteUnknown
	})).Return(nil).Once()
	repo.On("ListAll", mock.Anything).Return([]entity.Guest{}, nil).Once()

	_, err := uc.Execute(context.Background(), []GuestInput{
		{Name: "Bruno", Phone: "+5511988887777"},
	})

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

// Falha de storage aborta o lote: nada de sucesso parcial.
func TestRegisterGuestsAbortsOnStorageError(t *testing.T) {
	repo := new(MockGuestRepository)
	uc := NewRegisterGuestsUseCase(repo)

	repo.On("FindByPhone", mock.Anything, "+5511999999999").Return(nil, nil).Once()
	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("connection refused")).Once()

	_, err := uc.Execute(context.Background(), []GuestInput{
		{Name: "Ana", Phone: "+5511999999999"},
		{Name: "Bruno", Phone: "+5511988887777"},
	})

	assert.Error(t, err)
	// O segundo convidado nem chega a ser consultado.
	repo.AssertNumberOfCalls(t, "FindByPhone", 1)
	repo.AssertNotCalled(t, "ListAll", mock.Anything)
}
