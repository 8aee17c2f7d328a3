package usecase

import "context"

type BroadcastInvitationsUseCase struct {
	Repo       GuestRepositoryInterface
	Dispatcher InvitationDispatcher
}

func NewBroadcastInvitationsUseCase(repo GuestRepositoryInterface, dispatcher InvitationDispatcher) *BroadcastInvitationsUseCase {
	return &BroadcastInvitationsUseCase{Repo: repo, Dispatcher: dispatcher}
}

// Execute agenda um envio por convidado não confirmado e retorna na hora.
// O disparo em si roda em background, escalonado pelo Dispatcher.
func (uc *BroadcastInvitationsUseCase) Execute(ctx context.Context) (*BroadcastOutput, error) {
	guests, err := uc.Repo.ListUnconfirmed(ctx)
	if err != nil {
		return nil, err
	}

	run := uc.Dispatcher.Dispatch(guests)

	return &BroadcastOutput{
		Message:   "invitations being sent",
		RunID:     run.ID,
		Scheduled: run.Scheduled,
	}, nil
}
