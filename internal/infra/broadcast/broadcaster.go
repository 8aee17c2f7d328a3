package broadcast

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gaspartv/api-whatsapp-fake/internal/entity"
	"github.com/gaspartv/api-whatsapp-fake/internal/infra/http/middleware"
	"github.com/gaspartv/api-whatsapp-fake/internal/infra/integration/evolution"
	"github.com/gaspartv/api-whatsapp-fake/internal/usecase"
)

// MessageGateway é o pedaço do client Evolution que o disparo usa.
type MessageGateway interface {
	SendMedia(ctx context.Context, input evolution.MediaInput) (json.RawMessage, error)
	SendText(ctx context.Context, input evolution.TextInput) (json.RawMessage, error)
}

type SendResult struct {
	GuestID int       `json:"guest_id"`
	Name    string    `json:"name"`
	Phone   string    `json:"phone"`
	OK      bool      `json:"ok"`
	Error   string    `json:"error,omitempty"`
	SentAt  time.Time `json:"sent_at"`
}

// RunReport é o retrato de um disparo. Só vive em memória: reiniciar o
// processo perde o que ainda não foi enviado e o histórico.
type RunReport struct {
	RunID     string       `json:"run_id"`
	StartedAt time.Time    `json:"started_at"`
	Total     int          `json:"total"`
	Sent      int          `json:"sent"`
	Failed    int          `json:"failed"`
	Done      bool         `json:"done"`
	Results   []SendResult `json:"results"`
}

// Broadcaster percorre a lista de não confirmados mandando o convite de
// um em um, com intervalo fixo entre eles. Sem retry e sem cancelamento:
// depois do Dispatch os envios agendados vão até o fim.
type Broadcaster struct {
	gateway  MessageGateway
	imageURL string
	interval time.Duration

	mu      sync.Mutex
	current *run
}

type run struct {
	id        string
	startedAt time.Time
	total     int
	results   []SendResult
	done      bool
}

func NewBroadcaster(gateway MessageGateway, imageURL string, interval time.Duration) *Broadcaster {
	return &Broadcaster{
		gateway:  gateway,
		imageURL: imageURL,
		interval: interval,
	}
}

// Dispatch registra o run e dispara a goroutine de envio. Retorna na
// hora: o caller não espera nenhuma chamada ao gateway.
func (b *Broadcaster) Dispatch(guests []entity.Guest) usecase.BroadcastRun {
	r := &run{
		id:        uuid.New().String(),
		startedAt: time.Now(),
		total:     len(guests),
	}

	b.mu.Lock()
	b.current = r
	b.mu.Unlock()

	go b.send(r, guests)

	return usecase.BroadcastRun{ID: r.id, Scheduled: len(guests)}
}

// Snapshot retorna uma cópia do último run, ou nil se nunca disparou.
func (b *Broadcaster) Snapshot() *RunReport {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.current == nil {
		return nil
	}

	r := b.current
	report := &RunReport{
		RunID:     r.id,
		StartedAt: r.startedAt,
		Total:     r.total,
		Done:      r.done,
		Results:   append([]SendResult{}, r.results...),
	}
	for _, result := range r.results {
		if result.OK {
			report.Sent++
		} else {
			report.Failed++
		}
	}
	return report
}

func (b *Broadcaster) send(r *run, guests []entity.Guest) {
	if len(guests) > 0 {
		log.Printf("📨 Disparo %s iniciado: %d convidados, 1 a cada %s", r.id, len(guests), b.interval)
	}

	sent, failed := 0, 0
	for i, guest := range guests {
		// Convidado i dispara em i*interval a partir do início.
		if i > 0 {
			time.Sleep(b.interval)
		}

		result := SendResult{
			GuestID: guest.ID,
			Name:    guest.Name,
			Phone:   guest.Phone,
			OK:      true,
			SentAt:  time.Now(),
		}

		if err := b.sendInvitation(guest); err != nil {
			// O erro fica no resultado do run, mas não para o lote.
			log.Printf("❌ Convite para %s (%s) falhou: %v", guest.Name, guest.Phone, err)
			middleware.RecordInvitation("error")
			result.OK = false
			result.Error = err.Error()
			failed++
		} else {
			log.Printf("✅ Convite enviado para %s (%s)", guest.Name, guest.Phone)
			middleware.RecordInvitation("success")
			sent++
		}

		b.mu.Lock()
		r.results = append(r.results, result)
		b.mu.Unlock()
	}

	b.mu.Lock()
	r.done = true
	b.mu.Unlock()

	if len(guests) > 0 {
		log.Printf("📨 Disparo %s concluído: %d enviados, %d falhas", r.id, sent, failed)
	}
}

// sendInvitation manda a arte do convite e em seguida o texto com o menu.
func (b *Broadcaster) sendInvitation(guest entity.Guest) error {
	ctx := context.Background()

	_, err := b.gateway.SendMedia(ctx, evolution.MediaInput{
		Number:    guest.Phone,
		MediaType: "image",
		Media:     b.imageURL,
		FileName:  "convite.png",
	})
	if err != nil {
		return fmt.Errorf("envio da arte: %w", err)
	}

	_, err = b.gateway.SendText(ctx, evolution.TextInput{
		Number: guest.Phone,
		Text:   InvitationText(guest.Name),
	})
	if err != nil {
		return fmt.Errorf("envio do texto: %w", err)
	}

	return nil
}

// InvitationText monta a mensagem do convite com o menu numerado.
func InvitationText(name string) string {
	return fmt.Sprintf(`Olá, %s! 🎉

Com muita alegria convidamos você para o nosso casamento!

Para responder, mande o número de uma das opções:

1 - Confirmar presença
2 - Infelizmente não poderei ir
3 - Falar com os noivos`, name)
}
