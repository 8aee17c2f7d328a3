package broadcast

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/gaspartv/api-whatsapp-fake/internal/entity"
	"github.com/gaspartv/api-whatsapp-fake/internal/infra/integration/evolution"
)

// fakeGateway grava as chamadas na ordem em que chegam.
type fakeGateway struct {
	mu       sync.Mutex
	calls    []string // "media:<phone>" ou "text:<phone>"
	failFor  map[string]error
	lastText string
}

func (f *fakeGateway) SendMedia(ctx context.Context, input evolution.MediaInput) (json.RawMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.failFor[input.Number]; err != nil {
		return nil, err
	}
	f.calls = append(f.calls, "media:"+input.Number)
	return json.RawMessage(`{}`), nil
}

func (f *fakeGateway) SendText(ctx context.Context, input evolution.TextInput) (json.RawMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "text:"+input.Number)
	f.lastText = input.Text
	return json.RawMessage(`{}`), nil
}

func (f *fakeGateway) snapshot() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string{}, f.calls...)
}

func waitDone(t *testing.T, b *Broadcaster) *RunReport {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if report := b.Snapshot(); report != nil && report.Done {
			return report
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("disparo não terminou a tempo")
	return nil
}

func TestDispatchSendsMediaThenTextPerGuestInOrder(t *testing.T) {
	gateway := &fakeGateway{}
	b := NewBroadcaster(gateway, "https://cdn.example.com/convite.png", 10*time.Millisecond)

	guests := []entity.Guest{
		{ID: 1, Name: "Ana", Phone: "111"},
		{ID: 2, Name: "Bruno", Phone: "222"},
		{ID: 3, Name: "Carla", Phone: "333"},
	}

	run := b.Dispatch(guests)
	assert.NotEmpty(t, run.ID)
	assert.Equal(t, 3, run.Scheduled)

	report := waitDone(t, b)

	assert.Equal(t, 3, report.Total)
	assert.Equal(t, 3, report.Sent)
	assert.Equal(t, 0, report.Failed)

	// Arte antes do texto, convidados na ordem da lista.
	assert.Equal(t, []string{
		"media:111", "text:111",
		"media:222", "text:222",
		"media:333", "text:333",
	}, gateway.snapshot())

	// O texto leva o nome do último convidado e o menu numerado.
	assert.Contains(t, gateway.lastText, "Carla")
	assert.Contains(t, gateway.lastText, "1 - Confirmar presença")
}

func TestDispatchEmptyListReturnsImmediatelyWithNoCalls(t *testing.T) {
	gateway := &fakeGateway{}
	b := NewBroadcaster(gateway, "https://cdn.example.com/convite.png", time.Minute)

	run := b.Dispatch([]entity.Guest{})
	assert.Equal(t, 0, run.Scheduled)

	report := waitDone(t, b)
	assert.Equal(t, 0, report.Total)
	assert.Empty(t, gateway.snapshot())
}

func TestDispatchRecordsFailureAndKeepsGoing(t *testing.T) {
	gateway := &fakeGateway{failFor: map[string]error{"222": errors.New("gateway caiu")}}
	b := NewBroadcaster(gateway, "https://cdn.example.com/convite.png", time.Millisecond)

	guests := []entity.Guest{
		{ID: 1, Name: "Ana", Phone: "111"},
		{ID: 2, Name: "Bruno", Phone: "222"},
		{ID: 3, Name: "Carla", Phone: "333"},
	}

	b.Dispatch(guests)
	report := waitDone(t, b)

	assert.Equal(t, 2, report.Sent)
	assert.Equal(t, 1, report.Failed)

	// A falha fica registrada no resultado, mas o lote segue.
	assert.False(t, report.Results[1].OK)
	assert.Contains(t, report.Results[1].Error, "gateway caiu")
	assert.True(t, report.Results[2].OK)
}

func TestDispatchStaggersSends(t *testing.T) {
	gateway := &fakeGateway{}
	interval := 50 * time.Millisecond
	b := NewBroadcaster(gateway, "https://cdn.example.com/convite.png", interval)

	start := time.Now()
	b.Dispatch([]entity.Guest{
		{ID: 1, Name: "Ana", Phone: "111"},
		{ID: 2, Name: "Bruno", Phone: "222"},
	})
	report := waitDone(t, b)

	// Segundo convidado só dispara depois de um intervalo inteiro.
	assert.True(t, time.Since(start) >= interval)
	assert.True(t, report.Results[1].SentAt.Sub(report.Results[0].SentAt) >= interval)
}
