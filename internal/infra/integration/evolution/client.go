package evolution

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

const (
	defaultDelay      = 1200 // ms que o gateway "digita" antes de soltar a mensagem
	presenceComposing = "composing"
	presenceRecording = "recording"
)

type Client struct {
	baseURL  string
	apiKey   string
	instance string
	http     *http.Client
}

func NewClient(baseURL, apiKey, instance string) *Client {
	return &Client{
		baseURL:  baseURL,
		apiKey:   apiKey,
		instance: instance,
		http:     &http.Client{Timeout: 10 * time.Second},
	}
}

// SendText: mensagem de texto simples
func (c *Client) SendText(ctx context.Context, input TextInput) (json.RawMessage, error) {
	payload := sendTextRequest{
		Number:      input.Number,
		Options:     options(input.Delay, presenceComposing),
		TextMessage: textMessage{Text: input.Text},
	}
	return c.post(ctx, "sendText", payload)
}

// SendMedia: imagem/vídeo/documento por URL ou base64
func (c *Client) SendMedia(ctx context.Context, input MediaInput) (json.RawMessage, error) {
	payload := sendMediaRequest{
		Number:  input.Number,
		Options: options(input.Delay, presenceComposing),
		MediaMessage: mediaMessage{
			MediaType: input.MediaType,
			Media:     input.Media,
			Caption:   input.Caption,
			FileName:  input.FileName,
		},
	}
	return c.post(ctx, "sendMedia", payload)
}

// SendMediaFile: upload multipart do arquivo direto pro gateway
func (c *Client) SendMediaFile(ctx context.Context, input MediaFileInput) (json.RawMessage, error) {
	fields := map[string]string{
		"number":    input.Number,
		"delay":     fmt.Sprintf("%d", delayOr(input.Delay)),
		"presence":  presenceComposing,
		"mediatype": input.MediaType,
		"caption":   input.Caption,
	}
	return c.postFile(ctx, "sendMediaFile", fields, input.FileName, input.File)
}

func (c *Client) SendAudio(ctx context.Context, input AudioInput) (json.RawMessage, error) {
	payload := sendAudioRequest{
		Number:       input.Number,
		Options:      options(input.Delay, presenceRecording),
		AudioMessage: audioMessage{Audio: input.Audio},
	}
	return c.post(ctx, "sendWhatsAppAudio", payload)
}

func (c *Client) SendAudioFile(ctx context.Context, input AudioFileInput) (json.RawMessage, error) {
	fields := map[string]string{
		"number":   input.Number,
		"delay":    fmt.Sprintf("%d", delayOr(input.Delay)),
		"presence": presenceRecording,
	}
	return c.postFile(ctx, "sendWhatsAppAudioFile", fields, input.FileName, input.File)
}

func (c *Client) SendLocation(ctx context.Context, input LocationInput) (json.RawMessage, error) {
	payload := sendLocationRequest{
		Number:  input.Number,
		Options: options(input.Delay, presenceComposing),
		LocationMessage: locationMessage{
			Name:      input.Name,
			Address:   input.Address,
			Latitude:  input.Latitude,
			Longitude: input.Longitude,
		},
	}
	return c.post(ctx, "sendLocation", payload)
}

func (c *Client) SendContact(ctx context.Context, input ContactInput) (json.RawMessage, error) {
	cards := make([]contactCard, 0, len(input.Contacts))
	for _, card := range input.Contacts {
		wuid := card.WUID
		if wuid == "" {
			wuid = card.PhoneNumber
		}
		cards = append(cards, contactCard{
			FullName:    card.FullName,
			WUID:        wuid,
			PhoneNumber: card.PhoneNumber,
		})
	}

	payload := sendContactRequest{
		Number:         input.Number,
		Options:        options(input.Delay, presenceComposing),
		ContactMessage: cards,
	}
	return c.post(ctx, "sendContact", payload)
}

// SendReaction: emoji em cima de uma mensagem já enviada/recebida
func (c *Client) SendReaction(ctx context.Context, input ReactionInput) (json.RawMessage, error) {
	payload := sendReactionRequest{
		ReactionMessage: reactionMessage{
			Key: reactionKey{
				RemoteJID: input.RemoteJID,
				FromMe:    input.FromMe,
				ID:        input.MessageID,
			},
			Reaction: input.Reaction,
		},
	}
	return c.post(ctx, "sendReaction", payload)
}

func (c *Client) SendButtons(ctx context.Context, input ButtonsInput) (json.RawMessage, error) {
	payload := sendButtonsRequest{
		Number:  input.Number,
		Options: options(input.Delay, presenceComposing),
		ButtonMessage: buttonMessage{
			Title:       input.Title,
			Description: input.Description,
			FooterText:  input.FooterText,
			Buttons:     input.Buttons,
		},
	}
	return c.post(ctx, "sendButtons", payload)
}

func (c *Client) SendList(ctx context.Context, input ListInput) (json.RawMessage, error) {
	payload := sendListRequest{
		Number:  input.Number,
		Options: options(input.Delay, presenceComposing),
		ListMessage: listMessage{
			Title:       input.Title,
			Description: input.Description,
			ButtonText:  input.ButtonText,
			FooterText:  input.FooterText,
			Sections:    input.Sections,
		},
	}
	return c.post(ctx, "sendList", payload)
}

// post: todas as variantes JSON saem por aqui.
// POST {baseURL}/message/<operation>/<instance>
func (c *Client) post(ctx context.Context, operation string, payload any) (json.RawMessage, error) {
	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar json (%s): %w", operation, err)
	}

	url := fmt.Sprintf("%s/message/%s/%s", c.baseURL, operation, c.instance)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.apiKey)

	return c.do(req, operation)
}

// postFile: variantes com upload sobem como multipart/form-data.
func (c *Client) postFile(ctx context.Context, operation string, fields map[string]string, fileName string, file io.Reader) (json.RawMessage, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	for key, value := range fields {
		if value == "" {
			continue
		}
		if err := writer.WriteField(key, value); err != nil {
			return nil, fmt.Errorf("erro ao montar multipart (%s): %w", operation, err)
		}
	}

	part, err := writer.CreateFormFile("attachment", fileName)
	if err != nil {
		return nil, fmt.Errorf("erro ao montar multipart (%s): %w", operation, err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("erro ao copiar arquivo (%s): %w", operation, err)
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/message/%s/%s", c.baseURL, operation, c.instance)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("apikey", c.apiKey)

	return c.do(req, operation)
}

func (c *Client) do(req *http.Request, operation string) (json.RawMessage, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro request evolution (%s): %w", operation, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta (%s): %w", operation, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("evolution %s retornou status %d: %s", operation, resp.StatusCode, string(respBody))
	}

	return json.RawMessage(respBody), nil
}

func options(delay int, presence string) messageOptions {
	return messageOptions{Delay: delayOr(delay), Presence: presence}
}

func delayOr(delay int) int {
	if delay <= 0 {
		return defaultDelay
	}
	return delay
}
