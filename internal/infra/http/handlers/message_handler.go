package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gaspartv/api-whatsapp-fake/internal/infra/http/middleware"
	"github.com/gaspartv/api-whatsapp-fake/internal/infra/integration/evolution"
	"github.com/gaspartv/api-whatsapp-fake/internal/usecase"
)

// limite do upload em memória (10 MB)
const maxUploadSize = 10 << 20

// MessageGateway espelha o client Evolution, uma operação por variante.
type MessageGateway interface {
	SendText(ctx context.Context, input evolution.TextInput) (json.RawMessage, error)
	SendMedia(ctx context.Context, input evolution.MediaInput) (json.RawMessage, error)
	SendMediaFile(ctx context.Context, input evolution.MediaFileInput) (json.RawMessage, error)
	SendAudio(ctx context.Context, input evolution.AudioInput) (json.RawMessage, error)
	SendAudioFile(ctx context.Context, input evolution.AudioFileInput) (json.RawMessage, error)
	SendLocation(ctx context.Context, input evolution.LocationInput) (json.RawMessage, error)
	SendContact(ctx context.Context, input evolution.ContactInput) (json.RawMessage, error)
	SendReaction(ctx context.Context, input evolution.ReactionInput) (json.RawMessage, error)
	SendButtons(ctx context.Context, input evolution.ButtonsInput) (json.RawMessage, error)
	SendList(ctx context.Context, input evolution.ListInput) (json.RawMessage, error)
}

// MessageHandler é puro repasse: valida o body, chama o gateway e devolve
// o JSON do gateway como veio.
type MessageHandler struct {
	Gateway MessageGateway
}

func NewMessageHandler(gateway MessageGateway) *MessageHandler {
	return &MessageHandler{Gateway: gateway}
}

func (h *MessageHandler) SendText(w http.ResponseWriter, r *http.Request) {
	var input evolution.TextInput
	if !decodeBody(w, r, &input) {
		return
	}
	if errs := usecase.ValidateTextInput(input); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}
	h.forward(w, r, "sendText", func(ctx context.Context) (json.RawMessage, error) {
		return h.Gateway.SendText(ctx, input)
	})
}

func (h *MessageHandler) SendMedia(w http.ResponseWriter, r *http.Request) {
	var input evolution.MediaInput
	if !decodeBody(w, r, &input) {
		return
	}
	if errs := usecase.ValidateMediaInput(input); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}
	h.forward(w, r, "sendMedia", func(ctx context.Context) (json.RawMessage, error) {
		return h.Gateway.SendMedia(ctx, input)
	})
}

func (h *MessageHandler) SendMediaFile(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "multipart inválido: " + err.Error()})
		return
	}

	input := evolution.MediaFileInput{
		Number:    r.FormValue("number"),
		Delay:     formInt(r, "delay"),
		MediaType: r.FormValue("mediatype"),
		Caption:   r.FormValue("caption"),
	}

	file, header, err := r.FormFile("attachment")
	if err == nil {
		defer file.Close()
		input.File = file
		input.FileName = header.Filename
	}

	if errs := usecase.ValidateMediaFileInput(input); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}
	h.forward(w, r, "sendMediaFile", func(ctx context.Context) (json.RawMessage, error) {
		return h.Gateway.SendMediaFile(ctx, input)
	})
}

func (h *MessageHandler) SendAudio(w http.ResponseWriter, r *http.Request) {
	var input evolution.AudioInput
	if !decodeBody(w, r, &input) {
		return
	}
	if errs := usecase.ValidateAudioInput(input); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}
	h.forward(w, r, "sendWhatsAppAudio", func(ctx context.Context) (json.RawMessage, error) {
		return h.Gateway.SendAudio(ctx, input)
	})
}

func (h *MessageHandler) SendAudioFile(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "multipart inválido: " + err.Error()})
		return
	}

	input := evolution.AudioFileInput{
		Number: r.FormValue("number"),
		Delay:  formInt(r, "delay"),
	}

	file, header, err := r.FormFile("attachment")
	if err == nil {
		defer file.Close()
		input.File = file
		input.FileName = header.Filename
	}

	if errs := usecase.ValidateAudioFileInput(input); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}
	h.forward(w, r, "sendWhatsAppAudioFile", func(ctx context.Context) (json.RawMessage, error) {
		return h.Gateway.SendAudioFile(ctx, input)
	})
}

func (h *MessageHandler) SendLocation(w http.ResponseWriter, r *http.Request) {
	var input evolution.LocationInput
	if !decodeBody(w, r, &input) {
		return
	}
	if errs := usecase.ValidateLocationInput(input); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}
	h.forward(w, r, "sendLocation", func(ctx context.Context) (json.RawMessage, error) {
		return h.Gateway.SendLocation(ctx, input)
	})
}

func (h *MessageHandler) SendContact(w http.ResponseWriter, r *http.Request) {
	var input evolution.ContactInput
	if !decodeBody(w, r, &input) {
		return
	}
	if errs := usecase.ValidateContactInput(input); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}
	h.forward(w, r, "sendContact", func(ctx context.Context) (json.RawMessage, error) {
		return h.Gateway.SendContact(ctx, input)
	})
}

func (h *MessageHandler) SendReaction(w http.ResponseWriter, r *http.Request) {
	var input evolution.ReactionInput
	if !decodeBody(w, r, &input) {
		return
	}
	if errs := usecase.ValidateReactionInput(input); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}
	h.forward(w, r, "sendReaction", func(ctx context.Context) (json.RawMessage, error) {
		return h.Gateway.SendReaction(ctx, input)
	})
}

func (h *MessageHandler) SendButtons(w http.ResponseWriter, r *http.Request) {
	var input evolution.ButtonsInput
	if !decodeBody(w, r, &input) {
		return
	}
	// Um botão malformado aborta o envio inteiro, sem tocar no gateway.
	if errs := usecase.ValidateButtonsInput(input); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}
	h.forward(w, r, "sendButtons", func(ctx context.Context) (json.RawMessage, error) {
		return h.Gateway.SendButtons(ctx, input)
	})
}

func (h *MessageHandler) SendList(w http.ResponseWriter, r *http.Request) {
	var input evolution.ListInput
	if !decodeBody(w, r, &input) {
		return
	}
	if errs := usecase.ValidateListInput(input); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}
	h.forward(w, r, "sendList", func(ctx context.Context) (json.RawMessage, error) {
		return h.Gateway.SendList(ctx, input)
	})
}

func (h *MessageHandler) forward(w http.ResponseWriter, r *http.Request, operation string, send func(ctx context.Context) (json.RawMessage, error)) {
	response, err := send(r.Context())
	if err != nil {
		middleware.RecordWhatsAppMessage(operation, "error")
		writeJSON(w, http.StatusBadGateway, errorResponse{Message: err.Error()})
		return
	}

	middleware.RecordWhatsAppMessage(operation, "success")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	w.Write(response)
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "JSON inválido: " + err.Error()})
		return false
	}
	return true
}

func formInt(r *http.Request, key string) int {
	v, _ := strconv.Atoi(r.FormValue(key))
	return v
}
