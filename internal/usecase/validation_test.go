package usecase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gaspartv/api-whatsapp-fake/internal/infra/integration/evolution"
)

func TestValidateGuestInput(t *testing.T) {
	errs := ValidateGuestInput(GuestInput{Name: "Ana", Phone: "+5511999999999"})
	assert.Empty(t, errs)

	errs = ValidateGuestInput(GuestInput{Phone: "+5511999999999"})
	assert.Len(t, errs, 1)
	assert.Equal(t, "name", errs[0].Field)

	errs = ValidateGuestInput(GuestInput{Name: strings.Repeat("a", 101), Phone: "+5511999999999"})
	assert.Len(t, errs, 1)
	assert.Equal(t, "name", errs[0].Field)

	errs = ValidateGuestInput(GuestInput{Name: "Ana", Phone: "123"})
	assert.Len(t, errs, 1)
	assert.Equal(t, "phone", errs[0].Field)
}

func TestValidateButtonsInputRejectsInvalidButton(t *testing.T) {
	valid := evolution.ButtonsInput{
		Number:      "+5511999999999",
		Title:       "RSVP",
		Description: "Você vai?",
		Buttons: []evolution.Button{
			{Type: "replyButton", DisplayText: "Sim", ID: "yes"},
			{Type: "urlButton", DisplayText: "Ver convite", URL: "https://example.com"},
		},
	}
	assert.Empty(t, ValidateButtonsInput(valid))

	// replyButton sem id derruba o envio inteiro
	invalid := valid
	invalid.Buttons = []evolution.Button{
		{Type: "replyButton", DisplayText: "Sim", ID: "yes"},
		{Type: "replyButton", DisplayText: "Não"},
	}
	errs := ValidateButtonsInput(invalid)
	assert.Len(t, errs, 1)
	assert.Equal(t, "buttons[1].id", errs[0].Field)

	// tipo desconhecido
	invalid.Buttons = []evolution.Button{{Type: "magicButton", DisplayText: "??"}}
	errs = ValidateButtonsInput(invalid)
	assert.Len(t, errs, 1)
	assert.Equal(t, "buttons[0].type", errs[0].Field)

	// sem nenhum botão
	invalid.Buttons = nil
	errs = ValidateButtonsInput(invalid)
	assert.Len(t, errs, 1)
	assert.Equal(t, "buttons", errs[0].Field)
}

func TestValidateLocationInputRanges(t *testing.T) {
	errs := ValidateLocationInput(evolution.LocationInput{
		Number:   "+5511999999999",
		Latitude: -23.5505, Longitude: -46.6333,
	})
	assert.Empty(t, errs)

	errs = ValidateLocationInput(evolution.LocationInput{
		Number:   "+5511999999999",
		Latitude: 91, Longitude: -200,
	})
	assert.Len(t, errs, 2)
}

func TestValidateListInput(t *testing.T) {
	valid := evolution.ListInput{
		Number:     "+5511999999999",
		Title:      "Cardápio",
		ButtonText: "Escolher",
		Sections: []evolution.ListSection{
			{Title: "Pratos", Rows: []evolution.ListRow{{Title: "Massa", RowID: "1"}}},
		},
	}
	assert.Empty(t, ValidateListInput(valid))

	invalid := valid
	invalid.Sections = []evolution.ListSection{{Title: "Pratos"}}
	errs := ValidateListInput(invalid)
	assert.Len(t, errs, 1)
	assert.Equal(t, "sections[0].rows", errs[0].Field)
}

func TestValidateReactionInput(t *testing.T) {
	errs := ValidateReactionInput(evolution.ReactionInput{
		RemoteJID: "5511999999999@s.whatsapp.net",
		MessageID: "ABC123",
		Reaction:  "❤️",
	})
	assert.Empty(t, errs)

	errs = ValidateReactionInput(evolution.ReactionInput{})
	assert.Len(t, errs, 3)
}
