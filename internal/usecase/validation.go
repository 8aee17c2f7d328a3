package usecase

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gaspartv/api-whatsapp-fake/internal/infra/integration/evolution"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func ValidateGuestInput(input GuestInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Name) == "" {
		errors = append(errors, ValidationError{"name", "is required"})
	} else if len(input.Name) > 100 {
		errors = append(errors, ValidationError{"name", "must not exceed 100 characters"})
	}

	if strings.TrimSpace(input.Phone) == "" {
		errors = append(errors, ValidationError{"phone", "is required"})
	} else if !isValidPhoneNumber(input.Phone) {
		errors = append(errors, ValidationError{"phone", "must be a valid phone number"})
	}

	return errors
}

func ValidateTextInput(input evolution.TextInput) []ValidationError {
	errors := validateNumber(input.Number)
	if strings.TrimSpace(input.Text) == "" {
		errors = append(errors, ValidationError{"text", "is required"})
	}
	return errors
}

func ValidateMediaInput(input evolution.MediaInput) []ValidationError {
	errors := validateNumber(input.Number)
	errors = append(errors, validateMediaType(input.MediaType)...)
	if strings.TrimSpace(input.Media) == "" {
		errors = append(errors, ValidationError{"media", "is required"})
	}
	return errors
}

func ValidateMediaFileInput(input evolution.MediaFileInput) []ValidationError {
	errors := validateNumber(input.Number)
	errors = append(errors, validateMediaType(input.MediaType)...)
	if input.File == nil {
		errors = append(errors, ValidationError{"attachment", "is required"})
	}
	return errors
}

func ValidateAudioInput(input evolution.AudioInput) []ValidationError {
	errors := validateNumber(input.Number)
	if strings.TrimSpace(input.Audio) == "" {
		errors = append(errors, ValidationError{"audio", "is required"})
	}
	return errors
}

func ValidateAudioFileInput(input evolution.AudioFileInput) []ValidationError {
	errors := validateNumber(input.Number)
	if input.File == nil {
		errors = append(errors, ValidationError{"attachment", "is required"})
	}
	return errors
}

func ValidateLocationInput(input evolution.LocationInput) []ValidationError {
	errors := validateNumber(input.Number)
	if input.Latitude < -90 || input.Latitude > 90 {
		errors = append(errors, ValidationError{"latitude", "must be between -90 and 90"})
	}
	if input.Longitude < -180 || input.Longitude > 180 {
		errors = append(errors, ValidationError{"longitude", "must be between -180 and 180"})
	}
	return errors
}

func ValidateContactInput(input evolution.ContactInput) []ValidationError {
	errors := validateNumber(input.Number)
	if len(input.Contacts) == 0 {
		errors = append(errors, ValidationError{"contacts", "must have at least one contact"})
	}
	for i, card := range input.Contacts {
		if strings.TrimSpace(card.FullName) == "" {
			errors = append(errors, ValidationError{fmt.Sprintf("contacts[%d].fullName", i), "is required"})
		}
		if strings.TrimSpace(card.PhoneNumber) == "" {
			errors = append(errors, ValidationError{fmt.Sprintf("contacts[%d].phoneNumber", i), "is required"})
		}
	}
	return errors
}

func ValidateReactionInput(input evolution.ReactionInput) []ValidationError {
	var errors []ValidationError
	if strings.TrimSpace(input.RemoteJID) == "" {
		errors = append(errors, ValidationError{"remoteJid", "is required"})
	}
	if strings.TrimSpace(input.MessageID) == "" {
		errors = append(errors, ValidationError{"id", "is required"})
	}
	if strings.TrimSpace(input.Reaction) == "" {
		errors = append(errors, ValidationError{"reaction", "is required"})
	}
	return errors
}

// ValidateButtonsInput valida cada botão individualmente: um botão
// inválido derruba o envio inteiro antes de qualquer chamada ao gateway.
func ValidateButtonsInput(input evolution.ButtonsInput) []ValidationError {
	errors := validateNumber(input.Number)

	if strings.TrimSpace(input.Title) == "" {
		errors = append(errors, ValidationError{"title", "is required"})
	}
	if strings.TrimSpace(input.Description) == "" {
		errors = append(errors, ValidationError{"description", "is required"})
	}
	if len(input.Buttons) == 0 {
		errors = append(errors, ValidationError{"buttons", "must have at least one button"})
	}

	for i, button := range input.Buttons {
		errors = append(errors, validateButton(i, button)...)
	}

	return errors
}

func validateButton(index int, button evolution.Button) []ValidationError {
	var errors []ValidationError
	field := func(name string) string {
		return fmt.Sprintf("buttons[%d].%s", index, name)
	}

	if strings.TrimSpace(button.DisplayText) == "" {
		errors = append(errors, ValidationError{field("displayText"), "is required"})
	}

	switch button.Type {
	case "replyButton":
		if strings.TrimSpace(button.ID) == "" {
			errors = append(errors, ValidationError{field("id"), "is required for replyButton"})
		}
	case "urlButton":
		if strings.TrimSpace(button.URL) == "" {
			errors = append(errors, ValidationError{field("url"), "is required for urlButton"})
		}
	case "callButton":
		if strings.TrimSpace(button.PhoneNumber) == "" {
			errors = append(errors, ValidationError{field("phoneNumber"), "is required for callButton"})
		}
	default:
		errors = append(errors, ValidationError{field("type"), "must be replyButton, urlButton or callButton"})
	}

	return errors
}

func ValidateListInput(input evolution.ListInput) []ValidationError {
	errors := validateNumber(input.Number)

	if strings.TrimSpace(input.Title) == "" {
		errors = append(errors, ValidationError{"title", "is required"})
	}
	if strings.TrimSpace(input.ButtonText) == "" {
		errors = append(errors, ValidationError{"buttonText", "is required"})
	}
	if len(input.Sections) == 0 {
		errors = append(errors, ValidationError{"sections", "must have at least one section"})
	}

	for i, section := range input.Sections {
		if len(section.Rows) == 0 {
			errors = append(errors, ValidationError{fmt.Sprintf("sections[%d].rows", i), "must have at least one row"})
		}
		for j, row := range section.Rows {
			if strings.TrimSpace(row.Title) == "" {
				errors = append(errors, ValidationError{fmt.Sprintf("sections[%d].rows[%d].title", i, j), "is required"})
			}
			if strings.TrimSpace(row.RowID) == "" {
				errors = append(errors, ValidationError{fmt.Sprintf("sections[%d].rows[%d].rowId", i, j), "is required"})
			}
		}
	}

	return errors
}

func validateMediaType(mediaType string) []ValidationError {
	var errors []ValidationError
	switch mediaType {
	case "image", "video", "document":
	case "":
		errors = append(errors, ValidationError{"mediatype", "is required"})
	default:
		errors = append(errors, ValidationError{"mediatype", "must be image, video or document"})
	}
	return errors
}

func validateNumber(number string) []ValidationError {
	var errors []ValidationError
	if strings.TrimSpace(number) == "" {
		errors = append(errors, ValidationError{"number", "is required"})
	} else if !isValidPhoneNumber(number) {
		errors = append(errors, ValidationError{"number", "must be a valid phone number"})
	}
	return errors
}

func isValidPhoneNumber(phone string) bool {
	cleaned := regexp.MustCompile(`\D`).ReplaceAllString(phone, "")
	return len(cleaned) >= 10 && len(cleaned) <= 13
}
