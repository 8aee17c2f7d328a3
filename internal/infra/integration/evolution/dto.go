package evolution

import "io"

// Inputs aceitos pelo Client, um por variante de mensagem. Os handlers
// decodificam o body HTTP direto nessas structs.

type TextInput struct {
	Number string `json:"number"`
	Delay  int    `json:"delay,omitempty"`
	Text   string `json:"text"`
}

type MediaInput struct {
	Number    string `json:"number"`
	Delay     int    `json:"delay,omitempty"`
	MediaType string `json:"mediatype"` // image, video ou document
	Media     string `json:"media"`     // URL ou base64
	Caption   string `json:"caption,omitempty"`
	FileName  string `json:"fileName,omitempty"`
}

type MediaFileInput struct {
	Number    string
	Delay     int
	MediaType string
	Caption   string
	FileName  string
	File      io.Reader
}

type AudioInput struct {
	Number string `json:"number"`
	Delay  int    `json:"delay,omitempty"`
	Audio  string `json:"audio"` // URL ou base64
}

type AudioFileInput struct {
	Number   string
	Delay    int
	FileName string
	File     io.Reader
}

type LocationInput struct {
	Number    string  `json:"number"`
	Delay     int     `json:"delay,omitempty"`
	Name      string  `json:"name,omitempty"`
	Address   string  `json:"address,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type ContactCard struct {
	FullName    string `json:"fullName"`
	WUID        string `json:"wuid"`
	PhoneNumber string `json:"phoneNumber"`
}

type ContactInput struct {
	Number   string        `json:"number"`
	Delay    int           `json:"delay,omitempty"`
	Contacts []ContactCard `json:"contacts"`
}

type ReactionInput struct {
	RemoteJID string `json:"remoteJid"`
	FromMe    bool   `json:"fromMe"`
	MessageID string `json:"id"`
	Reaction  string `json:"reaction"`
}

type Button struct {
	Type        string `json:"type"` // replyButton, urlButton ou callButton
	DisplayText string `json:"displayText"`
	ID          string `json:"id,omitempty"`
	URL         string `json:"url,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

type ButtonsInput struct {
	Number      string   `json:"number"`
	Delay       int      `json:"delay,omitempty"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	FooterText  string   `json:"footerText,omitempty"`
	Buttons     []Button `json:"buttons"`
}

type ListRow struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	RowID       string `json:"rowId"`
}

type ListSection struct {
	Title string    `json:"title"`
	Rows  []ListRow `json:"rows"`
}

type ListInput struct {
	Number      string        `json:"number"`
	Delay       int           `json:"delay,omitempty"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	ButtonText  string        `json:"buttonText"`
	FooterText  string        `json:"footerText,omitempty"`
	Sections    []ListSection `json:"sections"`
}

// ===== Formato de fio do gateway (envelope da Evolution API) =====

type messageOptions struct {
	Delay    int    `json:"delay"`
	Presence string `json:"presence"`
}

type sendTextRequest struct {
	Number      string         `json:"number"`
	Options     messageOptions `json:"options"`
	TextMessage textMessage    `json:"textMessage"`
}

type textMessage struct {
	Text string `json:"text"`
}

type sendMediaRequest struct {
	Number       string         `json:"number"`
	Options      messageOptions `json:"options"`
	MediaMessage mediaMessage   `json:"mediaMessage"`
}

type mediaMessage struct {
	MediaType string `json:"mediatype"`
	Media     string `json:"media"`
	Caption   string `json:"caption,omitempty"`
	FileName  string `json:"fileName,omitempty"`
}

type sendAudioRequest struct {
	Number       string         `json:"number"`
	Options      messageOptions `json:"options"`
	AudioMessage audioMessage   `json:"audioMessage"`
}

type audioMessage struct {
	Audio string `json:"audio"`
}

type sendLocationRequest struct {
	Number          string          `json:"number"`
	Options         messageOptions  `json:"options"`
	LocationMessage locationMessage `json:"locationMessage"`
}

type locationMessage struct {
	Name      string  `json:"name,omitempty"`
	Address   string  `json:"address,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type sendContactRequest struct {
	Number         string         `json:"number"`
	Options        messageOptions `json:"options"`
	ContactMessage []contactCard  `json:"contactMessage"`
}

type contactCard struct {
	FullName    string `json:"fullName"`
	WUID        string `json:"wuid"`
	PhoneNumber string `json:"phoneNumber"`
}

type sendReactionRequest struct {
	ReactionMessage reactionMessage `json:"reactionMessage"`
}

type reactionMessage struct {
	Key      reactionKey `json:"key"`
	Reaction string      `json:"reaction"`
}

type reactionKey struct {
	RemoteJID string `json:"remoteJid"`
	FromMe    bool   `json:"fromMe"`
	ID        string `json:"id"`
}

type sendButtonsRequest struct {
	Number        string         `json:"number"`
	Options       messageOptions `json:"options"`
	ButtonMessage buttonMessage  `json:"buttonMessage"`
}

type buttonMessage struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	FooterText  string   `json:"footerText,omitempty"`
	Buttons     []Button `json:"buttons"`
}

type sendListRequest struct {
	Number      string         `json:"number"`
	Options     messageOptions `json:"options"`
	ListMessage listMessage    `json:"listMessage"`
}

type listMessage struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	ButtonText  string        `json:"buttonText"`
	FooterText  string        `json:"footerText,omitempty"`
	Sections    []ListSection `json:"sections"`
}
