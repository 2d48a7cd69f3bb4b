package companion

import "strings"

// Fallback is the chatbot reply to anything it does not recognize.
const Fallback = "I'm sorry, I didn't understand that."

var replies = map[string]string{
	"hello":            "Hi there! How can I help you today?",
	"hi":               "Hello! How are you feeling today?",
	"how are you":      "I'm doing great! How about you?",
	"bye":              "Goodbye! Have a wonderful day!",
	"recommend a song": "Sure! Tell me how you feel with 'bubblepop tip <emotion>' and I'll suggest a genre.",
}

// Reply answers a chat message. Matching is exact after trimming and lower-casing.
func Reply(input string) string {
	if r, ok := replies[strings.ToLower(strings.TrimSpace(input))]; ok {
		return r
	}
	return Fallback
}

// IsFarewell reports whether the message ends the conversation.
func IsFarewell(input string) bool {
	return strings.ToLower(strings.TrimSpace(input)) == "bye"
}

// Transcript is a chat history.
type Transcript struct {
	Lines []Line
}

// Line is one transcript entry.
type Line struct {
	Speaker string // "You" or "Bot"
	Text    string
}

// Send records a user message and the bot's reply. Blank messages are ignored.
// It returns the reply and whether the message was recorded.
func (t *Transcript) Send(msg string) (string, bool) {
	if strings.TrimSpace(msg) == "" {
		return "", false
	}
	reply := Reply(msg)
	t.Lines = append(t.Lines, Line{Speaker: "You", Text: msg}, Line{Speaker: "Bot", Text: reply})
	return reply, true
}

// String renders the transcript one "Speaker: text" line per entry.
func (t *Transcript) String() string {
	var sb strings.Builder
	for i, l := range t.Lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(l.Speaker)
		sb.WriteString(": ")
		sb.WriteString(l.Text)
	}
	return sb.String()
}
