package model

import "strings"

// LinkPrefix marks the line carrying an optional link inside the hidden plaintext
const LinkPrefix = "LINK:"

type Message struct {
	Text string `json:"text"`
	Link string `json:"link,omitempty"`
}

// Join flattens the message into the plaintext convention embedded on the wire: the text alone, or
// "text\nLINK:url" when a link is present
func (m Message) Join() string {
	if m.Link == "" {
		return m.Text
	}
	return m.Text + "\n" + LinkPrefix + m.Link
}

// ParseMessage splits a decoded plaintext back into its text and optional link components
func ParseMessage(plaintext string) Message {
	idx := strings.LastIndex(plaintext, "\n"+LinkPrefix)
	if idx == -1 {
		return Message{Text: plaintext}
	}
	return Message{
		Text: plaintext[:idx],
		Link: plaintext[idx+len(LinkPrefix)+1:],
	}
}
