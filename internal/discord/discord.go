// Package discord posts dashboard messages to a Discord channel.
package discord

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// Discord rejects message content longer than this.
const maxMessageLen = 2000

type Client struct {
	s *discordgo.Session
}

// New builds a REST-only client. A bare bot token gets the "Bot " prefix.
func New(token string) (*Client, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, errors.New("missing discord token")
	}
	if !strings.HasPrefix(token, "Bot ") && !strings.HasPrefix(token, "Bearer ") {
		token = "Bot " + token
	}
	s, err := discordgo.New(token)
	if err != nil {
		return nil, err
	}
	return &Client{s: s}, nil
}

func (c *Client) Close() error {
	return c.s.Close()
}

// PostText sends text to channelID, split into as many messages as needed.
func (c *Client) PostText(channelID, text string) error {
	channelID = strings.TrimSpace(channelID)
	if channelID == "" {
		return errors.New("missing discord channel id")
	}
	for _, chunk := range SplitMessage(text, maxMessageLen) {
		if _, err := c.s.ChannelMessageSend(channelID, chunk); err != nil {
			return fmt.Errorf("discord ChannelMessageSend channel=%s: %w", channelID, err)
		}
	}
	return nil
}

// SplitMessage cuts text into pieces of at most limit runes, preferring line
// breaks. Blank input yields no pieces.
func SplitMessage(text string, limit int) []string {
	text = strings.TrimSpace(text)
	if text == "" || limit <= 0 {
		return nil
	}
	var out []string
	var cur []rune
	flush := func() {
		if s := strings.TrimSpace(string(cur)); s != "" {
			out = append(out, s)
		}
		cur = cur[:0]
	}
	for _, line := range strings.SplitAfter(text, "\n") {
		r := []rune(line)
		if len(cur)+len(r) <= limit {
			cur = append(cur, r...)
			continue
		}
		flush()
		for len(r) > limit {
			out = append(out, string(r[:limit]))
			r = r[limit:]
		}
		cur = append(cur, r...)
	}
	flush()
	return out
}
