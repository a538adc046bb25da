package bot

import (
	"context"
	"fmt"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const telegramGreeting = "Welcome to Spice Garden! Ask for the menu, or order a dish like \"2 idli\". Say \"done\" to finish your order."

// TelegramBot is an optional second front end: one session per Telegram
// chat, every text message fed straight to the dispatcher.
type TelegramBot struct {
	api *tgbotapi.BotAPI
	bot *Bot
}

func NewTelegramBot(token string, b *Bot) (*TelegramBot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	return &TelegramBot{api: api, bot: b}, nil
}

func (t *TelegramBot) Start() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := t.api.GetUpdatesChan(u)

	for update := range updates {
		if update.Message == nil || update.Message.Text == "" {
			continue
		}
		msg := update.Message
		text := strings.TrimSpace(msg.Text)

		if text == "/start" {
			t.send(msg.Chat.ID, telegramGreeting)
			continue
		}

		sessionID := fmt.Sprintf("tg:%d", msg.Chat.ID)
		reply := t.bot.Handle(context.Background(), sessionID, text)
		t.send(msg.Chat.ID, reply)
	}
}

func (t *TelegramBot) send(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := t.api.Send(msg); err != nil {
		log.Printf("telegram send chat=%d: %v", chatID, err)
	}
}
