package bot

import (
	"context"
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Transcriber converts a voice recording into an utterance. It is an
// optional capability: the bot works without one, and the assistant core
// never sees a voice message directly, only the transcript.
type Transcriber interface {
	Transcribe(ctx context.Context, fileURL string) (string, error)
}

// handleVoice resolves the voice file and runs the transcript through the
// same pipeline as typed text. Only one transcription may be in flight per
// chat; repeat voice messages while listening are refused.
func (b *Bot) handleVoice(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	if b.transcriber == nil {
		b.reply(chatID, "Voice input isn't available right now. Please type your question instead.")
		return
	}

	b.listeningMu.Lock()
	if b.listening[chatID] {
		b.listeningMu.Unlock()
		b.reply(chatID, "Still listening to your last voice message, one moment!")
		return
	}
	b.listening[chatID] = true
	b.listeningMu.Unlock()
	defer func() {
		b.listeningMu.Lock()
		delete(b.listening, chatID)
		b.listeningMu.Unlock()
	}()

	fileURL, err := b.api.GetFileDirectURL(msg.Voice.FileID)
	if err != nil {
		log.Printf("voice file chat_id=%d: %v", chatID, err)
		b.reply(chatID, "Sorry, I couldn't fetch that voice message. Please try again or type your question.")
		return
	}

	transcript, err := b.transcriber.Transcribe(ctx, fileURL)
	if err != nil {
		log.Printf("transcribe chat_id=%d: %v", chatID, err)
		b.reply(chatID, "Sorry, I couldn't make out that voice message. Please try again or type your question.")
		return
	}

	// Echo what was heard, then answer it like typed input.
	b.reply(chatID, fmt.Sprintf("I heard: \"%s\"", transcript))
	b.processUtterance(chatID, transcript)
}
