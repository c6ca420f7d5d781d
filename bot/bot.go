package bot

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"jalwa-telegram/config"
	"jalwa-telegram/models"
	"jalwa-telegram/services"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

var categoryLabels = map[string]string{
	models.CategoryAppetizer: "Appetizers",
	models.CategoryMain:      "Mains",
	models.CategoryTandoor:   "Tandoor",
	models.CategoryBread:     "Breads",
	models.CategoryDessert:   "Desserts",
	models.CategoryDrink:     "Drinks",
}

type Bot struct {
	api         *tgbotapi.BotAPI
	cfg         *config.Config
	contact     models.ContactInfo
	menu        []models.MenuItem // read-only catalog snapshot
	dbEnabled   bool              // cart and live menu need Postgres
	sessions    *sessionStore
	transcriber Transcriber

	listening   map[int64]bool // one transcription in flight per chat
	listeningMu sync.Mutex
}

// New builds the bot around a catalog snapshot. The snapshot is never
// mutated: every reply the assistant produces reads the same menu.
func New(cfg *config.Config, menu []models.MenuItem, dbEnabled bool) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		return nil, err
	}
	return &Bot{
		api:       api,
		cfg:       cfg,
		contact:   cfg.Restaurant.Contact,
		menu:      menu,
		dbEnabled: dbEnabled,
		sessions:  newSessionStore(),
		listening: make(map[int64]bool),
	}, nil
}

// SetTranscriber injects the optional voice capability.
func (b *Bot) SetTranscriber(t Transcriber) {
	b.transcriber = t
}

func (b *Bot) Start() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	for update := range b.api.GetUpdatesChan(u) {
		if update.CallbackQuery != nil {
			b.handleCallback(update.CallbackQuery)
			continue
		}
		if update.Message == nil {
			continue
		}
		msg := update.Message
		switch {
		case msg.IsCommand():
			b.handleCommand(msg)
		case msg.Voice != nil:
			go b.handleVoice(context.Background(), msg)
		default:
			b.handleText(msg)
		}
	}
}

func (b *Bot) handleCommand(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	switch msg.Command() {
	case "start":
		b.sessions.Reset(chatID)
		b.sessions.Append(chatID, models.SenderBot, services.WelcomeText)
		b.reply(chatID, services.WelcomeText)
	case "menu":
		b.sendCategoryKeyboard(chatID)
	case "cart":
		b.sendCart(chatID, msg.From.ID)
	case "history":
		b.sendHistory(chatID)
	default:
		b.reply(chatID, "Try /menu to browse, /cart to see your cart, /history for this conversation, or just ask me anything about the restaurant.")
	}
}

func (b *Bot) sendHistory(chatID int64) {
	history := b.sessions.History(chatID)
	if len(history) == 0 {
		b.reply(chatID, "No conversation yet. Say hello!")
		return
	}
	var sb strings.Builder
	for _, m := range history {
		who := "You"
		if m.Sender == models.SenderBot {
			who = "Jalwa"
		}
		fmt.Fprintf(&sb, "%s [%s]: %s\n", who, m.Timestamp.Format("15:04"), m.Text)
	}
	b.reply(chatID, sb.String())
}

// handleText feeds a typed utterance through the assistant pipeline.
func (b *Bot) handleText(msg *tgbotapi.Message) {
	b.processUtterance(msg.Chat.ID, msg.Text)
}

// processUtterance is the one entry point into the assistant core. Blank
// input is skipped entirely: no message recorded, no reply produced.
func (b *Bot) processUtterance(chatID int64, text string) {
	if strings.TrimSpace(text) == "" {
		return
	}

	b.sessions.Append(chatID, models.SenderUser, text)

	// Simulated thinking: typing indicator plus a short pause before the
	// synchronous pipeline's answer is delivered.
	if _, err := b.api.Request(tgbotapi.NewChatAction(chatID, tgbotapi.ChatTyping)); err != nil {
		log.Printf("chat action chat_id=%d: %v", chatID, err)
	}
	time.Sleep(b.cfg.Assistant.ThinkDelay)

	response := services.GenerateResponse(text, b.menu, b.contact)
	b.sessions.Append(chatID, models.SenderBot, response)
	b.reply(chatID, response)
}

func (b *Bot) reply(chatID int64, text string) {
	if _, err := b.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		log.Printf("send chat_id=%d: %v", chatID, err)
	}
}

func (b *Bot) sendCategoryKeyboard(chatID int64) {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, cat := range models.Categories {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(categoryLabels[cat], "cat:"+cat),
		))
	}
	msg := tgbotapi.NewMessage(chatID, "Our menu — pick a category:")
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("send menu chat_id=%d: %v", chatID, err)
	}
}

func (b *Bot) handleCallback(cb *tgbotapi.CallbackQuery) {
	if _, err := b.api.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil {
		log.Printf("callback ack: %v", err)
	}
	if cb.Message == nil {
		return
	}
	chatID := cb.Message.Chat.ID
	data := cb.Data

	switch {
	case strings.HasPrefix(data, "cat:"):
		b.sendCategory(chatID, strings.TrimPrefix(data, "cat:"))
	case strings.HasPrefix(data, "add:"):
		b.addToCart(chatID, cb.From.ID, strings.TrimPrefix(data, "add:"))
	case data == "cart":
		b.sendCart(chatID, cb.From.ID)
	case data == "cart_clear":
		b.clearCart(chatID, cb.From.ID)
	}
}

// categoryItems prefers the live DB menu and falls back to the snapshot
// when running without Postgres.
func (b *Bot) categoryItems(ctx context.Context, category string) ([]models.MenuItem, error) {
	if b.dbEnabled {
		return services.ListMenuByCategory(ctx, category)
	}
	var items []models.MenuItem
	for _, item := range b.menu {
		if item.Category == category {
			items = append(items, item)
		}
	}
	return items, nil
}

func (b *Bot) sendCategory(chatID int64, category string) {
	items, err := b.categoryItems(context.Background(), category)
	if err != nil {
		log.Printf("list category %s: %v", category, err)
		b.reply(chatID, "Sorry, the menu is unavailable right now.")
		return
	}
	if len(items) == 0 {
		b.reply(chatID, "No items found in this category.")
		return
	}

	var sb strings.Builder
	sb.WriteString(categoryLabels[category] + ":\n")
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, item := range items {
		fmt.Fprintf(&sb, "\n%s — $%s\n%s\n", item.Name, services.FormatPrice(item.Price), item.Description)
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Add "+item.Name, "add:"+item.ID),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("View cart", "cart"),
	))
	msg := tgbotapi.NewMessage(chatID, sb.String())
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("send category chat_id=%d: %v", chatID, err)
	}
}

func (b *Bot) addToCart(chatID, userID int64, itemID string) {
	if !b.dbEnabled {
		b.reply(chatID, "The cart needs a database and isn't available in static menu mode.")
		return
	}
	ctx := context.Background()
	item, err := services.GetMenuItem(ctx, itemID)
	if err != nil {
		log.Printf("get menu item %s: %v", itemID, err)
		b.reply(chatID, "Sorry, that item isn't available.")
		return
	}
	cart, err := services.GetCart(ctx, userID)
	if err != nil {
		log.Printf("get cart user_id=%d: %v", userID, err)
		b.reply(chatID, "Sorry, your cart is unavailable right now.")
		return
	}
	cart.AddItem(services.CartItem{
		ID:       item.ID,
		Name:     item.Name,
		Price:    item.Price,
		Qty:      1,
		Category: item.Category,
	})
	if err := services.SaveCart(ctx, userID, cart); err != nil {
		log.Printf("save cart user_id=%d: %v", userID, err)
		b.reply(chatID, "Sorry, your cart is unavailable right now.")
		return
	}
	b.reply(chatID, fmt.Sprintf("%s added. Cart total: $%s", item.Name, services.FormatPrice(cart.ItemsTotal)))
}

func (b *Bot) sendCart(chatID, userID int64) {
	if !b.dbEnabled {
		b.reply(chatID, "The cart needs a database and isn't available in static menu mode.")
		return
	}
	cart, err := services.GetCart(context.Background(), userID)
	if err != nil {
		log.Printf("get cart user_id=%d: %v", userID, err)
		b.reply(chatID, "Sorry, your cart is unavailable right now.")
		return
	}
	if len(cart.Items) == 0 {
		b.reply(chatID, "Your cart is empty. Browse with /menu!")
		return
	}
	var sb strings.Builder
	sb.WriteString("Your cart:\n")
	for _, it := range cart.Items {
		fmt.Fprintf(&sb, "%s x%d — $%s\n", it.Name, it.Qty, services.FormatPrice(it.Price*float64(it.Qty)))
	}
	fmt.Fprintf(&sb, "Total: $%s", services.FormatPrice(cart.ItemsTotal))
	msg := tgbotapi.NewMessage(chatID, sb.String())
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("Clear cart", "cart_clear"),
	))
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("send cart chat_id=%d: %v", chatID, err)
	}
}

func (b *Bot) clearCart(chatID, userID int64) {
	if err := services.DeleteCart(context.Background(), userID); err != nil {
		log.Printf("clear cart user_id=%d: %v", userID, err)
		b.reply(chatID, "Sorry, your cart is unavailable right now.")
		return
	}
	b.reply(chatID, "Cart cleared.")
}
