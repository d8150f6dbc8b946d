package telegram

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"recipehub/internal/app"
	"recipehub/internal/auth"
	"recipehub/internal/config"
	"recipehub/internal/mealplan"
	"recipehub/internal/metrics"
	"recipehub/internal/nutrition"
	"recipehub/internal/shopping"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Bot delivers meal plans, shopping lists and nutrition summaries over
// Telegram. It is a thin read-mostly front end: the only mutation it can
// trigger is shopping list generation.
type Bot struct {
	api      *tgbotapi.BotAPI
	app      *app.App
	planRepo *mealplan.Repository
	verifier *auth.Verifier
	cfg      *config.Config
}

// NewBot initializes the Telegram Bot and sets the Webhook.
func NewBot(cfg *config.Config, application *app.App, planRepo *mealplan.Repository, verifier *auth.Verifier) (*Bot, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram api: %w", err)
	}

	log.Printf("Authorized on account %s", bot.Self.UserName)

	webhookURL := cfg.TelegramWebhookURL
	wh, _ := tgbotapi.NewWebhook(webhookURL)
	resp, err := bot.Request(wh)
	if err != nil {
		return nil, fmt.Errorf("failed to set webhook to %s: %w", webhookURL, err)
	}
	log.Printf("Webhook set response: %s", resp.Description)

	return &Bot{
		api:      bot,
		app:      application,
		planRepo: planRepo,
		verifier: verifier,
		cfg:      cfg,
	}, nil
}

// RegisterHandlers registers the webhook handler with the default HTTP mux.
func (b *Bot) RegisterHandlers() {
	http.HandleFunc("/webhook", b.handleWebhook)
	http.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
}

func (b *Bot) handleWebhook(w http.ResponseWriter, r *http.Request) {
	update, err := b.api.HandleUpdate(r)
	if err != nil {
		log.Printf("Error parsing update: %v", err)
		return
	}

	if update.Message == nil {
		return
	}

	if b.cfg.TelegramAllowUserID != 0 && update.Message.From.ID != b.cfg.TelegramAllowUserID {
		log.Printf("⚠️ Unauthorized access attempt from UserID: %d (@%s)", update.Message.From.ID, update.Message.From.UserName)
		return
	}

	go b.processMessage(update.Message)
}

func (b *Bot) processMessage(msg *tgbotapi.Message) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	userID := fmt.Sprintf("%d", msg.From.ID)
	ctx, err := b.contextFor(ctx, userID)
	if err != nil {
		log.Printf("Failed to sign credential for user %s: %v", userID, err)
		b.reply(msg.Chat.ID, "❌ Internal error, try again later.")
		return
	}
	command, arg := splitCommand(msg.Text)

	switch command {
	case "/plans":
		b.handlePlans(ctx, userID, msg.Chat.ID)
	case "/list":
		b.handleShoppingList(ctx, userID, msg.Chat.ID, arg)
	case "/generate":
		b.handleGenerate(ctx, userID, msg.Chat.ID, arg)
	case "/nutrition":
		b.handleNutrition(ctx, userID, msg.Chat.ID, arg)
	case "/status":
		b.handleStatus(msg.Chat.ID)
	default:
		b.reply(msg.Chat.ID, helpText)
	}
}

const helpText = "👋 *Commands*\n\n" +
	"• /plans — your meal plans\n" +
	"• /list `<plan id>` — shopping list\n" +
	"• /generate `<plan id>` — rebuild the shopping list\n" +
	"• /nutrition `<plan id>` — nutrition summary\n" +
	"• /status — system health"

func (b *Bot) handlePlans(ctx context.Context, userID string, chatID int64) {
	plans, err := b.planRepo.List(ctx, userID, 0, 0)
	if err != nil {
		log.Printf("Error listing plans for user %s: %v", userID, err)
		b.reply(chatID, "❌ Error fetching your meal plans.")
		return
	}
	b.reply(chatID, formatPlans(plans))
}

func (b *Bot) handleShoppingList(ctx context.Context, userID string, chatID int64, arg string) {
	planID, ok := parsePlanID(arg)
	if !ok {
		b.reply(chatID, "Usage: /list `<plan id>` — find the id with /plans")
		return
	}

	list, err := b.app.GetShoppingList(ctx, planID, userID)
	if err != nil {
		log.Printf("Error fetching shopping list for plan %d: %v", planID, err)
		b.reply(chatID, "❌ No shopping list found. Try /generate first.")
		return
	}
	b.reply(chatID, formatShoppingList(list))
}

func (b *Bot) handleGenerate(ctx context.Context, userID string, chatID int64, arg string) {
	planID, ok := parsePlanID(arg)
	if !ok {
		b.reply(chatID, "Usage: /generate `<plan id>` — find the id with /plans")
		return
	}

	result, err := b.app.GenerateShoppingList(ctx, planID, userID)
	if err != nil {
		log.Printf("Error generating shopping list for plan %d: %v", planID, err)
		safeErr := strings.ReplaceAll(err.Error(), "`", "'")
		b.reply(chatID, fmt.Sprintf("❌ *Error generating shopping list:*\n```\n%v\n```", safeErr))
		return
	}

	text := formatShoppingList(result.List)
	if len(result.SkippedMealIDs) > 0 {
		text += fmt.Sprintf("\n⚠️ _%d meal(s) skipped: recipe no longer available._", len(result.SkippedMealIDs))
	}
	b.reply(chatID, text)
}

func (b *Bot) handleNutrition(ctx context.Context, userID string, chatID int64, arg string) {
	planID, ok := parsePlanID(arg)
	if !ok {
		b.reply(chatID, "Usage: /nutrition `<plan id>` — find the id with /plans")
		return
	}

	result, err := b.app.NutritionSummary(ctx, planID, userID)
	if err != nil {
		log.Printf("Error computing nutrition for plan %d: %v", planID, err)
		b.reply(chatID, "❌ Error computing the nutrition summary.")
		return
	}
	b.reply(chatID, formatNutrition(result.Summary))
}

func (b *Bot) handleStatus(chatID int64) {
	health := metrics.GetSysHealth(b.cfg.DatabasePath)

	var sb strings.Builder
	sb.WriteString("🧠 *System Health*\n\n")
	sb.WriteString(fmt.Sprintf("• RAM: %dMB (Alloc) / %dMB (Sys)\n", health.AllocMB, health.SysMB))
	sb.WriteString(fmt.Sprintf("• Goroutines: %d\n", health.Goroutines))
	sb.WriteString(fmt.Sprintf("• Disk Data: %s\n", health.DataDiskSize))

	b.reply(chatID, sb.String())
}

// contextFor attaches a signed credential for the resolved user, so catalog
// lookups made on their behalf carry an Authorization header.
func (b *Bot) contextFor(ctx context.Context, userID string) (context.Context, error) {
	token, err := b.verifier.Sign(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to sign credential: %w", err)
	}
	return auth.WithCredentials(ctx, auth.Credentials{UserID: userID, Token: token}), nil
}

func (b *Bot) reply(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "Markdown"
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Failed to send reply: %v", err)
	}
}

func splitCommand(text string) (string, string) {
	fields := strings.Fields(strings.TrimSpace(text))
	if len(fields) == 0 {
		return "", ""
	}
	command := fields[0]
	arg := ""
	if len(fields) > 1 {
		arg = fields[1]
	}
	return command, arg
}

func parsePlanID(arg string) (int64, bool) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func formatPlans(plans []mealplan.MealPlan) string {
	if len(plans) == 0 {
		return "📅 You have no meal plans yet."
	}

	var sb strings.Builder
	sb.WriteString("📅 *Your Meal Plans*\n\n")
	for _, p := range plans {
		sb.WriteString(fmt.Sprintf("• *#%d %s* (%s → %s)\n", p.ID, p.Name, p.StartDate, p.EndDate))
	}
	return sb.String()
}

func formatShoppingList(list *shopping.ShoppingList) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🛒 *%s*\n", list.Name))

	category := ""
	for _, item := range list.Items {
		if item.Category != category {
			category = item.Category
			sb.WriteString(fmt.Sprintf("\n*%s*\n", category))
		}
		check := "◻️"
		if item.IsPurchased {
			check = "✅"
		}
		sb.WriteString(fmt.Sprintf("%s %s — %s %s\n", check, item.IngredientName, item.Quantity, item.Unit))
	}
	if len(list.Items) == 0 {
		sb.WriteString("\n_The list is empty._\n")
	}
	return sb.String()
}

func formatNutrition(s nutrition.Summary) string {
	var sb strings.Builder
	sb.WriteString("🥗 *Nutrition Summary*\n\n")
	sb.WriteString(fmt.Sprintf("• Calories: %.0f kcal\n", s.TotalCalories))
	sb.WriteString(fmt.Sprintf("• Protein: %.1f g\n", s.TotalProtein))
	sb.WriteString(fmt.Sprintf("• Carbs: %.1f g\n", s.TotalCarbs))
	sb.WriteString(fmt.Sprintf("• Fat: %.1f g\n", s.TotalFat))
	sb.WriteString(fmt.Sprintf("• Meals: %d\n", s.MealsCount))
	return sb.String()
}
