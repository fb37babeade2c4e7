// Package notify delivers peak alerts via the Telegram Bot API. When a
// completed run's epidemic peak exceeds the configured fraction of the
// population, the run summary is formatted into a MarkdownV2 message and
// sent with bounded retries. Delivery failures never affect the run itself.
package notify

import (
	"fmt"
	"strconv"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/epiforge/seirsim/internal/models"
	"github.com/epiforge/seirsim/internal/seir"
)

// Client handles Telegram peak alerts
type Client struct {
	bot            *tgbotapi.BotAPI
	chatID         int64
	maxRetries     int
	retryDelayBase time.Duration
}

// NewClient creates a new Telegram client
func NewClient(botToken, chatID string, maxRetries int, retryDelayBase time.Duration) (*Client, error) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create Telegram bot: %w", err)
	}

	chatIDInt, err := strconv.ParseInt(chatID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid chat ID: %w", err)
	}

	if maxRetries <= 0 {
		maxRetries = 3
	}
	if retryDelayBase <= 0 {
		retryDelayBase = time.Second
	}

	return &Client{
		bot:            bot,
		chatID:         chatIDInt,
		maxRetries:     maxRetries,
		retryDelayBase: retryDelayBase,
	}, nil
}

// SendPeakAlert sends the run summary as a peak alert message.
func (c *Client) SendPeakAlert(run *models.RunRecord) error {
	msg := tgbotapi.NewMessage(c.chatID, formatPeakAlert(run))
	msg.ParseMode = "MarkdownV2"

	var lastErr error
	for i := 0; i < c.maxRetries; i++ {
		_, err := c.bot.Send(msg)
		if err == nil {
			return nil
		}
		lastErr = err
		time.Sleep(c.retryDelayBase * time.Duration(i+1))
	}

	return fmt.Errorf("failed to send message after %d retries: %w", c.maxRetries, lastErr)
}

// formatPeakAlert formats a run summary into a Telegram MarkdownV2 message.
func formatPeakAlert(run *models.RunRecord) string {
	peakShare := 0.0
	if run.Scenario.Population > 0 {
		peakShare = run.PeakValue / run.Scenario.Population * 100
	}

	title := escapeMarkdownV2(run.TitleSEIR)
	peakLine := escapeMarkdownV2(fmt.Sprintf("%.0f people sick at once (%.1f%% of the population)", run.PeakValue, peakShare))
	whenLine := escapeMarkdownV2(fmt.Sprintf("day %d (%s)", run.PeakDay, seir.MonthNames[run.PeakMonth]))
	casesLine := escapeMarkdownV2(fmt.Sprintf("%.0f", run.TotalEstimatedCases))
	dateLine := escapeMarkdownV2(run.CreatedAt.Format("2006-01-02 15:04:05"))

	message := "⚠️ *Epidemic peak alert*\n\n"
	message += fmt.Sprintf("*%s*\n\n", title)
	message += fmt.Sprintf("📈 Peak: %s\n", peakLine)
	message += fmt.Sprintf("📅 When: %s\n", whenLine)
	message += fmt.Sprintf("🧮 Estimated cumulative cases: %s\n", casesLine)
	message += fmt.Sprintf("🕒 Simulated: %s\n", dateLine)

	return message
}

// escapeMarkdownV2 escapes special characters for Telegram MarkdownV2
func escapeMarkdownV2(text string) string {
	result := ""
	for _, char := range text {
		switch char {
		case '_', '*', '[', ']', '(', ')', '~', '`', '>', '#', '+', '-', '=', '|', '{', '}', '.', '!':
			result += "\\" + string(char)
		default:
			result += string(char)
		}
	}
	return result
}
