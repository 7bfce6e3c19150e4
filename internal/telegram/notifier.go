package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/openplatform/guardian-go/internal/domain"
	"github.com/openplatform/guardian-go/internal/metrics"
)

type NotifierConfig struct {
	Token  string
	ChatID int64
	Debug  bool
}

// Notifier posts digests of newly archived articles to a single chat.
type Notifier struct {
	api     *tgbotapi.BotAPI
	chatID  int64
	logger  *zap.Logger
	metrics *metrics.Metrics
}

func NewNotifier(cfg NotifierConfig, logger *zap.Logger, m *metrics.Metrics) (*Notifier, error) {
	api, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("create bot api: %w", err)
	}

	api.Debug = cfg.Debug

	if logger == nil {
		logger = zap.NewNop()
	}

	logger.Info("telegram bot authorized",
		zap.String("username", api.Self.UserName),
	)

	return &Notifier{
		api:     api,
		chatID:  cfg.ChatID,
		logger:  logger,
		metrics: m,
	}, nil
}

// SendDigest sends one digest covering the given articles, split over
// several messages when it exceeds the Telegram limit. An empty slice
// sends nothing.
func (n *Notifier) SendDigest(articles []domain.Article) error {
	if len(articles) == 0 {
		return nil
	}

	text := FormatDigest(articles)
	for _, part := range SplitMessage(text, MaxMessageLen) {
		if err := n.send(part); err != nil {
			if n.metrics != nil {
				n.metrics.RecordDigestSent("error")
			}
			return fmt.Errorf("send digest: %w", err)
		}
	}

	if n.metrics != nil {
		n.metrics.RecordDigestSent("ok")
	}
	n.logger.Info("digest sent",
		zap.Int("articles", len(articles)),
		zap.Int64("chat_id", n.chatID),
	)

	return nil
}

func (n *Notifier) send(text string) error {
	if n.api == nil {
		return nil
	}
	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "HTML"
	msg.DisableWebPagePreview = true
	_, err := n.api.Send(msg)
	return err
}
