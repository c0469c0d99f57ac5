package bot

import (
	"context"
	"fmt"
	"time"

	tele "gopkg.in/telebot.v3"

	"riderequest/pkg/logger"
	"riderequest/pkg/models"
)

// Sender is the part of *tele.Bot the dispatcher needs.
type Sender interface {
	Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error)
}

// Dispatcher posts every accepted ride request to a Telegram dispatch chat.
type Dispatcher struct {
	sender Sender
	chat   tele.Recipient
	log    logger.ILogger
}

// New builds a dispatcher for the given bot token and chat. The bot runs in
// offline mode: no updates are polled and no getMe call is made at startup.
func New(token string, chatID int64, log logger.ILogger) (*Dispatcher, error) {
	b, err := tele.NewBot(tele.Settings{
		Token:   token,
		Offline: true,
	})
	if err != nil {
		return nil, err
	}
	return NewWithSender(b, chatID, log), nil
}

func NewWithSender(sender Sender, chatID int64, log logger.ILogger) *Dispatcher {
	return &Dispatcher{
		sender: sender,
		chat:   &tele.Chat{ID: chatID},
		log:    log,
	}
}

func (d *Dispatcher) RideRequested(ctx context.Context, ride *models.RideRequest, persisted bool) error {
	if _, err := d.sender.Send(d.chat, formatRide(ride, persisted)); err != nil {
		return fmt.Errorf("send dispatch message: %w", err)
	}
	d.log.Debug("dispatch message sent", logger.String("user_id", ride.UserID))
	return nil
}

func formatRide(ride *models.RideRequest, persisted bool) string {
	header := "🔔 NEW RIDE REQUEST"
	if ride.ID != nil {
		header = fmt.Sprintf("%s #%d", header, *ride.ID)
	}
	msg := fmt.Sprintf("%s\n👤 User: %s\n📍 From: %s\n🏁 To: %s\n🕒 %s",
		header,
		ride.UserID,
		ride.SourceLocation,
		ride.DestLocation,
		ride.CreatedAt.Format(time.RFC3339),
	)
	if !persisted {
		msg += "\n⚠️ Not stored: database unavailable"
	}
	return msg
}
