package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"bukutamu/internal/models/db_models"
	"bukutamu/internal/repositories"
	"bukutamu/pkg/utils"
)

// NotifierInterface decouples host notification from the check-in
// transaction: enqueueing never blocks and never fails the caller.
type NotifierInterface interface {
	NotifyCheckin(guest db_models.Guest)
}

// Notifier consumes check-in events from a channel and pushes a WhatsApp
// message to the visited host. Modeled as a single background worker so a
// slow or dead gateway cannot back-pressure the reception desk.
type Notifier struct {
	recipientRepo repositories.RecipientRepository
	whatsapp      WhatsAppServiceInterface
	inbox         chan db_models.Guest
}

func NewNotifier(
	recipientRepo repositories.RecipientRepository,
	whatsapp WhatsAppServiceInterface) *Notifier {
	return &Notifier{
		recipientRepo: recipientRepo,
		whatsapp:      whatsapp,
		inbox:         make(chan db_models.Guest, 64),
	}
}

func (n *Notifier) NotifyCheckin(guest db_models.Guest) {
	select {
	case n.inbox <- guest:
	default:
		log.Printf("notification inbox full, dropping check-in notice for guest %s", guest.ID)
	}
}

// Run drains the inbox until ctx is cancelled. Started from an fx lifecycle
// hook in cmd/app.
func (n *Notifier) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case guest := <-n.inbox:
			n.deliver(ctx, guest)
		}
	}
}

func (n *Notifier) deliver(ctx context.Context, guest db_models.Guest) {
	sendCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	recipient, err := n.recipientRepo.FindByID(sendCtx, guest.RecipientID.String())
	if err != nil || recipient == nil {
		log.Printf("cannot resolve recipient %q for guest %s: %v", guest.To, guest.ID, err)
		return
	}
	if recipient.Whatsapp == "" {
		log.Printf("recipient %q has no WhatsApp number, skipping notification", recipient.Name)
		return
	}

	result, err := n.whatsapp.SendText(sendCtx, recipient.Whatsapp, FormatArrivalMessage(&guest))
	if err != nil {
		log.Printf("host notification skipped for guest %s: %v", guest.ID, err)
		return
	}
	if result.Fallback {
		log.Printf("host notification for guest %s degraded to deep link: %s", guest.ID, result.WhatsappURL)
	}
}

// FormatArrivalMessage renders the message the host receives when their
// visitor checks in.
func FormatArrivalMessage(guest *db_models.Guest) string {
	arrivedAt := time.Now()
	if guest.CheckedInAt != nil {
		arrivedAt = *guest.CheckedInAt
	}

	return fmt.Sprintf(
		"*NOTIFIKASI TAMU BARU*\n\n"+
			"👤 *Nama:* %s\n"+
			"📱 *WhatsApp:* %s\n"+
			"🎯 *Keperluan:* %s\n"+
			"⏰ *Waktu Kedatangan:* %s\n\n"+
			"Mohon segera melayani tamu yang sudah check-in.",
		guest.Name, guest.Whatsapp, guest.Purpose, utils.FormatCheckinNote(arrivedAt),
	)
}
