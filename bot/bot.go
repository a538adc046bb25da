package bot

import (
	"context"
	"log"
	"sync"
	"time"

	"spice-garden/services"
	"spice-garden/session"
)

// Bot dispatches one user query at a time per session: interpret, check
// serving hours, mutate the session ledger, format the reply, persist.
type Bot struct {
	store session.Store
	now   func() time.Time

	sessionLocks sync.Map // map[sessionID]*sync.Mutex
}

func New(store session.Store) *Bot {
	return &Bot{
		store: store,
		now:   time.Now,
	}
}

// lockSession serializes the read-modify-write on one session's ledger so
// concurrent requests for the same session can't lose updates.
func (b *Bot) lockSession(sessionID string) func() {
	v, _ := b.sessionLocks.LoadOrStore(sessionID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// Handle processes one query for a session and returns the reply text. The
// reply is always non-empty; any failure (store error or panic) comes back
// as the fixed apology and leaves the session as it was.
func (b *Bot) Handle(ctx context.Context, sessionID, query string) (reply string) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("handle session=%s: panic: %v", sessionID, r)
			reply = services.InternalErrorReply
		}
	}()

	unlock := b.lockSession(sessionID)
	defer unlock()

	lines, err := b.store.Load(ctx, sessionID)
	if err != nil {
		log.Printf("handle session=%s: load: %v", sessionID, err)
		return services.InternalErrorReply
	}
	ledger := services.NewLedger(lines)

	intent := services.Interpret(query)
	switch intent.Kind {
	case services.IntentCheckout:
		ordered := ledger.CheckoutAndClear()
		if len(ordered) > 0 {
			if err := b.store.Delete(ctx, sessionID); err != nil {
				log.Printf("handle session=%s: delete: %v", sessionID, err)
				return services.InternalErrorReply
			}
		}
		return services.CheckoutReply(ordered)

	case services.IntentPlaceOrder:
		if !services.IsServing(intent.Item.Period, b.now()) {
			return services.OrderRejectedReply(intent.Item.Period)
		}
		displayName := services.Pluralize(intent.Item.Name, intent.Quantity)
		ledger.AddOrMerge(displayName, intent.Quantity)
		if err := b.store.Save(ctx, sessionID, ledger.Lines()); err != nil {
			log.Printf("handle session=%s: save: %v", sessionID, err)
			return services.InternalErrorReply
		}
		return services.OrderAcceptedReply(intent.Quantity, displayName)

	case services.IntentMealInquiry:
		return services.MealInquiryReply(intent.Period, services.IsServing(intent.Period, b.now()))

	case services.IntentFullMenu:
		return services.FullMenuReply()

	default:
		return services.FallbackReply
	}
}
