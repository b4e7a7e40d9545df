package webhook

import "fmt"

// Message is the body a Discord-compatible webhook expects.
type Message struct {
	Content string `json:"content"`
}

// PurchaseContent renders the notification line for a completed purchase.
func PurchaseContent(username, item string, price float64) string {
	return fmt.Sprintf(
		"🛒 **Purchase Made!**\n👤 **Username:** %s\n📦 **Item:** %s\n💰 **Price:** $%.2f",
		username, item, price,
	)
}
