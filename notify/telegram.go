// Package notify holds the best-effort outbound senders. Failures are
// logged and dropped; a reservation or registration never fails
// because a notification did.
package notify

import (
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

var client = &http.Client{Timeout: 10 * time.Second}

// BookingNotification is everything the restaurant's Telegram chat
// needs to see about a new table request.
type BookingNotification struct {
	GuestName string
	Phone     string
	Date      time.Time
	Guests    int
	ChatID    string
}

// SendBookingToTelegram posts a booking message to the restaurant's
// chat. Best effort: errors are logged, never returned upward.
func SendBookingToTelegram(botToken string, n BookingNotification) {
	if botToken == "" || n.ChatID == "" {
		return
	}

	message := "🔔 New table booking request:\n\n" +
		"👤 Name: " + n.GuestName + "\n" +
		"📞 Phone: " + n.Phone + "\n" +
		"📅 Date: " + n.Date.Format("2006-01-02") + "\n" +
		"🕒 Time: " + n.Date.Format("15:04") + "\n" +
		"👥 Guests: " + strconv.Itoa(n.Guests)

	endpoint := "https://api.telegram.org/bot" + botToken + "/sendMessage"
	payload := url.Values{
		"chat_id": {n.ChatID},
		"text":    {message},
	}

	resp, err := client.PostForm(endpoint, payload)
	if err != nil {
		log.Printf("telegram: failed to send booking message: %v", err)
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Printf("telegram: sendMessage returned status %d", resp.StatusCode)
		return
	}
	log.Println("telegram: booking message sent")
}
