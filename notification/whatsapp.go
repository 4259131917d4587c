package notification

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"khanabook-pos/models"
)

// Sink delivers a post-completion bill message. Delivery failures are the
// caller's to report; they never roll back order state.
type Sink interface {
	SendBill(order *models.Order) error
}

// WhatsAppSink posts bill messages to a WhatsApp Business API gateway. With
// no gateway configured it logs the message and reports success, which keeps
// local development working without credentials.
type WhatsAppSink struct {
	apiURL string
	apiKey string
	client *http.Client
}

func NewWhatsAppSink(apiURL, apiKey string) *WhatsAppSink {
	return &WhatsAppSink{
		apiURL: apiURL,
		apiKey: apiKey,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *WhatsAppSink) SendBill(order *models.Order) error {
	message := BuildBillMessage(order)

	if s.apiURL == "" {
		log.Printf("whatsapp: no gateway configured, bill for order %d to %s:\n%s",
			order.ID, order.CustomerPhone, message)
		return nil
	}

	payload, err := json.Marshal(map[string]string{
		"to":   order.CustomerPhone,
		"body": message,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, s.apiURL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("whatsapp gateway returned status %d", resp.StatusCode)
	}

	log.Printf("whatsapp: bill for order %d sent to %s", order.ID, order.CustomerPhone)
	return nil
}

// BuildBillMessage renders the customer-facing bill text for a completed
// order.
func BuildBillMessage(order *models.Order) string {
	var b strings.Builder
	b.WriteString("Thank you for dining with Khana Book!\n")
	fmt.Fprintf(&b, "Order ID: %d\n", order.ID)
	if order.Table != nil {
		fmt.Fprintf(&b, "Table: %s\n", order.Table.Name)
	} else {
		b.WriteString("Table: Takeaway\n")
	}
	b.WriteString("Items:\n")
	for _, item := range order.Items {
		fmt.Fprintf(&b, "- %s x%d = ₹%.2f\n", item.Name, item.Quantity, item.Subtotal())
	}
	fmt.Fprintf(&b, "Total: ₹%.2f\n", order.TotalAmount)
	b.WriteString("Visit again!")
	return b.String()
}
