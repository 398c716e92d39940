package notify

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/url"
	"strings"

	"restaurant-reservation-api/config"
)

// eskizLogin exchanges the gateway credentials for a bearer token.
func eskizLogin() (string, error) {
	resp, err := client.PostForm(config.EskizAPIURL+"/api/auth/login", url.Values{
		"email":    {config.EskizEmail},
		"password": {config.EskizPassword},
	})
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", errors.New("sms gateway authentication failed")
	}

	var body struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", err
	}
	if body.Data.Token == "" {
		return "", errors.New("sms gateway returned no token")
	}
	return body.Data.Token, nil
}

// SendSMS delivers a message through the Eskiz gateway. Best effort:
// callers fire it in a goroutine and never see the error.
func SendSMS(phone, message string) {
	if config.EskizEmail == "" || config.EskizPassword == "" {
		return
	}

	token, err := eskizLogin()
	if err != nil {
		log.Printf("sms: login failed: %v", err)
		return
	}

	form := url.Values{
		"mobile_phone": {phone},
		"message":      {message},
		"from":         {config.EskizSender},
	}
	req, err := http.NewRequest(http.MethodPost, config.EskizAPIURL+"/api/message/sms/send", strings.NewReader(form.Encode()))
	if err != nil {
		log.Printf("sms: building request failed: %v", err)
		return
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := client.Do(req)
	if err != nil {
		log.Printf("sms: send failed: %v", err)
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Printf("sms: gateway returned status %d", resp.StatusCode)
		return
	}
	log.Printf("sms: message sent to %s", phone)
}
