package sender

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/pkg/errors"

	"github.com/kashee337/solve_digest/logger"
	"github.com/kashee337/solve_digest/model"
)

// Notify posts text to a slack style incoming webhook. Failures are logged.
func Notify(client *http.Client, webhook_url string, text string, log logger.Sink) bool {
	if err := postPayload(client, webhook_url, text); err != nil {
		log.Error("notify: %v", err)
		return false
	}
	log.Info("notify: sent %q", text)
	return true
}

func postPayload(client *http.Client, webhook_url string, text string) error {
	if client == nil {
		client = http.DefaultClient
	}
	data, err := json.Marshal(model.Payload{Text: text})
	if err != nil {
		return errors.Wrap(err, "encode payload")
	}
	res, err := client.PostForm(webhook_url, url.Values{"payload": {string(data)}})
	if err != nil {
		return errors.Wrap(err, "post webhook")
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return errors.Errorf("webhook status %d", res.StatusCode)
	}
	return nil
}
