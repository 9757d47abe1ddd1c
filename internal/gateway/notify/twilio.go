package notify

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"live-orders-dispatch/internal/config"
	"live-orders-dispatch/internal/logx"
)

const (
	whatsappPrefix = "whatsapp:"
	maxErrorBody   = 512
)

// Twilio sends messages through a Twilio-compatible messages API.
type Twilio struct {
	client   *http.Client
	endpoint string
	sid      string
	token    string
	from     string
	channel  string
	logger   logx.Logger
}

// NewTwilio creates a Twilio gateway. Every call is bounded by cfg.Timeout.
func NewTwilio(cfg config.Notify, logger logx.Logger) *Twilio {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	base := strings.TrimRight(cfg.BaseURL, "/")
	return &Twilio{
		client:   &http.Client{Timeout: timeout},
		endpoint: base + "/2010-04-01/Accounts/" + url.PathEscape(cfg.AccountSID) + "/Messages.json",
		sid:      cfg.AccountSID,
		token:    cfg.AuthToken,
		from:     cfg.From,
		channel:  cfg.Channel,
		logger:   logx.OrNop(logger),
	}
}

// SendMessage posts body to toPhone. Transport errors, timeouts and non-2xx answers are
// reported as false. There are no retries.
func (t *Twilio) SendMessage(ctx context.Context, toPhone, body string) bool {
	form := url.Values{}
	form.Set("From", t.address(t.from))
	form.Set("To", t.address(toPhone))
	form.Set("Body", body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		t.logger.Error("build notification request", logx.Err(err))
		return false
	}
	req.SetBasicAuth(t.sid, t.token)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		t.logger.Warn("notification transport error", logx.Err(err))
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		t.logger.Warn("notification rejected",
			logx.Int("status", resp.StatusCode),
			logx.String("body", string(snippet)),
		)
		return false
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return true
}

func (t *Twilio) address(phone string) string {
	phone = strings.TrimSpace(phone)
	if t.channel != config.ChannelWhatsApp || strings.HasPrefix(phone, whatsappPrefix) {
		return phone
	}
	return whatsappPrefix + phone
}
