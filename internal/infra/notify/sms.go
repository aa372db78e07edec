package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"dining-concierge/internal/infra"
	"dining-concierge/internal/pkg/config"
	"dining-concierge/internal/pkg/errs"
)

// SMSClient dispatches text messages through a Twilio-compatible Messages API.
type SMSClient struct {
	hc      *http.Client
	baseURL string
	account string
	token   string
	from    string
}

func NewSMSClient(cfg config.SMSConfig) *SMSClient {
	return &SMSClient{
		hc:      &http.Client{Timeout: cfg.Timeout},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		account: cfg.Account,
		token:   cfg.AuthToken,
		from:    cfg.From,
	}
}

func (c *SMSClient) Send(ctx context.Context, phoneNumber, text string) error {
	form := url.Values{
		"To":   {phoneNumber},
		"From": {c.from},
		"Body": {text},
	}
	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", c.baseURL, c.account)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return infra.WrapErr("failed to build sms request", err, infra.KindDispatchFailure)
	}
	req.SetBasicAuth(c.account, c.token)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.hc.Do(req)
	if err != nil {
		return infra.WrapErr("failed to send sms", err, infra.KindDispatchFailure)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		var apiErr struct {
			Message string `json:"message"`
		}
		_ = json.Unmarshal(body, &apiErr)
		if apiErr.Message != "" {
			return infra.WrapErr("sms gateway rejected message",
				errs.Newf("%s (status=%d)", apiErr.Message, resp.StatusCode), infra.KindDispatchFailure)
		}
		return infra.WrapErr("sms gateway rejected message",
			errs.Newf("status=%d", resp.StatusCode), infra.KindDispatchFailure)
	}
	return nil
}
