package rates

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/beevik/etree"
	"github.com/contatoscormecial-rgb/zap/internal/config"
	"github.com/sirupsen/logrus"
)

// Client fetches daily currency quotes from a central-bank SOAP service.
// The quote for one configured currency restates the invested total in
// that reference currency.
type Client struct {
	url      string
	currency string
	client   *http.Client
	log      *logrus.Logger
}

// NewClient initializes a new rates client
func NewClient(cfg *config.Config, log *logrus.Logger) *Client {
	return &Client{
		url:      cfg.RatesURL,
		currency: cfg.RatesCurrency,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		log: log,
	}
}

// Enabled reports whether a rates endpoint is configured
func (c *Client) Enabled() bool {
	return c.url != ""
}

// Currency returns the reference currency code quotes are fetched for
func (c *Client) Currency() string {
	return c.currency
}

// buildSOAPRequest creates a GetCursOnDate request for the given day's quotes
func (c *Client) buildSOAPRequest(day time.Time) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="utf-8"?>
		<soap12:Envelope xmlns:soap12="http://www.w3.org/2003/05/soap-envelope">
			<soap12:Body>
				<GetCursOnDate xmlns="http://web.cbr.ru/">
					<On_date>%s</On_date>
				</GetCursOnDate>
			</soap12:Body>
		</soap12:Envelope>`, day.Format("2006-01-02"))
}

// sendRequest posts the SOAP envelope and returns the raw body
func (c *Client) sendRequest(soapRequest string) ([]byte, error) {
	req, err := http.NewRequest("POST", c.url, bytes.NewBuffer([]byte(soapRequest)))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}

	req.Header.Set("Content-Type", "application/soap+xml; charset=utf-8")
	req.Header.Set("SOAPAction", "http://web.cbr.ru/GetCursOnDate")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %v", err)
	}

	c.log.Debugf("rates XML response: %s", string(body))

	return body, nil
}

// parseXMLResponse finds the configured currency among the day's quotes.
// Quotes come per lot (Vnom units), so the per-unit rate is Vcurs/Vnom.
func (c *Client) parseXMLResponse(rawBody []byte) (float64, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(rawBody); err != nil {
		return 0, fmt.Errorf("failed to parse XML: %v", err)
	}

	for _, quote := range doc.FindElements("//ValuteData/ValuteCursOnDate") {
		code := quote.FindElement("./VchCode")
		if code == nil || code.Text() != c.currency {
			continue
		}

		cursElement := quote.FindElement("./Vcurs")
		nomElement := quote.FindElement("./Vnom")
		if cursElement == nil || nomElement == nil {
			return 0, fmt.Errorf("incomplete quote for %s", c.currency)
		}

		var curs, nom float64
		if _, err := fmt.Sscanf(cursElement.Text(), "%f", &curs); err != nil {
			return 0, fmt.Errorf("failed to parse rate: %v", err)
		}
		if _, err := fmt.Sscanf(nomElement.Text(), "%f", &nom); err != nil {
			return 0, fmt.Errorf("failed to parse lot size: %v", err)
		}
		if nom <= 0 {
			return 0, fmt.Errorf("invalid lot size for %s: %s", c.currency, nomElement.Text())
		}
		return curs / nom, nil
	}

	return 0, fmt.Errorf("no quote for %s in XML", c.currency)
}

// GetCurrencyRate retrieves today's quote for the configured currency,
// in home-currency units per one unit of that currency.
func (c *Client) GetCurrencyRate() (float64, error) {
	body, err := c.sendRequest(c.buildSOAPRequest(time.Now()))
	if err != nil {
		return 0, err
	}

	rate, err := c.parseXMLResponse(body)
	if err != nil {
		return 0, err
	}

	c.log.Infof("Retrieved %s rate: %.4f", c.currency, rate)
	return rate, nil
}
