package rates

import (
	"math"
	"testing"

	"github.com/sirupsen/logrus"
)

const cursOnDateResponse = `<?xml version="1.0" encoding="utf-8"?>
<soap12:Envelope xmlns:soap12="http://www.w3.org/2003/05/soap-envelope">
  <soap12:Body>
    <GetCursOnDateResponse xmlns="http://web.cbr.ru/">
      <GetCursOnDateResult>
        <diffgram>
          <ValuteData>
            <ValuteCursOnDate>
              <Vname>US Dollar</Vname>
              <Vnom>1</Vnom>
              <Vcurs>93.2519</Vcurs>
              <Vcode>840</Vcode>
              <VchCode>USD</VchCode>
            </ValuteCursOnDate>
            <ValuteCursOnDate>
              <Vname>Japanese Yen</Vname>
              <Vnom>100</Vnom>
              <Vcurs>62.5801</Vcurs>
              <Vcode>392</Vcode>
              <VchCode>JPY</VchCode>
            </ValuteCursOnDate>
          </ValuteData>
        </diffgram>
      </GetCursOnDateResult>
    </GetCursOnDateResponse>
  </soap12:Body>
</soap12:Envelope>`

func testClient(currency string) *Client {
	return &Client{currency: currency, log: logrus.New()}
}

func TestParseCurrencyQuote(t *testing.T) {
	rate, err := testClient("USD").parseXMLResponse([]byte(cursOnDateResponse))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if math.Abs(rate-93.2519) > 1e-9 {
		t.Fatalf("USD rate = %v, want 93.2519", rate)
	}
}

func TestParseQuoteDividesLotSize(t *testing.T) {
	rate, err := testClient("JPY").parseXMLResponse([]byte(cursOnDateResponse))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	// JPY quotes come per 100-unit lot
	if math.Abs(rate-0.625801) > 1e-9 {
		t.Fatalf("JPY rate = %v, want 0.625801", rate)
	}
}

func TestParseQuoteUnknownCurrency(t *testing.T) {
	if _, err := testClient("GBP").parseXMLResponse([]byte(cursOnDateResponse)); err == nil {
		t.Fatal("expected error for a currency with no quote")
	}
}

func TestParseQuoteBadXML(t *testing.T) {
	if _, err := testClient("USD").parseXMLResponse([]byte("not xml")); err == nil {
		t.Fatal("expected error for malformed XML")
	}
}
