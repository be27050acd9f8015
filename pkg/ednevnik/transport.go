package ednevnik

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"ednevnik/internal/assert"
	"ednevnik/lib/restyutil"
	"ednevnik/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
)

// the portal serves different markup to clients that do not look like a browser.
// Accept-Encoding is left to net/http so gzip bodies are decoded transparently.
var browserHeaders = map[string]string{
	"Accept":                    "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,image/apng,*/*;q=0.8,application/signed-exchange;v=b3;q=0.9",
	"Accept-Language":           "en-US,en;q=0.9",
	"Connection":                "keep-alive",
	"Sec-Fetch-Dest":            "document",
	"Sec-Fetch-Mode":            "navigate",
	"Sec-Fetch-Site":            "none",
	"Upgrade-Insecure-Requests": "1",
	"User-Agent":                "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/83.0.4103.106 Safari/537.36",
}

const maxRedirects = 10

type transportOptions struct {
	baseUrl    *url.URL
	timeout    time.Duration
	browserTLS bool
	output     restyutil.InstrumentOutput
}

type transport struct {
	http    *resty.Client
	session *Session
}

func newTransport(session *Session, tel telemetry.API, opts transportOptions) *transport {
	assert.NotNil(session)
	assert.NotNil(tel)
	assert.NotNil(opts.baseUrl)

	t := &transport{session: session}

	httpClient := resty.New()
	httpClient.SetBaseURL(opts.baseUrl.String())
	httpClient.SetCookieJar(session.Jar())
	httpClient.SetHeaders(browserHeaders)
	httpClient.SetTimeout(opts.timeout)
	if opts.browserTLS {
		httpClient.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(httpClient.GetClient().Transport)
	}
	httpClient.SetRedirectPolicy(
		resty.FlexibleRedirectPolicy(maxRedirects),
		resty.DomainCheckRedirectPolicy(opts.baseUrl.Hostname()),
		resty.RedirectPolicyFunc(t.captureRedirectToken),
	)

	telemetry.InstrumentResty(httpClient, tel, opts.output)

	t.http = httpClient
	return t
}

// the login submission answers with a redirect, the token it rotates
// would be lost if only the final response was looked at.
func (t *transport) captureRedirectToken(req *http.Request, _ []*http.Request) error {
	if req.Response != nil {
		t.session.SetTokenFromHeaders(req.Response.Header.Values("Set-Cookie"))
	}
	return nil
}

// request issues a GET for path, or a url-encoded form POST when form is not nil.
func (t *transport) request(ctx context.Context, path string, form url.Values) (*resty.Response, error) {
	method := resty.MethodGet
	req := t.http.R().SetContext(ctx)
	if form != nil {
		method = resty.MethodPost
		req.SetFormDataFromValues(form)
	}

	res, err := req.Execute(method, path)
	if err != nil {
		return nil, &TransportError{Method: method, Path: path, Err: err}
	}
	t.session.SetTokenFromHeaders(res.Header().Values("Set-Cookie"))

	if res.IsError() {
		return nil, &TransportError{
			Method: method,
			Path:   path,
			Status: res.StatusCode(),
			Err:    fmt.Errorf("unexpected status '%s'", res.Status()),
		}
	}
	return res, nil
}
