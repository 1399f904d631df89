package http

import (
	"net"
	"net/http"
	"time"
)

// DefaultUserAgent は外部APIへ送る User-Agent です。
const DefaultUserAgent = "research-backend/1.0"

type clientOptions struct {
	userAgent       string
	maxConnsPerHost int
}

// Option は NewHTTPClient の設定を変更します。
type Option func(*clientOptions)

// WithUserAgent は全リクエストに付与する User-Agent を指定します。空文字の場合は付与しません。
func WithUserAgent(ua string) Option {
	return func(o *clientOptions) { o.userAgent = ua }
}

// WithMaxConnsPerHost はホストごとの同時接続数を制限します。
// レート制限の厳しいAPI（Finnhub無料枠など）で接続を使い回すために使います。
func WithMaxConnsPerHost(n int) Option {
	return func(o *clientOptions) { o.maxConnsPerHost = n }
}

// NewHTTPClient は外部API（Finnhub など）呼び出し用のHTTPクライアントを作成します。
// http.DefaultClient にはタイムアウトがないため、外部呼び出しには常にこれを使います。
func NewHTTPClient(timeout time.Duration, opts ...Option) *http.Client {
	o := clientOptions{userAgent: DefaultUserAgent, maxConnsPerHost: 10}
	for _, opt := range opts {
		opt(&o)
	}

	var rt http.RoundTripper = &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: o.maxConnsPerHost,
		MaxConnsPerHost:     o.maxConnsPerHost,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	if o.userAgent != "" {
		rt = &userAgentTransport{next: rt, userAgent: o.userAgent}
	}
	return &http.Client{Timeout: timeout, Transport: rt}
}

// userAgentTransport は呼び出し元が指定していない場合のみ User-Agent を設定します。
type userAgentTransport struct {
	next      http.RoundTripper
	userAgent string
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") != "" {
		return t.next.RoundTrip(req)
	}
	// RoundTripper はリクエストを変更してはならないため複製する
	r := req.Clone(req.Context())
	r.Header.Set("User-Agent", t.userAgent)
	return t.next.RoundTrip(r)
}
