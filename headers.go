package pollinations

import "github.com/samber/lo"

// Headers is the set of HTTP header values attached to an outbound request.
// A fresh value is built per request; fields left empty are dropped when
// rendered.
type Headers struct {
	Accept          string
	AcceptLanguage  string
	ContentType     string
	Origin          string
	Priority        string
	Referer         string
	SecChUA         string
	SecChUAMobile   string
	SecChUAPlatform string
	SecFetchSite    string
	SecGPC          string
	UserAgent       string
}

// NewHeaders returns a browser-like profile for the given accept value.
// Content-type, origin and priority stay unset until the caller needs them.
func NewHeaders(accept string) Headers {
	return Headers{
		Accept:          accept,
		AcceptLanguage:  "en-US,en;q=0.5",
		Referer:         "https://karma.pollinations.ai/",
		SecChUA:         `"Brave";v="131", "Chromium";v="131", "Not_A Brand";v="24"`,
		SecChUAMobile:   "?0",
		SecChUAPlatform: `"Windows"`,
		SecFetchSite:    "same-site",
		SecGPC:          "1",
		UserAgent:       "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36",
	}
}

// Render converts the profile to wire header names, omitting unset fields.
func (h Headers) Render() map[string]string {
	fields := map[string]string{
		"accept":             h.Accept,
		"accept-language":    h.AcceptLanguage,
		"content-type":       h.ContentType,
		"origin":             h.Origin,
		"priority":           h.Priority,
		"referer":            h.Referer,
		"sec-ch-ua":          h.SecChUA,
		"sec-ch-ua-mobile":   h.SecChUAMobile,
		"sec-ch-ua-platform": h.SecChUAPlatform,
		"sec-fetch-site":     h.SecFetchSite,
		"sec-gpc":            h.SecGPC,
		"user-agent":         h.UserAgent,
	}
	return lo.OmitBy(fields, func(_ string, v string) bool { return v == "" })
}
