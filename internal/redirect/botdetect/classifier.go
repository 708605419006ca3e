// Package botdetect classifies user agents as automated or human traffic.
//
// Classification is a pure function of the user-agent string: the input is
// lower-cased and matched against an ordered list of substrings. The first
// pattern that matches wins and is reported as the reason, so more specific
// crawler names are listed before the generic "bot", "crawl" and "spider"
// catch-alls.
package botdetect

import (
	"strings"

	"github.com/samber/lo"
)

// ReasonEmptyUserAgent is reported when the request carries no user agent.
const ReasonEmptyUserAgent = "Empty user agent"

// Result is the outcome of classifying one user agent.
type Result struct {
	IsBot  bool
	Reason string
}

// patterns is matched in order against the lower-cased user agent.
var patterns = []string{
	// search engines
	"googlebot",
	"google-inspectiontool",
	"adsbot-google",
	"mediapartners-google",
	"bingbot",
	"bingpreview",
	"slurp",
	"duckduckbot",
	"baiduspider",
	"yandexbot",
	"sogou",
	"exabot",
	"applebot",
	"petalbot",
	// social and chat previews
	"facebookexternalhit",
	"facebookcatalog",
	"twitterbot",
	"linkedinbot",
	"pinterestbot",
	"slackbot",
	"discordbot",
	"telegrambot",
	"whatsapp",
	"skypeuripreview",
	"redditbot",
	"embedly",
	// SEO and AI crawlers
	"ahrefsbot",
	"semrushbot",
	"mj12bot",
	"dotbot",
	"bytespider",
	"gptbot",
	"claudebot",
	"ccbot",
	"perplexitybot",
	// HTTP tooling
	"curl/",
	"wget/",
	"python-requests",
	"python-urllib",
	"aiohttp",
	"go-http-client",
	"java/",
	"okhttp",
	"apache-httpclient",
	"node-fetch",
	"axios/",
	"postmanruntime",
	"insomnia",
	"libwww-perl",
	"httpie",
	// headless browsers and monitors
	"headlesschrome",
	"phantomjs",
	"puppeteer",
	"playwright",
	"lighthouse",
	"pingdom",
	"uptimerobot",
	// generic
	"bot",
	"crawl",
	"spider",
}

// Classify reports whether ua belongs to an automated client.
func Classify(ua string) Result {
	if strings.TrimSpace(ua) == "" {
		return Result{IsBot: true, Reason: ReasonEmptyUserAgent}
	}

	lowered := strings.ToLower(ua)
	pattern, ok := lo.Find(patterns, func(p string) bool {
		return strings.Contains(lowered, p)
	})
	if !ok {
		return Result{}
	}

	return Result{IsBot: true, Reason: "Matched pattern: " + pattern}
}
