package generators

import (
	"fmt"
	"html"
	"net/url"
	"strings"
	"unicode/utf8"
)

// search engines truncate past these lengths
const (
	MaxTitleLength       = 60
	MaxDescriptionLength = 160
)

type MetaConfig struct {
	Title          string `json:"title" validate:"max=300"`
	Description    string `json:"description" validate:"max=1000"`
	Keywords       string `json:"keywords" validate:"max=500"`
	Author         string `json:"author" validate:"max=200"`
	Image          string `json:"image" validate:"omitempty,url"`
	URL            string `json:"url" validate:"max=2000"`
	SocialHandle   string `json:"socialHandle" validate:"max=100"`
	SocialPlatform string `json:"socialPlatform" validate:"omitempty,oneof=twitter facebook linkedin instagram"`
}

func DefaultMeta() MetaConfig {
	return MetaConfig{
		Title:          "My Awesome Website",
		Description:    "A fantastic website that does amazing things for users around the world.",
		Keywords:       "web, development, tools",
		Author:         "Your Name",
		Image:          "https://example.com/og-image.png",
		URL:            "https://example.com",
		SocialHandle:   "@yourhandle",
		SocialPlatform: "twitter",
	}
}

type MetaResult struct {
	HTML              string   `json:"html"`
	Hostname          string   `json:"hostname"`
	TitleLength       int      `json:"titleLength"`
	DescriptionLength int      `json:"descriptionLength"`
	TitleOK           bool     `json:"titleOk"`
	DescriptionOK     bool     `json:"descriptionOk"`
	Warnings          []string `json:"warnings"`
}

func socialTags(platform, handle string) (string, error) {
	if handle == "" {
		return "", nil
	}
	h := html.EscapeString(handle)
	switch platform {
	case "", "twitter":
		return fmt.Sprintf("<meta name=\"twitter:creator\" content=\"%s\">\n<meta name=\"twitter:site\" content=\"%s\">", h, h), nil
	case "facebook":
		return fmt.Sprintf("<meta property=\"article:publisher\" content=\"%s\">", h), nil
	case "linkedin":
		return fmt.Sprintf("<!-- LinkedIn: %s -->", h), nil
	case "instagram":
		return fmt.Sprintf("<!-- Instagram: %s -->", h), nil
	}
	return "", fmt.Errorf("unknown social platform %q", platform)
}

// Hostname is the upper-cased host shown in search result previews
func Hostname(raw string) string {
	if !strings.HasPrefix(raw, "http") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.Hostname() == "" {
		return "EXAMPLE.COM"
	}
	return strings.ToUpper(u.Hostname())
}

// Meta renders SEO, Open Graph and Twitter tags. Values are HTML-escaped.
func Meta(cfg MetaConfig) (MetaResult, error) {
	social, err := socialTags(cfg.SocialPlatform, cfg.SocialHandle)
	if err != nil {
		return MetaResult{}, err
	}

	e := html.EscapeString
	title, desc, pageURL, image := e(cfg.Title), e(cfg.Description), e(cfg.URL), e(cfg.Image)

	var b strings.Builder
	b.WriteString("<!-- SEO -->\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", title)
	fmt.Fprintf(&b, "<meta name=\"title\" content=\"%s\">\n", title)
	fmt.Fprintf(&b, "<meta name=\"description\" content=\"%s\">\n", desc)
	fmt.Fprintf(&b, "<meta name=\"keywords\" content=\"%s\">\n", e(cfg.Keywords))
	fmt.Fprintf(&b, "<meta name=\"author\" content=\"%s\">\n", e(cfg.Author))
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n\n")

	b.WriteString("<!-- Open Graph / Facebook -->\n")
	b.WriteString("<meta property=\"og:type\" content=\"website\">\n")
	fmt.Fprintf(&b, "<meta property=\"og:url\" content=\"%s\">\n", pageURL)
	fmt.Fprintf(&b, "<meta property=\"og:title\" content=\"%s\">\n", title)
	fmt.Fprintf(&b, "<meta property=\"og:description\" content=\"%s\">\n", desc)
	fmt.Fprintf(&b, "<meta property=\"og:image\" content=\"%s\">\n\n", image)

	b.WriteString("<!-- Twitter -->\n")
	b.WriteString("<meta property=\"twitter:card\" content=\"summary_large_image\">\n")
	fmt.Fprintf(&b, "<meta property=\"twitter:url\" content=\"%s\">\n", pageURL)
	fmt.Fprintf(&b, "<meta property=\"twitter:title\" content=\"%s\">\n", title)
	fmt.Fprintf(&b, "<meta property=\"twitter:description\" content=\"%s\">\n", desc)
	fmt.Fprintf(&b, "<meta property=\"twitter:image\" content=\"%s\">\n", image)
	if social != "" {
		b.WriteString(social + "\n")
	}

	b.WriteString("\n<!-- Canonical -->\n")
	fmt.Fprintf(&b, "<link rel=\"canonical\" href=\"%s\">", pageURL)

	res := MetaResult{
		HTML:              b.String(),
		Hostname:          Hostname(cfg.URL),
		TitleLength:       utf8.RuneCountInString(cfg.Title),
		DescriptionLength: utf8.RuneCountInString(cfg.Description),
		Warnings:          []string{},
	}
	res.TitleOK = res.TitleLength > 0 && res.TitleLength <= MaxTitleLength
	res.DescriptionOK = res.DescriptionLength > 0 && res.DescriptionLength <= MaxDescriptionLength

	switch {
	case res.TitleLength == 0:
		res.Warnings = append(res.Warnings, "title is empty")
	case !res.TitleOK:
		res.Warnings = append(res.Warnings, fmt.Sprintf("title is %d characters, search results show %d", res.TitleLength, MaxTitleLength))
	}
	switch {
	case res.DescriptionLength == 0:
		res.Warnings = append(res.Warnings, "description is empty")
	case !res.DescriptionOK:
		res.Warnings = append(res.Warnings, fmt.Sprintf("description is %d characters, search results show %d", res.DescriptionLength, MaxDescriptionLength))
	}
	return res, nil
}
