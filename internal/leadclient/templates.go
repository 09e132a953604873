package leadclient

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"strings"
	"text/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

const (
	notFilled      = "Not provided"
	notFilledShort = "Not specified"
)

var (
	htmlTemplates = htmltemplate.Must(htmltemplate.New("html").Funcs(htmltemplate.FuncMap{
		"provided":  orDefault(notFilled),
		"specified": orDefault(notFilledShort),
		"nl2br":     nl2br,
	}).ParseFS(templateFS, "templates/*.html.tmpl"))

	textTemplates = template.Must(template.New("text").Funcs(template.FuncMap{
		"provided":  orDefault(notFilled),
		"specified": orDefault(notFilledShort),
	}).ParseFS(templateFS, "templates/*.txt.tmpl"))
)

// mailView is what every template sees.
type mailView struct {
	Kind   Kind
	Fields Fields
	Brand  Brand
}

func orDefault(def string) func(string) string {
	return func(s string) string {
		if strings.TrimSpace(s) == "" {
			return def
		}
		return s
	}
}

// nl2br escapes s and turns its newlines into <br>.
func nl2br(s string) htmltemplate.HTML {
	escaped := htmltemplate.HTMLEscapeString(strings.ReplaceAll(s, "\r\n", "\n"))
	return htmltemplate.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
}

// rendered is one mail body pair.
type rendered struct {
	HTML string
	Text string
}

func render(name string, v mailView) (rendered, error) {
	var html, text bytes.Buffer
	if err := htmlTemplates.ExecuteTemplate(&html, name+".html.tmpl", v); err != nil {
		return rendered{}, fmt.Errorf("failed to render %s html: %w", name, err)
	}
	if err := textTemplates.ExecuteTemplate(&text, name+".txt.tmpl", v); err != nil {
		return rendered{}, fmt.Errorf("failed to render %s text: %w", name, err)
	}
	return rendered{
		HTML: strings.TrimSpace(html.String()),
		Text: strings.TrimSpace(text.String()),
	}, nil
}

func notificationSubject(kind Kind, name string) string {
	switch kind {
	case KindExpert:
		return "New DevOps Expert Consultation Request from " + name
	case KindOnboarding:
		return "New Client Onboarding Request from " + name
	default:
		return "New Contact Form Message from " + name
	}
}

func confirmationSubject(kind Kind, b Brand) string {
	if kind == KindOnboarding {
		return fmt.Sprintf("Welcome to %s - Your onboarding request received!", b.Name)
	}
	return fmt.Sprintf("Thank you for contacting %s - We'll be in touch soon!", b.Name)
}
