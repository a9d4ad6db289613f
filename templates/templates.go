// Package templates embeds the HTML views and their helper functions.
package templates

import (
	"crypto/md5"
	"embed"
	"fmt"
	"html/template"
	"strings"
	"time"
)

//go:embed *.html
var files embed.FS

// Parse builds the template set with the view helpers installed.
func Parse() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"gravatar":       Gravatar,
		"datetimeformat": FormatTimestamp,
	}).ParseFS(files, "*.html")
}

// Must is Parse for router setup, panicking on a broken template set.
func Must() *template.Template {
	t, err := Parse()
	if err != nil {
		panic(err)
	}
	return t
}

// Gravatar returns the gravatar image URL for an email address.
func Gravatar(email string, size int) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%x?d=identicon&s=%d", sum, size)
}

// FormatTimestamp renders a message timestamp for display.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02 @ 15:04")
}
