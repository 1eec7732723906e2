// Package translate renders user facing messages through the host locale.
package translate

import (
	"log"
	"os"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// LANG_ENV overrides the detected locale when set.
const LANG_ENV = "PICOSHELL_LANG"

var printer *message.Printer

func init() {
	printer = message.NewPrinter(Match(detect()...))
}

func detect() (locales []string) {
	if lang := os.Getenv(LANG_ENV); lang != "" {
		return []string{lang}
	}

	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("picoshell: locale: %v", err)
	}

	return
}

// Match picks the best supported language for a list of locales,
// defaulting to en-US.
func Match(locales ...string) language.Tag {
	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	return message.MatchLanguage(locales...)
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
