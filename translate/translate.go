// Package translate formats user facing text for the MARIE tools through a
// locale matched message printer.
package translate

import (
	"log"
	"sync"

	"github.com/jeandeaual/go-locale"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DEFAULT_LANGUAGE is used when the host reports no locale.
const DEFAULT_LANGUAGE = "en-US"

var (
	mutex   sync.Mutex
	printer *message.Printer
)

func hostLocales() (locales []string) {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("marie: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{DEFAULT_LANGUAGE}
	}

	return
}

// current returns the active printer, matching the host locales on first use.
func current() *message.Printer {
	mutex.Lock()
	defer mutex.Unlock()

	if printer == nil {
		printer = message.NewPrinter(message.MatchLanguage(hostLocales()...))
	}

	return printer
}

// SetLanguage pins the printer to a BCP 47 language tag.
func SetLanguage(tag string) (err error) {
	lang, err := language.Parse(tag)
	if err != nil {
		return
	}

	mutex.Lock()
	printer = message.NewPrinter(lang)
	mutex.Unlock()

	return
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return current().Sprintf(key, args...)
}
