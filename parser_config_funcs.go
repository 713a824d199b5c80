package argmatch

import (
	"github.com/napalu/argmatch/errs"
	"github.com/napalu/argmatch/i18n"
	"golang.org/x/text/language"
)

// WithLogger traces matching decisions at debug level. A nil logger silences the trace.
func WithLogger(logger Logger) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		if logger == nil {
			p.logger = nopLogger{}
			return
		}
		p.logger = logger
	}
}

// WithLanguage selects the language of messages, usage and help output. Keys missing in
// lang fall back to the bundle's default language, then English.
func WithLanguage(lang language.Tag) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.lang = lang
	}
}

// WithBundle replaces the default message bundle
func WithBundle(bundle *i18n.Bundle) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		if bundle == nil {
			*err = errs.ErrNilBundle
			return
		}
		p.bundle = bundle
	}
}
