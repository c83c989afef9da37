package ui

import "github.com/leonelquinteros/gotext"

// textDomain names the gettext catalogue: <dir>/<lang>/LC_MESSAGES/shadowroom.po.
const textDomain = "shadowroom"

// ConfigureLocale loads translations for lang from dir. With either empty the
// built-in English strings are used.
func ConfigureLocale(dir, lang string) {
	if dir == "" || lang == "" {
		return
	}
	gotext.Configure(dir, lang, textDomain)
}

// T returns the translation of msg with vars formatted into it.
// Untranslated strings are returned unchanged.
var T = gotext.Get
