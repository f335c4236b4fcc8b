package calendar

import (
	"github.com/goodsign/monday"
	"golang.org/x/text/language"
)

// localeEntry pairs a BCP 47 tag with the monday locale used to render it.
// The matcher below picks the closest entry for whatever the caller sends.
var localeEntries = []struct {
	tag    language.Tag
	locale monday.Locale
}{
	{language.AmericanEnglish, monday.LocaleEnUS},
	{language.BritishEnglish, monday.LocaleEnGB},
	{language.French, monday.LocaleFrFR},
	{language.German, monday.LocaleDeDE},
	{language.Spanish, monday.LocaleEsES},
	{language.Italian, monday.LocaleItIT},
	{language.Dutch, monday.LocaleNlNL},
	{language.EuropeanPortuguese, monday.LocalePtPT},
	{language.BrazilianPortuguese, monday.LocalePtBR},
	{language.Russian, monday.LocaleRuRU},
	{language.Polish, monday.LocalePlPL},
	{language.Turkish, monday.LocaleTrTR},
	{language.Swedish, monday.LocaleSvSE},
	{language.Finnish, monday.LocaleFiFI},
	{language.Danish, monday.LocaleDaDK},
	{language.Czech, monday.LocaleCsCZ},
	{language.Greek, monday.LocaleElGR},
	{language.Hungarian, monday.LocaleHuHU},
	{language.Romanian, monday.LocaleRoRO},
	{language.Ukrainian, monday.LocaleUkUA},
	{language.Bulgarian, monday.LocaleBgBG},
	{language.Indonesian, monday.LocaleIdID},
	{language.SimplifiedChinese, monday.LocaleZhCN},
	{language.TraditionalChinese, monday.LocaleZhTW},
	{language.Korean, monday.LocaleKoKR},
	{language.Japanese, monday.LocaleJaJP},
}

var localeMatcher = newLocaleMatcher()

func newLocaleMatcher() language.Matcher {
	tags := make([]language.Tag, 0, len(localeEntries))
	for _, e := range localeEntries {
		tags = append(tags, e.tag)
	}

	return language.NewMatcher(tags)
}

// ResolveLocale maps a BCP 47 locale string ("fr", "pt-BR", "de-AT") to the
// closest supported monday locale. Empty or unrecognized input falls back
// to en_US.
func ResolveLocale(locale string) monday.Locale {
	if locale == "" {
		return monday.LocaleEnUS
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return monday.LocaleEnUS
	}

	_, index, confidence := localeMatcher.Match(tag)
	if confidence == language.No {
		return monday.LocaleEnUS
	}

	return localeEntries[index].locale
}
