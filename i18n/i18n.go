// Package i18n holds the it/en strings of the activation screens.
package i18n

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type Key string

const (
	LoadingTitle   Key = "activation.loading.title"
	LoadingBody    Key = "activation.loading.body"
	CompletedTitle Key = "activation.completed.title"
	CompletedBody  Key = "activation.completed.body"
	TimeoutTitle   Key = "activation.timeout.title"
	TimeoutBody    Key = "activation.timeout.body"
	ExpiredTitle   Key = "activation.expired.title"
	ExpiredBody    Key = "activation.expired.body"
	ExistsTitle    Key = "activation.exists.title"
	ExistsBody     Key = "activation.exists.body"
	ErrorBody      Key = "activation.error.body"
	ContinueHint   Key = "activation.continue"
	HomeTitle      Key = "home.title"
	HomeBody       Key = "home.body"
)

var catalog = map[language.Tag]map[Key]string{
	language.English: {
		LoadingTitle:   "Bonus activation",
		LoadingBody:    "Activating your bonus, please wait...",
		CompletedTitle: "Bonus activated",
		CompletedBody:  "Code %s, worth up to %s",
		TimeoutTitle:   "Still working on it",
		TimeoutBody:    "The activation is taking longer than expected. Check again later.",
		ExpiredTitle:   "Eligibility expired",
		ExpiredBody:    "Your eligibility check has expired. Run it again before activating.",
		ExistsTitle:    "Bonus already active",
		ExistsBody:     "A bonus has already been activated for your household.",
		ErrorBody:      "Error: %s",
		ContinueHint:   "press enter to continue",
		HomeTitle:      "Holiday bonus",
		HomeBody:       "Type :activate to request your bonus.",
	},
	language.Italian: {
		LoadingTitle:   "Attivazione bonus",
		LoadingBody:    "Attivazione del bonus in corso, attendi...",
		CompletedTitle: "Bonus attivato",
		CompletedBody:  "Codice %s, valore massimo %s",
		TimeoutTitle:   "Ci stiamo ancora lavorando",
		TimeoutBody:    "L'attivazione richiede più tempo del previsto. Riprova più tardi.",
		ExpiredTitle:   "Requisiti scaduti",
		ExpiredBody:    "La verifica dei requisiti è scaduta. Ripetila prima di attivare il bonus.",
		ExistsTitle:    "Bonus già attivo",
		ExistsBody:     "Per il tuo nucleo familiare è già stato attivato un bonus.",
		ErrorBody:      "Errore: %s",
		ContinueHint:   "premi invio per continuare",
		HomeTitle:      "Bonus vacanze",
		HomeBody:       "Digita :activate per richiedere il bonus.",
	},
}

func init() {
	if err := register(message.SetString, catalog); err != nil {
		panic(err)
	}
}

// register hands every entry of cat to set and joins the failures.
func register(set func(language.Tag, string, string) error, cat map[language.Tag]map[Key]string) error {
	var errs []error
	for tag, entries := range cat {
		for key, msg := range entries {
			if err := set(tag, string(key), msg); err != nil {
				errs = append(errs, fmt.Errorf("i18n: register %s/%s: %w", tag, key, err))
			}
		}
	}
	return errors.Join(errs...)
}

// Resolve picks Italian for any "it" locale and English otherwise.
func Resolve(locale string) language.Tag {
	if strings.HasPrefix(strings.ToLower(locale), "it") {
		return language.Italian
	}
	return language.English
}

type Translator struct {
	tag     language.Tag
	printer *message.Printer
}

func New(locale string) *Translator {
	tag := Resolve(locale)
	return &Translator{tag: tag, printer: message.NewPrinter(tag)}
}

func (t *Translator) Tag() language.Tag { return t.tag }

func (t *Translator) T(key Key, args ...any) string {
	return t.printer.Sprintf(string(key), args...)
}

// Amount formats euro cents with the locale's separators.
func (t *Translator) Amount(cents int64) string {
	return t.printer.Sprintf("€ %.2f", float64(cents)/100)
}
