// Package labels renders route keys and paths as display titles.
//
// Titles come from go-i18n message files. A key's message ID is the key
// itself, so a TOML message file reads naturally:
//
//	devices = "Devices"
//	codePage = "Code page"
//
// Keys without a message are shown as they are.
package labels

import (
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pkg/errors"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/BrandonKowalski/routetree/pkg/routetree/constants"
	"github.com/BrandonKowalski/routetree/pkg/routetree/route"
)

// Labeler looks up titles in one language, falling back to the bundle's
// default language.
type Labeler struct {
	mu        sync.RWMutex
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	lang      language.Tag
}

// New creates a Labeler with def as the bundle's default language.
func New(def language.Tag) *Labeler {
	bundle := i18n.NewBundle(def)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
	bundle.RegisterUnmarshalFunc("yml", yaml.Unmarshal)

	return &Labeler{
		bundle:    bundle,
		localizer: i18n.NewLocalizer(bundle, def.String()),
		lang:      def,
	}
}

// NewDefault creates a Labeler for constants.DefaultLanguage.
func NewDefault() *Labeler {
	return New(language.Make(constants.DefaultLanguage))
}

// Add registers titles for lang.
func (l *Labeler) Add(lang language.Tag, titles map[string]string) error {
	msgs := make([]*i18n.Message, 0, len(titles))
	for id, other := range titles {
		msgs = append(msgs, &i18n.Message{ID: id, Other: other})
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.bundle.AddMessages(lang, msgs...)
}

// LoadFile loads a message file. The language comes from the file name,
// e.g. titles.de.toml.
func (l *Labeler) LoadFile(path string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, err := l.bundle.LoadMessageFile(path); err != nil {
		return errors.Wrapf(err, "load labels %s", path)
	}
	return nil
}

// Parse loads message file contents; name supplies language and format
// the same way a file path does.
func (l *Labeler) Parse(data []byte, name string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, err := l.bundle.ParseMessageFileBytes(data, name); err != nil {
		return errors.Wrapf(err, "parse labels %s", name)
	}
	return nil
}

// SetLanguage switches the language used for titles. Accepts BCP 47
// strings or Accept-Language values.
func (l *Labeler) SetLanguage(langs ...string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.localizer = i18n.NewLocalizer(l.bundle, langs...)
	if len(langs) > 0 {
		if tags, _, err := language.ParseAcceptLanguage(strings.Join(langs, ",")); err == nil && len(tags) > 0 {
			l.lang = tags[0]
		}
	}
}

// Language returns the preferred language.
func (l *Labeler) Language() language.Tag {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.lang
}

// Title returns the display title for key.
func (l *Labeler) Title(key route.Key) string {
	if key == route.None {
		return ""
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	s, err := l.localizer.Localize(&i18n.LocalizeConfig{MessageID: string(key)})
	if err != nil || s == "" {
		return string(key)
	}
	return s
}

// FormatPath renders a path of titles, e.g. /Devices/Code page.
func (l *Labeler) FormatPath(p route.Path) string {
	var b strings.Builder
	for _, key := range p {
		b.WriteByte('/')
		b.WriteString(l.Title(key))
	}
	if b.Len() == 0 {
		return "/"
	}
	return b.String()
}
