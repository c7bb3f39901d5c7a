// Package locale holds the user-facing strings of the widget in the
// languages it ships with.
package locale

import (
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Message IDs.
const (
	EmptyState   = "EmptyState"
	Hint         = "Hint"
	Translating  = "Translating"
	NetworkError = "NetworkError"
	Placeholder  = "Placeholder"
	InputLabel   = "InputLabel"
	Title        = "Title"
	QuitHelp     = "QuitHelp"
	InFlight     = "InFlight"
)

var english = []*i18n.Message{
	{ID: EmptyState, Other: "Enjoy the rain!"},
	{ID: Hint, Other: "💡 After enter 10 characters, it will automatically convert to a poem, or press Enter to submit."},
	{ID: Translating, Other: "🌧️ Translating..."},
	{ID: NetworkError, Other: "Network error, please check that the server is running"},
	{ID: Placeholder, Other: "Type up to 10 characters..."},
	{ID: InputLabel, Other: "Rain input"},
	{ID: Title, Other: "🌧️ Rain Translator"},
	{ID: QuitHelp, Other: "enter submit • esc quit"},
	{ID: InFlight, One: "{{.Count}} poem on the way", Other: "{{.Count}} poems on the way"},
}

var chinese = []*i18n.Message{
	{ID: EmptyState, Other: "Enjoy the rain!"},
	{ID: Hint, Other: "💡 输入10个字符后会自动转换为诗歌，或按回车提交。"},
	{ID: Translating, Other: "🌧️ 翻译中..."},
	{ID: NetworkError, Other: "网络连接错误，请检查服务器是否运行"},
	{ID: Placeholder, Other: "最多输入10个字符..."},
	{ID: InputLabel, Other: "雨滴输入"},
	{ID: Title, Other: "🌧️ 雨滴翻译器"},
	{ID: QuitHelp, Other: "回车 提交 • esc 退出"},
	{ID: InFlight, Other: "{{.Count}} 首诗翻译中"},
}

// Catalog looks up messages for one locale, falling back to English.
type Catalog struct {
	tag       language.Tag
	localizer *i18n.Localizer
}

// newBundle loads the built-in tables. They are compiled in, so a table
// go-i18n rejects is a programming error.
func newBundle() *i18n.Bundle {
	bundle := i18n.NewBundle(language.English)
	if err := bundle.AddMessages(language.English, english...); err != nil {
		panic(fmt.Sprintf("locale: english messages: %v", err))
	}
	if err := bundle.AddMessages(language.Chinese, chinese...); err != nil {
		panic(fmt.Sprintf("locale: chinese messages: %v", err))
	}
	return bundle
}

// New returns a catalog for the given locale name (e.g. "en", "zh",
// "zh-CN"). Unknown or unparsable names resolve to English.
func New(name string) *Catalog {
	bundle := newBundle()
	tag := language.English
	if parsed, err := language.Parse(name); err == nil {
		matcher := language.NewMatcher(bundle.LanguageTags())
		_, idx, conf := matcher.Match(parsed)
		if conf != language.No {
			tag = bundle.LanguageTags()[idx]
		}
	}
	return &Catalog{
		tag:       tag,
		localizer: i18n.NewLocalizer(bundle, tag.String()),
	}
}

// Tag returns the language the catalog resolved to.
func (c *Catalog) Tag() language.Tag {
	return c.tag
}

// T returns the message for id. Unknown IDs come back as the ID itself.
func (c *Catalog) T(id string) string {
	msg, err := c.localizer.Localize(&i18n.LocalizeConfig{MessageID: id})
	if err != nil {
		return id
	}
	return msg
}

// Count returns the plural-aware message for id with n substituted for
// {{.Count}}.
func (c *Catalog) Count(id string, n int) string {
	msg, err := c.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: map[string]int{"Count": n},
		PluralCount:  n,
	})
	if err != nil {
		return id
	}
	return msg
}
