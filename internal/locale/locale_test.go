package locale

import (
	"testing"

	"golang.org/x/text/language"
)

func TestNew_Resolution(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want language.Tag
	}{
		{name: "english", in: "en", want: language.English},
		{name: "chinese", in: "zh", want: language.Chinese},
		{name: "regional chinese", in: "zh-CN", want: language.Chinese},
		{name: "empty", in: "", want: language.English},
		{name: "unsupported", in: "fr", want: language.English},
		{name: "garbage", in: "not a locale!", want: language.English},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := New(tt.in).Tag(); got != tt.want {
				t.Errorf("New(%q).Tag() = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestCatalog_T(t *testing.T) {
	en := New("en")
	zh := New("zh")

	if got := en.T(NetworkError); got != "Network error, please check that the server is running" {
		t.Errorf("unexpected english network error %q", got)
	}
	if got := zh.T(NetworkError); got != "网络连接错误，请检查服务器是否运行" {
		t.Errorf("unexpected chinese network error %q", got)
	}
	if got := en.T("NoSuchMessage"); got != "NoSuchMessage" {
		t.Errorf("unknown IDs should echo back, got %q", got)
	}
}

func TestCatalogs_Complete(t *testing.T) {
	ids := map[string]bool{}
	for _, m := range english {
		ids[m.ID] = true
	}
	for _, m := range chinese {
		if !ids[m.ID] {
			t.Errorf("chinese message %q has no english original", m.ID)
		}
		delete(ids, m.ID)
	}
	for id := range ids {
		t.Errorf("message %q is missing a chinese translation", id)
	}
}

func TestNewBundle_LoadsBuiltinTables(t *testing.T) {
	bundle := newBundle()

	tags := bundle.LanguageTags()
	if len(tags) != 2 {
		t.Fatalf("expected english and chinese, got %v", tags)
	}
}

func TestCatalog_Count(t *testing.T) {
	tests := []struct {
		locale string
		n      int
		want   string
	}{
		{locale: "en", n: 1, want: "1 poem on the way"},
		{locale: "en", n: 3, want: "3 poems on the way"},
		{locale: "zh", n: 2, want: "2 首诗翻译中"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := New(tt.locale).Count(InFlight, tt.n); got != tt.want {
				t.Errorf("Count(%d) = %q, want %q", tt.n, got, tt.want)
			}
		})
	}
	if got := New("en").Count("NoSuchMessage", 2); got != "NoSuchMessage" {
		t.Errorf("unknown IDs should echo back, got %q", got)
	}
}
