package i18n

import (
	"fmt"
	"strings"

	"github.com/sneaker-store/internal/constants"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

// 支持的语言
const (
	LocaleEN = "en-US"
	LocaleRU = "ru-RU"
)

var supportedTags = []language.Tag{
	language.AmericanEnglish, // 第一个为默认语言
	language.Russian,
}

var tagLocales = []string{LocaleEN, LocaleRU}

var matcher = language.NewMatcher(supportedTags)

// ResolveLocale 解析请求语言：?lang= 优先，其次 Accept-Language，默认 en-US
func ResolveLocale(c *gin.Context) string {
	if c == nil {
		return LocaleEN
	}
	if cached, ok := c.Get(constants.ContextKeyLocale); ok {
		if locale, ok := cached.(string); ok && locale != "" {
			return locale
		}
	}
	locale := MatchLocale(c.Query("lang"), c.GetHeader("Accept-Language"))
	c.Set(constants.ContextKeyLocale, locale)
	return locale
}

// MatchLocale 按优先级匹配候选语言串
func MatchLocale(candidates ...string) string {
	for _, raw := range candidates {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		tags, _, err := language.ParseAcceptLanguage(raw)
		if err != nil || len(tags) == 0 {
			continue
		}
		_, index, confidence := matcher.Match(tags...)
		if confidence == language.No {
			continue
		}
		return tagLocales[index]
	}
	return LocaleEN
}

// T 翻译 key，缺失时回退到默认语言，再回退到 key 本身
func T(locale, key string) string {
	if table, ok := messages[locale]; ok {
		if msg, ok := table[key]; ok {
			return msg
		}
	}
	if msg, ok := messages[LocaleEN][key]; ok {
		return msg
	}
	return key
}

// Sprintf 翻译并格式化
func Sprintf(locale, key string, args ...interface{}) string {
	return fmt.Sprintf(T(locale, key), args...)
}
