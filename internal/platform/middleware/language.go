// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"net/http"

	"golang.org/x/text/language"

	"github.com/taibuivan/flagdex/internal/platform/constants"
	"github.com/taibuivan/flagdex/internal/platform/ctxutil"
)

// supported lists the display languages, the first being the fallback.
var supported = []language.Tag{language.French, language.English}

var matcher = language.NewMatcher(supported)

// Language negotiates the display language of a request. An explicit "lang" query
// parameter wins over the Accept-Language header. The result is stored as a base
// language code ("fr" or "en") and echoed in Content-Language.
func Language() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			lang := Negotiate(request.URL.Query().Get("lang"), request.Header.Get(constants.HeaderAcceptLanguage))

			writer.Header().Set(constants.HeaderContentLanguage, lang)
			next.ServeHTTP(writer, request.WithContext(ctxutil.WithLanguage(request.Context(), lang)))
		})
	}
}

// Negotiate picks the best supported base language for the given preferences.
func Negotiate(explicit, acceptLanguage string) string {
	var preferred []language.Tag
	if explicit != "" {
		if tag, err := language.Parse(explicit); err == nil {
			preferred = append(preferred, tag)
		}
	}
	if tags, _, err := language.ParseAcceptLanguage(acceptLanguage); err == nil {
		preferred = append(preferred, tags...)
	}

	_, index, _ := matcher.Match(preferred...)
	base, _ := supported[index].Base()
	return base.String()
}
