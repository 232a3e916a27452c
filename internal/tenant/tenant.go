// tenant — вывод идентификатора школы-арендатора из имени хоста.
//
// Платформа раздаёт каждой школе поддомен третьего уровня
// (acme.kursi.uz -> арендатор "acme"). Идентификатор не персистится:
// он заново вычисляется для каждого запроса из текущего хоста.
// Отсутствие арендатора означает платформенный (не скоупленный) запрос.
package tenant

import (
	"net"
	"strings"
)

// DevTenant — фиксированный арендатор для локальной разработки:
// localhost не несёт поддомена, но мультиарендные сценарии должны
// работать и локально.
const DevTenant = "dev-school"

// nonTenantHosts — известные хосты платформы, первый лейбл которых
// не является арендатором.
var nonTenantHosts = map[string]struct{}{
	"staging.kursi.uz": {},
	"test.kursi.uz":    {},
	"api.kursi.uz":     {},
}

// FromHost возвращает идентификатор арендатора для хоста.
//
// Правила:
//   - localhost и 127.0.0.1 (с портом и без) -> DevTenant;
//   - хост из трёх и более лейблов, первый из которых не "www" и хост
//     не входит в список служебных, -> первый лейбл;
//   - иначе арендатора нет (второе значение false).
func FromHost(host string) (string, bool) {
	h := strings.ToLower(strings.TrimSpace(host))
	if h == "" {
		return "", false
	}

	// Срезаем порт, если он есть.
	if stripped, _, err := net.SplitHostPort(h); err == nil {
		h = stripped
	}

	if h == "localhost" || h == "127.0.0.1" {
		return DevTenant, true
	}

	if _, ok := nonTenantHosts[h]; ok {
		return "", false
	}

	labels := strings.Split(h, ".")
	if len(labels) < 3 {
		return "", false
	}

	if labels[0] == "www" || labels[0] == "" {
		return "", false
	}

	return labels[0], true
}
