// Package guild содержит реализации контекста разрешения упоминаний поверх
// моделей discordgo: живое состояние сессии бота и статический снимок сервера.
package guild

import "github.com/bwmarrin/discordgo"

// DisplayName выбирает отображаемое имя участника: ник на сервере,
// затем глобальное имя, затем имя пользователя.
func DisplayName(m *discordgo.Member) (string, bool) {
	if m == nil {
		return "", false
	}
	if m.Nick != "" {
		return m.Nick, true
	}
	if m.User == nil {
		return "", false
	}
	if m.User.GlobalName != "" {
		return m.User.GlobalName, true
	}
	return m.User.Username, true
}

// UserDisplayName выбирает отображаемое имя пользователя вне сервера.
func UserDisplayName(u *discordgo.User) (string, bool) {
	if u == nil {
		return "", false
	}
	if u.GlobalName != "" {
		return u.GlobalName, true
	}
	return u.Username, u.Username != ""
}
