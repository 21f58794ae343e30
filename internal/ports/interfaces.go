package ports

import (
	"discord-speakable/internal/domain"

	"github.com/bwmarrin/discordgo"
)

// Guild — контекст разрешения упоминаний: сервер, в котором отправлено сообщение.
// Все методы поиска — неблокирующие чтения из памяти.
type Guild interface {
	// ID возвращает идентификатор сервера.
	ID() string
	// MemberDisplayName возвращает отображаемое имя участника.
	MemberDisplayName(userID string) (string, bool)
	// ChannelName возвращает название канала этого сервера.
	ChannelName(channelID string) (string, bool)
	// RoleName возвращает название роли.
	RoleName(roleID string) (string, bool)
}

// GuildProvider находит контекст разрешения по идентификатору сервера.
type GuildProvider interface {
	Guild(guildID string) (Guild, bool)
}

// SpeechRenderer превращает содержимое сообщения в текст для озвучивания.
// guild может быть nil: тогда ни одно упоминание не разрешается.
type SpeechRenderer interface {
	Speak(content string, guild Guild) string
}

// DataSource определяет интерфейс для получения исходных данных.
type DataSource interface {
	// Fetch загружает данные из источника и возвращает их в виде байтового среза.
	Fetch() ([]byte, error)
}

// SnapshotParser разбирает снимок сервера Discord.
type SnapshotParser interface {
	Parse(data []byte) (*discordgo.Guild, error)
}

// Exporter определяет интерфейс для вывода результата.
type Exporter interface {
	// Export принимает отрендеренное сообщение и выводит его.
	Export(u domain.Utterance) error
}
