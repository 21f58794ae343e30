package services

// MockGuild — мок-реализация ports.Guild для тестирования
type MockGuild struct {
	GuildID  string
	Members  map[string]string
	Channels map[string]string
	Roles    map[string]string
}

func (m *MockGuild) ID() string {
	return m.GuildID
}

func (m *MockGuild) MemberDisplayName(userID string) (string, bool) {
	name, ok := m.Members[userID]
	return name, ok
}

func (m *MockGuild) ChannelName(channelID string) (string, bool) {
	name, ok := m.Channels[channelID]
	return name, ok
}

func (m *MockGuild) RoleName(roleID string) (string, bool) {
	name, ok := m.Roles[roleID]
	return name, ok
}
