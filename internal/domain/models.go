package domain

import "fmt"

// Phrases содержит все фиксированные фрагменты речи, которыми заменяется разметка.
// Поля с %s — шаблоны, в которые подставляется имя, язык или название команды.
type Phrases struct {
	URLOmitted      string `json:"url_omitted" yaml:"url_omitted"`
	Spoiler         string `json:"spoiler" yaml:"spoiler"`
	Code            string `json:"code" yaml:"code"`
	LangCode        string `json:"lang_code" yaml:"lang_code"`
	UnknownUser     string `json:"unknown_user" yaml:"unknown_user"`
	UnknownChannel  string `json:"unknown_channel" yaml:"unknown_channel"`
	UnknownRole     string `json:"unknown_role" yaml:"unknown_role"`
	Command         string `json:"command" yaml:"command"`
	Everyone        string `json:"everyone" yaml:"everyone"`
	Here            string `json:"here" yaml:"here"`
	UnknownDate     string `json:"unknown_date" yaml:"unknown_date"`
	Now             string `json:"now" yaml:"now"`
	MediaPost       string `json:"media_post" yaml:"media_post"`
	ExternalMessage string `json:"external_message" yaml:"external_message"`
	ExternalChannel string `json:"external_channel" yaml:"external_channel"`
	UnknownMessage  string `json:"unknown_message" yaml:"unknown_message"`
	UnknownLink     string `json:"unknown_link" yaml:"unknown_link"`
	MessageOf       string `json:"message_of" yaml:"message_of"`
}

// DefaultPhrases возвращает японские фразы для озвучивания.
func DefaultPhrases() Phrases {
	return Phrases{
		URLOmitted:      " URL省略 ",
		Spoiler:         " 伏字 ",
		Code:            " コード ",
		LangCode:        " %sのコード ",
		UnknownUser:     " 不明なユーザー ",
		UnknownChannel:  " 不明なチャンネル ",
		UnknownRole:     " 不明なロール ",
		Command:         " %sコマンド ",
		Everyone:        " @エブリワン ",
		Here:            " @ヒア ",
		UnknownDate:     " 不明な日付 ",
		Now:             "今",
		MediaPost:       " メディアポスト ",
		ExternalMessage: " 外部サーバーのメッセージ ",
		ExternalChannel: " 外部サーバーのチャンネル ",
		UnknownMessage:  " 不明なメッセージ ",
		UnknownLink:     " 不明なチャンネル ",
		MessageOf:       "%sのメッセージ",
	}
}

// Merge возвращает копию p, в которой непустые поля override заменяют исходные.
func (p Phrases) Merge(override Phrases) Phrases {
	pick := func(base, o string) string {
		if o != "" {
			return o
		}
		return base
	}
	return Phrases{
		URLOmitted:      pick(p.URLOmitted, override.URLOmitted),
		Spoiler:         pick(p.Spoiler, override.Spoiler),
		Code:            pick(p.Code, override.Code),
		LangCode:        pick(p.LangCode, override.LangCode),
		UnknownUser:     pick(p.UnknownUser, override.UnknownUser),
		UnknownChannel:  pick(p.UnknownChannel, override.UnknownChannel),
		UnknownRole:     pick(p.UnknownRole, override.UnknownRole),
		Command:         pick(p.Command, override.Command),
		Everyone:        pick(p.Everyone, override.Everyone),
		Here:            pick(p.Here, override.Here),
		UnknownDate:     pick(p.UnknownDate, override.UnknownDate),
		Now:             pick(p.Now, override.Now),
		MediaPost:       pick(p.MediaPost, override.MediaPost),
		ExternalMessage: pick(p.ExternalMessage, override.ExternalMessage),
		ExternalChannel: pick(p.ExternalChannel, override.ExternalChannel),
		UnknownMessage:  pick(p.UnknownMessage, override.UnknownMessage),
		UnknownLink:     pick(p.UnknownLink, override.UnknownLink),
		MessageOf:       pick(p.MessageOf, override.MessageOf),
	}
}

// Templates возвращает шаблонные фразы по имени поля YAML.
func (p Phrases) Templates() map[string]string {
	return map[string]string{
		"lang_code":  p.LangCode,
		"command":    p.Command,
		"message_of": p.MessageOf,
	}
}

// Fill подставляет значение в шаблонную фразу.
func Fill(template, value string) string {
	return fmt.Sprintf(template, value)
}

// Utterance — одно отрендеренное сообщение, готовое к озвучиванию.
type Utterance struct {
	GuildID   string `json:"guild_id"`
	ChannelID string `json:"channel_id"`
	MessageID string `json:"message_id"`
	Author    string `json:"author"`
	Text      string `json:"text"`
}
