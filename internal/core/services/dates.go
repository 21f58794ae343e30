package services

import (
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"
)

// DefaultTimezone — часовой пояс, в котором озвучиваются метки времени.
const DefaultTimezone = "Asia/Tokyo"

// PartType — тип фрагмента отформатированной даты.
type PartType string

const (
	PartEra          PartType = "era"
	PartYear         PartType = "year"
	PartMonth        PartType = "month"
	PartDay          PartType = "day"
	PartWeekday      PartType = "weekday"
	PartHour         PartType = "hour"
	PartMinute       PartType = "minute"
	PartSecond       PartType = "second"
	PartTimeZoneName PartType = "timeZoneName"
	PartLiteral      PartType = "literal"
)

// DatePart — один именованный фрагмент даты.
type DatePart struct {
	Type  PartType
	Value string
}

var weekdaysJa = [...]string{"日曜日", "月曜日", "火曜日", "水曜日", "木曜日", "金曜日", "土曜日"}

// DateFormatter форматирует момент времени в полном японском стиле
// ("2024年1月15日月曜日 9時05分30秒 日本標準時") и делит результат на сегменты.
// Форматтер неизменяем и безопасен для одновременного использования.
type DateFormatter struct {
	loc *time.Location
}

// NewDateFormatter создает форматтер для часового пояса loc; nil означает Asia/Tokyo.
func NewDateFormatter(loc *time.Location) *DateFormatter {
	if loc == nil {
		loc = tokyo()
	}
	return &DateFormatter{loc: loc}
}

func tokyo() *time.Location {
	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.FixedZone("JST", 9*60*60)
	}
	return loc
}

// Location возвращает часовой пояс форматтера.
func (f *DateFormatter) Location() *time.Location {
	return f.loc
}

// Parts возвращает фрагменты полного представления даты и времени.
func (f *DateFormatter) Parts(t time.Time) []DatePart {
	t = t.In(f.loc)
	year := t.Year()

	var parts []DatePart
	if year <= 0 {
		parts = append(parts, DatePart{PartEra, "紀元前"})
		year = 1 - year
	}
	return append(parts,
		DatePart{PartYear, strconv.Itoa(year)},
		DatePart{PartLiteral, "年"},
		DatePart{PartMonth, strconv.Itoa(int(t.Month()))},
		DatePart{PartLiteral, "月"},
		DatePart{PartDay, strconv.Itoa(t.Day())},
		DatePart{PartLiteral, "日"},
		DatePart{PartWeekday, weekdaysJa[t.Weekday()]},
		DatePart{PartLiteral, " "},
		DatePart{PartHour, strconv.Itoa(t.Hour())},
		DatePart{PartLiteral, "時"},
		DatePart{PartMinute, twoDigits(t.Minute())},
		DatePart{PartLiteral, "分"},
		DatePart{PartSecond, twoDigits(t.Second())},
		DatePart{PartLiteral, "秒 "},
		DatePart{PartTimeZoneName, zoneName(t)},
	)
}

// Segments делит дату на сегменты: каждое числовое поле начинает новый сегмент
// (без ведущего нуля), день недели и разделители дописываются к предыдущему.
// Число и порядок сегментов одинаковы для любых двух моментов.
func (f *DateFormatter) Segments(t time.Time) []string {
	var segments []string
	for _, p := range f.Parts(t) {
		switch p.Type {
		case PartYear, PartMonth, PartDay, PartHour, PartMinute, PartSecond:
			segments = append(segments, stripLeadingZero(p.Value))
		case PartWeekday, PartLiteral:
			if len(segments) == 0 {
				segments = append(segments, p.Value)
			} else {
				segments[len(segments)-1] += p.Value
			}
		}
	}
	if n := len(segments); n > 0 {
		segments[n-1] = strings.TrimRight(segments[n-1], " \t\n\r　")
	}
	return segments
}

func stripLeadingZero(v string) string {
	n, err := strconv.Atoi(v)
	if err != nil {
		return v
	}
	return strconv.Itoa(n)
}

func twoDigits(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

func zoneName(t time.Time) string {
	if t.Location().String() == DefaultTimezone {
		return "日本標準時"
	}
	name, _ := t.Zone()
	return name
}
