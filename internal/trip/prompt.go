package trip

import (
	"fmt"
	"strings"
	"time"
)

// Genitive month names as used after a day number ("1 июня").
var ruMonthsGenitive = [...]string{
	time.January:   "января",
	time.February:  "февраля",
	time.March:     "марта",
	time.April:     "апреля",
	time.May:       "мая",
	time.June:      "июня",
	time.July:      "июля",
	time.August:    "августа",
	time.September: "сентября",
	time.October:   "октября",
	time.November:  "ноября",
	time.December:  "декабря",
}

var ruWeekdays = [...]string{
	time.Sunday:    "воскресенье",
	time.Monday:    "понедельник",
	time.Tuesday:   "вторник",
	time.Wednesday: "среда",
	time.Thursday:  "четверг",
	time.Friday:    "пятница",
	time.Saturday:  "суббота",
}

// FormatDateRu renders a date in Russian day-month form, e.g. "1 июня".
func FormatDateRu(t time.Time) string {
	return fmt.Sprintf("%d %s", t.Day(), ruMonthsGenitive[t.Month()])
}

// WeekdayRu returns the lowercase Russian weekday name.
func WeekdayRu(t time.Time) string {
	return ruWeekdays[t.Weekday()]
}

// ChildrenSummary renders the children list for the prompt: "без детей" when
// empty, otherwise a count with an age list where age 0 reads "до 1 года".
func ChildrenSummary(ages []int) string {
	if len(ages) == 0 {
		return "без детей"
	}
	parts := make([]string, len(ages))
	for i, age := range ages {
		if age == 0 {
			parts[i] = "до 1 года"
		} else {
			parts[i] = fmt.Sprintf("%d лет", age)
		}
	}
	return fmt.Sprintf("%d детей (возраст: %s)", len(ages), strings.Join(parts, ", "))
}

// BuildPrompt renders a validated Request into the GigaChat instruction text.
// The function is pure: identical requests yield byte-identical prompts.
//
// The itinerary section enumerates one subsection per calendar day spanned by
// the trip, each labeled with its date and weekday, so the model cannot drift
// on trip length and the rendered Markdown keeps predictable section markers.
func BuildPrompt(r Request) string {
	var b strings.Builder

	fmt.Fprintf(&b, `Ты эксперт по персонализированным путешествиям по России. Создай подробный маршрут тура на основе пользовательских данных:

Исходные данные:
- Откуда: %s (город выезда)
- Куда: %s (основной пункт назначения)
- Даты: с %s по %s (%d дн.)
- Состав группы: %d взрослых, %s

Формат вывода — СТРОГО Markdown. Соблюдай структуру и форматирование ТОЧНО как в примере ниже:

`,
		r.From, r.To,
		FormatDateRu(r.DateFrom), FormatDateRu(r.DateTo), r.Days(),
		r.Guests, ChildrenSummary(r.ChildrenAges))

	fmt.Fprintf(&b, "## Персональный тур %s — %s\n\n", r.From, r.To)

	fmt.Fprintf(&b, "### Проживание в %s\n\n", r.To)
	for _, tier := range []string{"Экономно", "Комфортно", "Роскошно"} {
		fmt.Fprintf(&b, `**%s:**
✨ **[Название отеля](ссылка_на_сайт_отеля)**
*Адрес:* полный адрес
*Цена от:* XXXX руб./сутки
*Описание:* краткое описание отеля

`, tier)
	}

	b.WriteString("---\n\n")

	fmt.Fprintf(&b, `### Где поесть в %s

1. **«Название заведения»**
   *Адрес:* полный адрес
   *Средний чек:* XXX–XXXX руб.
   *Рейтинг:* X.X (Яндекс.Карты)

2. **«Название заведения»**
   *Адрес:* полный адрес
   *Средний чек:* XXX–XXXX руб.
   *Рейтинг:* X.X (Яндекс.Карты)

(3-5 заведений, разнообразная кухня, рейтинг 4.5+)

---

### Маршрут тура по дням

`, r.To)

	for day, date := 1, r.DateFrom; !date.After(r.DateTo); day, date = day+1, date.AddDate(0, 0, 1) {
		fmt.Fprintf(&b, `#### День %d (%s, %s) — Заголовок дня (3-5 слов)

🌞 **Заголовок дня:** краткое описание
📍 **Активности:**
1. Описание активности, ссылка на [название объекта](официальный_сайт)
2. Описание активности
3. Описание активности

`, day, FormatDateRu(date), WeekdayRu(date))
	}

	b.WriteString(`---

### Общие рекомендации

- совет по погоде и одежде
- совет по бронированию
- совет по логистике

`)

	fmt.Fprintf(&b, `ПРАВИЛА генерации:
1. Разбей тур равномерно по дням (3-5 активностей/день, утром/днём/вечером).
2. Первый день = прибытие, последний день = отъезд (если не overnight).
3. Гостиницы: 3 варианта по ценовым сегментам. ПРОВЕРЬ возможность проживания с детьми (если есть дети в группе). Названия отелей — кликабельные ссылки на их сайты.
4. Рестораны/кафе: 3-5 шт., разнообразие (русская, европейская, азиатская, кафе), рейтинг 4.5+ с Яндекс.Карт. Средний чек реалистичный.
5. Ссылки: для музеев/достопримечательностей — официальные сайты, для отелей — их сайты.
6. Стиль: дружеский, уважительный, живой. Как опытный гид рассказывает друзьям. Без сленга.
7. Сохрани заголовки дней в точности: дата и день недели каждого дня уже указаны в шаблоне.
8. Логистика: укажи как добраться из %s в %s (поезд, автобус, авто).
9. Активности: миксуй историю, природу, гастрономию, шопинг. Учитывай сезон.
10. Используй Markdown: ## для главного заголовка, ### для разделов, #### для дней, **жирный** для названий, *курсив* для подписей (Адрес, Цена, Описание), --- для разделителей между блоками.
11. Используй эмодзи-маркеры для дней: 🌞 🌿 🚗 🍽️ 🏔️ 🎭 🚂 и подобные — по тематике дня.

Сгенерируй ТОЧНО в указанном Markdown-формате.`, r.From, r.To)

	return b.String()
}
