package catalog

var defaultCities = []City{
	{Name: "Тула", Description: "Кремль, пряники и оружейное дело", Image: "/images/cities/tula.jpg", Price: "от 6 500 ₽", Rating: 4.8, Duration: "2-3 дня"},
	{Name: "Суздаль", Description: "Музей под открытым небом в Золотом кольце", Image: "/images/cities/suzdal.jpg", Price: "от 8 000 ₽", Rating: 4.9, Duration: "2 дня"},
	{Name: "Казань", Description: "Встреча Востока и Запада на Волге", Image: "/images/cities/kazan.jpg", Price: "от 12 000 ₽", Rating: 4.8, Duration: "3-4 дня"},
	{Name: "Выборг", Description: "Средневековый замок и карельская природа", Image: "/images/cities/vyborg.jpg", Price: "от 7 500 ₽", Rating: 4.6, Duration: "2 дня"},
	{Name: "Нижний Новгород", Description: "Стрелка, кремль и закаты над Волгой", Image: "/images/cities/nn.jpg", Price: "от 9 000 ₽", Rating: 4.7, Duration: "2-3 дня"},
	{Name: "Калининград", Description: "Янтарь, форты и Балтийское море", Image: "/images/cities/kaliningrad.jpg", Price: "от 15 000 ₽", Rating: 4.7, Duration: "3-5 дней"},
}

var defaultRouteCards = []RouteCard{
	{ID: "moscow-tula", From: "Москва", To: "Тула", Description: "Классика выходного дня: кремль, Ясная Поляна и пряничная дегустация", Image: "/images/routes/moscow-tula.jpg", Duration: "2-3 дня"},
	{ID: "moscow-suzdal", From: "Москва", To: "Суздаль", Description: "Белокаменные монастыри и медовуха без спешки", Image: "/images/routes/moscow-suzdal.jpg", Duration: "2 дня"},
	{ID: "spb-vyborg", From: "Санкт-Петербург", To: "Выборг", Description: "Один час на «Ласточке» — и вы в средневековой Скандинавии", Image: "/images/routes/spb-vyborg.jpg", Duration: "2 дня"},
}

var defaultTours = []PreGeneratedTour{
	{
		ID:   "moscow-tula",
		From: "Москва",
		To:   "Тула",
		Content: `## Персональный тур Москва — Тула

### Проживание в Туле

**Экономно:**
✨ **[Гостиница «Тула»](https://hotel-tula.ru)**
*Адрес:* пр-т Ленина, 96
*Цена от:* 2800 руб./сутки
*Описание:* проверенная временем гостиница рядом с центральным парком

---

### Маршрут тура по дням

#### День 1 — Кремль и набережная

🌞 **Заголовок дня:** знакомство с городом
📍 **Активности:**
1. Тульский кремль и [музей оружия](https://www.museum-arms.ru)
2. Казанская набережная
3. Ужин на улице Металлистов

#### День 2 — Ясная Поляна

🌿 **Заголовок дня:** день усадеб
📍 **Активности:**
1. [Музей-усадьба «Ясная Поляна»](https://ypmuseum.ru)
2. Дегустация пряников
3. Возвращение в Москву

---

### Общие рекомендации

- летом берите головной убор: набережная почти без тени
- билеты в Ясную Поляну бронируйте заранее
- до Тулы удобнее всего добираться «Ласточкой» с Курского вокзала`,
	},
	{
		ID:   "spb-vyborg",
		From: "Санкт-Петербург",
		To:   "Выборг",
		Content: `## Персональный тур Санкт-Петербург — Выборг

### Маршрут тура по дням

#### День 1 — Замок и старый город

🏔️ **Заголовок дня:** средневековый Выборг
📍 **Активности:**
1. [Выборгский замок](https://vyborgmuseum.org) и башня Святого Олафа
2. Прогулка по Крепостной улице
3. Крендель в кафе старого города

#### День 2 — Парк Монрепо

🌿 **Заголовок дня:** скалы и залив
📍 **Активности:**
1. [Парк Монрепо](https://parkmonrepos.org)
2. Смотровая площадка на скалах
3. Возвращение в Петербург

---

### Общие рекомендации

- у залива ветрено даже летом, возьмите ветровку
- «Ласточки» уходят с Финляндского вокзала каждые два часа`,
	},
}
