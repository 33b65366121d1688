package data

func ptr[T any](v T) *T {
	return &v
}

// SampleMovies returns the built-in catalog used when no database is
// configured.
func SampleMovies() []Movie {
	return []Movie{
		{
			ID:          1,
			Title:       "Космическая одиссея",
			Year:        2024,
			Rating:      8.9,
			Genres:      []string{"Фантастика", "Драма"},
			Poster:      "🚀",
			IsFavorite:  true,
			Views:       5,
			Description: ptr("Эпическое путешествие через галактику, раскрывающее тайны Вселенной и человеческой природы. Команда исследователей отправляется в путешествие длиной в жизнь."),
			Director:    ptr("Кристофер Нолан"),
			Cast:        []string{"Мэттью МакКонахи", "Энн Хэтэуэй", "Джессика Честейн"},
			Duration:    ptr[int32](169),
			Country:     ptr("США, Великобритания"),
		},
		{
			ID:          2,
			Title:       "Ночной город",
			Year:        2023,
			Rating:      8.5,
			Genres:      []string{"Боевик", "Триллер"},
			Poster:      "🌃",
			Views:       3,
			Description: ptr("В мегаполисе будущего детектив расследует серию загадочных преступлений, которые ведут его в самое сердце городских тайн."),
			Director:    ptr("Денис Вильнёв"),
			Cast:        []string{"Райан Гослинг", "Харрисон Форд", "Ана де Армас"},
			Duration:    ptr[int32](163),
			Country:     ptr("США"),
		},
		{
			ID:          3,
			Title:       "Последний рубеж",
			Year:        2024,
			Rating:      9.1,
			Genres:      []string{"Боевик", "Фантастика"},
			Poster:      "⚔️",
			IsFavorite:  true,
			Views:       7,
			Description: ptr("Последняя битва человечества за выживание против инопланетного вторжения. Группа элитных солдат должна защитить последний оплот цивилизации."),
			Director:    ptr("Джеймс Кэмерон"),
			Cast:        []string{"Том Круз", "Эмили Блант", "Билл Пэкстон"},
			Duration:    ptr[int32](113),
			Country:     ptr("США"),
		},
		{
			ID:          4,
			Title:       "Тайны прошлого",
			Year:        2023,
			Rating:      7.8,
			Genres:      []string{"Драма", "Триллер"},
			Poster:      "🔍",
			Views:       2,
			Description: ptr("Журналистка раскрывает семейные секреты, которые меняют её представление о собственной жизни и истории её семьи."),
			Director:    ptr("Дэвид Финчер"),
			Cast:        []string{"Руни Мара", "Дэниел Крейг", "Кристофер Пламмер"},
			Duration:    ptr[int32](158),
			Country:     ptr("США, Швеция"),
		},
		{
			ID:          5,
			Title:       "Смешная история",
			Year:        2024,
			Rating:      7.2,
			Genres:      []string{"Комедия"},
			Poster:      "😂",
			Views:       1,
			Description: ptr("Серия комичных недоразумений превращает обычный день в незабываемое приключение для группы друзей."),
			Director:    ptr("Джадд Апатоу"),
			Cast:        []string{"Сет Роген", "Джеймс Франко", "Джона Хилл"},
			Duration:    ptr[int32](107),
			Country:     ptr("США"),
		},
		{
			ID:          6,
			Title:       "Сердца в огне",
			Year:        2023,
			Rating:      8.0,
			Genres:      []string{"Мелодрама", "Драма"},
			Poster:      "💖",
			IsFavorite:  true,
			Views:       4,
			Description: ptr("История любви, которая преодолевает все преграды и испытания судьбы. Два человека встречаются в самый неподходящий момент своей жизни."),
			Director:    ptr("Люка Гуаданьино"),
			Cast:        []string{"Тимоти Шаламе", "Арми Хаммер", "Майкл Стулбарг"},
			Duration:    ptr[int32](132),
			Country:     ptr("Италия, Франция, США"),
		},
		{
			ID:          7,
			Title:       "Параллельные миры",
			Year:        2024,
			Rating:      8.7,
			Genres:      []string{"Фантастика"},
			Poster:      "🌌",
			Views:       6,
			Description: ptr("Физик открывает способ путешествовать между параллельными реальностями, но каждый выбор в одном мире влияет на другой."),
			Director:    ptr("Алекс Гарленд"),
			Cast:        []string{"Оскар Айзек", "Домналл Глисон", "Алисия Викандер"},
			Duration:    ptr[int32](108),
			Country:     ptr("Великобритания"),
		},
		{
			ID:          8,
			Title:       "Охотник",
			Year:        2023,
			Rating:      8.3,
			Genres:      []string{"Боевик", "Триллер"},
			Poster:      "🎯",
			Views:       2,
			Description: ptr("Профессиональный снайпер получает задание, которое заставляет его переосмыслить свою жизнь и моральные принципы."),
			Director:    ptr("Антуан Фукуа"),
			Cast:        []string{"Дензел Вашингтон", "Марк Уолберг", "Педро Паскаль"},
			Duration:    ptr[int32](132),
			Country:     ptr("США"),
		},
	}
}

// SampleReviews returns the reviews that go with SampleMovies.
func SampleReviews() []Review {
	return []Review{
		{ID: 1, MovieID: 1, Author: "Алексей К.", Rating: 9, Text: "Потрясающая визуализация! Каждый кадр — произведение искусства.", Date: "2024-12-10"},
		{ID: 2, MovieID: 3, Author: "Мария С.", Rating: 10, Text: "Лучший боевик года. Динамика на высшем уровне!", Date: "2024-12-12"},
		{ID: 3, MovieID: 7, Author: "Дмитрий В.", Rating: 8, Text: "Интересная концепция параллельных вселенных. Рекомендую!", Date: "2024-12-14"},
	}
}

// SampleOwner is the user the built-in catalog belongs to.
func SampleOwner() Owner {
	return Owner{Name: "Алексей Кинолюб", MemberSince: "2024-01"}
}

// NewSampleCatalog returns a Catalog seeded with SampleMovies and
// SampleReviews, owned by SampleOwner.
func NewSampleCatalog() *Catalog {
	c := NewCatalog(SampleMovies(), SampleReviews())
	c.SetOwner(SampleOwner())
	return c
}
