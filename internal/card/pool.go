package card

// Card 是卡池中的一张卡片
type Card struct {
	Title string
	Text  string
}

// pool 是固定的抽卡池。
// 作为不可变的静态配置在启动时加载一次，绝不在运行期修改。
var pool = []Card{
	{"Гном-авантюрист", "Сегодня время для смелых решений! Не бойся рискнуть - фортуна любит храбрых."},
	{"Гном-повар", "День для заботы о своем теле и душе. Приготовь что-то вкусное или побалуй себя."},
	{"Гном-садовник", "Время посадить семена будущих успехов. Небольшие действия сегодня принесут большие плоды."},
	{"Гном-изобретатель", "Креативность зашкаливает сегодня! Придумай что-то новое или реши задачу нестандартным способом."},
	{"Гном-музыкант", "Найди свой ритм дня. Включи любимую музыку и позволь мелодии вести тебя к успеху."},
	{"Гном-философ", "Размышления принесут ясность. Уделите время анализу своих целей и желаний."},
	{"Гном-путешественник", "Новые места и впечатления ждут! Даже короткая прогулка может стать приключением."},
	{"Гном-мастер", "Руки помнят мудрость. Займитесь любимым делом или освойте новый навык."},
}
