package horoscope

import "strings"

// zodiacMap 将俄文星座名映射到外部数据源使用的英文词汇。
// 同时充当合法星座的白名单。
var zodiacMap = map[string]string{
	"Овен":     "aries",
	"Телец":    "taurus",
	"Близнецы": "gemini",
	"Рак":      "cancer",
	"Лев":      "leo",
	"Дева":     "virgo",
	"Весы":     "libra",
	"Скорпион": "scorpio",
	"Стрелец":  "sagittarius",
	"Козерог":  "capricorn",
	"Водолей":  "aquarius",
	"Рыбы":     "pisces",
}

// IsValidSign 判断给定字符串是否是十二星座之一。
func IsValidSign(sign string) bool {
	_, ok := zodiacMap[sign]
	return ok
}

// EnglishSign 返回星座的英文名；未知星座按小写原样返回。
func EnglishSign(sign string) string {
	if english, ok := zodiacMap[sign]; ok {
		return english
	}
	return strings.ToLower(sign)
}
